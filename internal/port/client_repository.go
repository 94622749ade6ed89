package port

import (
	"context"

	"dataquality/internal/domain"
)

// ClientRepository reads client records from the core-banking replica (table bkcli).
// Records are returned as column name to value maps so new columns need no code change.
type ClientRepository interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientRecord, int, error)
	GetByCLI(ctx context.Context, cli string) (domain.ClientRecord, error)
	Stats(ctx context.Context) (*domain.ClientStats, error)
	// Scan calls fn with successive chunks of the clients of one type, in cli order.
	Scan(ctx context.Context, clientType domain.ClientType, chunkSize int, fn func([]domain.ClientRecord) error) error
	Ping(ctx context.Context) error
}

// RuleOverrideRepository persists administrative rule changes so they survive a restart.
type RuleOverrideRepository interface {
	Upsert(ctx context.Context, override *domain.RuleOverride) error
	List(ctx context.Context) ([]domain.RuleOverride, error)
	DeleteAll(ctx context.Context) error
}
