package port

import (
	"context"
	"time"

	"dataquality/internal/domain"
)

// ResponseCache stores rendered API responses by key.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Clear removes every key starting with prefix and returns how many were removed.
	Clear(ctx context.Context, prefix string) (int, error)
	Stats(ctx context.Context) domain.CacheStats
}
