package service

import (
	"context"

	"dataquality/internal/domain"
	"dataquality/internal/port"
)

// StatsService provides aggregate statistics over the client replica.
type StatsService interface {
	ClientStats(ctx context.Context) (*domain.ClientStats, error)
}

type statsService struct {
	clientRepo port.ClientRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(clientRepo port.ClientRepository) StatsService {
	return &statsService{clientRepo: clientRepo}
}

func (s *statsService) ClientStats(ctx context.Context) (*domain.ClientStats, error) {
	return s.clientRepo.Stats(ctx)
}
