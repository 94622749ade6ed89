package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockAnomalyService is a mock implementation of service.AnomalyService.
type MockAnomalyService struct {
	mock.Mock
}

func (m *MockAnomalyService) ListAnomalies(ctx context.Context, filter domain.ClientFilter) (*domain.AnomalyPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnomalyPage), args.Error(1)
}

func (m *MockAnomalyService) QualityMetrics(ctx context.Context, clientType domain.ClientType) (*domain.QualityMetrics, error) {
	args := m.Called(ctx, clientType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QualityMetrics), args.Error(1)
}

func (m *MockAnomalyService) ValidateStored(ctx context.Context, cli string) (*domain.StoredValidation, error) {
	args := m.Called(ctx, cli)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredValidation), args.Error(1)
}
