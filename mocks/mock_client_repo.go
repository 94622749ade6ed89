package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockClientRepo is a mock implementation of port.ClientRepository.
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) List(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClientRecord), args.Int(1), args.Error(2)
}

func (m *MockClientRepo) GetByCLI(ctx context.Context, cli string) (domain.ClientRecord, error) {
	args := m.Called(ctx, cli)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ClientRecord), args.Error(1)
}

func (m *MockClientRepo) Stats(ctx context.Context) (*domain.ClientStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientStats), args.Error(1)
}

// Scan feeds fn the [][]domain.ClientRecord given as first return value, then returns
// the second.
func (m *MockClientRepo) Scan(ctx context.Context, clientType domain.ClientType, chunkSize int, fn func([]domain.ClientRecord) error) error {
	args := m.Called(ctx, clientType, chunkSize, fn)
	if chunks, ok := args.Get(0).([][]domain.ClientRecord); ok {
		for _, chunk := range chunks {
			if err := fn(chunk); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}

func (m *MockClientRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
