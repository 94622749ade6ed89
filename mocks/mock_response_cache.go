package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockResponseCache is a mock implementation of port.ResponseCache.
type MockResponseCache struct {
	mock.Mock
}

func (m *MockResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockResponseCache) Clear(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockResponseCache) Stats(ctx context.Context) domain.CacheStats {
	args := m.Called(ctx)
	return args.Get(0).(domain.CacheStats)
}
