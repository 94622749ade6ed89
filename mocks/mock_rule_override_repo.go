package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockRuleOverrideRepo is a mock implementation of port.RuleOverrideRepository.
type MockRuleOverrideRepo struct {
	mock.Mock
}

func (m *MockRuleOverrideRepo) Upsert(ctx context.Context, override *domain.RuleOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockRuleOverrideRepo) List(ctx context.Context) ([]domain.RuleOverride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleOverride), args.Error(1)
}

func (m *MockRuleOverrideRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
