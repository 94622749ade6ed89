package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockRuleService is a mock implementation of service.RuleService.
type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) List() []domain.ValidationRule {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ValidationRule)
}

func (m *MockRuleService) ListByClientType(clientType domain.ClientType) []domain.ValidationRule {
	args := m.Called(clientType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ValidationRule)
}

func (m *MockRuleService) Get(id string) (*domain.ValidationRule, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRule), args.Error(1)
}

func (m *MockRuleService) Update(ctx context.Context, id string, upd domain.RuleUpdate, actor string) (*domain.ValidationRule, error) {
	args := m.Called(ctx, id, upd, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRule), args.Error(1)
}

func (m *MockRuleService) Add(ctx context.Context, rule domain.ValidationRule, actor string) (*domain.ValidationRule, error) {
	args := m.Called(ctx, rule, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRule), args.Error(1)
}

func (m *MockRuleService) Delete(ctx context.Context, id, actor string) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockRuleService) Toggle(ctx context.Context, id, actor string) (*domain.ValidationRule, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRule), args.Error(1)
}

func (m *MockRuleService) Restore(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRuleService) Version() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}
