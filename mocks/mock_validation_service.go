package mocks

import (
	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockValidationService is a mock implementation of service.ValidationService.
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateRecord(record domain.ClientRecord) (*domain.ValidationResult, error) {
	args := m.Called(record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationResult), args.Error(1)
}

func (m *MockValidationService) ValidateBatch(records []domain.ClientRecord) (*domain.BatchReport, error) {
	args := m.Called(records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchReport), args.Error(1)
}
