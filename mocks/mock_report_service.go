package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BuildAnomalyReport(ctx context.Context, filter domain.ClientFilter, format domain.ReportFormat) (*domain.Report, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ArchiveAnomalyReport(ctx context.Context, filter domain.ClientFilter, actor string) (*domain.ArchivedReport, error) {
	args := m.Called(ctx, filter, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedReport), args.Error(1)
}
