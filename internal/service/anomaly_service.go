package service

import (
	"context"
	"fmt"
	"math"

	"dataquality/internal/domain"
	"dataquality/internal/port"
	"dataquality/internal/validator"
)

const (
	DefaultAnomalyLimit = 100
	MaxAnomalyLimit     = 1000
	metricsChunkSize    = 1000
)

// AnomalyService validates clients stored in the replica.
type AnomalyService interface {
	// ListAnomalies validates one page of stored clients and returns those that are not
	// valid, with the summary of the whole page.
	ListAnomalies(ctx context.Context, filter domain.ClientFilter) (*domain.AnomalyPage, error)
	// QualityMetrics validates every stored client of a type and returns the valid share.
	QualityMetrics(ctx context.Context, clientType domain.ClientType) (*domain.QualityMetrics, error)
	ValidateStored(ctx context.Context, cli string) (*domain.StoredValidation, error)
}

type anomalyService struct {
	clientRepo port.ClientRepository
	validation ValidationService
}

// NewAnomalyService creates a new AnomalyService implementation.
func NewAnomalyService(clientRepo port.ClientRepository, validation ValidationService) AnomalyService {
	return &anomalyService{clientRepo: clientRepo, validation: validation}
}

// NormalizeClientFilter applies paging defaults and checks the client type.
func NormalizeClientFilter(filter domain.ClientFilter) (domain.ClientFilter, error) {
	if filter.ClientType != "" && !filter.ClientType.Valid() {
		return filter, domain.ErrInvalidClientType
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultAnomalyLimit
	}
	if filter.Limit > MaxAnomalyLimit {
		filter.Limit = MaxAnomalyLimit
	}
	return filter, nil
}

func (s *anomalyService) ListAnomalies(ctx context.Context, filter domain.ClientFilter) (*domain.AnomalyPage, error) {
	filter, err := NormalizeClientFilter(filter)
	if err != nil {
		return nil, err
	}

	records, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("anomalyService.ListAnomalies: %w", err)
	}

	page := &domain.AnomalyPage{
		Anomalies: []domain.Anomaly{},
		Total:     total,
		Offset:    filter.Offset,
		Limit:     filter.Limit,
	}
	if len(records) == 0 {
		return page, nil
	}

	report, err := s.validation.ValidateBatch(records)
	if err != nil {
		return nil, fmt.Errorf("anomalyService.ListAnomalies: %w", err)
	}
	page.Summary = report.Summary

	for i := range report.Results {
		entry := &report.Results[i]
		if !entry.Failed() && entry.Validation.IsValid {
			continue
		}
		rec := records[i]
		anomaly := domain.Anomaly{
			CLI:        entry.CLI,
			ClientType: rec.Type(),
			Validation: entry.Validation,
			Error:      entry.Error,
		}
		if age, present, _ := rec.String(domain.FieldAgency); present {
			anomaly.Agency = age
		}
		if entry.Validation != nil {
			anomaly.Fields = validator.ComputeFieldStatuses(entry.Validation)
		}
		page.Anomalies = append(page.Anomalies, anomaly)
	}
	return page, nil
}

func (s *anomalyService) QualityMetrics(ctx context.Context, clientType domain.ClientType) (*domain.QualityMetrics, error) {
	if !clientType.Valid() {
		return nil, domain.ErrInvalidClientType
	}

	metrics := &domain.QualityMetrics{ClientType: clientType}
	err := s.clientRepo.Scan(ctx, clientType, metricsChunkSize, func(chunk []domain.ClientRecord) error {
		report, err := s.validation.ValidateBatch(chunk)
		if err != nil {
			return err
		}
		metrics.TotalRecords += report.Summary.Total
		metrics.ValidRecords += report.Summary.Valid
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("anomalyService.QualityMetrics: %w", err)
	}

	metrics.QualityScore = QualityScore(metrics.ValidRecords, metrics.TotalRecords)
	return metrics, nil
}

// QualityScore returns valid/total as a percentage rounded to two decimals, 0 when empty.
func QualityScore(valid, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(valid)/float64(total)*10000) / 100
}

func (s *anomalyService) ValidateStored(ctx context.Context, cli string) (*domain.StoredValidation, error) {
	rec, err := s.clientRepo.GetByCLI(ctx, cli)
	if err != nil {
		return nil, err
	}
	res, err := s.validation.ValidateRecord(rec)
	if err != nil {
		return nil, err
	}
	return &domain.StoredValidation{
		CLI:        rec.CLI(),
		ClientType: rec.Type(),
		Validation: res,
		Fields:     validator.ComputeFieldStatuses(res),
	}, nil
}
