package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dataquality/internal/domain"
	"dataquality/internal/service"
	"dataquality/mocks"
)

func TestNormalizeClientFilter(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.ClientFilter
		want    domain.ClientFilter
		wantErr error
	}{
		{"defaults", domain.ClientFilter{}, domain.ClientFilter{Limit: service.DefaultAnomalyLimit}, nil},
		{"negative offset", domain.ClientFilter{Offset: -5, Limit: 10}, domain.ClientFilter{Limit: 10}, nil},
		{"limit capped", domain.ClientFilter{Limit: 5000}, domain.ClientFilter{Limit: service.MaxAnomalyLimit}, nil},
		{"client type kept", domain.ClientFilter{ClientType: "2", Agency: "001", Offset: 20, Limit: 10},
			domain.ClientFilter{ClientType: "2", Agency: "001", Offset: 20, Limit: 10}, nil},
		{"bad client type", domain.ClientFilter{ClientType: "9"}, domain.ClientFilter{}, domain.ErrInvalidClientType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.NormalizeClientFilter(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnomalyService_ListAnomalies(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewAnomalyService(repo, newValidationService(t))

	missingNID := individual("2")
	delete(missingNID, "nid")
	noType := domain.ClientRecord{"cli": "3", "age": "002"}
	filter := domain.ClientFilter{ClientType: "1", Limit: service.DefaultAnomalyLimit}
	repo.On("List", mock.Anything, filter).Return([]domain.ClientRecord{individual("1"), missingNID, noType}, 42, nil)

	page, err := svc.ListAnomalies(context.Background(), domain.ClientFilter{ClientType: "1"})

	require.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, service.DefaultAnomalyLimit, page.Limit)
	assert.Equal(t, 3, page.Summary.Total)
	assert.Equal(t, 1, page.Summary.Valid)
	require.Len(t, page.Anomalies, 2)

	first := page.Anomalies[0]
	assert.Equal(t, "2", first.CLI)
	assert.Equal(t, domain.ClientType("1"), first.ClientType)
	assert.Equal(t, "001", first.Agency)
	require.Contains(t, first.Fields, "nid")
	assert.Equal(t, domain.FieldStatusInvalid, first.Fields["nid"].Status)

	second := page.Anomalies[1]
	assert.Equal(t, "3", second.CLI)
	assert.Nil(t, second.Validation)
	assert.NotEmpty(t, second.Error)
	repo.AssertExpectations(t)
}

func TestAnomalyService_ListAnomalies_EmptyPage(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	validation := new(mocks.MockValidationService)
	svc := service.NewAnomalyService(repo, validation)

	repo.On("List", mock.Anything, mock.Anything).Return([]domain.ClientRecord{}, 0, nil)

	page, err := svc.ListAnomalies(context.Background(), domain.ClientFilter{})

	require.NoError(t, err)
	assert.NotNil(t, page.Anomalies)
	assert.Empty(t, page.Anomalies)
	validation.AssertNotCalled(t, "ValidateBatch", mock.Anything)
}

func TestAnomalyService_ListAnomalies_Errors(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewAnomalyService(repo, newValidationService(t))

	_, err := svc.ListAnomalies(context.Background(), domain.ClientFilter{ClientType: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidClientType)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)

	repo.On("List", mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down"))
	_, err = svc.ListAnomalies(context.Background(), domain.ClientFilter{})
	assert.Error(t, err)
}

func TestAnomalyService_QualityMetrics(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewAnomalyService(repo, newValidationService(t))

	bad := individual("3")
	bad["nid"] = ""
	chunks := [][]domain.ClientRecord{
		{individual("1"), individual("2")},
		{bad},
	}
	repo.On("Scan", mock.Anything, domain.ClientType("1"), mock.AnythingOfType("int"), mock.Anything).Return(chunks, nil)

	metrics, err := svc.QualityMetrics(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalRecords)
	assert.Equal(t, 2, metrics.ValidRecords)
	assert.Equal(t, 66.67, metrics.QualityScore)
}

func TestAnomalyService_QualityMetrics_Errors(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewAnomalyService(repo, newValidationService(t))

	_, err := svc.QualityMetrics(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidClientType)

	repo.On("Scan", mock.Anything, domain.ClientType("2"), mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	_, err = svc.QualityMetrics(context.Background(), "2")
	assert.Error(t, err)
}

func TestQualityScore(t *testing.T) {
	assert.Equal(t, 0.0, service.QualityScore(0, 0))
	assert.Equal(t, 100.0, service.QualityScore(4, 4))
	assert.Equal(t, 33.33, service.QualityScore(1, 3))
	assert.Equal(t, 50.0, service.QualityScore(1, 2))
}

func TestAnomalyService_ValidateStored(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewAnomalyService(repo, newValidationService(t))

	rec := individual("77")
	rec["sext"] = "Z"
	repo.On("GetByCLI", mock.Anything, "77").Return(rec, nil)
	repo.On("GetByCLI", mock.Anything, "404").Return(nil, domain.ErrClientNotFound)

	stored, err := svc.ValidateStored(context.Background(), "77")
	require.NoError(t, err)
	assert.Equal(t, "77", stored.CLI)
	assert.False(t, stored.Validation.IsValid)
	require.Contains(t, stored.Fields, "sext")
	assert.Equal(t, domain.FieldStatusInvalid, stored.Fields["sext"].Status)

	_, err = svc.ValidateStored(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
