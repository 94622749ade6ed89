package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dataquality/internal/domain"
	"dataquality/internal/handler"
	"dataquality/mocks"
)

func newReportRouter(svc *mocks.MockReportService) *gin.Engine {
	h := handler.NewReportHandler(svc)
	r := gin.New()
	r.Use(withSubject("auditor-7", "auditor"))
	r.GET("/reports/anomalies", h.DownloadAnomalies)
	r.POST("/reports/anomalies/archive", h.ArchiveAnomalies)
	return r
}

func TestReportHandler_DownloadAnomalies_CSV(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	r := newReportRouter(mockSvc)

	report := &domain.Report{
		Filename: "anomalies_type_1_20260310.csv",
		Format:   domain.ReportFormatCSV,
		Data:     []byte("Client,Client Type\n"),
	}
	filter := domain.ClientFilter{ClientType: "1", Limit: 100}
	mockSvc.On("BuildAnomalyReport", mock.Anything, filter, domain.ReportFormatCSV).Return(report, nil)

	w := performRequest(r, http.MethodGet, "/reports/anomalies?format=CSV&clientType=1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="anomalies_type_1_20260310.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Client,Client Type\n", w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_DownloadAnomalies_DefaultsToXLSX(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	r := newReportRouter(mockSvc)

	mockSvc.On("BuildAnomalyReport", mock.Anything, mock.Anything, domain.ReportFormatXLSX).
		Return(&domain.Report{Filename: "anomalies.xlsx", Format: domain.ReportFormatXLSX, Data: []byte("PK")}, nil)

	w := performRequest(r, http.MethodGet, "/reports/anomalies", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ReportFormatXLSX.ContentType(), w.Header().Get("Content-Type"))
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_DownloadAnomalies_UnsupportedFormat(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	r := newReportRouter(mockSvc)

	mockSvc.On("BuildAnomalyReport", mock.Anything, mock.Anything, domain.ReportFormat("pdf")).
		Return(nil, domain.ErrUnsupportedFormat)

	w := performRequest(r, http.MethodGet, "/reports/anomalies?format=pdf", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}

func TestReportHandler_ArchiveAnomalies(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	r := newReportRouter(mockSvc)

	archived := &domain.ArchivedReport{
		Key:          "reports/2026/03/10/x-anomalies.xlsx",
		Bucket:       "dq-reports",
		Filename:     "anomalies.xlsx",
		URL:          "https://dq-reports.s3.amazonaws.com/reports/2026/03/10/x-anomalies.xlsx?X-Amz-Signature=abc",
		URLExpiresAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ArchivedBy:   "auditor-7",
	}
	mockSvc.On("ArchiveAnomalyReport", mock.Anything, mock.Anything, "auditor-7").Return(archived, nil)

	w := performRequest(r, http.MethodPost, "/reports/anomalies/archive?clientType=2", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool                  `json:"success"`
		Data    domain.ArchivedReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dq-reports", resp.Data.Bucket)
	assert.Equal(t, "auditor-7", resp.Data.ArchivedBy)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_ArchiveAnomalies_StorageNotConfigured(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	r := newReportRouter(mockSvc)

	mockSvc.On("ArchiveAnomalyReport", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrStorageNotConfigured)

	w := performRequest(r, http.MethodPost, "/reports/anomalies/archive", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
