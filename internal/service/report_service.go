package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"dataquality/internal/domain"
	"dataquality/internal/export"
	"dataquality/internal/port"
	"dataquality/internal/validator"
)

// ReportService renders anomaly reports and archives them to object storage.
type ReportService interface {
	BuildAnomalyReport(ctx context.Context, filter domain.ClientFilter, format domain.ReportFormat) (*domain.Report, error)
	ArchiveAnomalyReport(ctx context.Context, filter domain.ClientFilter, actor string) (*domain.ArchivedReport, error)
}

type reportService struct {
	anomalies     AnomalyService
	table         *validator.RuleTable
	storage       port.ObjectStorage
	presignExpiry time.Duration
	now           func() time.Time
}

// NewReportService creates a new ReportService. storage may be nil when archiving is not
// configured.
func NewReportService(anomalies AnomalyService, table *validator.RuleTable, storage port.ObjectStorage, presignExpiry time.Duration) ReportService {
	return &reportService{
		anomalies:     anomalies,
		table:         table,
		storage:       storage,
		presignExpiry: presignExpiry,
		now:           time.Now,
	}
}

func (s *reportService) BuildAnomalyReport(ctx context.Context, filter domain.ClientFilter, format domain.ReportFormat) (*domain.Report, error) {
	if format != domain.ReportFormatCSV && format != domain.ReportFormatXLSX {
		return nil, domain.ErrUnsupportedFormat
	}

	page, err := s.anomalies.ListAnomalies(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var buf bytes.Buffer
	switch format {
	case domain.ReportFormatCSV:
		buf.Write(export.BOM)
		w := export.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			return nil, fmt.Errorf("reportService.BuildAnomalyReport: %w", err)
		}
		if err := w.WriteAnomalies(page.Anomalies); err != nil {
			return nil, fmt.Errorf("reportService.BuildAnomalyReport: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("reportService.BuildAnomalyReport: %w", err)
		}
	case domain.ReportFormatXLSX:
		meta := export.ReportMeta{
			ClientType:  filter.ClientType,
			Agency:      filter.Agency,
			GeneratedAt: now,
			RuleVersion: s.table.Version(),
		}
		if err := export.WriteXLSX(&buf, page, meta); err != nil {
			return nil, fmt.Errorf("reportService.BuildAnomalyReport: %w", err)
		}
	}

	return &domain.Report{
		Filename:    export.BuildFilename(reportName(filter), string(format), now),
		Format:      format,
		Data:        buf.Bytes(),
		Anomalies:   len(page.Anomalies),
		GeneratedAt: now,
	}, nil
}

func (s *reportService) ArchiveAnomalyReport(ctx context.Context, filter domain.ClientFilter, actor string) (*domain.ArchivedReport, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageNotConfigured
	}

	report, err := s.BuildAnomalyReport(ctx, filter, domain.ReportFormatXLSX)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s-%s", report.GeneratedAt.Format("2006/01/02"), uuid.New().String(), report.Filename)
	loc, err := s.storage.Put(ctx, port.StoredObject{
		Key:         key,
		Body:        bytes.NewReader(report.Data),
		ContentType: report.Format.ContentType(),
		Metadata: map[string]string{
			"archived-by":   actor,
			"anomalies":     fmt.Sprint(report.Anomalies),
			"rules-version": fmt.Sprint(s.table.Version()),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url, err := s.storage.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		// The object is unreachable without a link.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Printf("reportService.ArchiveAnomalyReport: removing %s after presign failure: %v", key, delErr)
		}
		return nil, fmt.Errorf("reportService.ArchiveAnomalyReport presign: %w", err)
	}

	return &domain.ArchivedReport{
		Key:          loc.Key,
		Bucket:       loc.Bucket,
		Filename:     report.Filename,
		Anomalies:    report.Anomalies,
		URL:          url,
		URLExpiresAt: report.GeneratedAt.Add(s.presignExpiry),
		ArchivedBy:   actor,
	}, nil
}

func reportName(filter domain.ClientFilter) string {
	parts := []string{"anomalies"}
	if filter.ClientType != "" {
		parts = append(parts, "type", string(filter.ClientType))
	}
	if filter.Agency != "" {
		parts = append(parts, "agency", filter.Agency)
	}
	return strings.Join(parts, "_")
}
