package domain

import "time"

// ReportFormat is the file format of an anomaly report.
type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ContentType returns the MIME type of the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Report is a rendered anomaly report.
type Report struct {
	Filename    string
	Format      ReportFormat
	Data        []byte
	Anomalies   int
	GeneratedAt time.Time
}

// ArchivedReport describes a report uploaded to object storage.
type ArchivedReport struct {
	Key          string    `json:"key"`
	Bucket       string    `json:"bucket"`
	Filename     string    `json:"filename"`
	Anomalies    int       `json:"anomalies"`
	URL          string    `json:"url"`
	URLExpiresAt time.Time `json:"urlExpiresAt"`
	ArchivedBy   string    `json:"archivedBy"`
}
