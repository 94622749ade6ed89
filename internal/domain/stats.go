package domain

// ClientStats holds the client counts of the replica, per client type.
type ClientStats struct {
	Total         int `db:"total" json:"total"`
	Individual    int `db:"individual" json:"individual"`
	Corporate     int `db:"corporate" json:"corporate"`
	Institutional int `db:"institutional" json:"institutional"`
}

// QualityMetrics is the share of valid records for one client type.
type QualityMetrics struct {
	ClientType   ClientType `json:"clientType"`
	TotalRecords int        `json:"total_records"`
	ValidRecords int        `json:"valid_records"`
	QualityScore float64    `json:"quality_score"`
}

// ClientFilter selects stored client records.
type ClientFilter struct {
	ClientType ClientType
	Agency     string
	Offset     int
	Limit      int
}

// FieldStatus is the validation state of one record field.
type FieldStatus struct {
	Status   FieldValidationStatus `json:"status"`
	Messages []string              `json:"messages"`
}

// Anomaly is a stored client record that failed at least one blocking rule, or that could
// not be evaluated at all (Error set, Validation nil).
type Anomaly struct {
	CLI        string                  `json:"cli"`
	ClientType ClientType              `json:"tcli"`
	Agency     string                  `json:"age,omitempty"`
	Validation *ValidationResult       `json:"validation"`
	Fields     map[string]*FieldStatus `json:"fields,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// StoredValidation is the validation of one client read from the replica.
type StoredValidation struct {
	CLI        string                  `json:"cli"`
	ClientType ClientType              `json:"tcli"`
	Validation *ValidationResult       `json:"validation"`
	Fields     map[string]*FieldStatus `json:"fields"`
}

// AnomalyPage is one page of anomalies with the summary of the evaluated page.
type AnomalyPage struct {
	Anomalies []Anomaly    `json:"anomalies"`
	Summary   BatchSummary `json:"summary"`
	Total     int          `json:"total"`
	Offset    int          `json:"offset"`
	Limit     int          `json:"limit"`
}
