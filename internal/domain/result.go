package domain

// ValidationIssue is one failing rule reported for a record.
type ValidationIssue struct {
	RuleID   string             `json:"ruleId"`
	Field    string             `json:"field"`
	Label    string             `json:"label"`
	Message  string             `json:"message"`
	Severity ValidationSeverity `json:"severity"`
	Value    any                `json:"value,omitempty"`
}

// ValidationResult is the outcome of validating one record.
// IsValid is true iff Errors is empty; warnings never affect validity.
type ValidationResult struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// BatchEntry pairs a client id with its validation outcome. Error is set, and Validation
// is nil, when the record itself could not be evaluated.
type BatchEntry struct {
	CLI        string            `json:"cli"`
	Validation *ValidationResult `json:"validation"`
	Error      string            `json:"error,omitempty"`
}

// Failed reports whether the record could not be evaluated.
func (e *BatchEntry) Failed() bool {
	return e.Validation == nil
}

// BatchSummary aggregates a batch of validation results.
type BatchSummary struct {
	Total         int `json:"total"`
	Valid         int `json:"valid"`
	Invalid       int `json:"invalid"`
	Failed        int `json:"failed"`
	TotalErrors   int `json:"totalErrors"`
	TotalWarnings int `json:"totalWarnings"`
}

// Add folds one entry into the summary. Failed entries count as invalid.
func (s *BatchSummary) Add(e *BatchEntry) {
	s.Total++
	if e.Failed() {
		s.Invalid++
		s.Failed++
		return
	}
	if e.Validation.IsValid {
		s.Valid++
	} else {
		s.Invalid++
	}
	s.TotalErrors += len(e.Validation.Errors)
	s.TotalWarnings += len(e.Validation.Warnings)
}

// BatchReport is the output of a batch evaluation.
type BatchReport struct {
	Results []BatchEntry `json:"results"`
	Summary BatchSummary `json:"summary"`
}
