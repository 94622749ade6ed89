package validator

import (
	"dataquality/internal/domain"
)

// ComputeFieldStatuses derives per-field statuses from a validation result: a field with
// any error is invalid, a field with only warnings is flagged for review. Fields without
// issues are not listed.
func ComputeFieldStatuses(res *domain.ValidationResult) map[string]*domain.FieldStatus {
	statuses := make(map[string]*domain.FieldStatus)
	if res == nil {
		return statuses
	}

	for _, issue := range res.Errors {
		fs := statuses[issue.Field]
		if fs == nil {
			fs = &domain.FieldStatus{Messages: []string{}}
			statuses[issue.Field] = fs
		}
		fs.Status = domain.FieldStatusInvalid
		fs.Messages = append(fs.Messages, issue.Message)
	}

	for _, issue := range res.Warnings {
		fs := statuses[issue.Field]
		if fs == nil {
			fs = &domain.FieldStatus{Status: domain.FieldStatusReview, Messages: []string{}}
			statuses[issue.Field] = fs
		}
		fs.Messages = append(fs.Messages, issue.Message)
	}

	return statuses
}
