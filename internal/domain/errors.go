package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Record input errors.
	ErrMissingRecord     = errors.New("record is required")
	ErrMissingIdentity   = errors.New("record fields cli and tcli are required")
	ErrUnsupportedValue  = errors.New("field value is not a scalar")
	ErrEmptyBatch        = errors.New("records must be a non-empty array")
	ErrInvalidClientType = errors.New("client type must be 1, 2 or 3")

	// Rule administration errors.
	ErrValidationRuleNotFound = errors.New("validation rule not found")
	ErrDuplicateRule          = errors.New("validation rule id already exists")
	ErrInvalidRule            = errors.New("invalid validation rule")
	ErrInvalidRuleUpdate      = errors.New("invalid validation rule update")

	// Collaborator errors.
	ErrClientNotFound       = errors.New("client not found")
	ErrStorageNotConfigured = errors.New("report storage is not configured")
	ErrUploadFailed         = errors.New("report upload to storage failed")
	ErrUnsupportedFormat    = errors.New("report format must be csv or xlsx")
	ErrCacheUnavailable     = errors.New("cache backend unavailable")
)
