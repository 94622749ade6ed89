package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquality/internal/domain"
	"dataquality/internal/service"
	"dataquality/internal/validator"
	"dataquality/internal/validator/client"
)

func newValidationService(t *testing.T) service.ValidationService {
	t.Helper()
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	engine := validator.NewEngine(newRuleTable(t), client.NewRegistry(), validator.WithClock(func() time.Time { return now }))
	return service.NewValidationService(engine)
}

func individual(cli string) domain.ClientRecord {
	return domain.ClientRecord{
		"cli": cli, "tcli": "1", "age": "001",
		"nid": "AB987654", "nmer": "Smith", "dna": "1980-01-01", "nat": "FR",
		"nom": "Doe", "pre": "John", "sext": "M", "viln": "Paris", "payn": "France", "tid": "passport",
	}
}

func TestValidationService_ValidateRecord(t *testing.T) {
	svc := newValidationService(t)

	res, err := svc.ValidateRecord(individual("123"))
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	rec := individual("124")
	delete(rec, "nid")
	res, err = svc.ValidateRecord(rec)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "PP_NID_REQUIRED", res.Errors[0].RuleID)
}

func TestValidationService_ValidateRecord_RejectsIncompleteInput(t *testing.T) {
	svc := newValidationService(t)

	_, err := svc.ValidateRecord(nil)
	assert.ErrorIs(t, err, domain.ErrMissingRecord)

	_, err = svc.ValidateRecord(domain.ClientRecord{"tcli": "1"})
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)

	_, err = svc.ValidateRecord(domain.ClientRecord{"cli": "123", "tcli": " "})
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestValidationService_ValidateBatch(t *testing.T) {
	svc := newValidationService(t)
	invalid := individual("2")
	invalid["nid"] = ""

	report, err := svc.ValidateBatch([]domain.ClientRecord{individual("1"), invalid, nil})

	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "1", report.Results[0].CLI)
	assert.Equal(t, "2", report.Results[1].CLI)
	assert.True(t, report.Results[2].Failed())
	assert.Equal(t, domain.BatchSummary{Total: 3, Valid: 1, Invalid: 2, Failed: 1, TotalErrors: 1}, report.Summary)

	_, err = svc.ValidateBatch(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestValidationService_ValidateRecord_SeparatesRecordAndInternalFaults(t *testing.T) {
	table, err := validator.NewRuleTable([]domain.ValidationRule{
		{
			ID: "ALL_CODE_CLIENT_REQUIRED", Field: "cli", Scope: domain.RuleScopeAll,
			Kind: domain.RuleKindRequired, Severity: domain.ValidationSeverityError, Enabled: true,
		},
		{
			ID: "ALL_CODE_AGENCE_REQUIRED", Field: "age", Scope: domain.RuleScopeAll,
			Kind: domain.RuleKindRequired, Severity: domain.ValidationSeverityWarning, Enabled: true,
		},
		{
			ID: "PP_NID_LOOKUP", Field: "nid", Scope: domain.RuleScope(domain.ClientTypeIndividual),
			Kind: domain.RuleKindCustom, Predicate: "nid_lookup", Severity: domain.ValidationSeverityWarning, Enabled: true,
		},
	})
	require.NoError(t, err)
	registry := validator.NewRegistry()
	lookupDown := errors.New("nid registry unreachable")
	registry.Register(validator.NewPredicate("nid_lookup", func(validator.PredicateInput) (validator.Outcome, error) {
		return validator.Outcome{}, lookupDown
	}))
	svc := service.NewValidationService(validator.NewEngine(table, registry))

	_, err = svc.ValidateRecord(domain.ClientRecord{"cli": "123", "tcli": "1", "age": "001", "nid": "AB987654"})
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupDown)
	assert.False(t, validator.IsRecordFault(err))

	_, err = svc.ValidateRecord(domain.ClientRecord{"cli": "124", "tcli": "2", "age": map[string]any{"code": "001"}})
	require.Error(t, err)
	assert.True(t, validator.IsRecordFault(err))
	assert.ErrorIs(t, err, domain.ErrUnsupportedValue)
}
