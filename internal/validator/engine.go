package validator

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"dataquality/internal/domain"
)

// Engine evaluates client records against the rule table.
type Engine struct {
	table    *RuleTable
	registry *Registry
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used by date predicates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a new validation engine over table, resolving custom rules in registry.
func NewEngine(table *RuleTable, registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		table:    table,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the rule table the engine reads.
func (e *Engine) Table() *RuleTable { return e.table }

// Validate evaluates one record against the enabled rules scoped to its tcli (or to all
// client types), in table order. The caller guarantees cli and tcli are present. An error
// is returned only when a field consulted by a rule holds a non-scalar value.
func (e *Engine) Validate(record domain.ClientRecord) (*domain.ValidationResult, error) {
	return e.validate(e.table.Snapshot(), record, e.now())
}

// ValidateBatch evaluates records in order against a single snapshot of the rule table.
// A record that cannot be evaluated (nil, missing cli/tcli, non-scalar value) becomes a
// failed entry; the other records still run.
func (e *Engine) ValidateBatch(records []domain.ClientRecord) (*domain.BatchReport, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	snap := e.table.Snapshot()
	now := e.now()
	report := &domain.BatchReport{Results: make([]domain.BatchEntry, 0, len(records))}

	for _, rec := range records {
		entry := domain.BatchEntry{CLI: rec.CLI()}
		switch {
		case rec == nil:
			entry.Error = domain.ErrMissingRecord.Error()
		case !rec.HasIdentity():
			entry.Error = domain.ErrMissingIdentity.Error()
		default:
			res, err := e.validate(snap, rec, now)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Validation = res
			}
		}
		report.Summary.Add(&entry)
		report.Results = append(report.Results, entry)
	}
	return report, nil
}

func (e *Engine) validate(snap *Snapshot, record domain.ClientRecord, now time.Time) (*domain.ValidationResult, error) {
	res := &domain.ValidationResult{
		Errors:   []domain.ValidationIssue{},
		Warnings: []domain.ValidationIssue{},
	}
	ct := record.Type()

	for i := range snap.rules {
		rule := &snap.rules[i]
		if !rule.Enabled || !rule.Scope.Includes(ct) {
			continue
		}
		passed, msg, err := e.evaluate(rule, record, now)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
		}
		if passed {
			continue
		}
		if msg == "" {
			msg = rule.Message
		}
		issue := domain.ValidationIssue{
			RuleID:   rule.ID,
			Field:    rule.Field,
			Label:    rule.Name,
			Message:  msg,
			Severity: rule.Severity,
		}
		if v, ok := record.Value(rule.Field); ok {
			issue.Value = v
		}
		if rule.Severity == domain.ValidationSeverityError {
			res.Errors = append(res.Errors, issue)
		} else {
			res.Warnings = append(res.Warnings, issue)
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res, nil
}

// evaluate runs a single rule. The returned message overrides the rule's own when set.
func (e *Engine) evaluate(rule *domain.ValidationRule, record domain.ClientRecord, now time.Time) (bool, string, error) {
	switch rule.Kind {
	case domain.RuleKindRequired:
		s, present, err := record.String(rule.Field)
		if err != nil {
			return false, "", err
		}
		return present && strings.TrimSpace(s) != "", "", nil

	case domain.RuleKindEnum:
		s, present, err := record.String(rule.Field)
		if err != nil {
			return false, "", err
		}
		s = strings.TrimSpace(s)
		if !present || s == "" {
			return true, "", nil
		}
		return slices.Contains(rule.Params.Allowed, s), "", nil

	case domain.RuleKindDatePresent:
		_, present, err := record.String(rule.Field)
		if err != nil {
			return false, "", err
		}
		return present, "", nil

	case domain.RuleKindCustom:
		p := e.registry.Get(rule.Predicate)
		if p == nil {
			log.Printf("validator.Engine: no predicate registered for key %q (rule %s)", rule.Predicate, rule.ID)
			return true, "", nil
		}
		out, err := p.Check(PredicateInput{
			Record: record,
			Field:  rule.Field,
			Params: rule.Params,
			Now:    now,
		})
		if err != nil {
			return false, "", err
		}
		return out.Passed, out.Message, nil

	default:
		return true, "", nil
	}
}

// IsRecordFault reports whether err describes a malformed record rather than an
// internal failure.
func IsRecordFault(err error) bool {
	return errors.Is(err, domain.ErrUnsupportedValue) ||
		errors.Is(err, domain.ErrMissingIdentity) ||
		errors.Is(err, domain.ErrMissingRecord)
}
