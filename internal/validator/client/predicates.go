package client

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"dataquality/internal/domain"
	"dataquality/internal/validator"
)

// Predicate registry keys used by the built-in rule table.
const (
	PredicateFormat         = "format.pattern"
	PredicateNotPlaceholder = "format.not_placeholder"
	PredicateDateRange      = "date.range"
	PredicateNotExpired     = "date.not_expired"
)

var placeholderPattern = regexp.MustCompile(`^[Xx]+$`)

// patternCache memoises compiled rule patterns; rule params are validated on the way in.
var patternCache sync.Map

func compiled(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

// Predicates returns the custom predicates referenced by DefaultRules.
func Predicates() []validator.Predicate {
	return []validator.Predicate{
		validator.NewPredicate(PredicateFormat, checkFormat),
		validator.NewPredicate(PredicateNotPlaceholder, checkNotPlaceholder),
		validator.NewPredicate(PredicateDateRange, checkDateRange),
		validator.NewPredicate(PredicateNotExpired, checkNotExpired),
	}
}

// NewRegistry returns a validator registry holding Predicates.
func NewRegistry() *validator.Registry {
	r := validator.NewRegistry()
	for _, p := range Predicates() {
		r.Register(p)
	}
	return r
}

// presentValue returns the trimmed value of the input field; ok is false when the field
// is absent or blank, in which case format checks are skipped.
func presentValue(in validator.PredicateInput) (string, bool, error) {
	s, present, err := in.Record.String(in.Field)
	if err != nil {
		return "", false, err
	}
	s = strings.TrimSpace(s)
	return s, present && s != "", nil
}

func containsForbidden(value string, forbidden []string) (string, bool) {
	for _, f := range forbidden {
		if f != "" && strings.Contains(value, f) {
			return f, true
		}
	}
	return "", false
}

// checkFormat enforces length bounds, a prefix, a pattern and forbidden substrings.
func checkFormat(in validator.PredicateInput) (validator.Outcome, error) {
	v, ok, err := presentValue(in)
	if err != nil || !ok {
		return validator.Outcome{Passed: true}, err
	}
	p := in.Params
	if p.MinLength > 0 && len(v) < p.MinLength {
		return validator.Outcome{}, nil
	}
	if p.MaxLength > 0 && len(v) > p.MaxLength {
		return validator.Outcome{}, nil
	}
	if p.Prefix != "" && !strings.HasPrefix(v, p.Prefix) {
		return validator.Outcome{}, nil
	}
	if p.Pattern != "" {
		re, err := compiled(p.Pattern)
		if err != nil {
			return validator.Outcome{}, fmt.Errorf("pattern %q: %w", p.Pattern, err)
		}
		if !re.MatchString(v) {
			return validator.Outcome{}, nil
		}
	}
	if _, found := containsForbidden(v, p.Forbidden); found {
		return validator.Outcome{}, nil
	}
	return validator.Outcome{Passed: true}, nil
}

// checkNotPlaceholder rejects names made only of X and names carrying forbidden sequences.
func checkNotPlaceholder(in validator.PredicateInput) (validator.Outcome, error) {
	v, ok, err := presentValue(in)
	if err != nil || !ok {
		return validator.Outcome{Passed: true}, err
	}
	if placeholderPattern.MatchString(v) {
		return validator.Outcome{}, nil
	}
	if _, found := containsForbidden(v, in.Params.Forbidden); found {
		return validator.Outcome{}, nil
	}
	return validator.Outcome{Passed: true}, nil
}

// checkDateRange requires a YYYY-MM-DD date within [minDate, maxDate].
func checkDateRange(in validator.PredicateInput) (validator.Outcome, error) {
	v, ok, err := presentValue(in)
	if err != nil || !ok {
		return validator.Outcome{Passed: true}, err
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return validator.Outcome{Message: fmt.Sprintf("%s must be a date formatted YYYY-MM-DD", in.Field)}, nil
	}
	today := day(in.Now)
	if lo, set := bound(in.Params.MinDate, today); set && d.Before(lo) {
		return validator.Outcome{}, nil
	}
	if hi, set := bound(in.Params.MaxDate, today); set && d.After(hi) {
		return validator.Outcome{}, nil
	}
	return validator.Outcome{Passed: true}, nil
}

// checkNotExpired requires a document expiry date on or after the evaluation day.
func checkNotExpired(in validator.PredicateInput) (validator.Outcome, error) {
	v, ok, err := presentValue(in)
	if err != nil || !ok {
		return validator.Outcome{Passed: true}, err
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return validator.Outcome{Message: fmt.Sprintf("%s must be a date formatted YYYY-MM-DD", in.Field)}, nil
	}
	return validator.Outcome{Passed: !d.Before(day(in.Now))}, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bound(expr string, today time.Time) (time.Time, bool) {
	switch expr {
	case "":
		return time.Time{}, false
	case domain.DateToday:
		return today, true
	}
	t, err := time.Parse(time.DateOnly, expr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
