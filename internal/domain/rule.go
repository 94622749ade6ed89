package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// RuleParams holds the tunable parameters of a rule. Which fields matter depends on the
// rule kind and, for custom rules, on the predicate.
type RuleParams struct {
	Allowed   []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength int      `json:"minLength,omitempty" yaml:"min_length,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"max_length,omitempty"`
	Prefix    string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Forbidden []string `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
	MinDate   string   `json:"minDate,omitempty" yaml:"min_date,omitempty"`
	MaxDate   string   `json:"maxDate,omitempty" yaml:"max_date,omitempty"`
}

// Clone returns a deep copy of p.
func (p RuleParams) Clone() RuleParams {
	p.Allowed = slices.Clone(p.Allowed)
	p.Forbidden = slices.Clone(p.Forbidden)
	return p
}

// ValidationRule is one constraint of the rule table.
type ValidationRule struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Field       string             `json:"field" yaml:"field"`
	Scope       RuleScope          `json:"clientType" yaml:"client_type"`
	Kind        RuleKind           `json:"ruleType" yaml:"rule_type"`
	Predicate   string             `json:"predicate,omitempty" yaml:"predicate,omitempty"`
	Params      RuleParams         `json:"params" yaml:"params,omitempty"`
	Message     string             `json:"errorMessage" yaml:"error_message"`
	Severity    ValidationSeverity `json:"severity" yaml:"severity"`
	Enabled     bool               `json:"isActive" yaml:"enabled"`
	Category    string             `json:"category,omitempty" yaml:"category,omitempty"`
}

// Clone returns a deep copy of r.
func (r ValidationRule) Clone() ValidationRule {
	r.Params = r.Params.Clone()
	return r
}

// Validate checks the structural invariants of a rule definition.
func (r *ValidationRule) Validate() error {
	var problems []string
	if strings.TrimSpace(r.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(r.Field) == "" {
		problems = append(problems, "field is required")
	}
	if !r.Scope.Valid() {
		problems = append(problems, fmt.Sprintf("clientType %q must be 1, 2, 3 or all", r.Scope))
	}
	if !r.Kind.Valid() {
		problems = append(problems, fmt.Sprintf("ruleType %q is not supported", r.Kind))
	}
	if r.Kind == RuleKindEnum && len(r.Params.Allowed) == 0 {
		problems = append(problems, "enum rules need params.allowed")
	}
	if r.Kind == RuleKindCustom && r.Predicate == "" {
		problems = append(problems, "custom rules need a predicate")
	}
	if !r.Severity.Valid() {
		problems = append(problems, fmt.Sprintf("severity %q must be error or warning", r.Severity))
	}
	if err := r.Params.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRule, strings.Join(problems, "; "))
	}
	return nil
}

// RuleUpdate is a partial update of the mutable fields of a rule. Nil fields are left as is.
type RuleUpdate struct {
	Enabled  *bool               `json:"isActive,omitempty"`
	Severity *ValidationSeverity `json:"severity,omitempty"`
	Params   *RuleParams         `json:"params,omitempty"`
	Message  *string             `json:"errorMessage,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u *RuleUpdate) Empty() bool {
	return u.Enabled == nil && u.Severity == nil && u.Params == nil && u.Message == nil
}

// Validate rejects updates carrying out-of-domain values.
func (u *RuleUpdate) Validate() error {
	if u.Empty() {
		return fmt.Errorf("%w: no mutable field given (isActive, severity, params, errorMessage)", ErrInvalidRuleUpdate)
	}
	if u.Severity != nil && !u.Severity.Valid() {
		return fmt.Errorf("%w: severity %q must be error or warning", ErrInvalidRuleUpdate, *u.Severity)
	}
	if u.Params != nil {
		if err := u.Params.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRuleUpdate, err)
		}
	}
	return nil
}

// Apply returns a copy of r with the update applied.
func (u *RuleUpdate) Apply(r ValidationRule) ValidationRule {
	out := r.Clone()
	if u.Enabled != nil {
		out.Enabled = *u.Enabled
	}
	if u.Severity != nil {
		out.Severity = *u.Severity
	}
	if u.Params != nil {
		out.Params = u.Params.Clone()
	}
	if u.Message != nil {
		out.Message = *u.Message
	}
	return out
}

// DateToday is accepted by RuleParams.MinDate and MaxDate as the evaluation day.
const DateToday = "today"

// Validate checks that pattern and date bounds are well formed.
func (p *RuleParams) Validate() error {
	if p.Pattern != "" {
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("params.pattern: %v", err)
		}
	}
	bounds := [...]struct{ name, value string }{{"minDate", p.MinDate}, {"maxDate", p.MaxDate}}
	for _, b := range bounds {
		if b.value == "" || b.value == DateToday {
			continue
		}
		if _, err := time.Parse(time.DateOnly, b.value); err != nil {
			return fmt.Errorf("params.%s %q must be YYYY-MM-DD or %q", b.name, b.value, DateToday)
		}
	}
	if p.MinLength < 0 || p.MaxLength < 0 {
		return fmt.Errorf("params lengths must not be negative")
	}
	return nil
}
