package validator

import (
	"time"

	"dataquality/internal/domain"
)

// PredicateInput is what a custom predicate sees when its rule is evaluated.
type PredicateInput struct {
	Record domain.ClientRecord
	Field  string
	Params domain.RuleParams
	Now    time.Time
}

// Outcome is the verdict of a custom predicate. Message, when set, replaces the rule's
// configured message in the reported issue.
type Outcome struct {
	Passed  bool
	Message string
}

// Predicate is a named, pure check backing rules of kind custom.
type Predicate interface {
	Key() string
	Check(in PredicateInput) (Outcome, error)
}

// PredicateFunc adapts a function to the Predicate interface.
type PredicateFunc struct {
	key string
	fn  func(PredicateInput) (Outcome, error)
}

// NewPredicate wraps fn under the given registry key.
func NewPredicate(key string, fn func(PredicateInput) (Outcome, error)) *PredicateFunc {
	return &PredicateFunc{key: key, fn: fn}
}

func (p *PredicateFunc) Key() string                              { return p.key }
func (p *PredicateFunc) Check(in PredicateInput) (Outcome, error) { return p.fn(in) }
