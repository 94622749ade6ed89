package validator

import (
	"fmt"
	"sync"
	"sync/atomic"

	"dataquality/internal/domain"
)

// Snapshot is an immutable version of the rule table. Validations load one snapshot
// and use it for the whole call, so an administrative change never shows up halfway
// through a record or a batch.
type Snapshot struct {
	version uint64
	rules   []domain.ValidationRule
	index   map[string]int
}

func newSnapshot(version uint64, rules []domain.ValidationRule) *Snapshot {
	idx := make(map[string]int, len(rules))
	for i := range rules {
		idx[rules[i].ID] = i
	}
	return &Snapshot{version: version, rules: rules, index: idx}
}

// Version increases by one on every published change.
func (s *Snapshot) Version() uint64 { return s.version }

// Len returns the number of rules in the snapshot.
func (s *Snapshot) Len() int { return len(s.rules) }

// Rules returns a copy of all rules in insertion order.
func (s *Snapshot) Rules() []domain.ValidationRule {
	return cloneRules(s.rules)
}

// RulesByClientType returns the rules scoped to t or to all client types, enabled or not.
// Unknown client types yield an empty slice.
func (s *Snapshot) RulesByClientType(t domain.ClientType) []domain.ValidationRule {
	out := []domain.ValidationRule{}
	if !t.Valid() {
		return out
	}
	for i := range s.rules {
		if s.rules[i].Scope.Includes(t) {
			out = append(out, s.rules[i].Clone())
		}
	}
	return out
}

// Rule returns a copy of the rule with the given id.
func (s *Snapshot) Rule(id string) (domain.ValidationRule, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.ValidationRule{}, false
	}
	return s.rules[i].Clone(), true
}

// RuleTable owns the mutable set of validation rules. Reads are lock-free; writers are
// serialised and publish a fresh snapshot.
type RuleTable struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewRuleTable seeds a table with rules, rejecting invalid definitions and duplicate ids.
func NewRuleTable(rules []domain.ValidationRule) (*RuleTable, error) {
	seen := make(map[string]bool, len(rules))
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", rules[i].ID, err)
		}
		if seen[rules[i].ID] {
			return nil, fmt.Errorf("rule %q: %w", rules[i].ID, domain.ErrDuplicateRule)
		}
		seen[rules[i].ID] = true
	}
	t := &RuleTable{}
	t.current.Store(newSnapshot(1, cloneRules(rules)))
	return t, nil
}

// Snapshot returns the current immutable version of the table.
func (t *RuleTable) Snapshot() *Snapshot {
	return t.current.Load()
}

// Version returns the version of the current snapshot.
func (t *RuleTable) Version() uint64 {
	return t.Snapshot().Version()
}

// Rules returns every rule in insertion order.
func (t *RuleTable) Rules() []domain.ValidationRule {
	return t.Snapshot().Rules()
}

// RulesByClientType returns the rules applicable to t; see Snapshot.RulesByClientType.
func (t *RuleTable) RulesByClientType(ct domain.ClientType) []domain.ValidationRule {
	return t.Snapshot().RulesByClientType(ct)
}

// Rule returns a copy of the rule with the given id.
func (t *RuleTable) Rule(id string) (domain.ValidationRule, bool) {
	return t.Snapshot().Rule(id)
}

// UpdateRule applies a partial update to the rule identified by id. It returns false,
// leaving the table untouched, when no such rule exists. An update that would leave the
// rule invalid is rejected with ErrInvalidRuleUpdate and nothing is published.
func (t *RuleTable) UpdateRule(id string, upd domain.RuleUpdate) (bool, error) {
	var found bool
	var invalid error
	t.mutate(func(rules []domain.ValidationRule, idx map[string]int) ([]domain.ValidationRule, bool) {
		i, ok := idx[id]
		if !ok {
			return nil, false
		}
		found = true
		next := upd.Apply(rules[i])
		if err := next.Validate(); err != nil {
			invalid = fmt.Errorf("%w: rule %s: %v", domain.ErrInvalidRuleUpdate, id, err)
			return nil, false
		}
		rules[i] = next
		return rules, true
	})
	return found, invalid
}

// ToggleRule flips the enabled flag of the rule identified by id.
func (t *RuleTable) ToggleRule(id string) bool {
	return t.mutate(func(rules []domain.ValidationRule, idx map[string]int) ([]domain.ValidationRule, bool) {
		i, ok := idx[id]
		if !ok {
			return nil, false
		}
		rules[i].Enabled = !rules[i].Enabled
		return rules, true
	})
}

// DeleteRule removes the rule identified by id.
func (t *RuleTable) DeleteRule(id string) bool {
	return t.mutate(func(rules []domain.ValidationRule, idx map[string]int) ([]domain.ValidationRule, bool) {
		i, ok := idx[id]
		if !ok {
			return nil, false
		}
		return append(rules[:i], rules[i+1:]...), true
	})
}

// AddRule appends a new rule at the end of the table.
func (t *RuleTable) AddRule(rule domain.ValidationRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	var dup bool
	t.mutate(func(rules []domain.ValidationRule, idx map[string]int) ([]domain.ValidationRule, bool) {
		if _, ok := idx[rule.ID]; ok {
			dup = true
			return nil, false
		}
		return append(rules, rule.Clone()), true
	})
	if dup {
		return fmt.Errorf("rule %q: %w", rule.ID, domain.ErrDuplicateRule)
	}
	return nil
}

// mutate runs fn on a private copy of the current rules and publishes the result when fn
// reports a change.
func (t *RuleTable) mutate(fn func(rules []domain.ValidationRule, idx map[string]int) ([]domain.ValidationRule, bool)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.current.Load()
	next, changed := fn(cloneRules(cur.rules), cur.index)
	if !changed {
		return false
	}
	t.current.Store(newSnapshot(cur.version+1, next))
	return true
}

func cloneRules(rules []domain.ValidationRule) []domain.ValidationRule {
	out := make([]domain.ValidationRule, len(rules))
	for i := range rules {
		out[i] = rules[i].Clone()
	}
	return out
}
