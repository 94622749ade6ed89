package validator

import "sort"

// Registry maps predicate keys to Predicate implementations.
type Registry struct {
	predicates map[string]Predicate
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[string]Predicate)}
}

// Register adds a predicate to the registry, replacing any predicate with the same key.
func (r *Registry) Register(p Predicate) {
	r.predicates[p.Key()] = p
}

// Get returns the predicate for a given key, or nil if not found.
func (r *Registry) Get(key string) Predicate {
	return r.predicates[key]
}

// Keys returns the registered predicate keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.predicates))
	for k := range r.predicates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
