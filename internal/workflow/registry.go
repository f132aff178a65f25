// registry.go maps predicate names to predicate builders.
//
// Definitions reference predicates by name; the registry resolves those
// names at bind time. A builder takes the declaration's optional integer
// argument so parameterised predicates (min-length, min-sequences) share
// the same registration shape as fixed ones, which ignore it.

package workflow

import (
	"fmt"
	"sync"

	"github.com/jpl-au/seqcheck/internal/seqstats"
)

// Builder constructs a stats predicate from an optional integer argument.
type Builder func(arg int) func(seqstats.Stats) bool

// Registry maps predicate names to builders. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns an empty predicate registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds a builder under the given name. Overwrites any existing
// registration.
func (r *Registry) Register(name string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.builders == nil {
		r.builders = make(map[string]Builder)
	}
	r.builders[name] = b
}

// Get returns the builder for name, or nil and false if not found.
func (r *Registry) Get(name string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[name]
	return b, ok
}

// MustGet returns the builder for name, or panics if not found.
func (r *Registry) MustGet(name string) Builder {
	b, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("workflow: predicate %q not registered", name))
	}
	return b
}

// Names returns all registered predicate names (unordered).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for n := range r.builders {
		names = append(names, n)
	}
	return names
}

// DefaultRegistry returns a registry pre-populated with the built-in
// seqstats predicates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("has-sequences", func(int) func(seqstats.Stats) bool { return seqstats.HasSequences })
	r.Register("single-sequence", func(int) func(seqstats.Stats) bool { return seqstats.SingleSequence })
	r.Register("non-empty", func(int) func(seqstats.Stats) bool { return seqstats.NonEmpty })
	r.Register("min-sequences", seqstats.MinSequences)
	r.Register("min-length", seqstats.MinLength)
	return r
}
