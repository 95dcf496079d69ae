// Package resolve owns the shape → strategy binding table and the priority
// walk that turns a (type, key, ignoreCase) triple into a compiled getter.
// The registry is configured up front (override or remove bindings before
// compilation starts) and then read concurrently by any number of
// compilations without further locking discipline on the caller's side.
package resolve

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/member"
	"github.com/goliatone/go-accessor/pkg/shape"
	"github.com/goliatone/go-accessor/pkg/strategies"
)

// Registry binds each capability shape to its resolution strategy. The
// mutex covers reconfiguration; the resolution walk only reads.
type Registry struct {
	mu       sync.RWMutex
	bindings map[shape.Shape]strategies.Strategy
}

// Option customises registry construction.
type Option func(*Registry)

// WithStrategy replaces the builtin strategy bound to s.
func WithStrategy(s shape.Shape, strategy strategies.Strategy) Option {
	return func(r *Registry) {
		if strategy == nil {
			return
		}
		r.bindings[s] = strategy
	}
}

// WithoutShape removes the binding for s so the walk skips it entirely.
func WithoutShape(s shape.Shape) Option {
	return func(r *Registry) {
		delete(r.bindings, s)
	}
}

// WithMemberCache supplies the member-table cache backing the plain-object
// strategy, letting several registries share one cache.
func WithMemberCache(tables *member.Cache) Option {
	return func(r *Registry) {
		r.bindings[shape.PlainObject] = strategies.NewMember(tables)
	}
}

// New constructs a registry with the builtin strategy per shape, then applies
// any options. The result is treated as immutable configuration: do not
// reconfigure a registry that live compilations are already reading.
func New(options ...Option) *Registry {
	r := &Registry{
		bindings: map[shape.Shape]strategies.Strategy{
			shape.IndexableList:  strategies.NewList(),
			shape.StringKeyedMap: strategies.NewStringMap(),
			shape.GenericMap:     strategies.NewGenericMap(),
			shape.DynamicObject:  strategies.NewDynamic(),
			shape.PlainObject:    strategies.NewMember(nil),
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Override rebinds s to strategy. Like the options, this is a static
// configuration step for callers that assemble registries imperatively.
func (r *Registry) Override(s shape.Shape, strategy strategies.Strategy) {
	if strategy == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[s] = strategy
}

// Remove drops the binding for s.
func (r *Registry) Remove(s shape.Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, s)
}

// Strategy returns the strategy currently bound to s.
func (r *Registry) Strategy(s shape.Shape) (strategies.Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	strategy, ok := r.bindings[s]
	return strategy, ok
}

// Resolve walks the shapes t satisfies in priority order and returns the
// first produced getter. A strategy that declines passes control to the next
// shape; a strategy that fails stops resolution immediately with its error.
//
// With the builtin bindings the walk always terminates with a getter or an
// error, because PlainObject matches every type and its strategy never
// declines. A caller who removes that terminus can resolve to nothing, which
// surfaces as an error rather than a nil getter.
func (r *Registry) Resolve(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error) {
	for _, s := range shape.Classify(t) {
		strategy, ok := r.Strategy(s)
		if !ok {
			continue
		}
		g, err := strategy.Resolve(t, key, ignoreCase)
		if err != nil {
			return nil, err
		}
		if g != nil {
			return g, nil
		}
	}
	return nil, fmt.Errorf("resolve: no strategy produced an accessor for key %q on %v", key, t)
}
