package accessor

import (
	"reflect"
	"sync"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/resolve"
	"github.com/goliatone/go-accessor/pkg/shape"
	"github.com/goliatone/go-accessor/pkg/truthy"
)

// Getter aliases getter.Getter for callers that only import the root package.
type Getter = getter.Getter

// Shape aliases shape.Shape.
type Shape = shape.Shape

// Shape tags re-exported for registry configuration at the root.
const (
	IndexableList  = shape.IndexableList
	StringKeyedMap = shape.StringKeyedMap
	GenericMap     = shape.GenericMap
	DynamicObject  = shape.DynamicObject
	PlainObject    = shape.PlainObject
)

// IsAmbiguous reports whether err is a member-name collision.
func IsAmbiguous(err error) bool { return getter.IsAmbiguous(err) }

// IsUnsupportedCaseInsensitive reports whether err is a case-insensitive
// lookup against a dynamic type.
func IsUnsupportedCaseInsensitive(err error) bool {
	return getter.IsUnsupportedCaseInsensitive(err)
}

// Engine is the compile-phase entry point: it owns the resolution registry,
// the truthiness policy and a memo of resolved getters. Engines are safe for
// concurrent use once constructed.
type Engine struct {
	registry   *resolve.Registry
	policy     truthy.Policy
	ignoreCase bool

	memo sync.Map // memoKey -> memoEntry
}

type memoKey struct {
	t          reflect.Type
	key        string
	ignoreCase bool
}

type memoEntry struct {
	g   getter.Getter
	err error
}

// New constructs an engine with the builtin strategy bindings, applying any
// options. Configuration happens here and only here: once the engine is
// handed to compilations, its behaviour for a given triple never changes.
func New(options ...Option) *Engine {
	s := newSettings(options...)
	return &Engine{
		registry:   s.buildRegistry(),
		policy:     s.policy,
		ignoreCase: s.ignoreCase,
	}
}

// Registry exposes the engine's resolution registry, mainly so tests and
// advanced callers can inspect bindings.
func (e *Engine) Registry() *resolve.Registry { return e.registry }

// Resolve produces the extraction procedure for key against the static type
// t. Outcomes are memoized per (type, key, ignoreCase) triple; repeated calls
// return procedures with identical observable behaviour.
func (e *Engine) Resolve(t reflect.Type, key string, ignoreCase bool) (Getter, error) {
	k := memoKey{t: t, key: key, ignoreCase: ignoreCase}
	if cached, ok := e.memo.Load(k); ok {
		entry := cached.(memoEntry)
		return entry.g, entry.err
	}

	g, err := e.registry.Resolve(t, key, ignoreCase)
	entry, _ := e.memo.LoadOrStore(k, memoEntry{g: g, err: err})
	stored := entry.(memoEntry)
	return stored.g, stored.err
}

// ResolveValue resolves key against v's runtime type using the engine's
// default case mode.
func (e *Engine) ResolveValue(v any, key string) (Getter, error) {
	return e.Resolve(reflect.TypeOf(v), key, e.ignoreCase)
}

// Get is the one-shot convenience: resolve against v's runtime type and
// invoke the procedure immediately. Compilation pipelines should prefer
// Resolve and reuse the getter.
func (e *Engine) Get(v any, key string) (any, bool, error) {
	g, err := e.ResolveValue(v, key)
	if err != nil {
		return nil, false, err
	}
	value, ok := g(v)
	return value, ok, nil
}

// ExcludedFromTruthiness reports whether values of t sit outside
// nonempty-container section semantics. The section renderer consults this
// before iterating.
func (e *Engine) ExcludedFromTruthiness(t reflect.Type) bool {
	return e.policy.Excluded(t)
}

// SectionTruthy decides whether v opens a template section. Containers are
// truthy when nonempty, unless their shape is excluded by policy. Excluded
// shapes (strings, generic maps by default) are judged as plain values
// instead, so an empty map still provides section context while an empty
// string stays falsey.
func (e *Engine) SectionTruthy(v any) bool {
	rv := shape.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}

	if rv.Kind() == reflect.Bool {
		return rv.Bool()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		if !e.policy.Excluded(rv.Type()) {
			return rv.Len() > 0
		}
	}
	return !rv.IsZero()
}
