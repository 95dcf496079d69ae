// Package member implements name-based member lookup for plain structured
// types. Rather than walking embedding chains on every resolution, each type
// gets a flattened case-insensitive name → accessor table, built once via
// reflection and held in an LRU cache shared by the engine.
package member

import (
	"reflect"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-accessor/pkg/shape"
)

// Members are exported struct fields (promoted fields from embedding
// included) and exported niladic single-result methods. Unexported
// identifiers are invisible, mirroring encoding/json visibility.

// Accessor reads one named member from instances of a known type.
type Accessor struct {
	// Name is the member's exact declared name.
	Name string

	typ    reflect.Type
	index  []int
	method string
}

// Result classifies a table lookup.
type Result int

const (
	// Missing means no member matches the key, even case-insensitively.
	Missing Result = iota
	// Found means exactly one member matches and the match is usable.
	Found
	// FoundCaseOnly means exactly one member matches case-insensitively but
	// an exact match was required.
	FoundCaseOnly
	// Ambiguous means two or more members collide on the folded key.
	Ambiguous
)

// Table is an immutable flattened member index for one struct type.
type Table struct {
	typ    reflect.Type
	byFold map[string][]Accessor
}

// Build constructs the member table for t. Non-struct types (after pointer
// unwrap) yield an empty table: they simply have no named members.
func Build(t reflect.Type) *Table {
	tbl := &Table{typ: t, byFold: map[string][]Accessor{}}

	base := t
	for base != nil && base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base == nil || base.Kind() != reflect.Struct {
		return tbl
	}

	exactNames := map[string]struct{}{}
	for _, f := range reflect.VisibleFields(base) {
		if f.PkgPath != "" {
			continue
		}
		exactNames[f.Name] = struct{}{}
		tbl.add(Accessor{Name: f.Name, typ: base, index: f.Index})
	}

	// Methods come from the pointer method set so value- and
	// pointer-receiver properties both resolve.
	ptr := reflect.PointerTo(base)
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)
		if m.PkgPath != "" {
			continue
		}
		// Receiver plus no arguments, single result.
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if _, taken := exactNames[m.Name]; taken {
			continue
		}
		tbl.add(Accessor{Name: m.Name, typ: base, method: m.Name})
	}

	return tbl
}

func (t *Table) add(a Accessor) {
	fold := strings.ToLower(a.Name)
	t.byFold[fold] = append(t.byFold[fold], a)
}

// Lookup finds the member matching key. Matching is case-insensitive first;
// Result reports whether the single match is usable under the requested case
// mode, or whether the folded key is ambiguous.
func (t *Table) Lookup(key string, ignoreCase bool) (Accessor, Result) {
	matches := t.byFold[strings.ToLower(key)]
	switch len(matches) {
	case 0:
		return Accessor{}, Missing
	case 1:
		m := matches[0]
		if ignoreCase || m.Name == key {
			return m, Found
		}
		return Accessor{}, FoundCaseOnly
	default:
		return Accessor{}, Ambiguous
	}
}

// Len reports how many distinct folded names the table holds.
func (t *Table) Len() int { return len(t.byFold) }

// Read extracts the member's live value from instance. It is nil-safe: nil
// instances, nil interior pointers, and receiver mismatches all come back as
// absent rather than panicking at render time.
func (a Accessor) Read(instance reflect.Value) (any, bool) {
	v := shape.Indirect(instance)
	if !v.IsValid() {
		return nil, false
	}

	if a.method != "" {
		return a.call(v)
	}

	for _, i := range a.index {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct || i >= v.NumField() {
			return nil, false
		}
		v = v.Field(i)
	}
	return v.Interface(), true
}

func (a Accessor) call(v reflect.Value) (any, bool) {
	m := v.MethodByName(a.method)
	if !m.IsValid() && v.CanAddr() {
		m = v.Addr().MethodByName(a.method)
	}
	if !m.IsValid() {
		// Pointer-receiver method on an unaddressable value: bind against an
		// addressable copy.
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		m = pv.MethodByName(a.method)
	}
	if !m.IsValid() {
		return nil, false
	}
	out := m.Call(nil)
	if len(out) != 1 {
		return nil, false
	}
	return out[0].Interface(), true
}

// Type reports the struct type the accessor was built against.
func (a Accessor) Type() reflect.Type { return a.typ }

// DefaultCacheSize bounds the shared member-table cache. Template programs
// touch a small, stable set of model types, so a modest cap is plenty.
const DefaultCacheSize = 256

// Cache memoizes member tables by type.
type Cache struct {
	tables *lru.Cache[reflect.Type, *Table]
}

// NewCache constructs a table cache. Sizes below 1 fall back to
// DefaultCacheSize.
func NewCache(size int) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	// lru.New only fails on a non-positive size, which is guarded above.
	tables, err := lru.New[reflect.Type, *Table](size)
	if err != nil {
		panic(err)
	}
	return &Cache{tables: tables}
}

// Table returns the cached member table for t, building it on first use.
// Concurrent callers may race to build the same table; both results are
// identical so either may win the cache slot.
func (c *Cache) Table(t reflect.Type) *Table {
	if tbl, ok := c.tables.Get(t); ok {
		return tbl
	}
	tbl := Build(t)
	c.tables.Add(t, tbl)
	return tbl
}
