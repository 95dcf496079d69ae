// Package truthy decides which shapes are excluded from "nonempty container
// means truthy section" semantics. Strings and generic maps are iterable, but
// iterating a string's characters or a map's entries is almost never what a
// template section means, so both sit on the exclusion list by default. This
// is a lookup table over the same classification pkg/shape computes, not an
// algorithm of its own.
package truthy

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/shape"
)

// Policy is the membership predicate the section renderer consults before
// treating a nonempty iterable as truthy. The zero value excludes nothing;
// use Default for the standard exclusions.
type Policy struct {
	strings bool
	maps    bool
	extra   map[reflect.Type]struct{}
}

// Default returns the standard policy: textual strings and generic maps are
// excluded.
func Default() Policy {
	return Policy{strings: true, maps: true}
}

// WithStrings returns a copy of p with string exclusion set.
func (p Policy) WithStrings(excluded bool) Policy {
	p.strings = excluded
	return p
}

// WithMaps returns a copy of p with map exclusion set.
func (p Policy) WithMaps(excluded bool) Policy {
	p.maps = excluded
	return p
}

// WithTypes returns a copy of p that additionally excludes the given types.
func (p Policy) WithTypes(types ...reflect.Type) Policy {
	extra := make(map[reflect.Type]struct{}, len(p.extra)+len(types))
	for t := range p.extra {
		extra[t] = struct{}{}
	}
	for _, t := range types {
		if t != nil {
			extra[t] = struct{}{}
		}
	}
	p.extra = extra
	return p
}

// Excluded reports whether values of t sit outside nonempty-container
// truthiness even though they are iterable.
func (p Policy) Excluded(t reflect.Type) bool {
	t = shape.Unwrap(t)
	if t == nil {
		return false
	}
	if _, ok := p.extra[t]; ok {
		return true
	}
	switch t.Kind() {
	case reflect.String:
		return p.strings
	case reflect.Map:
		return p.maps
	}
	return false
}
