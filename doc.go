// Package accessor resolves template variable keys into reusable extraction
// procedures. Given the static type of a data value and a lookup key, the
// engine decides once, during template compilation, how that key should be
// read (list index, map lookup, dynamic member, struct member) and hands back
// a Getter the compiled rendering program can invoke on every render without
// re-dispatching on type.
//
// # Quick start
//
//	engine := accessor.New()
//
//	get, err := engine.Resolve(reflect.TypeOf(Article{}), "Title", false)
//	if err != nil {
//	    // ambiguous member or unsupported case mode; a compile-time problem
//	}
//	value, ok := get(article) // ok == false renders as empty
//
// Missing data is never an error: out-of-range indexes, absent map keys and
// unknown members all come back as (nil, false). Only two conditions fail
// resolution, both at compile time: a case-insensitive member collision
// (getter.AmbiguousMemberError) and a case-insensitive lookup against a
// dynamically shaped type (getter.UnsupportedCaseInsensitiveError).
//
// Resolution walks capability shapes in fixed priority order (indexable
// list, string-keyed map, generic map, dynamic object, plain object) and
// stops at the first strategy that produces. Each binding can be replaced or
// removed through options before compilation starts; see pkg/resolve.
package accessor
