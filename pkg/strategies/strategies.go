// Package strategies implements one accessor resolution rule per capability
// shape. A strategy inspects (type, key, ignoreCase) during compilation and
// either produces a getter, declines so the registry can try the next shape,
// or fails hard when the request itself is invalid.
package strategies

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/getter"
)

// Strategy attempts to resolve an extraction procedure for a key against a
// static type.
//
// The return pair is tri-state: (g, nil) produces g, (nil, nil) declines so
// resolution falls through to the next shape, and (nil, err) fails the whole
// resolution for this key with no further fallback.
type Strategy interface {
	Resolve(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error)
}

// Func adapts a plain function to the Strategy interface, mirroring
// http.HandlerFunc. Used heavily by tests and by callers overriding registry
// bindings.
type Func func(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error)

// Resolve implements Strategy.
func (f Func) Resolve(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error) {
	return f(t, key, ignoreCase)
}
