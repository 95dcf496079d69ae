package strategies

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/dynamic"
	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/shape"
)

// Dynamic resolves keys against dynamically shaped values via their
// dynamic.Reader capability. Case-insensitive lookup is a hard failure:
// dynamic binding cannot enumerate candidate names, so there is nothing to
// fold against.
type Dynamic struct{}

// NewDynamic constructs the dynamic-object strategy.
func NewDynamic() Dynamic { return Dynamic{} }

// Resolve implements Strategy.
func (Dynamic) Resolve(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error) {
	if ignoreCase {
		return nil, &getter.UnsupportedCaseInsensitiveError{Type: t, Key: key}
	}

	// Dynamic containers backed by a string-keyed map get the cheap map
	// lookup instead of full member binding.
	if ut := shape.Unwrap(t); ut != nil && ut.Kind() == reflect.Map && ut.Key().Kind() == reflect.String {
		return mapGetter(key), nil
	}

	// Late-bound member access: the capability is asserted against the
	// runtime instance, not the static type seen at compile time.
	return func(instance any) (any, bool) {
		r, ok := instance.(dynamic.Reader)
		if !ok {
			return nil, false
		}
		return r.GetMember(key)
	}, nil
}
