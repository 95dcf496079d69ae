package strategies

import (
	"reflect"
	"strconv"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/shape"
)

// List resolves integer keys against indexable collections. Non-numeric keys
// decline; numeric keys produce a getter that bounds-checks against the live
// length, so an index that is valid at compile time but stale at render time
// comes back absent instead of panicking.
type List struct{}

// NewList constructs the indexable-list strategy.
func NewList() List { return List{} }

// Resolve implements Strategy.
func (List) Resolve(_ reflect.Type, key string, _ bool) (getter.Getter, error) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 {
		return nil, nil
	}

	return func(instance any) (any, bool) {
		v := shape.Indirect(reflect.ValueOf(instance))
		if !v.IsValid() {
			return nil, false
		}
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
		default:
			return nil, false
		}
		if idx >= v.Len() {
			return nil, false
		}
		return v.Index(idx).Interface(), true
	}, nil
}
