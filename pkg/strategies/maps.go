package strategies

import (
	"reflect"
	"strconv"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/shape"
)

// StringMap resolves keys against string-keyed maps with untyped values. It
// always produces: presence is decided at render time by the live map, and
// case sensitivity is whatever the map's own keys say, so ignoreCase is
// deliberately not honoured here.
type StringMap struct{}

// NewStringMap constructs the string-keyed-map strategy.
func NewStringMap() StringMap { return StringMap{} }

// Resolve implements Strategy.
func (StringMap) Resolve(_ reflect.Type, key string, _ bool) (getter.Getter, error) {
	return mapGetter(key), nil
}

// GenericMap resolves keys against maps with arbitrary key types. The key
// string is converted to the map's key type where a conversion exists;
// missing keys and unconvertible keys both come back absent rather than
// failing the render.
type GenericMap struct{}

// NewGenericMap constructs the generic-map strategy.
func NewGenericMap() GenericMap { return GenericMap{} }

// Resolve implements Strategy.
func (GenericMap) Resolve(_ reflect.Type, key string, _ bool) (getter.Getter, error) {
	return mapGetter(key), nil
}

func mapGetter(key string) getter.Getter {
	return func(instance any) (any, bool) {
		v := shape.Indirect(reflect.ValueOf(instance))
		if !v.IsValid() || v.Kind() != reflect.Map {
			return nil, false
		}
		kv, ok := convertKey(key, v.Type().Key())
		if !ok {
			return nil, false
		}
		elem := v.MapIndex(kv)
		if !elem.IsValid() {
			return nil, false
		}
		return elem.Interface(), true
	}
}

// convertKey coerces the template key string into the map's key type.
func convertKey(key string, kt reflect.Type) (reflect.Value, bool) {
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(kt), true
	case reflect.Interface:
		if kt.NumMethod() == 0 {
			return reflect.ValueOf(key), true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil || reflect.Zero(kt).OverflowInt(n) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, 64)
		if err != nil || reflect.Zero(kt).OverflowUint(n) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	}
	return reflect.Value{}, false
}
