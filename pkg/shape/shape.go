// Package shape classifies runtime types into the capability shapes the
// resolution registry dispatches on. A type may satisfy several shapes at
// once; Classify reports them in fixed priority order and the registry stops
// at the first strategy that produces, so ordering rather than mutual
// exclusion disambiguates.
package shape

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/dynamic"
)

// Shape tags a capability classification of a type.
type Shape int

const (
	// IndexableList types expose integer-indexed element access and a count.
	IndexableList Shape = iota
	// StringKeyedMap types expose string-keyed lookup with untyped values and
	// are not also dynamically shaped.
	StringKeyedMap
	// GenericMap types expose key-based indexed access with arbitrary keys.
	GenericMap
	// DynamicObject types declare a member set that is not statically
	// enumerable (see pkg/dynamic).
	DynamicObject
	// PlainObject is the universal fallback: member lookup by name.
	PlainObject
)

var shapeNames = map[Shape]string{
	IndexableList:  "indexable-list",
	StringKeyedMap: "string-keyed-map",
	GenericMap:     "generic-map",
	DynamicObject:  "dynamic-object",
	PlainObject:    "plain-object",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Parse maps a shape name (as produced by String) back to its Shape. The
// boolean reports whether the name is known.
func Parse(name string) (Shape, bool) {
	for s, n := range shapeNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// All lists every shape in priority order.
func All() []Shape {
	return []Shape{IndexableList, StringKeyedMap, GenericMap, DynamicObject, PlainObject}
}

// maxUnwrap bounds pointer unwrapping so self-referential pointer chains
// cannot loop the classifier.
const maxUnwrap = 8

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Classify returns the shapes t satisfies, in fixed priority order. The
// result depends only on t, never on iteration order of host structures, so
// repeated calls are deterministic. A nil type satisfies PlainObject only.
func Classify(t reflect.Type) []Shape {
	t = Unwrap(t)
	if t == nil {
		return []Shape{PlainObject}
	}

	shapes := make([]Shape, 0, 3)
	isDynamic := dynamic.Implements(t)

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		shapes = append(shapes, IndexableList)
	case reflect.Map:
		// Dynamic types are kept out of StringKeyedMap so their specialized
		// strategy is not masked; GenericMap still applies.
		if !isDynamic && t.Key().Kind() == reflect.String && t.Elem() == anyType {
			shapes = append(shapes, StringKeyedMap)
		}
		shapes = append(shapes, GenericMap)
	}

	if isDynamic {
		shapes = append(shapes, DynamicObject)
	}
	return append(shapes, PlainObject)
}

// Unwrap strips pointer indirection from t, up to a fixed depth. Interfaces
// are left alone: their concrete shape is a render-time property.
func Unwrap(t reflect.Type) reflect.Type {
	for i := 0; t != nil && t.Kind() == reflect.Pointer && i < maxUnwrap; i++ {
		// A pointer type carrying its own GetMember is dynamic as-is.
		if dynamic.Implements(t) {
			return t
		}
		t = t.Elem()
	}
	return t
}

// Indirect is the value-level counterpart of Unwrap: it follows pointers and
// interfaces down to the concrete value. A nil anywhere along the chain
// yields the invalid Value, which callers treat as absent.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
