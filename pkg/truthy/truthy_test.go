package truthy

import (
	"reflect"
	"testing"
)

type custom struct{ N int }

func TestDefaultExclusions(t *testing.T) {
	p := Default()

	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{name: "string", typ: reflect.TypeOf(""), want: true},
		{name: "named string", typ: reflect.TypeOf(customString("")), want: true},
		{name: "generic map", typ: reflect.TypeOf(map[int]string{}), want: true},
		{name: "string keyed map", typ: reflect.TypeOf(map[string]any{}), want: true},
		{name: "slice", typ: reflect.TypeOf([]int{}), want: false},
		{name: "array", typ: reflect.TypeOf([2]int{}), want: false},
		{name: "struct", typ: reflect.TypeOf(custom{}), want: false},
		{name: "pointer to string unwraps", typ: reflect.TypeOf(new(string)), want: true},
		{name: "nil type", typ: nil, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Excluded(tc.typ); got != tc.want {
				t.Fatalf("excluded(%v): want %v, got %v", tc.typ, tc.want, got)
			}
		})
	}
}

type customString string

func TestZeroPolicyExcludesNothing(t *testing.T) {
	var p Policy
	if p.Excluded(reflect.TypeOf("")) || p.Excluded(reflect.TypeOf(map[int]int{})) {
		t.Fatal("zero policy must exclude nothing")
	}
}

func TestPolicyOverrides(t *testing.T) {
	p := Default().WithStrings(false)
	if p.Excluded(reflect.TypeOf("")) {
		t.Fatal("strings re-included")
	}
	if !p.Excluded(reflect.TypeOf(map[int]int{})) {
		t.Fatal("maps must stay excluded")
	}

	p = Default().WithMaps(false)
	if p.Excluded(reflect.TypeOf(map[int]int{})) {
		t.Fatal("maps re-included")
	}
}

func TestPolicyExtraTypes(t *testing.T) {
	base := Default()
	p := base.WithTypes(reflect.TypeOf(custom{}))

	if !p.Excluded(reflect.TypeOf(custom{})) {
		t.Fatal("extra type must be excluded")
	}
	if !p.Excluded(reflect.TypeOf(&custom{})) {
		t.Fatal("exclusion must apply through pointers")
	}
	// WithTypes copies: the base policy is untouched.
	if base.Excluded(reflect.TypeOf(custom{})) {
		t.Fatal("policies must be value-semantics copies")
	}
}
