package resolve

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/shape"
	"github.com/goliatone/go-accessor/pkg/strategies"
)

type record struct {
	Title string
}

type clash struct {
	ID int
	Id int
}

type dyn struct{}

func (dyn) GetMember(name string) (any, bool) {
	if name == "tag" {
		return "dynamic", true
	}
	return nil, false
}

func TestResolvePriorityOrder(t *testing.T) {
	r := New()

	cases := []struct {
		name string
		typ  reflect.Type
		key  string
		data any
		want any
	}{
		{
			name: "integer key hits the list strategy",
			typ:  reflect.TypeOf([]string{}),
			key:  "1",
			data: []string{"a", "b"},
			want: "b",
		},
		{
			name: "non-integer key on a slice falls through to members",
			typ:  reflect.TypeOf([]string{}),
			key:  "Title",
			data: []string{"a"},
			want: nil,
		},
		{
			name: "string keyed map wins over generic map",
			typ:  reflect.TypeOf(map[string]any{}),
			key:  "k",
			data: map[string]any{"k": "v"},
			want: "v",
		},
		{
			name: "typed map resolves via generic map",
			typ:  reflect.TypeOf(map[string]int{}),
			key:  "n",
			data: map[string]int{"n": 3},
			want: 3,
		},
		{
			name: "dynamic member",
			typ:  reflect.TypeOf(dyn{}),
			key:  "tag",
			data: dyn{},
			want: "dynamic",
		},
		{
			name: "plain member",
			typ:  reflect.TypeOf(record{}),
			key:  "Title",
			data: record{Title: "t"},
			want: "t",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := r.Resolve(tc.typ, tc.key, false)
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if g == nil {
				t.Fatal("resolution must always produce for builtin bindings")
			}
			v, ok := g(tc.data)
			if tc.want == nil {
				if ok {
					t.Fatalf("expected absent, got %v", v)
				}
				return
			}
			if !ok || v != tc.want {
				t.Fatalf("want %v, got (%v, %v)", tc.want, v, ok)
			}
		})
	}
}

func TestResolveFailureStopsWalk(t *testing.T) {
	fallbackRan := false
	r := New(
		WithStrategy(shape.PlainObject, strategies.Func(func(reflect.Type, string, bool) (getter.Getter, error) {
			fallbackRan = true
			return getter.Absent(), nil
		})),
	)

	// ignoreCase against a dynamic type fails in the DynamicObject strategy;
	// PlainObject must never be consulted afterwards.
	_, err := r.Resolve(reflect.TypeOf(dyn{}), "tag", true)
	if !getter.IsUnsupportedCaseInsensitive(err) {
		t.Fatalf("expected UnsupportedCaseInsensitiveError, got %v", err)
	}
	if fallbackRan {
		t.Fatal("a failed strategy must stop the walk")
	}
}

func TestResolveAmbiguousMember(t *testing.T) {
	r := New()
	_, err := r.Resolve(reflect.TypeOf(clash{}), "id", true)
	if !getter.IsAmbiguous(err) {
		t.Fatalf("expected AmbiguousMemberError, got %v", err)
	}
}

func TestOverrideAndRemove(t *testing.T) {
	r := New()

	r.Override(shape.IndexableList, strategies.Func(func(reflect.Type, string, bool) (getter.Getter, error) {
		return getter.Constant("overridden"), nil
	}))
	g, err := r.Resolve(reflect.TypeOf([]int{}), "0", false)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v, _ := g(nil); v != "overridden" {
		t.Fatalf("override not honoured, got %v", v)
	}

	// Removing the binding reverts integer keys to the member fallback.
	r.Remove(shape.IndexableList)
	g, err = r.Resolve(reflect.TypeOf([]int{}), "0", false)
	if err != nil {
		t.Fatalf("resolve after removal failed: %v", err)
	}
	if _, ok := g([]int{1, 2}); ok {
		t.Fatal("without the list strategy an integer key has no member to find")
	}
}

func TestResolveWithoutTerminus(t *testing.T) {
	r := New(WithoutShape(shape.PlainObject))
	_, err := r.Resolve(reflect.TypeOf(record{}), "Title", false)
	if err == nil {
		t.Fatal("removing the terminus must surface an error, not a nil getter")
	}
	if getter.IsAmbiguous(err) || getter.IsUnsupportedCaseInsensitive(err) {
		t.Fatalf("expected a plain registry error, got %v", err)
	}
}

func TestStrategyAccessor(t *testing.T) {
	r := New()
	if _, ok := r.Strategy(shape.GenericMap); !ok {
		t.Fatal("builtin binding missing")
	}
	r.Remove(shape.GenericMap)
	if _, ok := r.Strategy(shape.GenericMap); ok {
		t.Fatal("removed binding still present")
	}
}

func TestNilStrategyIsIgnored(t *testing.T) {
	r := New(WithStrategy(shape.PlainObject, nil))
	if _, ok := r.Strategy(shape.PlainObject); !ok {
		t.Fatal("nil strategy must not clobber the builtin binding")
	}
	r.Override(shape.PlainObject, nil)
	if _, ok := r.Strategy(shape.PlainObject); !ok {
		t.Fatal("nil override must be a no-op")
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := New()
	typ := reflect.TypeOf(clash{})

	for i := 0; i < 20; i++ {
		_, err := r.Resolve(typ, "id", true)
		if !getter.IsAmbiguous(err) {
			t.Fatalf("run %d lost the ambiguity outcome: %v", i, err)
		}
	}
}
