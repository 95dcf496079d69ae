package strategies

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/getter"
	"github.com/goliatone/go-accessor/pkg/member"
	"github.com/goliatone/go-accessor/pkg/shape"
)

// Member resolves keys by structured-type member lookup: exported fields
// (promotion included) and exported niladic single-result methods. It is the
// universal terminus of resolution and never declines: a key with no match
// produces an always-absent getter, because missing members are a normal
// outcome of template rendering, not an error. The only failure mode is a
// case-insensitive naming collision on the target type.
type Member struct {
	tables *member.Cache
}

// NewMember constructs the plain-object strategy over a shared member-table
// cache.
func NewMember(tables *member.Cache) Member {
	if tables == nil {
		tables = member.NewCache(member.DefaultCacheSize)
	}
	return Member{tables: tables}
}

// Resolve implements Strategy.
func (s Member) Resolve(t reflect.Type, key string, ignoreCase bool) (getter.Getter, error) {
	tbl := s.tables.Table(shape.Unwrap(t))

	acc, res := tbl.Lookup(key, ignoreCase)
	switch res {
	case member.Ambiguous:
		return nil, &getter.AmbiguousMemberError{Type: t, Key: key}
	case member.Missing, member.FoundCaseOnly:
		// A case-insensitive-only match when exact matching was required is
		// indistinguishable from "no member" at render time.
		return getter.Absent(), nil
	}

	return func(instance any) (any, bool) {
		v := reflect.ValueOf(instance)
		live := shape.Indirect(v)
		if !live.IsValid() {
			return nil, false
		}
		if live.Type() == acc.Type() {
			return acc.Read(v)
		}
		// The runtime type drifted from the compile-time one. Re-resolve
		// against the live type; compile-time errors stay compile-time, so
		// an ambiguity here degrades to absent.
		liveAcc, liveRes := s.tables.Table(live.Type()).Lookup(key, ignoreCase)
		if liveRes != member.Found {
			return nil, false
		}
		return liveAcc.Read(v)
	}, nil
}
