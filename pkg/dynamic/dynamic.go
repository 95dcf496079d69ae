// Package dynamic defines the capability contract for values whose member set
// is not statically enumerable. Types opt in by implementing Reader; the
// classifier treats any such type as dynamically shaped and routes lookups
// through late-bound member access instead of reflection over struct fields.
package dynamic

import "reflect"

// Reader is implemented by dynamically shaped values. GetMember resolves a
// member by exact name against the value's live shape; the boolean reports
// presence. Implementations must be safe for concurrent reads.
type Reader interface {
	GetMember(name string) (any, bool)
}

var readerType = reflect.TypeOf((*Reader)(nil)).Elem()

// Implements reports whether t declares itself dynamically shaped. Both the
// value and pointer method sets are checked, since Go promotes pointer
// receivers only onto *T.
func Implements(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(readerType) {
		return true
	}
	if t.Kind() != reflect.Pointer {
		return reflect.PointerTo(t).Implements(readerType)
	}
	return false
}
