package getter

import (
	"errors"
	"fmt"
	"reflect"
)

// AmbiguousMemberError reports that more than one member of a type matches a
// key under case-insensitive comparison. The target type has a naming
// collision (typically case-variant members) the resolver cannot
// disambiguate; the template author needs to rename or qualify the key.
type AmbiguousMemberError struct {
	Type reflect.Type
	Key  string
}

func (e *AmbiguousMemberError) Error() string {
	return fmt.Sprintf("getter: ambiguous member %q on %s", e.Key, typeName(e.Type))
}

// UnsupportedCaseInsensitiveError reports a case-insensitive lookup against a
// dynamically shaped type. Dynamic member binding has no way to enumerate
// candidate names, so the request is a caller contract violation rather than
// a recoverable miss.
type UnsupportedCaseInsensitiveError struct {
	Type reflect.Type
	Key  string
}

func (e *UnsupportedCaseInsensitiveError) Error() string {
	return fmt.Sprintf("getter: case-insensitive lookup of %q is not supported on dynamic type %s", e.Key, typeName(e.Type))
}

// IsAmbiguous reports whether err is (or wraps) an AmbiguousMemberError.
func IsAmbiguous(err error) bool {
	var target *AmbiguousMemberError
	return errors.As(err, &target)
}

// IsUnsupportedCaseInsensitive reports whether err is (or wraps) an
// UnsupportedCaseInsensitiveError.
func IsUnsupportedCaseInsensitive(err error) bool {
	var target *UnsupportedCaseInsensitiveError
	return errors.As(err, &target)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
