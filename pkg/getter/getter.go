package getter

// Getter is a compiled extraction procedure: it reads the value a template
// key refers to out of an instance. The second return reports presence:
// false means "absent", which renders as empty rather than failing the
// render. Getters are pure closures over their resolution inputs and are safe
// for concurrent, repeated invocation.
type Getter func(instance any) (value any, ok bool)

// Absent is a produced procedure that never finds a value. Strategies return
// it when resolution succeeds but the key can never match (e.g. no such
// member), keeping "missing data" distinct from resolution failure.
func Absent() Getter {
	return func(any) (any, bool) { return nil, false }
}

// Constant returns a getter that always yields v. Used by tests and by
// callers stubbing resolution in compiled programs.
func Constant(v any) Getter {
	return func(any) (any, bool) { return v, true }
}
