package injekt

// eagerDependencies is an internal wrapper to signal to the Injector that
// these dependencies should be constructed at registration time rather than
// on first request. This is created by Eager().
type eagerDependencies struct {
	dependencies []any
}

// Eager wraps dependencies passed to Register or New so that their
// constructors run immediately, synchronously, as part of registration.
// Use it for types whose construction should fail fast at startup instead
// of on the first request that needs them.
func Eager(dependencies ...any) *eagerDependencies {
	return &eagerDependencies{
		dependencies: dependencies,
	}
}
