package injekt

import "context"

type TimingMode int

const (
	// TimingDisable will disable timing for all injectors.
	TimingDisable TimingMode = iota

	// TimingConstructors will start a timing context for each constructor that is
	// called. This is useful to see where all time of execution is being spent
	// during dependency resolution.
	TimingConstructors
)

var EnableTiming = TimingDisable

// defaultInjector is the process-wide injector behind the package-level API.
// Its lifecycle is explicit: it starts empty and Reset clears its instance
// registry; there is no implicit teardown.
var defaultInjector = New()

// Default returns the process-wide Injector used by the package-level
// functions. It is handed to the generic helpers that need an explicit
// injector, such as ImplementIn.
func Default() *Injector {
	return defaultInjector
}

// Register marks types as injectable on the process-wide injector. See
// Injector.Register for the accepted dependency forms.
func Register(dependencies ...any) {
	defaultInjector.Register(dependencies...)
}

// Implement declares concrete type C as an implementer of interface I on the
// process-wide injector. See ImplementIn.
func Implement[I any, C any]() {
	ImplementIn[I, C](defaultInjector)
}

// Construct returns the canonical instance of T from the process-wide
// injector, building it and any of its dependencies as needed.
// Caller-supplied args fill matching constructor parameters verbatim and are
// never registered, so manual and injected dependencies can be mixed freely.
func Construct[T any](args ...any) (T, error) {
	return Resolve[T](defaultInjector, args...)
}

// ConstructContext behaves like Construct with an explicit context handed to
// any constructor that declares a context.Context parameter.
func ConstructContext[T any](ctx context.Context, args ...any) (T, error) {
	return ResolveContext[T](ctx, defaultInjector, args...)
}

// MustConstruct behaves like Construct but panics if resolution fails. The
// typical behavior for an unresolvable dependency is panicking on the
// caller's side anyway, so this presents a simplified interface for getting
// required instances.
func MustConstruct[T any](args ...any) T {
	return MustResolve[T](defaultInjector, args...)
}

// Invoke calls fn with its parameters resolved from the process-wide
// injector. See Injector.Invoke.
func Invoke(fn any, args ...any) error {
	return defaultInjector.Invoke(context.Background(), fn, args...)
}

// Reset clears the process-wide injector's instance registry. It is intended
// to be called between independent test runs; instance references already
// captured by callers stay alive but become detached from the registry.
func Reset() {
	defaultInjector.Reset()
}

// Status returns the diagnostic state of the process-wide injector.
func Status() string {
	return defaultInjector.Status()
}
