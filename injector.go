package injekt

import (
	"context"
	"reflect"
	"sync"
)

// Injector is the resolution engine: it owns the instance registry, the
// constructor slots, and the implementer sets for interface types.
//
// Injectable types are declared with Register. A function passed to Register
// is a constructor: its non-error result types name the types it produces,
// its parameters are the dependencies injekt resolves before calling it, and
// an optional error result reports construction failure. A non-function
// value passed to Register is stored directly as the live instance for its
// concrete type. Construction is lazy: a constructor runs the first time
// one of its result types is requested, and exactly once.
//
// All operations on an Injector are serialized by a single lock, so a race
// between two concurrent requests for the same unconstructed type can never
// produce two distinct singleton instances, and Reset never interleaves with
// an in-flight resolution. The entire recursive resolution of a request runs
// under that lock; constructors must therefore declare their dependencies as
// parameters rather than call back into the same Injector.
type Injector struct {
	lock         sync.Mutex
	registry     *registry
	constructors map[reflect.Type]*constructor
	implementers map[reflect.Type][]reflect.Type
}

// New creates an empty Injector and registers any dependencies passed in,
// exactly as Register would.
func New(dependencies ...any) *Injector {
	j := &Injector{
		registry:     newRegistry(),
		constructors: map[reflect.Type]*constructor{},
		implementers: map[reflect.Type][]reflect.Type{},
	}
	j.Register(dependencies...)
	return j
}

// Register marks types as injectable. Functions become constructor slots for
// each of their non-error result types; other values become the live
// registered instance for their concrete type. Registering is idempotent:
// registering the same constructor again is a no-op in effect, and a new
// constructor for an already-slotted type replaces the old one without
// disturbing an instance that was already built.
//
// Dependencies wrapped in Eager are constructed immediately instead of on
// first request. Register panics on arguments that cannot be registered
// (an untyped nil, or a function with no non-error results) since those are
// programming errors.
func (j *Injector) Register(dependencies ...any) {
	j.lock.Lock()
	defer j.lock.Unlock()

	for _, dependency := range dependencies {
		if eager, ok := dependency.(*eagerDependencies); ok {
			j.registerEager(eager)
			continue
		}
		j.register(dependency)
	}
}

// register adds a single dependency and returns the constructor descriptor
// if the dependency introduced one. The injector's lock is held.
func (j *Injector) register(dependency any) *constructor {
	if dependency == nil {
		panic("injekt: cannot register an untyped nil dependency")
	}

	t := reflect.TypeOf(dependency)
	if t.Kind() != reflect.Func {
		j.registry.put(t, dependency)
		return nil
	}

	c := newConstructor(dependency)
	for _, resultType := range c.results {
		j.constructors[resultType] = c
	}
	return c
}

// registerEager registers the wrapped dependencies and then constructs each
// of their result types right away. An eager construction failure panics
// with a ResolutionError carrying the constructor's error as its cause: the
// registration call site has no error path and a broken eager constructor is
// not a recoverable runtime condition.
func (j *Injector) registerEager(eager *eagerDependencies) {
	var eagerTypes []reflect.Type
	for _, dependency := range eager.dependencies {
		if c := j.register(dependency); c != nil {
			eagerTypes = append(eagerTypes, c.results...)
		}
	}
	for _, t := range eagerTypes {
		if _, err := j.construct(context.Background(), t, noSuppliedArgs); err != nil {
			panic(&ResolutionError{
				Message:        "eager construction failed",
				ReferencedType: t,
				Status:         j.status(),
				SourceError:    err,
			})
		}
	}
}

// Construct fills target, which must be a non-nil pointer, with the resolved
// instance of the pointed-to type, running the resolution policy for it.
// Caller-supplied args fill matching constructor parameters verbatim and are
// never registered; parameters they don't cover are injected. ctx is handed
// to constructors that declare a context.Context parameter.
//
// This is the non-generic core of the construction API; Resolve and
// Construct[T] are the usual entry points.
func (j *Injector) Construct(ctx context.Context, target any, args ...any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.IsNil() {
		panic("injekt: construction target must be a non-nil pointer")
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	t := targetValue.Type().Elem()
	instance, err := j.resolveType(ctx, t, newSuppliedArgs(args))
	if err != nil {
		return err
	}
	targetValue.Elem().Set(instanceValue(instance, t))
	return nil
}

// Reset clears the instance registry entirely. Constructor slots and
// implementer sets survive, so types stay injectable; the next request for a
// type builds a fresh instance. Instance references already held by callers
// are unaffected but become detached from the registry. Reset is intended
// for test isolation and is safe to call at any time between resolutions.
func (j *Injector) Reset() {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.registry.clear()
}

// Resolve returns the canonical instance of T from the injector, building it
// if needed. Caller-supplied args fill matching constructor parameters of T
// verbatim (mixed manual/injected construction); see Construct.
func Resolve[T any](j *Injector, args ...any) (T, error) {
	return ResolveContext[T](context.Background(), j, args...)
}

// ResolveContext behaves like Resolve with an explicit context handed to any
// constructor that declares a context.Context parameter.
func ResolveContext[T any](ctx context.Context, j *Injector, args ...any) (T, error) {
	var target T
	err := j.Construct(ctx, &target, args...)
	return target, err
}

// MustResolve behaves like Resolve but panics if resolution fails.
func MustResolve[T any](j *Injector, args ...any) T {
	instance, err := Resolve[T](j, args...)
	if err != nil {
		panic(err)
	}
	return instance
}
