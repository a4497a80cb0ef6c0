package injekt

import (
	"context"
	"reflect"
)

// resolveType produces the single instance for a required type t. The rules
// are tried in strict priority order and the first one that yields a result
// wins:
//
//  1. An instance registered exactly under t is returned unchanged.
//  2. The registry is scanned in insertion order; the first instance whose
//     registered type is a strict subtype of t (registered under a different
//     key but assignable to interface t) is reused.
//  3. An interface with a constructor slot or a non-empty implementer set is
//     built through the singleton wrapper: the constructor bound directly to
//     the interface wins over implementers, and among implementers the first
//     one registered wins. A freshly built implementer is registered under
//     its own concrete type, never under the interface.
//  4. An interface with neither is unresolvable and fails with a
//     ResolutionError naming the type.
//  5. A concrete type is built through the singleton wrapper.
//
// The net effect is that any compatible object already alive is preferred
// over manufacturing a new one, and a known concrete implementation is
// preferred over the abstract type itself, which is never instantiated.
// The injector's lock is held by the caller.
func (j *Injector) resolveType(ctx context.Context, t reflect.Type, supplied *suppliedArgs) (any, error) {
	if instance, ok := j.registry.get(t); ok {
		return instance, nil
	}

	info := getTypeInfo(t)
	if info.isInterface {
		for _, key := range j.registry.types() {
			if key != t && canAssign(key, t) {
				instance, _ := j.registry.get(key)
				return instance, nil
			}
		}

		if _, bound := j.constructors[t]; bound {
			return j.construct(ctx, t, supplied)
		}
		if implementers := j.implementers[t]; len(implementers) > 0 {
			return j.construct(ctx, implementers[0], supplied)
		}
		return nil, &ResolutionError{
			Message:        "no concrete implementation found for abstract type",
			ReferencedType: t,
			Status:         j.status(),
		}
	}

	return j.construct(ctx, t, supplied)
}

// construct is the singleton construction wrapper: if the registry already
// holds an instance for t it is returned, otherwise exactly one new instance
// is built, stored under t, and returned. The first construction runs the
// registered constructor, which may recursively resolve its own
// dependencies; every later request short-circuits to the cached instance.
func (j *Injector) construct(ctx context.Context, t reflect.Type, supplied *suppliedArgs) (any, error) {
	if instance, ok := j.registry.get(t); ok {
		return instance, nil
	}

	c, ok := j.constructors[t]
	if !ok {
		if getTypeInfo(t).isInterface {
			// An interface slot can only exist through a bound
			// constructor; without one there is nothing to build.
			return nil, &ResolutionError{
				Message:        "no concrete implementation found for abstract type",
				ReferencedType: t,
				Status:         j.status(),
			}
		}
		instance := instantiate(t)
		j.registry.put(t, instance)
		return instance, nil
	}

	results, err := c.invoke(ctx, j, supplied)
	if err != nil {
		// A failing constructor surfaces its error unchanged to the
		// original caller.
		return nil, err
	}
	return j.storeResults(c, results, t)
}

// storeResults registers every non-error result of a constructor call under
// its declared result type and returns the instance matching the requested
// type. Results whose slot already holds an instance are left alone so the
// registry key stays unique.
func (j *Injector) storeResults(c *constructor, results []reflect.Value, t reflect.Type) (any, error) {
	var requested any
	found := false
	resultIndex := 0
	for _, result := range results {
		if result.Type().AssignableTo(errorType) {
			// already handled
			continue
		}
		resultType := c.results[resultIndex]
		resultIndex++

		instance := result.Interface()
		if _, exists := j.registry.get(resultType); !exists {
			j.registry.put(resultType, instance)
		}
		// A constructor may declare the same result type more than once;
		// only the first occurrence is canonical, matching what the
		// registry holds.
		if resultType == t && !found {
			requested = instance
			found = true
		}
	}

	if !found {
		// We should never get here: the constructor was registered in
		// this slot precisely because it declares t as a result.
		return nil, &ResolutionError{
			Message:        "constructor did not produce requested type",
			ReferencedType: t,
			Status:         j.status(),
		}
	}
	return requested, nil
}

// instantiate builds a default instance for a concrete type with no
// registered constructor: a fresh zero-valued object for pointer types, the
// zero value otherwise.
func instantiate(t reflect.Type) any {
	if t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}
