package injekt

import (
	"context"
	"reflect"

	"github.com/gburgyan/go-timing"
)

// constructor is the descriptor for a registered constructor function: the
// function itself plus the parameter and result types the resolver needs.
// One constructor may produce several types; it is registered in the slot of
// each of its non-error results and still runs at most once.
type constructor struct {
	fn      any
	params  []reflect.Type
	results []reflect.Type
}

// newConstructor validates the constructor function and builds its
// descriptor. If the function is not a valid constructor this panics since
// that's a programming error, not a runtime condition.
func newConstructor(fn any) *constructor {
	funcType := reflect.TypeOf(fn)
	if funcType.Kind() != reflect.Func {
		// double-checking this because it's cheap. There should be no
		// public way to get here.
		panic("constructor must be a function")
	}

	info := getTypeInfo(funcType)
	if len(info.funcResults) == 0 {
		panic("constructor must have at least one non-error result value")
	}

	return &constructor{
		fn:      fn,
		params:  info.funcParams,
		results: info.funcResults,
	}
}

// invoke calls the constructor with a fully filled argument set. Parameters
// are filled in declaration order: a context.Context parameter receives ctx,
// a parameter covered by a caller-supplied argument receives that value
// verbatim, and everything else is resolved from the injector. The injector's
// lock is held by the caller for the duration of the call.
func (c *constructor) invoke(ctx context.Context, j *Injector, supplied *suppliedArgs) ([]reflect.Value, error) {
	params := make([]reflect.Value, len(c.params))
	for i, paramType := range c.params {
		if paramType == contextType {
			params[i] = reflect.ValueOf(ctx)
			continue
		}
		if value, ok := supplied.take(paramType); ok {
			params[i] = value
			continue
		}
		instance, err := j.resolveType(ctx, paramType, noSuppliedArgs)
		if err != nil {
			return nil, err
		}
		params[i] = instanceValue(instance, paramType)
	}

	var complete timing.Complete
	if EnableTiming >= TimingConstructors {
		var timingCtx *timing.Context
		timingCtx, complete = timing.Start(ctx, "injekt:"+c.results[0].String())
		ctx = timingCtx
		params = replaceContextParams(c.params, params, ctx)
	}

	results := reflect.ValueOf(c.fn).Call(params)

	if complete != nil {
		complete()
	}

	if err := constructorError(results); err != nil {
		return nil, err
	}
	return results, nil
}

// constructorError finds the error result from a constructor call, if it
// exists. If no error is present this returns nil.
func constructorError(results []reflect.Value) error {
	for _, result := range results {
		if !result.Type().AssignableTo(errorType) {
			continue
		}
		errValue := result.Convert(errorType)
		if errValue.IsNil() {
			continue
		}
		return errValue.Interface().(error)
	}
	return nil
}

// replaceContextParams swaps the already-filled context parameters for the
// timing-wrapped context so the constructor's own work is attributed to it.
func replaceContextParams(paramTypes []reflect.Type, params []reflect.Value, ctx context.Context) []reflect.Value {
	for i, paramType := range paramTypes {
		if paramType == contextType {
			params[i] = reflect.ValueOf(ctx)
		}
	}
	return params
}

// instanceValue converts a resolved instance into a reflect.Value suitable
// for the declared parameter type. A nil instance becomes the type's zero
// value.
func instanceValue(instance any, t reflect.Type) reflect.Value {
	if instance == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(instance)
}

// suppliedArgs tracks the caller-provided arguments of a construction request
// and which of them have been consumed. Each argument fills the first
// not-yet-filled parameter its dynamic type is assignable to; supplied values
// are used verbatim and are never placed in the registry.
type suppliedArgs struct {
	values []reflect.Value
	used   []bool
}

// noSuppliedArgs is the empty argument set used for nested resolutions:
// caller-supplied arguments only ever apply to the directly requested type.
var noSuppliedArgs = &suppliedArgs{}

func newSuppliedArgs(args []any) *suppliedArgs {
	if len(args) == 0 {
		return noSuppliedArgs
	}
	s := &suppliedArgs{
		values: make([]reflect.Value, len(args)),
		used:   make([]bool, len(args)),
	}
	for i, arg := range args {
		if arg == nil {
			panic("injekt: cannot supply an untyped nil argument")
		}
		s.values[i] = reflect.ValueOf(arg)
	}
	return s
}

// take returns the first unconsumed supplied value assignable to t and marks
// it consumed.
func (s *suppliedArgs) take(t reflect.Type) (reflect.Value, bool) {
	for i, value := range s.values {
		if s.used[i] {
			continue
		}
		if value.Type().AssignableTo(t) {
			s.used[i] = true
			return value, true
		}
	}
	return reflect.Value{}, false
}
