package injekt

import (
	"context"
	"reflect"
)

// Invoke calls fn with its parameters resolved from the injector, the same
// way a constructor's parameters are filled: context.Context parameters
// receive ctx, caller-supplied args fill the first parameter they are
// assignable to, and everything else goes through the resolution policy.
// If fn returns an error it is returned unchanged; all other results are
// discarded. Invoke panics if fn is not a function.
//
// This is a convenience for running wiring or validation logic against the
// injector without declaring a throwaway injectable type:
//
//	err := j.Invoke(ctx, func(db Database, users *UserService) error {
//	    return users.Healthy(db)
//	})
func (j *Injector) Invoke(ctx context.Context, fn any, args ...any) error {
	fnType := reflect.TypeOf(fn)
	if fnType == nil || fnType.Kind() != reflect.Func {
		panic("injekt: Invoke argument must be a function")
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	info := getTypeInfo(fnType)
	supplied := newSuppliedArgs(args)

	params := make([]reflect.Value, len(info.funcParams))
	for i, paramType := range info.funcParams {
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
			return err
		}
		params[i] = instanceValue(instance, paramType)
	}

	results := reflect.ValueOf(fn).Call(params)
	return constructorError(results)
}
