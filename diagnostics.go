package injekt

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Status is a diagnostic tool that returns a string describing the state of
// the injector. The result is each type the injector knows about: whether a
// live instance exists, the constructor that can make one, and the declared
// implementers of each abstract type.
//
// Note that while everything that is returned is true, a concrete type that
// has never been registered or requested is not yet known, even if a future
// request would resolve it.
func (j *Injector) Status() string {
	j.lock.Lock()
	defer j.lock.Unlock()
	return j.status()
}

// status builds the diagnostic dump. The injector's lock is held by the
// caller, which lets resolution failures embed the state at failure time.
func (j *Injector) status() string {
	typeLines := map[string]string{}
	var typeKeys []string

	note := func(t reflect.Type, line string) {
		key := fmt.Sprintf("%v", t)
		if _, seen := typeLines[key]; !seen {
			typeKeys = append(typeKeys, key)
		}
		typeLines[key] = line
	}

	for t, c := range j.constructors {
		if _, exists := j.registry.get(t); exists {
			note(t, fmt.Sprintf("%v - created from constructor: %s", t, formatConstructorDebug(c.fn)))
		} else {
			note(t, fmt.Sprintf("%v - uninitialized - constructor: %s", t, formatConstructorDebug(c.fn)))
		}
	}
	for _, t := range j.registry.types() {
		if _, hasConstructor := j.constructors[t]; !hasConstructor {
			note(t, fmt.Sprintf("%v - instance set", t))
		}
	}
	for t, implementers := range j.implementers {
		names := make([]string, len(implementers))
		for i, impl := range implementers {
			names[i] = impl.String()
		}
		suffix := "implemented by: " + strings.Join(names, ", ")
		// An interface may also carry a bound constructor or a live
		// instance; its line from the earlier passes is extended, not
		// replaced.
		key := fmt.Sprintf("%v", t)
		if existing, seen := typeLines[key]; seen {
			typeLines[key] = existing + " - " + suffix
			continue
		}
		note(t, fmt.Sprintf("%v - abstract - %s", t, suffix))
	}

	sort.Strings(typeKeys)

	result := strings.Builder{}
	for _, key := range typeKeys {
		if result.Len() > 0 {
			result.WriteString("\n")
		}
		result.WriteString(typeLines[key])
	}
	return result.String()
}

// formatConstructorDebug simply returns a string representation of a
// constructor. This is used instead of the native `%#v` formatter to not
// return the raw address of the function as that's not important for this
// and simplifies testing.
func formatConstructorDebug(fn any) string {
	if fn == nil {
		return "-"
	}
	fnType := reflect.TypeOf(fn)
	if fnType.Kind() != reflect.Func {
		// We should never get here
		return "non-function!"
	}
	builder := strings.Builder{}
	builder.WriteString("(")
	for i := 0; i < fnType.NumIn(); i++ {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fnType.In(i).String())
	}
	builder.WriteString(") ")
	for i := 0; i < fnType.NumOut(); i++ {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fnType.Out(i).String())
	}
	return builder.String()
}
