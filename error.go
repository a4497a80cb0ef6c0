package injekt

import (
	"fmt"
	"reflect"
)

// ResolutionError reports a failure of the resolution policy itself, most
// notably a required abstract type with no concrete implementer. Errors
// returned by a failing constructor are not wrapped in a ResolutionError on
// the request path; they surface unchanged to the original caller. The one
// exception is eager construction, whose panic value is a ResolutionError
// with the constructor's error as SourceError since there is no caller to
// hand the error back to.
type ResolutionError struct {
	Message        string
	ReferencedType reflect.Type
	Status         string
	SourceError    error
}

func (e *ResolutionError) Error() string {
	if e.SourceError == nil {
		return fmt.Sprintf("%s: %v", e.Message, e.ReferencedType)
	} else {
		return fmt.Sprintf("%s: %v (%v)", e.Message, e.ReferencedType, e.Unwrap().Error())
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.SourceError
}
