package tryto

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPanic marks errors produced from non-error panic values.
var ErrPanic = errors.New("panic")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// AsError normalizes a recovered panic value. Error values pass through
// unchanged so their message survives; anything else wraps ErrPanic.
func AsError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPanic, recovered)
}
