package param

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// RequiredValueError reports a required parameter with no value at validation
// time.
type RequiredValueError struct {
	Param string
}

func (e *RequiredValueError) Error() string {
	return fmt.Sprintf("parameter %q is required but has no value", e.Param)
}

// TypeMismatchError reports a value whose type is not compatible with the
// parameter's type hint.
type TypeMismatchError struct {
	Param string
	Want  cty.Type
	Got   cty.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q: value of type %s is not compatible with %s",
		e.Param, e.Got.FriendlyName(), e.Want.FriendlyName())
}

// InvalidRangeError reports a value rejected by the parameter's allowed range.
type InvalidRangeError struct {
	Param string
	Range string
	Value cty.Value
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("parameter %q: value %s is outside allowed range %q",
		e.Param, e.Value.GoString(), e.Range)
}
