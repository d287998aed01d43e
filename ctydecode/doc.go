// Package ctydecode converts cty values into plain Go values, and injects a
// validated configuration's parameter values into a component struct.
//
// Injection is driven by `conf:"param_name"` struct tags: each tagged field
// receives the value of the parameter with that name, converted to the
// field's Go type. Unset parameters leave the field at its zero value.
package ctydecode
