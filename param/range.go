package param

import (
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"
)

// Range is a named predicate over a candidate parameter value. The name is
// what validation failures and manifests refer to, so anonymous ranges are
// not allowed.
type Range struct {
	Name  string
	Check func(cty.Value) bool
}

// ranges is the process-wide table of named range predicates. Registration
// happens at init time, before any concurrent use.
var ranges = map[string]*Range{}

// RegisterRange adds a named range predicate to the table so that manifests
// can reference it. Registering the same name twice is a programmer error.
func RegisterRange(name string, check func(cty.Value) bool) *Range {
	if _, exists := ranges[name]; exists {
		panic(fmt.Sprintf("range predicate with name '%s' already registered", name))
	}
	slog.Debug("Registering range predicate.", "name", name)
	r := &Range{Name: name, Check: check}
	ranges[name] = r
	return r
}

// LookupRange resolves a range predicate by name.
func LookupRange(name string) (*Range, bool) {
	r, ok := ranges[name]
	return r, ok
}

func numberBetween(v cty.Value, min, max float64) bool {
	if !v.Type().Equals(cty.Number) {
		return false
	}
	f, _ := v.AsBigFloat().Float64()
	return f >= min && f <= max
}

// Built-in ranges available to every manifest and in-code registration.
var (
	RangePositive = RegisterRange("positive", func(v cty.Value) bool {
		if !v.Type().Equals(cty.Number) {
			return false
		}
		return v.AsBigFloat().Sign() > 0
	})

	RangeNonNegative = RegisterRange("non_negative", func(v cty.Value) bool {
		if !v.Type().Equals(cty.Number) {
			return false
		}
		return v.AsBigFloat().Sign() >= 0
	})

	RangeNonEmpty = RegisterRange("non_empty", func(v cty.Value) bool {
		return v.Type().Equals(cty.String) && v.AsString() != ""
	})

	RangePort = RegisterRange("port", func(v cty.Value) bool {
		return numberBetween(v, 1, 65535)
	})

	RangeHTTPStatus = RegisterRange("http_status", func(v cty.Value) bool {
		return numberBetween(v, 100, 599)
	})
)
