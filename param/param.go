package param

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Parameter is a named, typed, constrained value holder. It is owned by
// exactly one configuration; it is never shared between configurations, so
// Copy is used whenever a configuration is copied.
type Parameter struct {
	Name        string
	Value       cty.Value // cty.NilVal means unset
	TypeHint    cty.Type  // cty.NilType means unconstrained
	Description string
	Required    bool
	Range       *Range
	Variants    []cty.Value
	Tags        map[string]struct{}
}

// IsSet reports whether the parameter holds any value, including an explicit
// null. Only cty.NilVal counts as unset.
func (p *Parameter) IsSet() bool {
	return p.Value != cty.NilVal
}

// Validate checks the parameter's implicit constraints in a fixed order:
// required presence first, then type compatibility, then the allowed range.
// A value violating both the type hint and the range reports the type
// mismatch. An unset optional parameter is always valid.
func (p *Parameter) Validate() error {
	if !p.IsSet() {
		if p.Required {
			return &RequiredValueError{Param: p.Name}
		}
		return nil
	}

	if p.TypeHint != cty.NilType && !p.Value.IsNull() {
		if _, err := convert.Convert(p.Value, p.TypeHint); err != nil {
			return &TypeMismatchError{Param: p.Name, Want: p.TypeHint, Got: p.Value.Type()}
		}
	}

	if p.Range != nil && !p.Value.IsNull() && !p.Range.Check(p.Value) {
		return &InvalidRangeError{Param: p.Name, Range: p.Range.Name, Value: p.Value}
	}

	return nil
}

// Equal compares two parameters by name, value and type hint. Description,
// tags and the other metadata fields are deliberately excluded.
func (p *Parameter) Equal(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Name != other.Name {
		return false
	}
	if !p.Value.RawEquals(other.Value) {
		return false
	}
	if p.TypeHint == cty.NilType || other.TypeHint == cty.NilType {
		return p.TypeHint == other.TypeHint
	}
	return p.TypeHint.Equals(other.TypeHint)
}

// Copy returns a parameter with independent storage. cty values are immutable
// and the range predicate is stateless, so both are shared; the variants
// slice and tag set are duplicated.
func (p *Parameter) Copy() *Parameter {
	dup := *p
	if p.Variants != nil {
		dup.Variants = make([]cty.Value, len(p.Variants))
		copy(dup.Variants, p.Variants)
	}
	if p.Tags != nil {
		dup.Tags = make(map[string]struct{}, len(p.Tags))
		for tag := range p.Tags {
			dup.Tags[tag] = struct{}{}
		}
	}
	return &dup
}

// TagSet builds a tag set from its elements.
func TagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
