package conf

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// VariantCombinations builds the Cartesian product of variant values across
// every parameter that declares variants. Parameter names are iterated in
// sorted order, so the resulting sequence of combinations is deterministic.
// A configuration with no variant parameters yields no combinations.
func (c *Config) VariantCombinations() []map[string]cty.Value {
	var names []string
	variants := make(map[string][]cty.Value)
	for _, p := range c.params {
		if len(p.Variants) > 0 {
			names = append(names, p.Name)
			variants[p.Name] = p.Variants
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	combos := []map[string]cty.Value{{}}
	for _, name := range names {
		var next []map[string]cty.Value
		for _, combo := range combos {
			for _, value := range variants[name] {
				extended := make(map[string]cty.Value, len(combo)+1)
				for k, v := range combo {
					extended[k] = v
				}
				extended[name] = value
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}

// VariantTags renders a combination as sorted `name=value` tag strings, used
// to build the distinguishing tags of each variant registration key.
func VariantTags(combo map[string]cty.Value) []string {
	tags := make([]string, 0, len(combo))
	for name, value := range combo {
		tags = append(tags, fmt.Sprintf("%s=%s", name, tagValue(value)))
	}
	sort.Strings(tags)
	return tags
}

// tagValue formats a variant value compactly enough to live inside a key tag.
func tagValue(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() {
		return "null"
	}
	switch {
	case v.Type().Equals(cty.String):
		return v.AsString()
	case v.Type().Equals(cty.Bool):
		if v.True() {
			return "true"
		}
		return "false"
	case v.Type().Equals(cty.Number):
		return v.AsBigFloat().Text('g', -1)
	default:
		return v.GoString()
	}
}
