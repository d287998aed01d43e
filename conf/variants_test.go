package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/configo/param"
	"github.com/zclconf/go-cty/cty"
)

func TestVariantCombinationsCartesianProduct(t *testing.T) {
	c := New()
	c.Add(param.Parameter{
		Name:     "has_val_split",
		Value:    cty.True,
		TypeHint: cty.Bool,
		Variants: []cty.Value{cty.True, cty.False},
	})
	c.Add(param.Parameter{
		Name:     "has_test_split",
		Value:    cty.True,
		TypeHint: cty.Bool,
		Variants: []cty.Value{cty.True, cty.False},
	})
	c.Add(param.Parameter{Name: "name", Value: cty.StringVal("ds1"), TypeHint: cty.String})

	combos := c.VariantCombinations()
	require.Len(t, combos, 4)

	seen := make(map[string]bool)
	for _, combo := range combos {
		require.Len(t, combo, 2)
		tags := VariantTags(combo)
		require.Len(t, tags, 2)
		seen[tags[0]+"|"+tags[1]] = true
	}
	assert.Len(t, seen, 4, "combinations must be distinct")
	assert.True(t, seen["has_test_split=true|has_val_split=true"])
	assert.True(t, seen["has_test_split=false|has_val_split=false"])
}

func TestVariantCombinationsDeterministicOrder(t *testing.T) {
	build := func() []map[string]cty.Value {
		c := New()
		c.Add(param.Parameter{Name: "b", Variants: []cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}})
		c.Add(param.Parameter{Name: "a", Variants: []cty.Value{cty.StringVal("x"), cty.StringVal("y")}})
		return c.VariantCombinations()
	}

	first := build()
	second := build()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, VariantTags(first[i]), VariantTags(second[i]))
	}

	// Names are iterated sorted: "a" varies slower than "b".
	assert.Equal(t, []string{"a=x", "b=1"}, VariantTags(first[0]))
	assert.Equal(t, []string{"a=x", "b=2"}, VariantTags(first[1]))
	assert.Equal(t, []string{"a=y", "b=1"}, VariantTags(first[2]))
}

func TestVariantCombinationsNoVariants(t *testing.T) {
	c := New()
	c.Add(param.Parameter{Name: "x", Value: cty.True})
	assert.Nil(t, c.VariantCombinations())
}

func TestVariantTagsFormatting(t *testing.T) {
	tags := VariantTags(map[string]cty.Value{
		"flag":   cty.False,
		"count":  cty.NumberIntVal(100),
		"method": cty.StringVal("GET"),
	})
	assert.Equal(t, []string{"count=100", "flag=false", "method=GET"}, tags)
}
