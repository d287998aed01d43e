package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/configo/conf"
	"github.com/vk/configo/param"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
)

type fetcher struct {
	Method    string `conf:"method"`
	KeepAlive bool   `conf:"keep_alive"`
}

func fetcherConfig() *conf.Config {
	c := conf.New()
	c.Add(param.Parameter{
		Name:     "method",
		Value:    cty.StringVal("GET"),
		TypeHint: cty.String,
		Variants: []cty.Value{cty.StringVal("GET"), cty.StringVal("HEAD")},
	})
	c.Add(param.Parameter{
		Name:     "keep_alive",
		Value:    cty.True,
		TypeHint: cty.Bool,
		Variants: []cty.Value{cty.True, cty.False},
	})
	return c
}

func TestAddConfigurationVariantsExpandsProduct(t *testing.T) {
	r := New()
	base := regkey.MustNew("fetcher", nil, "net")

	keys, err := r.AddConfigurationVariants(base, fetcherConfig)
	require.NoError(t, err)

	// Two parameters with two variant values each yield four registrations,
	// one per combination, and no registration for the bare base key.
	require.Len(t, keys, 4)
	assert.False(t, r.Contains(base))

	want := []string{
		"fetcher--{keep_alive=true,method=GET}--net",
		"fetcher--{keep_alive=false,method=GET}--net",
		"fetcher--{keep_alive=true,method=HEAD}--net",
		"fetcher--{keep_alive=false,method=HEAD}--net",
	}
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k.String()] = true
		assert.True(t, r.Contains(k))
	}
	for _, id := range want {
		assert.True(t, seen[id], "missing variant key %s", id)
	}

	// Every variant key partially matches the base key.
	assert.Len(t, r.FindKeys(base), 4)
}

func TestAddConfigurationVariantsNoVariants(t *testing.T) {
	r := New()
	base := regkey.MustNew("probe", nil, "net")

	keys, err := r.AddConfigurationVariants(base, probeConfig)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, keys[0].Equal(base))
	assert.True(t, r.Contains(base))
}

func TestRegisterAndBindVariantsBuildsEachCombination(t *testing.T) {
	r := New()
	base := regkey.MustNew("fetcher", nil, "net")

	keys, err := r.RegisterAndBindVariants(base, fetcherConfig, &RegisteredComponent{
		New: func() any { return new(fetcher) },
	})
	require.NoError(t, err)
	require.Len(t, keys, 4)

	built := map[fetcher]bool{}
	for _, k := range keys {
		component, err := r.BuildComponent(context.Background(), k)
		require.NoError(t, err)
		built[*component.(*fetcher)] = true
	}

	// Each combination produced a distinct component state.
	assert.Len(t, built, 4)
	assert.True(t, built[fetcher{Method: "HEAD", KeepAlive: false}])
}
