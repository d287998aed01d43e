package dataloader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/configo/conf"
	"github.com/vk/configo/param"
	"github.com/vk/configo/registry"
	"github.com/zclconf/go-cty/cty"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.RegisterModules(&Module{}))
	return r
}

func TestBuildFailsWithoutDatasetName(t *testing.T) {
	r := newRegistry(t)

	_, err := r.BuildComponent(context.Background(), Key())

	var reqErr *param.RequiredValueError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "name", reqErr.Param)
}

func TestBuildFailsWithAllSplitsDisabled(t *testing.T) {
	r := newRegistry(t)
	r.OverwriteConfiguration(Key(), func() *conf.Config {
		c := Config()
		for name, value := range map[string]cty.Value{
			"name":           cty.StringVal("mnist"),
			"has_val_split":  cty.False,
			"has_test_split": cty.False,
		} {
			if err := c.Set(name, value); err != nil {
				panic(err)
			}
		}
		return c
	})

	_, err := r.BuildComponent(context.Background(), Key())

	var condErr *conf.ConditionFailedError
	require.True(t, errors.As(err, &condErr))
	assert.Equal(t, "at_least_one_split", condErr.Condition)
}

func TestBuildInjectsConfiguredValues(t *testing.T) {
	r := newRegistry(t)
	r.OverwriteConfiguration(Key(), func() *conf.Config {
		c := Config()
		if err := c.Set("name", cty.StringVal("mnist")); err != nil {
			panic(err)
		}
		if err := c.Set("has_test_split", cty.False); err != nil {
			panic(err)
		}
		return c
	})

	built, err := r.BuildComponent(context.Background(), Key())
	require.NoError(t, err)

	loader, ok := built.(*DataLoader)
	require.True(t, ok)
	assert.Equal(t, "mnist", loader.Name)
	assert.Equal(t, 100, loader.SamplesAmount)
	assert.Equal(t, []string{"train", "val"}, loader.Splits())
}

func TestConfigRejectsNonPositiveSamples(t *testing.T) {
	c := Config()
	require.NoError(t, c.Set("name", cty.StringVal("mnist")))
	require.NoError(t, c.Set("samples_amount", cty.NumberIntVal(0)))

	err := c.Validate()

	var rangeErr *param.InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "samples_amount", rangeErr.Param)
	assert.Equal(t, "positive", rangeErr.Range)
}
