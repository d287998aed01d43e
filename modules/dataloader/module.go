package dataloader

import (
	"github.com/vk/configo/conf"
	"github.com/vk/configo/param"
	"github.com/vk/configo/registry"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// DataLoader splits a named dataset into train, validation and test parts.
// Its fields are injected from the validated configuration at build time.
type DataLoader struct {
	SamplesAmount int    `conf:"samples_amount"`
	Name          string `conf:"name"`
	HasValSplit   bool   `conf:"has_val_split"`
	HasTestSplit  bool   `conf:"has_test_split"`
}

// Splits returns the names of the dataset splits this loader produces. The
// train split is always present.
func (d *DataLoader) Splits() []string {
	splits := []string{"train"}
	if d.HasValSplit {
		splits = append(splits, "val")
	}
	if d.HasTestSplit {
		splits = append(splits, "test")
	}
	return splits
}

// Key is the registration key this module binds to.
func Key() regkey.Key {
	return regkey.MustNew("data_loader", nil, "showcase")
}

// Config builds the default configuration. The dataset name has no default
// and must be set before a loader can be built; at least one of the optional
// splits has to stay enabled.
func Config() *conf.Config {
	c := conf.New()
	c.Add(param.Parameter{
		Name:        "samples_amount",
		Value:       cty.NumberIntVal(100),
		TypeHint:    cty.Number,
		Description: "Number of samples to draw from the dataset.",
		Range:       param.RangePositive,
	})
	c.Add(param.Parameter{
		Name:        "name",
		TypeHint:    cty.String,
		Description: "Dataset identifier.",
		Required:    true,
	})
	c.Add(param.Parameter{
		Name:     "has_val_split",
		Value:    cty.True,
		TypeHint: cty.Bool,
	})
	c.Add(param.Parameter{
		Name:     "has_test_split",
		Value:    cty.True,
		TypeHint: cty.Bool,
	})
	if err := c.AddNamedCondition("at_least_one_split", "any_true", "has_val_split", "has_test_split"); err != nil {
		panic(err)
	}
	return c
}

// Register adds the configuration and binds the component constructor.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterAndBind(Key(), Config, &registry.RegisteredComponent{
		New: func() any { return new(DataLoader) },
	})
}
