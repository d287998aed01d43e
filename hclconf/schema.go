package hclconf

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// paramBlock is the raw HCL shape of a single `param` block inside a
// configuration manifest. Defaults and variants are captured as literal cty
// values; the `type` attribute stays an expression until translation because
// type keywords are not values.
type paramBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Default     *cty.Value     `hcl:"default,optional"`
	Description string         `hcl:"description,optional"`
	Required    bool           `hcl:"required,optional"`
	Range       string         `hcl:"range,optional"`
	Variants    *cty.Value     `hcl:"variants,optional"`
	Tags        []string       `hcl:"tags,optional"`
}

// conditionBlock is the raw HCL shape of a named cross-parameter condition.
type conditionBlock struct {
	Name      string   `hcl:"name,label"`
	Predicate string   `hcl:"predicate"`
	Params    []string `hcl:"params"`
}

// configurationBlock is the raw HCL shape of one `configuration` block.
type configurationBlock struct {
	Name       string            `hcl:"name,label"`
	Namespace  string            `hcl:"namespace,optional"`
	Tags       []string          `hcl:"tags,optional"`
	Params     []*paramBlock     `hcl:"param,block"`
	Conditions []*conditionBlock `hcl:"condition,block"`
}

// fileRoot decodes all top-level blocks of a manifest file.
type fileRoot struct {
	Configurations []*configurationBlock `hcl:"configuration,block"`
	Remain         hcl.Body              `hcl:",remain"`
}
