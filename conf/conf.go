package conf

import (
	"github.com/vk/configo/param"
	"github.com/zclconf/go-cty/cty"
)

// Factory produces a configuration populated with its default parameter set.
// It is the extension point for declaring configurations: a package defines a
// factory and registers it under a key, instead of subclassing anything.
type Factory func() *Config

// Config is an ordered mapping from parameter name to parameter, plus an
// ordered sequence of explicit conditions.
type Config struct {
	params     []*param.Parameter
	index      map[string]int
	conditions []Condition
}

// New returns an empty configuration with no parameters and no conditions.
func New() *Config {
	return &Config{index: make(map[string]int)}
}

// Add inserts the parameter, or replaces an existing one with the same name.
// Replacement preserves the original insertion position so iteration order
// stays stable across incremental edits.
func (c *Config) Add(p param.Parameter) {
	stored := p.Copy()
	if i, ok := c.index[p.Name]; ok {
		c.params[i] = stored
		return
	}
	c.index[p.Name] = len(c.params)
	c.params = append(c.params, stored)
}

// Param returns the parameter with the given name, including its metadata.
func (c *Config) Param(name string) (*param.Parameter, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.params[i], true
}

// Get returns the value of the named parameter. The boolean is false when no
// such parameter exists; an existing but unset parameter yields cty.NilVal
// and true.
func (c *Config) Get(name string) (cty.Value, bool) {
	p, ok := c.Param(name)
	if !ok {
		return cty.NilVal, false
	}
	return p.Value, true
}

// Set replaces the value of an existing parameter, leaving all of its
// metadata untouched. Setting an unknown name is an error: values can only
// flow into parameters that were declared via Add.
func (c *Config) Set(name string, value cty.Value) error {
	p, ok := c.Param(name)
	if !ok {
		return &ParameterNotFoundError{Param: name}
	}
	p.Value = value
	return nil
}

// Params returns the parameters in insertion order. The slice is fresh but
// the elements are the live parameters.
func (c *Config) Params() []*param.Parameter {
	out := make([]*param.Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Len returns the number of parameters.
func (c *Config) Len() int {
	return len(c.params)
}

// Bool reads the named parameter as a boolean, treating unset, null and
// non-boolean values as false. It is the accessor cross-parameter predicates
// lean on.
func (c *Config) Bool(name string) bool {
	v, ok := c.Get(name)
	if !ok || v == cty.NilVal || v.IsNull() || !v.Type().Equals(cty.Bool) {
		return false
	}
	return v.True()
}
