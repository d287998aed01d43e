package conf

import (
	"github.com/zclconf/go-cty/cty"
)

// Copy deep-copies all parameters and conditions into a new configuration.
// The result is equal by value but independently owned: mutating the copy
// never affects the original.
func (c *Config) Copy() *Config {
	dup := New()
	for _, p := range c.params {
		dup.index[p.Name] = len(dup.params)
		dup.params = append(dup.params, p.Copy())
	}
	dup.conditions = make([]Condition, len(c.conditions))
	copy(dup.conditions, c.conditions)
	return dup
}

// DeltaCopy returns a copy with the given parameter values overridden. Every
// override name must already exist: delta copies never introduce new
// parameters, and all non-overridden metadata is carried over unchanged.
// Validation is not re-run.
func (c *Config) DeltaCopy(overrides map[string]cty.Value) (*Config, error) {
	dup := c.Copy()
	for name, value := range overrides {
		if _, ok := dup.index[name]; !ok {
			return nil, &ParameterNotFoundError{Param: name}
		}
		if err := dup.Set(name, value); err != nil {
			return nil, err
		}
	}
	return dup, nil
}

// Equal compares two configurations by their ordered parameter sequences
// (name, value, type hint per parameter) and their condition names.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.params) != len(other.params) || len(c.conditions) != len(other.conditions) {
		return false
	}
	for i, p := range c.params {
		if !p.Equal(other.params[i]) {
			return false
		}
	}
	for i, cond := range c.conditions {
		if cond.Name != other.conditions[i].Name {
			return false
		}
	}
	return true
}
