package conf

import (
	"fmt"
	"log/slog"
)

// Condition is an explicit, named predicate over a whole configuration.
// Conditions loaded from manifests carry the name of the registered predicate
// they resolve to, plus the parameter names it receives, so a registration
// remains introspectable after the fact.
type Condition struct {
	Name      string
	Check     func(*Config) bool
	Predicate string
	Params    []string
}

// Predicate is a named, statically registered cross-parameter check. It
// receives the configuration under validation and the parameter names the
// condition was declared with.
type Predicate func(c *Config, params []string) bool

// predicates is the process-wide table of named predicates, populated at init
// time before any concurrent use.
var predicates = map[string]Predicate{}

// RegisterPredicate adds a named predicate so manifests can reference it.
// Registering the same name twice is a programmer error.
func RegisterPredicate(name string, p Predicate) {
	if _, exists := predicates[name]; exists {
		panic(fmt.Sprintf("condition predicate with name '%s' already registered", name))
	}
	slog.Debug("Registering condition predicate.", "name", name)
	predicates[name] = p
}

// LookupPredicate resolves a predicate by name.
func LookupPredicate(name string) (Predicate, bool) {
	p, ok := predicates[name]
	return p, ok
}

// AddCondition appends an explicit condition under the given name.
func (c *Config) AddCondition(name string, check func(*Config) bool) {
	c.conditions = append(c.conditions, Condition{Name: name, Check: check})
}

// AddNamedCondition appends a condition backed by a registered predicate,
// applied to the given parameter names. This is the form manifests produce.
func (c *Config) AddNamedCondition(name, predicate string, params ...string) error {
	p, ok := LookupPredicate(predicate)
	if !ok {
		return fmt.Errorf("unknown condition predicate %q", predicate)
	}
	c.conditions = append(c.conditions, Condition{
		Name:      name,
		Check:     func(cfg *Config) bool { return p(cfg, params) },
		Predicate: predicate,
		Params:    params,
	})
	return nil
}

// Conditions returns the explicit conditions in insertion order.
func (c *Config) Conditions() []Condition {
	out := make([]Condition, len(c.conditions))
	copy(out, c.conditions)
	return out
}

// Validate runs every implicit parameter condition in insertion order, then
// every explicit condition in insertion order, and returns the first failure.
// It mutates nothing. Results are never cached: accessors like Param and Find
// hand out live parameters, so every call re-checks the current values.
func (c *Config) Validate() error {
	if errs := c.validate(true); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ValidateAll runs the same checks as Validate but collects every failure
// instead of stopping at the first. An empty result means the configuration
// is valid.
func (c *Config) ValidateAll() []error {
	return c.validate(false)
}

func (c *Config) validate(failFast bool) []error {
	var errs []error

	for _, p := range c.params {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
			if failFast {
				return errs
			}
		}
	}

	for _, cond := range c.conditions {
		if !cond.Check(c) {
			errs = append(errs, &ConditionFailedError{Condition: cond.Name})
			if failFast {
				return errs
			}
		}
	}

	return errs
}

// Built-in predicates available to every manifest.
func init() {
	RegisterPredicate("any_true", func(c *Config, params []string) bool {
		for _, name := range params {
			if c.Bool(name) {
				return true
			}
		}
		return false
	})

	RegisterPredicate("all_true", func(c *Config, params []string) bool {
		for _, name := range params {
			if !c.Bool(name) {
				return false
			}
		}
		return true
	})

	RegisterPredicate("mutually_exclusive", func(c *Config, params []string) bool {
		set := 0
		for _, name := range params {
			if c.Bool(name) {
				set++
			}
		}
		return set <= 1
	})
}
