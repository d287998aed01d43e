package conf

import (
	"github.com/vk/configo/param"
)

// MatchMode selects how a query's tag set is compared against a parameter's.
type MatchMode int

const (
	// MatchIntersect accepts a parameter whose tag set shares at least one
	// tag with the query.
	MatchIntersect MatchMode = iota
	// MatchSuperset accepts a parameter whose tag set contains every query
	// tag.
	MatchSuperset
)

// Query describes a parameter search. Name and Tags are independent criteria:
// a parameter matches when its name equals Name or its tag set matches Tags
// under the chosen mode.
type Query struct {
	Name string
	Tags map[string]struct{}
	Mode MatchMode
}

// Find returns the parameters matching the query, in insertion order. The
// returned parameters are the live ones, so bulk edits through them are
// possible without knowing exact names; re-run Validate afterwards.
func (c *Config) Find(q Query) []*param.Parameter {
	var out []*param.Parameter
	for _, p := range c.params {
		if q.Name != "" && p.Name == q.Name {
			out = append(out, p)
			continue
		}
		if len(q.Tags) > 0 && matchTags(p.Tags, q.Tags, q.Mode) {
			out = append(out, p)
		}
	}
	return out
}

func matchTags(have, want map[string]struct{}, mode MatchMode) bool {
	switch mode {
	case MatchSuperset:
		for tag := range want {
			if _, ok := have[tag]; !ok {
				return false
			}
		}
		return true
	default:
		for tag := range want {
			if _, ok := have[tag]; ok {
				return true
			}
		}
		return false
	}
}
