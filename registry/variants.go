package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/configo/conf"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
)

// AddConfigurationVariants expands the factory's variant parameters into the
// Cartesian product of their values and registers one key per combination,
// extending the base key's tags with `name=value` variant tags. The generated
// keys are returned in the deterministic combination order. A factory with no
// variant parameters registers the base key alone.
func (r *Registry) AddConfigurationVariants(key regkey.Key, factory conf.Factory) ([]regkey.Key, error) {
	base := factory()
	combos := base.VariantCombinations()
	if len(combos) == 0 {
		if err := r.AddConfiguration(key, factory); err != nil {
			return nil, err
		}
		return []regkey.Key{key}, nil
	}

	keys := make([]regkey.Key, 0, len(combos))
	for _, combo := range combos {
		variantKey, err := key.WithTags(conf.VariantTags(combo)...)
		if err != nil {
			return nil, fmt.Errorf("building variant key for %s: %w", key, err)
		}

		// Probe the delta copy now so a broken combination surfaces at
		// registration time, not at first build.
		if _, err := base.DeltaCopy(combo); err != nil {
			return nil, fmt.Errorf("expanding variants of %s: %w", key, err)
		}

		if err := r.AddConfiguration(variantKey, deltaFactory(factory, combo)); err != nil {
			return nil, err
		}
		keys = append(keys, variantKey)
	}

	slog.Debug("Registered configuration variants.", "key", key.String(), "count", len(keys))
	return keys, nil
}

// RegisterAndBindVariants expands variants like AddConfigurationVariants and
// binds every generated key to the same component.
func (r *Registry) RegisterAndBindVariants(key regkey.Key, factory conf.Factory, component *RegisteredComponent) ([]regkey.Key, error) {
	keys, err := r.AddConfigurationVariants(key, factory)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := r.Bind(k, component); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// deltaFactory wraps a base factory so each build yields a fresh copy with
// the combination's overrides applied. The combination names were probed at
// registration time, so a failing delta copy here means the factory stopped
// declaring a parameter it declared before; that is a programmer error.
func deltaFactory(factory conf.Factory, combo map[string]cty.Value) conf.Factory {
	return func() *conf.Config {
		cfg, err := factory().DeltaCopy(combo)
		if err != nil {
			panic(fmt.Sprintf("variant factory no longer matches its combination: %v", err))
		}
		return cfg
	}
}
