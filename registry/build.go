package registry

import (
	"context"
	"fmt"

	"github.com/vk/configo/conf"
	"github.com/vk/configo/ctydecode"
	"github.com/vk/configo/internal/ctxlog"
	"github.com/vk/configo/regkey"
)

// BuildConfiguration returns a fresh configuration instance for the key,
// without validating it.
func (r *Registry) BuildConfiguration(key regkey.Key) (*conf.Config, error) {
	e, ok := r.entries[key.String()]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return e.factory(), nil
}

// BuildComponent resolves the binding for the key, builds and strictly
// validates a fresh configuration, and on success constructs the bound
// component with the configuration's parameter values injected by name. A
// validation failure propagates before any component is constructed.
func (r *Registry) BuildComponent(ctx context.Context, key regkey.Key) (any, error) {
	logger := ctxlog.FromContext(ctx)

	e, ok := r.entries[key.String()]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	if e.component == nil {
		return nil, &UnboundConfigurationError{Key: key}
	}

	cfg := e.factory()
	if err := cfg.Validate(); err != nil {
		logger.Debug("Configuration validation failed.", "key", key.String(), "error", err)
		return nil, err
	}

	component := e.component.New()
	if err := ctydecode.Inject(cfg, component); err != nil {
		return nil, fmt.Errorf("building component for %s: %w", key, err)
	}
	if init, ok := component.(Initializer); ok {
		if err := init.Init(cfg); err != nil {
			return nil, fmt.Errorf("initializing component for %s: %w", key, err)
		}
	}

	logger.Debug("Component built.", "key", key.String())
	return component, nil
}

// BuildComponentFromKey parses the canonical key string and delegates to
// BuildComponent.
func (r *Registry) BuildComponentFromKey(ctx context.Context, rawKey string) (any, error) {
	key, err := regkey.Parse(rawKey)
	if err != nil {
		return nil, err
	}
	return r.BuildComponent(ctx, key)
}
