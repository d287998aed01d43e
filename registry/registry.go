package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/configo/conf"
	"github.com/vk/configo/regkey"
)

// Module is the interface showcase component packages implement to register
// their configurations and bindings with a registry instance.
type Module interface {
	Register(r *Registry) error
}

// RegisteredComponent holds the compiled Go parts of a component binding. New
// must return a pointer to a fresh component struct; the registry injects the
// configuration's parameter values into its `conf`-tagged fields.
type RegisteredComponent struct {
	New func() any
}

// Initializer is an optional hook: components implementing it receive the
// validated configuration after injection, for derived state that plain field
// injection cannot express.
type Initializer interface {
	Init(cfg *conf.Config) error
}

// entry is one registration: a key, the factory producing the default
// configuration, and (once bound) the component constructor.
type entry struct {
	key       regkey.Key
	factory   conf.Factory
	component *RegisteredComponent
}

// Registry maps registration keys to configuration/component bindings.
type Registry struct {
	entries map[string]*entry
	order   []string // canonical key strings in registration order
}

// New creates an empty registry instance.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// AddConfiguration registers a configuration factory under the key. Reusing a
// key is an error; use OverwriteConfiguration when replacement is intended.
func (r *Registry) AddConfiguration(key regkey.Key, factory conf.Factory) error {
	id := key.String()
	if _, exists := r.entries[id]; exists {
		return &DuplicateKeyError{Key: key}
	}
	slog.Debug("Registering configuration.", "key", id)
	r.entries[id] = &entry{key: key, factory: factory}
	r.order = append(r.order, id)
	return nil
}

// OverwriteConfiguration registers a configuration factory under the key,
// replacing any existing registration. An existing component binding for the
// key is kept.
func (r *Registry) OverwriteConfiguration(key regkey.Key, factory conf.Factory) {
	id := key.String()
	if existing, ok := r.entries[id]; ok {
		slog.Debug("Overwriting configuration.", "key", id)
		existing.factory = factory
		return
	}
	slog.Debug("Registering configuration.", "key", id)
	r.entries[id] = &entry{key: key, factory: factory}
	r.order = append(r.order, id)
}

// Bind associates a component with an already-registered configuration key.
func (r *Registry) Bind(key regkey.Key, component *RegisteredComponent) error {
	e, ok := r.entries[key.String()]
	if !ok {
		return &UnboundConfigurationError{Key: key}
	}
	slog.Debug("Binding component.", "key", key.String())
	e.component = component
	return nil
}

// RegisterAndBind registers a configuration and binds its component in one
// step.
func (r *Registry) RegisterAndBind(key regkey.Key, factory conf.Factory, component *RegisteredComponent) error {
	if err := r.AddConfiguration(key, factory); err != nil {
		return err
	}
	return r.Bind(key, component)
}

// RegisterModules runs each module's self-registration against this registry.
func (r *Registry) RegisterModules(modules ...Module) error {
	for _, mod := range modules {
		if err := mod.Register(r); err != nil {
			return fmt.Errorf("module registration failed: %w", err)
		}
	}
	slog.Debug("All modules registered.", "count", len(modules))
	return nil
}

// Contains reports whether the key has a configuration registration.
func (r *Registry) Contains(key regkey.Key) bool {
	_, ok := r.entries[key.String()]
	return ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []regkey.Key {
	keys := make([]regkey.Key, 0, len(r.order))
	for _, id := range r.order {
		keys = append(keys, r.entries[id].key)
	}
	return keys
}

// FindKeys returns, in registration order, every registered key partially
// matching the given one (same name and namespace, tag subset either way).
// It is how a family of variant registrations is discovered.
func (r *Registry) FindKeys(key regkey.Key) []regkey.Key {
	var keys []regkey.Key
	for _, id := range r.order {
		if candidate := r.entries[id].key; candidate.PartialMatch(key) {
			keys = append(keys, candidate)
		}
	}
	return keys
}

// Reset clears every registration. Intended for tests.
func (r *Registry) Reset() {
	r.entries = make(map[string]*entry)
	r.order = nil
}
