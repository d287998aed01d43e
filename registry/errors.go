package registry

import (
	"fmt"

	"github.com/vk/configo/regkey"
)

// DuplicateKeyError reports a configuration registration under a key that is
// already taken. Overwriting must be requested explicitly via
// OverwriteConfiguration.
type DuplicateKeyError struct {
	Key regkey.Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("a configuration is already registered under key %s", e.Key)
}

// KeyNotFoundError reports a lookup for a key with no registration at all.
type KeyNotFoundError struct {
	Key regkey.Key
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no configuration registered under key %s", e.Key)
}

// UnboundConfigurationError reports an operation that needs a component
// binding for a key that has none, or a bind against a key with no
// configuration registration.
type UnboundConfigurationError struct {
	Key regkey.Key
}

func (e *UnboundConfigurationError) Error() string {
	return fmt.Sprintf("key %s has no configuration/component binding", e.Key)
}
