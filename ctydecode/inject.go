package ctydecode

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/configo/conf"
)

// Inject copies a configuration's parameter values into target's fields by
// name, guided by `conf:"…"` struct tags. Target must be a pointer to a
// struct. A tag naming a parameter the configuration does not declare is a
// wiring error and fails with conf.ParameterNotFoundError; a declared but
// unset parameter leaves the field at its zero value.
func Inject(cfg *conf.Config, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("inject target must be a non-nil pointer to struct, got %T", target)
	}

	structVal := ptr.Elem()
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}

		tagName := strings.Split(fieldDef.Tag.Get("conf"), ",")[0]
		if tagName == "" || tagName == "-" {
			continue
		}

		p, ok := cfg.Param(tagName)
		if !ok {
			return &conf.ParameterNotFoundError{Param: tagName}
		}
		if !p.IsSet() {
			continue
		}

		if err := decode(p.Value, fieldVal); err != nil {
			return fmt.Errorf("injecting parameter %q into field %s: %w", tagName, fieldDef.Name, err)
		}
	}

	return nil
}
