package ctydecode

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var ctyValueType = reflect.TypeOf(cty.Value{})

// Decode populates the Go value pointed to by target from a cty value.
// Unknown and null values leave the target untouched. A field of type
// cty.Value receives the value verbatim.
func Decode(val cty.Value, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	return decode(val, ptr.Elem())
}

func decode(val cty.Value, goVal reflect.Value) error {
	goType := goVal.Type()

	if goType == ctyValueType {
		if val.IsKnown() {
			goVal.Set(reflect.ValueOf(val))
		}
		return nil
	}

	if val == cty.NilVal || !val.IsKnown() || val.IsNull() {
		return nil
	}

	switch goType.Kind() {
	case reflect.Interface:
		native, err := toNative(val)
		if err != nil {
			return err
		}
		if native != nil {
			goVal.Set(reflect.ValueOf(native))
		}
		return nil

	case reflect.Map:
		if !val.CanIterateElements() {
			return fmt.Errorf("cannot decode %s into Go map %s", val.Type().FriendlyName(), goType)
		}
		result := reflect.MakeMapWithSize(goType, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			keyVal, elemVal := it.Element()
			key := reflect.New(goType.Key()).Elem()
			if err := decode(keyVal, key); err != nil {
				return fmt.Errorf("in map key: %w", err)
			}
			elem := reflect.New(goType.Elem()).Elem()
			if err := decode(elemVal, elem); err != nil {
				return fmt.Errorf("in map element %s: %w", keyVal.GoString(), err)
			}
			result.SetMapIndex(key, elem)
		}
		goVal.Set(result)
		return nil

	case reflect.Slice:
		if !val.CanIterateElements() {
			return fmt.Errorf("cannot decode %s into Go slice %s", val.Type().FriendlyName(), goType)
		}
		result := reflect.MakeSlice(goType, val.LengthInt(), val.LengthInt())
		i := 0
		for it := val.ElementIterator(); it.Next(); {
			_, elemVal := it.Element()
			if err := decode(elemVal, result.Index(i)); err != nil {
				return fmt.Errorf("in slice element %d: %w", i, err)
			}
			i++
		}
		goVal.Set(result)
		return nil

	default:
		wantType, err := gocty.ImpliedType(reflect.Zero(goType).Interface())
		if err != nil {
			return fmt.Errorf("cannot imply cty type for Go type %s: %w", goType, err)
		}
		converted, err := convert.Convert(val, wantType)
		if err != nil {
			return fmt.Errorf("cannot convert %s to %s: %w",
				val.Type().FriendlyName(), wantType.FriendlyName(), err)
		}
		return gocty.FromCtyValue(converted, goVal.Addr().Interface())
	}
}

// toNative converts a cty value to its closest native Go representation,
// used when decoding into an `any` field.
func toNative(val cty.Value) (any, error) {
	if val == cty.NilVal || val.IsNull() {
		return nil, nil
	}
	t := val.Type()
	switch {
	case t.Equals(cty.String):
		return val.AsString(), nil
	case t.Equals(cty.Bool):
		return val.True(), nil
	case t.Equals(cty.Number):
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	case t.IsMapType() || t.IsObjectType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = native
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %s to a native Go value", t.FriendlyName())
	}
}
