package host

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"

	"github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/types"
)

// ToCty converts a collection into a cty object, with one attribute per flag.
// Integers and floats both become cty numbers, and lists become cty lists.
// NaN and infinities have no cty representation and are reported as errors.
func ToCty(coll *types.Collection) (cty.Value, error) {
	if coll == nil {
		return cty.NilVal, errors.ErrNilObject
	}

	attrs := make(map[string]cty.Value, coll.Len())

	for _, entry := range Flatten(coll) {
		val, err := ctyValue(entry.Value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("flag --%s: %w", entry.Name, err)
		}

		attrs[entry.Name] = val
	}

	if len(attrs) == 0 {
		return cty.EmptyObjectVal, nil
	}

	return cty.ObjectVal(attrs), nil
}

func ctyValue(val any) (cty.Value, error) {
	switch v := val.(type) {
	case bool:
		return cty.BoolVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return ctyFloat(v)
	case []bool:
		return ctyList(cty.Bool, v, func(b bool) (cty.Value, error) { return cty.BoolVal(b), nil })
	case []string:
		return ctyList(cty.String, v, func(s string) (cty.Value, error) { return cty.StringVal(s), nil })
	case []int64:
		return ctyList(cty.Number, v, func(i int64) (cty.Value, error) { return cty.NumberIntVal(i), nil })
	case []float64:
		return ctyList(cty.Number, v, ctyFloat)
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", val)
	}
}

func ctyFloat(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NilVal, fmt.Errorf("NaN cannot be represented as a cty number")
	}

	if math.IsInf(f, 0) {
		return cty.NilVal, fmt.Errorf("%v cannot be represented as a cty number", f)
	}

	return cty.NumberFloatVal(f), nil
}

func ctyList[T any](elemType cty.Type, list []T, convert func(T) (cty.Value, error)) (cty.Value, error) {
	if len(list) == 0 {
		return cty.ListValEmpty(elemType), nil
	}

	vals := make([]cty.Value, 0, len(list))

	for _, elem := range list {
		val, err := convert(elem)
		if err != nil {
			return cty.NilVal, err
		}

		vals = append(vals, val)
	}

	return cty.ListVal(vals), nil
}
