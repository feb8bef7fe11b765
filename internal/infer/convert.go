package infer

import (
	"fmt"
	"strings"

	"github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/types"
)

// Value is a converted flag value. Only the field matching Kind is set.
type Value struct {
	Kind types.Kind

	Bool    bool
	String  string
	Int     int64
	Float   float64
	Bools   []bool
	Ints    []int64
	Floats  []float64
	Strings []string
}

// Convert parses the elements returned by Classify into a value of the
// given kind. Classification has already checked every element, so any
// failure here wraps errors.ErrConversion.
func Convert(kind types.Kind, elems []string) (Value, error) {
	val := Value{Kind: kind}

	var err error

	switch kind {
	case types.Boolean:
		val.Bool, err = convertBoolean(elems)
	case types.String:
		val.String = convertString(elems)
	case types.Integer:
		val.Int, err = convertInteger(elems)
	case types.Float:
		val.Float, err = convertFloat(elems)
	case types.ListBoolean:
		val.Bools, err = parseList(elems, parseBool)
	case types.ListInteger, types.BracedListInteger:
		val.Ints, err = parseList(elems, parseInt)
	case types.ListFloat, types.BracedListFloat:
		val.Floats, err = parseList(elems, parseFloat)
	case types.BracedListString:
		val.Strings = convertStrings(elems)
	case types.Invalid:
		return val, fmt.Errorf("%w: cannot convert to %s", errors.ErrConversion, kind)
	default:
		return val, fmt.Errorf("%w: %w %d", errors.ErrConversion, errors.ErrUnknownKind, kind)
	}

	if err != nil {
		return val, fmt.Errorf("%w: %s: %w", errors.ErrConversion, kind, err)
	}

	return val, nil
}

// Infer classifies and converts a raw value list in one step.
func Infer(values []string) (Value, error) {
	kind, elems, err := Classify(values)
	if err != nil {
		return Value{}, err
	}

	return Convert(kind, elems)
}

// Interface returns the converted value held by v.
func (v Value) Interface() any {
	switch v.Kind.Bucket() {
	case types.BucketBooleans:
		return v.Bool
	case types.BucketStrings:
		return v.String
	case types.BucketIntegers:
		return v.Int
	case types.BucketFloats:
		return v.Float
	case types.BucketListStrings:
		return v.Strings
	case types.BucketListIntegers:
		return v.Ints
	case types.BucketListFloats:
		return v.Floats
	case types.BucketListBooleans:
		return v.Bools
	default:
		return nil
	}
}

// Store writes the value under name in the bucket matching its kind.
func (v Value) Store(name string, coll *types.Collection) error {
	if coll == nil {
		return errors.ErrNilObject
	}

	switch v.Kind.Bucket() {
	case types.BucketBooleans:
		coll.Booleans[name] = v.Bool
	case types.BucketStrings:
		coll.Strings[name] = v.String
	case types.BucketIntegers:
		coll.Integers[name] = v.Int
	case types.BucketFloats:
		coll.Floats[name] = v.Float
	case types.BucketListStrings:
		coll.ListStrings[name] = v.Strings
	case types.BucketListIntegers:
		coll.ListIntegers[name] = v.Ints
	case types.BucketListFloats:
		coll.ListFloats[name] = v.Floats
	case types.BucketListBooleans:
		coll.ListBooleans[name] = v.Bools
	default:
		return fmt.Errorf("%w: %w %s", errors.ErrConversion, errors.ErrUnknownKind, v.Kind)
	}

	return nil
}

func convertBoolean(elems []string) (bool, error) {
	if len(elems) != 1 {
		return false, fmt.Errorf("expected one element, got %d", len(elems))
	}

	return parseBool(elems[0])
}

func convertString(elems []string) string {
	return strings.TrimSpace(strings.Join(elems, " "))
}

func convertInteger(elems []string) (int64, error) {
	if len(elems) != 1 {
		return 0, fmt.Errorf("expected one element, got %d", len(elems))
	}

	return parseInt(elems[0])
}

func convertFloat(elems []string) (float64, error) {
	if len(elems) != 1 {
		return 0, fmt.Errorf("expected one element, got %d", len(elems))
	}

	return parseFloat(elems[0])
}

func convertStrings(elems []string) []string {
	strs := make([]string, len(elems))
	copy(strs, elems)

	return strs
}

func parseList[T any](elems []string, parse func(string) (T, error)) ([]T, error) {
	list := make([]T, 0, len(elems))

	for _, elem := range elems {
		parsed, err := parse(elem)
		if err != nil {
			return nil, err
		}

		list = append(list, parsed)
	}

	return list, nil
}
