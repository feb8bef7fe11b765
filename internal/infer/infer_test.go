package infer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flagerrors "github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/types"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expKind  types.Kind
		expElems []string
		expErrIs error
	}{
		// Booleans
		{name: "true", values: []string{"true"}, expKind: types.Boolean, expElems: []string{"true"}},
		{name: "false", values: []string{"false"}, expKind: types.Boolean, expElems: []string{"false"}},
		{name: "list of booleans", values: []string{"true", "false"}, expKind: types.ListBoolean, expElems: []string{"true", "false"}},
		{name: "upper case is a string", values: []string{"TRUE"}, expKind: types.String, expElems: []string{"TRUE"}},
		{name: "short boolean is a string", values: []string{"t"}, expKind: types.String, expElems: []string{"t"}},
		{name: "mixed boolean and number is a string", values: []string{"true", "2"}, expKind: types.String, expElems: []string{"true", "2"}},

		// Integers
		{name: "integer", values: []string{"3"}, expKind: types.Integer, expElems: []string{"3"}},
		{name: "negative integer", values: []string{"-42"}, expKind: types.Integer, expElems: []string{"-42"}},
		{name: "one is not a boolean", values: []string{"1"}, expKind: types.Integer, expElems: []string{"1"}},
		{name: "list of integers", values: []string{"3", "4", "5"}, expKind: types.ListInteger, expElems: []string{"3", "4", "5"}},
		{name: "int64 overflow promotes to float", values: []string{"99999999999999999999"}, expKind: types.Float, expElems: []string{"99999999999999999999"}},
		{name: "underscore separated digits", values: []string{"1_000"}, expKind: types.String, expElems: []string{"1_000"}},

		// Floats
		{name: "float", values: []string{"4.5"}, expKind: types.Float, expElems: []string{"4.5"}},
		{name: "exponent", values: []string{"1e3"}, expKind: types.Float, expElems: []string{"1e3"}},
		{name: "mixed numbers promote to floats", values: []string{"3", "4.5"}, expKind: types.ListFloat, expElems: []string{"3", "4.5"}},
		{name: "hexadecimal float is a string", values: []string{"0x1p-2"}, expKind: types.String, expElems: []string{"0x1p-2"}},
		{name: "out of range float is a float", values: []string{"1e400"}, expKind: types.Float, expElems: []string{"1e400"}},
		{name: "out of range float in a list", values: []string{"1", "-1e400"}, expKind: types.ListFloat, expElems: []string{"1", "-1e400"}},
		{name: "underflowing float", values: []string{"1e-400"}, expKind: types.Float, expElems: []string{"1e-400"}},

		// Strings
		{name: "word", values: []string{"Alice"}, expKind: types.String, expElems: []string{"Alice"}},
		{name: "words", values: []string{"hello", "world"}, expKind: types.String, expElems: []string{"hello", "world"}},
		{name: "number among words", values: []string{"route", "66"}, expKind: types.String, expElems: []string{"route", "66"}},
		{name: "unclosed bracket", values: []string{"[1", "2"}, expKind: types.String, expElems: []string{"[1", "2"}},

		// Braced lists
		{name: "braced integers", values: []string{"[1,2,3]"}, expKind: types.BracedListInteger, expElems: []string{"1", "2", "3"}},
		{name: "braced integers split across tokens", values: []string{"[", "1,", "2", ",3", "]"}, expKind: types.BracedListInteger, expElems: []string{"1", "2", "3"}},
		{name: "braced out of range floats", values: []string{"[1e400,", "2]"}, expKind: types.BracedListFloat, expElems: []string{"1e400", "2"}},
		{name: "braced floats", values: []string{"[1.5,", "2]"}, expKind: types.BracedListFloat, expElems: []string{"1.5", "2"}},
		{name: "braced strings", values: []string{"[a,", "b", "c]"}, expKind: types.BracedListString, expElems: []string{"a", "b c"}},
		{name: "braced booleans are strings", values: []string{"[true,false]"}, expKind: types.BracedListString, expElems: []string{"true", "false"}},
		{name: "single braced element", values: []string{"[7]"}, expKind: types.BracedListInteger, expElems: []string{"7"}},
		{name: "empty pieces are dropped", values: []string{"[1,,2,]"}, expKind: types.BracedListInteger, expElems: []string{"1", "2"}},
		{name: "only one bracket is stripped", values: []string{"[[1,2]]"}, expKind: types.BracedListString, expElems: []string{"[1", "2]"}},

		// Preprocessing
		{name: "values are trimmed", values: []string{"  7 "}, expKind: types.Integer, expElems: []string{"7"}},
		{name: "blank values are dropped", values: []string{"", " ", "8"}, expKind: types.Integer, expElems: []string{"8"}},

		// Errors
		{name: "nil values", values: nil, expErrIs: flagerrors.ErrEmptyValueList},
		{name: "blank values", values: []string{" ", "\t"}, expErrIs: flagerrors.ErrEmptyValueList},
		{name: "empty braced list", values: []string{"[]"}, expErrIs: flagerrors.ErrEmptyValueList},
		{name: "empty spaced braced list", values: []string{"[", "]"}, expErrIs: flagerrors.ErrEmptyValueList},
		{name: "braced list of commas", values: []string{"[,,]"}, expErrIs: flagerrors.ErrEmptyValueList},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			kind, elems, err := Classify(test.values)

			if test.expErrIs != nil {
				require.ErrorIs(t, err, test.expErrIs)
				assert.Equal(t, types.Invalid, kind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expKind, kind, "got %s", kind)
			assert.Equal(t, test.expElems, elems)
		})
	}
}

func TestClassify_StringIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"hello", "world"},
		{"Alice"},
		{"TRUE", "1"},
		{"route", "66", "east"},
		{"a", "[b"},
	}

	for _, values := range inputs {
		val, err := Infer(values)
		require.NoError(t, err)
		require.Equal(t, types.String, val.Kind)

		again, err := Infer([]string{val.String})
		require.NoError(t, err)
		assert.Equal(t, types.String, again.Kind)
		assert.Equal(t, val.String, again.String)
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values []string
		exp    any
	}{
		{[]string{"true"}, true},
		{[]string{"false"}, false},
		{[]string{"hello", "world"}, "hello world"},
		{[]string{"3"}, int64(3)},
		{[]string{"+3"}, int64(3)},
		{[]string{"4.5"}, 4.5},
		{[]string{"true", "false", "true"}, []bool{true, false, true}},
		{[]string{"3", "4", "5"}, []int64{3, 4, 5}},
		{[]string{"3", "4.5"}, []float64{3, 4.5}},
		{[]string{"[a,", "b]"}, []string{"a", "b"}},
		{[]string{"[1,2,3]"}, []int64{1, 2, 3}},
		{[]string{"[", "1,", "2", ",3", "]"}, []int64{1, 2, 3}},
		{[]string{"[0.5,1]"}, []float64{0.5, 1}},
	}

	for _, test := range tests {
		val, err := Infer(test.values)
		require.NoError(t, err, "values %q", test.values)
		assert.Equal(t, test.exp, val.Interface(), "values %q", test.values)
	}
}

func TestInfer_SpecialFloats(t *testing.T) {
	t.Parallel()

	val, err := Infer([]string{"inf"})
	require.NoError(t, err)
	require.Equal(t, types.Float, val.Kind)
	assert.True(t, math.IsInf(val.Float, 1))

	val, err = Infer([]string{"1e400"})
	require.NoError(t, err)
	require.Equal(t, types.Float, val.Kind)
	assert.True(t, math.IsInf(val.Float, 1))

	val, err = Infer([]string{"[-1e400,", "2]"})
	require.NoError(t, err)
	require.Equal(t, types.BracedListFloat, val.Kind)
	require.Len(t, val.Floats, 2)
	assert.True(t, math.IsInf(val.Floats[0], -1))
	assert.InDelta(t, 2.0, val.Floats[1], 0)

	val, err = Infer([]string{"nan"})
	require.NoError(t, err)
	require.Equal(t, types.Float, val.Kind)
	assert.True(t, math.IsNaN(val.Float))
}

func TestConvert_InvariantViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  types.Kind
		elems []string
	}{
		{"boolean from a word", types.Boolean, []string{"yes"}},
		{"integer from a float", types.Integer, []string{"4.5"}},
		{"integer from two elements", types.Integer, []string{"1", "2"}},
		{"float from a word", types.Float, []string{"pi"}},
		{"list of booleans with a number", types.ListBoolean, []string{"true", "1"}},
		{"list of integers with a float", types.BracedListInteger, []string{"1", "2.5"}},
		{"list of floats with a word", types.ListFloat, []string{"1", "x"}},
		{"invalid kind", types.Invalid, []string{"1"}},
		{"out of range kind", types.Kind(200), []string{"1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Convert(test.kind, test.elems)
			require.ErrorIs(t, err, flagerrors.ErrConversion)
			assert.False(t, errors.Is(err, flagerrors.ErrEmptyValueList))
		})
	}
}

func TestValue_Store(t *testing.T) {
	t.Parallel()

	coll := types.NewCollection()

	for name, values := range map[string][]string{
		"verbose": {"true"},
		"name":    {"Alice"},
		"count":   {"3"},
		"ratio":   {"0.25"},
		"tags":    {"[a,b]"},
		"ports":   {"[80,", "443]"},
		"weights": {"1", "2.5"},
		"flags":   {"true", "false"},
	} {
		val, err := Infer(values)
		require.NoError(t, err)
		require.NoError(t, val.Store(name, coll))
	}

	assert.Equal(t, map[string]bool{"verbose": true}, coll.Booleans)
	assert.Equal(t, map[string]string{"name": "Alice"}, coll.Strings)
	assert.Equal(t, map[string]int64{"count": 3}, coll.Integers)
	assert.Equal(t, map[string]float64{"ratio": 0.25}, coll.Floats)
	assert.Equal(t, map[string][]string{"tags": {"a", "b"}}, coll.ListStrings)
	assert.Equal(t, map[string][]int64{"ports": {80, 443}}, coll.ListIntegers)
	assert.Equal(t, map[string][]float64{"weights": {1, 2.5}}, coll.ListFloats)
	assert.Equal(t, map[string][]bool{"flags": {true, false}}, coll.ListBooleans)
	assert.Equal(t, 8, coll.Len())
}

func TestValue_StoreErrors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Value{Kind: types.Integer}.Store("x", nil), flagerrors.ErrNilObject)
	require.ErrorIs(t, Value{}.Store("x", types.NewCollection()), flagerrors.ErrUnknownKind)
}
