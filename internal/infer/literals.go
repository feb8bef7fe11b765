package infer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	flagerrors "github.com/reeflective/argtypes/internal/errors"
)

const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// parseBool accepts only the exact `true` and `false` literals.
// strconv.ParseBool is too lenient here: `1`, `t` and `TRUE` must stay
// numbers and strings.
func parseBool(s string) (bool, error) {
	switch s {
	case trueLiteral:
		return true, nil
	case falseLiteral:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean literal", flagerrors.ErrParse, s)
	}
}

// parseInt accepts an optionally signed base-10 integer fitting in 64 bits.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseFloat accepts decimal floating-point literals, including exponents,
// `inf` and `nan`. Hexadecimal mantissas and digit separators, which
// strconv.ParseFloat also accepts, are rejected. Literals too large for
// a float64 are accepted as signed infinities.
func parseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "_xX") {
		return 0, fmt.Errorf("%w: %q is not a decimal float literal", flagerrors.ErrParse, s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
		return f, nil
	}

	return f, err
}

func allBools(values []string) bool {
	return all(values, func(s string) bool {
		_, err := parseBool(s)
		return err == nil
	})
}

func allInts(values []string) bool {
	return all(values, func(s string) bool {
		_, err := parseInt(s)
		return err == nil
	})
}

func allFloats(values []string) bool {
	return all(values, func(s string) bool {
		_, err := parseFloat(s)
		return err == nil
	})
}

func all(values []string, accept func(string) bool) bool {
	for _, val := range values {
		if !accept(val) {
			return false
		}
	}

	return true
}
