// Package infer decides which kind a flag's raw value list represents,
// and converts the list into a value of that kind.
package infer

import (
	"strings"

	"github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/types"
)

const (
	listOpen  = "["
	listClose = "]"
	listSep   = ","
)

// Classify returns the kind of a raw value list, along with the elements
// that its conversion consumes: the trimmed, non-empty values for scalar
// and unbraced kinds, or the unbraced pieces for braced lists.
//
// The checks run in a fixed order and the first match wins:
// braced lists, then booleans, integers, floats, and strings last.
func Classify(values []string) (types.Kind, []string, error) {
	clean := Clean(values)
	if len(clean) == 0 {
		return types.Invalid, nil, errors.ErrEmptyValueList
	}

	if IsBraced(clean) {
		pieces := Unbrace(clean)
		if len(pieces) == 0 {
			return types.Invalid, nil, errors.ErrEmptyValueList
		}

		switch {
		case allInts(pieces):
			return types.BracedListInteger, pieces, nil
		case allFloats(pieces):
			return types.BracedListFloat, pieces, nil
		default:
			return types.BracedListString, pieces, nil
		}
	}

	single := len(clean) == 1

	switch {
	case allBools(clean) && single:
		return types.Boolean, clean, nil
	case allBools(clean):
		return types.ListBoolean, clean, nil
	case allInts(clean) && single:
		return types.Integer, clean, nil
	case allInts(clean):
		return types.ListInteger, clean, nil
	case allFloats(clean) && single:
		return types.Float, clean, nil
	case allFloats(clean):
		return types.ListFloat, clean, nil
	default:
		return types.String, clean, nil
	}
}

// Clean trims every value and drops the ones left empty.
func Clean(values []string) []string {
	clean := make([]string, 0, len(values))

	for _, val := range values {
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}

	return clean
}

// IsBraced returns true if the first value opens a list and the
// last one closes it, regardless of what lies in between.
func IsBraced(values []string) bool {
	if len(values) == 0 {
		return false
	}

	first := strings.TrimSpace(values[0])
	last := strings.TrimSpace(values[len(values)-1])

	return strings.HasPrefix(first, listOpen) && strings.HasSuffix(last, listClose)
}

// Unbrace joins values with spaces and splits the result on commas.
// Each piece is trimmed and loses one leading `[` and one trailing `]`,
// and pieces left empty are dropped. A list split across several tokens
// yields the same pieces as its single-token form.
func Unbrace(values []string) []string {
	joined := strings.Join(values, " ")
	pieces := make([]string, 0, strings.Count(joined, listSep)+1)

	for _, piece := range strings.Split(joined, listSep) {
		piece = strings.TrimSpace(piece)
		piece = strings.TrimPrefix(piece, listOpen)
		piece = strings.TrimSuffix(piece, listClose)
		piece = strings.TrimSpace(piece)

		if piece != "" {
			pieces = append(pieces, piece)
		}
	}

	return pieces
}
