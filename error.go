package argtypes

import (
	"errors"

	flagerrors "github.com/reeflective/argtypes/internal/errors"
	"github.com/reeflective/argtypes/internal/parser"
)

// ParserError represents the type of error.
type ParserError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrEmptyValueList indicates that a flag's values were empty once
	// trimmed and filtered, as with `--ids []`. This is bad input.
	ErrEmptyValueList

	// ErrConversion indicates that a value classified as parseable could
	// not be converted. This is an internal fault of the inference engine,
	// never a problem with the input.
	ErrConversion

	// ErrUnparseableCommand is reserved for tokenizer failures.
	// No input currently triggers it.
	ErrUnparseableCommand
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",             // ErrUnknown
		"empty value list",    // ErrEmptyValueList
		"conversion",          // ErrConversion
		"unparseable command", // ErrUnparseableCommand
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a parser error. Every error returned from Parse is of
// this type. The error contains its Type, the flag it occurred on (if
// any), a Message, and the underlying error.
type Error struct {
	// The type of error
	Type ParserError

	// The flag whose values failed to parse.
	Flag string

	// The error message
	Message string

	// The wrapped error
	Err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the ParserError type of e, so that
// errors.Is(err, argtypes.ErrEmptyValueList) works on returned errors.
func (e *Error) Is(target error) bool {
	var tp ParserError
	if errors.As(target, &tp) {
		return tp == e.Type
	}

	return false
}

func newError(tp ParserError, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

// wrapError converts any error from the internal parser into an *Error.
func wrapError(err error) *Error {
	var ret *Error
	if errors.As(err, &ret) {
		return ret
	}

	var tp ParserError

	switch {
	case errors.Is(err, flagerrors.ErrEmptyValueList):
		tp = ErrEmptyValueList
	case errors.Is(err, flagerrors.ErrConversion):
		tp = ErrConversion
	case errors.Is(err, flagerrors.ErrUnparseableCommand):
		tp = ErrUnparseableCommand
	default:
		tp = ErrUnknown
	}

	ret = newError(tp, err.Error())
	ret.Err = err

	var flagErr *parser.FlagError
	if errors.As(err, &flagErr) {
		ret.Flag = flagErr.Flag
	}

	return ret
}
