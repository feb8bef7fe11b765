package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrEmptyValueList indicates that a flag's values are empty once
	// trimmed and filtered, including bracketed lists with no pieces.
	ErrEmptyValueList = errors.New("empty value list")

	// ErrConversion indicates that a value classified as parseable failed
	// to parse during conversion. This is an engine fault, not bad input.
	ErrConversion = errors.New("conversion invariant violated")

	// ErrUnparseableCommand is reserved for a tokenizer failure.
	// The tokenizer currently accepts any input.
	ErrUnparseableCommand = errors.New("unparseable command")

	// ErrUnknownKind indicates a kind outside the closed set of kinds.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")

	// ErrUnknownFlag indicates that a parsed flag has no counterpart
	// in the flag set it is applied to.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrUnknownFormat indicates an unsupported output encoding.
	ErrUnknownFormat = errors.New("unknown format")
)
