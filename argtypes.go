// Package argtypes parses a free-form, command-line style string into
// typed values, inferring the type of each flag's value from its text.
//
// A command such as
//
//	--verbose --name Alice --count 3 --ratios 0.5 1.5 --tags [go, rust]
//
// is split on whitespace, and every token following a `--flag` token is
// attached to that flag. The values of each flag are then classified as a
// boolean, an integer, a float, a string, or a list of one of those, and
// stored in the matching bucket of a Collection. Flags declared as boolean
// take no value: their presence alone sets them to true.
//
// Classification follows a fixed order, and the first match wins:
//   - A value list whose first token starts with `[` and whose last token
//     ends with `]` is a comma-separated list of integers, of floats, or of
//     strings, in this order of preference.
//   - Otherwise, values that are all `true` or `false` are booleans, all
//     integer literals are integers, and all numeric literals are floats.
//     One value gives a scalar, several give a list.
//   - Anything else is a single string, with values joined by spaces.
//
// Parsing is a pure function of its inputs: it performs no I/O, holds no
// state between calls, and is safe for concurrent use.
//
// To expose a Collection to another environment (a map, a cty object, a
// pflag.FlagSet, or an encoded document), see the host subpackage.
package argtypes

import (
	"log/slog"

	"github.com/reeflective/argtypes/internal/infer"
	"github.com/reeflective/argtypes/internal/parser"
	"github.com/reeflective/argtypes/types"
)

// === Primary Entry Points ===

// Parse parses a command string into a typed collection. The booleanFlags
// name the flags (without their `--` prefix) that take no value.
//
// Parsing is all-or-nothing: if the values of any flag cannot be parsed,
// Parse returns a nil collection and an *Error. An empty or whitespace-only
// command yields an empty collection.
func Parse(command string, booleanFlags []string, opts ...Option) (*Collection, error) {
	internalOpts := append(toInternalOpts(opts), parser.BooleanFlags(booleanFlags...))

	coll, err := parser.Parse(command, internalOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	return coll, nil
}

// ParseArgs is like Parse, but takes an argument vector such as os.Args[1:].
// Arguments are joined with spaces before being tokenized, so an argument
// containing whitespace is split into several tokens.
func ParseArgs(args []string, booleanFlags []string, opts ...Option) (*Collection, error) {
	internalOpts := append(toInternalOpts(opts), parser.BooleanFlags(booleanFlags...))

	coll, err := parser.ParseArgs(args, internalOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	return coll, nil
}

// Classify returns the kind inferred for a list of raw values, as Parse
// would for the values of a single flag.
func Classify(values []string) (Kind, error) {
	kind, _, err := infer.Classify(values)
	if err != nil {
		return kind, wrapError(err)
	}

	return kind, nil
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring a parse call.
type Option func(o *parser.Opts)

func toInternalOpts(opts []Option) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return internalOpts
}

// WithBooleanFlags declares additional valueless flags, on top of
// those passed to Parse.
func WithBooleanFlags(names ...string) Option {
	return Option(parser.BooleanFlags(names...))
}

// WithLogger sets a logger receiving a debug record for every classified
// flag. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return Option(parser.Logger(logger))
}

// === Data Model ===

// Collection holds the typed values of a parsed command, one map per type.
type Collection = types.Collection

// Kind is the type inferred for the values of a flag.
type Kind = types.Kind

// Bucket identifies one of the maps of a Collection.
type Bucket = types.Bucket

// The kinds a flag's values can be classified as.
const (
	Boolean           = types.Boolean
	String            = types.String
	Integer           = types.Integer
	Float             = types.Float
	ListBoolean       = types.ListBoolean
	ListInteger       = types.ListInteger
	ListFloat         = types.ListFloat
	BracedListString  = types.BracedListString
	BracedListInteger = types.BracedListInteger
	BracedListFloat   = types.BracedListFloat
)
