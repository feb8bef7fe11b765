package parser

import (
	"fmt"
	"log/slog"

	"github.com/reeflective/argtypes/internal/infer"
	"github.com/reeflective/argtypes/internal/tokens"
	"github.com/reeflective/argtypes/types"
)

// FlagError attaches the name of the failing flag to an inference error.
type FlagError struct {
	Flag string
	Err  error
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("flag --%s: %v", e.Flag, e.Err)
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// Parse accumulates the command's tokens under their flags, then infers
// and converts the values of each flag into a new collection.
// The first failing flag aborts the parse: no partial collection is returned.
func Parse(command string, optFuncs ...OptFunc) (*types.Collection, error) {
	opts := DefOpts().Apply(optFuncs...)
	acc := tokens.Accumulate(command, tokens.Set(opts.BooleanFlags))

	return build(acc, opts)
}

// ParseArgs is Parse over an already split argument vector.
func ParseArgs(args []string, optFuncs ...OptFunc) (*types.Collection, error) {
	opts := DefOpts().Apply(optFuncs...)
	acc := tokens.AccumulateArgs(args, tokens.Set(opts.BooleanFlags))

	return build(acc, opts)
}

func build(acc *tokens.Accumulated, opts *Opts) (*types.Collection, error) {
	coll := types.NewCollection()

	opts.Logger.Debug("Accumulated command tokens.", "flags", acc.Len())

	for _, name := range acc.Names() {
		raw, _ := acc.Values(name)

		kind, elems, err := infer.Classify(raw)
		if err != nil {
			return nil, &FlagError{Flag: name, Err: err}
		}

		val, err := infer.Convert(kind, elems)
		if err != nil {
			return nil, &FlagError{Flag: name, Err: err}
		}

		if err := val.Store(name, coll); err != nil {
			return nil, &FlagError{Flag: name, Err: err}
		}

		opts.Logger.Debug("Classified flag.",
			slog.String("flag", name),
			slog.Any("raw", raw),
			slog.String("kind", kind.String()),
			slog.String("bucket", kind.Bucket().String()),
			slog.Any("value", val.Interface()),
		)
	}

	return coll, nil
}
