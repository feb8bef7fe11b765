package parser

import (
	"io"
	"log/slog"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// BooleanFlags names the flags that take no value.
	BooleanFlags []string

	// Logger receives debug records for each classified flag.
	Logger *slog.Logger
}

// DefOpts returns the default parsing options.
func DefOpts() *Opts {
	return &Opts{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// CopyOpts returns a copy of the given options.
func CopyOpts(opts *Opts) OptFunc {
	return func(opt *Opts) {
		*opt = *opts
	}
}

// BooleanFlags adds flag names that are treated as valueless presence flags.
func BooleanFlags(names ...string) OptFunc {
	return func(opt *Opts) { opt.BooleanFlags = append(opt.BooleanFlags, names...) }
}

// Logger sets the logger used for debug records. A nil logger is ignored.
func Logger(logger *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if logger != nil {
			opt.Logger = logger
		}
	}
}
