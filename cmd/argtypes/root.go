package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argtypes"
	"github.com/reeflective/argtypes/host"
	"github.com/reeflective/argtypes/internal/config"
	"github.com/reeflective/argtypes/internal/logging"
)

const stdinArg = "-"

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "argtypes [flags] [-- command...]",
		Short: "Parse a command string into typed values",
		Long: `Parse a command string into typed values.

Tokens following a --flag token are the values of that flag. Their type is
inferred from their text: booleans (true, false), integers, floats, strings,
and lists of those, either as several values or as a bracketed [a, b, c] list.
Flags named with --bool take no value.

The command is read from --command, from the arguments following --, or from
standard input when the only argument is "-".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}

			logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := readCommand(cfg, args, stdin)
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}

			return parseCommand(cmd, cfg, command, stdout)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	config.Bind(cmd.Flags(), cfg)
	bindCompletions(cmd)

	return cmd
}

// readCommand returns the command string to parse, from exactly one source.
func readCommand(cfg *config.Config, args []string, stdin io.Reader) (string, error) {
	if cfg.Command != "" && len(args) > 0 {
		return "", fmt.Errorf("--command cannot be used with positional arguments")
	}

	if len(args) == 1 && args[0] == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}

		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	return cfg.Command, nil
}

func parseCommand(cmd *cobra.Command, cfg *config.Config, command string, stdout io.Writer) error {
	logger := logging.FromContext(cmd.Context())

	coll, err := argtypes.Parse(command, cfg.BooleanFlags, argtypes.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to parse command.", "error", err)
		return &ExitError{Code: exitParse, Err: err}
	}

	logger.Info("Parsed command.", "flags", coll.Len(), "format", cfg.Format)

	if err := host.Encode(stdout, coll, host.Format(cfg.Format)); err != nil {
		return &ExitError{Code: exitParse, Err: err}
	}

	return nil
}

// bindCompletions registers shell completions for the enumerated flags.
func bindCompletions(cmd *cobra.Command) {
	formats := make([]string, 0, len(host.Formats))
	for _, format := range host.Formats {
		formats = append(formats, string(format))
	}

	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{
		"format":     carapace.ActionValues(formats...),
		"log-level":  carapace.ActionValues("debug", "info", "warn", "error"),
		"log-format": carapace.ActionValues("text", "json"),
	})
}
