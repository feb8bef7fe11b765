// Package config holds the configuration of the argtypes command-line tool.
package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/reeflective/argtypes/host"
	"github.com/reeflective/argtypes/internal/validation"
)

// Config holds everything needed to run one invocation of the tool.
type Config struct {
	// Command is the command string to parse.
	Command string `flag:"command"`

	// BooleanFlags names the valueless flags of the command.
	BooleanFlags []string `flag:"bool" validate:"dive,required"`

	// Format is the encoding of the parsed collection.
	Format string `flag:"format" validate:"oneof=json yaml hcl text"`

	// LogLevel and LogFormat configure the diagnostic logger.
	LogLevel  string `flag:"log-level"  validate:"oneof=debug info warn error"`
	LogFormat string `flag:"log-format" validate:"oneof=text json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:    string(host.FormatJSON),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Bind registers the configuration flags on fs, using the current
// values of cfg as defaults.
func Bind(fs *pflag.FlagSet, cfg *Config) {
	formats := make([]string, 0, len(host.Formats))
	for _, format := range host.Formats {
		formats = append(formats, string(format))
	}

	fs.StringVarP(&cfg.Command, "command", "c", cfg.Command, "Command string to parse (instead of positional arguments)")
	fs.StringSliceVarP(&cfg.BooleanFlags, "bool", "b", cfg.BooleanFlags, "Name of a flag taking no value (repeatable, comma-separated)")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: "+strings.Join(formats, ", "))
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json")
}

// Validate normalizes the case of enumerated values, and checks them.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	return validation.New().Struct(c)
}
