package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argtypes/internal/validation"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Config)
		expErr []string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name: "values are case insensitive",
			modify: func(c *Config) {
				c.Format = "YAML"
				c.LogLevel = "Debug"
				c.LogFormat = "JSON"
			},
		},
		{
			name:   "unknown format",
			modify: func(c *Config) { c.Format = "xml" },
			expErr: []string{"--format: `xml` is not one of json, yaml, hcl, text"},
		},
		{
			name: "several invalid fields",
			modify: func(c *Config) {
				c.LogLevel = "trace"
				c.LogFormat = "xml"
			},
			expErr: []string{
				"--log-level: `trace` is not one of debug, info, warn, error",
				"--log-format: `xml` is not one of text, json",
			},
		},
		{
			name:   "empty boolean flag name",
			modify: func(c *Config) { c.BooleanFlags = []string{"verbose", ""} },
			expErr: []string{"is required"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			test.modify(cfg)

			err := cfg.Validate()
			if len(test.expErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, validation.ErrInvalidValue)
			for _, msg := range test.expErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Bind(fs, cfg)

	require.NoError(t, fs.Parse([]string{"-b", "verbose,dry-run", "--bool", "force", "-f", "hcl", "--log-level", "debug", "-c", "--name Alice"}))

	assert.Equal(t, []string{"verbose", "dry-run", "force"}, cfg.BooleanFlags)
	assert.Equal(t, "hcl", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "--name Alice", cfg.Command)
	require.NoError(t, cfg.Validate())
}
