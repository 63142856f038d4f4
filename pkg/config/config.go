package config

import (
	"strings"

	"github.com/arthur-debert/joymap/pkg/bindings"
	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/arthur-debert/joymap/pkg/paths"
)

// Config is the fully merged joymap configuration
type Config struct {
	Bindings Bindings      `koanf:"bindings"`
	Output   Output        `koanf:"output"`
	Builtins Builtins      `koanf:"builtins"`
	Logging  LoggingConfig `koanf:"logging"`
}

// Bindings controls how description attributes are read
type Bindings struct {
	Attribute string `koanf:"attribute"`
	Delimiter string `koanf:"delimiter"`
	Trim      bool   `koanf:"trim"`
}

// Output controls where rendered diagrams are written
type Output struct {
	Suffix string `koanf:"suffix"`
	Dir    string `koanf:"dir"`
}

// Builtins controls the tokens joymap provides itself
type Builtins struct {
	Enabled      bool   `koanf:"enabled"`
	TemplateName string `koanf:"template_name"`
	CurrentDate  string `koanf:"current_date"`
	DateFormat   string `koanf:"date_format"`
}

// LoggingConfig controls log destinations
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// Default returns the configuration described by the embedded defaults file.
func Default() *Config {
	return &Config{
		Bindings: Bindings{
			Attribute: bindings.DefaultAttribute,
			Delimiter: bindings.DefaultDelimiter,
		},
		Output: Output{
			Suffix: paths.DefaultOutputSuffix,
		},
		Builtins: Builtins{
			Enabled:      true,
			TemplateName: bindings.TemplateNameToken,
			CurrentDate:  bindings.CurrentDateToken,
			DateFormat:   bindings.DefaultDateFormat,
		},
		Logging: LoggingConfig{
			File: true,
		},
	}
}

// Validate rejects values that would make a run meaningless.
func (c *Config) Validate() error {
	if c.Bindings.Delimiter == "" {
		return errors.New(errors.ErrConfigValid, "bindings.delimiter must not be empty")
	}
	if strings.TrimSpace(c.Bindings.Attribute) == "" {
		return errors.New(errors.ErrConfigValid, "bindings.attribute must not be empty")
	}
	if !strings.HasPrefix(c.Output.Suffix, ".") {
		return errors.Newf(errors.ErrConfigValid, "output.suffix %q must start with a dot", c.Output.Suffix).
			WithDetail("key", "output.suffix")
	}
	if c.Builtins.Enabled && c.Builtins.DateFormat == "" {
		return errors.New(errors.ErrConfigValid, "builtins.date_format must not be empty")
	}
	return nil
}
