// Package mappings implements the mappings command, which prints the token
// mapping extracted from a Joystick Gremlin profile.
package mappings

import (
	"encoding/json"
	"time"

	"github.com/arthur-debert/joymap/pkg/bindings"
	"github.com/arthur-debert/joymap/pkg/config"
	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/arthur-debert/joymap/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported output formats
var Formats = []string{FormatTOML, FormatYAML, FormatJSON}

// MappingsOptions defines the options for the Mappings command.
type MappingsOptions struct {
	// BindingsPath is the Joystick Gremlin profile to read.
	BindingsPath string
	// Format is one of Formats; toml when empty.
	Format string
	// Config is the loaded configuration (optional, defaults when nil)
	Config *config.Config
}

// MappingsResult holds the extracted mapping and its encoding.
type MappingsResult struct {
	Mapping bindings.TokenMapping
	Format  string
	Encoded []byte
}

// Mappings extracts the token mapping of a profile and encodes it.
func Mappings(opts MappingsOptions) (*MappingsResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Mappings").Str("bindings", opts.BindingsPath).Msg("Executing command")
	defer logging.LogDuration(time.Now(), "mappings")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	format := opts.Format
	if format == "" {
		format = FormatTOML
	}

	m, err := bindings.Load(opts.BindingsPath, bindings.Options{
		Attribute: cfg.Bindings.Attribute,
		Delimiter: cfg.Bindings.Delimiter,
		Trim:      cfg.Bindings.Trim,
	})
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(m, format)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Mappings").Int("tokens", len(m)).Str("format", format).Msg("Command finished")
	return &MappingsResult{Mapping: m, Format: format, Encoded: encoded}, nil
}

// Encode renders m in the given format. Keys come out sorted.
func Encode(m bindings.TokenMapping, format string) ([]byte, error) {
	plain := map[string]string(m)
	if plain == nil {
		plain = map[string]string{}
	}

	var (
		out []byte
		err error
	)
	switch format {
	case FormatTOML:
		out, err = toml.Marshal(plain)
	case FormatYAML:
		out, err = yaml.Marshal(plain)
	case FormatJSON:
		out, err = json.MarshalIndent(plain, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format).
			WithDetail("formats", Formats)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode mapping as %s", format)
	}
	return out, nil
}
