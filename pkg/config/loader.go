package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/arthur-debert/joymap/pkg/logging"
	"github.com/arthur-debert/joymap/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "JOYMAP_"

// sections lists the top level keys environment variables may target
var sections = map[string]bool{
	"bindings": true,
	"output":   true,
	"builtins": true,
	"logging":  true,
}

// LoadOptions tells Load where to look for configuration
type LoadOptions struct {
	// UserConfigPath is the user config file. When empty both
	// paths.UserConfigPath() and paths.UserConfigYAMLPath() are read.
	UserConfigPath string
	// WorkDir is searched for .joymap.toml and .joymap.yaml; the current
	// directory when empty
	WorkDir string
	// Overrides are applied last, keyed by dotted path (e.g. "output.dir")
	Overrides map[string]interface{}
}

// Load merges defaults, user config, project config, environment and
// overrides, in that order, and validates the result. Within a file layer
// the YAML file is merged after the TOML one.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config
	userPaths := []string{opts.UserConfigPath}
	if opts.UserConfigPath == "" {
		userPaths = []string{paths.UserConfigPath(), paths.UserConfigYAMLPath()}
	}
	for _, path := range userPaths {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range []string{paths.ProjectConfigFile, paths.ProjectConfigFileYAML} {
		if err := loadFileIfExists(k, filepath.Join(workDir, name)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("delimiter", cfg.Bindings.Delimiter).
		Str("attribute", cfg.Bindings.Attribute).
		Str("suffix", cfg.Output.Suffix).
		Bool("builtins", cfg.Builtins.Enabled).
		Msg("Configuration loaded")

	return &cfg, nil
}

// loadFileIfExists merges a config file into k when it is present.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Merged config file")
	return nil
}

// envKey maps JOYMAP_BUILTINS_DATE_FORMAT to builtins.date_format.
// Variables outside a known section are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" || !sections[section] {
		return ""
	}
	return section + "." + rest
}

// parserFor picks the koanf parser from the file extension. TOML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
