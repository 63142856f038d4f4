package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/joymap/pkg/bindings"
	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/arthur-debert/joymap/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated returns LoadOptions that never touch the real user or project config.
func isolated(t *testing.T) LoadOptions {
	t.Helper()
	dir := t.TempDir()
	return LoadOptions{
		UserConfigPath: filepath.Join(dir, "user", "config.toml"),
		WorkDir:        filepath.Join(dir, "work"),
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, bindings.DefaultDelimiter, cfg.Bindings.Delimiter)
	assert.Equal(t, bindings.DefaultAttribute, cfg.Bindings.Attribute)
	assert.False(t, cfg.Bindings.Trim)
	assert.Equal(t, paths.DefaultOutputSuffix, cfg.Output.Suffix)
	assert.True(t, cfg.Builtins.Enabled)
	assert.Equal(t, bindings.TemplateNameToken, cfg.Builtins.TemplateName)
	assert.Equal(t, bindings.CurrentDateToken, cfg.Builtins.CurrentDate)
	assert.Equal(t, bindings.DefaultDateFormat, cfg.Builtins.DateFormat)
}

func TestLoad_Layering(t *testing.T) {
	t.Run("user config overrides defaults", func(t *testing.T) {
		opts := isolated(t)
		writeConfig(t, opts.UserConfigPath, `
[bindings]
delimiter = ";"
`)
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, ";", cfg.Bindings.Delimiter)
		assert.Equal(t, "description", cfg.Bindings.Attribute)
	})

	t.Run("project config overrides user config", func(t *testing.T) {
		opts := isolated(t)
		writeConfig(t, opts.UserConfigPath, `
[output]
dir = "from-user"
suffix = ".user.svg"
`)
		writeConfig(t, filepath.Join(opts.WorkDir, ".joymap.toml"), `
[output]
dir = "from-project"
`)
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "from-project", cfg.Output.Dir)
		assert.Equal(t, ".user.svg", cfg.Output.Suffix)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		opts := isolated(t)
		writeConfig(t, filepath.Join(opts.WorkDir, ".joymap.toml"), `
[builtins]
date_format = "2006"
`)
		t.Setenv("JOYMAP_BUILTINS_DATE_FORMAT", "2006-01-02")
		t.Setenv("JOYMAP_BINDINGS_TRIM", "true")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "2006-01-02", cfg.Builtins.DateFormat)
		assert.True(t, cfg.Bindings.Trim)
	})

	t.Run("overrides win", func(t *testing.T) {
		opts := isolated(t)
		t.Setenv("JOYMAP_OUTPUT_DIR", "from-env")
		opts.Overrides = map[string]interface{}{"output.dir": "from-flag"}

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Output.Dir)
	})
}

func TestLoad_YAML(t *testing.T) {
	t.Run("explicit yaml user config", func(t *testing.T) {
		opts := isolated(t)
		opts.UserConfigPath = filepath.Join(filepath.Dir(opts.UserConfigPath), "config.yaml")
		writeConfig(t, opts.UserConfigPath, `
bindings:
  delimiter: ";"
  trim: true
`)
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, ";", cfg.Bindings.Delimiter)
		assert.True(t, cfg.Bindings.Trim)
	})

	t.Run("user config dir reads both formats", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, dir)
		writeConfig(t, filepath.Join(dir, paths.UserConfigFile), `
[output]
dir = "from-toml"
suffix = ".toml.svg"
`)
		writeConfig(t, filepath.Join(dir, paths.UserConfigFileYAML), `
output:
  dir: from-yaml
`)
		cfg, err := Load(LoadOptions{WorkDir: filepath.Join(dir, "work")})
		require.NoError(t, err)
		assert.Equal(t, "from-yaml", cfg.Output.Dir)
		assert.Equal(t, ".toml.svg", cfg.Output.Suffix)
	})

	t.Run("project yaml merges after project toml", func(t *testing.T) {
		opts := isolated(t)
		writeConfig(t, filepath.Join(opts.WorkDir, paths.ProjectConfigFile), `
[builtins]
date_format = "2006"
enabled = false
`)
		writeConfig(t, filepath.Join(opts.WorkDir, paths.ProjectConfigFileYAML), `
builtins:
  date_format: "2006-01-02"
`)
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "2006-01-02", cfg.Builtins.DateFormat)
		assert.False(t, cfg.Builtins.Enabled)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		opts := isolated(t)
		path := filepath.Join(opts.WorkDir, paths.ProjectConfigFileYAML)
		writeConfig(t, path, "bindings: [delimiter\n")

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})
}

func TestParserFor(t *testing.T) {
	assert.IsType(t, yaml.Parser(), parserFor("config.yaml"))
	assert.IsType(t, yaml.Parser(), parserFor(".joymap.YML"))
	assert.IsType(t, toml.Parser(), parserFor(".joymap.toml"))
	assert.IsType(t, toml.Parser(), parserFor("config"))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed toml", func(t *testing.T) {
		opts := isolated(t)
		writeConfig(t, opts.UserConfigPath, "[bindings\ndelimiter = ")

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, opts.UserConfigPath, errors.GetErrorDetails(err)["path"])
	})

	t.Run("empty delimiter", func(t *testing.T) {
		opts := isolated(t)
		opts.Overrides = map[string]interface{}{"bindings.delimiter": ""}

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty attribute", func(c *Config) { c.Bindings.Attribute = " " }, true},
		{"suffix without dot", func(c *Config) { c.Output.Suffix = "svg" }, true},
		{"empty date format", func(c *Config) { c.Builtins.DateFormat = "" }, true},
		{"empty date format with builtins off", func(c *Config) {
			c.Builtins.Enabled = false
			c.Builtins.DateFormat = ""
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"JOYMAP_BINDINGS_DELIMITER":   "bindings.delimiter",
		"JOYMAP_BUILTINS_DATE_FORMAT": "builtins.date_format",
		"JOYMAP_OUTPUT_DIR":           "output.dir",
		"JOYMAP_CONFIG_DIR":           "",
		"JOYMAP_STATE_DIR":            "",
		"JOYMAP_LOGGING":              "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, envKey(in))
		})
	}
}

func TestGetDefaultConfigContent(t *testing.T) {
	content := GetDefaultConfigContent()
	assert.Contains(t, content, "[bindings]")
	assert.Contains(t, content, `delimiter = "|"`)
}
