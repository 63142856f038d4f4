package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for joymap
	EnvConfigDir = "JOYMAP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for joymap
	EnvStateDir = "JOYMAP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for joymap-specific files
	AppDirName = "joymap"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"

	// UserConfigFileYAML is the YAML form of the user configuration file
	UserConfigFileYAML = "config.yaml"

	// ProjectConfigFile is the name of the per-directory configuration file
	ProjectConfigFile = ".joymap.toml"

	// ProjectConfigFileYAML is the YAML form of the per-directory configuration file
	ProjectConfigFileYAML = ".joymap.yaml"

	// LogFile is the name of the log file inside the state directory
	LogFile = "joymap.log"

	// DefaultOutputSuffix is the extension given to rendered diagrams
	DefaultOutputSuffix = ".svg"
)

// OutputPath derives the rendered diagram path from the binding file path.
// The extension of configPath is replaced with suffix. When outDir is empty
// the result sits next to configPath, otherwise inside outDir.
func OutputPath(configPath, outDir, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}

	base := filepath.Base(configPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + suffix

	if outDir == "" {
		return filepath.Join(filepath.Dir(configPath), name)
	}
	return filepath.Join(expandHome(outDir), name)
}

// TemplateName returns the binding file name without directory or extension.
func TemplateName(configPath string) string {
	base := filepath.Base(configPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the full path of the user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// UserConfigYAMLPath returns the full path of the YAML user configuration file.
func UserConfigYAMLPath() string {
	return filepath.Join(ConfigDir(), UserConfigFileYAML)
}

// StateDir returns the directory holding the log file.
// XDG_STATE_HOME is read directly so changes after startup are honored.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFile)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if path == "~" {
			return homeDir
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
