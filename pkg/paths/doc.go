// Package paths provides centralized path handling for joymap.
//
// It resolves where the rendered diagram is written and where joymap keeps
// its user configuration and log file.
//
// # Environment Variables
//
//   - JOYMAP_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/joymap)
//   - JOYMAP_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/joymap)
//
// # Usage
//
//	out := paths.OutputPath("profiles/hotas.xml", "", ".svg")
//	// out == "profiles/hotas.svg"
//
//	out = paths.OutputPath("profiles/hotas.xml", "build", ".svg")
//	// out == "build/hotas.svg"
package paths
