package joymap

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Fill an SVG control diagram from a Joystick Gremlin profile"
	MsgMappingsShort   = "Print the token mapping extracted from a profile"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - No file was written"
	MsgVersionFormat  = "joymap version %s\n  commit: %s\n  built:  %s\n"
	MsgNoTokensFormat = "No tokens found in %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRender     = "failed to render diagram: %w"
	MsgErrMappings   = "failed to extract mappings: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Fill the template without writing the diagram"
	MsgFlagOutputDir = "Directory to write the diagram into (default: next to the profile)"
	MsgFlagFormat    = "Output format: toml, yaml or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/mappings-long.txt
	msgMappingsLongRaw string
	MsgMappingsLong    = strings.TrimSpace(msgMappingsLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
