// Package render implements the render command: fill an SVG template with
// the bindings of a Joystick Gremlin profile and write the diagram.
package render

import (
	"fmt"
	"time"

	"github.com/arthur-debert/joymap/pkg/bindings"
	"github.com/arthur-debert/joymap/pkg/config"
	"github.com/arthur-debert/joymap/pkg/logging"
	"github.com/arthur-debert/joymap/pkg/paths"
	"github.com/arthur-debert/joymap/pkg/svgfill"
)

// RenderOptions defines the options for the Render command.
type RenderOptions struct {
	// BindingsPath is the Joystick Gremlin profile to read descriptions from.
	BindingsPath string
	// TemplatePath is the SVG template holding the placeholders.
	TemplatePath string
	// DryRun fills the template without writing it.
	DryRun bool
	// Config is the loaded configuration (optional, defaults when nil)
	Config *config.Config
	// Now is the render time used by built-in tokens (optional, defaults to time.Now)
	Now time.Time
}

// RenderResult describes a finished render.
type RenderResult struct {
	Command    string
	Timestamp  time.Time
	DryRun     bool
	OutputPath string
	// Tokens is the number of tokens extracted from the profile
	Tokens int
	// Builtins is the number of tool-provided tokens in effect
	Builtins int
	Fill     *svgfill.Result
	Message  string
}

// Render runs extract, fill and write for one profile and template.
// A parse failure of either document aborts before anything is written.
func Render(opts RenderOptions) (*RenderResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().
		Str("command", "Render").
		Str("bindings", opts.BindingsPath).
		Str("template", opts.TemplatePath).
		Msg("Executing command")
	defer logging.LogOperationStart(log, "render")()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	extracted, err := bindings.Load(opts.BindingsPath, bindings.Options{
		Attribute: cfg.Bindings.Attribute,
		Delimiter: cfg.Bindings.Delimiter,
		Trim:      cfg.Bindings.Trim,
	})
	if err != nil {
		return nil, err
	}

	doc, err := svgfill.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	mapping := extracted
	builtins := bindings.TokenMapping{}
	if cfg.Builtins.Enabled {
		builtins = bindings.Builtins(opts.BindingsPath, now, bindings.BuiltinOptions{
			TemplateNameToken: cfg.Builtins.TemplateName,
			CurrentDateToken:  cfg.Builtins.CurrentDate,
			DateFormat:        cfg.Builtins.DateFormat,
		})
		mapping = builtins.Merge(extracted)
	}

	fillResult := svgfill.Fill(doc, mapping)

	outPath := paths.OutputPath(opts.BindingsPath, cfg.Output.Dir, cfg.Output.Suffix)

	result := &RenderResult{
		Command:    "render",
		Timestamp:  now,
		DryRun:     opts.DryRun,
		OutputPath: outPath,
		Tokens:     len(extracted),
		Builtins:   len(builtins),
		Fill:       fillResult,
	}

	if opts.DryRun {
		result.Message = fmt.Sprintf("Would write %s with %d replacements.", outPath, fillResult.Replaced)
		log.Info().Str("command", "Render").Str("output", outPath).Bool("dryRun", true).Msg("Command finished")
		return result, nil
	}

	if err := svgfill.Write(doc, outPath); err != nil {
		return nil, err
	}

	if fillResult.Replaced == 1 {
		result.Message = fmt.Sprintf("Wrote %s with 1 replacement.", outPath)
	} else {
		result.Message = fmt.Sprintf("Wrote %s with %d replacements.", outPath, fillResult.Replaced)
	}

	log.Info().Str("command", "Render").Str("output", outPath).Int("replaced", fillResult.Replaced).Msg("Command finished")
	return result, nil
}
