// Package commands provides high-level command implementations for joymap.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the extract/fill pipeline.
//
// Each command is implemented in its own subdirectory:
//   - render/   - Render command
//   - mappings/ - Mappings command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/joymap/pkg/commands/mappings"
	"github.com/arthur-debert/joymap/pkg/commands/render"
)

// Render fills a template from a profile and writes the diagram.
type RenderOptions = render.RenderOptions

func Render(opts RenderOptions) (*render.RenderResult, error) {
	return render.Render(opts)
}

// Mappings extracts and encodes the token mapping of a profile.
type MappingsOptions = mappings.MappingsOptions

func Mappings(opts MappingsOptions) (*mappings.MappingsResult, error) {
	return mappings.Mappings(opts)
}
