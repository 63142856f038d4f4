package bindings

import (
	"time"

	"github.com/arthur-debert/joymap/pkg/paths"
)

// Default built-in token names and date layout
const (
	TemplateNameToken = "TEMPLATE_NAME"
	CurrentDateToken  = "CURRENT_DATE"
	DefaultDateFormat = "02/01/2006"
)

// BuiltinOptions names the tokens joymap fills in itself
type BuiltinOptions struct {
	// TemplateNameToken is replaced with the profile file name, no extension
	TemplateNameToken string
	// CurrentDateToken is replaced with now formatted by DateFormat
	CurrentDateToken string
	// DateFormat is a Go reference layout
	DateFormat string
}

// Builtins returns the tool-provided tokens for a render of configPath at
// now. A token left empty in opts is not produced.
func Builtins(configPath string, now time.Time, opts BuiltinOptions) TokenMapping {
	m := make(TokenMapping, 2)
	if opts.TemplateNameToken != "" {
		m[opts.TemplateNameToken] = paths.TemplateName(configPath)
	}
	if opts.CurrentDateToken != "" && opts.DateFormat != "" {
		m[opts.CurrentDateToken] = now.Format(opts.DateFormat)
	}
	return m
}
