// Package svgfill substitutes placeholder text in an SVG template.
//
// Every text node whose complete content equals a token of a
// bindings.TokenMapping is rewritten with the mapped value. Matching is
// exact and case-sensitive; anything else passes through untouched.
package svgfill

import (
	"sort"
	"strings"

	"github.com/arthur-debert/joymap/pkg/bindings"
	"github.com/arthur-debert/joymap/pkg/logging"
	"github.com/arthur-debert/joymap/pkg/xmldoc"
	"github.com/beevik/etree"
)

// Result summarizes one substitution pass
type Result struct {
	// Nodes is the number of text nodes examined
	Nodes int
	// Replaced is the number of text nodes rewritten
	Replaced int
	// Matched lists the distinct tokens found in the template, sorted
	Matched []string
	// Unused lists the mapping tokens no text node carried, sorted
	Unused []string
}

// Fill rewrites, in place, every text node of doc whose content is a key of
// m. Each node is looked up once with its original content, so a value that
// happens to equal another token is not substituted again.
// Whitespace-only nodes are layout and are never looked up.
func Fill(doc *etree.Document, m bindings.TokenMapping) *Result {
	logger := logging.GetLogger("svgfill")
	result := &Result{}
	matched := make(map[string]bool)

	visitText(&doc.Element, func(cd *etree.CharData) {
		result.Nodes++
		value, ok := m[cd.Data]
		if !ok {
			return
		}
		logger.Debug().Str("token", cd.Data).Str("value", value).Msg("Replacing placeholder")
		matched[cd.Data] = true
		cd.Data = value
		result.Replaced++
	})

	for token := range matched {
		result.Matched = append(result.Matched, token)
	}
	sort.Strings(result.Matched)

	for _, token := range m.Keys() {
		if !matched[token] {
			result.Unused = append(result.Unused, token)
		}
	}

	for _, token := range result.Unused {
		logger.Info().Str("token", token).Msg("Token not found in template")
	}
	if result.Replaced == 0 {
		logger.Info().Int("nodes", result.Nodes).Msg("No replacements were made in the template")
	} else {
		logger.Info().
			Int("replaced", result.Replaced).
			Int("tokens", len(result.Matched)).
			Int("unused", len(result.Unused)).
			Msg("Template filled")
	}

	return result
}

// visitText calls fn for every non-whitespace character data token below el,
// CDATA sections included. Comments and processing instructions are skipped.
func visitText(el *etree.Element, fn func(*etree.CharData)) {
	// fn may rewrite a node; the child slice itself is never changed
	for _, tok := range el.Child {
		switch v := tok.(type) {
		case *etree.CharData:
			if strings.TrimSpace(v.Data) != "" {
				fn(v)
			}
		case *etree.Element:
			visitText(v, fn)
		}
	}
}

// Load reads the template at path.
func Load(path string) (*etree.Document, error) {
	return xmldoc.Read(path, xmldoc.InputTemplate)
}

// LoadBytes parses a template held in memory.
func LoadBytes(data []byte) (*etree.Document, error) {
	return xmldoc.Parse(data, xmldoc.InputTemplate)
}

// Write serializes the filled template to path, creating its directory.
func Write(doc *etree.Document, path string) error {
	return xmldoc.Write(doc, path)
}
