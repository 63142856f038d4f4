package bindings

import (
	"strings"

	"github.com/arthur-debert/joymap/pkg/logging"
	"github.com/arthur-debert/joymap/pkg/xmldoc"
	"github.com/beevik/etree"
)

const (
	// DefaultDelimiter separates tokens and values in a description
	DefaultDelimiter = "|"

	// DefaultAttribute is the attribute carrying the description
	DefaultAttribute = "description"
)

// Options controls how descriptions are found and split
type Options struct {
	// Attribute is the element attribute holding the description
	Attribute string
	// Delimiter separates tokens and values
	Delimiter string
	// Trim strips whitespace around the description and every segment,
	// and drops pairs whose token is then empty
	Trim bool
}

// DefaultOptions returns the options matching a stock Gremlin profile.
func DefaultOptions() Options {
	return Options{
		Attribute: DefaultAttribute,
		Delimiter: DefaultDelimiter,
	}
}

func (o Options) withDefaults() Options {
	if o.Attribute == "" {
		o.Attribute = DefaultAttribute
	}
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	return o
}

// Pair is one token and its replacement text
type Pair struct {
	Token string
	Value string
}

// ParseDescription splits a description into token/value pairs.
// Segments alternate token, value, token, value. A trailing token with no
// value pairs with "". Blank descriptions produce no pairs.
func ParseDescription(desc string, opts Options) []Pair {
	opts = opts.withDefaults()

	if strings.TrimSpace(desc) == "" {
		return nil
	}
	if opts.Trim {
		desc = strings.TrimSpace(desc)
	}

	parts := strings.Split(desc, opts.Delimiter)
	pairs := make([]Pair, 0, (len(parts)+1)/2)
	for i := 0; i < len(parts); i += 2 {
		p := Pair{Token: parts[i]}
		if i+1 < len(parts) {
			p.Value = parts[i+1]
		}
		if opts.Trim {
			p.Token = strings.TrimSpace(p.Token)
			p.Value = strings.TrimSpace(p.Value)
			if p.Token == "" {
				continue
			}
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// Extract walks every element of doc in document order and collects the
// pairs of each description. A token seen again overwrites the earlier
// value.
func Extract(doc *etree.Document, opts Options) TokenMapping {
	opts = opts.withDefaults()
	logger := logging.GetLogger("bindings")

	mapping := make(TokenMapping)
	root := doc.Root()
	if root == nil {
		return mapping
	}

	controls := 0
	walk(root, func(el *etree.Element) {
		attr := el.SelectAttr(opts.Attribute)
		if attr == nil {
			return
		}
		pairs := ParseDescription(attr.Value, opts)
		if len(pairs) == 0 {
			return
		}
		controls++
		for _, p := range pairs {
			if prev, seen := mapping[p.Token]; seen && prev != p.Value {
				logger.Debug().
					Str("token", p.Token).
					Str("previous", prev).
					Str("value", p.Value).
					Str("element", el.GetPath()).
					Msg("Token redefined, keeping the later value")
			}
			mapping[p.Token] = p.Value
		}
	})

	if len(mapping) == 0 {
		logger.Info().Str("attribute", opts.Attribute).Msg("No mappings were found in the bindings document")
	} else {
		logger.Info().Int("controls", controls).Int("tokens", len(mapping)).Msg("Extracted bindings")
	}
	return mapping
}

// Load reads the profile at path and extracts its mapping.
func Load(path string, opts Options) (TokenMapping, error) {
	doc, err := xmldoc.Read(path, xmldoc.InputBindings)
	if err != nil {
		return nil, err
	}
	return Extract(doc, opts), nil
}

// LoadBytes parses a profile held in memory and extracts its mapping.
func LoadBytes(data []byte, opts Options) (TokenMapping, error) {
	doc, err := xmldoc.Parse(data, xmldoc.InputBindings)
	if err != nil {
		return nil, err
	}
	return Extract(doc, opts), nil
}

func walk(el *etree.Element, visit func(*etree.Element)) {
	visit(el)
	for _, child := range el.ChildElements() {
		walk(child, visit)
	}
}
