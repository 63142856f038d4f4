package testutil

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// ProfileBuilder builds Joystick Gremlin profile documents.
type ProfileBuilder struct {
	doc  *etree.Document
	mode *etree.Element
}

// NewProfile starts a profile with one device in the "Default" mode.
func NewProfile(deviceName string) *ProfileBuilder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	profile := doc.CreateElement("profile")
	profile.CreateAttr("version", "13")
	device := profile.CreateElement("devices").CreateElement("device")
	device.CreateAttr("name", deviceName)
	device.CreateAttr("type", "joystick")
	mode := device.CreateElement("mode")
	mode.CreateAttr("name", "Default")

	return &ProfileBuilder{doc: doc, mode: mode}
}

// Button adds a button control with a description attribute.
func (b *ProfileBuilder) Button(id, description string) *ProfileBuilder {
	return b.Control("button", id, description)
}

// Axis adds an axis control with a description attribute.
func (b *ProfileBuilder) Axis(id, description string) *ProfileBuilder {
	return b.Control("axis", id, description)
}

// Control adds a control of any kind with a description attribute.
func (b *ProfileBuilder) Control(kind, id, description string) *ProfileBuilder {
	el := b.mode.CreateElement(kind)
	el.CreateAttr("id", id)
	el.CreateAttr("description", description)
	el.CreateElement("container").CreateAttr("type", "basic")
	return b
}

// Bare adds a control without any description attribute.
func (b *ProfileBuilder) Bare(kind, id string) *ProfileBuilder {
	b.mode.CreateElement(kind).CreateAttr("id", id)
	return b
}

// String serializes the profile.
func (b *ProfileBuilder) String() string {
	s, err := b.doc.WriteToString()
	if err != nil {
		panic(err)
	}
	return s
}

// SVGBuilder builds SVG template documents.
type SVGBuilder struct {
	doc   *etree.Document
	layer *etree.Element
}

// NewSVG starts an SVG document with a single layer group.
func NewSVG() *SVGBuilder {
	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", "800")
	svg.CreateAttr("height", "600")
	layer := svg.CreateElement("g")
	layer.CreateAttr("id", "layer1")
	return &SVGBuilder{doc: doc, layer: layer}
}

// Text adds <text id=id><tspan>content</tspan></text>, the shape editors
// such as Inkscape write.
func (b *SVGBuilder) Text(id, content string) *SVGBuilder {
	text := b.layer.CreateElement("text")
	text.CreateAttr("id", id)
	text.CreateElement("tspan").SetText(content)
	return b
}

// PlainText adds <text id=id>content</text>.
func (b *SVGBuilder) PlainText(id, content string) *SVGBuilder {
	text := b.layer.CreateElement("text")
	text.CreateAttr("id", id)
	text.SetText(content)
	return b
}

// Rect adds a decorative rectangle.
func (b *SVGBuilder) Rect(id string) *SVGBuilder {
	rect := b.layer.CreateElement("rect")
	rect.CreateAttr("id", id)
	rect.CreateAttr("width", "10")
	rect.CreateAttr("height", "10")
	return b
}

// String serializes the template.
func (b *SVGBuilder) String() string {
	s, err := b.doc.WriteToString()
	if err != nil {
		panic(err)
	}
	return s
}

// ParseDocument parses XML or fails the test.
func ParseDocument(t *testing.T, data string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	return doc
}

// TextContents returns every non-whitespace text node of doc in document order.
func TextContents(doc *etree.Document) []string {
	var out []string
	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		for _, tok := range el.Child {
			switch v := tok.(type) {
			case *etree.CharData:
				if strings.TrimSpace(v.Data) != "" {
					out = append(out, v.Data)
				}
			case *etree.Element:
				visit(v)
			}
		}
	}
	visit(&doc.Element)
	return out
}

// TextByID returns the full text of the element with the given id attribute.
func TextByID(t *testing.T, doc *etree.Document, id string) string {
	t.Helper()

	el := doc.FindElement("//*[@id='" + id + "']")
	if el == nil {
		t.Fatalf("No element with id %q", id)
	}

	var sb strings.Builder
	var collect func(e *etree.Element)
	collect = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch v := tok.(type) {
			case *etree.CharData:
				sb.WriteString(v.Data)
			case *etree.Element:
				collect(v)
			}
		}
	}
	collect(el)
	return sb.String()
}
