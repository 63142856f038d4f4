// Package xmldoc reads and writes the XML documents joymap works on.
// Parse failures are reported as PARSE errors naming the failing input.
package xmldoc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/beevik/etree"
)

// Input names used in error details
const (
	InputBindings = "bindings"
	InputTemplate = "template"
)

// Read loads the document at path. input names the document in errors.
func Read(path, input string) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromFileError(err, path).WithDetail("input", input)
	}

	doc, perr := parse(data, input)
	if perr != nil {
		return nil, perr.WithDetail("path", path)
	}
	return doc, nil
}

// Parse builds a document from data. A document that is not well-formed,
// has no root element, or has content after its root is a PARSE error.
func Parse(data []byte, input string) (*etree.Document, error) {
	doc, err := parse(data, input)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parse(data []byte, input string) (*etree.Document, *errors.Error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "%s document is not well-formed XML", input).
			WithDetail("input", input)
	}
	if doc.Root() == nil {
		return nil, errors.Newf(errors.ErrParse, "%s document has no root element", input).
			WithDetail("input", input)
	}
	if err := checkTopLevel(doc, input); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkTopLevel rejects documents with more than one top level element or
// with text outside the root element. The etree reader accepts both.
func checkTopLevel(doc *etree.Document, input string) *errors.Error {
	elements := 0
	for _, tok := range doc.Child {
		switch v := tok.(type) {
		case *etree.Element:
			elements++
			if elements > 1 {
				return errors.Newf(errors.ErrParse, "%s document is not well-formed XML: more than one root element", input).
					WithDetail("input", input)
			}
		case *etree.CharData:
			if strings.TrimSpace(v.Data) != "" {
				return errors.Newf(errors.ErrParse, "%s document is not well-formed XML: text outside the root element", input).
					WithDetail("input", input)
			}
		}
	}
	return nil
}

// Write serializes doc to path, creating the parent directory.
func Write(doc *etree.Document, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", dir).
				WithDetail("path", dir)
		}
	}

	var buf bytes.Buffer
	if err := WriteTo(doc, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// WriteTo serializes doc to w.
func WriteTo(doc *etree.Document, w io.Writer) error {
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to serialize document")
	}
	return nil
}
