// Package testutil provides utilities for testing joymap components.
//
// Key components:
//   - File helpers: create, read and assert on files in t.TempDir()
//   - ProfileBuilder: declarative Joystick Gremlin profile fixtures
//   - SVGBuilder: declarative SVG template fixtures
//   - TextContents: the text nodes of a document, in order
//
// All test data should be defined inline, not in external files.
package testutil
