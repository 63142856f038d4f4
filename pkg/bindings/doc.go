// Package bindings extracts placeholder tokens and their replacement text
// from a Joystick Gremlin profile.
//
// Each control element may carry a description attribute encoded as
//
//	token|value|token|value
//
// Every (token, value) pair becomes one TokenMapping entry. A trailing token
// without a value maps to the empty string, which blanks that placeholder.
// Missing, empty and malformed descriptions never fail; only a document that
// is not well-formed XML does.
package bindings
