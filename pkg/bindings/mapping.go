package bindings

import (
	"sort"
)

// TokenMapping maps a placeholder token to its replacement text
type TokenMapping map[string]string

// Keys returns the tokens in sorted order.
func (m TokenMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new mapping holding m overlaid with other.
// Entries of other win.
func (m TokenMapping) Merge(other TokenMapping) TokenMapping {
	merged := make(TokenMapping, len(m)+len(other))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
