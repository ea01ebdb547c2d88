// Package attr defines the attribute model for styled text: string-keyed
// attribute maps with deterministic merge semantics and a text buffer keeping
// normalized attribute runs. Attribute values are opaque to this package -
// consumers of the resolved buffer decide how to interpret them.
package attr

import (
	"reflect"
	"sort"
)

// Key identifies a single attribute in a map. Consumers are free to define
// their own keys in addition to the well-known ones below.
type Key string

// Well-known attribute keys produced by the style engine.
const (
	KeyFont           Key = "font"
	KeyColor          Key = "color"
	KeyBackground     Key = "background"
	KeyKerning        Key = "kerning"
	KeyLink           Key = "link"
	KeyAttachment     Key = "attachment"
	KeyParagraph      Key = "paragraph"
	KeyBaselineOffset Key = "baseline-offset"
	KeyUnderline      Key = "underline"
	KeyStrikethrough  Key = "strikethrough"
	KeyOblique        Key = "oblique"
)

// Map is an attribute dictionary. Values are opaque payloads understood by
// the rendering layer (resolved fonts, colors, URLs, attachments, numbers).
type Map map[Key]any

// Clone returns a shallow copy of the map. Values are shared - they are
// treated as immutable once stored.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge copies all entries from other into m, overwriting values for keys
// present in both. Non-overlapping keys accumulate, overlapping keys are
// last write wins. Returns m for chaining.
func (m Map) Merge(other Map) Map {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Equal reports whether both maps hold the same keys with deeply equal
// values. Values do not have to be comparable with ==.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Keys returns map keys sorted lexicographically for deterministic output.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
