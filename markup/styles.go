// Package markup resolves lightweight XML tag markup in plain strings into
// styled-text buffers: tags are matched case-sensitively against registered
// styles, nested ranges are applied outer to inner so the innermost tag wins
// for overlapping attribute keys, and per-occurrence tag attributes may
// override or extend the base style. Resolution is always best-effort - for
// any input string it produces a usable buffer.
package markup

import (
	"sort"

	"stext/images"
	"stext/style"
)

// Attr is a single tag attribute occurrence, order preserved as written.
type Attr struct {
	Name  string
	Value string
}

// attrValue returns the named attribute value and whether it was present.
func attrValue(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrMap(attrs []Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if _, exists := m[a.Name]; !exists {
			m[a.Name] = a.Value
		}
	}
	return m
}

// Styles is the tag registry a resolver works against: a case-sensitive
// tag to style mapping, an optional base style applied to the entire input
// before any tag styles, and an optional named-image source consulted before
// the resolver's asset lookup. Construct and fill it once - it is read-only
// during resolution.
type Styles struct {
	base   *style.Style
	tags   map[string]*style.Style
	source images.Source
}

// NewStyles creates an empty registry.
func NewStyles() *Styles {
	return &Styles{tags: make(map[string]*style.Style)}
}

// SetBase sets the style applied to the whole input before tag styles.
func (s *Styles) SetBase(st *style.Style) *Styles {
	s.base = st
	return s
}

// Base returns the base style, nil when not set.
func (s *Styles) Base() *style.Style {
	return s.base
}

// Set registers a style for a tag name. Matching is case-sensitive.
func (s *Styles) Set(tag string, st *style.Style) *Styles {
	s.tags[tag] = st
	return s
}

// Lookup resolves a tag name to its registered style.
func (s *Styles) Lookup(tag string) (*style.Style, bool) {
	st, ok := s.tags[tag]
	return st, ok
}

// SetImageSource installs the name-to-image callback consulted before the
// resolver's asset FS for `img named="..."` tags.
func (s *Styles) SetImageSource(source images.Source) *Styles {
	s.source = source
	return s
}

// ImageSource returns the installed callback, nil when not set.
func (s *Styles) ImageSource() images.Source {
	return s.source
}

// Tags returns registered tag names sorted for deterministic dumps.
func (s *Styles) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for t := range s.tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
