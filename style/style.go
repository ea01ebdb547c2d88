// Package style implements named attribute bundles and the engine applying
// them to styled-text buffers: set, add and remove over a range, with text
// transforms re-applied per contiguous attribute run.
package style

import (
	"image/color"
	"net/url"

	"stext/attr"
	"stext/font"
)

// Applier is the common application surface of Style, Group and Regex.
type Applier interface {
	SetString(text string) *attr.Buffer
	Set(buf *attr.Buffer, rng attr.Range) *attr.Buffer
	Add(buf *attr.Buffer, rng attr.Range) *attr.Buffer
	Remove(buf *attr.Buffer, rng attr.Range) *attr.Buffer
}

// Style is a named, reusable bundle of attribute-producing configuration.
// All setters flip a single dirty flag; the derived attribute dictionary is
// recomputed lazily on next read. Styles may be read concurrently by many
// resolution passes but must not be mutated concurrently with reads - cache
// invalidation is not synchronized.
type Style struct {
	name string
	fd   *font.Data

	foreground    color.Color
	background    color.Color
	link          *url.URL
	paragraph     any
	baseline      float64
	hasBaseline   bool
	underline     bool
	strikethrough bool
	transforms    []Transform

	dirty  bool
	cached attr.Map
}

// New creates an empty style. The style owns its font configuration, any
// mutation of which invalidates the derived dictionary.
func New(name string) *Style {
	s := &Style{name: name, dirty: true}
	s.fd = font.NewData(s.invalidate)
	return s
}

func (s *Style) invalidate() {
	s.dirty = true
}

// Name returns the style name.
func (s *Style) Name() string {
	return s.name
}

// Font exposes the style's font configuration for mutation.
func (s *Style) Font() *font.Data {
	return s.fd
}

// SetForeground sets text color.
func (s *Style) SetForeground(c color.Color) *Style {
	s.foreground = c
	s.invalidate()
	return s
}

// SetBackground sets text background color.
func (s *Style) SetBackground(c color.Color) *Style {
	s.background = c
	s.invalidate()
	return s
}

// SetLink attaches a link URL.
func (s *Style) SetLink(u *url.URL) *Style {
	s.link = u
	s.invalidate()
	return s
}

// SetParagraph attaches an opaque paragraph-level payload. It is passed
// through to the output untouched.
func (s *Style) SetParagraph(p any) *Style {
	s.paragraph = p
	s.invalidate()
	return s
}

// SetBaselineOffset sets baseline shift in points.
func (s *Style) SetBaselineOffset(offset float64) *Style {
	s.baseline = offset
	s.hasBaseline = true
	s.invalidate()
	return s
}

// SetUnderline toggles underline decoration.
func (s *Style) SetUnderline(on bool) *Style {
	s.underline = on
	s.invalidate()
	return s
}

// SetStrikethrough toggles strikethrough decoration.
func (s *Style) SetStrikethrough(on bool) *Style {
	s.strikethrough = on
	s.invalidate()
	return s
}

// AddTransform appends a text transform. Transforms run in registration
// order, per maximal run of identical attributes, never across run
// boundaries.
func (s *Style) AddTransform(t Transform) *Style {
	s.transforms = append(s.transforms, t)
	s.invalidate()
	return s
}

// Transforms returns registered transforms in application order.
func (s *Style) Transforms() []Transform {
	return s.transforms
}

// Attributes returns the derived dictionary of all non-font attributes this
// style produces. The returned map is the cache itself, treat it read-only.
// Font attributes are not part of it - they depend on the font inherited
// from the target range and are resolved per run during application.
func (s *Style) Attributes() attr.Map {
	if !s.dirty {
		return s.cached
	}
	m := attr.Map{}
	if s.foreground != nil {
		m[attr.KeyColor] = s.foreground
	}
	if s.background != nil {
		m[attr.KeyBackground] = s.background
	}
	if s.link != nil {
		m[attr.KeyLink] = s.link
	}
	if s.paragraph != nil {
		m[attr.KeyParagraph] = s.paragraph
	}
	if s.hasBaseline {
		m[attr.KeyBaselineOffset] = s.baseline
	}
	if s.underline {
		m[attr.KeyUnderline] = true
	}
	if s.strikethrough {
		m[attr.KeyStrikethrough] = true
	}
	s.cached = m
	s.dirty = false
	return m
}

// SetString builds a fresh buffer from plain text: font attributes first,
// then the full dictionary, then transforms.
func (s *Style) SetString(text string) *attr.Buffer {
	return s.apply(attr.NewBuffer(text), attr.All)
}

// Set applies the style over the range of buf, mutating it in place,
// and returns buf for chaining. Applying the same style's Set twice yields
// the same dictionary as applying it once - replacement, not accumulation.
func (s *Style) Set(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	return s.apply(buf, rng)
}

// Add is identical to Set: both perform the same overwrite-merge at the
// attribute-key level. A true fill-gaps-only additive merge would contradict
// nested-tag precedence (an inner style applied later must win), so the
// distinction is intentionally not made here.
func (s *Style) Add(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	return s.apply(buf, rng)
}

// Remove clears every key present in this style's dictionary over the range
// and then still re-applies text transforms. Re-running transforms on
// removal mirrors the set/add path and keeps all operations symmetric;
// callers relying on removal restoring the original text shape should not -
// transforms are not invertible.
func (s *Style) Remove(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	rng = rng.Clamp(buf.Len())
	keys := s.Attributes().Keys()
	if !s.fd.IsZero() {
		keys = append(keys, attr.KeyFont)
		if m := s.fd.Resolve(nil); m != nil {
			if _, ok := m[attr.KeyKerning]; ok {
				keys = append(keys, attr.KeyKerning)
			}
		}
	}
	if len(keys) > 0 {
		buf.ClearAttrs(rng, keys...)
	}
	s.applyTransforms(buf, rng)
	return buf
}

func (s *Style) apply(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	rng = rng.Clamp(buf.Len())

	// Font first: resolution depends on the font already present, which may
	// differ from run to run.
	if !s.fd.IsZero() {
		for _, run := range buf.RunsIn(rng) {
			if m := s.fd.Resolve(font.FontOf(run.Attrs)); m != nil {
				buf.MergeAttrs(attr.Range{Start: run.Start, End: run.End}, m)
			}
		}
	}

	buf.MergeAttrs(rng, s.Attributes())
	s.applyTransforms(buf, rng)
	return buf
}

// applyTransforms runs registered transforms over every maximal run of
// identical attributes inside rng. A single left-to-right pass re-fetches
// runs after each splice, so transforms changing character count never
// invalidate offsets of the remaining work.
func (s *Style) applyTransforms(buf *attr.Buffer, rng attr.Range) {
	if len(s.transforms) == 0 {
		return
	}
	pos := rng.Start
	end := rng.End
	for pos < end {
		runs := buf.RunsIn(attr.Range{Start: pos, End: end})
		if len(runs) == 0 {
			break
		}
		run := runs[0]
		in := buf.Slice(attr.Range{Start: run.Start, End: run.End})
		out := in
		for _, t := range s.transforms {
			out = t.Apply(out)
		}
		delta := 0
		if out != in {
			delta = buf.ReplaceRange(attr.Range{Start: run.Start, End: run.End}, out)
		}
		pos = run.End + delta
		end += delta
	}
}
