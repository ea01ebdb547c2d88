// Package font composes base font descriptors with orthogonal OpenType-style
// feature toggles into concrete font values for the rendering layer. The
// resolver never reaches for a system default unless nothing else is known -
// inherited fonts of the target range always win over the fallback.
package font

import (
	"slices"
)

// Feature is a single OpenType feature setting. Tags follow the OpenType
// feature registry (lnum, onum, pnum, tnum, frac, afrc, sups, subs, ordn,
// sinf, smcp, c2sc, salt, calt).
type Feature struct {
	Tag   string
	Value int
}

// Traits is a bit set of variant selectors unioned onto a resolved
// descriptor after feature merging.
type Traits uint8

const (
	TraitBold Traits = 1 << iota
	TraitItalic
	TraitCondensed
	TraitExpanded
	TraitMonospace
)

// Has reports whether all bits of t are set.
func (tr Traits) Has(t Traits) bool {
	return tr&t == t
}

// Font is a concrete resolved descriptor the rendering layer loads. It is
// treated as immutable once stored in an attribute map.
type Font struct {
	Family   string
	Size     float64
	Weight   Weight
	Slant    Slant
	Stretch  Stretch
	Mono     bool
	Features []Feature
}

// Clone returns an independent copy of the descriptor.
func (f *Font) Clone() *Font {
	if f == nil {
		return nil
	}
	out := *f
	out.Features = slices.Clone(f.Features)
	return &out
}

// feature sets or overwrites a feature value keeping first-set order.
func (f *Font) feature(tag string, value int) {
	for i := range f.Features {
		if f.Features[i].Tag == tag {
			f.Features[i].Value = value
			return
		}
	}
	f.Features = append(f.Features, Feature{Tag: tag, Value: value})
}

// applyTraits unions variant selectors onto the descriptor.
func (f *Font) applyTraits(tr Traits) {
	if tr.Has(TraitBold) && f.Weight < WeightBold {
		f.Weight = WeightBold
	}
	if tr.Has(TraitItalic) {
		f.Slant = SlantItalic
	}
	if tr.Has(TraitCondensed) {
		f.Stretch = StretchCondensed
	}
	if tr.Has(TraitExpanded) {
		f.Stretch = StretchExpanded
	}
	if tr.Has(TraitMonospace) {
		f.Mono = true
	}
}

// Scaled wraps a resolved font in a dynamic-scaling transform. When scaling
// is requested it substitutes for the plain font attribute value: the
// rendering layer scales Font according to the text category and the
// appearance context, never exceeding MaxSize (0 = unbounded).
type Scaled struct {
	Font     *Font
	Category TextCategory
	MaxSize  float64
	Context  string
}

const (
	fallbackFamily = "default"
	fallbackSize   = 12.0
)

// Fallback returns the last-resort descriptor used only when neither an
// explicit font nor an inherited one is known.
func Fallback() *Font {
	return &Font{Family: fallbackFamily, Size: fallbackSize}
}
