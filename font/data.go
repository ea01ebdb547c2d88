package font

import (
	"stext/attr"
)

// Data is per-style font configuration: optional explicit family and size,
// feature toggles, trait variants, kerning and dynamic scaling. A Data is
// created together with its owning style with all values empty and mutated
// through setters for the style's whole life.
//
// The owner passes an onChange callback at construction; every setter calls
// it so the owner can invalidate derived caches. Notification is explicit -
// Data never holds a reference back to its owner.
type Data struct {
	onChange func()

	family string
	size   float64

	numberCase    NumberCase
	numberSpacing NumberSpacing
	fractions     FractionStyle
	vertical      VerticalPosition
	smallCaps     SmallCaps
	stylisticAlt  bool
	contextualAlt bool
	traits        Traits

	kerning    float64
	hasKerning bool

	scaled     bool
	category   TextCategory
	maxSize    float64
	appearance string
}

// NewData creates empty font configuration. onChange may be nil.
func NewData(onChange func()) *Data {
	return &Data{onChange: onChange}
}

func (d *Data) changed() {
	if d.onChange != nil {
		d.onChange()
	}
}

// SetFamily sets explicit font family. Empty value restores inheritance.
func (d *Data) SetFamily(family string) {
	d.family = family
	d.changed()
}

// SetSize sets explicit point size. Zero restores inheritance.
func (d *Data) SetSize(size float64) {
	d.size = size
	d.changed()
}

func (d *Data) SetNumberCase(v NumberCase) {
	d.numberCase = v
	d.changed()
}

func (d *Data) SetNumberSpacing(v NumberSpacing) {
	d.numberSpacing = v
	d.changed()
}

func (d *Data) SetFractions(v FractionStyle) {
	d.fractions = v
	d.changed()
}

// SetVerticalPosition stores the vertical glyph position. Positions are
// mutually exclusive - there is a single stored value and the last write
// wins, so conflicting boolean toggles cannot be expressed at all.
func (d *Data) SetVerticalPosition(v VerticalPosition) {
	d.vertical = v
	d.changed()
}

func (d *Data) SetSmallCaps(v SmallCaps) {
	d.smallCaps = v
	d.changed()
}

func (d *Data) SetStylisticAlternates(on bool) {
	d.stylisticAlt = on
	d.changed()
}

func (d *Data) SetContextualAlternates(on bool) {
	d.contextualAlt = on
	d.changed()
}

// SetTraits replaces the variant trait set.
func (d *Data) SetTraits(tr Traits) {
	d.traits = tr
	d.changed()
}

// AddTraits unions variants into the trait set.
func (d *Data) AddTraits(tr Traits) {
	d.traits |= tr
	d.changed()
}

// Traits returns the current variant trait set.
func (d *Data) Traits() Traits {
	return d.traits
}

// SetKerning sets tracking amount as a fraction of the resolved point size.
func (d *Data) SetKerning(em float64) {
	d.kerning = em
	d.hasKerning = true
	d.changed()
}

// ClearKerning removes the tracking amount.
func (d *Data) ClearKerning() {
	d.kerning = 0
	d.hasKerning = false
	d.changed()
}

// SetScaling requests dynamic scaling of the resolved font. maxSize 0 means
// unbounded, appearance is an opaque trait context passed through to the
// rendering layer.
func (d *Data) SetScaling(category TextCategory, maxSize float64, appearance string) {
	d.scaled = true
	d.category = category
	d.maxSize = maxSize
	d.appearance = appearance
	d.changed()
}

// ClearScaling removes the dynamic scaling request.
func (d *Data) ClearScaling() {
	d.scaled = false
	d.category = TextCategoryBody
	d.maxSize = 0
	d.appearance = ""
	d.changed()
}

// IsZero reports whether nothing at all is configured. A zero Data resolves
// to no attributes - pure inheritance.
func (d *Data) IsZero() bool {
	return d.family == "" && d.size == 0 &&
		d.numberCase == NumberCaseDefault &&
		d.numberSpacing == NumberSpacingDefault &&
		d.fractions == FractionStyleDefault &&
		d.vertical == VerticalPositionDefault &&
		d.smallCaps == SmallCapsDefault &&
		!d.stylisticAlt && !d.contextualAlt &&
		d.traits == 0 && !d.hasKerning && !d.scaled
}

// Resolve composes the configuration with the font inherited from the target
// range into the attributes this Data contributes.
//
// Base font selection: explicit family/size when set, else inherited, else -
// only when some toggle, trait, kerning or scaling is configured - the
// package fallback. A completely empty Data returns nil so that fonts already
// applied to the range survive untouched.
//
// Feature collection order is fixed: number case, number spacing, fractions,
// vertical position, small caps, stylistic alternates, contextual alternates.
// Trait variants are unioned after feature merging. Kerning becomes a
// separate attribute whose value depends on the resolved point size. A
// scaling request substitutes a *Scaled wrapper for the plain font value.
func (d *Data) Resolve(inherited *Font) attr.Map {
	if d.IsZero() {
		return nil
	}

	f := &Font{Family: d.family, Size: d.size}
	if inherited != nil {
		if f.Family == "" {
			f.Family = inherited.Family
		}
		if f.Size == 0 {
			f.Size = inherited.Size
		}
		f.Weight = inherited.Weight
		f.Slant = inherited.Slant
		f.Stretch = inherited.Stretch
		f.Mono = inherited.Mono
		f.Features = append(f.Features, inherited.Features...)
	}
	if f.Family == "" {
		f.Family = fallbackFamily
	}
	if f.Size == 0 {
		f.Size = fallbackSize
	}

	switch d.numberCase {
	case NumberCaseUpper:
		f.feature("lnum", 1)
	case NumberCaseLower:
		f.feature("onum", 1)
	}
	switch d.numberSpacing {
	case NumberSpacingProportional:
		f.feature("pnum", 1)
	case NumberSpacingMonospaced:
		f.feature("tnum", 1)
	}
	switch d.fractions {
	case FractionStyleDiagonal:
		f.feature("frac", 1)
	case FractionStyleVertical:
		f.feature("afrc", 1)
	}
	switch d.vertical {
	case VerticalPositionSuperscript:
		f.feature("sups", 1)
	case VerticalPositionSubscript:
		f.feature("subs", 1)
	case VerticalPositionOrdinals:
		f.feature("ordn", 1)
	case VerticalPositionScientificInferior:
		f.feature("sinf", 1)
	}
	switch d.smallCaps {
	case SmallCapsLowercase:
		f.feature("smcp", 1)
	case SmallCapsUppercase:
		f.feature("c2sc", 1)
	case SmallCapsAll:
		f.feature("smcp", 1)
		f.feature("c2sc", 1)
	}
	if d.stylisticAlt {
		f.feature("salt", 1)
	}
	if d.contextualAlt {
		f.feature("calt", 1)
	}

	f.applyTraits(d.traits)

	m := attr.Map{}
	if d.scaled {
		m[attr.KeyFont] = &Scaled{Font: f, Category: d.category, MaxSize: d.maxSize, Context: d.appearance}
	} else {
		m[attr.KeyFont] = f
	}
	if d.hasKerning {
		m[attr.KeyKerning] = d.kerning * f.Size
	}
	return m
}

// FontOf extracts the plain font descriptor out of an attribute map,
// unwrapping a scaling substitution when present.
func FontOf(m attr.Map) *Font {
	switch v := m[attr.KeyFont].(type) {
	case *Font:
		return v
	case *Scaled:
		return v.Font
	}
	return nil
}
