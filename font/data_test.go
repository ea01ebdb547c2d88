package font

import (
	"testing"

	"stext/attr"
)

func featureTags(f *Font) []string {
	tags := make([]string, 0, len(f.Features))
	for _, ft := range f.Features {
		tags = append(tags, ft.Tag)
	}
	return tags
}

func TestDataResolve_Zero(t *testing.T) {
	d := NewData(nil)
	if !d.IsZero() {
		t.Error("fresh Data should be zero")
	}
	if m := d.Resolve(nil); m != nil {
		t.Errorf("Resolve() = %v, want nil for zero Data", m)
	}
	if m := d.Resolve(&Font{Family: "Georgia", Size: 10}); m != nil {
		t.Errorf("Resolve() = %v, want nil regardless of inherited font", m)
	}
}

func TestDataResolve_Fallback(t *testing.T) {
	d := NewData(nil)
	d.SetSmallCaps(SmallCapsLowercase)

	m := d.Resolve(nil)
	f := FontOf(m)
	if f == nil {
		t.Fatal("Resolve() produced no font")
	}
	if f.Family != "default" || f.Size != 12 {
		t.Errorf("font = %q/%v, want fallback default/12", f.Family, f.Size)
	}
}

func TestDataResolve_Inheritance(t *testing.T) {
	inherited := &Font{Family: "Georgia", Size: 10, Weight: WeightBold, Features: []Feature{{Tag: "calt", Value: 1}}}

	t.Run("explicit values win", func(t *testing.T) {
		d := NewData(nil)
		d.SetFamily("Menlo")
		d.SetSize(9)
		f := FontOf(d.Resolve(inherited))
		if f.Family != "Menlo" || f.Size != 9 {
			t.Errorf("font = %q/%v, want explicit Menlo/9", f.Family, f.Size)
		}
		if f.Weight != WeightBold {
			t.Errorf("weight = %v, want inherited bold", f.Weight)
		}
	})

	t.Run("unset values inherit", func(t *testing.T) {
		d := NewData(nil)
		d.SetNumberCase(NumberCaseUpper)
		f := FontOf(d.Resolve(inherited))
		if f.Family != "Georgia" || f.Size != 10 {
			t.Errorf("font = %q/%v, want inherited Georgia/10", f.Family, f.Size)
		}
		if got := featureTags(f); len(got) != 2 || got[0] != "calt" || got[1] != "lnum" {
			t.Errorf("features = %v, want inherited calt then lnum", got)
		}
	})
}

func TestDataResolve_FeatureOrder(t *testing.T) {
	d := NewData(nil)
	// configure in reverse of the resolution order on purpose
	d.SetContextualAlternates(true)
	d.SetStylisticAlternates(true)
	d.SetSmallCaps(SmallCapsAll)
	d.SetVerticalPosition(VerticalPositionSuperscript)
	d.SetFractions(FractionStyleDiagonal)
	d.SetNumberSpacing(NumberSpacingMonospaced)
	d.SetNumberCase(NumberCaseLower)

	f := FontOf(d.Resolve(nil))
	want := []string{"onum", "tnum", "frac", "sups", "smcp", "c2sc", "salt", "calt"}
	got := featureTags(f)
	if len(got) != len(want) {
		t.Fatalf("features = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("features = %v, want fixed order %v", got, want)
		}
	}
}

func TestDataResolve_VerticalPositionLastWins(t *testing.T) {
	d := NewData(nil)
	d.SetVerticalPosition(VerticalPositionSuperscript)
	d.SetVerticalPosition(VerticalPositionSubscript)

	f := FontOf(d.Resolve(nil))
	got := featureTags(f)
	if len(got) != 1 || got[0] != "subs" {
		t.Errorf("features = %v, want only subs", got)
	}
}

func TestDataResolve_Traits(t *testing.T) {
	d := NewData(nil)
	d.AddTraits(TraitBold | TraitItalic | TraitMonospace)

	f := FontOf(d.Resolve(&Font{Family: "Georgia", Size: 10}))
	if f.Weight != WeightBold {
		t.Errorf("weight = %v, want bold", f.Weight)
	}
	if f.Slant != SlantItalic {
		t.Errorf("slant = %v, want italic", f.Slant)
	}
	if !f.Mono {
		t.Error("mono flag not set")
	}
}

func TestDataResolve_Kerning(t *testing.T) {
	d := NewData(nil)
	d.SetKerning(0.5)

	m := d.Resolve(&Font{Family: "Georgia", Size: 10})
	// tracking is stored in points, derived from the resolved size
	if got, ok := m[attr.KeyKerning].(float64); !ok || got != 5 {
		t.Errorf("kerning = %v, want 5 points for 0.5em at size 10", m[attr.KeyKerning])
	}

	d.ClearKerning()
	if !d.IsZero() {
		t.Error("Data should be zero again after ClearKerning")
	}
}

func TestDataResolve_Scaling(t *testing.T) {
	d := NewData(nil)
	d.SetFamily("Georgia")
	d.SetScaling(TextCategoryHeadline, 21, "dark")

	m := d.Resolve(nil)
	sc, ok := m[attr.KeyFont].(*Scaled)
	if !ok {
		t.Fatalf("font attribute = %T, want *Scaled substitution", m[attr.KeyFont])
	}
	if sc.Category != TextCategoryHeadline || sc.MaxSize != 21 || sc.Context != "dark" {
		t.Errorf("scaling = %+v, want headline/21/dark", sc)
	}
	if sc.Font.Family != "Georgia" {
		t.Errorf("wrapped family = %q, want Georgia", sc.Font.Family)
	}
	// FontOf unwraps the substitution
	if f := FontOf(m); f == nil || f.Family != "Georgia" {
		t.Errorf("FontOf() = %v, want wrapped font", f)
	}

	d.ClearScaling()
	if _, ok := d.Resolve(nil)[attr.KeyFont].(*Font); !ok {
		t.Error("plain font expected after ClearScaling")
	}
}

func TestDataOnChange(t *testing.T) {
	calls := 0
	d := NewData(func() { calls++ })
	d.SetFamily("Georgia")
	d.SetSize(10)
	d.AddTraits(TraitBold)
	if calls != 3 {
		t.Errorf("onChange called %d times, want 3", calls)
	}
}

func TestFontClone(t *testing.T) {
	f := &Font{Family: "Georgia", Size: 10, Features: []Feature{{Tag: "smcp", Value: 1}}}
	c := f.Clone()
	c.Features[0].Value = 0
	if f.Features[0].Value != 1 {
		t.Error("Clone() shares feature slice with original")
	}
}

func TestParseEnums(t *testing.T) {
	w, err := ParseWeight("bold")
	if err != nil || w != WeightBold {
		t.Errorf("ParseWeight(bold) = %v, %v", w, err)
	}
	if _, err := ParseSmallCaps("nope"); err == nil {
		t.Error("ParseSmallCaps should fail for unknown value")
	}
	if got := TextCategoryLargeTitle.String(); got != "largeTitle" {
		t.Errorf("TextCategoryLargeTitle.String() = %q, want largeTitle", got)
	}
}
