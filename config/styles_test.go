package config

import (
	"image/color"
	"testing"

	"go.uber.org/zap/zaptest"

	"stext/attr"
	"stext/font"
)

func TestStylesConfigBuild(t *testing.T) {
	baseline := -2.0
	cfg := StylesConfig{
		Language: "en",
		Base:     &StyleDefinition{Family: "Georgia", Size: 12},
		Tags: map[string]StyleDefinition{
			"b":     {Bold: true},
			"code":  {Monospace: true, Background: "#eee"},
			"title": {Size: 18, Color: "red", Transforms: []string{"uppercase"}},
			"sub":   {VerticalPosition: "subscript", BaselineOffset: &baseline},
			"sc":    {SmallCaps: "lowercase"},
		},
	}

	styles, err := cfg.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if styles.Base() == nil {
		t.Fatal("base style missing")
	}
	for _, tag := range []string{"b", "code", "title", "sub", "sc"} {
		if _, ok := styles.Lookup(tag); !ok {
			t.Errorf("tag %q not registered", tag)
		}
	}

	st, _ := styles.Lookup("title")
	buf := st.SetString("abc")
	if buf.String() != "ABC" {
		t.Errorf("title transform produced %q, want ABC", buf.String())
	}
	if got := buf.AttrsAt(0)[attr.KeyColor]; got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("title color = %v, want red", got)
	}
	f := font.FontOf(buf.AttrsAt(0))
	if f == nil || f.Size != 18 {
		t.Errorf("title font = %+v, want size 18", f)
	}

	st, _ = styles.Lookup("sub")
	m := st.SetString("x").AttrsAt(0)
	if m[attr.KeyBaselineOffset] != baseline {
		t.Errorf("baseline = %v, want %v", m[attr.KeyBaselineOffset], baseline)
	}
	f = font.FontOf(m)
	if len(f.Features) != 1 || f.Features[0].Tag != "subs" {
		t.Errorf("sub features = %v, want subs", f.Features)
	}
}

func TestStylesConfigBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  StylesConfig
	}{
		{"bad language", StylesConfig{Language: "no-such-lang-tag!"}},
		{"bad color", StylesConfig{Tags: map[string]StyleDefinition{"x": {Color: "#zzz"}}}},
		{"bad background", StylesConfig{Tags: map[string]StyleDefinition{"x": {Background: "nope"}}}},
		{"unknown transform", StylesConfig{Tags: map[string]StyleDefinition{"x": {Transforms: []string{"rot13"}}}}},
		{"unknown small caps", StylesConfig{Tags: map[string]StyleDefinition{"x": {SmallCaps: "sideways"}}}},
		{"unknown vertical position", StylesConfig{Tags: map[string]StyleDefinition{"x": {VerticalPosition: "diagonal"}}}},
		{"unknown scaling category", StylesConfig{Tags: map[string]StyleDefinition{"x": {Scaling: &ScalingDefinition{Category: "gigantic"}}}}},
		{"bad base color", StylesConfig{Base: &StyleDefinition{Color: "#zzz"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Build(zaptest.NewLogger(t)); err == nil {
				t.Error("Build() expected error")
			}
		})
	}
}

func TestDefaultConfigurationBuilds(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	styles, err := cfg.Styles.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if styles.Base() == nil {
		t.Error("default configuration must produce a base style")
	}
	if _, ok := styles.Lookup("b"); !ok {
		t.Error("default configuration must register the b tag")
	}
}
