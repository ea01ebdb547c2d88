package config

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"stext/css"
	"stext/font"
	"stext/markup"
	"stext/style"
)

type (
	// ScalingDefinition requests dynamic scaling of the resolved font.
	ScalingDefinition struct {
		Category string  `yaml:"category,omitempty"`
		MaxSize  float64 `yaml:"max_size,omitempty" validate:"gte=0"`
		Context  string  `yaml:"context,omitempty"`
	}

	// StyleDefinition is one declarative named style. Empty fields keep
	// inherited behavior - only what is set here contributes attributes.
	StyleDefinition struct {
		Family           string             `yaml:"family,omitempty"`
		Size             float64            `yaml:"size,omitempty" validate:"gte=0"`
		Bold             bool               `yaml:"bold,omitempty"`
		Italic           bool               `yaml:"italic,omitempty"`
		Monospace        bool               `yaml:"monospace,omitempty"`
		Color            string             `yaml:"color,omitempty"`
		Background       string             `yaml:"background,omitempty"`
		Link             string             `yaml:"link,omitempty"`
		Kerning          float64            `yaml:"kerning,omitempty"`
		Underline        bool               `yaml:"underline,omitempty"`
		Strikethrough    bool               `yaml:"strikethrough,omitempty"`
		BaselineOffset   *float64           `yaml:"baseline_offset,omitempty"`
		SmallCaps        string             `yaml:"small_caps,omitempty"`
		NumberCase       string             `yaml:"number_case,omitempty"`
		NumberSpacing    string             `yaml:"number_spacing,omitempty"`
		Fractions        string             `yaml:"fractions,omitempty"`
		VerticalPosition string             `yaml:"vertical_position,omitempty"`
		StylisticAlt     bool               `yaml:"stylistic_alternates,omitempty"`
		ContextualAlt    bool               `yaml:"contextual_alternates,omitempty"`
		Scaling          *ScalingDefinition `yaml:"scaling,omitempty"`
		Transforms       []string           `yaml:"transforms,omitempty" validate:"dive,required"`
	}

	// StylesConfig declares the tag registry: an optional base style applied
	// to the whole input and per-tag styles for the markup resolver.
	StylesConfig struct {
		Language string                     `yaml:"language,omitempty"`
		Base     *StyleDefinition           `yaml:"base,omitempty"`
		Tags     map[string]StyleDefinition `yaml:"tags,omitempty"`
	}
)

// Build turns the declarative configuration into a resolver style registry.
// It fails only on invalid values - bad colors, unknown transforms or
// toggles - with errors naming the offending tag.
func (c *StylesConfig) Build(log *zap.Logger) (*markup.Styles, error) {
	lang := language.Und
	if len(c.Language) > 0 {
		var err error
		if lang, err = language.Parse(c.Language); err != nil {
			return nil, fmt.Errorf("styles language: %w", err)
		}
	}

	styles := markup.NewStyles()
	if c.Base != nil {
		st, err := c.Base.build("base", lang)
		if err != nil {
			return nil, err
		}
		styles.SetBase(st)
	}
	for tag, def := range c.Tags {
		st, err := def.build(tag, lang)
		if err != nil {
			return nil, err
		}
		styles.Set(tag, st)
		log.Debug("Registered tag style", zap.String("tag", tag))
	}
	return styles, nil
}

func (d *StyleDefinition) build(name string, lang language.Tag) (*style.Style, error) {
	st := style.New(name)
	fd := st.Font()

	if len(d.Family) > 0 {
		fd.SetFamily(d.Family)
	}
	if d.Size > 0 {
		fd.SetSize(d.Size)
	}

	var traits font.Traits
	if d.Bold {
		traits |= font.TraitBold
	}
	if d.Italic {
		traits |= font.TraitItalic
	}
	if d.Monospace {
		traits |= font.TraitMonospace
	}
	if traits != 0 {
		fd.SetTraits(traits)
	}

	if len(d.SmallCaps) > 0 {
		v, err := font.ParseSmallCaps(d.SmallCaps)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		fd.SetSmallCaps(v)
	}
	if len(d.NumberCase) > 0 {
		v, err := font.ParseNumberCase(d.NumberCase)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		fd.SetNumberCase(v)
	}
	if len(d.NumberSpacing) > 0 {
		v, err := font.ParseNumberSpacing(d.NumberSpacing)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		fd.SetNumberSpacing(v)
	}
	if len(d.Fractions) > 0 {
		v, err := font.ParseFractionStyle(d.Fractions)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		fd.SetFractions(v)
	}
	if len(d.VerticalPosition) > 0 {
		v, err := font.ParseVerticalPosition(d.VerticalPosition)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		fd.SetVerticalPosition(v)
	}
	if d.StylisticAlt {
		fd.SetStylisticAlternates(true)
	}
	if d.ContextualAlt {
		fd.SetContextualAlternates(true)
	}
	if d.Kerning != 0 {
		fd.SetKerning(d.Kerning)
	}
	if d.Scaling != nil {
		category := font.TextCategoryBody
		if len(d.Scaling.Category) > 0 {
			var err error
			if category, err = font.ParseTextCategory(d.Scaling.Category); err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
		}
		fd.SetScaling(category, d.Scaling.MaxSize, d.Scaling.Context)
	}

	if len(d.Color) > 0 {
		c, err := css.ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("style %q color: %w", name, err)
		}
		st.SetForeground(c)
	}
	if len(d.Background) > 0 {
		c, err := css.ParseColor(d.Background)
		if err != nil {
			return nil, fmt.Errorf("style %q background: %w", name, err)
		}
		st.SetBackground(c)
	}
	if len(d.Link) > 0 {
		u, err := url.Parse(d.Link)
		if err != nil {
			return nil, fmt.Errorf("style %q link: %w", name, err)
		}
		st.SetLink(u)
	}
	if d.BaselineOffset != nil {
		st.SetBaselineOffset(*d.BaselineOffset)
	}
	if d.Underline {
		st.SetUnderline(true)
	}
	if d.Strikethrough {
		st.SetStrikethrough(true)
	}

	for _, t := range d.Transforms {
		tr, err := style.ParseTransform(t, lang)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		st.AddTransform(tr)
	}
	return st, nil
}
