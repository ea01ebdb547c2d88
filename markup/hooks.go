package markup

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stext/attr"
	"stext/css"
	"stext/font"
	"stext/images"
	"stext/style"
)

// Hooks is the extensibility surface of the resolver, called at two well
// defined points of the resolution walk: after markup for an unregistered
// tag was stripped, and after a node's base style was applied when the tag
// carries XML attributes. Implementations may apply additional styling and
// mutate the buffer; any length change is accounted for by the resolver.
type Hooks interface {
	// UnknownTag is invoked for a tag with no registered style. The tag
	// markup is already stripped, text of the range survives unstyled.
	UnknownTag(ctx context.Context, buf *attr.Buffer, tag string, rng attr.Range, attrs []Attr) error

	// DynamicAttributes is invoked after base-style application for every
	// node carrying XML attributes, letting per-occurrence parameters
	// override or extend the tag's style.
	DynamicAttributes(ctx context.Context, buf *attr.Buffer, tag string, rng attr.Range, attrs []Attr) error
}

// StandardHooks is the default Hooks implementation:
//
//   - any tag: color="..." applies a foreground color, style="prop: value"
//     applies inline declarations mapped onto an ad-hoc style;
//   - a: href="..." attaches a link URL attribute over the range;
//   - img: url="..." fetches a remote image, named="..." resolves a local
//     one (source callback first, then the resolver's assets); the image is
//     inserted as a single object-replacement rune carrying the attachment
//     attribute, optionally fitted into a rect="w,h" box. A missing image
//     is skipped, surrounding text and styling stay intact.
type StandardHooks struct {
	Log    *zap.Logger
	Images *images.Resolver
	Source images.Source
}

// UnknownTag logs the occurrence and leaves the text unstyled.
func (h *StandardHooks) UnknownTag(_ context.Context, _ *attr.Buffer, tag string, _ attr.Range, _ []Attr) error {
	h.Log.Debug("Unregistered tag, markup stripped", zap.String("tag", tag))
	return nil
}

// DynamicAttributes implements the built-in per-tag attribute handling.
func (h *StandardHooks) DynamicAttributes(ctx context.Context, buf *attr.Buffer, tag string, rng attr.Range, attrs []Attr) error {
	switch tag {
	case "a":
		if href, ok := attrValue(attrs, "href"); ok {
			if u, err := url.Parse(href); err == nil {
				buf.MergeAttrs(rng, attr.Map{attr.KeyLink: u})
			} else {
				h.Log.Warn("Unable to parse link target, skipping", zap.String("href", href), zap.Error(err))
			}
		}
	case "img":
		if err := h.insertImage(ctx, buf, rng, attrs); err != nil {
			return err
		}
	}

	if value, ok := attrValue(attrs, "color"); ok {
		if c, err := css.ParseColor(value); err == nil {
			buf.MergeAttrs(rng, attr.Map{attr.KeyColor: c})
		} else {
			h.Log.Warn("Unable to parse color attribute, skipping", zap.String("tag", tag), zap.String("value", value), zap.Error(err))
		}
	}
	if value, ok := attrValue(attrs, "style"); ok {
		if ds := h.dynamicStyle(tag, value); ds != nil {
			ds.Add(buf, rng)
		}
	}
	return nil
}

// dynamicStyle maps inline declarations onto an ad-hoc style. Unknown
// properties are logged and skipped.
func (h *StandardHooks) dynamicStyle(tag, value string) *style.Style {
	decls := css.ParseDeclarations(value)
	if len(decls) == 0 {
		return nil
	}
	ds := style.New(tag + "#style")
	applied := false
	for _, d := range decls {
		switch d.Property {
		case "color":
			c, err := css.ParseColor(d.Value)
			if err != nil {
				h.Log.Warn("Unable to parse color declaration, skipping", zap.String("value", d.Value), zap.Error(err))
				continue
			}
			ds.SetForeground(c)
			applied = true
		case "background-color":
			c, err := css.ParseColor(d.Value)
			if err != nil {
				h.Log.Warn("Unable to parse background declaration, skipping", zap.String("value", d.Value), zap.Error(err))
				continue
			}
			ds.SetBackground(c)
			applied = true
		case "font-size":
			size, err := parsePoints(d.Value)
			if err != nil {
				h.Log.Warn("Unable to parse font-size declaration, skipping", zap.String("value", d.Value), zap.Error(err))
				continue
			}
			ds.Font().SetSize(size)
			applied = true
		case "font-weight":
			if d.Value == "bold" || d.Value == "bolder" {
				ds.Font().AddTraits(font.TraitBold)
				applied = true
			} else if v, err := strconv.Atoi(d.Value); err == nil && v >= 600 {
				ds.Font().AddTraits(font.TraitBold)
				applied = true
			}
		case "font-style":
			if d.Value == "italic" || d.Value == "oblique" {
				ds.Font().AddTraits(font.TraitItalic)
				applied = true
			}
		case "letter-spacing":
			em, err := parseEm(d.Value)
			if err != nil {
				h.Log.Warn("Unable to parse letter-spacing declaration, skipping", zap.String("value", d.Value), zap.Error(err))
				continue
			}
			ds.Font().SetKerning(em)
			applied = true
		case "text-decoration":
			switch d.Value {
			case "underline":
				ds.SetUnderline(true)
				applied = true
			case "line-through":
				ds.SetStrikethrough(true)
				applied = true
			}
		default:
			h.Log.Debug("Unsupported style declaration, skipping", zap.String("property", d.Property), zap.String("value", d.Value))
		}
	}
	if !applied {
		return nil
	}
	return ds
}

// insertImage resolves and splices an inline image at the node position.
// Absence of the image is not an error - insertion is simply omitted.
func (h *StandardHooks) insertImage(ctx context.Context, buf *attr.Buffer, rng attr.Range, attrs []Attr) error {
	var (
		att *images.Attachment
		err error
	)
	if rawURL, ok := attrValue(attrs, "url"); ok {
		att, err = h.Images.Remote(ctx, rawURL)
		if err != nil {
			h.Log.Warn("Unable to resolve remote image, skipping", zap.String("url", rawURL), zap.Error(err))
			return nil
		}
	} else if name, ok := attrValue(attrs, "named"); ok {
		att, err = h.resolveNamed(ctx, name, attrs)
		if err != nil {
			h.Log.Warn("Unable to resolve named image, skipping", zap.String("name", name), zap.Error(err))
			return nil
		}
	}
	if att == nil {
		return nil
	}

	if rect, ok := attrValue(attrs, "rect"); ok {
		w, hgt, err := parseRect(rect)
		if err != nil {
			h.Log.Warn("Unable to parse image rect, keeping intrinsic size", zap.String("rect", rect), zap.Error(err))
		} else {
			images.Fit(att, w, hgt)
		}
	}

	m := buf.AttrsAt(rng.Start)
	if m == nil {
		m = buf.AttrsAt(rng.Start - 1)
	}
	m = m.Clone()
	if m == nil {
		m = attr.Map{}
	}
	m[attr.KeyAttachment] = att
	buf.InsertText(rng.Start, "￼", m)
	return nil
}

// resolveNamed tries the caller-supplied source first, then the asset FS.
func (h *StandardHooks) resolveNamed(ctx context.Context, name string, attrs []Attr) (*images.Attachment, error) {
	if h.Source != nil {
		img, err := h.Source(ctx, name, attrMap(attrs))
		if err != nil {
			return nil, err
		}
		if img != nil {
			return &images.Attachment{ID: name, Name: name, Source: name, Image: img, Bounds: img.Bounds()}, nil
		}
	}
	return h.Images.Named(ctx, name)
}

// parseRect parses "w,h" or "x,y,w,h" into target box dimensions.
func parseRect(s string) (w, h int, err error) {
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 2:
	case 4:
		parts = parts[2:]
	default:
		return 0, 0, fmt.Errorf("rect %q must be w,h or x,y,w,h", s)
	}
	if w, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, err
	}
	if h, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// parsePoints parses a size value in points, accepting a pt/px suffix.
func parsePoints(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "pt"), "px")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseEm parses a tracking value as a fraction of the point size, accepting
// an em suffix.
func parseEm(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "em")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
