// Package css provides the tiny CSS value layer dynamic tag attributes need:
// color values and inline declaration lists. It deliberately stops there -
// the markup resolver is not a stylesheet engine.
package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color value: #rgb, #rrggbb, #rrggbbaa, rgb(...),
// rgba(...) and SVG 1.1 color names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color value")
	}

	l := css.NewLexer(parse.NewInputString(s))
	for {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.HashToken:
			return parseHexColor(string(data))
		case css.IdentToken:
			name := strings.ToLower(string(data))
			if c, ok := colornames.Map[name]; ok {
				return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
			}
			return color.NRGBA{}, fmt.Errorf("unknown color name %q", name)
		case css.FunctionToken:
			fn := strings.ToLower(strings.TrimSuffix(string(data), "("))
			if fn != "rgb" && fn != "rgba" {
				return color.NRGBA{}, fmt.Errorf("unsupported color function %q", fn)
			}
			return parseRGBArgs(l, fn)
		default:
			return color.NRGBA{}, fmt.Errorf("unable to parse color %q", s)
		}
	}
}

func parseHexColor(hash string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(hash, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", hash)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", hash, err)
	}
	if len(hex) == 8 {
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func parseRGBArgs(l *css.Lexer, fn string) (color.NRGBA, error) {
	var (
		args []float64
		pct  []bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken, css.CommaToken, css.CommentToken:
			continue
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("bad %s() argument %q: %w", fn, string(data), err)
			}
			args = append(args, v)
			pct = append(pct, false)
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("bad %s() argument %q: %w", fn, string(data), err)
			}
			args = append(args, v)
			pct = append(pct, true)
		case css.RightParenthesisToken, css.ErrorToken:
			if len(args) < 3 {
				return color.NRGBA{}, fmt.Errorf("%s() needs at least 3 arguments, got %d", fn, len(args))
			}
			// channels: numbers are 0..255, percentages 0..100
			for i := 0; i < 3; i++ {
				if pct[i] {
					args[i] = args[i] * 255.0 / 100.0
				}
			}
			c := color.NRGBA{R: clampByte(args[0]), G: clampByte(args[1]), B: clampByte(args[2]), A: 0xff}
			if len(args) > 3 {
				// alpha: numbers are 0..1, percentages 0..100
				a := args[3]
				if pct[3] {
					a /= 100.0
				}
				if a < 0 {
					a = 0
				}
				if a > 1 {
					a = 1
				}
				c.A = uint8(a*255.0 + 0.5)
			}
			return c, nil
		default:
			return color.NRGBA{}, fmt.Errorf("unexpected token %q in %s()", string(data), fn)
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
