package style

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform is a named pure string transformation attached to a style.
type Transform struct {
	name string
	fn   func(string) string
}

// TransformFunc wraps an arbitrary function as a named transform.
func TransformFunc(name string, fn func(string) string) Transform {
	return Transform{name: name, fn: fn}
}

// Name returns the transform name for debug output.
func (t Transform) Name() string {
	return t.name
}

// Apply runs the transform. A zero transform is the identity.
func (t Transform) Apply(s string) string {
	if t.fn == nil {
		return s
	}
	return t.fn(s)
}

// NewTransform builds a catalog transform for the given language. Und is
// treated as English for casing purposes.
func NewTransform(kind TransformKind, lang language.Tag) (Transform, error) {
	if lang == language.Und {
		lang = language.English
	}
	switch kind {
	case TransformKindUppercase:
		c := cases.Upper(lang)
		return TransformFunc(kind.String(), c.String), nil
	case TransformKindLowercase:
		c := cases.Lower(lang)
		return TransformFunc(kind.String(), c.String), nil
	case TransformKindCapitalize:
		c := cases.Title(lang)
		return TransformFunc(kind.String(), c.String), nil
	case TransformKindSentencecase:
		return TransformFunc(kind.String(), sentenceCase()), nil
	case TransformKindTransliterate:
		return TransformFunc(kind.String(), Transliterate), nil
	default:
		return Transform{}, fmt.Errorf("unknown transform %q", kind)
	}
}

// ParseTransform resolves a catalog transform by name.
func ParseTransform(name string, lang language.Tag) (Transform, error) {
	kind, err := ParseTransformKind(name)
	if err != nil {
		return Transform{}, err
	}
	return NewTransform(kind, lang)
}

// sentenceCase upper-cases the first letter of every sentence leaving the
// rest of the text as is. Sentence boundaries come from the bundled English
// tokenizer - good enough for the tag vocabulary this library serves.
func sentenceCase() func(string) string {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		// no tokenizer - treat the whole input as one sentence
		return upperFirst
	}
	return func(in string) string {
		var sb strings.Builder
		sb.Grow(len(in))
		for _, s := range tok.Tokenize(in) {
			sb.WriteString(upperFirst(s.Text))
		}
		if sb.Len() == 0 {
			return upperFirst(in)
		}
		return sb.String()
	}
}

func upperFirst(in string) string {
	for i, r := range in {
		if !unicode.IsLetter(r) {
			continue
		}
		return in[:i] + string(unicode.ToUpper(r)) + in[i+len(string(r)):]
	}
	return in
}
