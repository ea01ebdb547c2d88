package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single property: value pair of an inline style attribute.
// Value is kept raw - callers decide which properties they understand.
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclarations parses inline declaration text ("color: red; margin: 0")
// the way style="..." attributes carry it. Parsing stops at the first
// malformed declaration, whatever parsed before it survives.
func ParseDeclarations(s string) []Declaration {
	var decls []Declaration

	p := css.NewParser(parse.NewInputString(s), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return decls
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			var sb strings.Builder
			for _, val := range p.Values() {
				sb.Write(val.Data)
			}
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    strings.TrimSpace(sb.String()),
			})
		}
	}
}
