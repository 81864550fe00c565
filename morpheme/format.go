package morpheme

import (
	"strings"
	"unicode"
)

// Format renders the container in the analysis notation used by tests and
// tools, e.g.
//
//	kitap(kitap)+Noun+A3sg+Pnon+Nom+Noun+Dim(cIk[çık])+A3sg+Pnon+Nom
//
// A derivation adds the new category before the suffix name; suffixes
// with a surface show their template and the matched text.
func (c *Container) Format() string {
	return c.format(true)
}

// FormatNoSurface is Format without the (template[surface]) parts.
func (c *Container) FormatNoSurface() string {
	return c.format(false)
}

func (c *Container) String() string {
	return c.Format()
}

func (c *Container) format(withSurface bool) string {
	var b strings.Builder
	b.Grow(64)

	lex := c.root.Lexeme
	b.WriteString(c.root.Str)
	b.WriteByte('(')
	b.WriteString(lex.Lemma)
	b.WriteString(")+")
	b.WriteString(lex.Category.String())
	if name := lex.Secondary.String(); name != "" {
		b.WriteByte('+')
		b.WriteString(name)
	}

	for _, t := range c.Transitions() {
		if t.IsDerivation() {
			b.WriteByte('+')
			b.WriteString(t.To.Category.String())
		}
		if t.Suffix().Pretty != "" {
			b.WriteByte('+')
			b.WriteString(t.Suffix().Pretty)
		}
		if withSurface && hasLetterOrDigit(t.Matched) {
			b.WriteByte('(')
			b.WriteString(t.Form.Template)
			b.WriteByte('[')
			b.WriteString(t.Matched)
			b.WriteString("])")
		}
	}
	return b.String()
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
