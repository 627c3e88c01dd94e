// Package style parses inline CSS declarations and resolves the font
// metrics a render pass needs.
package style

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	styleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"|'(?:\\.|[^'])*'`},
		{Name: "Color", Pattern: `#[0-9A-Fa-f]{3,8}`},
		{Name: "Number", Pattern: `[+-]?(?:\d+\.\d+|\.\d+|\d+)(?:px|pt|rem|em|%)?`},
		{Name: "Ident", Pattern: `-?[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;,()/!]`},
	})

	declParser = participle.MustBuild[Declaration](
		participle.Lexer(styleLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Sheet holds the recognized declarations of an inline style attribute.
type Sheet struct {
	Decls []*Declaration
}

// Declaration is a single `property: value` entry.
type Declaration struct {
	Property string  `parser:"@Ident ':'"`
	Terms    []*Term `parser:"@@ ( ','? @@ )*"`
}

// Term is one value token of a declaration (font-family lists hold several).
type Term struct {
	String *QuotedString `parser:"  @String"`
	Number *string       `parser:"| @Number"`
	Color  *string       `parser:"| @Color"`
	Ident  *string       `parser:"| @Ident"`
}

// Text returns the term's plain value.
func (t *Term) Text() string {
	switch {
	case t == nil:
		return ""
	case t.String != nil:
		return string(*t.String)
	case t.Number != nil:
		return *t.Number
	case t.Color != nil:
		return *t.Color
	case t.Ident != nil:
		return *t.Ident
	}
	return ""
}

// CSS returns the term formatted for re-embedding in a style rule,
// re-quoting names that contain spaces.
func (t *Term) CSS() string {
	v := t.Text()
	if t != nil && t.String != nil && strings.ContainsAny(v, " \t") {
		return "'" + v + "'"
	}
	return v
}

// QuotedString unquotes single- or double-quoted CSS strings on capture.
type QuotedString string

// Capture implements participle.Capture.
func (s *QuotedString) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string capture requires value")
	}
	raw := values[0]
	if len(raw) < 2 {
		return fmt.Errorf("malformed string literal %q", raw)
	}
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		b.WriteByte(body[i])
	}
	*s = QuotedString(b.String())
	return nil
}

// Value joins the declaration terms back into a single CSS value string.
func (d *Declaration) Value() string {
	parts := make([]string, 0, len(d.Terms))
	for _, t := range d.Terms {
		parts = append(parts, t.CSS())
	}
	return strings.Join(parts, ", ")
}

// First returns the first term's plain value, or "".
func (d *Declaration) First() string {
	if len(d.Terms) == 0 {
		return ""
	}
	return d.Terms[0].Text()
}

// ParseDeclarations parses an inline style attribute value. Declarations
// are split on ';' and parsed one at a time; any chunk that fails to parse
// is skipped rather than failing the whole sheet — inline styles on real
// pages are frequently sloppy, and values like url(...) that the grammar
// does not model must not hide the declarations around them.
func ParseDeclarations(input string) *Sheet {
	sheet := &Sheet{}
	for _, chunk := range strings.Split(input, ";") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		decl, err := declParser.ParseString("", chunk)
		if err != nil || decl == nil {
			continue
		}
		sheet.Decls = append(sheet.Decls, decl)
	}
	return sheet
}

// Lookup returns the last declaration for the given property (case
// insensitive), matching the cascade rule that later entries win.
func (s *Sheet) Lookup(property string) *Declaration {
	var found *Declaration
	for _, d := range s.Decls {
		if strings.EqualFold(d.Property, property) {
			found = d
		}
	}
	return found
}
