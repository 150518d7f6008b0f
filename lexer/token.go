/*
File   : mixi/lexer/token.go

Token kinds and the Token type itself, per spec.md §3.
*/
package lexer

// Kind identifies which lexical category a Token belongs to.
type Kind string

const (
	IDENTIFIER Kind = "IDENTIFIER"
	INTEGER    Kind = "INTEGER"
	DECIMAL    Kind = "DECIMAL"
	CHARACTER  Kind = "CHARACTER"
	STRING     Kind = "STRING"
	OPERATOR   Kind = "OPERATOR"
	EOF        Kind = "EOF"
)

// Token is the flat value type the Lexer produces: a kind and the exact
// source substring matched (including surrounding quotes for character and
// string literals, and any sign/exponent of a number). Re-lexing Literal in
// isolation must yield the same Kind (spec.md §3's invariant).
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

// keywords is the set of reserved words recognized by their literal text
// over IDENTIFIER tokens (spec.md §4.2) — the Lexer itself is unaware of
// them; it always emits IDENTIFIER for an identifier-shaped token, and the
// Parser checks Literal against this set where the grammar calls for a
// keyword.
var keywords = map[string]bool{
	"LET": true, "DEF": true, "IF": true, "ELSE": true, "FOR": true,
	"IN": true, "DO": true, "RETURN": true, "OBJECT": true, "END": true,
	"NIL": true, "TRUE": true, "FALSE": true, "AND": true, "OR": true,
}

// IsKeyword reports whether literal is one of the reserved words.
func IsKeyword(literal string) bool {
	return keywords[literal]
}
