package token

import (
	"fmt"
)

// Position is a location in literal source text, 1-based.
type Position struct {
	Line   int
	Column int
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the source range a token or parsed node covers.
// End points one column past the last rune of the lexeme.
type Span struct {
	Start Position
	End   Position
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Pos     Position
	End     Position
}

func NewToken(t TokenType, lexeme string, literal any, pos, end Position) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
		End:     end,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal any, pos, end Position) *Token {
	tt := NewToken(t, lexeme, literal, pos, end)
	return &tt
}

// Span returns the source range the token covers.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Pos: %s}", t.Type, t.Lexeme, t.Literal, t.Pos)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
