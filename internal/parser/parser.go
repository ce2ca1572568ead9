package parser

import (
	"fmt"

	"github.com/gqlkit/gqlkit/internal/gqlerrors"
	"github.com/gqlkit/gqlkit/internal/token"
)

var nilValue = Spanning[InputValue]{}

type Parser interface {
	Parse() (Spanning[InputValue], error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Spanning[InputValue], error) {
	value := p.value()

	if p.err == nil && !p.isAtEnd() {
		p.reportValueError(gqlerrors.ErrParseExpectedEndOfInput)
	}
	if p.err != nil {
		return nilValue, p.err
	}

	return value, nil
}

func (p *parser) value() Spanning[InputValue] {
	switch {
	case p.match(token.INT):
		tok := p.previous()
		return Located[InputValue](InputInt(tok.Literal.(int32)), tok.Span())
	case p.match(token.FLOAT):
		tok := p.previous()
		return Located[InputValue](InputFloat(tok.Literal.(float64)), tok.Span())
	case p.match(token.STRING):
		tok := p.previous()
		return Located[InputValue](InputString(tok.Literal.(string)), tok.Span())
	case p.match(token.TRUE):
		return Located[InputValue](InputBoolean(true), p.previous().Span())
	case p.match(token.FALSE):
		return Located[InputValue](InputBoolean(false), p.previous().Span())
	case p.match(token.NULL):
		return Located[InputValue](InputNull{}, p.previous().Span())
	case p.match(token.NAME):
		tok := p.previous()
		return Located[InputValue](InputEnum(tok.Lexeme), tok.Span())
	case p.match(token.VARIABLE):
		tok := p.previous()
		return Located[InputValue](InputVariable(tok.Literal.(string)), tok.Span())
	case p.match(token.LEFT_BRACKET):
		return p.list()
	case p.match(token.LEFT_BRACE):
		return p.object()
	}

	return p.reportValueError(gqlerrors.ErrParseUnexpectedToken)
}

func (p *parser) list() Spanning[InputValue] {
	open := p.previous()

	var items InputList
	for !p.check(token.RIGHT_BRACKET) && !p.isDone() {
		items = append(items, p.value())
	}

	if !p.match(token.RIGHT_BRACKET) {
		return p.reportValueError(gqlerrors.ErrParseExpectedRightBracket)
	}

	return Located[InputValue](items, p.spanFrom(open))
}

func (p *parser) object() Spanning[InputValue] {
	open := p.previous()

	var fields InputObject
	for !p.check(token.RIGHT_BRACE) && !p.isDone() {
		if !p.match(token.NAME) {
			return p.reportValueError(gqlerrors.ErrParseExpectedFieldName)
		}
		name := p.previous()

		if !p.match(token.COLON) {
			return p.reportValueError(gqlerrors.ErrParseExpectedColon)
		}

		fields = append(fields, InputField{
			Key:   Located(name.Lexeme, name.Span()),
			Value: p.value(),
		})
	}

	if !p.match(token.RIGHT_BRACE) {
		return p.reportValueError(gqlerrors.ErrParseExpectedRightBrace)
	}

	return Located[InputValue](fields, p.spanFrom(open))
}

// spanFrom is the source range from open to the just-consumed closing token.
func (p *parser) spanFrom(open *token.Token) token.Span {
	return token.Span{Start: open.Pos, End: p.previous().End}
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportValueError(err error) Spanning[InputValue] {
	if p.err != nil {
		return nilValue
	}

	t := p.peek()
	p.err = gqlerrors.NewParseError(t, err)

	return nilValue
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
