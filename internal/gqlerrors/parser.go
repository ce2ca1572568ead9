package gqlerrors

import (
	"errors"
	"fmt"

	"github.com/gqlkit/gqlkit/internal/token"
)

var (
	ErrParseUnexpectedToken      = errors.New("expected value.")
	ErrParseExpectedFieldName    = errors.New("expect field name.")
	ErrParseExpectedColon        = errors.New("expect ':' after field name.")
	ErrParseExpectedRightBracket = errors.New("expect ']' after list values.")
	ErrParseExpectedRightBrace   = errors.New("expect '}' after object fields.")
	ErrParseExpectedEndOfInput   = errors.New("expect end of input after value.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Pos.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
