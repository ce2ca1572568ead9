package scanner

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gqlkit/gqlkit/internal/gqlerrors"
	"github.com/gqlkit/gqlkit/internal/token"
)

type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"true":  token.TRUE,
	"false": token.FALSE,
	"null":  token.NULL,
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	startPos, pos  token.Position
	err            error
}

// NewScanner returns a new Scanner over literal source text.
func NewScanner(input string) Scanner {
	pos := token.Position{Line: 1, Column: 1}
	return &scanner{source: []rune(input), startPos: pos, pos: pos}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.startPos = s.pos
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.pos, s.pos))

	return s.tokens, s.err
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '[':
		s.addToken(token.LEFT_BRACKET)
	case ']':
		s.addToken(token.RIGHT_BRACKET)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ':':
		s.addToken(token.COLON)
	case ',', ' ', '\r', '\t', '\n':
		// Commas are insignificant, same as whitespace.
	case '#':
		s.comment()
	case '"':
		s.string()
	case '$':
		s.variable()
	case '-':
		s.number()
	default:
		if s.isDigit(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.reservedOrName()
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	if c == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	s.current++
	return c
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	lexeme := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.NewToken(t, lexeme, literal, s.startPos, s.pos))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	value := new(strings.Builder)

	for !s.isAtEnd() && s.peek() != '"' {
		c := s.peek()
		if c == '\n' {
			s.reportError(gqlerrors.ErrScanUnterminatedString)
			return
		}
		if c == '\\' {
			s.advance()
			s.escape(value)
			if s.hasErr() {
				return
			}
			continue
		}
		value.WriteRune(s.advance())
	}

	if s.isAtEnd() {
		s.reportError(gqlerrors.ErrScanUnterminatedString)
		return
	}

	// The closing ".
	s.advance()
	s.addTokenLiteral(token.STRING, value.String())
}

func (s *scanner) escape(value *strings.Builder) {
	if s.isAtEnd() {
		s.reportError(gqlerrors.ErrScanUnterminatedString)
		return
	}

	switch c := s.advance(); c {
	case '"':
		value.WriteRune('"')
	case '\\':
		value.WriteRune('\\')
	case '/':
		value.WriteRune('/')
	case 'b':
		value.WriteRune('\b')
	case 'f':
		value.WriteRune('\f')
	case 'n':
		value.WriteRune('\n')
	case 'r':
		value.WriteRune('\r')
	case 't':
		value.WriteRune('\t')
	case 'u':
		s.unicodeEscape(value)
	default:
		s.reportErrorDetails(gqlerrors.ErrScanInvalidEscape, strconv.QuoteRune(c))
	}
}

func (s *scanner) unicodeEscape(value *strings.Builder) {
	var code rune
	for i := 0; i < 4; i++ {
		if s.isAtEnd() {
			s.reportError(gqlerrors.ErrScanUnterminatedString)
			return
		}
		c := s.advance()
		d, ok := hexDigit(c)
		if !ok {
			s.reportErrorDetails(gqlerrors.ErrScanInvalidEscape, strconv.QuoteRune(c))
			return
		}
		code = code<<4 | d
	}
	value.WriteRune(code)
}

func hexDigit(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (s *scanner) variable() {
	if !s.isAlpha(s.peek()) {
		s.reportError(gqlerrors.ErrScanExpectedVariable)
		return
	}

	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	name := string(s.source[s.start+1 : s.current])
	s.addTokenLiteral(token.VARIABLE, name)
}

func (s *scanner) number() {
	if !s.isDigit(s.peek()) && s.source[s.start] == '-' {
		s.reportError(gqlerrors.ErrScanInvalidNumber)
		return
	}

	for s.isDigit(s.peek()) {
		s.advance()
	}

	isFloat := false
	if s.peek() == '.' && s.isDigit(s.peekNext()) {
		isFloat = true
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	if c := s.peek(); c == 'e' || c == 'E' {
		isFloat = true
		s.advance()
		if c := s.peek(); c == '+' || c == '-' {
			s.advance()
		}
		if !s.isDigit(s.peek()) {
			s.reportError(gqlerrors.ErrScanInvalidNumber)
			return
		}
		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := string(s.source[s.start:s.current])
	if isFloat {
		value, err := strconv.ParseFloat(svalue, 64)
		if err != nil {
			s.reportError(gqlerrors.ErrScanInvalidNumber)
			return
		}
		s.addTokenLiteral(token.FLOAT, value)
		return
	}

	value, err := strconv.ParseInt(svalue, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		s.reportError(gqlerrors.ErrScanIntOutOfRange)
		return
	}
	if err != nil {
		s.reportError(gqlerrors.ErrScanInvalidNumber)
		return
	}
	s.addTokenLiteral(token.INT, int32(value))
}

func (s *scanner) reservedOrName() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	name := string(s.source[s.start:s.current])
	if tokenType, ok := reservedKeywords[name]; ok {
		s.addToken(tokenType)
		return
	}
	s.addToken(token.NAME)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.reportErrorDetails(gqlerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportError(err error) {
	s.reportErrorDetails(err, "")
}

func (s *scanner) reportErrorDetails(err error, details string) {
	s.err = gqlerrors.NewScanError(s.startPos, err, details)
}

var _ Scanner = (*scanner)(nil)
