package gqlerrors

import (
	"errors"
	"fmt"

	"github.com/gqlkit/gqlkit/internal/token"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
	ErrScanInvalidEscape       = errors.New("Invalid escape sequence.")
	ErrScanExpectedVariable    = errors.New("Expected variable name after '$'.")
	ErrScanInvalidNumber       = errors.New("Invalid number.")
	ErrScanIntOutOfRange       = errors.New("Integer out of 32-bit range.")
)

type ScannerError struct {
	pos     token.Position
	cause   error
	details string
}

func NewScanError(pos token.Position, cause error, details string) error {
	return &ScannerError{pos: pos, cause: cause, details: details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] Error: %v%s", s.pos.Line, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
