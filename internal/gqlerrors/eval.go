package gqlerrors

import (
	"errors"
	"fmt"

	"github.com/gqlkit/gqlkit/internal/token"
)

var (
	ErrEvalUnexpectedVariable = errors.New("variables are not allowed in this context.")
	ErrEvalUnexpectedEnum     = errors.New("enum values are not allowed in this context.")
)

func NewEvalError(span *token.Span, cause error) error {
	return &EvalError{span: span, cause: cause}
}

type EvalError struct {
	span  *token.Span
	cause error
}

// Error implements error.
func (e *EvalError) Error() string {
	if e.span == nil {
		return fmt.Sprintf("eval error: %v", e.cause)
	}
	return fmt.Sprintf("[line %d] eval error: %v", e.span.Start.Line, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

var _ error = (*EvalError)(nil)
var _ unwrapInterface = (*EvalError)(nil)
