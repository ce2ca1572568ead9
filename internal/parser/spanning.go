package parser

import "github.com/gqlkit/gqlkit/internal/token"

// Spanning pairs a payload with an optional source span. Parsed nodes
// carry the span of the source text they came from; values produced by
// execution rather than parsing carry no span at all.
type Spanning[T any] struct {
	Item T
	Span *token.Span
}

// Located wraps item with the source span it was parsed from.
func Located[T any](item T, span token.Span) Spanning[T] {
	return Spanning[T]{Item: item, Span: &span}
}

// Unlocated wraps item with no source span.
func Unlocated[T any](item T) Spanning[T] {
	return Spanning[T]{Item: item}
}

// Located reports whether the payload carries a source span.
func (s Spanning[T]) Located() bool {
	return s.Span != nil
}
