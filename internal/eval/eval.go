// Package eval coerces parsed input literals into response values.
// It is the value-producing side of the pipeline: values are built
// bottom-up, objects are populated field by field through the mutable
// object view.
package eval

import (
	"github.com/gqlkit/gqlkit/internal/gqlerrors"
	"github.com/gqlkit/gqlkit/internal/parser"
	"github.com/gqlkit/gqlkit/internal/value"
)

type Evaluator interface {
	// Eval coerces a parsed literal into a response value.
	// Variable references and enum names need a schema to resolve
	// and are rejected with an eval error carrying their span.
	Eval(literal parser.Spanning[parser.InputValue]) (value.Value, error)
}

type evaluator struct{}

func NewEvaluator() Evaluator {
	return &evaluator{}
}

// Eval implements Evaluator.
func (e *evaluator) Eval(literal parser.Spanning[parser.InputValue]) (value.Value, error) {
	return e.eval(literal)
}

func (e *evaluator) eval(literal parser.Spanning[parser.InputValue]) (value.Value, error) {
	switch in := literal.Item.(type) {
	case parser.InputInt:
		return value.NewInt(int32(in)), nil
	case parser.InputFloat:
		return value.NewFloat(float64(in)), nil
	case parser.InputString:
		return value.NewString(string(in)), nil
	case parser.InputBoolean:
		return value.NewBoolean(bool(in)), nil
	case parser.InputVariable:
		return nil, gqlerrors.NewEvalError(literal.Span, gqlerrors.ErrEvalUnexpectedVariable)
	case parser.InputEnum:
		return nil, gqlerrors.NewEvalError(literal.Span, gqlerrors.ErrEvalUnexpectedEnum)
	case parser.InputList:
		items := make([]value.Value, 0, len(in))
		for _, item := range in {
			v, err := e.eval(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return value.NewList(items), nil
	case parser.InputObject:
		obj := value.NewObject(map[string]value.Value{})
		fields, _ := value.AsMutableObject(obj)
		for _, f := range in {
			v, err := e.eval(f.Value)
			if err != nil {
				return nil, err
			}
			// Duplicate source keys fold to the later field.
			fields[f.Key.Item] = v
		}
		return obj, nil
	}

	// InputNull, and the nil zero Spanning.
	return value.NewNull(), nil
}

var _ Evaluator = (*evaluator)(nil)
