package value

import (
	"github.com/gqlkit/gqlkit/internal/parser"
)

// ToInput re-expresses a response value as an input literal, for
// example when echoing a computed default. The mapping is total and
// structure preserving: scalars copy their payloads exactly (including
// NaN and infinity bit patterns), list elements keep their order, and
// object entries follow the map's iteration order, which is
// unspecified. Every nested element, object key and object value is
// wrapped Unlocated, since no source span exists for computed values.
func ToInput(v Value) parser.InputValue {
	switch v := v.(type) {
	case Int:
		return parser.InputInt(v)
	case Float:
		return parser.InputFloat(v)
	case String:
		return parser.InputString(v)
	case Boolean:
		return parser.InputBoolean(v)
	case List:
		items := make(parser.InputList, 0, len(v))
		for _, item := range v {
			items = append(items, parser.Unlocated(ToInput(item)))
		}
		return items
	case Object:
		fields := make(parser.InputObject, 0, len(v))
		for k, item := range v {
			fields = append(fields, parser.InputField{
				Key:   parser.Unlocated(k),
				Value: parser.Unlocated(ToInput(item)),
			})
		}
		return fields
	}

	// Null, and the nil interface.
	return parser.InputNull{}
}
