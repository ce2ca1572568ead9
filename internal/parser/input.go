package parser

type InputType uint

const (
	InputNullType InputType = iota
	InputIntType
	InputFloatType
	InputStringType
	InputBooleanType
	InputEnumType
	InputVariableType
	InputListType
	InputObjectType
)

// InputValue is a literal value as written in query source: scalars,
// enum names, variable references, and located lists and objects.
type InputValue interface {
	Type() InputType
}

type (
	InputNull     struct{}
	InputInt      int32
	InputFloat    float64
	InputString   string
	InputBoolean  bool
	InputEnum     string
	InputVariable string
	InputList     []Spanning[InputValue]
	InputObject   []InputField
)

// InputField is a single object entry. The entry sequence preserves
// source order and may carry duplicate keys verbatim.
type InputField struct {
	Key   Spanning[string]
	Value Spanning[InputValue]
}

// Type implements InputValue.
func (v InputNull) Type() InputType {
	return InputNullType
}

// Type implements InputValue.
func (v InputInt) Type() InputType {
	return InputIntType
}

// Type implements InputValue.
func (v InputFloat) Type() InputType {
	return InputFloatType
}

// Type implements InputValue.
func (v InputString) Type() InputType {
	return InputStringType
}

// Type implements InputValue.
func (v InputBoolean) Type() InputType {
	return InputBooleanType
}

// Type implements InputValue.
func (v InputEnum) Type() InputType {
	return InputEnumType
}

// Type implements InputValue.
func (v InputVariable) Type() InputType {
	return InputVariableType
}

// Type implements InputValue.
func (v InputList) Type() InputType {
	return InputListType
}

// Type implements InputValue.
func (v InputObject) Type() InputType {
	return InputObjectType
}

var (
	_ InputValue = (*InputNull)(nil)
	_ InputValue = InputInt(0)
	_ InputValue = InputFloat(0)
	_ InputValue = InputString("")
	_ InputValue = InputBoolean(false)
	_ InputValue = InputEnum("")
	_ InputValue = InputVariable("")
	_ InputValue = InputList(nil)
	_ InputValue = InputObject(nil)
)
