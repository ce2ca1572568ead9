// Package value holds the serializable value tree produced by query
// and field execution. It mirrors the literal-input type in
// internal/parser, but can not contain enum names or variable
// references, and carries no source locations: these values come from
// resolving fields, not from parsing a source query.
package value

type ValueType uint

const (
	NullType ValueType = iota
	IntType
	FloatType
	StringType
	BooleanType
	ListType
	ObjectType
)

// Value is a response value. The variant set is closed: consumers
// type-switch over the concrete types below and handle every case.
type Value interface {
	Type() ValueType
}

type (
	Null    struct{}
	Int     int32
	Float   float64
	String  string
	Boolean bool
	List    []Value
	Object  map[string]Value
)

// Text is any string-like constructor input.
type Text interface {
	~string | ~[]byte
}

// Field is an ordered object entry, for construction sites where the
// field sequence matters (for example duplicate keys).
type Field struct {
	Key   string
	Value Value
}

// CONSTRUCTORS
//
// All constructors are total: no validation of ranges, encodings or
// sizes, construction cannot fail.

// NewNull constructs a null value.
func NewNull() Value {
	return Null{}
}

// NewInt constructs an integer value.
func NewInt(i int32) Value {
	return Int(i)
}

// NewFloat constructs a floating point value.
func NewFloat(f float64) Value {
	return Float(f)
}

// NewString constructs a string value, copying the contents.
func NewString[S Text](s S) Value {
	return String(s)
}

// NewBoolean constructs a boolean value.
func NewBoolean(b bool) Value {
	return Boolean(b)
}

// NewList constructs a list value, taking ownership of the slice and
// its elements.
func NewList(l []Value) Value {
	return List(l)
}

// NewObject constructs an object value by folding the entries into a
// fresh map. Keys are converted to plain strings.
func NewObject[K ~string](o map[K]Value) Value {
	object := make(Object, len(o))
	for k, v := range o {
		object[string(k)] = v
	}
	return object
}

// NewObjectFromFields constructs an object value from an ordered field
// sequence. When two fields share a key, the later field wins.
func NewObjectFromFields(fields []Field) Value {
	object := make(Object, len(fields))
	for _, f := range fields {
		object[f.Key] = f.Value
	}
	return object
}

// DISCRIMINATORS

// IsNull reports whether v is the null value.
func IsNull(v Value) bool {
	switch v.(type) {
	case Null, nil:
		return true
	}
	return false
}

// AsObject is a read-only view of the underlying object value, if present.
func AsObject(v Value) (Object, bool) {
	if o, ok := v.(Object); ok {
		return o, true
	}
	return nil, false
}

// AsMutableObject is a mutable view into the underlying object value,
// if present. Inserting, updating or removing entries through the view
// is the only sanctioned in-place mutation of a constructed value.
func AsMutableObject(v Value) (Object, bool) {
	if o, ok := v.(Object); ok {
		return o, true
	}
	return nil, false
}

// AsList is a read-only view of the underlying list value, if present.
func AsList(v Value) (List, bool) {
	if l, ok := v.(List); ok {
		return l, true
	}
	return nil, false
}

// AsString is a read-only view of the underlying string value, if present.
func AsString(v Value) (string, bool) {
	if s, ok := v.(String); ok {
		return string(s), true
	}
	return "", false
}

// Type implements Value.
func (v Null) Type() ValueType {
	return NullType
}

// Type implements Value.
func (v Int) Type() ValueType {
	return IntType
}

// Type implements Value.
func (v Float) Type() ValueType {
	return FloatType
}

// Type implements Value.
func (v String) Type() ValueType {
	return StringType
}

// Type implements Value.
func (v Boolean) Type() ValueType {
	return BooleanType
}

// Type implements Value.
func (v List) Type() ValueType {
	return ListType
}

// Type implements Value.
func (v Object) Type() ValueType {
	return ObjectType
}

var (
	_ Value = (*Null)(nil)
	_ Value = Int(0)
	_ Value = Float(0)
	_ Value = String("")
	_ Value = Boolean(false)
	_ Value = List(nil)
	_ Value = Object(nil)
)
