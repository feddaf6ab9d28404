package ast

// Value is one of *Variable, *IntValue, *FloatValue, *StringValue,
// *BooleanValue, *NullValue, *EnumValue, *ListValue or *ObjectValue.
type Value interface {
	Node
	valueNode()
}

type Variable struct {
	Name string
}

// IntValue keeps the literal text so no precision is lost.
type IntValue struct {
	Raw string
}

type FloatValue struct {
	Raw string
}

type StringValue struct {
	Value string
	Block bool
}

type BooleanValue struct {
	Value bool
}

type NullValue struct{}

type EnumValue struct {
	Value string
}

type ListValue struct {
	Values []Value
}

// ObjectValue keeps fields in source order; duplicates are left to validation.
type ObjectValue struct {
	Fields []*ObjectField
}

type ObjectField struct {
	Name  string
	Value Value
}

// Type is one of *NamedType, *ListType or *NonNullType.
type Type interface {
	Node
	typeNode()
}

// NullableType is the element of a NonNullType. Only *NamedType and
// *ListType implement it, so T!! cannot be represented.
type NullableType interface {
	Type
	nullableNode()
}

type NamedType struct {
	Name string
}

type ListType struct {
	Element Type
}

type NonNullType struct {
	Element NullableType
}
