package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationString(t *testing.T) {
	op := &OperationDefinition{
		Operation: Query,
		Name:      "Hero",
		VariableDefinitions: []*VariableDefinition{
			{Variable: "id", Type: &NonNullType{Element: &NamedType{Name: "ID"}}},
			{Variable: "n", Type: &NamedType{Name: "Int"}, DefaultValue: &IntValue{Raw: "3"}},
		},
		Directives: []*Directive{{Name: "live"}},
		SelectionSet: SelectionSet{
			&Field{
				Alias:     "h",
				Name:      "hero",
				Arguments: []*Argument{{Name: "id", Value: &Variable{Name: "id"}}},
				SelectionSet: SelectionSet{
					&Field{Name: "name"},
					&FragmentSpread{Name: "Details"},
				},
			},
		},
	}

	expected := "query Hero($id: ID!, $n: Int = 3) @live {\n  h: hero(id: $id) {\n    name\n    ...Details\n  }\n}"
	assert.Equal(t, expected, op.String())
}

func TestShorthandOperationString(t *testing.T) {
	op := &OperationDefinition{SelectionSet: SelectionSet{&Field{Name: "a"}}}
	assert.Equal(t, "{\n  a\n}", op.String())

	// An operation with directives needs its keyword back
	op.Directives = []*Directive{{Name: "d"}}
	assert.Equal(t, "query @d {\n  a\n}", op.String())
}

func TestInlineFragmentString(t *testing.T) {
	frag := &InlineFragment{
		TypeCondition: "Droid",
		Directives:    []*Directive{{Name: "include", Arguments: []*Argument{{Name: "if", Value: &BooleanValue{Value: true}}}}},
		SelectionSet:  SelectionSet{&Field{Name: "primaryFunction"}},
	}
	assert.Equal(t, "... on Droid @include(if: true) {\n  primaryFunction\n}", frag.String())

	bare := &InlineFragment{SelectionSet: SelectionSet{&Field{Name: "a"}}}
	assert.Equal(t, "... {\n  a\n}", bare.String())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{&IntValue{Raw: "-0"}, "-0"},
		{&FloatValue{Raw: "1.5e10"}, "1.5e10"},
		{&BooleanValue{Value: false}, "false"},
		{&NullValue{}, "null"},
		{&EnumValue{Value: "RED"}, "RED"},
		{&Variable{Name: "v"}, "$v"},
		{&StringValue{Value: "say \"hi\"\n\tbye\\"}, `"say \"hi\"\n\tbye\\"`},
		{&StringValue{Value: "\x01"}, `"\u0001"`},
		{&ListValue{}, "[]"},
		{&ListValue{Values: []Value{&IntValue{Raw: "1"}, &ListValue{}}}, "[1, []]"},
		{&ObjectValue{}, "{}"},
		{&ObjectValue{Fields: []*ObjectField{{Name: "a", Value: &IntValue{Raw: "1"}}, {Name: "a", Value: &NullValue{}}}}, "{a: 1, a: null}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.value.String())
	}
}

func TestBlockStringPrinting(t *testing.T) {
	s := &StringValue{Value: "Hello\n  world", Block: true}
	assert.Equal(t, "\"\"\"\nHello\n  world\n\"\"\"", s.String())

	escaped := &StringValue{Value: `a """ b`, Block: true}
	assert.Equal(t, "\"\"\"\na \\\"\"\" b\n\"\"\"", escaped.String())

	// Values the block rules would alter fall back to a quoted string
	indented := &StringValue{Value: "  only indented", Block: true}
	assert.Equal(t, `"  only indented"`, indented.String())

	blank := &StringValue{Value: "\nleading blank", Block: true}
	assert.Equal(t, `"\nleading blank"`, blank.String())

	assert.Equal(t, `""`, (&StringValue{Block: true}).String())
}

func TestTypeString(t *testing.T) {
	typ := &NonNullType{Element: &ListType{Element: &NonNullType{Element: &NamedType{Name: "Int"}}}}
	assert.Equal(t, "[Int!]!", typ.String())
	assert.Equal(t, "[[String]]", (&ListType{Element: &ListType{Element: &NamedType{Name: "String"}}}).String())
}

func TestTypeSystemString(t *testing.T) {
	obj := &ObjectTypeDefinition{
		Description: &StringValue{Value: "A person"},
		Name:        "Person",
		Interfaces:  []string{"Node", "Entity"},
		Directives:  []*Directive{{Name: "key", Arguments: []*Argument{{Name: "fields", Value: &StringValue{Value: "id"}}}}},
		Fields: []*FieldDefinition{
			{Name: "id", Type: &NonNullType{Element: &NamedType{Name: "ID"}}},
			{
				Description: &StringValue{Value: "Friends list", Block: true},
				Name:        "friends",
				Arguments: []*InputValueDefinition{
					{Name: "first", Type: &NamedType{Name: "Int"}, DefaultValue: &IntValue{Raw: "10"}},
					{Description: &StringValue{Value: "cursor"}, Name: "after", Type: &NamedType{Name: "String"}},
				},
				Type: &ListType{Element: &NamedType{Name: "Person"}},
			},
		},
	}

	expected := `"A person"
type Person implements Node & Entity @key(fields: "id") {
  id: ID!
  """
  Friends list
  """
  friends(first: Int = 10, "cursor" after: String): [Person]
}`
	assert.Equal(t, expected, obj.String())
}

func TestSchemaAndDirectiveString(t *testing.T) {
	schema := &SchemaDefinition{
		RootOperationTypes: []*RootOperationTypeDefinition{
			{Operation: Query, Type: "Query"},
			{Operation: Mutation, Type: "Mutation"},
		},
	}
	assert.Equal(t, "schema {\n  query: Query\n  mutation: Mutation\n}", schema.String())

	dir := &DirectiveDefinition{
		Name:       "cached",
		Arguments:  []*InputValueDefinition{{Name: "ttl", Type: &NamedType{Name: "Int"}}},
		Repeatable: true,
		Locations:  []DirectiveLocation{LocationField, LocationObject},
	}
	assert.Equal(t, "directive @cached(ttl: Int) repeatable on FIELD | OBJECT", dir.String())
}

func TestExtensionString(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{&SchemaExtension{Directives: []*Directive{{Name: "auth"}}}, "extend schema @auth"},
		{&ScalarTypeExtension{Name: "Date", Directives: []*Directive{{Name: "d"}}}, "extend scalar Date @d"},
		{&UnionTypeExtension{Name: "U", Types: []string{"A", "B"}}, "extend union U = A | B"},
		{&EnumTypeExtension{Name: "E", Values: []*EnumValueDefinition{{Name: "X"}}}, "extend enum E {\n  X\n}"},
		{&InputObjectTypeExtension{Name: "I", Directives: []*Directive{{Name: "oneOf"}}}, "extend input I @oneOf"},
		{&InterfaceTypeExtension{Name: "N", Interfaces: []string{"A"}}, "extend interface N implements A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.node.String())
	}
}

func TestDocumentString(t *testing.T) {
	doc := &Document{Definitions: []Definition{
		&ScalarTypeDefinition{Name: "Date"},
		&FragmentDefinition{Name: "F", TypeCondition: "T", SelectionSet: SelectionSet{&Field{Name: "a"}}},
	}}
	assert.Equal(t, "scalar Date\n\nfragment F on T {\n  a\n}", doc.String())
}

func TestNodeTypes(t *testing.T) {
	assert.Equal(t, "OperationDefinition", (&OperationDefinition{}).NodeType().String())
	assert.Equal(t, "InputObjectTypeExtension", (&InputObjectTypeExtension{}).NodeType().String())
	assert.Equal(t, "NodeType(999)", NodeType(999).String())
	assert.Equal(t, "Person", (&ObjectTypeDefinition{Name: "Person"}).TypeName())

	_, ok := LookupOperationType("fragment")
	assert.False(t, ok)
	loc, ok := LookupDirectiveLocation("ENUM_VALUE")
	assert.True(t, ok)
	assert.Equal(t, LocationEnumValue, loc)
	assert.Len(t, DirectiveLocations, 19)
}
