package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	DOCUMENT

	// Executable definitions
	OPERATION_DEFINITION
	FRAGMENT_DEFINITION
	VARIABLE_DEFINITION
	FIELD
	FRAGMENT_SPREAD
	INLINE_FRAGMENT
	ARGUMENT
	DIRECTIVE

	// Values
	VARIABLE
	INT_VALUE
	FLOAT_VALUE
	STRING_VALUE
	BOOLEAN_VALUE
	NULL_VALUE
	ENUM_VALUE
	LIST_VALUE
	OBJECT_VALUE
	OBJECT_FIELD

	// Type references
	NAMED_TYPE
	LIST_TYPE
	NON_NULL_TYPE

	// Type-system definitions
	SCHEMA_DEFINITION
	ROOT_OPERATION_TYPE_DEFINITION
	SCALAR_TYPE_DEFINITION
	OBJECT_TYPE_DEFINITION
	INTERFACE_TYPE_DEFINITION
	UNION_TYPE_DEFINITION
	ENUM_TYPE_DEFINITION
	INPUT_OBJECT_TYPE_DEFINITION
	DIRECTIVE_DEFINITION
	FIELD_DEFINITION
	INPUT_VALUE_DEFINITION
	ENUM_VALUE_DEFINITION

	// Type-system extensions
	SCHEMA_EXTENSION
	SCALAR_TYPE_EXTENSION
	OBJECT_TYPE_EXTENSION
	INTERFACE_TYPE_EXTENSION
	UNION_TYPE_EXTENSION
	ENUM_TYPE_EXTENSION
	INPUT_OBJECT_TYPE_EXTENSION
)

var nodeTypeNames = [...]string{
	ILLEGAL:                        "Illegal",
	DOCUMENT:                       "Document",
	OPERATION_DEFINITION:           "OperationDefinition",
	FRAGMENT_DEFINITION:            "FragmentDefinition",
	VARIABLE_DEFINITION:            "VariableDefinition",
	FIELD:                          "Field",
	FRAGMENT_SPREAD:                "FragmentSpread",
	INLINE_FRAGMENT:                "InlineFragment",
	ARGUMENT:                       "Argument",
	DIRECTIVE:                      "Directive",
	VARIABLE:                       "Variable",
	INT_VALUE:                      "IntValue",
	FLOAT_VALUE:                    "FloatValue",
	STRING_VALUE:                   "StringValue",
	BOOLEAN_VALUE:                  "BooleanValue",
	NULL_VALUE:                     "NullValue",
	ENUM_VALUE:                     "EnumValue",
	LIST_VALUE:                     "ListValue",
	OBJECT_VALUE:                   "ObjectValue",
	OBJECT_FIELD:                   "ObjectField",
	NAMED_TYPE:                     "NamedType",
	LIST_TYPE:                      "ListType",
	NON_NULL_TYPE:                  "NonNullType",
	SCHEMA_DEFINITION:              "SchemaDefinition",
	ROOT_OPERATION_TYPE_DEFINITION: "RootOperationTypeDefinition",
	SCALAR_TYPE_DEFINITION:         "ScalarTypeDefinition",
	OBJECT_TYPE_DEFINITION:         "ObjectTypeDefinition",
	INTERFACE_TYPE_DEFINITION:      "InterfaceTypeDefinition",
	UNION_TYPE_DEFINITION:          "UnionTypeDefinition",
	ENUM_TYPE_DEFINITION:           "EnumTypeDefinition",
	INPUT_OBJECT_TYPE_DEFINITION:   "InputObjectTypeDefinition",
	DIRECTIVE_DEFINITION:           "DirectiveDefinition",
	FIELD_DEFINITION:               "FieldDefinition",
	INPUT_VALUE_DEFINITION:         "InputValueDefinition",
	ENUM_VALUE_DEFINITION:          "EnumValueDefinition",
	SCHEMA_EXTENSION:               "SchemaExtension",
	SCALAR_TYPE_EXTENSION:          "ScalarTypeExtension",
	OBJECT_TYPE_EXTENSION:          "ObjectTypeExtension",
	INTERFACE_TYPE_EXTENSION:       "InterfaceTypeExtension",
	UNION_TYPE_EXTENSION:           "UnionTypeExtension",
	ENUM_TYPE_EXTENSION:            "EnumTypeExtension",
	INPUT_OBJECT_TYPE_EXTENSION:    "InputObjectTypeExtension",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// OperationType is "" when an operation omits its keyword.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

func LookupOperationType(word string) (OperationType, bool) {
	switch OperationType(word) {
	case Query, Mutation, Subscription:
		return OperationType(word), true
	}
	return "", false
}

type DirectiveLocation string

const (
	// Executable locations
	LocationQuery              DirectiveLocation = "QUERY"
	LocationMutation           DirectiveLocation = "MUTATION"
	LocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocationField              DirectiveLocation = "FIELD"
	LocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type-system locations
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveLocations lists every location in declaration order.
var DirectiveLocations = []DirectiveLocation{
	LocationQuery,
	LocationMutation,
	LocationSubscription,
	LocationField,
	LocationFragmentDefinition,
	LocationFragmentSpread,
	LocationInlineFragment,
	LocationVariableDefinition,
	LocationSchema,
	LocationScalar,
	LocationObject,
	LocationFieldDefinition,
	LocationArgumentDefinition,
	LocationInterface,
	LocationUnion,
	LocationEnum,
	LocationEnumValue,
	LocationInputObject,
	LocationInputFieldDefinition,
}

func LookupDirectiveLocation(word string) (DirectiveLocation, bool) {
	for _, loc := range DirectiveLocations {
		if string(loc) == word {
			return loc, true
		}
	}
	return "", false
}
