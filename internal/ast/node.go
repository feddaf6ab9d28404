package ast

type Node interface {
	NodeType() NodeType
	String() string
}

func (*Document) NodeType() NodeType { return DOCUMENT }

func (*OperationDefinition) NodeType() NodeType { return OPERATION_DEFINITION }
func (*FragmentDefinition) NodeType() NodeType  { return FRAGMENT_DEFINITION }
func (*VariableDefinition) NodeType() NodeType  { return VARIABLE_DEFINITION }
func (*Field) NodeType() NodeType               { return FIELD }
func (*FragmentSpread) NodeType() NodeType      { return FRAGMENT_SPREAD }
func (*InlineFragment) NodeType() NodeType      { return INLINE_FRAGMENT }
func (*Argument) NodeType() NodeType            { return ARGUMENT }
func (*Directive) NodeType() NodeType           { return DIRECTIVE }

func (*Variable) NodeType() NodeType     { return VARIABLE }
func (*IntValue) NodeType() NodeType     { return INT_VALUE }
func (*FloatValue) NodeType() NodeType   { return FLOAT_VALUE }
func (*StringValue) NodeType() NodeType  { return STRING_VALUE }
func (*BooleanValue) NodeType() NodeType { return BOOLEAN_VALUE }
func (*NullValue) NodeType() NodeType    { return NULL_VALUE }
func (*EnumValue) NodeType() NodeType    { return ENUM_VALUE }
func (*ListValue) NodeType() NodeType    { return LIST_VALUE }
func (*ObjectValue) NodeType() NodeType  { return OBJECT_VALUE }
func (*ObjectField) NodeType() NodeType  { return OBJECT_FIELD }

func (*NamedType) NodeType() NodeType   { return NAMED_TYPE }
func (*ListType) NodeType() NodeType    { return LIST_TYPE }
func (*NonNullType) NodeType() NodeType { return NON_NULL_TYPE }

func (*SchemaDefinition) NodeType() NodeType            { return SCHEMA_DEFINITION }
func (*RootOperationTypeDefinition) NodeType() NodeType { return ROOT_OPERATION_TYPE_DEFINITION }
func (*ScalarTypeDefinition) NodeType() NodeType        { return SCALAR_TYPE_DEFINITION }
func (*ObjectTypeDefinition) NodeType() NodeType        { return OBJECT_TYPE_DEFINITION }
func (*InterfaceTypeDefinition) NodeType() NodeType     { return INTERFACE_TYPE_DEFINITION }
func (*UnionTypeDefinition) NodeType() NodeType         { return UNION_TYPE_DEFINITION }
func (*EnumTypeDefinition) NodeType() NodeType          { return ENUM_TYPE_DEFINITION }
func (*InputObjectTypeDefinition) NodeType() NodeType   { return INPUT_OBJECT_TYPE_DEFINITION }
func (*DirectiveDefinition) NodeType() NodeType         { return DIRECTIVE_DEFINITION }
func (*FieldDefinition) NodeType() NodeType             { return FIELD_DEFINITION }
func (*InputValueDefinition) NodeType() NodeType        { return INPUT_VALUE_DEFINITION }
func (*EnumValueDefinition) NodeType() NodeType         { return ENUM_VALUE_DEFINITION }

func (*SchemaExtension) NodeType() NodeType          { return SCHEMA_EXTENSION }
func (*ScalarTypeExtension) NodeType() NodeType      { return SCALAR_TYPE_EXTENSION }
func (*ObjectTypeExtension) NodeType() NodeType      { return OBJECT_TYPE_EXTENSION }
func (*InterfaceTypeExtension) NodeType() NodeType   { return INTERFACE_TYPE_EXTENSION }
func (*UnionTypeExtension) NodeType() NodeType       { return UNION_TYPE_EXTENSION }
func (*EnumTypeExtension) NodeType() NodeType        { return ENUM_TYPE_EXTENSION }
func (*InputObjectTypeExtension) NodeType() NodeType { return INPUT_OBJECT_TYPE_EXTENSION }

// Sum type markers

func (*OperationDefinition) definitionNode() {}
func (*OperationDefinition) executableNode() {}
func (*FragmentDefinition) definitionNode()  {}
func (*FragmentDefinition) executableNode()  {}

func (*Field) selectionNode()          {}
func (*FragmentSpread) selectionNode() {}
func (*InlineFragment) selectionNode() {}

func (*Variable) valueNode()     {}
func (*IntValue) valueNode()     {}
func (*FloatValue) valueNode()   {}
func (*StringValue) valueNode()  {}
func (*BooleanValue) valueNode() {}
func (*NullValue) valueNode()    {}
func (*EnumValue) valueNode()    {}
func (*ListValue) valueNode()    {}
func (*ObjectValue) valueNode()  {}

func (*NamedType) typeNode()     {}
func (*NamedType) nullableNode() {}
func (*ListType) typeNode()      {}
func (*ListType) nullableNode()  {}
func (*NonNullType) typeNode()   {}

func (*SchemaDefinition) definitionNode()                    {}
func (*SchemaDefinition) typeSystemDefinitionNode()          {}
func (*ScalarTypeDefinition) definitionNode()                {}
func (*ScalarTypeDefinition) typeSystemDefinitionNode()      {}
func (*ObjectTypeDefinition) definitionNode()                {}
func (*ObjectTypeDefinition) typeSystemDefinitionNode()      {}
func (*InterfaceTypeDefinition) definitionNode()             {}
func (*InterfaceTypeDefinition) typeSystemDefinitionNode()   {}
func (*UnionTypeDefinition) definitionNode()                 {}
func (*UnionTypeDefinition) typeSystemDefinitionNode()       {}
func (*EnumTypeDefinition) definitionNode()                  {}
func (*EnumTypeDefinition) typeSystemDefinitionNode()        {}
func (*InputObjectTypeDefinition) definitionNode()           {}
func (*InputObjectTypeDefinition) typeSystemDefinitionNode() {}
func (*DirectiveDefinition) definitionNode()                 {}
func (*DirectiveDefinition) typeSystemDefinitionNode()       {}

func (d *ScalarTypeDefinition) TypeName() string      { return d.Name }
func (d *ObjectTypeDefinition) TypeName() string      { return d.Name }
func (d *InterfaceTypeDefinition) TypeName() string   { return d.Name }
func (d *UnionTypeDefinition) TypeName() string       { return d.Name }
func (d *EnumTypeDefinition) TypeName() string        { return d.Name }
func (d *InputObjectTypeDefinition) TypeName() string { return d.Name }

func (*SchemaExtension) definitionNode()                   {}
func (*SchemaExtension) typeSystemExtensionNode()          {}
func (*ScalarTypeExtension) definitionNode()               {}
func (*ScalarTypeExtension) typeSystemExtensionNode()      {}
func (*ObjectTypeExtension) definitionNode()               {}
func (*ObjectTypeExtension) typeSystemExtensionNode()      {}
func (*InterfaceTypeExtension) definitionNode()            {}
func (*InterfaceTypeExtension) typeSystemExtensionNode()   {}
func (*UnionTypeExtension) definitionNode()                {}
func (*UnionTypeExtension) typeSystemExtensionNode()       {}
func (*EnumTypeExtension) definitionNode()                 {}
func (*EnumTypeExtension) typeSystemExtensionNode()        {}
func (*InputObjectTypeExtension) definitionNode()          {}
func (*InputObjectTypeExtension) typeSystemExtensionNode() {}

func (e *ScalarTypeExtension) TypeName() string      { return e.Name }
func (e *ObjectTypeExtension) TypeName() string      { return e.Name }
func (e *InterfaceTypeExtension) TypeName() string   { return e.Name }
func (e *UnionTypeExtension) TypeName() string       { return e.Name }
func (e *EnumTypeExtension) TypeName() string        { return e.Name }
func (e *InputObjectTypeExtension) TypeName() string { return e.Name }
