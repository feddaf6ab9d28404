package ast

type TypeSystemDefinition interface {
	Definition
	typeSystemDefinitionNode()
}

// TypeDefinition is a TypeSystemDefinition that introduces a named type.
type TypeDefinition interface {
	TypeSystemDefinition
	TypeName() string
}

type TypeSystemExtension interface {
	Definition
	typeSystemExtensionNode()
}

type TypeExtension interface {
	TypeSystemExtension
	TypeName() string
}

type SchemaDefinition struct {
	Description        *StringValue
	Directives         []*Directive
	RootOperationTypes []*RootOperationTypeDefinition
}

type RootOperationTypeDefinition struct {
	Operation OperationType
	Type      string
}

type ScalarTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
}

type ObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []string
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []string
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type UnionTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Types       []string
}

type EnumTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

type DirectiveDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []DirectiveLocation
}

type FieldDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

// InputValueDefinition is used for both argument and input field definitions.
type InputValueDefinition struct {
	Description  *StringValue
	Name         string
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

type EnumValueDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
}

type SchemaExtension struct {
	Directives         []*Directive
	RootOperationTypes []*RootOperationTypeDefinition
}

type ScalarTypeExtension struct {
	Name       string
	Directives []*Directive
}

type ObjectTypeExtension struct {
	Name       string
	Interfaces []string
	Directives []*Directive
	Fields     []*FieldDefinition
}

type InterfaceTypeExtension struct {
	Name       string
	Interfaces []string
	Directives []*Directive
	Fields     []*FieldDefinition
}

type UnionTypeExtension struct {
	Name       string
	Directives []*Directive
	Types      []string
}

type EnumTypeExtension struct {
	Name       string
	Directives []*Directive
	Values     []*EnumValueDefinition
}

type InputObjectTypeExtension struct {
	Name       string
	Directives []*Directive
	Fields     []*InputValueDefinition
}
