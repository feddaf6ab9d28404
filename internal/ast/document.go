package ast

// Document is the root of a parsed source.
type Document struct {
	Definitions []Definition
}

// Definition is one of ExecutableDefinition, TypeSystemDefinition or
// TypeSystemExtension.
type Definition interface {
	Node
	definitionNode()
}

type ExecutableDefinition interface {
	Definition
	executableNode()
}

type OperationDefinition struct {
	Operation           OperationType // "" for the { ... } shorthand
	Name                string        // "" when anonymous
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        SelectionSet
}

type FragmentDefinition struct {
	Name          string
	TypeCondition string
	Directives    []*Directive
	SelectionSet  SelectionSet
}

type VariableDefinition struct {
	Variable     string
	Type         Type
	DefaultValue Value // nil when absent
	Directives   []*Directive
}

type SelectionSet []Selection

// Selection is *Field, *FragmentSpread or *InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

type Field struct {
	Alias        string // "" when absent
	Name         string
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet SelectionSet // nil for leaf fields
}

// ResponseKey is the alias when present, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

type FragmentSpread struct {
	Name       string
	Directives []*Directive
}

type InlineFragment struct {
	TypeCondition string // "" when absent
	Directives    []*Directive
	SelectionSet  SelectionSet
}

type Argument struct {
	Name  string
	Value Value
}

type Directive struct {
	Name      string
	Arguments []*Argument
}
