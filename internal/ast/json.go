package ast

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalCanonical renders doc as the fixture JSON: an array of definitions,
// object keys sorted, two-space indent, absent optional fields omitted.
func MarshalCanonical(doc *Document) ([]byte, error) {
	return json.MarshalIndent(Canonical(doc), "", "  ")
}

// Canonical converts a node into plain maps and slices ready for encoding.
func Canonical(node Node) any {
	switch n := node.(type) {
	case *Document:
		defs := make([]any, 0, len(n.Definitions))
		for _, d := range n.Definitions {
			defs = append(defs, Canonical(d))
		}
		return defs

	case *OperationDefinition:
		m := obj{"type": "executable", "subType": "operation", "selectionSet": selectionSet(n.SelectionSet)}
		m.str("operationType", string(n.Operation))
		m.str("name", n.Name)
		if len(n.VariableDefinitions) > 0 {
			vars := make([]any, 0, len(n.VariableDefinitions))
			for _, v := range n.VariableDefinitions {
				vars = append(vars, Canonical(v))
			}
			m["variableDefinitions"] = vars
		}
		m.directives(n.Directives)
		return m
	case *FragmentDefinition:
		m := obj{
			"type":          "executable",
			"subType":       "fragment",
			"name":          n.Name,
			"typeCondition": n.TypeCondition,
			"selectionSet":  selectionSet(n.SelectionSet),
		}
		m.directives(n.Directives)
		return m
	case *VariableDefinition:
		m := obj{"variable": n.Variable, "type": Canonical(n.Type)}
		if n.DefaultValue != nil {
			m["defaultValue"] = Canonical(n.DefaultValue)
		}
		m.directives(n.Directives)
		return m

	case *Field:
		m := obj{"type": "field", "name": n.Name}
		m.str("alias", n.Alias)
		m.arguments(n.Arguments)
		m.directives(n.Directives)
		if n.SelectionSet != nil {
			m["selectionSet"] = selectionSet(n.SelectionSet)
		}
		return m
	case *FragmentSpread:
		m := obj{"type": "fragmentSpread", "name": n.Name}
		m.directives(n.Directives)
		return m
	case *InlineFragment:
		m := obj{"type": "inlineFragment", "selectionSet": selectionSet(n.SelectionSet)}
		m.str("typeCondition", n.TypeCondition)
		m.directives(n.Directives)
		return m
	case *Argument:
		return obj{"name": n.Name, "value": Canonical(n.Value)}
	case *Directive:
		m := obj{"name": n.Name}
		m.arguments(n.Arguments)
		return m

	case *Variable:
		return obj{"type": "variable", "name": n.Name}
	case *IntValue:
		return obj{"type": "int", "value": json.Number(n.Raw)}
	case *FloatValue:
		return obj{"type": "float", "value": json.Number(n.Raw)}
	case *StringValue:
		m := obj{"type": "string", "value": n.Value}
		if n.Block {
			m["block"] = true
		}
		return m
	case *BooleanValue:
		return obj{"type": "boolean", "value": n.Value}
	case *NullValue:
		return obj{"type": "null"}
	case *EnumValue:
		return obj{"type": "enum", "value": n.Value}
	case *ListValue:
		values := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			values = append(values, Canonical(v))
		}
		return obj{"type": "list", "values": values}
	case *ObjectValue:
		fields := make([]any, 0, len(n.Fields))
		for _, f := range n.Fields {
			fields = append(fields, Canonical(f))
		}
		return obj{"type": "object", "fields": fields}
	case *ObjectField:
		return obj{"name": n.Name, "value": Canonical(n.Value)}

	case *NamedType:
		return obj{"type": "named", "name": n.Name}
	case *ListType:
		return obj{"type": "list", "element": Canonical(n.Element)}
	case *NonNullType:
		return obj{"type": "nonNull", "element": Canonical(n.Element)}

	case *SchemaDefinition:
		m := definition("schema", n.Description)
		m.directives(n.Directives)
		m["rootOperationTypeDefinitions"] = rootOperations(n.RootOperationTypes)
		return m
	case *RootOperationTypeDefinition:
		return obj{"operationType": string(n.Operation), "type": n.Type}
	case *ScalarTypeDefinition:
		m := typeDefinition("scalar", n.Description, n.Name)
		m.directives(n.Directives)
		return m
	case *ObjectTypeDefinition:
		m := typeDefinition("object", n.Description, n.Name)
		m.names("implementsInterfaces", n.Interfaces)
		m.directives(n.Directives)
		m.fields(n.Fields)
		return m
	case *InterfaceTypeDefinition:
		m := typeDefinition("interface", n.Description, n.Name)
		m.names("implementsInterfaces", n.Interfaces)
		m.directives(n.Directives)
		m.fields(n.Fields)
		return m
	case *UnionTypeDefinition:
		m := typeDefinition("union", n.Description, n.Name)
		m.directives(n.Directives)
		m.names("unionMemberTypes", n.Types)
		return m
	case *EnumTypeDefinition:
		m := typeDefinition("enum", n.Description, n.Name)
		m.directives(n.Directives)
		m.enumValues(n.Values)
		return m
	case *InputObjectTypeDefinition:
		m := typeDefinition("inputObject", n.Description, n.Name)
		m.directives(n.Directives)
		m.inputValues("inputFieldsDefinition", n.Fields)
		return m
	case *DirectiveDefinition:
		m := definition("directive", n.Description)
		m["name"] = n.Name
		m.inputValues("argumentsDefinition", n.Arguments)
		m["repeatable"] = n.Repeatable
		locs := make([]any, 0, len(n.Locations))
		for _, loc := range n.Locations {
			locs = append(locs, string(loc))
		}
		m["directiveLocations"] = locs
		return m
	case *FieldDefinition:
		m := obj{"name": n.Name, "type": Canonical(n.Type)}
		m.description(n.Description)
		m.inputValues("argumentsDefinition", n.Arguments)
		m.directives(n.Directives)
		return m
	case *InputValueDefinition:
		m := obj{"name": n.Name, "type": Canonical(n.Type)}
		m.description(n.Description)
		if n.DefaultValue != nil {
			m["defaultValue"] = Canonical(n.DefaultValue)
		}
		m.directives(n.Directives)
		return m
	case *EnumValueDefinition:
		m := obj{"enumValue": n.Name}
		m.description(n.Description)
		m.directives(n.Directives)
		return m

	case *SchemaExtension:
		m := obj{"type": "typeSystem", "subType": "extension", "extensionType": "schema"}
		m.directives(n.Directives)
		if len(n.RootOperationTypes) > 0 {
			m["rootOperationTypeDefinitions"] = rootOperations(n.RootOperationTypes)
		}
		return m
	case *ScalarTypeExtension:
		m := typeExtension("scalar", n.Name)
		m.directives(n.Directives)
		return m
	case *ObjectTypeExtension:
		m := typeExtension("object", n.Name)
		m.names("implementsInterfaces", n.Interfaces)
		m.directives(n.Directives)
		m.fields(n.Fields)
		return m
	case *InterfaceTypeExtension:
		m := typeExtension("interface", n.Name)
		m.names("implementsInterfaces", n.Interfaces)
		m.directives(n.Directives)
		m.fields(n.Fields)
		return m
	case *UnionTypeExtension:
		m := typeExtension("union", n.Name)
		m.directives(n.Directives)
		m.names("unionMemberTypes", n.Types)
		return m
	case *EnumTypeExtension:
		m := typeExtension("enum", n.Name)
		m.directives(n.Directives)
		m.enumValues(n.Values)
		return m
	case *InputObjectTypeExtension:
		m := typeExtension("inputObject", n.Name)
		m.directives(n.Directives)
		m.inputValues("inputFieldsDefinition", n.Fields)
		return m
	}
	panic(fmt.Sprintf("ast: unexpected node %T", node))
}

type obj map[string]any

func (m obj) str(key, value string) {
	if value != "" {
		m[key] = value
	}
}

func (m obj) description(desc *StringValue) {
	if desc != nil {
		m["description"] = desc.Value
	}
}

func (m obj) names(key string, names []string) {
	if len(names) == 0 {
		return
	}
	list := make([]any, 0, len(names))
	for _, n := range names {
		list = append(list, n)
	}
	m[key] = list
}

func (m obj) directives(directives []*Directive) {
	if len(directives) == 0 {
		return
	}
	list := make([]any, 0, len(directives))
	for _, d := range directives {
		list = append(list, Canonical(d))
	}
	m["directives"] = list
}

func (m obj) arguments(args []*Argument) {
	if len(args) == 0 {
		return
	}
	list := make([]any, 0, len(args))
	for _, a := range args {
		list = append(list, Canonical(a))
	}
	m["arguments"] = list
}

func (m obj) fields(fields []*FieldDefinition) {
	if len(fields) == 0 {
		return
	}
	list := make([]any, 0, len(fields))
	for _, f := range fields {
		list = append(list, Canonical(f))
	}
	m["fieldsDefinition"] = list
}

func (m obj) inputValues(key string, values []*InputValueDefinition) {
	if len(values) == 0 {
		return
	}
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, Canonical(v))
	}
	m[key] = list
}

func (m obj) enumValues(values []*EnumValueDefinition) {
	if len(values) == 0 {
		return
	}
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, Canonical(v))
	}
	m["enumValuesDefinition"] = list
}

func definition(kind string, desc *StringValue) obj {
	m := obj{"type": "typeSystem", "subType": "definition", "definitionType": kind}
	m.description(desc)
	return m
}

func typeDefinition(kind string, desc *StringValue, name string) obj {
	m := definition("type", desc)
	m["typeType"] = kind
	m["name"] = name
	return m
}

func typeExtension(kind, name string) obj {
	return obj{"type": "typeSystem", "subType": "extension", "extensionType": "type", "typeType": kind, "name": name}
}

func selectionSet(set SelectionSet) []any {
	list := make([]any, 0, len(set))
	for _, sel := range set {
		list = append(list, Canonical(sel))
	}
	return list
}

func rootOperations(ops []*RootOperationTypeDefinition) []any {
	list := make([]any, 0, len(ops))
	for _, op := range ops {
		list = append(list, Canonical(op))
	}
	return list
}
