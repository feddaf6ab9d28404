package ast

import (
	"fmt"
	"strings"
)

func (d *Document) String() string {
	parts := make([]string, 0, len(d.Definitions))
	for _, def := range d.Definitions {
		parts = append(parts, def.String())
	}
	return strings.Join(parts, "\n\n")
}

func (o *OperationDefinition) String() string {
	if o.Operation == "" && o.Name == "" && len(o.VariableDefinitions) == 0 && len(o.Directives) == 0 {
		return o.SelectionSet.String()
	}

	var b strings.Builder
	op := o.Operation
	if op == "" {
		op = Query
	}
	b.WriteString(string(op))
	if o.Name != "" {
		b.WriteString(" " + o.Name)
	}
	if len(o.VariableDefinitions) > 0 {
		vars := make([]string, 0, len(o.VariableDefinitions))
		for _, v := range o.VariableDefinitions {
			vars = append(vars, v.String())
		}
		b.WriteString("(" + strings.Join(vars, ", ") + ")")
	}
	b.WriteString(directivesString(o.Directives))
	b.WriteString(" " + o.SelectionSet.String())
	return b.String()
}

func (f *FragmentDefinition) String() string {
	return fmt.Sprintf("fragment %s on %s%s %s",
		f.Name, f.TypeCondition, directivesString(f.Directives), f.SelectionSet.String())
}

func (v *VariableDefinition) String() string {
	s := fmt.Sprintf("$%s: %s", v.Variable, v.Type.String())
	if v.DefaultValue != nil {
		s += " = " + v.DefaultValue.String()
	}
	return s + directivesString(v.Directives)
}

func (s SelectionSet) String() string {
	items := make([]string, 0, len(s))
	for _, sel := range s {
		items = append(items, sel.String())
	}
	return block(items)
}

func (f *Field) String() string {
	var b strings.Builder
	if f.Alias != "" {
		b.WriteString(f.Alias + ": ")
	}
	b.WriteString(f.Name)
	b.WriteString(argumentsString(f.Arguments))
	b.WriteString(directivesString(f.Directives))
	if len(f.SelectionSet) > 0 {
		b.WriteString(" " + f.SelectionSet.String())
	}
	return b.String()
}

func (fs *FragmentSpread) String() string {
	return "..." + fs.Name + directivesString(fs.Directives)
}

func (i *InlineFragment) String() string {
	s := "..."
	if i.TypeCondition != "" {
		s += " on " + i.TypeCondition
	}
	return s + directivesString(i.Directives) + " " + i.SelectionSet.String()
}

func (a *Argument) String() string {
	return a.Name + ": " + a.Value.String()
}

func (d *Directive) String() string {
	return "@" + d.Name + argumentsString(d.Arguments)
}

func (v *Variable) String() string     { return "$" + v.Name }
func (v *IntValue) String() string     { return v.Raw }
func (v *FloatValue) String() string   { return v.Raw }
func (v *EnumValue) String() string    { return v.Value }
func (*NullValue) String() string      { return "null" }
func (v *BooleanValue) String() string { return fmt.Sprintf("%t", v.Value) }

func (v *StringValue) String() string {
	if v.Block && printableAsBlock(v.Value) {
		return `"""` + "\n" + strings.ReplaceAll(v.Value, `"""`, `\"""`) + "\n" + `"""`
	}
	return quote(v.Value)
}

func (v *ListValue) String() string {
	items := make([]string, 0, len(v.Values))
	for _, item := range v.Values {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (v *ObjectValue) String() string {
	items := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		items = append(items, f.String())
	}
	return "{" + strings.Join(items, ", ") + "}"
}

func (f *ObjectField) String() string {
	return f.Name + ": " + f.Value.String()
}

func (t *NamedType) String() string   { return t.Name }
func (t *ListType) String() string    { return "[" + t.Element.String() + "]" }
func (t *NonNullType) String() string { return t.Element.String() + "!" }

func (s *SchemaDefinition) String() string {
	return descriptionString(s.Description) + "schema" + directivesString(s.Directives) + " " + rootOperationsString(s.RootOperationTypes)
}

func (r *RootOperationTypeDefinition) String() string {
	return string(r.Operation) + ": " + r.Type
}

func (s *ScalarTypeDefinition) String() string {
	return descriptionString(s.Description) + "scalar " + s.Name + directivesString(s.Directives)
}

func (o *ObjectTypeDefinition) String() string {
	return descriptionString(o.Description) + "type " + o.Name +
		implementsString(o.Interfaces) + directivesString(o.Directives) + fieldsString(o.Fields)
}

func (i *InterfaceTypeDefinition) String() string {
	return descriptionString(i.Description) + "interface " + i.Name +
		implementsString(i.Interfaces) + directivesString(i.Directives) + fieldsString(i.Fields)
}

func (u *UnionTypeDefinition) String() string {
	return descriptionString(u.Description) + "union " + u.Name + directivesString(u.Directives) + membersString(u.Types)
}

func (e *EnumTypeDefinition) String() string {
	return descriptionString(e.Description) + "enum " + e.Name + directivesString(e.Directives) + enumValuesString(e.Values)
}

func (i *InputObjectTypeDefinition) String() string {
	return descriptionString(i.Description) + "input " + i.Name + directivesString(i.Directives) + inputFieldsString(i.Fields)
}

func (d *DirectiveDefinition) String() string {
	var b strings.Builder
	b.WriteString(descriptionString(d.Description))
	b.WriteString("directive @" + d.Name)
	b.WriteString(argumentDefinitionsString(d.Arguments))
	if d.Repeatable {
		b.WriteString(" repeatable")
	}
	locs := make([]string, 0, len(d.Locations))
	for _, loc := range d.Locations {
		locs = append(locs, string(loc))
	}
	b.WriteString(" on " + strings.Join(locs, " | "))
	return b.String()
}

func (f *FieldDefinition) String() string {
	return descriptionString(f.Description) + f.Name + argumentDefinitionsString(f.Arguments) +
		": " + f.Type.String() + directivesString(f.Directives)
}

func (iv *InputValueDefinition) String() string {
	s := iv.Name + ": " + iv.Type.String()
	if iv.Description != nil {
		s = iv.Description.String() + " " + s
	}
	if iv.DefaultValue != nil {
		s += " = " + iv.DefaultValue.String()
	}
	return s + directivesString(iv.Directives)
}

func (e *EnumValueDefinition) String() string {
	return descriptionString(e.Description) + e.Name + directivesString(e.Directives)
}

func (s *SchemaExtension) String() string {
	out := "extend schema" + directivesString(s.Directives)
	if len(s.RootOperationTypes) > 0 {
		out += " " + rootOperationsString(s.RootOperationTypes)
	}
	return out
}

func (s *ScalarTypeExtension) String() string {
	return "extend scalar " + s.Name + directivesString(s.Directives)
}

func (o *ObjectTypeExtension) String() string {
	return "extend type " + o.Name + implementsString(o.Interfaces) + directivesString(o.Directives) + fieldsString(o.Fields)
}

func (i *InterfaceTypeExtension) String() string {
	return "extend interface " + i.Name + implementsString(i.Interfaces) + directivesString(i.Directives) + fieldsString(i.Fields)
}

func (u *UnionTypeExtension) String() string {
	return "extend union " + u.Name + directivesString(u.Directives) + membersString(u.Types)
}

func (e *EnumTypeExtension) String() string {
	return "extend enum " + e.Name + directivesString(e.Directives) + enumValuesString(e.Values)
}

func (i *InputObjectTypeExtension) String() string {
	return "extend input " + i.Name + directivesString(i.Directives) + inputFieldsString(i.Fields)
}

// ----- helpers -----

func block(items []string) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, item := range items {
		b.WriteString("  " + strings.ReplaceAll(item, "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func directivesString(directives []*Directive) string {
	var b strings.Builder
	for _, d := range directives {
		b.WriteString(" " + d.String())
	}
	return b.String()
}

func argumentsString(args []*Argument) string {
	if len(args) == 0 {
		return ""
	}
	items := make([]string, 0, len(args))
	for _, a := range args {
		items = append(items, a.String())
	}
	return "(" + strings.Join(items, ", ") + ")"
}

func argumentDefinitionsString(args []*InputValueDefinition) string {
	if len(args) == 0 {
		return ""
	}
	items := make([]string, 0, len(args))
	for _, a := range args {
		items = append(items, a.String())
	}
	return "(" + strings.Join(items, ", ") + ")"
}

func descriptionString(desc *StringValue) string {
	if desc == nil {
		return ""
	}
	return desc.String() + "\n"
}

func implementsString(interfaces []string) string {
	if len(interfaces) == 0 {
		return ""
	}
	return " implements " + strings.Join(interfaces, " & ")
}

func membersString(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return " = " + strings.Join(types, " | ")
}

func rootOperationsString(ops []*RootOperationTypeDefinition) string {
	items := make([]string, 0, len(ops))
	for _, op := range ops {
		items = append(items, op.String())
	}
	return block(items)
}

func fieldsString(fields []*FieldDefinition) string {
	if len(fields) == 0 {
		return ""
	}
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		items = append(items, f.String())
	}
	return " " + block(items)
}

func inputFieldsString(fields []*InputValueDefinition) string {
	if len(fields) == 0 {
		return ""
	}
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		items = append(items, f.String())
	}
	return " " + block(items)
}

func enumValuesString(values []*EnumValueDefinition) string {
	if len(values) == 0 {
		return ""
	}
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, v.String())
	}
	return " " + block(items)
}

// printableAsBlock reports whether value survives a trip through the
// block-string indentation rules when printed between """ lines.
func printableAsBlock(value string) bool {
	if value == "" || strings.ContainsRune(value, '\r') {
		return false
	}
	lines := strings.Split(value, "\n")
	if strings.TrimSpace(lines[0]) == "" || strings.TrimSpace(lines[len(lines)-1]) == "" {
		return false
	}
	for _, line := range lines {
		if line != "" && line[0] != ' ' && line[0] != '\t' {
			return true
		}
	}
	return false
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
