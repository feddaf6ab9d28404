package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// TypeSystemDefinitionOrExtension : TypeSystemDefinition | TypeSystemExtension
func (p *parser) parseTypeSystemDefinitionOrExtension() (ast.Definition, error) {
	return oneOf(p, "TypeSystemDefinitionOrExtension",
		p.parseTypeSystemDefinition,
		p.parseTypeSystemExtension,
	)
}

// TypeSystemDefinition : SchemaDefinition | TypeDefinition | DirectiveDefinition
//
// Every alternative starts with an optional description followed by its
// keyword, and fails without committing when the keyword is absent.
func (p *parser) parseTypeSystemDefinition() (ast.Definition, error) {
	return oneOf(p, "TypeSystemDefinition",
		p.parseSchemaDefinition,
		p.parseScalarTypeDefinition,
		p.parseObjectTypeDefinition,
		p.parseInterfaceTypeDefinition,
		p.parseUnionTypeDefinition,
		p.parseEnumTypeDefinition,
		p.parseInputObjectTypeDefinition,
		p.parseDirectiveDefinition,
	)
}

// describedKeyword consumes an optional description and the keyword that
// follows it. The description is only kept when the keyword matches.
func (p *parser) describedKeyword(keyword string) (*ast.StringValue, error) {
	desc, _ := p.parseOptionalString()
	if !p.checkKeyword(keyword) {
		return nil, p.noMatch("Expected %s", keyword)
	}
	p.advance()
	return desc, nil
}

// SchemaDefinition : Description? schema Directives? { RootOperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("schema")
	if err != nil {
		return nil, err
	}
	def := &ast.SchemaDefinition{Description: desc}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if !p.check(token.BRACE_L) {
		return nil, p.errorf(errors.ErrorExpectedToken, "Expected {")
	}
	if def.RootOperationTypes, err = p.parseOptionalRootOperationTypes(); err != nil {
		return nil, err
	}
	return def, nil
}

func (p *parser) parseOptionalRootOperationTypes() ([]*ast.RootOperationTypeDefinition, error) {
	if !p.match(token.BRACE_L) {
		return nil, nil
	}
	var defs []*ast.RootOperationTypeDefinition
	for {
		def, err := p.parseRootOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if p.match(token.BRACE_R) {
			return defs, nil
		}
	}
}

// RootOperationTypeDefinition : OperationType : NamedType
func (p *parser) parseRootOperationTypeDefinition() (*ast.RootOperationTypeDefinition, error) {
	tok := p.peek()
	if tok == nil || tok.Kind != token.NAME {
		return nil, p.errorf(errors.ErrorExpectedToken, "Expected OperationType")
	}
	op, ok := ast.LookupOperationType(tok.Value)
	if !ok {
		return nil, p.errorf(errors.ErrorExpectedToken, "Expected OperationType")
	}
	p.advance()
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return &ast.RootOperationTypeDefinition{Operation: op, Type: name}, nil
}

// ScalarTypeDefinition : Description? scalar Name Directives?
func (p *parser) parseScalarTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("scalar")
	if err != nil {
		return nil, err
	}
	def := &ast.ScalarTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	return def, nil
}

// ObjectTypeDefinition : Description? type Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("type")
	if err != nil {
		return nil, err
	}
	def := &ast.ObjectTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Interfaces, err = p.parseOptionalImplementsInterfaces(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseOptionalFieldsDefinition(); err != nil {
		return nil, err
	}
	return def, nil
}

// InterfaceTypeDefinition : Description? interface Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("interface")
	if err != nil {
		return nil, err
	}
	def := &ast.InterfaceTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Interfaces, err = p.parseOptionalImplementsInterfaces(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseOptionalFieldsDefinition(); err != nil {
		return nil, err
	}
	return def, nil
}

// UnionTypeDefinition : Description? union Name Directives? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("union")
	if err != nil {
		return nil, err
	}
	def := &ast.UnionTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.Types, err = p.parseOptionalUnionMemberTypes(); err != nil {
		return nil, err
	}
	return def, nil
}

// EnumTypeDefinition : Description? enum Name Directives? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("enum")
	if err != nil {
		return nil, err
	}
	def := &ast.EnumTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.Values, err = p.parseOptionalEnumValuesDefinition(); err != nil {
		return nil, err
	}
	return def, nil
}

// InputObjectTypeDefinition : Description? input Name Directives? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("input")
	if err != nil {
		return nil, err
	}
	def := &ast.InputObjectTypeDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.Fields, err = p.parseOptionalInputValues(token.BRACE_L, token.BRACE_R); err != nil {
		return nil, err
	}
	return def, nil
}

// DirectiveDefinition : Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *parser) parseDirectiveDefinition() (ast.Definition, error) {
	desc, err := p.describedKeyword("directive")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	def := &ast.DirectiveDefinition{Description: desc}
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Arguments, err = p.parseOptionalInputValues(token.PAREN_L, token.PAREN_R); err != nil {
		return nil, err
	}
	if p.checkKeyword("repeatable") {
		p.advance()
		def.Repeatable = true
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if def.Locations, err = p.parseDirectiveLocations(); err != nil {
		return nil, err
	}
	return def, nil
}

// DirectiveLocations : |? DirectiveLocation (| DirectiveLocation)*
func (p *parser) parseDirectiveLocations() ([]ast.DirectiveLocation, error) {
	p.match(token.PIPE)
	var locs []ast.DirectiveLocation
	for {
		tok := p.peek()
		if tok == nil || tok.Kind != token.NAME {
			return nil, p.errorf(errors.ErrorExpectedToken, msgExpectedDirectiveLocation)
		}
		loc, ok := ast.LookupDirectiveLocation(tok.Value)
		if !ok {
			return nil, p.errorf(errors.ErrorExpectedToken, msgExpectedDirectiveLocation)
		}
		p.advance()
		locs = append(locs, loc)
		if !p.match(token.PIPE) {
			return locs, nil
		}
	}
}

// ImplementsInterfaces : implements &? NamedType (& NamedType)*
func (p *parser) parseOptionalImplementsInterfaces() ([]string, error) {
	if !p.checkKeyword("implements") {
		return nil, nil
	}
	p.advance()
	return p.separatedNames(token.AMP)
}

// UnionMemberTypes : = |? NamedType (| NamedType)*
func (p *parser) parseOptionalUnionMemberTypes() ([]string, error) {
	if !p.match(token.EQUALS) {
		return nil, nil
	}
	return p.separatedNames(token.PIPE)
}

// FieldsDefinition : { FieldDefinition+ }
func (p *parser) parseOptionalFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.match(token.BRACE_L) {
		return nil, nil
	}
	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.match(token.BRACE_R) {
			return fields, nil
		}
	}
}

// FieldDefinition : Description? Name ArgumentsDefinition? : Type Directives?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	desc, _ := p.parseOptionalString()
	field := &ast.FieldDefinition{Description: desc}

	var err error
	if field.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if field.Arguments, err = p.parseOptionalInputValues(token.PAREN_L, token.PAREN_R); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if field.Type, err = p.parseType(); err != nil {
		return nil, commit(err, "")
	}
	if field.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	return field, nil
}

// parseOptionalInputValues parses ArgumentsDefinition when delimited by
// parentheses and InputFieldsDefinition when delimited by braces.
func (p *parser) parseOptionalInputValues(opening, closing token.Kind) ([]*ast.InputValueDefinition, error) {
	if !p.match(opening) {
		return nil, nil
	}
	var values []*ast.InputValueDefinition
	for {
		v, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.match(closing) {
			return values, nil
		}
	}
}

// InputValueDefinition : Description? Name : Type DefaultValue? Directives?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	desc, _ := p.parseOptionalString()
	def := &ast.InputValueDefinition{Description: desc}

	var err error
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if def.Type, err = p.parseType(); err != nil {
		return nil, commit(err, "")
	}
	if def.DefaultValue, err = p.parseOptionalDefaultValue(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	return def, nil
}

// EnumValuesDefinition : { EnumValueDefinition+ }
func (p *parser) parseOptionalEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.match(token.BRACE_L) {
		return nil, nil
	}
	var values []*ast.EnumValueDefinition
	for {
		v, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.match(token.BRACE_R) {
			return values, nil
		}
	}
}

// EnumValueDefinition : Description? EnumValue Directives?
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	desc, _ := p.parseOptionalString()
	def := &ast.EnumValueDefinition{Description: desc}

	if p.check(token.NAME) && reservedValueNames[p.peek().Value] {
		return nil, p.errorf(errors.ErrorReservedWord, "EnumValue can't be one of true, false, or null")
	}
	var err error
	if def.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	return def, nil
}
