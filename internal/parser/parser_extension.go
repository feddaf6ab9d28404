package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// TypeSystemExtension : SchemaExtension | TypeExtension
func (p *parser) parseTypeSystemExtension() (ast.Definition, error) {
	return oneOf(p, "TypeSystemExtension",
		p.parseSchemaExtension,
		p.parseScalarTypeExtension,
		p.parseObjectTypeExtension,
		p.parseInterfaceTypeExtension,
		p.parseUnionTypeExtension,
		p.parseEnumTypeExtension,
		p.parseInputObjectTypeExtension,
	)
}

// extendKeyword consumes `extend <keyword>`, committing only when both match.
func (p *parser) extendKeyword(keyword string) error {
	if !p.checkKeyword("extend") {
		return p.noMatch("Expected extend")
	}
	next := p.peekAt(1)
	if next == nil || !next.IsKeyword(keyword) {
		p.advance()
		return p.noMatch("Expected %s", keyword)
	}
	p.pos += 2
	return nil
}

func (p *parser) emptyExtension(clauses string) error {
	return p.errorf(errors.ErrorEmptyExtension, "Expected at least one of %s", clauses)
}

// SchemaExtension : extend schema Directives? { RootOperationTypeDefinition+ }
//                 | extend schema Directives
func (p *parser) parseSchemaExtension() (ast.Definition, error) {
	if err := p.extendKeyword("schema"); err != nil {
		return nil, err
	}
	ext := &ast.SchemaExtension{}

	var err error
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.RootOperationTypes, err = p.parseOptionalRootOperationTypes(); err != nil {
		return nil, err
	}
	if ext.Directives == nil && ext.RootOperationTypes == nil {
		return nil, p.emptyExtension("Directives, RootOperationTypesDefinition")
	}
	return ext, nil
}

// ScalarTypeExtension : extend scalar Name Directives
func (p *parser) parseScalarTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("scalar"); err != nil {
		return nil, err
	}
	ext := &ast.ScalarTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Directives == nil {
		return nil, p.errorf(errors.ErrorEmptyExtension, "Expected Directives")
	}
	return ext, nil
}

// ObjectTypeExtension : extend type Name ImplementsInterfaces? Directives? FieldsDefinition?
// with at least one of the optional clauses.
func (p *parser) parseObjectTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("type"); err != nil {
		return nil, err
	}
	ext := &ast.ObjectTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Interfaces, err = p.parseOptionalImplementsInterfaces(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseOptionalFieldsDefinition(); err != nil {
		return nil, err
	}
	if ext.Interfaces == nil && ext.Directives == nil && ext.Fields == nil {
		return nil, p.emptyExtension("ImplementsInterfaces, Directives, FieldsDefinition")
	}
	return ext, nil
}

// InterfaceTypeExtension : extend interface Name ImplementsInterfaces? Directives? FieldsDefinition?
// with at least one of the optional clauses.
func (p *parser) parseInterfaceTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("interface"); err != nil {
		return nil, err
	}
	ext := &ast.InterfaceTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Interfaces, err = p.parseOptionalImplementsInterfaces(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseOptionalFieldsDefinition(); err != nil {
		return nil, err
	}
	if ext.Interfaces == nil && ext.Directives == nil && ext.Fields == nil {
		return nil, p.emptyExtension("ImplementsInterfaces, Directives, FieldsDefinition")
	}
	return ext, nil
}

// UnionTypeExtension : extend union Name Directives? UnionMemberTypes?
// with at least one of the optional clauses.
func (p *parser) parseUnionTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("union"); err != nil {
		return nil, err
	}
	ext := &ast.UnionTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Types, err = p.parseOptionalUnionMemberTypes(); err != nil {
		return nil, err
	}
	if ext.Directives == nil && ext.Types == nil {
		return nil, p.emptyExtension("Directives, UnionMemberTypes")
	}
	return ext, nil
}

// EnumTypeExtension : extend enum Name Directives? EnumValuesDefinition?
// with at least one of the optional clauses.
func (p *parser) parseEnumTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("enum"); err != nil {
		return nil, err
	}
	ext := &ast.EnumTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Values, err = p.parseOptionalEnumValuesDefinition(); err != nil {
		return nil, err
	}
	if ext.Directives == nil && ext.Values == nil {
		return nil, p.emptyExtension("Directives, EnumValuesDefinition")
	}
	return ext, nil
}

// InputObjectTypeExtension : extend input Name Directives? InputFieldsDefinition?
// with at least one of the optional clauses.
func (p *parser) parseInputObjectTypeExtension() (ast.Definition, error) {
	if err := p.extendKeyword("input"); err != nil {
		return nil, err
	}
	ext := &ast.InputObjectTypeExtension{}

	var err error
	if ext.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if ext.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if ext.Fields, err = p.parseOptionalInputValues(token.BRACE_L, token.BRACE_R); err != nil {
		return nil, err
	}
	if ext.Directives == nil && ext.Fields == nil {
		return nil, p.emptyExtension("Directives, InputFieldsDefinition")
	}
	return ext, nil
}
