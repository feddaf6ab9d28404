package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// ExecutableDefinition : OperationDefinition | FragmentDefinition
func (p *parser) parseExecutableDefinition() (ast.Definition, error) {
	return oneOf(p, "ExecutableDefinition",
		p.parseOperationDefinition,
		p.parseFragmentDefinition,
	)
}

// OperationDefinition : SelectionSet
//                     | OperationType Name? VariableDefinitions? Directives? SelectionSet
func (p *parser) parseOperationDefinition() (ast.Definition, error) {
	if p.check(token.BRACE_L) {
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{SelectionSet: set}, nil
	}

	tok := p.peek()
	if tok == nil || tok.Kind != token.NAME {
		return nil, p.noMatch("Expected OperationType")
	}
	op, ok := ast.LookupOperationType(tok.Value)
	if !ok {
		return nil, p.noMatch("Expected OperationType")
	}
	p.advance()

	def := &ast.OperationDefinition{Operation: op}
	if p.check(token.NAME) {
		def.Name = p.advance().Value
	}

	var err error
	if def.VariableDefinitions, err = p.parseOptionalVariableDefinitions(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, commit(err, "")
	}
	return def, nil
}

// VariableDefinitions : ( VariableDefinition+ )
func (p *parser) parseOptionalVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.match(token.PAREN_L) {
		return nil, nil
	}
	first, err := p.parseVariableDefinition()
	if err != nil {
		return nil, commit(err, "VariableDefinition")
	}
	defs := []*ast.VariableDefinition{first}
	for {
		def, ok, err := try(p, p.parseVariableDefinition)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		defs = append(defs, def)
	}
	if _, err := p.expect(token.PAREN_R, "VariableDefinition"); err != nil {
		return nil, err
	}
	return defs, nil
}

// VariableDefinition : Variable : Type DefaultValue? Directives?
func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	if !p.match(token.DOLLAR) {
		return nil, p.noMatch("Expected $")
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	def := &ast.VariableDefinition{Variable: name}
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

// DefaultValue : = Value
func (p *parser) parseOptionalDefaultValue() (ast.Value, error) {
	if !p.match(token.EQUALS) {
		return nil, nil
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, commit(err, "")
	}
	return v, nil
}

// SelectionSet : { Selection+ }
func (p *parser) parseSelectionSet() (ast.SelectionSet, error) {
	if !p.match(token.BRACE_L) {
		return nil, p.noMatch("Expected {")
	}
	first, err := p.parseSelection()
	if err != nil {
		return nil, commit(err, "Selection")
	}
	set := ast.SelectionSet{first}
	for p.check(token.NAME) || p.check(token.SPREAD) {
		sel, err := p.parseSelection()
		if err != nil {
			return nil, commit(err, "")
		}
		set = append(set, sel)
	}
	if _, err := p.expect(token.BRACE_R, "Selection"); err != nil {
		return nil, err
	}
	return set, nil
}

// Selection : Field | FragmentSpread | InlineFragment
func (p *parser) parseSelection() (ast.Selection, error) {
	return oneOf(p, "Selection",
		p.parseField,
		p.parseFragmentSpread,
		p.parseInlineFragment,
	)
}

// Field : Alias? Name Arguments? Directives? SelectionSet?
// Alias : Name :
func (p *parser) parseField() (ast.Selection, error) {
	if !p.check(token.NAME) {
		return nil, p.noMatch("Expected name")
	}
	field := &ast.Field{Name: p.advance().Value}
	if p.match(token.COLON) {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		field.Alias, field.Name = field.Name, name
	}

	var err error
	if field.Arguments, err = p.parseOptionalArguments(); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if p.check(token.BRACE_L) {
		if field.SelectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}
	return field, nil
}

// FragmentSpread : ... FragmentName Directives?
func (p *parser) parseFragmentSpread() (ast.Selection, error) {
	if !p.match(token.SPREAD) {
		return nil, p.noMatch("Expected ...")
	}
	if !p.check(token.NAME) {
		return nil, p.noMatch("Expected name")
	}
	if p.checkKeyword("on") {
		return nil, &noMatch{err: p.errorf(errors.ErrorReservedWord, "Expected name other than on")}
	}
	spread := &ast.FragmentSpread{Name: p.advance().Value}

	var err error
	if spread.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	return spread, nil
}

// InlineFragment : ... TypeCondition? Directives? SelectionSet
// TypeCondition : on NamedType
func (p *parser) parseInlineFragment() (ast.Selection, error) {
	if !p.match(token.SPREAD) {
		return nil, p.noMatch("Expected ...")
	}
	frag := &ast.InlineFragment{}
	if p.check(token.NAME) {
		if !p.checkKeyword("on") {
			return nil, p.noMatch("Expected on or @ or {")
		}
		p.advance()
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		frag.TypeCondition = name
	}

	var err error
	if frag.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if frag.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, commit(err, "")
	}
	return frag, nil
}

// FragmentDefinition : fragment FragmentName TypeCondition Directives? SelectionSet
// FragmentName : Name but not on
func (p *parser) parseFragmentDefinition() (ast.Definition, error) {
	if !p.checkKeyword("fragment") {
		return nil, p.noMatch("Expected fragment")
	}
	p.advance()

	if p.checkKeyword("on") {
		return nil, p.errorf(errors.ErrorReservedWord, "Expected name other than on")
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	def := &ast.FragmentDefinition{Name: name}
	if def.TypeCondition, err = p.expectName(); err != nil {
		return nil, err
	}
	if def.Directives, err = p.parseOptionalDirectives(); err != nil {
		return nil, err
	}
	if def.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, commit(err, "")
	}
	return def, nil
}
