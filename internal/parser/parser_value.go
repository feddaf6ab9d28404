package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// Value : Variable | IntValue | FloatValue | StringValue | BooleanValue
//       | NullValue | EnumValue | ListValue | ObjectValue
//
// The order matters: true, false and null are claimed by BooleanValue and
// NullValue before EnumValue sees them.
func (p *parser) parseValue() (ast.Value, error) {
	return oneOf(p, "Value",
		p.parseVariable,
		p.parseIntValue,
		p.parseFloatValue,
		p.parseStringValue,
		p.parseBooleanValue,
		p.parseNullValue,
		p.parseEnumValue,
		p.parseListValue,
		p.parseObjectValue,
	)
}

// Variable : $ Name
func (p *parser) parseVariable() (ast.Value, error) {
	if !p.match(token.DOLLAR) {
		return nil, p.noMatch("Expected $")
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name}, nil
}

func (p *parser) parseIntValue() (ast.Value, error) {
	if !p.check(token.INT) {
		return nil, p.noMatch("Expected int")
	}
	return &ast.IntValue{Raw: p.advance().Value}, nil
}

func (p *parser) parseFloatValue() (ast.Value, error) {
	if !p.check(token.FLOAT) {
		return nil, p.noMatch("Expected float")
	}
	return &ast.FloatValue{Raw: p.advance().Value}, nil
}

func (p *parser) parseStringValue() (ast.Value, error) {
	s, ok := p.parseOptionalString()
	if !ok {
		return nil, p.noMatch("Expected string")
	}
	return s, nil
}

func (p *parser) parseBooleanValue() (ast.Value, error) {
	switch {
	case p.checkKeyword("true"):
		p.advance()
		return &ast.BooleanValue{Value: true}, nil
	case p.checkKeyword("false"):
		p.advance()
		return &ast.BooleanValue{Value: false}, nil
	}
	return nil, p.noMatch("Expected one of true, false")
}

func (p *parser) parseNullValue() (ast.Value, error) {
	if !p.checkKeyword("null") {
		return nil, p.noMatch("Expected null")
	}
	p.advance()
	return &ast.NullValue{}, nil
}

// EnumValue : Name but not true or false or null
func (p *parser) parseEnumValue() (ast.Value, error) {
	if !p.check(token.NAME) {
		return nil, p.noMatch("Expected EnumValue")
	}
	if reservedValueNames[p.peek().Value] {
		return nil, &noMatch{err: p.errorf(errors.ErrorReservedWord, "EnumValue can't be one of true, false, or null")}
	}
	return &ast.EnumValue{Value: p.advance().Value}, nil
}

// ListValue : [ ] | [ Value+ ]
func (p *parser) parseListValue() (ast.Value, error) {
	if !p.match(token.BRACKET_L) {
		return nil, p.noMatch("Expected [")
	}
	list := &ast.ListValue{}
	for !p.check(token.BRACKET_R) {
		v, err := p.parseValue()
		if err != nil {
			return nil, commit(err, "")
		}
		list.Values = append(list.Values, v)
	}
	p.advance()
	return list, nil
}

// ObjectValue : { } | { ObjectField+ }
func (p *parser) parseObjectValue() (ast.Value, error) {
	if !p.match(token.BRACE_L) {
		return nil, p.noMatch("Expected {")
	}
	obj := &ast.ObjectValue{}
	for p.check(token.NAME) {
		name := p.advance().Value
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, commit(err, "")
		}
		obj.Fields = append(obj.Fields, &ast.ObjectField{Name: name, Value: v})
	}
	if _, err := p.expect(token.BRACE_R); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseOptionalString consumes a string token, used for both string
// values and descriptions.
func (p *parser) parseOptionalString() (*ast.StringValue, bool) {
	if !p.check(token.STRING) {
		return nil, false
	}
	tok := p.advance()
	return &ast.StringValue{Value: tok.Value, Block: tok.Block}, true
}

// Arguments : ( Argument+ )
func (p *parser) parseOptionalArguments() ([]*ast.Argument, error) {
	if !p.match(token.PAREN_L) {
		return nil, nil
	}
	var args []*ast.Argument
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, commit(err, "")
		}
		args = append(args, arg)
		if p.match(token.PAREN_R) {
			return args, nil
		}
	}
}

// Argument : Name : Value
func (p *parser) parseArgument() (*ast.Argument, error) {
	if !p.check(token.NAME) {
		return nil, p.noMatch("Expected name")
	}
	name := p.advance().Value
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, commit(err, "")
	}
	return &ast.Argument{Name: name, Value: v}, nil
}

// Directives : Directive+
// Directive : @ Name Arguments?
func (p *parser) parseOptionalDirectives() ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.match(token.AT) {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		args, err := p.parseOptionalArguments()
		if err != nil {
			return nil, err
		}
		directives = append(directives, &ast.Directive{Name: name, Arguments: args})
	}
	return directives, nil
}
