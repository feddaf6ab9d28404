package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/token"
)

// Type : NamedType | ListType | NonNullType
// NonNullType : NamedType ! | ListType !
//
// A bang is only taken once, so Int!! leaves the second ! for the caller
// to reject.
func (p *parser) parseType() (ast.Type, error) {
	var t ast.NullableType
	switch {
	case p.match(token.BRACKET_L):
		elem, err := p.parseType()
		if err != nil {
			return nil, commit(err, "")
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		t = &ast.ListType{Element: elem}
	case p.check(token.NAME):
		t = &ast.NamedType{Name: p.advance().Value}
	default:
		return nil, p.noMatch("Unrecognized Type")
	}
	if p.match(token.BANG) {
		return &ast.NonNullType{Element: t}, nil
	}
	return t, nil
}
