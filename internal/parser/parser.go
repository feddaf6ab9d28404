package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// parser is a cursor over a read-only token slice. Rules advance pos and
// backtracking restores it; tokens is never modified.
type parser struct {
	tokens []token.Token
	pos    int
	spans  []Span
}

// Parse builds a Document from tokens. The whole sequence must be consumed;
// on failure the returned error is always a *Error and no document is returned.
func Parse(tokens []token.Token) (*ast.Document, error) {
	p := &parser{tokens: tokens}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, asError(err)
	}
	return doc, nil
}

// ParseType parses a single type reference such as [Int!]!.
func ParseType(tokens []token.Token) (ast.Type, error) {
	p := &parser{tokens: tokens}
	t, err := p.parseType()
	if err == nil {
		err = p.expectEnd("Unterminated Type")
	}
	if err != nil {
		return nil, asError(err)
	}
	return t, nil
}

// ParseValue parses a single input value. Variables are allowed.
func ParseValue(tokens []token.Token) (ast.Value, error) {
	p := &parser{tokens: tokens}
	v, err := p.parseValue()
	if err == nil {
		err = p.expectEnd("Unterminated Value")
	}
	if err != nil {
		return nil, asError(err)
	}
	return v, nil
}

// Document : Definition*
func (p *parser) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{}
	for {
		start := p.pos
		def, ok, err := try(p, p.parseDefinition)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		doc.Definitions = append(doc.Definitions, def)
		p.spans = append(p.spans, Span{Start: start, End: p.pos})
	}
	if err := p.expectEnd("Unterminated document"); err != nil {
		return nil, err
	}
	return doc, nil
}

func (p *parser) expectEnd(message string) error {
	if p.peek() == nil {
		return nil
	}
	return p.errorf(errors.ErrorUnterminatedDocument, "%s", message)
}

// Definition : ExecutableDefinition | TypeSystemDefinitionOrExtension
func (p *parser) parseDefinition() (ast.Definition, error) {
	return oneOf(p, "Definition",
		p.parseExecutableDefinition,
		p.parseTypeSystemDefinitionOrExtension,
	)
}
