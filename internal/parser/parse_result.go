package parser

import (
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/lexer"
	"gqlsyntax/token"
)

// ParseResult holds everything editor tooling needs from a single pass:
// the token stream, the document and where each definition came from.
type ParseResult struct {
	Tokens   []token.Token
	Document *ast.Document
	// Spans has one entry per element of Document.Definitions.
	Spans []Span
	// Err is a *lexer.Error or a *Error; Document is nil when it is set.
	Err error
}

// Span is the half-open range [Start, End) of token indexes a definition
// was parsed from.
type Span struct {
	Start int
	End   int
}

// ParseSourceWithTokens lexes and parses source, keeping the tokens and
// definition spans alongside the result.
func ParseSourceWithTokens(filename, source string) *ParseResult {
	tokens, err := lexer.Lex(filename, source)
	if err != nil {
		return &ParseResult{Err: err}
	}

	p := &parser{tokens: tokens}
	doc, err := p.parseDocument()
	if err != nil {
		return &ParseResult{Tokens: tokens, Err: asError(err)}
	}
	return &ParseResult{Tokens: tokens, Document: doc, Spans: p.spans}
}

// DefinitionTokens returns the tokens the i-th definition was parsed from.
func (r *ParseResult) DefinitionTokens(i int) []token.Token {
	if i < 0 || i >= len(r.Spans) {
		return nil
	}
	span := r.Spans[i]
	return r.Tokens[span.Start:span.End]
}

// DefinitionAt returns the index of the definition whose tokens cover the
// given 1-based line and column, or -1.
func (r *ParseResult) DefinitionAt(line, column int) int {
	for i, span := range r.Spans {
		first := r.Tokens[span.Start].Pos
		last := r.Tokens[span.End-1]
		if before(line, column, first.Line, first.Column) {
			continue
		}
		if before(last.Pos.Line, last.Pos.Column+last.Length-1, line, column) {
			continue
		}
		return i
	}
	return -1
}

func before(line1, col1, line2, col2 int) bool {
	return line1 < line2 || (line1 == line2 && col1 < col2)
}
