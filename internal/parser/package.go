package parser

import (
	"os"

	"github.com/pkg/errors"
	"gqlsyntax/internal/ast"
	diag "gqlsyntax/internal/errors"
	"gqlsyntax/internal/lexer"
	"gqlsyntax/token"
)

// ParseSource lexes and parses source. The error is a *lexer.Error when the
// text cannot be tokenized and a *Error when it is not a valid document.
func ParseSource(filename, source string) (*ast.Document, error) {
	tokens, err := lexer.Lex(filename, source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*ast.Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return ParseSource(path, string(source))
}

// Diagnose converts an error returned by this package into a diagnostic
// for errors.Reporter or an editor.
func Diagnose(err error) diag.Diagnostic {
	switch e := err.(type) {
	case *Error:
		return e.Diagnostic()
	case *lexer.Error:
		return diag.LexError(e.Message, e.Pos)
	}
	return diag.NewSyntaxError(diag.ErrorReadFile, err.Error(), token.Position{}).Build()
}
