package lexer

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	gqllexer "github.com/vektah/gqlparser/v2/lexer"
	"gqlsyntax/token"
)

var gqlPunctuators = map[gqllexer.Type]token.Kind{
	gqllexer.Bang:     token.BANG,
	gqllexer.Dollar:   token.DOLLAR,
	gqllexer.Amp:      token.AMP,
	gqllexer.ParenL:   token.PAREN_L,
	gqllexer.ParenR:   token.PAREN_R,
	gqllexer.Spread:   token.SPREAD,
	gqllexer.Colon:    token.COLON,
	gqllexer.Equals:   token.EQUALS,
	gqllexer.At:       token.AT,
	gqllexer.BracketL: token.BRACKET_L,
	gqllexer.BracketR: token.BRACKET_R,
	gqllexer.BraceL:   token.BRACE_L,
	gqllexer.BraceR:   token.BRACE_R,
	gqllexer.Pipe:     token.PIPE,
}

// LexGQLParser tokenizes source with the gqlparser lexer and converts the
// result to the same token shape Lex produces. Columns and offsets are
// counted in runes, as gqlparser reports them.
func LexGQLParser(filename, source string) ([]token.Token, error) {
	l := gqllexer.New(&ast.Source{Name: filename, Input: source})

	var tokens []token.Token
	for {
		t, err := l.ReadToken()
		if err != nil {
			return nil, fromGQLParser(filename, err)
		}
		pos := token.Position{
			Filename: filename,
			Line:     t.Pos.Line,
			Column:   t.Pos.Column,
			Offset:   t.Pos.Start,
		}
		length := t.Pos.End - t.Pos.Start

		switch t.Kind {
		case gqllexer.EOF:
			return tokens, nil
		case gqllexer.Comment:
			continue
		case gqllexer.Name:
			tokens = append(tokens, token.Token{Kind: token.NAME, Value: t.Value, Pos: pos, Length: length})
		case gqllexer.Int:
			tokens = append(tokens, token.Token{Kind: token.INT, Value: t.Value, Pos: pos, Length: length})
		case gqllexer.Float:
			tokens = append(tokens, token.Token{Kind: token.FLOAT, Value: t.Value, Pos: pos, Length: length})
		case gqllexer.String:
			tokens = append(tokens, token.Token{Kind: token.STRING, Value: t.Value, Pos: pos, Length: length})
		case gqllexer.BlockString:
			tokens = append(tokens, token.Token{Kind: token.STRING, Value: t.Value, Block: true, Pos: pos, Length: length})
		default:
			kind, ok := gqlPunctuators[t.Kind]
			if !ok {
				return nil, &Error{Message: "unexpected " + t.Kind.String(), Pos: pos}
			}
			tokens = append(tokens, token.Token{Kind: kind, Pos: pos, Length: length})
		}
	}
}

func fromGQLParser(filename string, err error) error {
	lexErr := &Error{Message: err.Error(), Pos: token.Position{Filename: filename}, cause: err}
	if gqlErr, ok := err.(*gqlerror.Error); ok {
		lexErr.Message = gqlErr.Message
		if len(gqlErr.Locations) > 0 {
			lexErr.Pos.Line = gqlErr.Locations[0].Line
			lexErr.Pos.Column = gqlErr.Locations[0].Column
		}
	}
	return lexErr
}
