package lexer

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
	"gqlsyntax/token"
)

// Definition tokenizes GraphQL source. Order matters: block strings before
// strings, floats before ints and the spread before single punctuators.
var Definition = plexer.MustStateful(plexer.Rules{
	"Root": {
		// Commas and the byte order mark are insignificant, like whitespace
		{Name: "Whitespace", Pattern: `[\s,\x{FEFF}]+`, Action: nil},
		{Name: "Comment", Pattern: `#[^\n\r]*`, Action: nil},

		{Name: "BlockString", Pattern: `"""(?:\\"""|(?s:.))*?"""`, Action: nil},
		{Name: "String", Pattern: `"(?:\\.|[^"\\\n\r])*"`, Action: nil},

		{Name: "Float", Pattern: `-?(?:0|[1-9][0-9]*)(?:\.[0-9]+(?:[eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)`, Action: nil},
		{Name: "Int", Pattern: `-?(?:0|[1-9][0-9]*)`, Action: nil},
		{Name: "Name", Pattern: `[_A-Za-z][_0-9A-Za-z]*`, Action: nil},

		{Name: "Spread", Pattern: `\.\.\.`, Action: nil},
		{Name: "Punct", Pattern: `[!$&():=@\[\]{}|]`, Action: nil},
	},
})

var symbols = func() map[plexer.TokenType]string {
	names := map[plexer.TokenType]string{}
	for name, tt := range Definition.Symbols() {
		names[tt] = name
	}
	return names
}()

// Error is a failure to tokenize source text.
type Error struct {
	Message string
	Pos     token.Position
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Cause returns the underlying error reported by the tokenizer, if any.
func (e *Error) Cause() error { return e.cause }

// Lex converts source into the token sequence consumed by the parser.
// Whitespace, commas and comments are dropped. The returned error is a *Error.
func Lex(filename, source string) ([]token.Token, error) {
	lex, err := Definition.LexString(filename, source)
	if err != nil {
		return nil, fromParticiple(err)
	}
	raw, err := plexer.ConsumeAll(lex)
	if err != nil {
		return nil, fromParticiple(err)
	}

	tokens := make([]token.Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		pos := convertPos(t.Pos)
		switch symbols[t.Type] {
		case "Whitespace", "Comment":
			continue
		case "Name":
			tokens = append(tokens, token.Token{Kind: token.NAME, Value: t.Value, Pos: pos, Length: len(t.Value)})
		case "Int":
			tokens = append(tokens, token.Token{Kind: token.INT, Value: t.Value, Pos: pos, Length: len(t.Value)})
		case "Float":
			tokens = append(tokens, token.Token{Kind: token.FLOAT, Value: t.Value, Pos: pos, Length: len(t.Value)})
		case "String":
			value, err := unquote(t.Value)
			if err != nil {
				return nil, &Error{Message: err.Error(), Pos: pos, cause: err}
			}
			tokens = append(tokens, token.Token{Kind: token.STRING, Value: value, Pos: pos, Length: len(t.Value)})
		case "BlockString":
			tokens = append(tokens, token.Token{
				Kind:   token.STRING,
				Value:  blockStringValue(t.Value[3 : len(t.Value)-3]),
				Block:  true,
				Pos:    pos,
				Length: len(t.Value),
			})
		case "Spread", "Punct":
			kind, ok := token.LookupPunctuator(t.Value)
			if !ok {
				return nil, &Error{Message: fmt.Sprintf("unexpected %q", t.Value), Pos: pos}
			}
			tokens = append(tokens, token.Token{Kind: kind, Pos: pos, Length: len(t.Value)})
		}
	}
	return tokens, nil
}

func convertPos(pos plexer.Position) token.Position {
	return token.Position{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Offset:   pos.Offset,
	}
}

func fromParticiple(err error) error {
	if perr, ok := err.(participle.Error); ok {
		return &Error{Message: perr.Message(), Pos: convertPos(perr.Position()), cause: err}
	}
	return &Error{Message: err.Error(), cause: err}
}
