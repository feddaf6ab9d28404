package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"gqlsyntax/internal/lsp"
)

const heroQuery = `query Hero($ep: Episode = JEDI) {
  hero(episode: $ep) @include(if: true) {
    name
    ... on Droid { id }
  }
}
`

const thingSchema = `"A thing"
type Thing implements Node @key(fields: "id") {
  id: ID!
  tags(first: Int = 10): [String!]
}
enum Color { RED }
directive @d(ttl: Int) on FIELD | OBJECT
`

// newContext returns a context that records every published diagnostic.
func newContext(published *[]*protocol.PublishDiagnosticsParams) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
				*published = append(*published, p)
			}
		},
	}
}

func openDocument(t *testing.T, handler *lsp.GraphQLHandler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "graphql", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewGraphQLHandler()

	path := filepath.Join(t.TempDir(), "hero.graphql")
	require.NoError(t, os.WriteFile(path, []byte(heroQuery), 0o644))
	uri := "file://" + filepath.ToSlash(path)

	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 15)

	assertToken(t, &decoded[0], 1, 1, 5, "keyword", nil)
	assertToken(t, &decoded[1], 1, 7, 4, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 13, 2, "variable", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 17, 7, "type", nil)
	assertToken(t, &decoded[4], 1, 27, 4, "enumMember", nil)
	assertToken(t, &decoded[5], 2, 3, 4, "property", nil)
	assertToken(t, &decoded[6], 2, 8, 7, "parameter", nil)
	assertToken(t, &decoded[7], 2, 18, 2, "variable", nil)
	assertToken(t, &decoded[8], 2, 23, 7, "macro", nil)
	assertToken(t, &decoded[9], 2, 31, 2, "parameter", nil)
	assertToken(t, &decoded[10], 2, 35, 4, "keyword", nil)
	assertToken(t, &decoded[11], 3, 5, 4, "property", nil)
	assertToken(t, &decoded[12], 4, 9, 2, "keyword", nil)
	assertToken(t, &decoded[13], 4, 12, 5, "type", nil)
	assertToken(t, &decoded[14], 4, 20, 2, "property", nil)

	// Loading the file from disk also publishes its (empty) diagnostics
	require.Len(t, published, 1)
	assert.Empty(t, published[0].Diagnostics)
}

func TestSemanticTokensTypeSystem(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/thing.graphql"
	openDocument(t, handler, ctx, uri, thingSchema)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 25)

	assertToken(t, &decoded[0], 1, 1, 9, "string", nil)
	assertToken(t, &decoded[1], 2, 1, 4, "keyword", nil)
	assertToken(t, &decoded[2], 2, 6, 5, "type", []string{"declaration"})
	assertToken(t, &decoded[3], 2, 12, 10, "keyword", nil)
	assertToken(t, &decoded[4], 2, 23, 4, "type", nil)
	assertToken(t, &decoded[5], 2, 29, 3, "macro", nil)
	assertToken(t, &decoded[6], 2, 33, 6, "parameter", nil)
	assertToken(t, &decoded[7], 2, 41, 4, "string", nil)
	assertToken(t, &decoded[8], 3, 3, 2, "property", []string{"declaration"})
	assertToken(t, &decoded[9], 3, 7, 2, "type", nil)
	assertToken(t, &decoded[10], 4, 3, 4, "property", []string{"declaration"})
	assertToken(t, &decoded[11], 4, 8, 5, "parameter", []string{"declaration"})
	assertToken(t, &decoded[12], 4, 15, 3, "type", nil)
	assertToken(t, &decoded[13], 4, 21, 2, "number", nil)
	assertToken(t, &decoded[14], 4, 27, 6, "type", nil)
	assertToken(t, &decoded[15], 6, 1, 4, "keyword", nil)
	assertToken(t, &decoded[16], 6, 6, 5, "type", []string{"declaration"})
	assertToken(t, &decoded[17], 6, 14, 3, "enumMember", []string{"declaration"})
	assertToken(t, &decoded[18], 7, 1, 9, "keyword", nil)
	assertToken(t, &decoded[19], 7, 12, 1, "macro", []string{"declaration"})
	assertToken(t, &decoded[20], 7, 14, 3, "parameter", []string{"declaration"})
	assertToken(t, &decoded[21], 7, 19, 3, "type", nil)
	assertToken(t, &decoded[22], 7, 24, 2, "keyword", nil)
	assertToken(t, &decoded[23], 7, 27, 5, "enumMember", nil)
	assertToken(t, &decoded[24], 7, 35, 6, "enumMember", nil)
}

func TestSemanticTokensSurviveSyntaxErrors(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/broken.graphql"
	openDocument(t, handler, ctx, uri, "query { a } }")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assertToken(t, &decoded[0], 1, 1, 5, "keyword", nil)
	assertToken(t, &decoded[1], 1, 9, 1, "property", nil)
}

func TestDiagnosticsLifecycle(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/doc.graphql"
	openDocument(t, handler, ctx, uri, "query { }")

	require.Len(t, published, 1)
	assert.Equal(t, uri, published[0].URI)
	require.Len(t, published[0].Diagnostics, 1)

	diag := published[0].Diagnostics[0]
	assert.Contains(t, diag.Message, "Expected Selection")
	assert.Equal(t, protocol.Position{Line: 0, Character: 8}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 9}, diag.Range.End)
	require.NotNil(t, diag.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	require.NotNil(t, diag.Source)
	assert.Equal(t, "gqlsyntax", *diag.Source)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "query { a }"}},
	})
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.NotNil(t, published[1].Diagnostics)
	assert.Empty(t, published[1].Diagnostics)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, published, 3)
	assert.Empty(t, published[2].Diagnostics)
}

func TestConvertErrorAtEndOfInput(t *testing.T) {
	source := "query {\n  a {"
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	openDocument(t, handler, newContext(&published), "file:///memory/eof.graphql", source)

	require.Len(t, published, 1)
	require.Len(t, published[0].Diagnostics, 1)
	diag := published[0].Diagnostics[0]
	assert.Equal(t, protocol.Position{Line: 1, Character: 5}, diag.Range.Start)
	assert.Contains(t, diag.Message, "Expected")
}

func TestConvertLexError(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	openDocument(t, handler, newContext(&published), "file:///memory/lex.graphql", "query { a(x: ?) }")

	require.Len(t, published, 1)
	require.Len(t, published[0].Diagnostics, 1)
	diag := published[0].Diagnostics[0]
	assert.Contains(t, diag.Message, "E0150")
	assert.Equal(t, uint32(0), diag.Range.Start.Line)
}

func TestConvertNilError(t *testing.T) {
	diagnostics := lsp.ConvertError(nil, "")
	assert.NotNil(t, diagnostics)
	assert.Empty(t, diagnostics)
}

func TestTextDocumentDocumentSymbol(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/thing.graphql"
	openDocument(t, handler, ctx, uri, thingSchema)

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	symbols, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok, "unexpected result type %T", result)
	require.Len(t, symbols, 3)

	thing := symbols[0]
	assert.Equal(t, "Thing", thing.Name)
	assert.Equal(t, protocol.SymbolKindClass, thing.Kind)
	assert.Equal(t, rng(0, 0, 4, 1), thing.Range)
	assert.Equal(t, rng(1, 5, 1, 10), thing.SelectionRange)
	require.Len(t, thing.Children, 2)
	assert.Equal(t, "id", thing.Children[0].Name)
	assert.Equal(t, rng(2, 2, 2, 4), thing.Children[0].Range)
	assert.Equal(t, "tags", thing.Children[1].Name)
	assert.Equal(t, rng(3, 2, 3, 6), thing.Children[1].Range)

	color := symbols[1]
	assert.Equal(t, "Color", color.Name)
	assert.Equal(t, protocol.SymbolKindEnum, color.Kind)
	assert.Equal(t, rng(5, 0, 5, 18), color.Range)
	require.Len(t, color.Children, 1)
	assert.Equal(t, protocol.SymbolKindEnumMember, color.Children[0].Kind)
	assert.Equal(t, rng(5, 13, 5, 16), color.Children[0].Range)

	directive := symbols[2]
	assert.Equal(t, "@d", directive.Name)
	assert.Equal(t, protocol.SymbolKindEvent, directive.Kind)
	assert.Equal(t, rng(6, 0, 6, 40), directive.Range)
	assert.Equal(t, rng(6, 11, 6, 12), directive.SelectionRange)
}

func TestDocumentSymbolsOfAnonymousOperation(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/anon.graphql"
	openDocument(t, handler, ctx, uri, "{ a }\nfragment F on T { b }")

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 2)
	assert.Equal(t, "(anonymous query)", symbols[0].Name)
	assert.Equal(t, rng(0, 0, 0, 1), symbols[0].SelectionRange)
	assert.Equal(t, "F", symbols[1].Name)
	require.NotNil(t, symbols[1].Detail)
	assert.Equal(t, "fragment on T", *symbols[1].Detail)
}

func TestDocumentSymbolsOfBrokenDocument(t *testing.T) {
	handler := lsp.NewGraphQLHandler()
	var published []*protocol.PublishDiagnosticsParams
	ctx := newContext(&published)

	uri := "file:///memory/broken.graphql"
	openDocument(t, handler, ctx, uri, "type {")

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTextDocumentCompletion(t *testing.T) {
	handler := lsp.NewGraphQLHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.Len(t, list.Items, 16)
	assert.Equal(t, "directive", list.Items[0].Label)
	require.NotNil(t, list.Items[0].Kind)
	assert.Equal(t, protocol.CompletionItemKindKeyword, *list.Items[0].Kind)
}

func rng(startLine, startChar, endLine, endChar uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
