package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/parser"
	"gqlsyntax/token"
)

// documentSymbol describes how a top-level definition appears in an outline.
type documentSymbol struct {
	name    string
	detail  string
	kind    protocol.SymbolKind
	members []string
	member  protocol.SymbolKind
}

// collectDocumentSymbols lists the top-level definitions of a parsed
// document, with fields and enum values as children.
func collectDocumentSymbols(result *parser.ParseResult) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if result == nil || result.Document == nil {
		return symbols
	}

	for i, def := range result.Document.Definitions {
		tokens := result.DefinitionTokens(i)
		if len(tokens) == 0 {
			continue
		}
		info := describeDefinition(def)

		symbol := protocol.DocumentSymbol{
			Name:           info.name,
			Kind:           info.kind,
			Range:          spanRange(tokens[0], tokens[len(tokens)-1]),
			SelectionRange: tokenRange(nameToken(tokens, info.name)),
		}
		if info.detail != "" {
			symbol.Detail = ptrString(info.detail)
		}
		for _, tok := range memberTokens(tokens, info.members) {
			symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
				Name:           tok.Value,
				Kind:           info.member,
				Range:          tokenRange(tok),
				SelectionRange: tokenRange(tok),
			})
		}
		symbols = append(symbols, symbol)
	}
	return symbols
}

func describeDefinition(def ast.Definition) documentSymbol {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		operation := string(d.Operation)
		if operation == "" {
			operation = string(ast.Query)
		}
		name := d.Name
		if name == "" {
			name = "(anonymous " + operation + ")"
		}
		return documentSymbol{name: name, detail: operation, kind: protocol.SymbolKindFunction}
	case *ast.FragmentDefinition:
		return documentSymbol{name: d.Name, detail: "fragment on " + d.TypeCondition, kind: protocol.SymbolKindFunction}
	case *ast.SchemaDefinition:
		return documentSymbol{name: "schema", kind: protocol.SymbolKindModule}
	case *ast.SchemaExtension:
		return documentSymbol{name: "schema", detail: "extension", kind: protocol.SymbolKindModule}
	case *ast.DirectiveDefinition:
		return documentSymbol{name: "@" + d.Name, detail: "directive", kind: protocol.SymbolKindEvent}
	case *ast.ScalarTypeDefinition:
		return documentSymbol{name: d.Name, detail: "scalar", kind: protocol.SymbolKindTypeParameter}
	case *ast.ScalarTypeExtension:
		return documentSymbol{name: d.Name, detail: "scalar extension", kind: protocol.SymbolKindTypeParameter}
	case *ast.ObjectTypeDefinition:
		return documentSymbol{name: d.Name, detail: "type", kind: protocol.SymbolKindClass,
			members: fieldNames(d.Fields), member: protocol.SymbolKindField}
	case *ast.ObjectTypeExtension:
		return documentSymbol{name: d.Name, detail: "type extension", kind: protocol.SymbolKindClass,
			members: fieldNames(d.Fields), member: protocol.SymbolKindField}
	case *ast.InterfaceTypeDefinition:
		return documentSymbol{name: d.Name, detail: "interface", kind: protocol.SymbolKindInterface,
			members: fieldNames(d.Fields), member: protocol.SymbolKindField}
	case *ast.InterfaceTypeExtension:
		return documentSymbol{name: d.Name, detail: "interface extension", kind: protocol.SymbolKindInterface,
			members: fieldNames(d.Fields), member: protocol.SymbolKindField}
	case *ast.UnionTypeDefinition:
		return documentSymbol{name: d.Name, detail: "union", kind: protocol.SymbolKindClass}
	case *ast.UnionTypeExtension:
		return documentSymbol{name: d.Name, detail: "union extension", kind: protocol.SymbolKindClass}
	case *ast.EnumTypeDefinition:
		return documentSymbol{name: d.Name, detail: "enum", kind: protocol.SymbolKindEnum,
			members: enumValueNames(d.Values), member: protocol.SymbolKindEnumMember}
	case *ast.EnumTypeExtension:
		return documentSymbol{name: d.Name, detail: "enum extension", kind: protocol.SymbolKindEnum,
			members: enumValueNames(d.Values), member: protocol.SymbolKindEnumMember}
	case *ast.InputObjectTypeDefinition:
		return documentSymbol{name: d.Name, detail: "input", kind: protocol.SymbolKindStruct,
			members: inputValueNames(d.Fields), member: protocol.SymbolKindField}
	case *ast.InputObjectTypeExtension:
		return documentSymbol{name: d.Name, detail: "input extension", kind: protocol.SymbolKindStruct,
			members: inputValueNames(d.Fields), member: protocol.SymbolKindField}
	}
	return documentSymbol{name: def.NodeType().String(), kind: protocol.SymbolKindObject}
}

func fieldNames(fields []*ast.FieldDefinition) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func inputValueNames(fields []*ast.InputValueDefinition) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func enumValueNames(values []*ast.EnumValueDefinition) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name
	}
	return names
}

// nameToken finds the token spelling a definition's name, falling back to
// the first token for anonymous definitions.
func nameToken(tokens []token.Token, name string) token.Token {
	name = trimDirectivePrefix(name)
	for _, tok := range tokens {
		if tok.Kind == token.NAME && tok.Value == name {
			return tok
		}
	}
	for _, tok := range tokens {
		if tok.Kind != token.STRING {
			return tok
		}
	}
	return tokens[0]
}

func trimDirectivePrefix(name string) string {
	if len(name) > 1 && name[0] == '@' {
		return name[1:]
	}
	return name
}

// memberTokens matches member names, in order, against the names found
// directly inside the definition's body braces.
func memberTokens(tokens []token.Token, members []string) []token.Token {
	var (
		found  []token.Token
		braces int
		parens int
	)
	for i, tok := range tokens {
		if len(found) == len(members) {
			break
		}
		switch tok.Kind {
		case token.BRACE_L:
			braces++
		case token.BRACE_R:
			braces--
		case token.PAREN_L:
			parens++
		case token.PAREN_R:
			parens--
		case token.NAME:
			if braces == 1 && parens == 0 && tok.Value == members[len(found)] && !typeOrDirectiveName(tokens, i) {
				found = append(found, tok)
			}
		}
	}
	return found
}

// typeOrDirectiveName reports whether the name at i is a type reference or
// a directive rather than a member being declared.
func typeOrDirectiveName(tokens []token.Token, i int) bool {
	if i == 0 {
		return false
	}
	switch tokens[i-1].Kind {
	case token.COLON, token.BRACKET_L, token.AT:
		return true
	}
	return false
}

func tokenRange(tok token.Token) protocol.Range {
	return spanRange(tok, tok)
}

func spanRange(first, last token.Token) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(first.Pos.Line - 1),
			Character: uint32(first.Pos.Column - 1),
		},
		End: protocol.Position{
			Line:      uint32(last.Pos.Line - 1),
			Character: uint32(last.Pos.Column - 1 + last.Length),
		},
	}
}
