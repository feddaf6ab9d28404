package lsp

import (
	"gqlsyntax/internal/parser"
	"gqlsyntax/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	tokenKeyword = iota
	tokenType
	tokenProperty
	tokenParameter
	tokenVariable
	tokenFunction
	tokenMacro
	tokenEnumMember
	tokenString
	tokenNumber
)

const modDeclaration = 1 << 0

// scope is the syntactic region a token sits in, as far as highlighting
// needs to know.
type scope int

const (
	scopeDocument scope = iota
	scopeSelection
	scopeArguments
	scopeVariables
	scopeArgumentDefs
	scopeFields
	scopeInputFields
	scopeEnumValues
	scopeSchema
	scopeObjectValue
	scopeListValue
	scopeListType
)

// Names that introduce a declared name right after them.
var declaringKeywords = map[string]int{
	"query":        tokenFunction,
	"mutation":     tokenFunction,
	"subscription": tokenFunction,
	"fragment":     tokenFunction,
	"scalar":       tokenType,
	"type":         tokenType,
	"interface":    tokenType,
	"union":        tokenType,
	"enum":         tokenType,
	"input":        tokenType,
}

type classifier struct {
	tokens []token.Token
	scopes []scope
	// header is the keyword of the definition being read at document level
	header      string
	prevKeyword string
	out         []SemanticToken
}

// collectSemanticTokens classifies the token stream of a document. It works
// on tokens alone, so a document with a syntax error is still highlighted.
func collectSemanticTokens(tokens []token.Token) []SemanticToken {
	c := &classifier{tokens: tokens}
	for i, tok := range tokens {
		if tok.Kind != token.NAME {
			c.prevKeyword = ""
		}
		switch tok.Kind {
		case token.NAME:
			c.name(i)
		case token.STRING:
			// Block strings may span lines, which a single entry cannot express
			if !tok.Block {
				c.emit(tok, tokenString, 0)
			}
		case token.INT, token.FLOAT:
			c.emit(tok, tokenNumber, 0)
		case token.BRACE_L:
			c.push(c.openBrace())
		case token.PAREN_L:
			c.push(c.openParen(i))
		case token.BRACKET_L:
			c.push(c.openBracket(i))
		case token.BRACE_R:
			c.pop()
			if len(c.scopes) == 0 {
				c.header = ""
			}
		case token.PAREN_R, token.BRACKET_R:
			c.pop()
		}
	}
	return c.out
}

func (c *classifier) current() scope {
	if len(c.scopes) == 0 {
		return scopeDocument
	}
	return c.scopes[len(c.scopes)-1]
}

func (c *classifier) push(s scope) {
	c.scopes = append(c.scopes, s)
}

func (c *classifier) pop() {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *classifier) at(i int) *token.Token {
	if i < 0 || i >= len(c.tokens) {
		return nil
	}
	return &c.tokens[i]
}

func (c *classifier) kindAt(i int) token.Kind {
	if tok := c.at(i); tok != nil {
		return tok.Kind
	}
	return token.ILLEGAL
}

func (c *classifier) openBrace() scope {
	switch c.current() {
	case scopeDocument:
		switch c.header {
		case "type", "interface":
			return scopeFields
		case "input":
			return scopeInputFields
		case "enum":
			return scopeEnumValues
		case "schema":
			return scopeSchema
		}
		return scopeSelection
	case scopeSelection:
		return scopeSelection
	}
	return scopeObjectValue
}

func (c *classifier) openParen(i int) scope {
	if c.kindAt(i-2) == token.AT {
		if c.current() == scopeDocument && c.header == "directive" {
			if tok := c.at(i - 3); tok != nil && tok.IsKeyword("directive") {
				return scopeArgumentDefs
			}
		}
		return scopeArguments
	}
	switch c.current() {
	case scopeDocument:
		switch c.header {
		case "query", "mutation", "subscription":
			return scopeVariables
		}
	case scopeFields:
		return scopeArgumentDefs
	}
	return scopeArguments
}

func (c *classifier) openBracket(i int) scope {
	switch c.current() {
	case scopeListType:
		return scopeListType
	case scopeVariables, scopeArgumentDefs, scopeFields, scopeInputFields:
		if c.kindAt(i-1) == token.COLON {
			return scopeListType
		}
	}
	return scopeListValue
}

func (c *classifier) name(i int) {
	tok := c.tokens[i]
	prevKeyword := c.prevKeyword
	c.prevKeyword = ""

	switch c.kindAt(i - 1) {
	case token.DOLLAR:
		mods := 0
		if c.current() == scopeVariables && c.kindAt(i+1) == token.COLON {
			mods = modDeclaration
		}
		c.emit(tok, tokenVariable, mods)
		return
	case token.AT:
		mods := 0
		if prev := c.at(i - 2); prev != nil && prev.IsKeyword("directive") {
			mods = modDeclaration
		}
		c.emit(tok, tokenMacro, mods)
		return
	}

	next := c.kindAt(i + 1)
	switch c.current() {
	case scopeDocument:
		c.documentName(tok, prevKeyword, c.kindAt(i-1))
	case scopeSelection:
		switch {
		case c.kindAt(i-1) == token.SPREAD && tok.Value == "on":
			c.emit(tok, tokenKeyword, 0)
		case c.kindAt(i-1) == token.SPREAD:
			c.emit(tok, tokenFunction, 0)
		case c.at(i-1).IsKeyword("on") && c.kindAt(i-2) == token.SPREAD:
			c.emit(tok, tokenType, 0)
		default:
			c.emit(tok, tokenProperty, 0)
		}
	case scopeArguments:
		if next == token.COLON {
			c.emit(tok, tokenParameter, 0)
		} else {
			c.value(tok)
		}
	case scopeObjectValue:
		if next == token.COLON {
			c.emit(tok, tokenProperty, 0)
		} else {
			c.value(tok)
		}
	case scopeListValue:
		c.value(tok)
	case scopeListType:
		c.emit(tok, tokenType, 0)
	case scopeArgumentDefs:
		if next == token.COLON {
			c.emit(tok, tokenParameter, modDeclaration)
		} else {
			c.typeOrValue(i)
		}
	case scopeFields, scopeInputFields:
		if next == token.COLON || next == token.PAREN_L {
			c.emit(tok, tokenProperty, modDeclaration)
		} else {
			c.typeOrValue(i)
		}
	case scopeVariables:
		c.typeOrValue(i)
	case scopeEnumValues:
		c.emit(tok, tokenEnumMember, modDeclaration)
	case scopeSchema:
		if next == token.COLON {
			c.emit(tok, tokenKeyword, 0)
		} else {
			c.emit(tok, tokenType, 0)
		}
	}
}

func (c *classifier) documentName(tok token.Token, prevKeyword string, prev token.Kind) {
	if kind, ok := declaringKeywords[prevKeyword]; ok {
		c.emit(tok, kind, modDeclaration)
		return
	}
	if prevKeyword == "on" || prev == token.PIPE {
		if c.header == "directive" {
			c.emit(tok, tokenEnumMember, 0)
		} else {
			c.emit(tok, tokenType, 0)
		}
		return
	}
	if parser.KEYWORDS[tok.Value] {
		c.emit(tok, tokenKeyword, 0)
		c.prevKeyword = tok.Value
		if tok.Value != "extend" && tok.Value != "on" && tok.Value != "implements" && tok.Value != "repeatable" {
			c.header = tok.Value
		}
		return
	}
	c.emit(tok, tokenType, 0)
}

// typeOrValue handles a name after the colon of a typed declaration or
// after the = of its default value.
func (c *classifier) typeOrValue(i int) {
	if c.kindAt(i-1) == token.COLON {
		c.emit(c.tokens[i], tokenType, 0)
		return
	}
	c.value(c.tokens[i])
}

func (c *classifier) value(tok token.Token) {
	switch tok.Value {
	case "true", "false", "null":
		c.emit(tok, tokenKeyword, 0)
	default:
		c.emit(tok, tokenEnumMember, 0)
	}
}

func (c *classifier) emit(tok token.Token, tokenType, modifiers int) {
	c.out = append(c.out, SemanticToken{
		Line:           uint32(tok.Pos.Line - 1),
		StartChar:      uint32(tok.Pos.Column - 1),
		Length:         uint32(tok.Length),
		TokenType:      tokenType,
		TokenModifiers: modifiers,
	})
}
