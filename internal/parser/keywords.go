package parser

import "gqlsyntax/internal/ast"

// KEYWORDS are the names that introduce a definition or a clause. They are
// ordinary names to the lexer; only their position gives them meaning.
var KEYWORDS = map[string]bool{
	"query":        true,
	"mutation":     true,
	"subscription": true,
	"fragment":     true,
	"on":           true,
	"schema":       true,
	"scalar":       true,
	"type":         true,
	"interface":    true,
	"union":        true,
	"enum":         true,
	"input":        true,
	"directive":    true,
	"extend":       true,
	"implements":   true,
	"repeatable":   true,
}

// reservedValueNames can never be enum values.
var reservedValueNames = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}

func directiveLocationNames() []string {
	names := make([]string, 0, len(ast.DirectiveLocations))
	for _, loc := range ast.DirectiveLocations {
		names = append(names, string(loc))
	}
	return names
}
