// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type Kind int

const (
	ILLEGAL Kind = iota

	// Literals
	NAME   // query, Foo, __typename ...
	INT    // 42
	FLOAT  // 4.2e1
	STRING // "text" or """block"""

	// Punctuators
	DOLLAR    // $
	COLON     // :
	EQUALS    // =
	AT        // @
	PAREN_L   // (
	PAREN_R   // )
	BRACKET_L // [
	BRACKET_R // ]
	BRACE_L   // {
	BRACE_R   // }
	BANG      // !
	PIPE      // |
	AMP       // &
	SPREAD    // ...
)

var kindNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	NAME:      "name",
	INT:       "int",
	FLOAT:     "float",
	STRING:    "string",
	DOLLAR:    "$",
	COLON:     ":",
	EQUALS:    "=",
	AT:        "@",
	PAREN_L:   "(",
	PAREN_R:   ")",
	BRACKET_L: "[",
	BRACKET_R: "]",
	BRACE_L:   "{",
	BRACE_R:   "}",
	BANG:      "!",
	PIPE:      "|",
	AMP:       "&",
	SPREAD:    "...",
}

// String returns the spelling used in "Expected ..." messages.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var punctuators = map[string]Kind{
	"$":   DOLLAR,
	":":   COLON,
	"=":   EQUALS,
	"@":   AT,
	"(":   PAREN_L,
	")":   PAREN_R,
	"[":   BRACKET_L,
	"]":   BRACKET_R,
	"{":   BRACE_L,
	"}":   BRACE_R,
	"!":   BANG,
	"|":   PIPE,
	"&":   AMP,
	"...": SPREAD,
}

func LookupPunctuator(text string) (Kind, bool) {
	k, ok := punctuators[text]
	return k, ok
}

type Position struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based
	Offset   int // 0-based byte offset
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Token is one lexical unit. Value is set for NAME, INT, FLOAT and STRING;
// for strings it holds the processed text and Block records """ syntax.
type Token struct {
	Kind  Kind
	Value string
	Block bool
	Pos   Position
	// Length is the width of the source text in bytes, used for diagnostics.
	Length int
}

func (t Token) String() string {
	switch t.Kind {
	case NAME, INT, FLOAT:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	case STRING:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Kind.String())
	}
}

// IsKeyword reports whether t is a name token spelled word.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == NAME && t.Value == word
}
