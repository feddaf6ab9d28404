package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"gqlsyntax/token"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewSyntaxError creates a new error builder
func NewSyntaxError(code, message string, pos token.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	if length > 0 {
		b.d.Length = length
	}
	return b
}

// AtEndOfInput marks the diagnostic as anchored after the last token
func (b *DiagnosticBuilder) AtEndOfInput() *DiagnosticBuilder {
	b.d.EndOfInput = true
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, message)
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp adds help text to the diagnostic
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.d
}

// Keywords lists the names with grammatical meaning in some position.
// It feeds "did you mean" suggestions.
var Keywords = []string{
	"query", "mutation", "subscription", "fragment", "on",
	"schema", "scalar", "type", "interface", "union", "enum", "input",
	"directive", "extend", "implements", "repeatable",
}

// SyntaxError creates a diagnostic for a parse failure anchored at near.
// A nil near means the input ended before the construct was complete.
func SyntaxError(code, message string, near *token.Token) Diagnostic {
	if near == nil {
		return NewSyntaxError(code, message, token.Position{}).
			AtEndOfInput().
			WithNote("the document ended before this definition was complete").
			Build()
	}

	builder := NewSyntaxError(code, message, near.Pos).WithLength(near.Length)

	switch code {
	case ErrorUnterminatedDocument:
		if near.Kind == token.BRACE_R || near.Kind == token.PAREN_R || near.Kind == token.BRACKET_R {
			builder = builder.WithSuggestion(fmt.Sprintf("remove the unmatched '%s'", near.Kind))
		}
		builder = builder.WithHelp("a document is a sequence of operations, fragments and type system definitions")
	case ErrorReservedWord:
		builder = builder.WithNote("true, false and null are literals and on introduces a type condition")
	case ErrorEmptyExtension:
		builder = builder.WithHelp("an extension must add directives, members or fields")
	}

	if near.Kind == token.NAME && (code == ErrorUnterminatedDocument || code == ErrorExpectedToken || code == ErrorExpectedOneOf) {
		if similar := findSimilarNames(near.Value, Keywords); len(similar) > 0 {
			builder = builder.WithSuggestion(didYouMean(similar))
		}
	}

	return builder.Build()
}

// DirectiveLocationError suggests the closest valid location names.
func DirectiveLocationError(message string, near *token.Token, locations []string) Diagnostic {
	if near == nil {
		return SyntaxError(ErrorExpectedToken, message, nil)
	}
	builder := NewSyntaxError(ErrorExpectedToken, message, near.Pos).WithLength(near.Length)
	if similar := findSimilarNames(near.Value, locations); len(similar) > 0 {
		builder = builder.WithSuggestion(didYouMean(similar))
	}
	return builder.WithNote("valid locations: " + strings.Join(locations, ", ")).Build()
}

// LexError creates a diagnostic for source text that could not be tokenized
func LexError(message string, pos token.Position) Diagnostic {
	return NewSyntaxError(ErrorLexer, message, pos).
		WithHelp("check for unterminated strings and characters outside the GraphQL source alphabet").
		Build()
}

func didYouMean(similar []string) string {
	if len(similar) == 1 {
		return fmt.Sprintf("did you mean '%s'?", similar[0])
	}
	return fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '"))
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate == target || len(candidate) <= 2 {
			continue
		}
		if levenshtein.ComputeDistance(strings.ToLower(target), strings.ToLower(candidate)) <= 2 {
			similar = append(similar, candidate)
		}
	}
	sort.Strings(similar)
	return similar
}
