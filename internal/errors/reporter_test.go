package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gqlsyntax/token"
)

func TestReporterFormatsSyntaxError(t *testing.T) {
	source := `query Hero {
  hero {
    name
  }
}}`

	reporter := NewReporter("hero.graphql", source)

	near := token.Token{Kind: token.BRACE_R, Pos: token.Position{Line: 5, Column: 2, Offset: 37}, Length: 1}
	d := SyntaxError(ErrorUnterminatedDocument, "Unterminated document", &near)
	formatted := reporter.FormatError(d)

	// Should contain error level and code
	assert.Contains(t, formatted, "error["+ErrorUnterminatedDocument+"]")
	assert.Contains(t, formatted, "Unterminated document")

	// Should contain location
	assert.Contains(t, formatted, "hero.graphql:5:2")

	// Should point at the stray brace and suggest removing it
	assert.Contains(t, formatted, "}}")
	assert.Contains(t, formatted, "remove the unmatched '}'")
}

func TestSyntaxErrorAtEndOfInput(t *testing.T) {
	source := "type Query {\n  name: String\n"
	reporter := NewReporter("schema.graphql", source)

	d := SyntaxError(ErrorExpectedToken, "Expected }", nil)
	assert.True(t, d.EndOfInput, "nil token should mark the end of input")
	assert.NotEmpty(t, d.Notes, "end of input errors explain that the document was cut short")

	formatted := reporter.FormatError(d)
	assert.Contains(t, formatted, "schema.graphql:3:1", "end of input is reported after the last line")
	assert.Contains(t, formatted, "ended before")
}

func TestKeywordSuggestions(t *testing.T) {
	near := token.Token{Kind: token.NAME, Value: "qurey", Pos: token.Position{Line: 1, Column: 1}, Length: 5}

	d := SyntaxError(ErrorUnterminatedDocument, "Unterminated document", &near)
	assert.Equal(t, ErrorUnterminatedDocument, d.Code)
	assert.Equal(t, 5, d.Length)
	assert.Len(t, d.Suggestions, 1)
	assert.Contains(t, d.Suggestions[0], "did you mean 'query'")

	// Reserved words get an explanatory note rather than a suggestion
	near = token.Token{Kind: token.NAME, Value: "null", Pos: token.Position{Line: 1, Column: 8}, Length: 4}
	d = SyntaxError(ErrorReservedWord, "EnumValue can't be one of true, false, or null", &near)
	assert.Empty(t, d.Suggestions)
	assert.Len(t, d.Notes, 1)
}

func TestDirectiveLocationError(t *testing.T) {
	near := token.Token{Kind: token.NAME, Value: "FEILD", Pos: token.Position{Line: 1, Column: 20}, Length: 5}

	d := DirectiveLocationError("Expected DirectiveLocation", &near, []string{"FIELD", "FIELD_DEFINITION", "QUERY"})
	assert.Equal(t, ErrorExpectedToken, d.Code)
	assert.Len(t, d.Suggestions, 1)
	assert.Contains(t, d.Suggestions[0], "did you mean 'FIELD'")
	assert.Contains(t, d.Notes[0], "FIELD_DEFINITION")
}

func TestLexErrorHelp(t *testing.T) {
	d := LexError(`unterminated string`, token.Position{Line: 2, Column: 3})
	assert.Equal(t, ErrorLexer, d.Code)
	assert.Equal(t, "Lexer", GetErrorCategory(d.Code))
	assert.NotEmpty(t, d.HelpText)
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewReporter("test.graphql", `query { variable }`)

	// "variable" is 8 chars at column 9
	marker := reporter.createMarker(9, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 8, spaces) // column 9 means 8 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestSimilarNameFinding(t *testing.T) {
	similar := findSimilarNames("intreface", Keywords)
	assert.Contains(t, similar, "interface")

	similar = findSimilarNames("Scalar", Keywords)
	assert.Contains(t, similar, "scalar", "matching ignores case")

	// exact matches are not suggestions
	similar = findSimilarNames("type", Keywords)
	assert.NotContains(t, similar, "type")

	similar = findSimilarNames("verydifferent", Keywords)
	assert.Empty(t, similar)
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorExpectedToken))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorUnterminatedDocument))
	assert.Equal(t, "Tooling", GetErrorCategory(ErrorReadFile))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
	assert.Contains(t, GetErrorDescription(ErrorEmptyExtension), "extensions")
}

func TestErrorLevels(t *testing.T) {
	reporter := NewReporter("test.graphql", `test`)
	pos := token.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(Diagnostic{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(Diagnostic{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
