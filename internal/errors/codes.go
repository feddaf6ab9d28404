package errors

// Error codes for gqlsyntax diagnostics.
// The codes appear in CLI output and LSP diagnostics so that a failure can
// be looked up independent of the exact message wording.
//
// Error code ranges:
// E0100-E0149: Parser errors
// E0150-E0199: Lexer errors
// E0900-E0999: Reserved for tooling errors

const (
	// Parser errors (E0100-E0104)

	// E0100: A specific token or keyword was required
	ErrorExpectedToken = "E0100"

	// E0101: None of the productions allowed at this point matched
	ErrorExpectedOneOf = "E0101"

	// E0102: true, false, null or on used where a name is reserved
	ErrorReservedWord = "E0102"

	// E0103: An extend clause with nothing to extend
	ErrorEmptyExtension = "E0103"

	// E0104: Tokens left over after the last definition
	ErrorUnterminatedDocument = "E0104"

	// Lexer errors

	// E0150: Source text could not be tokenized
	ErrorLexer = "E0150"

	// Tooling errors

	// E0900: Input file could not be read
	ErrorReadFile = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorExpectedToken:
		return "A specific token or keyword is required at this position"
	case ErrorExpectedOneOf:
		return "No grammar production matches the tokens at this position"
	case ErrorReservedWord:
		return "A reserved word is used where a name is required"
	case ErrorEmptyExtension:
		return "Type system extensions must add at least one clause"
	case ErrorUnterminatedDocument:
		return "Tokens remain after the last complete definition"
	case ErrorLexer:
		return "Source text could not be tokenized"
	case ErrorReadFile:
		return "Input file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0150":
		return "Parser"
	case code >= "E0150" && code < "E0200":
		return "Lexer"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
