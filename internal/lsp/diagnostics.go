package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"gqlsyntax/internal/errors"
	"gqlsyntax/internal/parser"
	"gqlsyntax/token"
)

// ConvertError transforms the error of a failed parse into LSP diagnostics.
// A document has at most one syntax error, so the result holds one entry.
// source is needed to anchor errors raised at the end of input.
func ConvertError(err error, source string) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	d := parser.Diagnose(err)
	pos := d.Position
	if d.EndOfInput {
		pos = errors.NewReporter("", source).EndPosition()
	}
	if pos.Line < 1 {
		pos = token.Position{Line: 1, Column: 1}
	}

	length := d.Length
	if length < 1 {
		length = 1
	}

	start := protocol.Position{
		Line:      uint32(pos.Line - 1),   // Convert to 0-based indexing
		Character: uint32(pos.Column - 1), // Convert to 0-based indexing
	}
	end := start
	end.Character += uint32(length)

	message := d.Message
	if d.Code != "" {
		message = d.Code + ": " + message
	}
	if len(d.Suggestions) > 0 {
		message += "\n" + strings.Join(d.Suggestions, "\n")
	}

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("gqlsyntax"),
		Message:  message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
