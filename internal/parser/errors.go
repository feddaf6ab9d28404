package parser

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// Error is a syntax error anchored to the token nearest the failure.
// Near is nil when the input ended before the construct was complete.
type Error struct {
	Code    string
	Message string
	Near    *token.Token
}

func (e *Error) Error() string {
	if e.Near == nil {
		return e.Message + " at end of input"
	}
	if e.Near.Pos.Line == 0 {
		return fmt.Sprintf("%s near %s", e.Message, e.Near)
	}
	return fmt.Sprintf("%s: %s near %s", e.Near.Pos, e.Message, e.Near)
}

// Diagnostic converts the error for rendering by errors.Reporter.
func (e *Error) Diagnostic() errors.Diagnostic {
	if e.Message == msgExpectedDirectiveLocation {
		return errors.DirectiveLocationError(e.Message, e.Near, directiveLocationNames())
	}
	return errors.SyntaxError(e.Code, e.Message, e.Near)
}

// MarshalJSON renders the error in the fixture format:
// {"message": ..., "tokenNear": {"type", "value", "line", "column"}}.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := map[string]any{"message": e.Message}
	if e.Near != nil {
		near := map[string]any{"type": e.Near.Kind.String()}
		switch e.Near.Kind {
		case token.NAME, token.INT, token.FLOAT, token.STRING:
			near["value"] = e.Near.Value
		}
		if e.Near.Pos.Line > 0 {
			near["line"] = e.Near.Pos.Line
			near["column"] = e.Near.Pos.Column
		}
		out["tokenNear"] = near
	}
	return json.Marshal(out)
}

// noMatch is a failure before a rule's commitment point. try rewinds on it
// and lets the caller attempt the next alternative; everywhere else it is
// surfaced as the wrapped *Error.
type noMatch struct {
	err *Error
}

func (n *noMatch) Error() string { return n.err.Error() }

// commit turns a recoverable failure into a fatal one. A non-empty expected
// replaces the message with "Expected <expected>".
func commit(err error, expected string) error {
	nm, ok := err.(*noMatch)
	if !ok {
		return err
	}
	if expected == "" {
		return nm.err
	}
	return &Error{Code: errors.ErrorExpectedOneOf, Message: "Expected " + expected, Near: nm.err.Near}
}

// asError unwraps a noMatch that escaped to an entry point.
func asError(err error) *Error {
	switch e := err.(type) {
	case *noMatch:
		return e.err
	case *Error:
		return e
	}
	return &Error{Code: errors.ErrorExpectedOneOf, Message: err.Error()}
}

const msgExpectedDirectiveLocation = "Expected DirectiveLocation"
