package parser

import (
	"fmt"

	"gqlsyntax/internal/errors"
	"gqlsyntax/token"
)

// peek returns the current token, or nil at end of input.
func (p *parser) peek() *token.Token {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) *token.Token {
	if p.pos+n >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos+n]
}

func (p *parser) check(kind token.Kind) bool {
	tok := p.peek()
	return tok != nil && tok.Kind == kind
}

func (p *parser) checkKeyword(word string) bool {
	tok := p.peek()
	return tok != nil && tok.IsKeyword(word)
}

func (p *parser) advance() token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// match consumes the current token if it has the given kind.
func (p *parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.pos++
		return true
	}
	return false
}

// expect consumes a token of the given kind or fails fatally with
// "Expected <kind>", or "Expected <alternatives>, or <kind>".
func (p *parser) expect(kind token.Kind, alternatives ...string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	if len(alternatives) > 0 {
		return token.Token{}, p.errorf(errors.ErrorExpectedOneOf, "Expected %s, or %s", alternatives[0], kind)
	}
	return token.Token{}, p.errorf(errors.ErrorExpectedToken, "Expected %s", kind)
}

func (p *parser) expectName() (string, error) {
	tok, err := p.expect(token.NAME)
	return tok.Value, err
}

func (p *parser) expectKeyword(word string) error {
	if p.checkKeyword(word) {
		p.pos++
		return nil
	}
	return p.errorf(errors.ErrorExpectedToken, "Expected %s", word)
}

// errorf builds a fatal error anchored at the current token.
func (p *parser) errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Near: p.near()}
}

// noMatch builds a recoverable failure anchored at the current token.
func (p *parser) noMatch(format string, args ...any) error {
	return &noMatch{err: p.errorf(errors.ErrorExpectedOneOf, format, args...)}
}

func (p *parser) near() *token.Token {
	tok := p.peek()
	if tok == nil {
		return nil
	}
	near := *tok
	return &near
}

// try runs rule and rewinds the cursor if it fails before committing.
// ok is false only for such recoverable failures; fatal errors are returned.
func try[T any](p *parser, rule func() (T, error)) (result T, ok bool, err error) {
	mark := p.pos
	result, err = rule()
	if err == nil {
		return result, true, nil
	}
	var zero T
	if _, recoverable := err.(*noMatch); recoverable {
		p.pos = mark
		return zero, false, nil
	}
	return zero, false, err
}

// oneOf tries each rule in order at the same offset and returns the first
// match. When none matches it fails recoverably with "Unrecognized <what>".
func oneOf[T any](p *parser, what string, rules ...func() (T, error)) (T, error) {
	for _, rule := range rules {
		result, ok, err := try(p, rule)
		if ok || err != nil {
			return result, err
		}
	}
	var zero T
	return zero, p.noMatch("Unrecognized %s", what)
}

// separatedNames parses `sep? elem (sep elem)*` where elem is a name.
func (p *parser) separatedNames(sep token.Kind) ([]string, error) {
	p.match(sep)
	var names []string
	for {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.match(sep) {
			return names, nil
		}
	}
}
