package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// unquote resolves the escape sequences of a "quoted" string literal.
func unquote(lit string) (string, error) {
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, err := hexRune(body, i+1)
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i+1:], `\u`) {
				if low, err := hexRune(body, i+3); err == nil {
					if pair := utf16.DecodeRune(r, low); pair != unicode.ReplacementChar {
						r = pair
						i += 6
					}
				}
			}
			b.WriteRune(r)
		default:
			return "", errors.Errorf("invalid escape sequence \\%c", body[i])
		}
	}
	return b.String(), nil
}

func hexRune(s string, start int) (rune, error) {
	if start+4 > len(s) {
		return 0, errors.New("incomplete unicode escape sequence")
	}
	n, err := strconv.ParseUint(s[start:start+4], 16, 32)
	if err != nil {
		return 0, errors.Errorf("invalid unicode escape sequence \\u%s", s[start:start+4])
	}
	return rune(n), nil
}

// blockStringValue applies the block string rules to the raw text between
// the triple quotes: \""" is unescaped, the common indentation of all but
// the first line is removed, and leading and trailing blank lines are dropped.
func blockStringValue(raw string) string {
	raw = strings.ReplaceAll(raw, `\"""`, `"""`)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if commonIndent < 0 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(line string) bool {
	return leadingWhitespace(line) == len(line)
}
