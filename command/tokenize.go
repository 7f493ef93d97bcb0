package command

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a command line into tokens.
//
// Whitespace separates tokens. Outside quotes a comma also ends the current
// token and is dropped. A single or double quote starts a quoted token that
// runs to the matching quote or to the end of input; inside it a backslash
// makes the next character literal. Quoted tokens may be empty. Bytes other
// than separators, quotes and escapes are copied unchanged, including
// invalid UTF-8.
func Tokenize(input string) []string {
	input = strings.TrimFunc(input, isSpace)
	if input == "" {
		return nil
	}

	var tokens []string

	for pos := 0; pos < len(input); {
		current, width := utf8.DecodeRuneInString(input[pos:])

		if isSpace(current) {
			pos += width

			continue
		}

		if current == '"' || current == '\'' {
			var token string

			token, pos = readQuoted(input, pos+width, byte(current))
			tokens = append(tokens, token)

			continue
		}

		start := pos
		for pos < len(input) {
			r, w := utf8.DecodeRuneInString(input[pos:])
			if isSpace(r) || r == ',' {
				break
			}

			pos += w
		}

		if pos > start {
			tokens = append(tokens, input[start:pos])
		}

		if pos < len(input) && input[pos] == ',' {
			pos++
		}
	}

	return tokens
}

// isSpace matches Unicode white space plus the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// readQuoted consumes a quoted span starting right after the opening quote and
// returns the captured text and the position after the closing quote.
func readQuoted(input string, pos int, quote byte) (string, int) {
	var builder strings.Builder

	for pos < len(input) && input[pos] != quote {
		if input[pos] == '\\' {
			pos++
		}

		if pos < len(input) {
			_, width := utf8.DecodeRuneInString(input[pos:])
			builder.WriteString(input[pos : pos+width])
			pos += width
		}
	}

	if pos < len(input) {
		pos++
	}

	return builder.String(), pos
}
