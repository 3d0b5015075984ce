package common

import (
	"strconv"
	"strings"
)

// LooksLikeFlag reports whether a token follows the flag prefix convention.
// A lone "-" is a conventional stdin placeholder and negative numbers are
// values, not flags.
func LooksLikeFlag(tok string) bool {
	if !strings.HasPrefix(tok, "-") || tok == "-" {
		return false
	}
	if _, err := strconv.ParseFloat(tok[1:], 64); err == nil {
		return false
	}
	return true
}

// SplitCommandLine splits a command line string into tokens, honoring
// single and double quotes. It covers the common interactive cases; it is
// not a full shell lexer (no escapes inside quotes, no expansion).
func SplitCommandLine(line string) []string {
	var tokens []string
	var current strings.Builder
	var quote byte
	inToken := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				current.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inToken = true
		case c == ' ' || c == '\t':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteByte(c)
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens
}
