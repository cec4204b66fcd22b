package player

import (
	"strings"
	"unicode"
)

// ParseArgs splits a configured argument string on whitespace.  Single or double quotes group words, and a quote
// of one kind is literal inside a quote of the other kind.  An unterminated quote runs to the end of the string.
func ParseArgs(argsString string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range argsString {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if inWord {
		args = append(args, current.String())
	}

	return args
}
