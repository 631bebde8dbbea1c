package useridaddr

import (
	"fmt"
	"strings"
)

// EscapedDisplayName renders an arbitrary display-name string as a legal
// RFC 2822 phrase: bare, space-separated atoms when every word is already
// atext, or a single DQUOTE-delimited quoted-string with backslash and
// DQUOTE escaped otherwise. It is the inverse of the Text components a
// display-name phrase parses into.
func EscapedDisplayName(name string) (string, error) {
	if name == "" {
		return `""`, nil
	}
	if isPlainPhrase(name) {
		return name, nil
	}
	return quoteDisplayName(name)
}

// isPlainPhrase reports whether name can be written as one or more atoms
// separated by single spaces, with no quoting needed at all.
func isPlainPhrase(name string) bool {
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if !isAtext(word[i]) {
				return false
			}
		}
	}
	return true
}

// quoteDisplayName wraps name in a quoted-string, escaping DQUOTE, backslash,
// and any NO-WS-CTL byte so the result round-trips as qcontent (§4.5). CR and
// LF have no quoted-pair representation that survives FWS folding, so they
// make the name unrepresentable.
func quoteDisplayName(name string) (string, error) {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '\r' || c == '\n' {
			return "", fmt.Errorf("useridaddr: display name byte %q at offset %d cannot be escaped", c, i)
		}
		if c == '"' || c == '\\' || isNoWSCtl(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String(), nil
}
