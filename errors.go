package useridaddr

import (
	"fmt"
	"strings"
)

// ParseError is a syntactic error from the grammar: the byte offset it was
// detected at, the set of token kinds the grammar would have accepted, and
// the token actually found (or EOF). Lexical errors cannot occur -- Lex
// classifies every byte -- so this is the only error shape the Parse*
// functions produce (EscapedDisplayName reports an unrepresentable byte with
// a plain error instead), matching imapparser.ParseError's role but widened with the
// position and expected-set spec.md requires of callers doing
// security-sensitive address matching.
type ParseError struct {
	Pos      int
	Expected []Kind
	Got      Kind
	GotEOF   bool
	Context  string
}

func (e *ParseError) Error() string {
	var got string
	if e.GotEOF {
		got = "end of input"
	} else {
		got = e.Got.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "useridaddr: ")
	if e.Context != "" {
		fmt.Fprintf(&b, "%s: ", e.Context)
	}
	fmt.Fprintf(&b, "at byte %d: ", e.Pos)
	if len(e.Expected) == 0 {
		fmt.Fprintf(&b, "unexpected %s", got)
		return b.String()
	}
	fmt.Fprintf(&b, "expected ")
	for i, k := range e.Expected {
		if i > 0 {
			b.WriteString(" or ")
		}
		b.WriteString(k.String())
	}
	fmt.Fprintf(&b, ", got %s", got)
	return b.String()
}

func parseErrorf(pos int, context string, got Kind, gotEOF bool, expected ...Kind) *ParseError {
	return &ParseError{Pos: pos, Expected: expected, Got: got, GotEOF: gotEOF, Context: context}
}
