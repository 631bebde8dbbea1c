// Package useridaddr parses RFC 2822 name-addr / addr-spec User ID strings
// (as found in OpenPGP and similar key material) into a sequence of typed
// Components, rather than a single normalized string, so that a caller can
// recover exactly what was said -- display name, embedded comments, the
// address itself -- without losing anything the original bytes carried,
// and so that a non-email URI inside angle brackets degrades to an
// InvalidAddress component instead of failing the whole parse.
//
// The package is a pure function of its input: it does no I/O, keeps no
// state between calls, and never panics; the Parse* functions report every
// malformed input as a *ParseError instead.
package useridaddr

import "strings"

// parseStrict runs fn over the whole of input and requires that it consume
// every token; any unconsumed input (trailing garbage after a production
// that otherwise matched) is reported as a trailing-input error rather
// than silently ignored.
func parseStrict(input string, fn func(p *parser) ([]Component, bool, error)) ([]Component, error) {
	p := newParser(input)
	seq, ok, err := fn(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, parseErrorf(p.offset(), "", p.peekKind(), p.atEOF())
	}
	if !p.atEOF() {
		return nil, parseErrorf(p.offset(), "trailing input", p.peekKind(), p.atEOF())
	}
	return seq, nil
}

// ParseText recognizes the single-token "text" start symbol: any one
// token, used standalone mainly for testing the quoted-pair byte beneath
// it in isolation.
func ParseText(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		if p.atEOF() {
			return nil, false, nil
		}
		txt, _ := p.consumeWholeTokenText()
		return []Component{TextComponent(txt)}, true, nil
	})
}

// ParseFWS recognizes FWS on its own, folding it to the singleton WS
// component.
func ParseFWS(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		if !p.parseFWS() {
			return nil, false, nil
		}
		return []Component{WSComponent()}, true, nil
	})
}

// ParseCText recognizes a single ctext byte: any one byte that is not "(",
// ")", or "\".
func ParseCText(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		switch p.peekKind() {
		case KindLParen, KindRParen, KindBackslash, KindUnknown:
			return nil, false, nil
		}
		b, _, _ := p.consumeByte()
		return []Component{TextComponent(string(b))}, true, nil
	})
}

// ParseQContent recognizes a single qcontent byte: any one byte that is
// not "\" or DQUOTE, or a quoted-pair.
func ParseQContent(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		if _, ok := p.expect(KindBackslash); ok {
			if p.atEOF() {
				return nil, false, parseErrorf(p.offset(), "quoted-pair", KindUnknown, true)
			}
			b, _, _ := p.consumeByte()
			return []Component{TextComponent(string(b))}, true, nil
		}
		switch p.peekKind() {
		case KindDQuote, KindUnknown:
			return nil, false, nil
		}
		b, _, _ := p.consumeByte()
		return []Component{TextComponent(string(b))}, true, nil
	})
}

// ParseDContent recognizes a single dcontent byte: any one byte that is
// not "[", "]", or "\", or a quoted-pair.
func ParseDContent(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		if _, ok := p.expect(KindBackslash); ok {
			if p.atEOF() {
				return nil, false, parseErrorf(p.offset(), "quoted-pair", KindUnknown, true)
			}
			b, _, _ := p.consumeByte()
			return []Component{TextComponent(string(b))}, true, nil
		}
		switch p.peekKind() {
		case KindLBracket, KindRBracket, KindUnknown:
			return nil, false, nil
		}
		b, _, _ := p.consumeByte()
		return []Component{TextComponent(string(b))}, true, nil
	})
}

// ParseComment recognizes one "(" comment ")" as a single Comment
// component.
func ParseComment(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		if _, ok := p.expect(KindLParen); !ok {
			return nil, false, nil
		}
		body, err := p.parseCommentBody()
		if err != nil {
			return nil, false, err
		}
		return []Component{CommentComponent(body)}, true, nil
	})
}

// ParseCfws recognizes CFWS on its own.
func ParseCfws(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		seq, ok := p.parseCfws()
		return seq, ok, nil
	})
}

// ParseAtom recognizes [CFWS] atom_prime [CFWS] as a single Text component
// surrounded by whatever CFWS was present.
func ParseAtom(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		txt, ok := p.tryAtomPrime()
		if !ok {
			p.reset(m)
			return nil, false, nil
		}
		trailing, _ := p.parseCfws()
		return Concat(leading, TextComponent(txt), trailing), true, nil
	})
}

// ParseDotAtom recognizes [CFWS] dot-atom-text [CFWS].
func ParseDotAtom(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		txt, ok := p.parseDotAtomTextIfPresent()
		if !ok {
			p.reset(m)
			return nil, false, nil
		}
		trailing, _ := p.parseCfws()
		return Concat(leading, TextComponent(txt), trailing), true, nil
	})
}

// ParseQuotedString recognizes [CFWS] quoted-string [CFWS].
func ParseQuotedString(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		txt, ok, err := p.tryQuotedStringPrime()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			p.reset(m)
			return nil, false, nil
		}
		trailing, _ := p.parseCfws()
		return Concat(leading, TextComponent(txt), trailing), true, nil
	})
}

// ParseWord recognizes word = atom / quoted-string.
func ParseWord(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseWord()
	})
}

// ParsePhrase recognizes phrase = CFWS? atom_or_quoted_string, i.e. a
// display-name on its own.
func ParsePhrase(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parsePhrase()
	})
}

// ParseAddrSpec recognizes addr-spec = local-part "@" domain.
func ParseAddrSpec(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseAddrSpec()
	})
}

// ParseLocalPart recognizes local-part = dot-atom / quoted-string, in
// isolation.
func ParseLocalPart(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseLocalPart()
	})
}

// ParseDomain recognizes domain = dot-atom / domain-literal, in isolation.
func ParseDomain(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseDomain()
	})
}

// ParseDomainLiteral recognizes [CFWS] domain-literal [CFWS].
func ParseDomainLiteral(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		txt, ok, err := p.parseDomainLiteralIfPresent()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			p.reset(m)
			return nil, false, nil
		}
		trailing, _ := p.parseCfws()
		return Concat(leading, TextComponent(txt), trailing), true, nil
	})
}

// ParseAngleAddr recognizes angle-addr = [CFWS] "<" addr-spec ">" [CFWS],
// with no recovery for non-email content between the angle brackets.
func ParseAngleAddr(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		if p.peekKind() != KindLAngle {
			p.reset(m)
			return nil, false, nil
		}
		seq, err := p.parseAngleAddrPrime()
		if err != nil {
			p.reset(m)
			return nil, false, err
		}
		return Concat(leading, seq), true, nil
	})
}

// ParseNameAddr recognizes name-addr with no addr-spec recovery: a strict
// mode for callers that want a hard failure on anything but a well-formed
// email address inside the angle brackets.
func ParseNameAddr(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseNameAddr()
	})
}

// ParseDisplayName recognizes a display-name, i.e. the same grammar as
// ParsePhrase; kept as its own entry point because display-name is the
// name the rest of the spec (and name-addr's grammar) uses for this role.
func ParseDisplayName(input string) ([]Component, error) {
	return ParsePhrase(input)
}

// ParseAddrSpecOrOther recognizes addr-spec, falling back to a raw
// InvalidAddress component covering the rest of the input if addr-spec
// does not match. It never fails to produce a result for non-empty input.
func ParseAddrSpecOrOther(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		seq, err := p.parseAddrSpecOrOther(KindUnknown)
		return seq, true, err
	})
}

// ParseAngleAddrOrOther recognizes angle-addr with addr_spec_or_other
// recovery for its content.
func ParseAngleAddrOrOther(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		m := p.mark()
		leading, _ := p.parseCfws()
		if p.peekKind() != KindLAngle {
			p.reset(m)
			return nil, false, nil
		}
		seq, err := p.parseAngleAddrOrOther()
		if err != nil {
			p.reset(m)
			return nil, false, err
		}
		return Concat(leading, seq), true, nil
	})
}

// ParseNameAddrOrOther is the package's primary entry point: it parses a
// User ID string -- an optional display-name, followed by an angle-addr
// whose content is either a real addr-spec or raw recovered text -- and
// returns the full folded, boundary-adjusted Component sequence described
// by SPEC_FULL.md §4.
func ParseNameAddrOrOther(input string) ([]Component, error) {
	return parseStrict(input, func(p *parser) ([]Component, bool, error) {
		return p.parseNameAddrOrOther()
	})
}

// DisplayNameOf reconstructs the display-name phrase from seq: the Text
// components before the first Address or InvalidAddress component,
// rejoined with single spaces. It is a lossy projection -- it drops the
// distinction between an unquoted phrase's word-separating WS and a
// quoted string's literal content -- meant for callers that want the
// human-readable name rather than the exact original bytes.
func DisplayNameOf(seq []Component) string {
	end := len(seq)
	for i, c := range seq {
		if c.Kind == Address || c.Kind == InvalidAddress {
			end = i
			break
		}
	}
	var words []string
	for _, c := range seq[:end] {
		if c.Kind == Text {
			words = append(words, c.Str)
		}
	}
	return strings.Join(words, " ")
}

// AddressOf returns the string of the first Address component in seq, and
// whether one was found.
func AddressOf(seq []Component) (string, bool) {
	for _, c := range seq {
		if c.Kind == Address {
			return c.Str, true
		}
	}
	return "", false
}

// InvalidAddressesOf returns every InvalidAddress component in seq.
func InvalidAddressesOf(seq []Component) []Component {
	var out []Component
	for _, c := range seq {
		if c.Kind == InvalidAddress {
			out = append(out, c)
		}
	}
	return out
}

// CommentsOf returns the text of every Comment component in seq, in order.
func CommentsOf(seq []Component) []string {
	var out []string
	for _, c := range seq {
		if c.Kind == Comment {
			out = append(out, c.Str)
		}
	}
	return out
}
