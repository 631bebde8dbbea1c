package useridaddr

import "strings"

// This file holds the grammar productions that do not themselves carry any
// disambiguation policy: comments, CFWS, dot-atom-text, quoted strings, and
// domain literals. The productions whose whole purpose is resolving an
// ambiguity in RFC 2822's grammar (FWS/CFWS attachment at the addr-spec
// boundary, phrase segmentation, name-addr leading whitespace, and the
// non-email-URI recovery path) live in disambiguation.go.

// parseCfws recognizes CFWS = 1*([FWS] comment) [FWS] / FWS, already folded
// into its component form: [WS] or [WS, Comment, WS, Comment, ...]. It
// reports whether anything was consumed at all.
func (p *parser) parseCfws() ([]Component, bool) {
	var out []Component
	sawAny := false
	for {
		m := p.mark()
		leadingWS := p.parseFWS()
		if p.peekKind() == KindLParen {
			p.expect(KindLParen)
			body, err := p.parseCommentBody()
			if err != nil {
				p.reset(m)
				break
			}
			if leadingWS {
				out = append(out, WSComponent())
			}
			out = append(out, CommentComponent(body))
			sawAny = true
			continue
		}
		if leadingWS {
			out = append(out, WSComponent())
			sawAny = true
			continue
		}
		p.reset(m)
		break
	}
	return Merge(out), sawAny
}

// parseCommentBody parses the content of a comment up to and including its
// closing RPAREN; the leading LPAREN must already have been consumed.
// Nested comments are re-parenthesized into the flattened text, per the
// open question resolved in SPEC_FULL.md §9.
func (p *parser) parseCommentBody() (string, error) {
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for {
		if p.parseFWS() {
			flush()
		}
		if _, ok := p.expect(KindRParen); ok {
			flush()
			return strings.Join(parts, " "), nil
		}
		if p.atEOF() {
			return "", parseErrorf(p.offset(), "comment", KindUnknown, true, KindRParen)
		}
		if _, ok := p.expect(KindLParen); ok {
			inner, err := p.parseCommentBody()
			if err != nil {
				return "", err
			}
			flush()
			parts = append(parts, "("+inner+")")
			continue
		}
		if _, ok := p.expect(KindBackslash); ok {
			if p.atEOF() {
				return "", parseErrorf(p.offset(), "quoted-pair", KindUnknown, true)
			}
			ch, _, _ := p.consumeByte()
			// Escaped bytes join whatever ctext run they sit in rather than
			// becoming their own space-separated part -- only real FWS (above)
			// and nested comments break a run.
			cur.WriteByte(ch)
			continue
		}
		part, ok := p.consumeCtextRun()
		if !ok {
			return "", parseErrorf(p.offset(), "comment", p.peekKind(), p.atEOF(), KindRParen)
		}
		cur.WriteString(part)
	}
}

// consumeCtextRun gathers a maximal run of tokens that are not RPAREN,
// LPAREN, BACKSLASH, WSP, or EOF into one literal string.
func (p *parser) consumeCtextRun() (string, bool) {
	var b strings.Builder
	any := false
	for {
		switch p.peekKind() {
		case KindRParen, KindLParen, KindBackslash, KindWSP, KindUnknown:
			if any {
				return b.String(), true
			}
			return "", false
		}
		txt, _ := p.consumeWholeTokenText()
		b.WriteString(txt)
		any = true
	}
}

// tryQuotedStringPrime recognizes quoted-string without its own optional
// surrounding CFWS: DQUOTE *([FWS] qcontent) [FWS] DQUOTE. ok is false (with
// a nil error) only when there is no leading DQUOTE at all, so callers can
// treat that as "not a quoted string" rather than a hard failure; once the
// opening DQUOTE is consumed, any further problem is a real parse error.
func (p *parser) tryQuotedStringPrime() (string, bool, error) {
	if _, ok := p.expect(KindDQuote); !ok {
		return "", false, nil
	}
	var b strings.Builder
	for {
		if p.parseFWS() {
			b.WriteByte(' ')
			continue
		}
		if _, ok := p.expect(KindDQuote); ok {
			return b.String(), true, nil
		}
		if p.atEOF() {
			return "", true, parseErrorf(p.offset(), "quoted-string", KindUnknown, true, KindDQuote)
		}
		if _, ok := p.expect(KindBackslash); ok {
			if p.atEOF() {
				return "", true, parseErrorf(p.offset(), "quoted-pair", KindUnknown, true)
			}
			ch, _, _ := p.consumeByte()
			b.WriteByte(ch)
			continue
		}
		txt, _ := p.consumeWholeTokenText()
		b.WriteString(txt)
	}
}

// parseDotAtomTextIfPresent recognizes dot-atom-text = 1*atext *("." 1*atext),
// returning false without consuming anything if the current token is not
// an atext run.
func (p *parser) parseDotAtomTextIfPresent() (string, bool) {
	first, ok := p.consumeOtherTextIfPresent()
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteString(first)
	for {
		m := p.mark()
		if _, ok := p.expect(KindDot); !ok {
			break
		}
		seg, ok := p.consumeOtherTextIfPresent()
		if !ok {
			p.reset(m)
			break
		}
		b.WriteByte('.')
		b.WriteString(seg)
	}
	return b.String(), true
}

// parseDomainLiteralIfPresent recognizes domain-literal = "[" *([FWS]
// dcontent) [FWS] "]", returning the bracketed text including its brackets
// (the brackets are part of how a domain literal is represented in an
// address, so Domain's Text component keeps them).
func (p *parser) parseDomainLiteralIfPresent() (string, bool, error) {
	if _, ok := p.expect(KindLBracket); !ok {
		return "", false, nil
	}
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for {
		if p.parseFWS() {
			flush()
		}
		if _, ok := p.expect(KindRBracket); ok {
			flush()
			return "[" + strings.Join(parts, " ") + "]", true, nil
		}
		if p.atEOF() {
			return "", true, parseErrorf(p.offset(), "domain-literal", KindUnknown, true, KindRBracket)
		}
		if _, ok := p.expect(KindBackslash); ok {
			if p.atEOF() {
				return "", true, parseErrorf(p.offset(), "quoted-pair", KindUnknown, true)
			}
			ch, _, _ := p.consumeByte()
			cur.WriteByte(ch)
			continue
		}
		part, ok := p.consumeDtextRun()
		if !ok {
			return "", true, parseErrorf(p.offset(), "domain-literal", p.peekKind(), p.atEOF(), KindRBracket)
		}
		cur.WriteString(part)
	}
}

// consumeDtextRun gathers a maximal run of tokens that are not RBRACKET,
// LBRACKET, BACKSLASH, WSP, or EOF into one literal string.
func (p *parser) consumeDtextRun() (string, bool) {
	var b strings.Builder
	any := false
	for {
		switch p.peekKind() {
		case KindRBracket, KindLBracket, KindBackslash, KindWSP, KindUnknown:
			if any {
				return b.String(), true
			}
			return "", false
		}
		txt, _ := p.consumeWholeTokenText()
		b.WriteString(txt)
		any = true
	}
}
