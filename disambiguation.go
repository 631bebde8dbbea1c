package useridaddr

// This file holds the productions whose job is resolving an ambiguity the
// bare RFC 2822 grammar leaves open: which side of a boundary an optional
// CFWS run attaches to, how a phrase segments into words when atom and
// quoted-string both match, how name-addr's optional leading whitespace is
// represented, and how a non-email URI inside angle brackets is recovered
// as an InvalidAddress instead of aborting the whole parse.

// tryAtomPrime recognizes a bare word-level atom: exactly one atext run,
// with no dots joining further runs (that's dot-atom's job, used only in
// addr-spec) and no CFWS of its own (that's phrase's job).
func (p *parser) tryAtomPrime() (string, bool) {
	return p.consumeOtherTextIfPresent()
}

// parseAtomOrQuotedString implements:
//
//	atom_or_quoted_string := atom_prime cfws_or_quoted_string?
//	                       | quoted_string_prime+ cfws_or_atom?
func (p *parser) parseAtomOrQuotedString() ([]Component, bool, error) {
	if txt, ok := p.tryAtomPrime(); ok {
		seq := []Component{TextComponent(txt)}
		more, hasMore, err := p.parseCfwsOrQuotedString()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			seq = append(seq, more...)
		}
		return Merge(seq), true, nil
	}
	if qs, ok, err := p.tryQuotedStringPrime(); err != nil {
		return nil, false, err
	} else if ok {
		seq := []Component{TextComponent(qs)}
		for {
			qs2, ok2, err2 := p.tryQuotedStringPrime()
			if err2 != nil {
				return nil, false, err2
			}
			if !ok2 {
				break
			}
			seq = append(seq, TextComponent(qs2))
		}
		more, hasMore, err := p.parseCfwsOrAtom()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			seq = append(seq, more...)
		}
		return Merge(seq), true, nil
	}
	return nil, false, nil
}

// parseCfwsOrQuotedString implements:
//
//	cfws_or_quoted_string := CFWS (atom_or_quoted_string)?
//	                       | quoted_string_prime+ (cfws_or_atom)?
func (p *parser) parseCfwsOrQuotedString() ([]Component, bool, error) {
	m := p.mark()
	cfws, sawCfws := p.parseCfws()
	if sawCfws {
		more, hasMore, err := p.parseAtomOrQuotedString()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			return Concat(cfws, more), true, nil
		}
		return cfws, true, nil
	}
	p.reset(m)
	if qs, ok, err := p.tryQuotedStringPrime(); err != nil {
		return nil, false, err
	} else if ok {
		seq := []Component{TextComponent(qs)}
		for {
			qs2, ok2, err2 := p.tryQuotedStringPrime()
			if err2 != nil {
				return nil, false, err2
			}
			if !ok2 {
				break
			}
			seq = append(seq, TextComponent(qs2))
		}
		more, hasMore, err := p.parseCfwsOrAtom()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			seq = append(seq, more...)
		}
		return Merge(seq), true, nil
	}
	return nil, false, nil
}

// parseCfwsOrAtom implements:
//
//	cfws_or_atom := CFWS (atom_or_quoted_string)?
//	              | atom_prime (cfws_or_quoted_string)?
func (p *parser) parseCfwsOrAtom() ([]Component, bool, error) {
	m := p.mark()
	cfws, sawCfws := p.parseCfws()
	if sawCfws {
		more, hasMore, err := p.parseAtomOrQuotedString()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			return Concat(cfws, more), true, nil
		}
		return cfws, true, nil
	}
	p.reset(m)
	if txt, ok := p.tryAtomPrime(); ok {
		seq := []Component{TextComponent(txt)}
		more, hasMore, err := p.parseCfwsOrQuotedString()
		if err != nil {
			return nil, false, err
		}
		if hasMore {
			seq = append(seq, more...)
		}
		return Merge(seq), true, nil
	}
	return nil, false, nil
}

// parseWord is word = atom / quoted-string, i.e. exactly one step of
// atom_or_quoted_string's leading alternative -- used only where the
// grammar wants a single word rather than a whole phrase.
func (p *parser) parseWord() ([]Component, bool, error) {
	if txt, ok := p.tryAtomPrime(); ok {
		return []Component{TextComponent(txt)}, true, nil
	}
	if qs, ok, err := p.tryQuotedStringPrime(); err != nil {
		return nil, false, err
	} else if ok {
		return []Component{TextComponent(qs)}, true, nil
	}
	return nil, false, nil
}

// parsePhrase is phrase = CFWS? atom_or_quoted_string -- a display-name is
// one phrase.
func (p *parser) parsePhrase() ([]Component, bool, error) {
	m := p.mark()
	lead, _ := p.parseCfws()
	words, ok, err := p.parseAtomOrQuotedString()
	if err != nil {
		p.reset(m)
		return nil, false, err
	}
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	return Concat(lead, words), true, nil
}

// commentsOnly filters a folded CFWS component sequence down to just its
// Comment components, dropping the separating WS. This is how the
// addr-spec boundary policies below keep a comment that sits against the
// "@" sign visible while treating the whitespace around it as
// insignificant glue.
func commentsOnly(seq []Component) []Component {
	var out []Component
	for _, c := range seq {
		if c.Kind == Comment {
			out = append(out, c)
		}
	}
	return out
}

// dotAtomLeft parses dot-atom = [CFWS] dot-atom-text [CFWS], moving the
// trailing CFWS's comments before the atom text so the atom text is always
// the last component of the returned sequence -- local-part's policy.
func (p *parser) dotAtomLeft() ([]Component, bool, error) {
	m := p.mark()
	leading, _ := p.parseCfws()
	text, ok := p.parseDotAtomTextIfPresent()
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	trailing, _ := p.parseCfws()
	seq := Concat(leading, commentsOnly(trailing), TextComponent(text))
	return seq, true, nil
}

// quotedStringLeft is local-part's other alternative: quoted-string, with
// the same trailing-CFWS-before-text repositioning.
func (p *parser) quotedStringLeft() ([]Component, bool, error) {
	m := p.mark()
	leading, _ := p.parseCfws()
	text, ok, err := p.tryQuotedStringPrime()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	trailing, _ := p.parseCfws()
	seq := Concat(leading, commentsOnly(trailing), TextComponent(text))
	return seq, true, nil
}

// dotAtomRight parses dot-atom, moving the leading CFWS's comments after
// the atom text so the atom text is always the first component of the
// returned sequence -- domain's policy.
func (p *parser) dotAtomRight() ([]Component, bool, error) {
	m := p.mark()
	leading, _ := p.parseCfws()
	text, ok := p.parseDotAtomTextIfPresent()
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	trailing, _ := p.parseCfws()
	seq := Concat(TextComponent(text), commentsOnly(leading), trailing)
	return seq, true, nil
}

// domainLiteralRight is domain's other alternative: domain-literal, with
// the same leading-CFWS-after-text repositioning.
func (p *parser) domainLiteralRight() ([]Component, bool, error) {
	m := p.mark()
	leading, _ := p.parseCfws()
	text, ok, err := p.parseDomainLiteralIfPresent()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	trailing, _ := p.parseCfws()
	seq := Concat(TextComponent(text), commentsOnly(leading), trailing)
	return seq, true, nil
}

// parseLocalPart tries local-part's two alternatives in order.
func (p *parser) parseLocalPart() ([]Component, bool, error) {
	if seq, ok, err := p.dotAtomLeft(); err != nil || ok {
		return seq, ok, err
	}
	return p.quotedStringLeft()
}

// parseDomain tries domain's two alternatives in order.
func (p *parser) parseDomain() ([]Component, bool, error) {
	if seq, ok, err := p.dotAtomRight(); err != nil || ok {
		return seq, ok, err
	}
	return p.domainLiteralRight()
}

// parseAddrSpec is addr-spec = local-part "@" domain, assembled so that
// the comments straddling "@" on either side surface immediately before
// the single Address component they surround, and the insignificant
// whitespace between local-part/domain and "@" is dropped entirely. See
// TestParseAddrSpecBoundaryComments for the worked example of this ordering
// (not an alternating WS/Comment/WS layout).
func (p *parser) parseAddrSpec() ([]Component, bool, error) {
	m := p.mark()
	localSeq, ok, err := p.parseLocalPart()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	if _, ok := p.expect(KindAt); !ok {
		p.reset(m)
		return nil, false, nil
	}
	domainSeq, ok, err := p.parseDomain()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, parseErrorf(p.offset(), "addr-spec", p.peekKind(), p.atEOF())
	}
	localText := localSeq[len(localSeq)-1]
	domainText := domainSeq[0]
	addr := localText.Str + "@" + domainText.Str
	localLeftover := localSeq[:len(localSeq)-1]
	domainLeftover := domainSeq[1:]
	return Concat(localLeftover, domainLeftover, AddressComponent(addr)), true, nil
}

// parseAngleAddrPrime is angle-addr without its own leading CFWS:
// "<" addr-spec ">" [CFWS]. name-addr supplies the leading CFWS itself, via
// one of its own two alternatives.
func (p *parser) parseAngleAddrPrime() ([]Component, error) {
	if _, ok := p.expect(KindLAngle); !ok {
		return nil, parseErrorf(p.offset(), "angle-addr", p.peekKind(), p.atEOF(), KindLAngle)
	}
	seq, ok, err := p.parseAddrSpec()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, parseErrorf(p.offset(), "angle-addr", p.peekKind(), p.atEOF())
	}
	if _, ok := p.expect(KindRAngle); !ok {
		return nil, parseErrorf(p.offset(), "angle-addr", p.peekKind(), p.atEOF(), KindRAngle)
	}
	trailing, _ := p.parseCfws()
	return Concat(seq, trailing), nil
}

// parseNameAddr implements name-addr's two alternatives:
//
//	name_addr := display_name? angle_addr_prime
//	           | CFWS angle_addr_prime
//
// so that leading whitespace with no display-name (e.g. " <a@b>") is still
// represented, as a WS component, instead of being silently swallowed.
func (p *parser) parseNameAddr() ([]Component, bool, error) {
	m := p.mark()
	dn, dnOK, err := p.parsePhrase()
	if err != nil {
		p.reset(m)
		return nil, false, err
	}
	if dnOK {
		aa, err := p.parseAngleAddrPrime()
		if err != nil {
			p.reset(m)
			return nil, false, err
		}
		return Concat(dn, aa), true, nil
	}
	cfws, _ := p.parseCfws()
	if p.peekKind() != KindLAngle {
		p.reset(m)
		return nil, false, nil
	}
	aa, err := p.parseAngleAddrPrime()
	if err != nil {
		p.reset(m)
		return nil, false, err
	}
	return Concat(cfws, aa), true, nil
}

// parseAddrSpecOrOther implements the error-recovery production that lets
// a non-email URI inside angle brackets (e.g. "<tel:+1-555-0100>") survive
// as an InvalidAddress component instead of failing the whole parse: if
// addr-spec does not match starting here, everything up to (but not
// including) the next ">" token or end of input is captured raw; a preceding
// backslash does not escape that ">".
func (p *parser) parseAddrSpecOrOther(closing Kind) ([]Component, error) {
	m := p.mark()
	var origErr error
	if seq, ok, err := p.parseAddrSpec(); err != nil {
		// A hard failure partway through addr-spec (bad domain, unterminated
		// domain-literal, ...) is just as much "not a real address" as a soft
		// no-match: recover it the same way, keeping the original error to
		// report on the InvalidAddress component instead of a generic one.
		origErr = err
		p.reset(m)
	} else if ok {
		if p.peekKind() == closing || p.atEOF() {
			return seq, nil
		}
		// addr-spec matched a prefix but did not consume everything up to
		// the closing delimiter; treat the whole span as other content.
		p.reset(m)
	}
	start := p.offset()
	for p.peekKind() != closing && !p.atEOF() {
		p.consumeWholeTokenText()
	}
	raw := p.input[start:p.offset()]
	if origErr == nil {
		origErr = parseErrorf(start, "addr-spec", p.peekKind(), p.atEOF())
	}
	return []Component{InvalidAddressComponent(origErr, []byte(raw))}, nil
}

// parseAngleAddrOrOther is angle-addr with addr_spec_or_other in place of
// addr-spec: "<" addr_spec_or_other ">" [CFWS].
func (p *parser) parseAngleAddrOrOther() ([]Component, error) {
	if _, ok := p.expect(KindLAngle); !ok {
		return nil, parseErrorf(p.offset(), "angle-addr", p.peekKind(), p.atEOF(), KindLAngle)
	}
	seq, err := p.parseAddrSpecOrOther(KindRAngle)
	if err != nil {
		return nil, err
	}
	if _, ok := p.expect(KindRAngle); !ok {
		return nil, parseErrorf(p.offset(), "angle-addr", p.peekKind(), p.atEOF(), KindRAngle)
	}
	trailing, _ := p.parseCfws()
	return Concat(seq, trailing), nil
}

// parseNameAddrOrOther is the package's main entry-point grammar:
// name-addr with addr_spec_or_other recovery built in.
func (p *parser) parseNameAddrOrOther() ([]Component, bool, error) {
	m := p.mark()
	dn, dnOK, err := p.parsePhrase()
	if err != nil {
		p.reset(m)
		return nil, false, err
	}
	if dnOK {
		aa, err := p.parseAngleAddrOrOther()
		if err != nil {
			p.reset(m)
			return nil, false, err
		}
		return Concat(dn, aa), true, nil
	}
	cfws, _ := p.parseCfws()
	if p.peekKind() != KindLAngle {
		p.reset(m)
		return nil, false, nil
	}
	aa, err := p.parseAngleAddrOrOther()
	if err != nil {
		p.reset(m)
		return nil, false, err
	}
	return Concat(cfws, aa), true, nil
}
