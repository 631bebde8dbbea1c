package useridaddr

import "testing"

func TestLex(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Token
	}{
		{"empty", "", nil},
		{
			"atom",
			"jdoe",
			[]Token{{KindOther, 0, 4}},
		},
		{
			"dot atom",
			"j.doe",
			[]Token{{KindOther, 0, 1}, {KindDot, 1, 2}, {KindOther, 2, 5}},
		},
		{
			"wsp run",
			"a  b",
			[]Token{{KindOther, 0, 1}, {KindWSP, 1, 3}, {KindOther, 3, 4}},
		},
		{
			"specials",
			"<a@b>",
			[]Token{
				{KindLAngle, 0, 1},
				{KindOther, 1, 2},
				{KindAt, 2, 3},
				{KindOther, 3, 4},
				{KindRAngle, 4, 5},
			},
		},
		{
			"nul byte is other",
			"a\x00b",
			[]Token{{KindOther, 0, 3}},
		},
		{
			"high byte is other",
			"a\xffb",
			[]Token{{KindOther, 0, 3}},
		},
		{
			"crlf",
			"a\r\nb",
			[]Token{{KindOther, 0, 1}, {KindCR, 1, 2}, {KindLF, 2, 3}, {KindOther, 3, 4}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Lex(c.input)
			if len(got) != len(c.want) {
				t.Fatalf("Lex(%q) = %v, want %v", c.input, got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("Lex(%q)[%d] = %+v, want %+v", c.input, i, got[i], c.want[i])
				}
			}
		})
	}
}

// TestLexTotality checks that the concatenation of every token's byte span
// covers the whole input with no gaps or overlaps, for a range of inputs
// including bytes outside the grammar's own classification.
func TestLexTotality(t *testing.T) {
	inputs := []string{
		"",
		"plain.atom@example.com",
		"\"quoted string\" <a@b>",
		"(comment) a@b (trailing)",
		"\x00\x01\x02 \xff\xfe",
		"\r\n\r\n",
		"a\\b\"c[d]e",
	}
	for _, in := range inputs {
		toks := Lex(in)
		pos := 0
		for _, tok := range toks {
			if tok.Start != pos {
				t.Fatalf("Lex(%q): gap/overlap before token %+v, expected Start %d", in, tok, pos)
			}
			if tok.End <= tok.Start {
				t.Fatalf("Lex(%q): non-advancing token %+v", in, tok)
			}
			pos = tok.End
		}
		if pos != len(in) {
			t.Fatalf("Lex(%q): tokens cover %d bytes, want %d", in, pos, len(in))
		}
	}
}

func FuzzLex(f *testing.F) {
	f.Add("jdoe@example.com")
	f.Add("\"Alice (work)\" <alice@example.org>")
	f.Add("(nested (comment)) a@b")
	f.Add(string([]byte{0, 1, 2, 255}))
	f.Fuzz(func(t *testing.T, input string) {
		toks := Lex(input)
		pos := 0
		for _, tok := range toks {
			if tok.Start != pos || tok.End <= tok.Start || tok.End > len(input) {
				t.Fatalf("Lex(%q) produced inconsistent token %+v at pos %d", input, tok, pos)
			}
			pos = tok.End
		}
		if pos != len(input) {
			t.Fatalf("Lex(%q) covered %d of %d bytes", input, pos, len(input))
		}
	})
}
