package useridaddr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNameAddrOrOtherSimpleAddrSpec(t *testing.T) {
	got, err := ParseNameAddrOrOther("<jdoe@machine.example>")
	require.NoError(t, err)
	require.Equal(t, []Component{AddressComponent("jdoe@machine.example")}, got)
}

func TestParseNameAddrOrOtherFullNameAddr(t *testing.T) {
	got, err := ParseNameAddrOrOther(`"Alice (work)" <alice@example.org>`)
	require.NoError(t, err)
	addr, ok := AddressOf(got)
	require.True(t, ok)
	require.Equal(t, "alice@example.org", addr)
	require.Equal(t, "Alice (work)", DisplayNameOf(got))
}

func TestParseNameAddrOrOtherRecoversNonEmailURI(t *testing.T) {
	got, err := ParseNameAddrOrOther("<tel:+1-555-0100>")
	require.NoError(t, err)
	invalid := InvalidAddressesOf(got)
	require.Len(t, invalid, 1)
	require.Equal(t, []byte("tel:+1-555-0100"), invalid[0].Raw)
	require.Error(t, invalid[0].Err)
	var pe *ParseError
	require.True(t, errors.As(invalid[0].Err, &pe))
}

func TestParseNameAddrOrOtherRecoversWithDisplayName(t *testing.T) {
	got, err := ParseNameAddrOrOther("Bob <not-an-email>")
	require.NoError(t, err)
	require.Equal(t, "Bob", DisplayNameOf(got))
	invalid := InvalidAddressesOf(got)
	require.Len(t, invalid, 1)
	require.Equal(t, []byte("not-an-email"), invalid[0].Raw)
}

func TestParseNameAddrOrOtherRejectsGarbage(t *testing.T) {
	_, err := ParseNameAddrOrOther("@@@")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestParseNameAddrOrOtherCommentsSurfaced(t *testing.T) {
	got, err := ParseNameAddrOrOther("<a.b (x) @ (y) example.org>")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, CommentsOf(got))
	addr, ok := AddressOf(got)
	require.True(t, ok)
	require.Equal(t, "a.b@example.org", addr)
}

func TestParseErrorMessageShapes(t *testing.T) {
	_, err := ParseAddrSpec("jdoe@")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Contains(t, pe.Error(), "useridaddr:")
}

func TestEscapedDisplayNamePlain(t *testing.T) {
	got, err := EscapedDisplayName("Alice Smith")
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", got)
}

func TestEscapedDisplayNameNeedsQuoting(t *testing.T) {
	got, err := EscapedDisplayName("Alice (work)")
	require.NoError(t, err)
	require.Equal(t, `"Alice (work)"`, got)
}

func TestEscapedDisplayNameEscapesSpecials(t *testing.T) {
	got, err := EscapedDisplayName(`Say "hi" \ bye`)
	require.NoError(t, err)
	require.Equal(t, `"Say \"hi\" \\ bye"`, got)
}

func TestEscapedDisplayNameEmpty(t *testing.T) {
	got, err := EscapedDisplayName("")
	require.NoError(t, err)
	require.Equal(t, `""`, got)
}

func TestEscapedDisplayNameRejectsCRLF(t *testing.T) {
	_, err := EscapedDisplayName("line1\nline2")
	require.Error(t, err)
}

func TestEscapedDisplayNameEscapesNoWSCtl(t *testing.T) {
	got, err := EscapedDisplayName("a\x01b")
	require.NoError(t, err)
	require.Equal(t, "\"a\\\x01b\"", got)
}

func TestParseNameAddrOrOtherRecoversBadDomain(t *testing.T) {
	cases := []struct {
		input string
		raw   string
	}{
		{"<a@>", "a@"},
		{"Alice <user@>", "user@"},
		{"<a@[unterminated>", "a@[unterminated"},
	}
	for _, c := range cases {
		got, err := ParseNameAddrOrOther(c.input)
		require.NoError(t, err, "input %q", c.input)
		invalid := InvalidAddressesOf(got)
		require.Len(t, invalid, 1, "input %q", c.input)
		require.Equal(t, []byte(c.raw), invalid[0].Raw, "input %q", c.input)
		require.Error(t, invalid[0].Err, "input %q", c.input)
	}
}

// TestEscapeRoundTrips checks that a display name run through
// EscapedDisplayName and back through ParsePhrase recovers the original
// string, for names that need no quoting and names that do.
func TestEscapeRoundTrips(t *testing.T) {
	names := []string{
		"Alice",
		"Alice Smith",
		"Alice (work)",
		`quote " inside`,
		"",
	}
	for _, name := range names {
		escaped, err := EscapedDisplayName(name)
		require.NoError(t, err, "name %q", name)
		seq, err := ParsePhrase(escaped)
		require.NoError(t, err, "escaped %q", escaped)
		require.Equal(t, name, DisplayNameOf(seq), "round trip of %q via %q", name, escaped)
	}
}

// TestAddressPurity checks that no Address component produced by
// ParseNameAddrOrOther contains a parenthesis or unescaped whitespace byte.
func TestAddressPurity(t *testing.T) {
	inputs := []string{
		"<jdoe@machine.example>",
		"<a.b (x) @ (y) example.org>",
		`"Alice (work)" <alice@example.org>`,
		` <bob@example.org>`,
	}
	for _, in := range inputs {
		seq, err := ParseNameAddrOrOther(in)
		require.NoError(t, err, "input %q", in)
		for _, c := range seq {
			if c.Kind != Address {
				continue
			}
			for i := 0; i < len(c.Str); i++ {
				b := c.Str[i]
				if b == '(' || b == ')' || b == ' ' || b == '\t' {
					t.Errorf("input %q: Address %q contains disallowed byte %q", in, c.Str, b)
				}
			}
		}
	}
}
