package useridaddr

// ComponentKind identifies which variant of Component is populated.
type ComponentKind int

const (
	// Text is a literal text fragment from an atom, quoted string, or
	// domain-literal body.
	Text ComponentKind = iota
	// WS is one logical space, folded from any run of FWS/CFWS whitespace.
	WS
	// Comment is the flattened text inside one parenthesized comment.
	Comment
	// Address is a complete local-part@domain, emitted once per addr-spec.
	Address
	// InvalidAddress marks <...> content that failed to parse as an
	// addr-spec; Err is the original syntax error and Raw is the exact
	// input bytes between the angle brackets.
	InvalidAddress
)

func (k ComponentKind) String() string {
	switch k {
	case Text:
		return "Text"
	case WS:
		return "WS"
	case Comment:
		return "Comment"
	case Address:
		return "Address"
	case InvalidAddress:
		return "InvalidAddress"
	default:
		return "Component(?)"
	}
}

// Component is the closed, tagged output alphabet of the grammar: a single
// semantic unit recovered from a User ID string. Only the fields relevant
// to Kind are populated; the zero value of the others is ignored.
type Component struct {
	Kind ComponentKind
	Str  string // Text, Comment, Address
	Err  error  // InvalidAddress
	Raw  []byte // InvalidAddress
}

// TextComponent builds a Text component. An empty string is a valid,
// meaningful Text component (e.g. a quoted empty string in a display name)
// and is never dropped by merging.
func TextComponent(s string) Component { return Component{Kind: Text, Str: s} }

// WSComponent builds the singleton WS component.
func WSComponent() Component { return Component{Kind: WS} }

// CommentComponent builds a Comment component from already-flattened text.
func CommentComponent(s string) Component { return Component{Kind: Comment, Str: s} }

// AddressComponent builds an Address component from an assembled
// local-part@domain string.
func AddressComponent(s string) Component { return Component{Kind: Address, Str: s} }

// InvalidAddressComponent builds an InvalidAddress component.
func InvalidAddressComponent(err error, raw []byte) Component {
	return Component{Kind: InvalidAddress, Err: err, Raw: raw}
}

// Merge collapses adjacent Text components (concatenating their strings)
// and drops duplicate adjacent WS components. Merge is idempotent:
// Merge(Merge(x)) always equals Merge(x).
func Merge(seq []Component) []Component {
	if len(seq) == 0 {
		return nil
	}
	out := make([]Component, 0, len(seq))
	for _, c := range seq {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == Text && c.Kind == Text {
				last.Str += c.Str
				continue
			}
			if last.Kind == WS && c.Kind == WS {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// concatArg is anything Concat accepts: nil, a single Component, or a
// []Component.
type concatArg interface{}

// Concat flattens and merges any number of components. Each argument may be
// nil, a Component, or a []Component; this mirrors the teacher's habit of
// letting call sites hand back "maybe nothing, maybe one thing, maybe many"
// without every caller writing its own nil/slice bookkeeping.
func Concat(args ...concatArg) []Component {
	var seq []Component
	for _, a := range args {
		switch v := a.(type) {
		case nil:
			// skip
		case Component:
			seq = append(seq, v)
		case []Component:
			seq = append(seq, v...)
		}
	}
	return Merge(seq)
}
