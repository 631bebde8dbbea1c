package useridaddr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeCollapsesAdjacentText(t *testing.T) {
	in := []Component{TextComponent("a"), TextComponent("b"), WSComponent(), WSComponent()}
	want := []Component{TextComponent("ab"), WSComponent()}
	got := Merge(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeIdempotent(t *testing.T) {
	in := []Component{
		TextComponent("a"),
		CommentComponent("x"),
		WSComponent(),
		WSComponent(),
		TextComponent("b"),
		TextComponent("c"),
	}
	once := Merge(in)
	twice := Merge(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Merge is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestConcatFlattensArgs(t *testing.T) {
	var nilSeq []Component
	got := Concat(nil, TextComponent("a"), nilSeq, []Component{TextComponent("b"), WSComponent()})
	want := []Component{TextComponent("ab"), WSComponent()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Concat() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentKindString(t *testing.T) {
	cases := []struct {
		k    ComponentKind
		want string
	}{
		{Text, "Text"},
		{Address, "Address"},
		{ComponentKind(99), "Component(?)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.k, got, c.want)
		}
	}
}
