package terminal

import "testing"

func TestFragmentClip(t *testing.T) {
	tests := []struct {
		frag  TextFragment
		width int
		want  TextFragment
	}{
		{NewFragment(0, 0, "hello"), 2, NewFragment(0, 0, "he")},
		{NewFragment(-2, 0, "hello"), 2, NewFragment(0, 0, "ll")},
		{NewFragment(1, 0, "hello"), 2, NewFragment(1, 0, "h")},
		{NewFragment(3, 0, "hello"), 2, NewFragment(3, 0, "")},
		{NewFragment(-9, 0, "hello"), 4, NewFragment(0, 0, "")},
		{NewFragment(0, 0, "héllo"), 3, NewFragment(0, 0, "hél")},
	}

	for _, tt := range tests {
		if got := tt.frag.Clip(tt.width); got != tt.want {
			t.Errorf("%v.Clip(%d) = %v, want %v", tt.frag, tt.width, got, tt.want)
		}
	}
}

func TestFragmentSplit(t *testing.T) {
	got := NewFragment(0, 0, "hello").Split("ll", "||", WithFg(ColorYellow))
	want := []TextFragment{
		NewFragment(0, 0, "he"),
		{X: 2, Y: 0, Text: "||", Fg: ColorYellow},
		NewFragment(4, 0, "o"),
	}
	assertFragments(t, got, want)

	got = NewFragment(0, 0, "n2").Split("n", "N")
	want = []TextFragment{NewFragment(0, 0, "N"), NewFragment(1, 0, "2")}
	assertFragments(t, got, want)
}

func TestFragmentReplaceNewlines(t *testing.T) {
	got := TextFragment{X: 3, Y: 1, Text: "a\n\nb", Bg: ColorYellow}.ReplaceNewlines()
	want := []TextFragment{
		{X: 3, Y: 1, Text: "a", Bg: ColorYellow},
		{X: 4, Y: 1, Text: `\n`, Bg: ColorYellow},
		{X: 6, Y: 1, Text: `\n`, Bg: ColorYellow},
		{X: 8, Y: 1, Text: "b", Bg: ColorYellow},
	}
	assertFragments(t, got, want)

	for _, f := range got {
		if f.Text == "" {
			t.Errorf("empty fragment emitted: %v", f)
		}
	}
}

func TestBuilderDropsEmpty(t *testing.T) {
	var b Builder
	if n := b.Add(NewFragment(0, 0, "")); n != 0 {
		t.Errorf("expected width 0 for empty fragment, got %d", n)
	}
	if n := b.Extend([]TextFragment{NewFragment(0, 0, "ab"), NewFragment(2, 0, "")}); n != 2 {
		t.Errorf("expected width 2, got %d", n)
	}
	if len(b.Fragments()) != 1 {
		t.Errorf("expected 1 fragment, got %d", len(b.Fragments()))
	}
}

func assertFragments(t *testing.T, got, want []TextFragment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d fragments %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
