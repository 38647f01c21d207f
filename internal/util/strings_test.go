package util

import "testing"

func TestToValidUTF8(t *testing.T) {
	if got := ToValidUTF8("plain ascii"); got != "plain ascii" {
		t.Errorf("valid input mutated: %q", got)
	}
	// Latin-1 é
	if got := ToValidUTF8("caf\xe9"); got != "café" {
		t.Errorf("Latin-1 decode = %q, want café", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"日本語のテキスト", 4, "日本語…"},
		{"ab", 1, "…"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.n); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
