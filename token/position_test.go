package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/srccircumflex/syntax-parser-prototype/token"
)

func TestPositionCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b token.Position
		want int
	}{
		{"equal", token.Position{1, 2}, token.Position{1, 2}, 0},
		{"earlier row", token.Position{1, 9}, token.Position{2, 0}, -1},
		{"same row, earlier column", token.Position{3, 1}, token.Position{3, 2}, -1},
		{"later", token.Position{5, 0}, token.Position{1, 0}, 1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); sign(got) != c.want {
			t.Errorf("%s: Compare(%v, %v) = %d, want sign %d", c.name, c.a, c.b, got, c.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestEndPositionTokenDiff(t *testing.T) {
	tok := &token.Token{Position: token.Position{Row: 0, Column: 2}, Content: "ab\ncd"}
	got := tok.EndPosition()
	want := token.Position{Row: 1, Column: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EndPosition mismatch (-want +got):\n%s", diff)
	}
}
