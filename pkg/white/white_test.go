// 27 Jun 2026

package white_test

import (
	"testing"

	"github.com/solnyshko2009/fasta-pars-process/pkg/white"
)

func TestRemove(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"   ", ""},
		{"abc", "abc"},
		{" a b\tc\n", "abc"},
		{"\r\na c g t\v\f", "acgt"},
	}
	for _, x := range cases {
		b := []byte(x.in)
		if got := string(white.Remove(b)); got != x.want {
			t.Fatalf("remove %q wanted %q got %q", x.in, x.want, got)
		}
	}
}

// TestRemoveInPlace checks the result shares storage with the input.
func TestRemoveInPlace(t *testing.T) {
	b := []byte("a b c")
	r := white.Remove(b)
	if &b[0] != &r[0] {
		t.Fatal("Remove allocated a new slice")
	}
	if cap(r) != cap(b) {
		t.Fatal("capacity changed")
	}
}

func TestIsWhite(t *testing.T) {
	for _, c := range []byte(" \t\n\v\f\r") {
		if !white.IsWhite(c) {
			t.Fatalf("%q should be white", c)
		}
	}
	for _, c := range []byte("aZ0->") {
		if white.IsWhite(c) {
			t.Fatalf("%q should not be white", c)
		}
	}
}
