// 25 Jun 2026

package seq_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/solnyshko2009/fasta-pars-process/pkg/seq"
	"github.com/solnyshko2009/fasta-pars-process/pkg/seq/common"
)

// TestStr2SeqGrp
func TestStr2SeqGrp(t *testing.T) {
	ss := []string{"aa", "bb", "cc"}
	seqgrp := Str2SeqGrp(ss, "s")
	if i := seqgrp.NSeq(); i != 3 {
		t.Fatalf("Wrong num seqs, want 3, got %d", i)
	}
	if i := seqgrp.SeqSlc()[0].Len(); i != 2 {
		t.Fatalf("Wrong seq len, want 2, got %d", i)
	}
}

// TestFindNdx
func TestFindNdx(t *testing.T) {
	set1 := `>should be in 0
ABC
>   some stuff here for seq1
DEF
> more here in seq2
DEF`
	seqgrp, err := func() (*SeqGrp, error) {
		seqs, err := ReadAll(strings.NewReader(set1), nil)
		return Grp(seqs), err
	}()
	if err != nil {
		t.Fatal(err)
	}
	subs := []string{"> some", " some", "some", "seq1"}
	for _, s := range subs {
		if n := seqgrp.FindNdx(s); n != 1 {
			t.Fatalf("substring fail looking for %s, expected 1, got %d", s, n)
		}
	}
	if n := seqgrp.FindNdx("this string is nowhere"); n != -1 {
		t.Fatal("Failed with this string is nowhere")
	}
	if n := seqgrp.FindNdx("in seq2"); n != 2 {
		t.Fatal("Failed looking in seq2")
	}
}

var grptypedata = []struct {
	s     string
	stype SeqType
}{
	{"> s\nACGU\n>ss\nACGT\n\n", Ntide},
	{"> seq1\nACGTACGT\n> seq 2\nacgt\n", DNA},
	{"> seq1\naaa\n>seq 2\nACGACG\nT\n", DNA},
	{"> s\nacgu\n>ss\nacgu\n\n", RNA},
	{"> s\nacgu\n>ss\nACGT\n\n", Ntide},
	{"> s1\nef\n", Protein},
	{"> s1\nEF\n", Protein},
	{"> s1\nB\n", Unknown},
	{"> s1\njb\n>s2\nO\n", Unknown},
}

// TestGrpTypes checks recognising RNA/DNA/protein on whole groups.
func TestGrpTypes(t *testing.T) {
	for tnum, x := range grptypedata {
		seqs, err := ReadAll(strings.NewReader(x.s), nil)
		if err != nil {
			t.Fatal("TestGrpTypes broke on ReadAll", err)
		}
		seqgrp := Grp(seqs)
		if err := seqgrp.Upper(); err != nil {
			t.Fatal(err)
		}
		if st := seqgrp.GetType(); st != x.stype {
			const msg = "seq num %d (numbering from 0) got type %d expected %d"
			t.Fatalf(msg, tnum, st, x.stype)
		}
	}
}

// TestGetNSym
func TestGetNSym(t *testing.T) {
	testdat := []struct {
		ss   []string
		nsym int
	}{
		{[]string{"a", "a"}, 1},
		{[]string{"ab", "ab"}, 2},
		{[]string{"abc", "def", "abc"}, 6},
	}

	for _, a := range testdat {
		seqgrp := Str2SeqGrp(a.ss)
		if nsym := seqgrp.GetNSym(); nsym != a.nsym {
			t.Fatalf("Wrong nsym. Wanted %d, got %d", a.nsym, nsym)
		}
	}
}

// TestUsage checks the symbol by record counting.
func TestUsage(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"AACG", "GG", ""})
	counts := seqgrp.GetCounts()
	// revmap is sorted by symbol value, so rows are A, C, G.
	want := [][]float32{
		{2, 0, 0},
		{1, 0, 0},
		{1, 2, 0},
	}
	if d := cmp.Diff(want, counts.Mat); d != "" {
		t.Fatal("counts differ\n", d)
	}
	if got := string(seqgrp.GetRevmap()); got != "ACG" {
		t.Fatal("revmap got", got)
	}
}

// TestUsageFrac checks normalising per record, with an empty record
// left alone rather than dividing by zero.
func TestUsageFrac(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"AACG", "GG", ""})
	seqgrp.UsageFrac()
	counts := seqgrp.GetCounts()
	want := [][]float32{
		{0.5, 0, 0},
		{0.25, 0, 0},
		{0.25, 1, 0},
	}
	if d := cmp.Diff(want, counts.Mat); d != "" {
		t.Fatal("fractions differ\n", d)
	}

	// after Clear we should be back to raw counts
	seqgrp.Clear()
	if got := seqgrp.GetCounts().Mat[0][0]; got != 2 {
		t.Fatal("after Clear wanted raw count 2, got", got)
	}
}

// TestAdd checks that adding a record throws away stale counts.
func TestAdd(t *testing.T) {
	seqgrp := Str2SeqGrp([]string{"AA"})
	if n := seqgrp.GetNSym(); n != 1 {
		t.Fatal("wanted 1 sym, got", n)
	}
	seqgrp.Add(NewSeq("s9", []byte("CC")))
	if n := seqgrp.GetNSym(); n != 2 {
		t.Fatal("after Add wanted 2 syms, got", n)
	}
	if n := seqgrp.NSeq(); n != 2 {
		t.Fatal("after Add wanted 2 seqs, got", n)
	}
}

// TestReadfileGrp reads a file straight into a group.
func TestReadfileGrp(t *testing.T) {
	fname, err := common.WrtTemp(">a\nACGT\n>b\nACCT\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	seqgrp, err := ReadfileGrp(fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	if seqgrp.NSeq() != 2 {
		t.Fatal("wanted 2 seqs, got", seqgrp.NSeq())
	}
	if st := seqgrp.GetType(); st != DNA {
		t.Fatal("wanted DNA, got", st)
	}
}
