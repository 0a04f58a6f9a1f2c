// 12 Jun 2026

// A SeqGrp is what you get after reading a whole file: the records,
// plus bookkeeping about which symbols turned up. The counting used to
// be done per alignment site. Here we have no alignments, so the table
// is symbol by record, which is what the composition printing wants.

package seq

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/andrew-torda/matrix"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// SeqGrp is a group of sequences, with some additional information
// such as what type (protein, nucleotide) and the number of symbols
// that have been used.
type SeqGrp struct {
	symUsed  [MaxSym]bool  // which symbols are actually used
	mapping  [MaxSym]uint8 // mapping['C'] tells me the row used for C
	revmap   []uint8       // revmap[2] tells me the character in row 2
	seqs     []Seq
	counts   *matrix.FMatrix2d
	stype    SeqType
	usedKnwn bool // Do we know which symbols are used ?
	freqKnwn bool // Are counts converted to fractions ?
}

// Grp wraps a slice of sequences in a SeqGrp.
func Grp(seqs []Seq) *SeqGrp { return &SeqGrp{seqs: seqs} }

// ReadfileGrp reads a file and hands back the records as a group.
func ReadfileGrp(fname string, opts *Options) (*SeqGrp, error) {
	seqs, err := Readfile(fname, opts)
	if err != nil {
		return nil, err
	}
	return Grp(seqs), nil
}

// NSeq returns the number of sequences.
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences.
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Add appends a record and invalidates anything already counted.
func (seqgrp *SeqGrp) Add(s Seq) {
	seqgrp.seqs = append(seqgrp.seqs, s)
	seqgrp.clear()
}

// FindNdx returns the index of the sequence whose comment contains a
// string. Numbering starts from zero. We remove any ">", space or tab
// at the start. -1 means not found.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")

	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.Cmmt(), s) {
			return i
		}
	}
	return -1
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// clear forgets the calculated quantities. Useful after Add, and in
// testing.
func (seqgrp *SeqGrp) clear() {
	for i := range seqgrp.symUsed {
		seqgrp.symUsed[i] = false
		seqgrp.mapping[i] = badMap
	}
	seqgrp.revmap = nil
	seqgrp.counts = nil
	seqgrp.stype = Unchecked
	seqgrp.usedKnwn = false
	seqgrp.freqKnwn = false
}

// SetSymUsed fills out the table which says whether or not a symbol
// was used anywhere in the group. Symbols beyond ascii are ignored
// rather than provoking an error here. Upper will complain about them.
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			if c < MaxSym {
				seqgrp.symUsed[c] = true
			}
		}
	}
	seqgrp.usedKnwn = true
}

// GetSymUsed returns the normally non-exported symUsed.
func (seqgrp *SeqGrp) GetSymUsed() [MaxSym]bool {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	return seqgrp.symUsed
}

// GetType looks at a group of sequences and returns its best guess
// as to the type of file. It expects upper case sequences, so call
// Upper first if the file might be in lower case.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //      set, just return it.
	}
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	seqgrp.stype = typeFromUsed(&seqgrp.symUsed)
	return seqgrp.stype
}

// mapsyms looks at the symbols (characters, bases, residues) used in a
// seqgrp. It then makes a little array for mapping each one to a row
// in the counts table.
func (seqgrp *SeqGrp) mapsyms() {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	for i := range seqgrp.mapping { // Initialise with bad value, to
		seqgrp.mapping[i] = badMap // trap errors later
	}

	var n uint8
	for i := range seqgrp.symUsed {
		if seqgrp.symUsed[i] {
			seqgrp.mapping[i] = n
			if n >= badMap {
				panic("program bug")
			}
			seqgrp.revmap = append(seqgrp.revmap, uint8(i))
			n++
		}
	}
}

// GetRevmap returns the non-exported revmap.
func (seqgrp *SeqGrp) GetRevmap() []uint8 { return seqgrp.revmap }

// GetMapping returns the row used for a specific character.
func (seqgrp *SeqGrp) GetMapping(c uint8) uint8 { return seqgrp.mapping[c] }

// GetNSym returns the number of different symbols used in a seqgrp.
func (seqgrp *SeqGrp) GetNSym() int {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	return len(seqgrp.revmap)
}

// Usage counts how many of each symbol appear in each record.
// counts.Mat looks like [number_of_symbol_types][number_of_records].
// We store it as float32, since it will usually be normalised later
// and we can then avoid allocating a second matrix for the fractions.
func (seqgrp *SeqGrp) Usage() {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	nrow := len(seqgrp.revmap)
	ncol := len(seqgrp.seqs)
	seqgrp.counts = matrix.NewFMatrix2d(nrow, ncol)
	for i, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			if c >= MaxSym {
				continue
			}
			if cmap := seqgrp.mapping[c]; cmap != badMap {
				seqgrp.counts.Mat[cmap][i]++
			}
		}
	}
}

// GetCounts gives us the normally non-exported counts.
func (seqgrp *SeqGrp) GetCounts() *matrix.FMatrix2d {
	if seqgrp.counts == nil {
		seqgrp.Usage()
	}
	return seqgrp.counts
}

// UsageFrac converts counts to fractions. If letter 'A' makes up two of
// the ten characters in a record, its entry in that record's column
// changes from 2 to 0.2. Columns for empty records are left at zero.
func (seqgrp *SeqGrp) UsageFrac() {
	if seqgrp.counts == nil {
		seqgrp.Usage()
	}
	counts := seqgrp.counts
	nrow, ncol := counts.Size()
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			counts.Mat[irow][icol] /= total
		}
	}
	seqgrp.freqKnwn = true
}

// PrintFreqs prints the table of counts or fractions, one row per
// symbol. format is a format string like "%6.1f". It is mostly useful
// in testing and from the command line tools.
func (seqgrp *SeqGrp) PrintFreqs(w io.Writer, format string) {
	counts := seqgrp.GetCounts()
	for ic, m := range seqgrp.revmap {
		fmt.Fprintf(w, "%c ", m)
		for i := range seqgrp.seqs {
			fmt.Fprintf(w, format, counts.Mat[ic][i])
		}
		fmt.Fprintf(w, "\n")
	}
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		f := Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
