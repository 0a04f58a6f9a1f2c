// 29 Jun 2026

// Package randseq writes random sequences in fasta format. It is for
// making test input, so it deliberately produces the mess one finds in
// real files: wrapped lines, blanks inside bodies and a final line with
// no newline. Given the same seed it always produces the same output.
package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

var letters = []byte("ACGT")

const c_per_line = 60

// Args is the set of arguments passed to Write.
type Args struct {
	Iseed     int64     // random number seed
	Wrtr      io.Writer // where we write to
	Cmmt      string    // comment stem for the sequences
	NSeq      int       // number of sequences
	Len       int       // length of each sequence, without the rubbish
	AddWhite  bool      // sprinkle blanks into the bodies
	NoFinalNL bool      // leave the last line unterminated
}

// getseq returns a byte slice with a random sequence in it.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// addspace adds a blank at about every ninth position. The caller's
// sequence length does not change, the line just gets longer.
func addspace(s []byte, rnd *rand.Rand) []byte {
	out := make([]byte, 0, len(s)+len(s)/9+1)
	for i, c := range s {
		if i > 0 && rnd.Int31n(9) == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return out
}

// writeseq writes one record, wrapped at 60 columns.
func writeseq(w *bufio.Writer, n int, s []byte, args *Args, rnd *rand.Rand) {
	fmt.Fprintf(w, "> %s %d\n", args.Cmmt, n)
	for len(s) > 0 {
		line := s
		if len(line) > c_per_line {
			line = line[:c_per_line]
		}
		s = s[len(line):]
		if args.AddWhite {
			line = addspace(line, rnd)
		}
		w.Write(line)
		if len(s) > 0 || !args.NoFinalNL || n != args.NSeq {
			w.WriteByte('\n')
		}
	}
}

// Write sends args.NSeq random records to args.Wrtr.
func Write(args *Args) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	w := bufio.NewWriter(args.Wrtr)
	for i := 1; i <= args.NSeq; i++ {
		writeseq(w, i, getseq(args.Len, rnd), args, rnd)
	}
	return w.Flush()
}
