// 5 Jun 2026

// Package seq holds sequences, which begin their lives in fasta format.
// It can read them from a stream, one record at a time, and write them
// back out.
//
// A record is a comment line introduced by ">" and then the sequence
// itself, usually wrapped over several lines. The reader in readfasta.go
// glues the lines back together. Nothing here checks that a sequence is
// sensible DNA or protein. For that, ask a Seq or a SeqGrp what Type it
// thinks it is.
package seq

import (
	"fmt"
	"io"
	"strings"

	. "github.com/solnyshko2009/fasta-pars-process/pkg/seq/common"
	"github.com/solnyshko2009/fasta-pars-process/pkg/white"
)

// Seq is one fasta record. Once the reader has built it, nobody else
// writes to it. The zero value is an empty record.
type Seq struct {
	cmmt string
	seq  []byte
}

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide, but could be DNA or RNA
)

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// NewSeq builds a record from a comment and a sequence body. The caller
// should have removed the leading ">" from the comment. The body is not
// copied.
func NewSeq(cmmt string, body []byte) Seq {
	return Seq{cmmt: cmmt, seq: body}
}

// Cmmt returns the comment, without the leading ">".
func (s Seq) Cmmt() string { return s.cmmt }

// GetSeq returns the sequence as the original byte slice.
func (s Seq) GetSeq() []byte { return s.seq }

// Len is the number of characters in the sequence body.
func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if there is no sequence body. A comment with no
// sequence after it is a legal, if sad, record, so check Cmmt too if
// you care.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// Clear gets rid of the contents of a sequence. If a sequence is part
// of a slice and cannot be deleted, it can at least be emptied.
func (s *Seq) Clear() {
	s.cmmt = ""
	s.seq = nil
}

// Copy gives us a sequence whose body does not share storage with the
// original.
func (s *Seq) Copy() (t Seq) {
	t.cmmt = s.cmmt
	t.seq = append([]byte(nil), s.seq...)
	return t
}

// GeneID returns the gene identifier for a sequence.
// Of course it does not really do that. It just returns the first
// word in the comment which is likely to be the gene identifier.
func (s Seq) GeneID() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// Species tries to return the organism from which a sequence
// comes. Actually, it just looks in the comment line for a string
// between square brackets and returns it. Given
//     > xyz.123 comment here [  homo sapiens]
// it should return "homo sapiens" with leading and trailing white
// space removed.
func (s Seq) Species() (species string, ok bool) {
	var i, j int
	if i = strings.LastIndexByte(s.cmmt, '['); i == -1 {
		return
	}
	if j = strings.LastIndexByte(s.cmmt, ']'); j == -1 {
		return
	}
	if i >= j { // Is this an error ?
		return
	} // We treat it as if there is no comment

	return strings.TrimSpace(s.cmmt[i+1 : j]), true
}

// Lower will change a sequence to lower case.
// It is much smaller than the library version, since it only knows
// about characters that can occur in biological sequences.
// It also acts in place.
func (s *Seq) Lower() {
	low := [256]byte{
		'A': 'a', 'B': 'b', 'C': 'c', 'D': 'd', 'E': 'e', 'F': 'f', 'G': 'g', 'H': 'h',
		'I': 'i', 'J': 'j', 'K': 'k', 'L': 'l', 'M': 'm', 'N': 'n', 'O': 'o', 'P': 'p',
		'Q': 'q', 'R': 'r', 'S': 's', 'T': 't', 'U': 'u', 'V': 'v', 'W': 'w', 'X': 'x',
		'Y': 'y', 'Z': 'z'}
	for i, c := range s.seq {
		if low[c] != 0 {
			s.seq[i] = low[c]
		}
	}
}

// trimStr trims a string to n bytes if it is longer.
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It returns an error if it meets a symbol it does not like (value
// higher than 127).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	t := s.seq
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			t[i] -= diff
		}
	}
	return nil
}

// RmvWhite removes blanks, tabs and stray line breaks from the sequence
// body, in place. The old reader did this to every sequence. The current
// one keeps bodies as they were in the file, so this is for callers who
// want the old behaviour after the fact.
func (s *Seq) RmvWhite() { s.seq = white.Remove(s.seq) }

// protType are the amino acid codes which cannot appear in nucleotide
// sequences. Seeing any of them settles the question.
var protType = []byte{
	'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
	'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

// typeFromUsed is the decision table shared by Seq.Type and
// SeqGrp.GetType. used must be indexed by upper case symbols.
func typeFromUsed(used *[MaxSym]bool) SeqType {
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          just return protein type.
			return Protein
		}
	}
	if used['T'] && used['U'] {
		return Ntide
	}
	// If we have ACG, but neither T nor U, it is a nucleotide
	// but we cannot tell if it is RNA or DNA.
	if used['A'] && used['C'] && used['G'] && !used['T'] && !used['U'] {
		return Ntide
	}
	if used['T'] {
		return DNA
	}
	if used['U'] {
		return RNA
	}
	return Unknown
}

// Type looks at one sequence and returns its best guess as to what kind
// of molecule it is. An empty body, or one with symbols beyond ascii,
// gives Unknown.
func (s Seq) Type() SeqType {
	if len(s.seq) == 0 {
		return Unknown
	}
	const diff = 'a' - 'A'
	var used [MaxSym]bool
	for _, c := range s.seq {
		if c >= MaxSym {
			return Unknown
		}
		if 'a' <= c && c <= 'z' {
			c -= diff
		}
		used[c] = true
	}
	return typeFromUsed(&used)
}

// String returns a sequence, with its comment at the start, as a single
// string. The body is not wrapped, so feeding the result back to the
// reader gives the same record.
func (s Seq) String() (t string) {
	t = fmt.Sprintf("%c%s\n", CmmtChar, s.cmmt)
	t += string(s.seq)
	return
}

// WriteTo writes a record in fasta format with the body wrapped at 60
// columns. It reports the number of bytes written, so a Seq can be used
// wherever an io.WriterTo is wanted.
func (s Seq) WriteTo(w io.Writer) (int64, error) {
	const c_per_line = 60
	var total int64
	n, err := fmt.Fprintf(w, "%c%s\n", CmmtChar, s.cmmt)
	total += int64(n)
	if err != nil {
		return total, err
	}
	b := s.seq
	for ; len(b) > c_per_line; b = b[c_per_line:] {
		if n, err = fmt.Fprintf(w, "%s\n", b[:c_per_line]); err != nil {
			return total + int64(n), err
		}
		total += int64(n)
	}
	n, err = fmt.Fprintf(w, "%s\n", b)
	return total + int64(n), err
}
