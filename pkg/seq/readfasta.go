// 7 Jun 2026

// Reader for fasta format files. One record at a time, forward only.

package seq

import (
	"bufio"
	"errors"
	"io"
	"os"

	. "github.com/solnyshko2009/fasta-pars-process/pkg/seq/common"
	"github.com/solnyshko2009/fasta-pars-process/pkg/white"
)

const NL = '\n'

// Options contains the choices passed in from the caller.
type Options struct {
	RmvWhite bool // Remove blanks inside sequence bodies while reading
}

// ErrStopped is what a callback gives to Stream to say it has seen
// enough. Stream treats it as success.
var ErrStopped = errors.New("stopped early")

// A Reader turns a stream of text into a stream of Seq records.
// It reads its input exactly once and keeps no record after handing it
// out. The only state is the record currently being assembled: a
// comment once we have seen a ">" line, and the body lines collected
// since then.
type Reader struct {
	rdr   *bufio.Reader
	opts  Options
	cmmt  string // comment of the record being assembled
	body  []byte // body collected so far
	inrec bool   // have we seen a comment line yet
	err   error  // sticky; once set, Next only ever returns it
}

// NewReader wraps rdr. Whoever opened rdr closes it; see Stream for the
// version which owns its file. opts may be nil.
func NewReader(rdr io.Reader, opts *Options) *Reader {
	r := &Reader{rdr: bufio.NewReader(rdr)}
	if opts != nil {
		r.opts = *opts
	}
	return r
}

// trimEOL removes the line terminator. Files written on windows give us
// "\r\n", so both forms are taken off.
func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == NL {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// finish closes off the record being assembled and resets the
// accumulator, putting nextCmmt in its place.
func (r *Reader) finish(nextCmmt string, inrec bool) Seq {
	s := Seq{cmmt: r.cmmt, seq: r.body}
	r.cmmt = nextCmmt
	r.body = nil
	r.inrec = inrec
	return s
}

// Next returns the next record, or io.EOF when the input is used up.
// A record is finished when the next ">" line turns up, or at end of
// input. Rules on the way:
//   - empty lines mean nothing, anywhere
//   - lines before the first ">" belong to nobody and are dropped
//   - a line keeps its blanks; only the terminator comes off, unless
//     Options.RmvWhite was set
//
// A read error from the underlying source comes back exactly as the
// source raised it, right away. A failed read may hand over partial
// data as well; those bytes belong to no complete line and are not
// turned into records.
func (r *Reader) Next() (Seq, error) {
	if r.err != nil {
		return Seq{}, r.err
	}
	for {
		line, err := r.rdr.ReadBytes(NL)
		if err != nil && err != io.EOF {
			r.err = err
			return Seq{}, err
		}
		line = trimEOL(line)
		if len(line) > 0 {
			switch {
			case line[0] == CmmtChar:
				if r.inrec { // A record was in progress, so this
					return r.finish(string(line[1:]), true), nil
				}
				r.cmmt = string(line[1:]) // line starts the first record
				r.inrec = true
			case r.inrec:
				if r.opts.RmvWhite {
					line = white.Remove(line)
				}
				r.body = append(r.body, line...)
			}
		}
		if err == io.EOF {
			r.err = io.EOF
			if r.inrec { // flush the last record
				return r.finish("", false), nil
			}
			return Seq{}, io.EOF
		}
	}
}

// ReadAll drains a reader and returns everything it produced. No
// comment lines in the input is not an error. It just means no
// sequences.
func ReadAll(rdr io.Reader, opts *Options) ([]Seq, error) {
	r := NewReader(rdr, opts)
	var seqs []Seq
	for {
		s, err := r.Next()
		if err == io.EOF {
			return seqs, nil
		}
		if err != nil {
			return seqs, err
		}
		seqs = append(seqs, s)
	}
}

// openIn gives us something to read from. An empty name means stdin,
// which must not be closed, hence the flag.
func openIn(fname string) (fp io.ReadCloser, isFile bool, err error) {
	if fname == "" {
		return os.Stdin, false, nil
	}
	if fp, err = os.Open(fname); err != nil {
		return nil, false, err
	}
	return fp, true, nil
}

// openInFn is only swapped out during testing, by sources which record
// whether they were closed.
var openInFn = openIn

// Readfile takes a filename and reads all the sequences from it.
// An empty filename means stdin.
func Readfile(fname string, opts *Options) ([]Seq, error) {
	fp, isFile, err := openInFn(fname)
	if err != nil {
		return nil, err
	}
	if isFile {
		defer fp.Close()
	}
	return ReadAll(fp, opts)
}

// Stream walks the records of a file without keeping them. fn gets each
// record in turn and owns it afterwards. If fn returns ErrStopped, we
// stop and report success. Any other error from fn, or from reading,
// comes straight back. The file is open only for the duration of the
// walk and is closed however the walk ends.
func Stream(fname string, opts *Options, fn func(Seq) error) error {
	fp, isFile, err := openInFn(fname)
	if err != nil {
		return err
	}
	if isFile {
		defer fp.Close()
	}
	r := NewReader(fp, opts)
	for {
		s, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			if err == ErrStopped {
				return nil
			}
			return err
		}
	}
}

// IsFasta peeks at a file and says if it looks like fasta, that is, if
// the first non-blank line starts with ">". It proves nothing about the
// rest of the file. A file we cannot read is not fasta.
func IsFasta(fname string) bool {
	fp, isFile, err := openInFn(fname)
	if err != nil {
		return false
	}
	if isFile {
		defer fp.Close()
	}
	scnr := bufio.NewScanner(fp)
	for scnr.Scan() {
		line := trimEOL(scnr.Bytes())
		if len(line) == 0 {
			continue
		}
		return line[0] == CmmtChar
	}
	return false
}
