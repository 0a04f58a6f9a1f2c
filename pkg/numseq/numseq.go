// 16 Jun 2026

// Package numseq counts the records in a fasta file without parsing
// them. A record starts with a ">" in the first column, so we count a
// ">" at the start of the file plus every "\n>" pair. For real files we
// map the file into memory. For pipes we fall back to buffered reads.
package numseq

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

const cmmtChar = '>'

// countIn counts record starts in one chunk. atLineStart says whether
// the chunk begins on a line boundary, which matters when a ">" lands
// exactly at the start of a read buffer. The second return value is
// whether the next chunk will start on a line boundary.
func countIn(buf []byte, atLineStart bool) (int, bool) {
	if len(buf) == 0 {
		return 0, atLineStart
	}
	n := bytes.Count(buf, []byte{'\n', cmmtChar})
	if atLineStart && buf[0] == cmmtChar {
		n++
	}
	return n, buf[len(buf)-1] == '\n'
}

// ByMmap maps fname and counts its records in one go.
func ByMmap(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() == 0 { // mmap refuses zero length files
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	n, _ := countIn(mm, true)
	return n, nil
}

// ByReading counts records from a stream, a buffer at a time. It is
// for stdin and anything else we cannot mmap.
func ByReading(rdr io.Reader) (int, error) {
	const bsize = 64 * 1024
	var buf [bsize]byte
	count := 0
	atLineStart := true
	for {
		n, err := rdr.Read(buf[:])
		var c int
		c, atLineStart = countIn(buf[:n], atLineStart)
		count += c
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}

// Num counts the records in a file. An empty filename means stdin.
func Num(fname string) (int, error) {
	if fname == "" {
		return ByReading(os.Stdin)
	}
	return ByMmap(fname)
}
