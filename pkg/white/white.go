// 14 Jun 2026

// Package white removes white space from byte slices. Sequence data
// picks up blanks and line breaks on its way through alignment programs
// and spreadsheets, so this is needed in a few places.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite says if c is an ascii space character. We do not worry about
// unicode. Sequence data is ascii.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove compacts s in place, dropping white space. The returned slice
// shares storage with s, with the length adjusted and the capacity
// unchanged.
func Remove(s []byte) []byte {
	j := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[j] = c
			j++
		}
	}
	return s[:j]
}
