// 20 Jun 2026

// Package brokenio wraps an io.ReadCloser so reads fail on demand.
// Typical use: you have a file pointer or a reader from a compressed or
// http source. You write rdr = brokenio.NewReader(rdr, n, err) and
// everything functions as before, until n bytes have gone through, at
// which point every Read returns err. That is how we check that a
// reader surfaces exactly the failure its source raised.
package brokenio

import (
	"io"
)

// A BrknRdrClsr passes data through until failAfter bytes have been
// read, then fails with failErr. With failAfter zero it fails on the
// first read. A nil failErr means never fail, which mimics a healthy
// reader and is useful as a byte counter.
type BrknRdrClsr struct {
	rdr       io.ReadCloser // Wrapped reader
	failErr   error         // What to fail with
	failAfter int           // Let this many bytes through first
	nByte     int           // Bytes passed through so far
	nCalled   int
	closed    bool
}

// NewReader returns a wrapper around rIn which fails with failErr once
// failAfter bytes have been read.
func NewReader(rIn io.ReadCloser, failAfter int, failErr error) *BrknRdrClsr {
	return &BrknRdrClsr{rdr: rIn, failAfter: failAfter, failErr: failErr}
}

// NBytes says how much data has gone through so far.
func (r *BrknRdrClsr) NBytes() int { return r.nByte }

// NCalled says how often Read was called.
func (r *BrknRdrClsr) NCalled() int { return r.nCalled }

// Closed says whether Close has been called. Readers which own a file
// are supposed to close it no matter how reading ends.
func (r *BrknRdrClsr) Closed() bool { return r.closed }

// Read passes data through from the wrapped reader. When the running
// byte count reaches the threshold, it hands back the short count and
// the configured error instead.
func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	r.nCalled++
	if r.failErr != nil && r.nByte >= r.failAfter {
		return 0, r.failErr
	}
	if r.failErr != nil && r.nByte+len(p) > r.failAfter {
		p = p[:r.failAfter-r.nByte] // only let the allowed amount through
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	r.closed = true
	return r.rdr.Close()
}
