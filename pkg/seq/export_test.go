package seq

import "io"

// Hooks for tests which need a look at the internals.

var TrimEOL = trimEOL

func (seqgrp *SeqGrp) Clear() { seqgrp.clear() }

// SetOpenIn swaps the file opener and returns a function which puts
// the old one back.
func SetOpenIn(f func(string) (io.ReadCloser, bool, error)) func() {
	old := openInFn
	openInFn = f
	return func() { openInFn = old }
}
