// 21 Jun 2026

// Open each named file and count the fasta records in it, without
// parsing them.

package main

import (
	"fmt"
	"os"

	"github.com/solnyshko2009/fasta-pars-process/pkg/numseq"
	. "github.com/solnyshko2009/fasta-pars-process/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename [filename...]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	ret := ExitSuccess
	for _, fname := range os.Args[1:] {
		n, err := numseq.Num(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			ret = ExitFailure
			continue
		}
		fmt.Println(fname, n)
	}
	os.Exit(ret)
}
