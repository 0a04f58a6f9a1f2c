// 22 Jun 2026
// seqstat visits a fasta file and prints, for each record, the
// identifier, the length and a guess at the sequence type. It reads one
// record at a time, so files much bigger than memory are fine.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/solnyshko2009/fasta-pars-process/pkg/numseq"
	"github.com/solnyshko2009/fasta-pars-process/pkg/seq"
	. "github.com/solnyshko2009/fasta-pars-process/pkg/seq/common"
)

// typeName gives the printable version of a sequence type.
func typeName(t seq.SeqType) string {
	switch t {
	case seq.Protein:
		return "protein"
	case seq.DNA:
		return "dna"
	case seq.RNA:
		return "rna"
	case seq.Ntide:
		return "nucleotide"
	}
	return "unknown"
}

func mymain() int {
	countOnly := flag.Bool("c", false, "only count records, do not parse them")
	rmvWhite := flag.Bool("w", false, "remove white space inside sequence bodies")
	nMax := flag.Int("n", 0, "stop after this many records (0 means all)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected one argument. Got ", flag.NArg())
		flag.Usage()
		return ExitUsageError
	}
	infile := flag.Arg(0)

	if *countOnly {
		n, err := numseq.Num(infile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
		fmt.Println(n)
		return ExitSuccess
	}

	if !seq.IsFasta(infile) {
		fmt.Fprintln(os.Stderr, infile, "does not look like a fasta file")
		return ExitFailure
	}

	opts := &seq.Options{RmvWhite: *rmvWhite}
	i := 0
	visit := func(s seq.Seq) error {
		i++
		fmt.Printf("%d %s len %d %s\n", i, s.GeneID(), s.Len(), typeName(s.Type()))
		if *nMax > 0 && i >= *nMax {
			return seq.ErrStopped
		}
		return nil
	}
	if err := seq.Stream(infile, opts, visit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
