// ytvalidate — sanity report for a collected videos table.
//
// Prints a column overview, a random sample and a handful of consistency
// checks (unique video IDs, non-negative counts, parseable dates) for a
// videos.csv produced by ytcollect. Diagnostic only; the data is never
// modified.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Phuong414/Youtube-analytics/internal/validate"
)

func main() {
	flagFile := flag.String("file", "data/raw/videos.csv", "Path to the videos table to check")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := validate.Run(*flagFile, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
