// Command pqkit runs the pqkit algorithms over numbers given on the command line.
//
//	pqkit topk --k=2 3 2 1 5 6 4
//	pqkit median 1 2 3
//	pqkit merge --strategy=pairwise 1,4,5 1,3,4 2,6
//	pqkit range 4,10,15,24,26 0,9,12,20 5,18,22,30
//	pqkit frequent --k=2 i love leetcode i love coding
//
// Results go to stdout; logfmt diagnostics go to stderr. Every flag can also
// be set through a PQKIT_* environment variable.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
