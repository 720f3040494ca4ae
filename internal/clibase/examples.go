// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart: a header, the tool's one-line blurb, its
// example command lines, and a tip to discover full help. Both tools share
// the frame so their quickstarts read alike.
func PrintExamples(out io.Writer, name, blurb string, lines func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, blurb)
	_, _ = fmt.Fprintln(out, "\nExamples:")
	if lines != nil {
		lines(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
