// internal/matrixapp/app.go
package matrixapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/acorg/christian-beast/core/distance"
	"github.com/acorg/christian-beast/core/table"
	"github.com/acorg/christian-beast/internal/clibase"
	"github.com/acorg/christian-beast/internal/matrixcli"
	"github.com/acorg/christian-beast/internal/output"
	"github.com/acorg/christian-beast/internal/version"
	"github.com/acorg/christian-beast/pkg/api"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext drives cbeast-matrix: parse flags, read the table, compute the
// requested full matrices, and print them in the chosen format.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flushThen := func(code int) int {
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := matrixcli.NewFlagSet("cbeast-matrix")
	fs.SetOutput(io.Discard)

	opts, err := matrixcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			matrixcli.PrintExamples(outw)
			return flushThen(0)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushThen(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushThen(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cbeast-matrix version %s\n", version.Version)
		return flushThen(0)
	}

	src, err := table.Open(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = src.Close() }()

	dec, err := table.DecodeReader(src, opts.Encoding)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	tbl, err := table.Read(dec)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	// Resolve requested features to column indices; default is all columns
	// in table order.
	var sel []int
	if len(opts.Features) == 0 {
		sel = make([]int, len(tbl.Features))
		for i := range sel {
			sel[i] = i
		}
	} else {
		for _, name := range opts.Features {
			f := tbl.FeatureIndex(name)
			if f < 0 {
				_, _ = fmt.Fprintf(stderr, "unknown feature %q (table has: %s)\n",
					name, featureList(tbl))
				return 1
			}
			sel = append(sel, f)
		}
	}

	comp := distance.New(distance.Config{Raw: opts.Raw, Workers: opts.Workers})
	matrices, err := comp.Matrices(parent, tbl, sel)
	if err != nil {
		if parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	list := make([]api.MatrixV1, len(matrices))
	for i, m := range matrices {
		list[i] = output.ToAPIMatrix(m.Name, tbl.Taxa, !opts.Raw, m.Values)
	}

	if err := output.Write(outw, opts.Output, list, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushThen(0)
}

func featureList(t *table.Table) string {
	if len(t.Features) == 0 {
		return "no features"
	}
	return strings.Join(t.Features, ", ")
}
