// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/acorg/christian-beast/core/beastxml"
	"github.com/acorg/christian-beast/core/distance"
	"github.com/acorg/christian-beast/core/table"
	"github.com/acorg/christian-beast/internal/cli"
	"github.com/acorg/christian-beast/internal/clibase"
	"github.com/acorg/christian-beast/internal/cmdutil"
	"github.com/acorg/christian-beast/internal/output"
	"github.com/acorg/christian-beast/internal/version"
)

// RunContext drives the whole cbeast pipeline: parse flags, read the table,
// compute distances, serialize XML. All distances are computed before the
// first output byte, so a failing run never leaves partial XML behind.
//
// Exit codes: 0 success (including broken pipe), 1 bad data (CSV shape,
// non-positive values, unsafe comment names), 2 bad invocation, 3 write
// failure, 130 canceled.
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

	fs := cli.NewFlagSet("cbeast")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "cbeast version %s\n", version.Version)
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

	comp := distance.New(distance.Config{Workers: opts.Workers})
	feats, err := comp.AllFeatures(parent, tbl)
	if err != nil {
		if parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	doc := beastxml.Document{Features: make([]beastxml.Feature, len(feats))}
	for i, fd := range feats {
		doc.Features[i] = beastxml.Feature{Name: fd.Name, Values: fd.Values}
	}
	if opts.WithTaxa {
		doc.Taxa = tbl.Taxa
	}

	if opts.UnsafeComments {
		cmdutil.WarnUnsafeNames(stderr, opts.Quiet, tbl.Features)
	}

	err = beastxml.Write(outw, doc, beastxml.Options{
		Fragment:            opts.Fragment,
		RootTag:             opts.RootTag,
		FeatureTag:          opts.FeatureTag,
		WithTaxa:            opts.WithTaxa,
		AllowUnsafeComments: opts.UnsafeComments,
	})
	if err != nil {
		if errors.Is(err, beastxml.ErrUnsafeComment) {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushThen(0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
