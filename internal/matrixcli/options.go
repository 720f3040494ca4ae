package matrixcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/acorg/christian-beast/internal/clibase"
	"github.com/acorg/christian-beast/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Matrix-specific
	Features []string
	Output   string
	Raw      bool
	Header   bool // true unless --no-header
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [file.csv]\n\n", name)
		_, _ = fmt.Fprintln(out, "Prints the full pairwise distance matrix for each feature, for")
		_, _ = fmt.Fprintln(out, "inspecting the numbers behind the cbeast XML.")

		_, _ = fmt.Fprintln(out, "\nMatrix:")
		_, _ = fmt.Fprintln(out, "  -F, --feature string        Feature to include (repeatable; default: all)")
		_, _ = fmt.Fprintf(out, "      --raw                   Difference raw values, skipping the log10 transform [%s]\n", def("raw"))
		_, _ = fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress header lines in text output [%s]\n", def("no-header"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for cbeast-matrix.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "cbeast-matrix",
		"Inspect per-feature pairwise distance matrices.",
		func(w io.Writer) {
			_, _ = fmt.Fprintln(w, "  cbeast-matrix measurements.csv")
			_, _ = fmt.Fprintln(w, "  cbeast-matrix -F Length --output json measurements.csv")
			_, _ = fmt.Fprintln(w, "  cbeast-matrix --raw measurements.csv")
		})
}

// sliceValue appends each value to a *[]string (for --feature/-F).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c)

	// Matrix flags
	featVal := &sliceValue{dst: &o.Features}
	fs.Var(featVal, "feature", "feature to include (repeatable; default: all)")
	fs.Var(featVal, "F", "alias of --feature")
	fs.BoolVar(&o.Raw, "raw", false, "difference raw values, skipping the log10 transform [false]")
	fs.StringVar(&o.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header lines in text output [false]")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	o.Header = !noHeader

	// Resolve positional input, shared validation
	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}

	// Embed shared options
	o.Common = c
	return o, nil
}
