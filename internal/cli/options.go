// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"unicode"

	"github.com/acorg/christian-beast/internal/clibase"
	"github.com/acorg/christian-beast/internal/cliutil"
)

// Options holds all cbeast flags and arguments.
type Options struct {
	clibase.Common

	// Output
	Fragment       bool
	RootTag        string
	FeatureTag     string
	WithTaxa       bool
	UnsafeComments bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [file.csv]\n\n", name)
		_, _ = fmt.Fprintln(out, "Reads a taxa-by-feature CSV table and writes the pairwise log10")
		_, _ = fmt.Fprintln(out, "distance XML that a BEAST configuration embeds.")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "      --fragment              Omit the leading XML declaration [%s]\n", def("fragment"))
		_, _ = fmt.Fprintf(out, "      --root-tag string       Root element name [%s]\n", def("root-tag"))
		_, _ = fmt.Fprintf(out, "      --feature-tag string    Per-feature element name [%s]\n", def("feature-tag"))
		_, _ = fmt.Fprintf(out, "      --taxa                  Add a taxa=\"...\" attribute listing row labels [%s]\n", def("taxa"))
		_, _ = fmt.Fprintf(out, "      --unsafe-comments       Skip XML comment safety checks on feature names [%s]\n", def("unsafe-comments"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for cbeast.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "cbeast",
		"Convert a taxa-by-feature CSV table to BEAST distance XML.",
		func(w io.Writer) {
			_, _ = fmt.Fprintln(w, "  cbeast measurements.csv")
			_, _ = fmt.Fprintln(w, "  cbeast --fragment --root-tag distances measurements.csv")
			_, _ = fmt.Fprintln(w, "  zcat measurements.csv.gz | cbeast")
		})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c)

	// Output flags
	fs.BoolVar(&o.Fragment, "fragment", false, "omit the XML declaration [false]")
	fs.StringVar(&o.RootTag, "root-tag", "xxx", "root element name [xxx]")
	fs.StringVar(&o.FeatureTag, "feature-tag", "feature", "per-feature element name [feature]")
	fs.BoolVar(&o.WithTaxa, "taxa", false, "add a taxa attribute listing row labels [false]")
	fs.BoolVar(&o.UnsafeComments, "unsafe-comments", false, "skip XML comment safety checks [false]")

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

	// Resolve positional input, shared validation
	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	// Tag validation
	if !validTagName(o.RootTag) {
		return o, fmt.Errorf("invalid --root-tag %q: not a valid XML element name", o.RootTag)
	}
	if !validTagName(o.FeatureTag) {
		return o, fmt.Errorf("invalid --feature-tag %q: not a valid XML element name", o.FeatureTag)
	}

	// Embed shared options
	o.Common = c
	return o, nil
}

// validTagName accepts the simple element names the tools emit: a leading
// letter or underscore, then letters, digits, '-', '_' or '.'.
func validTagName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.') {
			continue
		}
		return false
	}
	return true
}
