// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"github.com/acorg/christian-beast/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, output blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – CSV to BEAST XML toolkit\n\n", name)
		fmt.Fprintln(out, "Project: github.com/acorg/christian-beast")
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  [file.csv]                  Taxa-by-feature CSV; '-' or omitted reads STDIN (gzip detected)")
		fmt.Fprintf(out, "      --encoding string       Text encoding: utf-8 | utf-16 | utf-16le | utf-16be | latin-1 | windows-1252 [%s]\n", def("encoding"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -w, --workers int           Concurrent feature computations (0=all CPUs) [%s]\n", def("workers"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
