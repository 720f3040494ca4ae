// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"github.com/acorg/christian-beast/core/table"
)

// Common holds CLI fields shared by cbeast and cbeast-matrix.
type Common struct {
	// Input
	Input    string // CSV path; "-" or empty reads STDIN
	Encoding string

	// Performance
	Workers int

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Input
	fs.StringVar(&c.Encoding, "encoding", table.EncodingUTF8,
		"input text encoding: utf-8 | utf-16 | utf-16le | utf-16be | latin-1 | windows-1252 [utf-8]")

	// Performance
	fs.IntVar(&c.Workers, "workers", 0, "concurrent feature computations (0=all CPUs) [0]")
	fs.IntVar(&c.Workers, "w", 0, "alias of --workers")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse resolves the positional input path and runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	switch len(posArgs) {
	case 0:
	case 1:
		c.Input = posArgs[0]
	default:
		return fmt.Errorf("at most one input CSV file may be given, got %d", len(posArgs))
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if c.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if !table.ValidEncoding(c.Encoding) {
		return fmt.Errorf("invalid --encoding %q", c.Encoding)
	}
	return nil
}
