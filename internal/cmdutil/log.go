// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/acorg/christian-beast/core/beastxml"
)

// Warnf emits one warning line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnUnsafeNames warns about every feature name about to be emitted
// verbatim even though it breaks the XML comment grammar.
func WarnUnsafeNames(dst io.Writer, quiet bool, names []string) {
	for _, n := range names {
		if !beastxml.CommentSafe(n) {
			Warnf(dst, quiet, "feature name %q is not legal inside an XML comment; emitting anyway", n)
		}
	}
}
