package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reading end of our output went
// away, as when a downstream `head` exits before the full document is out.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
