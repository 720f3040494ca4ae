// core/table/open.go
package table

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

type openedInput struct {
	io.Reader
	closers []io.Closer
}

func (o *openedInput) Close() error {
	var first error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if err := o.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open prepares the named CSV input for reading. "-" or the empty string
// selects standard input. Gzip-compressed input is recognised by its magic
// bytes rather than its file name, so compressed data works on stdin too.
// The caller owns the returned closer; closing it closes the whole stack.
func Open(path string) (io.ReadCloser, error) {
	var (
		raw     io.Reader = os.Stdin
		closers []io.Closer
	)
	if path != "" && path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw = fh
		closers = append(closers, fh)
	}

	br := bufio.NewReader(raw)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		closeAll(closers)
		return nil, fmt.Errorf("table: read %s: %w", displayName(path), err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("table: decompress %s: %w", displayName(path), err)
		}
		closers = append(closers, gz)
		return &openedInput{Reader: gz, closers: closers}, nil
	}
	return &openedInput{Reader: br, closers: closers}, nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
