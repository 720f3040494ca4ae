package table

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestOpenPlainFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "in.csv", "-, F\nA, 1\n")
	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "-, F\nA, 1\n", string(data))
}

func TestOpenGzipByMagic(t *testing.T) {
	t.Parallel()

	// The file name carries no .gz hint; detection is by content alone.
	path := writeGz(t, "in.csv", "-, F\nA, 1\n")
	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "-, F\nA, 1\n", string(data))
}

func TestOpenEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.csv", "")
	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "no-such-file.csv"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestOpenStdin(t *testing.T) {
	// Swaps os.Stdin, so no t.Parallel here.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = w.WriteString("-, F\nA, 1\n")
		_ = w.Close()
	}()

	rc, err := Open("-")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "-, F\nA, 1\n", string(data))
}

func TestOpenGzipStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		zw := gzip.NewWriter(w)
		_, _ = zw.Write([]byte("-, F\nA, 1\n"))
		_ = zw.Close()
		_ = w.Close()
	}()

	rc, err := Open("")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "-, F\nA, 1\n", string(data))
}

func TestOpenTruncatedGzip(t *testing.T) {
	t.Parallel()

	// Valid magic bytes but nothing behind them.
	path := writeFile(t, "broken.gz", "\x1f\x8b")
	_, err := Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decompress")
}
