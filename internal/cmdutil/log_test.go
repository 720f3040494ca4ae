package cmdutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestWarnfQuiet(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, true, "dropped %d", 3)
	if buf.Len() != 0 {
		t.Fatalf("quiet mode wrote %q", buf.String())
	}
	Warnf(&buf, false, "dropped %d", 3)
	if got := buf.String(); got != "WARN: dropped 3\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWarnUnsafeNames(t *testing.T) {
	var buf bytes.Buffer
	WarnUnsafeNames(&buf, false, []string{"Fine", "a--b", "trailing-"})
	got := buf.String()
	if strings.Contains(got, "Fine") {
		t.Fatalf("warned about a safe name: %q", got)
	}
	for _, want := range []string{`"a--b"`, `"trailing-"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing warning for %s in %q", want, got)
		}
	}
	if n := strings.Count(got, "WARN:"); n != 2 {
		t.Fatalf("want 2 warnings, got %d in %q", n, got)
	}
}
