// core/beastxml/beastxml.go
package beastxml

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Declaration is the exact XML declaration emitted unless Options.Fragment
// is set. Consumers diff output byte for byte, so it never changes.
const Declaration = "<?xml version='1.0' encoding='UTF-8'?>"

// Default element names. The root tag is a placeholder: the tag the real
// consumer wants was never pinned down, so it stays configurable instead of
// guessing a BEAST name.
const (
	DefaultRootTag    = "xxx"
	DefaultFeatureTag = "feature"
)

// Feature pairs a feature name with its distance sequence, already in
// emission order.
type Feature struct {
	Name   string
	Values []float64
}

// Document is the full payload for Write.
type Document struct {
	Taxa     []string
	Features []Feature
}

// Options controls serialization. The zero value emits the declaration, uses
// the default tags, omits the taxa attribute, and enforces comment safety.
type Options struct {
	// Fragment suppresses the XML declaration.
	Fragment bool
	// RootTag and FeatureTag override the element names; empty means the
	// package default.
	RootTag    string
	FeatureTag string
	// WithTaxa adds a taxa="..." attribute on the root element listing the
	// document's taxa, comma separated.
	WithTaxa bool
	// AllowUnsafeComments emits feature-name comments without checking the
	// XML comment grammar. The resulting document may not parse.
	AllowUnsafeComments bool
}

// Write serializes doc to w. The document is validated in full before the
// first byte goes out, so a rejected feature name produces no output at all.
func Write(w io.Writer, doc Document, opts Options) error {
	root := opts.RootTag
	if root == "" {
		root = DefaultRootTag
	}
	feature := opts.FeatureTag
	if feature == "" {
		feature = DefaultFeatureTag
	}

	if !opts.AllowUnsafeComments {
		for _, f := range doc.Features {
			if !CommentSafe(f.Name) {
				return &CommentError{Feature: f.Name}
			}
		}
	}

	// bufio latches the first write error, so the happy path below writes
	// freely and the error surfaces on Flush.
	bw := bufio.NewWriter(w)
	if !opts.Fragment {
		bw.WriteString(Declaration)
	}

	bw.WriteByte('<')
	bw.WriteString(root)
	if opts.WithTaxa {
		bw.WriteString(` taxa="`)
		bw.WriteString(EscapeAttr(strings.Join(doc.Taxa, ",")))
		bw.WriteByte('"')
	}
	if len(doc.Features) == 0 {
		bw.WriteString(" />")
		return bw.Flush()
	}
	bw.WriteByte('>')

	for _, f := range doc.Features {
		bw.WriteString("<!--")
		bw.WriteString(f.Name)
		bw.WriteString("-->")
		if len(f.Values) == 0 {
			bw.WriteByte('<')
			bw.WriteString(feature)
			bw.WriteString(" />")
			continue
		}
		bw.WriteByte('<')
		bw.WriteString(feature)
		bw.WriteByte('>')
		for _, v := range f.Values {
			bw.WriteString("<value>")
			bw.WriteString(FormatValue(v))
			bw.WriteString("</value>")
		}
		bw.WriteString("</")
		bw.WriteString(feature)
		bw.WriteByte('>')
	}

	bw.WriteString("</")
	bw.WriteString(root)
	bw.WriteByte('>')
	return bw.Flush()
}

// FormatValue renders v as the shortest decimal string that round-trips the
// exact float64, the same convention the text and JSON outputs use.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
