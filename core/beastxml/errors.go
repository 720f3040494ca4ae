package beastxml

import (
	"errors"
	"fmt"
)

// ErrUnsafeComment flags a feature name that cannot appear inside an XML
// comment. Every CommentError unwraps to it.
var ErrUnsafeComment = errors.New("beastxml: feature name not representable as an XML comment")

// CommentError names the feature whose name breaks the XML comment grammar.
type CommentError struct {
	Feature string
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("beastxml: feature name %q cannot appear in an XML comment: %q inside or %q at the end is not allowed",
		e.Feature, "--", "-")
}

func (e *CommentError) Unwrap() error { return ErrUnsafeComment }
