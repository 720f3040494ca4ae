package distance

import (
	"errors"
	"fmt"
)

// ErrNonPositive flags a measurement whose base-10 logarithm is undefined.
// Every DomainError unwraps to it.
var ErrNonPositive = errors.New("distance: log10 requires strictly positive values")

// DomainError locates a non-positive measurement in the table.
type DomainError struct {
	Feature string
	Taxon   string
	Row     int // 0-based row index within the table
	Value   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("distance: feature %q, taxon %q (row %d): log10 undefined for value %v",
		e.Feature, e.Taxon, e.Row, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrNonPositive }
