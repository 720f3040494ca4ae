package table

import (
	"errors"
	"fmt"
)

// Sentinel categories for table parsing. Callers match with errors.Is; the
// positional details travel in *ParseError.
var (
	// ErrNoData means the input held no CSV data at all, not even a header.
	ErrNoData = errors.New("table: no input CSV data found")

	// ErrNoTaxa means a header was present but no data rows followed.
	ErrNoTaxa = errors.New("table: no taxa (rows) found in input CSV")

	// ErrFieldCount means a data row's value-field count differs from the
	// number of feature columns the header declared.
	ErrFieldCount = errors.New("table: wrong number of value fields")

	// ErrDuplicateFeature means two header cells name the same feature.
	ErrDuplicateFeature = errors.New("table: duplicate feature name")

	// ErrDuplicateTaxon means two data rows carry the same taxon label.
	ErrDuplicateTaxon = errors.New("table: duplicate taxon name")

	// ErrBadValue means a cell did not parse as a finite real number.
	ErrBadValue = errors.New("table: invalid numeric value")

	// ErrSyntax wraps CSV-level syntax errors (unterminated quotes and the
	// like) reported by the underlying reader.
	ErrSyntax = errors.New("table: malformed CSV")
)

// ParseError pins a table error to its location in the input. Row is the
// 1-based physical line number. Column, when set, is the 1-based field
// position within the row (the taxon-label column counts as 1). Feature names
// the affected column when one is known, Text carries the offending cell
// text, and Got/Want hold the field counts for ErrFieldCount.
type ParseError struct {
	Row     int
	Column  int
	Feature string
	Text    string
	Got     int
	Want    int
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrFieldCount):
		return fmt.Sprintf("input row %d contains %d value fields, but there were %d feature (column) headers",
			e.Row, e.Got, e.Want)
	case errors.Is(e.Err, ErrDuplicateFeature):
		return fmt.Sprintf("input row %d, column %d: feature name %q appears more than once",
			e.Row, e.Column, e.Text)
	case errors.Is(e.Err, ErrDuplicateTaxon):
		return fmt.Sprintf("input row %d: taxon name %q appears more than once", e.Row, e.Text)
	case errors.Is(e.Err, ErrBadValue):
		return fmt.Sprintf("input row %d, column %d (feature %q): invalid numeric value %q",
			e.Row, e.Column, e.Feature, e.Text)
	}
	return fmt.Sprintf("input row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
