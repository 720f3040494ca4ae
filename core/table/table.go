// core/table/table.go
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Table is an immutable taxa-by-feature grid of measurements. Features holds
// the header names with the leading placeholder cell dropped, Taxa holds the
// first cell of every data row, and Rows is indexed [taxon][feature].
type Table struct {
	Features []string
	Taxa     []string
	Rows     [][]float64
}

// Column gathers the values of feature f across all taxa, in row order. The
// returned slice is freshly allocated; the Table itself stays untouched.
func (t *Table) Column(f int) []float64 {
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[f]
	}
	return col
}

// FeatureIndex returns the position of the named feature, or -1 when the
// table has no such column.
func (t *Table) FeatureIndex(name string) int {
	for i, f := range t.Features {
		if f == name {
			return i
		}
	}
	return -1
}

// Read parses CSV input into a Table.
//
// Every field is trimmed of surrounding whitespace after CSV quoting has been
// resolved, so quoted commas and embedded newlines survive. Blank lines are
// skipped. A table with zero features is legal as long as at least one taxon
// row is present; a value that does not parse as a finite real number is not.
// Errors are reported against physical input line numbers.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row widths are checked below, with table-shaped messages

	var t Table
	header := false
	seenFeature := make(map[string]int)
	seenTaxon := make(map[string]int)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, fmt.Errorf("input row %d: %w: %v", csvErr.Line, ErrSyntax, csvErr.Err)
		}
		if err != nil {
			return nil, err
		}
		row, _ := cr.FieldPos(0)
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if !header {
			header = true
			for i, name := range record[1:] {
				if _, dup := seenFeature[name]; dup {
					return nil, &ParseError{Row: row, Column: i + 2, Text: name, Err: ErrDuplicateFeature}
				}
				seenFeature[name] = i
				t.Features = append(t.Features, name)
			}
			continue
		}

		if got := len(record) - 1; got != len(t.Features) {
			return nil, &ParseError{Row: row, Got: got, Want: len(t.Features), Err: ErrFieldCount}
		}
		label := record[0]
		if _, dup := seenTaxon[label]; dup {
			return nil, &ParseError{Row: row, Text: label, Err: ErrDuplicateTaxon}
		}
		seenTaxon[label] = row

		values := make([]float64, len(t.Features))
		for i, raw := range record[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Row: row, Column: i + 2, Feature: t.Features[i], Text: raw, Err: ErrBadValue}
			}
			values[i] = v
		}
		t.Taxa = append(t.Taxa, label)
		t.Rows = append(t.Rows, values)
	}

	if !header {
		return nil, ErrNoData
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoTaxa
	}
	return &t, nil
}
