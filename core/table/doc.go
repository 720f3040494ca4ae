// Package table reads taxa-by-feature CSV tables and resolves their input
// encoding and compression.
//
// The expected shape is a header row whose first cell is a throwaway
// placeholder followed by one feature name per column, then one row per
// taxon: its label first, then exactly one numeric value per feature.
package table
