// Package distance derives pairwise distance data from a parsed table.
//
// For each feature the taxa values are mapped to base-10 logarithms (unless
// raw mode is on) and then differenced pairwise. The flattened form keeps
// only the entries above the matrix diagonal, outer index ascending and inner
// index ascending, which is the order a BEAST configuration expects.
package distance
