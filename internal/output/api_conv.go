package output

import "github.com/acorg/christian-beast/pkg/api"

// ToAPIMatrix converts one computed matrix to the stable wire schema (v1).
// Slices are copied so later mutation of the inputs cannot leak into output.
func ToAPIMatrix(feature string, taxa []string, logged bool, values [][]float64) api.MatrixV1 {
	rows := make([][]float64, len(values))
	for i, row := range values {
		rows[i] = append([]float64(nil), row...)
	}
	return api.MatrixV1{
		Feature: feature,
		Taxa:    append([]string(nil), taxa...),
		Logged:  logged,
		Values:  rows,
	}
}
