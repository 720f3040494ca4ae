// pkg/api/matrix_v1.go
package api

// MatrixV1 is the stable JSON/JSONL schema for one feature's pairwise
// distance matrix. Keep fields, names, and types stable. Add new fields only
// with ",omitempty".
type MatrixV1 struct {
	Feature string      `json:"feature"`
	Taxa    []string    `json:"taxa"`
	Logged  bool        `json:"logged"` // false when raw values were differenced
	Values  [][]float64 `json:"values"` // row-major, Values[i][j] = x[i]-x[j]
}
