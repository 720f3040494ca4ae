// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/acorg/christian-beast/pkg/api"
)

// WriteJSON writes a single JSON array of v1 matrices (pretty-indented).
func WriteJSON(w io.Writer, list []api.MatrixV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// WriteJSONL writes one compact JSON object per line, one matrix per line.
func WriteJSONL(w io.Writer, list []api.MatrixV1) error {
	enc := json.NewEncoder(w)
	for _, m := range list {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}
