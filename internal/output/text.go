// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/acorg/christian-beast/core/beastxml"
	"github.com/acorg/christian-beast/pkg/api"
)

// WriteText prints one TSV block per matrix: a "# feature:" banner, a taxon
// column-header line, then one labelled row per taxon. header=false drops the
// banner and column line, leaving bare rows for piping.
func WriteText(w io.Writer, list []api.MatrixV1, header bool) error {
	for _, m := range list {
		if header {
			suffix := ""
			if !m.Logged {
				suffix = " (raw)"
			}
			if _, err := fmt.Fprintf(w, "# feature: %s%s\n", m.Feature, suffix); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "taxon"); err != nil {
				return err
			}
			for _, taxon := range m.Taxa {
				if _, err := fmt.Fprintf(w, "\t%s", taxon); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for i, row := range m.Values {
			if _, err := io.WriteString(w, m.Taxa[i]); err != nil {
				return err
			}
			for _, v := range row {
				if _, err := fmt.Fprintf(w, "\t%s", beastxml.FormatValue(v)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
