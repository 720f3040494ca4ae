package output

import (
	"fmt"
	"io"

	"github.com/acorg/christian-beast/pkg/api"
)

// Write dispatches list to the named format's writer.
func Write(w io.Writer, format string, list []api.MatrixV1, header bool) error {
	switch format {
	case FormatText:
		return WriteText(w, list, header)
	case FormatJSON:
		return WriteJSON(w, list)
	case FormatJSONL:
		return WriteJSONL(w, list)
	default:
		return fmt.Errorf("unsupported output %q", format)
	}
}
