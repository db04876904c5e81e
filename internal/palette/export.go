package palette

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/csscolor/internal/convert"
)

// ExportCSS writes the palette as CSS custom properties on :root, one
// --<palette>-<name> property per color.
func ExportCSS(w io.Writer, name string, entries []Entry, n convert.Notation) error {
	if _, err := fmt.Fprintln(w, ":root {"); err != nil {
		return err
	}
	for _, e := range entries {
		value, err := convert.Render(e.Color, n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  --%s-%s: %s;\n", name, e.Name, value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
