// Package assets embeds the built-in palette documents.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// PalettesFS holds the YAML palettes shipped with the binary.
//
//go:embed palettes/*.yaml
var PalettesFS embed.FS

// BuiltinPalettes lists the names of the embedded palettes.
func BuiltinPalettes() []string {
	matches, _ := fs.Glob(PalettesFS, "palettes/*.yaml")
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), ".yaml")
	}
	return names
}

// OpenPalette opens the embedded YAML document of a built-in palette.
func OpenPalette(name string) (fs.File, error) {
	return PalettesFS.Open("palettes/" + name + ".yaml")
}
