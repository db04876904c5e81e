package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/MeKo-Tech/csscolor/assets"
	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/internal/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage named color palettes",
	Long:  "Import, list, show and export palettes stored in --palette-dir.",
}

const builtinPrefix = "builtin:"

var paletteImportCmd = &cobra.Command{
	Use:   "import <file.yaml | builtin:name>",
	Short: "Import a YAML palette",
	Long: fmt.Sprintf(`Import a YAML palette document:

  name: brand
  description: Brand colors
  colors:
    - name: primary
      css: "#336699"

Colors with names already in the palette are replaced in place.
Built-in palettes: %s.`, strings.Join(assets.BuiltinPalettes(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runPaletteImport,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored palettes",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the colors of a palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteShow,
}

var paletteExportCmd = &cobra.Command{
	Use:     "export <name>",
	Short:   "Export a palette as CSS custom properties",
	Example: `  csscolor palette export brand --notation hsl > brand.css`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPaletteExport,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteImportCmd, paletteListCmd, paletteShowCmd, paletteExportCmd)

	paletteShowCmd.Flags().String("notation", "hex", "Notation (rgb, hex, hsl)")
	paletteExportCmd.Flags().String("notation", "hex", "Notation (rgb, hex, hsl)")

	mustBind(paletteShowCmd, "palette.show", "notation")
	mustBind(paletteExportCmd, "palette.export", "notation")
}

func runPaletteImport(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	dir := viper.GetString("palette-dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create palette directory: %w", err)
	}

	path, count, err := importPalette(args[0], dir)
	if err != nil {
		return err
	}

	logger.Info("Palette imported", "path", path, "colors", count)
	return nil
}

// importPalette decodes a YAML palette and writes it into dir. It returns
// the database path and the number of imported colors.
func importPalette(yamlPath, dir string) (string, int, error) {
	f, err := openPaletteSource(yamlPath)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	meta, entries, err := palette.DecodeYAML(f)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", yamlPath, err)
	}

	path := filepath.Join(dir, meta.Name+palette.Extension)
	w, err := palette.New(path, meta)
	if err != nil {
		return "", 0, err
	}
	for _, e := range entries {
		if err := w.WriteColor(e.Name, e.Color); err != nil {
			w.Close()
			return "", 0, err
		}
	}
	if err := w.Close(); err != nil {
		return "", 0, err
	}

	return path, len(entries), nil
}

// openPaletteSource opens a YAML file, or an embedded palette for
// "builtin:<name>".
func openPaletteSource(src string) (io.ReadCloser, error) {
	if name, ok := strings.CutPrefix(src, builtinPrefix); ok {
		f, err := assets.OpenPalette(name)
		if err != nil {
			return nil, fmt.Errorf("unknown built-in palette %q (have %s)", name, strings.Join(assets.BuiltinPalettes(), ", "))
		}
		return f, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src, err)
	}
	return f, nil
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	return listPalettes(cmd.OutOrStdout(), viper.GetString("palette-dir"))
}

func listPalettes(w io.Writer, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+palette.Extension))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range paths {
		r, err := palette.OpenReader(p)
		if err != nil {
			return err
		}
		meta, err := r.Metadata()
		r.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", strings.TrimSuffix(filepath.Base(p), palette.Extension), meta.Count, meta.Description)
	}
	return tw.Flush()
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	n, err := convert.ParseNotation(viper.GetString("palette.show.notation"))
	if err != nil {
		return err
	}
	entries, err := readPalette(palettePath(args[0]))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, e := range entries {
		value, err := convert.Render(e.Color, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, value)
	}
	return tw.Flush()
}

func runPaletteExport(cmd *cobra.Command, args []string) error {
	n, err := convert.ParseNotation(viper.GetString("palette.export.notation"))
	if err != nil {
		return err
	}
	entries, err := readPalette(palettePath(args[0]))
	if err != nil {
		return err
	}
	return palette.ExportCSS(cmd.OutOrStdout(), args[0], entries, n)
}

func readPalette(path string) ([]palette.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("palette not found: %w", err)
	}
	r, err := palette.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Colors()
}
