package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/internal/palette"
	"github.com/MeKo-Tech/csscolor/internal/swatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch [color...]",
	Short: "Render colors as a PNG swatch",
	Long: `Render CSS colors, or a stored palette, as a grid of cells. --ramp replaces
the input with shades and tints of the first color.`,
	Example: `  csscolor swatch "#336699" "#ff8000" --out brand.png
  csscolor swatch --palette brand --labels --grain 0.4
  csscolor swatch "hsl(210,50%,40%)" --ramp 4 --radius 12 --blur 1.5`,
	RunE: runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	swatchCmd.Flags().StringP("out", "o", "swatch.png", "Output PNG file")
	swatchCmd.Flags().String("palette", "", "Render a stored palette instead of arguments")
	swatchCmd.Flags().Int("ramp", 0, "Shades and tints on each side of the first color")
	swatchCmd.Flags().Int("cell", swatch.DefaultCellSize, "Cell size in pixels")
	swatchCmd.Flags().Int("gap", swatch.DefaultGap, "Gap between cells in pixels")
	swatchCmd.Flags().Int("columns", swatch.DefaultColumns, "Cells per row")
	swatchCmd.Flags().Float64("radius", 6, "Corner radius in pixels")
	swatchCmd.Flags().Float64("blur", 0, "Gaussian blur sigma for soft cell edges (0 disables)")
	swatchCmd.Flags().Float64("grain", 0, "Paper grain strength 0..1 (0 disables)")
	swatchCmd.Flags().Int64("seed", 1337, "Deterministic seed for the grain noise")
	swatchCmd.Flags().Bool("labels", false, "Print names or hex values into the cells")
	swatchCmd.Flags().String("background", "", "Canvas background color (default transparent)")

	mustBind(swatchCmd, "swatch", "out", "palette", "ramp", "cell", "gap", "columns",
		"radius", "blur", "grain", "seed", "labels", "background")
}

func runSwatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	cells, err := swatchCells(viper.GetString("swatch.palette"), args)
	if err != nil {
		return err
	}
	if ramp := viper.GetInt("swatch.ramp"); ramp > 0 {
		if cells, err = swatch.Ramp(cells[0].Color, ramp); err != nil {
			return err
		}
	}

	opts, err := swatchOptions()
	if err != nil {
		return err
	}

	img, err := swatch.Render(cells, opts)
	if err != nil {
		return err
	}

	out := viper.GetString("swatch.out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := swatch.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("Swatch written", "path", out, "cells", len(cells),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// swatchCells loads cells from a stored palette or parses args.
func swatchCells(paletteName string, args []string) ([]swatch.Cell, error) {
	if paletteName != "" {
		entries, err := readPalette(palettePath(paletteName))
		if err != nil {
			return nil, err
		}
		cells := make([]swatch.Cell, len(entries))
		for i, e := range entries {
			cells[i] = swatch.Cell{Color: e.Color, Label: e.Name}
		}
		if len(cells) == 0 {
			return nil, fmt.Errorf("palette %s is empty", paletteName)
		}
		return cells, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no colors given (pass arguments or --palette)")
	}
	cells := make([]swatch.Cell, len(args))
	for i, arg := range args {
		c, err := color.FromCSS(arg)
		if err != nil {
			return nil, err
		}
		cells[i] = swatch.Cell{Color: c}
	}
	return cells, nil
}

// swatchOptions reads the swatch.* settings. serve uses them as defaults
// for /swatch.png.
func swatchOptions() (swatch.Options, error) {
	opts := swatch.Options{
		CellSize: viper.GetInt("swatch.cell"),
		Gap:      viper.GetInt("swatch.gap"),
		Columns:  viper.GetInt("swatch.columns"),
		Radius:   viper.GetFloat64("swatch.radius"),
		Blur:     float32(viper.GetFloat64("swatch.blur")),
		Grain:    viper.GetFloat64("swatch.grain"),
		Seed:     viper.GetInt64("swatch.seed"),
		Labels:   viper.GetBool("swatch.labels"),
	}
	if bg := viper.GetString("swatch.background"); bg != "" {
		c, err := color.FromCSS(bg)
		if err != nil {
			return opts, fmt.Errorf("invalid background: %w", err)
		}
		opts.Background = c
	}
	return opts, nil
}

func palettePath(name string) string {
	return filepath.Join(viper.GetString("palette-dir"), name+palette.Extension)
}
