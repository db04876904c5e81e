package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/manipulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <color> <operation> [amount]",
	Short: "Derive a color with a single operation",
	Long: fmt.Sprintf(`Apply one operation to a CSS color and print the result.

Operations: %s.
The amount is in degrees for spin, ignored by grayscale and invert, and a
percentage (0-100) for everything else.`, opList()),
	Example: `  csscolor adjust "#336699" lighten 20
  csscolor adjust "rgb(255,0,0)" spin 120 --to hsl`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAdjust,
}

var mixCmd = &cobra.Command{
	Use:     "mix <color> <color> [weight]",
	Short:   "Blend two colors",
	Long:    "Blend two CSS colors. weight (0-100, default 50) is the share of the second color.",
	Example: `  csscolor mix "#ff0000" "#0000ff" 25`,
	Args:    cobra.RangeArgs(2, 3),
	RunE:    runMix,
}

func init() {
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(mixCmd)

	adjustCmd.Flags().String("to", "rgb", "Output notation (rgb, hex, hsl)")
	mixCmd.Flags().String("to", "rgb", "Output notation (rgb, hex, hsl)")

	mustBind(adjustCmd, "adjust", "to")
	mustBind(mixCmd, "mix", "to")
}

func opList() string {
	ops := manipulator.Ops()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	out, err := adjust(args)
	if err != nil {
		return err
	}
	return printColor(cmd, out, viper.GetString("adjust.to"))
}

func runMix(cmd *cobra.Command, args []string) error {
	out, err := mix(args)
	if err != nil {
		return err
	}
	return printColor(cmd, out, viper.GetString("mix.to"))
}

func adjust(args []string) (*color.Color, error) {
	c, err := color.FromCSS(args[0])
	if err != nil {
		return nil, err
	}
	op, err := manipulator.ParseOp(args[1])
	if err != nil {
		return nil, err
	}
	amount, err := optionalInt(args, 2, 0)
	if err != nil {
		return nil, err
	}
	return manipulator.Apply(c, op, amount)
}

func mix(args []string) (*color.Color, error) {
	a, err := color.FromCSS(args[0])
	if err != nil {
		return nil, err
	}
	b, err := color.FromCSS(args[1])
	if err != nil {
		return nil, err
	}
	weight, err := optionalInt(args, 2, 50)
	if err != nil {
		return nil, err
	}
	return manipulator.Mix(a, b, weight)
}

func optionalInt(args []string, i, def int) (int, error) {
	if len(args) <= i {
		return def, nil
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", args[i])
	}
	return v, nil
}

func printColor(cmd *cobra.Command, c *color.Color, to string) error {
	n, err := convert.ParseNotation(to)
	if err != nil {
		return err
	}
	s, err := convert.Render(c, n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
