package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:     "info <color>",
	Short:   "Show notations, brightness and contrast of a color",
	Example: `  csscolor info "#336699" --against "#fff"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().String("against", "#ffffff", "Background color for contrast grading")

	mustBind(infoCmd, "info", "against")
}

func runInfo(cmd *cobra.Command, args []string) error {
	c, err := color.FromCSS(args[0])
	if err != nil {
		return err
	}
	bg, err := color.FromCSS(viper.GetString("info.against"))
	if err != nil {
		return fmt.Errorf("invalid --against: %w", err)
	}
	return writeInfo(cmd.OutOrStdout(), c, bg)
}

func writeInfo(w io.Writer, c, bg *color.Color) error {
	hex, _ := c.AsCSSRGB(color.FormatHex)

	brightness := "dark"
	if info.IsLight(c) {
		brightness = "light"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "rgb\t%s\n", c)
	fmt.Fprintf(tw, "hex\t%s\n", hex)
	fmt.Fprintf(tw, "hsl\t%s\n", c.AsCSSHSL())
	fmt.Fprintf(tw, "brightness\t%s\n", brightness)
	fmt.Fprintf(tw, "luminosity\t%.2f\n", info.Luminosity(c))
	fmt.Fprintf(tw, "contrast\t%.2f:1 against %s\n", info.Contrast(c, bg), bg)
	fmt.Fprintf(tw, "normal text\t%s\n", levelName(info.GradeContrast(c, bg, info.FontNormal)))
	fmt.Fprintf(tw, "large text\t%s\n", levelName(info.GradeContrast(c, bg, info.FontLarge)))
	return tw.Flush()
}

func levelName(l info.Level) string {
	if l == info.LevelFailed {
		return "fail"
	}
	return string(l)
}
