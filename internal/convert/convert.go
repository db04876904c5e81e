// Package convert renders colors in a chosen CSS notation and converts
// batches of CSS color strings.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/internal/worker"
)

// Notation selects how a color is written.
type Notation string

const (
	NotationRGB Notation = "rgb"
	NotationHex Notation = "hex"
	NotationHSL Notation = "hsl"
)

// ParseNotation validates a user supplied notation name.
func ParseNotation(name string) (Notation, error) {
	switch n := Notation(strings.ToLower(name)); n {
	case NotationRGB, NotationHex, NotationHSL:
		return n, nil
	default:
		return "", fmt.Errorf("unknown notation %q (want rgb, hex or hsl)", name)
	}
}

// Render writes c in notation n.
func Render(c *color.Color, n Notation) (string, error) {
	if n == NotationHSL {
		return c.AsCSSHSL(), nil
	}
	format, err := color.ParseFormat(string(n))
	if err != nil {
		return "", err
	}
	return c.AsCSSRGB(format)
}

// Converter parses CSS color strings and renders them in a fixed notation.
// It satisfies worker.Converter.
type Converter struct {
	Notation Notation
}

// Convert parses input and renders it in the converter's notation.
func (c Converter) Convert(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	col, err := color.FromCSS(input)
	if err != nil {
		return "", err
	}
	return Render(col, c.Notation)
}

// ReadTasks reads one color per line. Blank lines and lines starting with
// '#' followed by a space are skipped; Task.Line keeps the 1-based source line.
func ReadTasks(r io.Reader) ([]worker.Task, error) {
	var tasks []worker.Task

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "# ") || text == "#" {
			continue
		}
		tasks = append(tasks, worker.Task{Index: len(tasks), Line: line, Input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colors: %w", err)
	}

	return tasks, nil
}
