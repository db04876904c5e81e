// Package palette persists named colors in SQLite palette files.
package palette

import (
	"strconv"

	"github.com/MeKo-Tech/csscolor/color"
)

// Extension is the file suffix used for palette databases.
const Extension = ".palette"

// Metadata describes a palette file.
type Metadata struct {
	Name        string // Palette identifier, also used as CSS custom property prefix
	Description string
	Attribution string
	Version     string
	Count       int // Number of colors, maintained by the writer
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Attribution != "" {
		result["attribution"] = m.Attribution
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.Count > 0 {
		result["count"] = strconv.Itoa(m.Count)
	}

	return result
}

// Entry is a named color at a fixed position in a palette.
type Entry struct {
	Color    *color.Color
	Name     string
	Position int
}
