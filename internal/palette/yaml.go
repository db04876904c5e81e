package palette

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/csscolor/color"
	"gopkg.in/yaml.v3"
)

// Document is the YAML representation of a palette:
//
//	name: brand
//	description: Brand colors
//	colors:
//	  - name: primary
//	    css: "#336699"
type Document struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Attribution string `yaml:"attribution,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Colors      []struct {
		Name string `yaml:"name"`
		CSS  string `yaml:"css"`
	} `yaml:"colors"`
}

// DecodeYAML reads a palette document and parses every color.
func DecodeYAML(r io.Reader) (Metadata, []Entry, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Metadata{}, nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	if doc.Name == "" {
		return Metadata{}, nil, fmt.Errorf("palette name is required")
	}

	entries := make([]Entry, 0, len(doc.Colors))
	seen := make(map[string]bool, len(doc.Colors))
	for i, item := range doc.Colors {
		if item.Name == "" {
			return Metadata{}, nil, fmt.Errorf("color #%d has no name", i+1)
		}
		if seen[item.Name] {
			return Metadata{}, nil, fmt.Errorf("duplicate color name %q", item.Name)
		}
		seen[item.Name] = true

		c, err := color.FromCSS(item.CSS)
		if err != nil {
			return Metadata{}, nil, fmt.Errorf("color %q: %w", item.Name, err)
		}
		entries = append(entries, Entry{Name: item.Name, Position: i, Color: c})
	}

	meta := Metadata{
		Name:        doc.Name,
		Description: doc.Description,
		Attribution: doc.Attribution,
		Version:     doc.Version,
		Count:       len(entries),
	}
	return meta, entries, nil
}
