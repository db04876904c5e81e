package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/internal/palette"
	"github.com/MeKo-Tech/csscolor/internal/swatch"
)

var paletteName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// PaletteHandler serves palettes stored as palette databases in one directory.
type PaletteHandler struct {
	swatches     *SwatchHandler
	logger       *slog.Logger
	dir          string
	cacheControl string
}

// PaletteConfig configures the palette handler.
type PaletteConfig struct {
	Dir          string
	CacheControl string
}

// NewPaletteHandler creates a palette handler. swatches renders
// /palettes/{name}.png and may be nil to disable it.
func NewPaletteHandler(cfg PaletteConfig, swatches *SwatchHandler, logger *slog.Logger) (*PaletteHandler, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", cfg.Dir)
	}

	return &PaletteHandler{
		swatches:     swatches,
		logger:       logger,
		dir:          cfg.Dir,
		cacheControl: cfg.CacheControl,
	}, nil
}

// PaletteSummary is one entry of the palette listing.
type PaletteSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// List handles GET /palettes.
func (h *PaletteHandler) List(w http.ResponseWriter, r *http.Request) {
	paths, err := filepath.Glob(filepath.Join(h.dir, "*"+palette.Extension))
	if err != nil {
		h.log().Error("Failed to list palettes", "error", err)
		http.Error(w, "failed to list palettes", http.StatusInternalServerError)
		return
	}
	slices.Sort(paths)

	list := make([]PaletteSummary, 0, len(paths))
	for _, p := range paths {
		meta, err := readMetadata(p)
		if err != nil {
			h.log().Warn("Skipping unreadable palette", "path", p, "error", err)
			continue
		}
		list = append(list, PaletteSummary{
			Name:        strings.TrimSuffix(filepath.Base(p), palette.Extension),
			Description: meta.Description,
			Count:       meta.Count,
		})
	}

	(&API{logger: h.logger}).writeJSON(w, http.StatusOK, list)
}

// Serve handles GET /palettes/{file}: <name>.css exports custom properties
// (notation from ?notation=, default hex) and <name>.png renders a swatch.
func (h *PaletteHandler) Serve(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := filepath.Ext(file)
	name := strings.TrimSuffix(file, ext)
	if !paletteName.MatchString(name) {
		http.NotFound(w, r)
		return
	}

	entries, err := h.entries(name)
	if errors.Is(err, os.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log().Error("Failed to read palette", "palette", name, "error", err)
		http.Error(w, "failed to read palette", http.StatusInternalServerError)
		return
	}

	switch ext {
	case ".css":
		h.serveCSS(w, r, name, entries)
	case ".png":
		if h.swatches == nil || len(entries) == 0 {
			http.NotFound(w, r)
			return
		}
		cells := make([]swatch.Cell, len(entries))
		for i, e := range entries {
			cells[i] = swatch.Cell{Color: e.Color, Label: e.Name}
		}
		opts, err := h.swatches.options(r.URL.Query())
		if err != nil {
			h.swatches.fail(w, err)
			return
		}
		h.swatches.serve(w, cells, opts)
	default:
		http.NotFound(w, r)
	}
}

func (h *PaletteHandler) serveCSS(w http.ResponseWriter, r *http.Request, name string, entries []palette.Entry) {
	notation := convert.NotationHex
	if v := r.URL.Query().Get("notation"); v != "" {
		n, err := convert.ParseNotation(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		notation = n
	}

	if h.cacheControl != "" {
		w.Header().Set("Cache-Control", h.cacheControl)
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := palette.ExportCSS(w, name, entries, notation); err != nil {
		h.log().Error("Failed to write palette", "palette", name, "error", err)
	}
}

func (h *PaletteHandler) entries(name string) ([]palette.Entry, error) {
	path := filepath.Join(h.dir, name+palette.Extension)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	reader, err := palette.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return reader.Colors()
}

func readMetadata(path string) (palette.Metadata, error) {
	reader, err := palette.OpenReader(path)
	if err != nil {
		return palette.Metadata{}, err
	}
	defer reader.Close()
	return reader.Metadata()
}

func (h *PaletteHandler) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
