package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/internal/swatch"
)

const (
	maxSwatchCellSize = 512
	maxSwatchPixels   = 16 << 20
)

// SwatchHandler renders PNG swatches from query parameters.
type SwatchHandler struct {
	metrics      *Metrics
	logger       *slog.Logger
	cacheControl string
	defaults     swatch.Options
}

// SwatchConfig configures the swatch handler.
type SwatchConfig struct {
	CacheControl string
	Defaults     swatch.Options // Used for parameters the request leaves out
}

// NewSwatchHandler creates a swatch handler. metrics may be nil.
func NewSwatchHandler(cfg SwatchConfig, metrics *Metrics, logger *slog.Logger) *SwatchHandler {
	return &SwatchHandler{
		metrics:      metrics,
		logger:       logger,
		cacheControl: cfg.CacheControl,
		defaults:     cfg.Defaults,
	}
}

// ServeHTTP handles GET /swatch.png?c=<css>&c=<css>...
//
// Optional parameters: ramp (tint/shade steps around the first color), cell,
// gap, columns, radius, blur, grain, seed, labels, bg.
func (h *SwatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var cells []swatch.Cell
	for _, css := range q["c"] {
		c, err := color.FromCSS(css)
		if err != nil {
			h.fail(w, err)
			return
		}
		cells = append(cells, swatch.Cell{Color: c})
	}
	if len(cells) == 0 {
		http.Error(w, "at least one c parameter is required", http.StatusBadRequest)
		return
	}

	if steps := q.Get("ramp"); steps != "" {
		n, err := strconv.Atoi(steps)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid ramp %q", steps), http.StatusBadRequest)
			return
		}
		cells, err = swatch.Ramp(cells[0].Color, n)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	opts, err := h.options(q)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.serve(w, cells, opts)
}

// serve renders cells and writes the PNG. Oversized canvases are rejected
// before anything is allocated.
func (h *SwatchHandler) serve(w http.ResponseWriter, cells []swatch.Cell, opts swatch.Options) {
	size := swatch.Size(len(cells), opts)
	pixels := size.X * size.Y
	if pixels > maxSwatchPixels {
		http.Error(w, fmt.Sprintf("swatch too large: %dx%d exceeds %d pixels", size.X, size.Y, maxSwatchPixels), http.StatusBadRequest)
		return
	}

	img, err := swatch.Render(cells, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveSwatch(pixels)
	}

	var buf bytes.Buffer
	if err := swatch.EncodePNG(&buf, img); err != nil {
		h.log().Error("Failed to encode swatch", "error", err)
		http.Error(w, "failed to encode swatch", http.StatusInternalServerError)
		return
	}

	if h.cacheControl != "" {
		w.Header().Set("Cache-Control", h.cacheControl)
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log().Error("Failed to write response", "error", err)
	}
}

func (h *SwatchHandler) options(q url.Values) (swatch.Options, error) {
	opts := h.defaults
	var err error

	ints := []struct {
		dst  *int
		name string
	}{
		{&opts.CellSize, "cell"},
		{&opts.Gap, "gap"},
		{&opts.Columns, "columns"},
	}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			if *p.dst, err = strconv.Atoi(v); err != nil {
				return opts, badRequest(fmt.Errorf("invalid %s %q", p.name, v))
			}
		}
	}
	if opts.CellSize > maxSwatchCellSize || opts.Gap > maxSwatchCellSize {
		return opts, badRequest(fmt.Errorf("cell and gap must not exceed %d", maxSwatchCellSize))
	}

	if v := q.Get("radius"); v != "" {
		if opts.Radius, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, badRequest(fmt.Errorf("invalid radius %q", v))
		}
	}
	if v := q.Get("blur"); v != "" {
		blur, err := strconv.ParseFloat(v, 32)
		if err != nil || blur < 0 || blur > 32 {
			return opts, badRequest(fmt.Errorf("invalid blur %q", v))
		}
		opts.Blur = float32(blur)
	}
	if v := q.Get("grain"); v != "" {
		if opts.Grain, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, badRequest(fmt.Errorf("invalid grain %q", v))
		}
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return opts, badRequest(fmt.Errorf("invalid seed %q", v))
		}
	}
	if v := q.Get("labels"); v != "" {
		if opts.Labels, err = strconv.ParseBool(v); err != nil {
			return opts, badRequest(fmt.Errorf("invalid labels %q", v))
		}
	}
	if v := q.Get("bg"); v != "" {
		if opts.Background, err = color.FromCSS(v); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

func (h *SwatchHandler) fail(w http.ResponseWriter, err error) {
	(&API{metrics: h.metrics, logger: h.logger}).writeError(w, err)
}

func (h *SwatchHandler) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
