package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/csscolor/internal/swatch"
)

// Config configures the HTTP server routes.
type Config struct {
	Registry     *prometheus.Registry // nil disables /metrics and request metrics
	PaletteDir   string               // empty disables /palettes
	CacheControl string
	Swatch       swatch.Options
}

// NewMux wires every route.
func NewMux(cfg Config, logger *slog.Logger) (*http.ServeMux, error) {
	var metrics *Metrics
	if cfg.Registry != nil {
		metrics = NewMetrics()
		if err := metrics.Register(cfg.Registry); err != nil {
			return nil, err
		}
	}

	api := NewAPI(metrics, logger)
	swatches := NewSwatchHandler(SwatchConfig{
		CacheControl: cfg.CacheControl,
		Defaults:     cfg.Swatch,
	}, metrics, logger)

	mux := http.NewServeMux()
	handle := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle(pattern, withCORS(instrument(metrics, route, h)))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	handle("GET /api/convert", "/api/convert", api.Convert)
	handle("GET /api/adjust", "/api/adjust", api.Adjust)
	handle("GET /api/mix", "/api/mix", api.Mix)
	handle("GET /api/info", "/api/info", api.Info)
	handle("GET /swatch.png", "/swatch.png", swatches.ServeHTTP)

	if cfg.PaletteDir != "" {
		palettes, err := NewPaletteHandler(PaletteConfig{
			Dir:          cfg.PaletteDir,
			CacheControl: cfg.CacheControl,
		}, swatches, logger)
		if err != nil {
			return nil, err
		}
		handle("GET /palettes", "/palettes", palettes.List)
		handle("GET /palettes/{file}", "/palettes/{file}", palettes.Serve)
	}

	if cfg.Registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return mux, nil
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// instrument records request count and latency under a fixed route label.
func instrument(metrics *Metrics, route string, next http.Handler) http.Handler {
	if metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		metrics.ObserveRequest(route, strconv.Itoa(rec.status), time.Since(start).Seconds())
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
