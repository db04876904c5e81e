package server

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/csscolor/internal/swatch"
)

func decodePNG(t *testing.T, body []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	return img
}

func TestSwatchHandler(t *testing.T) {
	mux := newTestMux(t, Config{CacheControl: "max-age=60", Swatch: swatch.Options{CellSize: 10, Gap: 2}})

	rec := get(t, mux, "/swatch.png", url.Values{"c": {"#f00", "rgb(0,255,0)", "hsl(240,100%,50%)"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

	img := decodePNG(t, rec.Body.Bytes())
	// 3 cells in one row: 2 + 3*(10+2)
	assert.Equal(t, image.Rect(0, 0, 38, 14), img.Bounds())
}

func TestSwatchHandler_Ramp(t *testing.T) {
	mux := newTestMux(t, Config{})

	rec := get(t, mux, "/swatch.png", url.Values{"c": {"#336699"}, "ramp": {"2"}, "cell": {"8"}, "gap": {"0"}, "columns": {"5"}})
	require.Equal(t, http.StatusOK, rec.Code)

	img := decodePNG(t, rec.Body.Bytes())
	assert.Equal(t, image.Rect(0, 0, 40, 8), img.Bounds())
}

func TestSwatchHandler_Errors(t *testing.T) {
	mux := newTestMux(t, Config{})

	tests := []struct {
		name  string
		query url.Values
	}{
		{"no colors", url.Values{}},
		{"malformed color", url.Values{"c": {"#12"}}},
		{"bad ramp", url.Values{"c": {"#fff"}, "ramp": {"x"}}},
		{"ramp out of range", url.Values{"c": {"#fff"}, "ramp": {"50"}}},
		{"bad cell", url.Values{"c": {"#fff"}, "cell": {"big"}}},
		{"cell too large", url.Values{"c": {"#fff"}, "cell": {"4096"}}},
		{"bad blur", url.Values{"c": {"#fff"}, "blur": {"-1"}}},
		{"bad background", url.Values{"c": {"#fff"}, "bg": {"nope"}}},
		{"bad labels", url.Values{"c": {"#fff"}, "labels": {"maybe"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, mux, "/swatch.png", tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestSwatchHandler_TooLargeRejectedBeforeRendering(t *testing.T) {
	mux := newTestMux(t, Config{})

	colors := make([]string, 1024)
	for i := range colors {
		colors[i] = "#336699"
	}
	query := url.Values{"c": colors, "cell": {"512"}, "gap": {"512"}}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	rec := get(t, mux, "/swatch.png", query)

	runtime.ReadMemStats(&after)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "swatch too large"), rec.Body.String())
	// A rendered canvas would need gigabytes; parsing the request needs a few MB.
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
}
