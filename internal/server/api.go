// Package server exposes color conversion, manipulation and rendering over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/info"
	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/manipulator"
)

// API serves the JSON color endpoints.
type API struct {
	metrics *Metrics
	logger  *slog.Logger
}

// NewAPI creates the JSON API. metrics may be nil.
func NewAPI(metrics *Metrics, logger *slog.Logger) *API {
	return &API{metrics: metrics, logger: logger}
}

// ColorResponse describes one color in every notation.
type ColorResponse struct {
	Input      string  `json:"input,omitempty"`
	Output     string  `json:"output,omitempty"`
	RGB        string  `json:"rgb"`
	Hex        string  `json:"hex"`
	HSL        string  `json:"hsl"`
	Red        int     `json:"red"`
	Green      int     `json:"green"`
	Blue       int     `json:"blue"`
	Hue        int     `json:"hue"`
	Saturation int     `json:"saturation"`
	Lightness  int     `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

// InfoResponse carries display metrics of a color against a background.
type InfoResponse struct {
	Color      ColorResponse `json:"color"`
	Against    ColorResponse `json:"against"`
	Light      bool          `json:"light"`
	Luminosity float64       `json:"luminosity"`
	Contrast   float64       `json:"contrast"`
	Normal     info.Level    `json:"normal_text"`
	Large      info.Level    `json:"large_text"`
}

type errorResponse struct {
	Error string `json:"error"`
	Cause string `json:"cause,omitempty"`
}

func describe(c *color.Color) ColorResponse {
	hex, _ := c.AsCSSRGB(color.FormatHex)
	return ColorResponse{
		RGB:        c.String(),
		Hex:        hex,
		HSL:        c.AsCSSHSL(),
		Red:        c.Red(),
		Green:      c.Green(),
		Blue:       c.Blue(),
		Hue:        c.Hue(),
		Saturation: c.Saturation(),
		Lightness:  c.Lightness(),
		Alpha:      c.Alpha(),
	}
}

// Convert handles GET /api/convert?color=<css>&to=<rgb|hex|hsl>.
func (a *API) Convert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("color")
	c, err := color.FromCSS(input)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := describe(c)
	resp.Input = input
	if err := a.render(&resp, c, r.URL.Query().Get("to")); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, resp)
}

// Adjust handles GET /api/adjust?color=<css>&op=<name>&amount=<int>.
func (a *API) Adjust(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := color.FromCSS(q.Get("color"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	op, err := manipulator.ParseOp(q.Get("op"))
	if err != nil {
		a.writeError(w, badRequest(err))
		return
	}
	amount, err := intParam(q.Get("amount"), 0)
	if err != nil {
		a.writeError(w, err)
		return
	}

	out, err := manipulator.Apply(c, op, amount)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := describe(out)
	resp.Input = q.Get("color")
	if err := a.render(&resp, out, q.Get("to")); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, resp)
}

// Mix handles GET /api/mix?a=<css>&b=<css>&weight=<0..100>.
func (a *API) Mix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	first, err := color.FromCSS(q.Get("a"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	second, err := color.FromCSS(q.Get("b"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	weight, err := intParam(q.Get("weight"), 50)
	if err != nil {
		a.writeError(w, err)
		return
	}

	out, err := manipulator.Mix(first, second, weight)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := describe(out)
	if err := a.render(&resp, out, q.Get("to")); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, resp)
}

// Info handles GET /api/info?color=<css>&against=<css>. The background
// defaults to white.
func (a *API) Info(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := color.FromCSS(q.Get("color"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	against := "#ffffff"
	if v := q.Get("against"); v != "" {
		against = v
	}
	bg, err := color.FromCSS(against)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, InfoResponse{
		Color:      describe(c),
		Against:    describe(bg),
		Light:      info.IsLight(c),
		Luminosity: info.Luminosity(c),
		Contrast:   info.Contrast(c, bg),
		Normal:     info.GradeContrast(c, bg, info.FontNormal),
		Large:      info.GradeContrast(c, bg, info.FontLarge),
	})
}

// render fills resp.Output when a target notation was requested.
func (a *API) render(resp *ColorResponse, c *color.Color, to string) error {
	if to == "" {
		return nil
	}
	n, err := convert.ParseNotation(to)
	if err != nil {
		return badRequest(err)
	}
	resp.Output, err = convert.Render(c, n)
	return err
}

type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return requestError{err: err} }

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, badRequest(fmt.Errorf("invalid integer %q", s))
	}
	return v, nil
}

// writeError maps malformed colors and bad parameters to 400 and everything
// else to 500.
func (a *API) writeError(w http.ResponseWriter, err error) {
	var mce *color.MalformedColorError
	var re requestError
	switch {
	case errors.As(err, &mce):
		if a.metrics != nil {
			a.metrics.IncMalformed(mce.Cause.String())
		}
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Cause: mce.Cause.String()})
	case errors.As(err, &re):
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		a.log().Error("Request failed", "error", err)
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log().Error("Failed to write response", "error", err)
	}
}

func (a *API) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}
