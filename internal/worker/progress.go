package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MeKo-Tech/csscolor/color"
)

const (
	barWidth       = 24
	maxListedLines = 10
)

// Progress collects per-batch conversion statistics: which input notations
// were seen, which source lines failed and why. When enabled it redraws a
// one-line status on every update.
type Progress struct {
	startTime   time.Time
	output      io.Writer
	inputs      map[string]int
	causes      map[string]int
	failedLines []int
	total       int
	completed   int
	mu          sync.Mutex
	enabled     bool
}

// NewProgress creates a tracker for a batch of total colors.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		startTime: time.Now(),
		output:    os.Stderr,
		inputs:    make(map[string]int),
		causes:    make(map[string]int),
		total:     total,
		enabled:   enabled,
	}
}

// Observe records one finished conversion. It has the ProgressFunc signature.
func (p *Progress) Observe(r Result, completed, total int) {
	p.mu.Lock()
	p.completed = completed
	p.total = total
	p.inputs[InputNotation(r.Task.Input)]++
	if r.Err != nil {
		p.failedLines = append(p.failedLines, r.Task.Line)
		p.causes[FailureCause(r.Err)]++
	}
	status := p.status()
	p.mu.Unlock()

	if p.enabled {
		fmt.Fprint(p.output, "\r"+status)
	}
}

// Callback returns Observe for use as Config.OnProgress.
func (p *Progress) Callback() ProgressFunc {
	return p.Observe
}

// Done redraws the final status and ends the line.
func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	status := p.status()
	p.mu.Unlock()
	fmt.Fprintln(p.output, "\r"+status)
}

// FailedLines returns the source lines of failed conversions in ascending order.
func (p *Progress) FailedLines() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	lines := slices.Clone(p.failedLines)
	slices.Sort(lines)
	return lines
}

// Inputs returns how many inputs were seen per notation (hex, rgb, rgba, hsl,
// hsla, other).
func (p *Progress) Inputs() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.inputs)
}

// Causes returns how many conversions failed per cause.
func (p *Progress) Causes() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.causes)
}

// Summary describes the finished batch, e.g.
// "converted 8/10 colors in 2s (hex=6 rgb=4); failed lines 3, 7 (syntax error=2)".
func (p *Progress) Summary() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	failed := len(p.failedLines)
	s := fmt.Sprintf("converted %d/%d colors in %s (%s)",
		p.completed-failed, p.total, roundDuration(time.Since(p.startTime)), formatCounts(p.inputs))
	if failed == 0 {
		return s
	}

	lines := slices.Clone(p.failedLines)
	slices.Sort(lines)
	return s + fmt.Sprintf("; failed lines %s (%s)", formatLines(lines), formatCounts(p.causes))
}

// status renders the progress line. Callers hold p.mu.
func (p *Progress) status() string {
	elapsed := time.Since(p.startTime)

	filled := barWidth
	percent := 100
	if p.total > 0 {
		filled = min(barWidth, p.completed*barWidth/p.total)
		percent = p.completed * 100 / p.total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s%s] %3d%% %d/%d colors",
		strings.Repeat("=", filled), strings.Repeat(" ", barWidth-filled), percent, p.completed, p.total)
	if n := len(p.failedLines); n > 0 {
		fmt.Fprintf(&b, ", %d failed", n)
	}

	switch {
	case p.completed >= p.total:
		fmt.Fprintf(&b, ", done in %s", roundDuration(elapsed))
	case p.completed > 0:
		perColor := elapsed / time.Duration(p.completed)
		fmt.Fprintf(&b, ", ETA %s", roundDuration(perColor*time.Duration(p.total-p.completed)))
	}
	return b.String()
}

// InputNotation classifies a CSS color string by its leading keyword.
func InputNotation(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.HasPrefix(s, "#"):
		return "hex"
	case strings.HasPrefix(s, "rgba("):
		return "rgba"
	case strings.HasPrefix(s, "rgb("):
		return "rgb"
	case strings.HasPrefix(s, "hsla("):
		return "hsla"
	case strings.HasPrefix(s, "hsl("):
		return "hsl"
	default:
		return "other"
	}
}

// FailureCause names the reason a conversion failed.
func FailureCause(err error) string {
	var malformed *color.MalformedColorError
	switch {
	case errors.As(err, &malformed):
		return malformed.Cause.String()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}

func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func formatLines(lines []int) string {
	parts := make([]string, 0, min(len(lines), maxListedLines))
	for _, l := range lines[:min(len(lines), maxListedLines)] {
		parts = append(parts, fmt.Sprint(l))
	}
	s := strings.Join(parts, ", ")
	if extra := len(lines) - maxListedLines; extra > 0 {
		s += fmt.Sprintf(" and %d more", extra)
	}
	return s
}

func roundDuration(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Second)
}
