// Package progress renders the solver's advisory progress bar on a diagnostic
// stream. The coverage fraction treats the search tree as a complete
// digits^cells space, almost all of which is pruned and never visited, so the
// bar is an estimate that jumps around rather than a measure of work done.
// The visited-node count and rate, on the other hand, are exact.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	asciiRamp   = ">="
	unicodeRamp = " ▏▎▍▌▋▊▉██"

	DefaultInterval = 50000
	DefaultWidth    = 40
)

// Tracker accumulates node visits and periodically redraws an in-place bar.
// All methods are nil-safe so the solver can carry a disabled (nil) tracker
// with no behavior change. A Tracker belongs to a single search; it is not
// safe for concurrent use, which matches the single-threaded engine.
type Tracker struct {
	Out      io.Writer
	Interval int
	Width    int
	Unicode  bool

	total    float64
	visited  uint64
	fraction float64
	start    time.Time
	lastLen  int
}

// New returns a tracker for a search over cells cells with digit domain
// 1..digits, reporting every DefaultInterval nodes on out.
func New(out io.Writer, digits, cells int) *Tracker {
	return &Tracker{
		Out:      out,
		Interval: DefaultInterval,
		Width:    DefaultWidth,
		total:    math.Pow(float64(digits), float64(cells)),
	}
}

// Node records one visited search node at the given coverage fraction,
// redrawing the bar every Interval visits.
func (t *Tracker) Node(fraction float64) {
	if t == nil || t.Out == nil {
		return
	}
	if t.start.IsZero() {
		t.start = time.Now()
	}
	t.fraction = fraction
	if t.Interval <= 0 || t.visited%uint64(t.Interval) == 0 {
		t.draw(fraction)
	}
	t.visited++
}

// Pause erases the bar so a solution can be printed on a clean line. The
// solver calls it right before yielding and Resume once the consumer is done.
func (t *Tracker) Pause() {
	if t == nil || t.Out == nil || t.lastLen == 0 {
		return
	}
	fmt.Fprintf(t.Out, "\r%s\r", strings.Repeat(" ", t.lastLen))
}

// Resume redraws the bar at the fraction of the most recent node.
func (t *Tracker) Resume() {
	if t == nil || t.Out == nil {
		return
	}
	t.draw(t.fraction)
}

// Finish draws the 100% line and the elapsed time; the solver calls it when
// the search returns to depth 0 with the space exhausted.
func (t *Tracker) Finish() {
	if t == nil || t.Out == nil {
		return
	}
	t.draw(1)
	fmt.Fprintf(t.Out, "\nTime elapsed: %.3fs\n", time.Since(t.start).Seconds())
}

func (t *Tracker) draw(fraction float64) {
	elapsed := time.Since(t.start).Seconds()
	if elapsed <= 0 {
		elapsed = 1e-9
	}
	line := fmt.Sprintf("[%-*s] (%3.0f%%) ~%8.1e/%8.1e b, %8.1e v, %8.1e v/s",
		t.Width, Bar(t.Width, fraction, t.Unicode),
		fraction*100, fraction*t.total, t.total,
		float64(t.visited), float64(t.visited)/elapsed)
	fmt.Fprintf(t.Out, "\r%s", line)
	t.lastLen = utf8.RuneCountInString(line)
}

// Bar renders just the bar itself: the ramp's last glyph repeated for the
// integral part of width*fraction, then one intermediate ramp glyph for the
// fractional remainder.
func Bar(width int, fraction float64, unicode bool) string {
	ramp := []rune(asciiRamp)
	if unicode {
		ramp = []rune(unicodeRamp)
	}
	integral, fractional := math.Modf(float64(width) * fraction)
	var b strings.Builder
	for i := 0; i < int(integral); i++ {
		b.WriteRune(ramp[len(ramp)-1])
	}
	if fractional > 0 {
		b.WriteRune(ramp[int(float64(len(ramp)-1)*fractional)])
	}
	return b.String()
}
