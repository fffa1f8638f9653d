// Package ui draws the progress display shown while waiting.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/djedi23/sleep-progress/internal/tui"
)

// minBarWidth keeps the bar visible on very narrow terminals.
const minBarWidth = 10

// ProgressBar shows how much of a wait has elapsed, followed by the time
// left:
//
//	████████████░░░░░░░░░░░░░░░░ [00:01:23]
//
// It repaints itself on a fixed tick from its own goroutine once started.
type ProgressBar struct {
	mu       sync.Mutex
	writer   io.Writer
	total    time.Duration
	position time.Duration
	width    int
	tick     time.Duration
	color    bool
	profile  termenv.Profile
	renderer *lipgloss.Renderer
	start    time.Time
	running  bool
	done     chan struct{}
	stopped  chan struct{}
	now      func() time.Time
}

// NewProgressBar creates a progress bar for a wait of the given length.
// It writes to stderr by default.
func NewProgressBar(total time.Duration) *ProgressBar {
	pb := &ProgressBar{
		total: total,
		tick:  time.Second,
		color: true,
		now:   time.Now,
	}
	pb.setWriter(os.Stderr)
	return pb
}

// SetWriter sets the output writer
func (pb *ProgressBar) SetWriter(w io.Writer) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.setWriter(w)
}

func (pb *ProgressBar) setWriter(w io.Writer) {
	pb.writer = w
	pb.profile = termenv.Ascii
	if f, ok := w.(*os.File); ok {
		pb.profile = termenv.NewOutput(f).EnvColorProfile()
	}
	pb.renderer = lipgloss.NewRenderer(w)
	pb.renderer.SetColorProfile(pb.profile)
}

// SetWidth sets the total line width. Zero follows the terminal width.
func (pb *ProgressBar) SetWidth(width int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.width = width
}

// SetTick sets the repaint interval. It has no effect once started.
func (pb *ProgressBar) SetTick(tick time.Duration) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if tick > 0 {
		pb.tick = tick
	}
}

// SetColor enables/disables colored output
func (pb *ProgressBar) SetColor(color bool) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.color = color
}

// Set moves the bar to the given elapsed time. The position only moves
// forward and never past the total.
func (pb *ProgressBar) Set(elapsed time.Duration) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.set(elapsed)
}

func (pb *ProgressBar) set(elapsed time.Duration) {
	if elapsed > pb.total {
		elapsed = pb.total
	}
	if elapsed > pb.position {
		pb.position = elapsed
	}
}

// Position returns the elapsed time shown by the bar.
func (pb *ProgressBar) Position() time.Duration {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.position
}

// Remaining returns the time left until the bar is full.
func (pb *ProgressBar) Remaining() time.Duration {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.total - pb.position
}

// Start draws the bar and begins repainting it every tick.
func (pb *ProgressBar) Start() {
	pb.mu.Lock()
	if pb.running {
		pb.mu.Unlock()
		return
	}
	pb.running = true
	pb.start = pb.now()
	pb.done = make(chan struct{})
	pb.stopped = make(chan struct{})
	done, stopped, tick := pb.done, pb.stopped, pb.tick
	pb.mu.Unlock()

	pb.draw()
	go pb.animate(done, stopped, tick)
}

// FinishAndClear stops repainting and erases the bar. It is safe to call
// more than once, and before Start.
func (pb *ProgressBar) FinishAndClear() {
	pb.mu.Lock()
	if !pb.running {
		pb.mu.Unlock()
		return
	}
	pb.running = false
	close(pb.done)
	stopped := pb.stopped
	pb.mu.Unlock()

	<-stopped
	pb.clearLine()
}

func (pb *ProgressBar) animate(done <-chan struct{}, stopped chan<- struct{}, tick time.Duration) {
	defer close(stopped)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			pb.mu.Lock()
			pb.set(pb.now().Sub(pb.start))
			pb.mu.Unlock()
			pb.draw()
		}
	}
}

// Render returns the current bar and ETA as one line, without any cursor
// movement.
func (pb *ProgressBar) Render() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.render()
}

func (pb *ProgressBar) render() string {
	percent := 1.0
	if pb.total > 0 {
		percent = float64(pb.position) / float64(pb.total)
	}

	label := fmt.Sprintf(" [%s]", FormatETA(pb.total-pb.position))

	barWidth := max(pb.lineWidth()-runewidth.StringWidth(label), minBarWidth)
	bar := pb.newBar(barWidth).ViewAs(percent)

	if pb.color {
		label = tui.ETAStyle(pb.renderer).Render(label)
	}
	return bar + label
}

func (pb *ProgressBar) newBar(width int) progress.Model {
	opts := []progress.Option{
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	}
	if pb.color {
		opts = append(opts,
			progress.WithGradient(tui.GradientStart, tui.GradientEnd),
			progress.WithColorProfile(pb.profile))
	} else {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}
	return progress.New(opts...)
}

func (pb *ProgressBar) lineWidth() int {
	if pb.width > 0 {
		return pb.width
	}
	if f, ok := pb.writer.(*os.File); ok {
		return tui.Width(f)
	}
	return tui.DefaultWidth
}

func (pb *ProgressBar) draw() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	fmt.Fprint(pb.writer, "\r\033[K"+pb.render())
}

func (pb *ProgressBar) clearLine() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	fmt.Fprint(pb.writer, "\r\033[K")
}
