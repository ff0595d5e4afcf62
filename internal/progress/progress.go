// Package progress renders terminal progress bars and spinners on stderr,
// keeping stdout clean for results and pipes.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Bar is an ASCII progress bar with a fixed total.
type Bar struct {
	Total   int
	Current int
	Label   string
	Width   int
	Enabled bool

	mu  sync.Mutex
	out io.Writer
}

// New creates a bar that advances once per completed step. It is disabled
// when stderr is not a terminal or XLSTACK_NO_PROGRESS=1 is set.
func New(label string, total int) *Bar {
	return &Bar{
		Total:   total,
		Label:   label,
		Width:   30,
		Enabled: shouldEnable(),
		out:     os.Stderr,
	}
}

// Increment advances the bar by one step and redraws it with the given
// status text.
func (b *Bar) Increment(status string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Current++
	if b.Current > b.Total {
		b.Current = b.Total
	}
	b.render(status)
}

// Set moves the bar to an absolute position.
func (b *Bar) Set(n int, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Current = n
	if b.Current > b.Total {
		b.Current = b.Total
	}
	b.render(status)
}

// Finish clears the bar line and prints a completion summary.
func (b *Bar) Finish(summary string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.Enabled {
		return
	}
	fmt.Fprintf(b.writer(), "\r\033[K✓ %s\n", summary)
}

func (b *Bar) render(status string) {
	if !b.Enabled {
		return
	}

	pct := 0.0
	if b.Total > 0 {
		pct = float64(b.Current) / float64(b.Total)
	}
	filled := int(pct * float64(b.Width))
	if filled > b.Width {
		filled = b.Width
	}

	cells := strings.Repeat("=", filled) + strings.Repeat(" ", b.Width-filled)
	fmt.Fprintf(b.writer(), "\r\033[K%s [%s] %d/%d  %s",
		b.Label, cells, b.Current, b.Total, status)
}

func (b *Bar) writer() io.Writer {
	if b.out == nil {
		return os.Stderr
	}
	return b.out
}

// Spinner animates a label for work without a known total.
type Spinner struct {
	Label   string
	Enabled bool

	mu      sync.Mutex
	out     io.Writer
	done    chan struct{}
	stopped bool
}

// NewSpinner creates a spinner, disabled under the same conditions as New.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		Label:   label,
		Enabled: shouldEnable(),
		out:     os.Stderr,
		done:    make(chan struct{}),
	}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	if !s.Enabled {
		return
	}

	s.mu.Lock()
	s.stopped = false
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.mu.Lock()
				if !s.stopped {
					fmt.Fprintf(s.writer(), "\r\033[K%c %s", frames[i%len(frames)], s.Label)
					i++
				}
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and prints a result line.
func (s *Spinner) Stop(result string) {
	s.halt()
	if s.Enabled {
		fmt.Fprintf(s.writer(), "\r\033[K✓ %s\n", result)
	}
}

// Fail halts the animation and prints a failure line.
func (s *Spinner) Fail(result string) {
	s.halt()
	if s.Enabled {
		fmt.Fprintf(s.writer(), "\r\033[K✗ %s\n", result)
	}
}

func (s *Spinner) halt() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Update swaps the label while the spinner runs.
func (s *Spinner) Update(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Label = label
}

func (s *Spinner) writer() io.Writer {
	if s.out == nil {
		return os.Stderr
	}
	return s.out
}

func shouldEnable() bool {
	if os.Getenv("XLSTACK_NO_PROGRESS") == "1" {
		return false
	}
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
