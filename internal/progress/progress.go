package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressTracker renders a static progress bar for a fixed number of files
type ProgressTracker struct {
	bar   progress.Model
	out   io.Writer
	total int
	done  int
	mu    sync.Mutex
}

// New creates a ProgressTracker writing to out. A nil writer disables output.
func New(out io.Writer, total int) *ProgressTracker {
	return &ProgressTracker{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		out:   out,
		total: total,
	}
}

// Increment marks one more file as processed and redraws the bar
func (p *ProgressTracker) Increment(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.out == nil || p.total == 0 {
		return
	}
	fmt.Fprintf(p.out, "\r%s %d/%d %s", p.bar.ViewAs(p.fraction()), p.done, p.total, name)
	if p.done == p.total {
		fmt.Fprintln(p.out)
	}
}

// fraction returns the processed share in [0, 1]
func (p *ProgressTracker) fraction() float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.done) / float64(p.total)
}
