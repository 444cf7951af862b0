package particles

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
)

// Loop drives a Field once per frame until it is stopped. Stop and Resize
// may be called from any goroutine; the field itself is only touched from
// the goroutine calling Frame or Run.
type Loop struct {
	field   *Field
	surface canvas.Surface

	stopped atomic.Bool
	frames  atomic.Uint64
	links   atomic.Int64

	mu      sync.Mutex
	pending *Bounds
}

func NewLoop(f *Field, s canvas.Surface) *Loop {
	return &Loop{field: f, surface: s}
}

// Frame applies any pending resize and runs one Step. It returns false
// without touching the field once the loop has been stopped.
func (l *Loop) Frame() bool {
	if l.stopped.Load() {
		return false
	}
	l.applyPending()
	l.links.Store(int64(l.field.Step(l.surface)))
	l.present()
	l.frames.Add(1)
	return true
}

// Redraw applies any pending resize and renders the points where they are,
// without a tick. It works while the loop is stopped, so a paused host can
// repaint a new surface.
func (l *Loop) Redraw() {
	l.applyPending()
	l.links.Store(int64(l.field.Render(l.surface)))
	l.present()
}

func (l *Loop) applyPending() {
	l.mu.Lock()
	b := l.pending
	l.pending = nil
	l.mu.Unlock()
	if b != nil {
		l.field.Resize(*b)
	}
}

func (l *Loop) present() {
	if p, ok := l.surface.(canvas.Presenter); ok {
		p.Present()
	}
}

// Run calls Frame for every value received on frames. It returns nil when
// frames is closed or the loop is stopped, and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			if !l.Frame() {
				return nil
			}
		}
	}
}

// Resize queues new bounds; they take effect at the start of the next frame.
func (l *Loop) Resize(b Bounds) {
	l.mu.Lock()
	l.pending = &b
	l.mu.Unlock()
}

func (l *Loop) Stop() { l.stopped.Store(true) }

// Restart lets a stopped loop accept frames again.
func (l *Loop) Restart() { l.stopped.Store(false) }

func (l *Loop) Running() bool { return !l.stopped.Load() }

// Frames returns how many frames have been rendered.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Links returns the link count of the last rendered frame.
func (l *Loop) Links() int { return int(l.links.Load()) }
