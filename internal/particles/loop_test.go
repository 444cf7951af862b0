package particles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
)

type presentingRecorder struct {
	*canvas.Recorder
	presents int
}

func (p *presentingRecorder) Present() { p.presents++ }

func newTestLoop() (*Loop, *Field, *presentingRecorder) {
	f := New(DefaultConfig(), NewRand(5))
	f.Initialize(10, Bounds{W: 100, H: 100})
	rec := &presentingRecorder{Recorder: canvas.NewRecorder()}
	return NewLoop(f, rec), f, rec
}

// TestLoopRunsUntilFramesClose verifies one step per frame
func TestLoopRunsUntilFramesClose(t *testing.T) {
	l, _, rec := newTestLoop()
	frames := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		frames <- time.Now()
	}
	close(frames)

	if err := l.Run(context.Background(), frames); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if l.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", l.Frames())
	}
	if rec.presents != 3 {
		t.Errorf("Expected 3 presents, got %d", rec.presents)
	}
	if rec.Count(canvas.OpClear) != 3 {
		t.Errorf("Expected 3 clears, got %d", rec.Count(canvas.OpClear))
	}
}

// TestLoopStopHaltsFrames verifies a stopped loop leaves the field untouched
func TestLoopStopHaltsFrames(t *testing.T) {
	l, f, _ := newTestLoop()
	l.Frame()
	before := f.Points()

	l.Stop()
	if l.Running() {
		t.Error("Expected loop to report stopped")
	}
	if l.Frame() {
		t.Error("Expected Frame to refuse after Stop")
	}

	frames := make(chan time.Time, 1)
	frames <- time.Now()
	if err := l.Run(context.Background(), frames); err != nil {
		t.Errorf("Expected nil error from stopped loop, got %v", err)
	}

	after := f.Points()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("point %d moved after Stop", i)
		}
	}
	if l.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", l.Frames())
	}

	l.Restart()
	if !l.Frame() {
		t.Error("Expected Frame to run after Restart")
	}
}

// TestLoopStopFromAnotherGoroutine verifies Run exits after a concurrent Stop
func TestLoopStopFromAnotherGoroutine(t *testing.T) {
	l, _, _ := newTestLoop()
	frames := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background(), frames) }()

	frames <- time.Now()
	l.Stop()

	// Run either already saw the flag or needs one more frame to see it.
	var err error
	select {
	case frames <- time.Now():
		select {
		case err = <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after Stop")
		}
	case err = <-done:
	}
	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

// TestLoopContextCancel verifies cancellation ends Run with ctx.Err()
func TestLoopContextCancel(t *testing.T) {
	l, _, _ := newTestLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Run(ctx, make(chan time.Time))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestLoopResizeAppliedOnNextFrame verifies queued bounds land before the step
func TestLoopResizeAppliedOnNextFrame(t *testing.T) {
	l, f, _ := newTestLoop()
	l.Resize(Bounds{W: 300, H: 50})
	if f.Bounds() != (Bounds{W: 100, H: 100}) {
		t.Fatalf("Expected resize to wait for the next frame")
	}
	l.Frame()
	if f.Bounds() != (Bounds{W: 300, H: 50}) {
		t.Errorf("Expected bounds 300x50, got %v", f.Bounds())
	}
	if f.Len() != 10 {
		t.Errorf("Expected count to survive resize, got %d", f.Len())
	}
}

// TestLoopRedrawWhileStopped verifies a stopped loop can repaint after a
// resize without moving the points
func TestLoopRedrawWhileStopped(t *testing.T) {
	l, f, rec := newTestLoop()
	l.Stop()
	l.Resize(Bounds{W: 60, H: 40})

	rec.Reset()
	l.Redraw()
	if f.Bounds() != (Bounds{W: 60, H: 40}) {
		t.Errorf("Expected bounds 60x40, got %v", f.Bounds())
	}
	if rec.Count(canvas.OpClear) != 1 || rec.Count(canvas.OpCircle) != f.Len() {
		t.Errorf("Expected one clear and %d circles, got %d and %d",
			f.Len(), rec.Count(canvas.OpClear), rec.Count(canvas.OpCircle))
	}
	if rec.presents != 1 {
		t.Errorf("Expected 1 present, got %d", rec.presents)
	}

	before := f.Points()
	l.Redraw()
	for i, p := range f.Points() {
		if p.Pos != before[i].Pos {
			t.Fatalf("point %d moved during redraw", i)
		}
	}
	if l.Frames() != 0 {
		t.Errorf("Expected redraw not to count frames, got %d", l.Frames())
	}
}
