package chime

import (
	"math"
	"testing"
	"time"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, v := range buf[:n] {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestToneLength verifies the tone emits exactly its duration in samples
func TestToneLength(t *testing.T) {
	n, peak := drain(t, Tone(SampleRate, 440, 100*time.Millisecond, 0.5))
	if want := SampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak > 0.5 || peak == 0 {
		t.Errorf("Expected peak in (0, 0.5], got %f", peak)
	}
}

// TestCueLength verifies the cue sequence covers all of its notes
func TestCueLength(t *testing.T) {
	for _, c := range []Cue{Success, Failure} {
		want := 0
		for _, nt := range cues[c] {
			want += SampleRate.N(nt.dur)
		}
		if n, _ := drain(t, Streamer(c, 0.3)); n != want {
			t.Errorf("cue %d: expected %d samples, got %d", c, want, n)
		}
	}
}
