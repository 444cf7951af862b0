// Package chime plays the short cues that follow a contact form submission.
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const SampleRate beep.SampleRate = 44100

type Cue int

const (
	Success Cue = iota
	Failure
)

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	Success: {{880, 90 * time.Millisecond}, {1320, 140 * time.Millisecond}},
	Failure: {{440, 120 * time.Millisecond}, {311, 200 * time.Millisecond}},
}

// Tone returns a sine tone of the given length that fades out linearly.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	n := rate.N(d)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for k < len(samples) && i < n {
			env := 1 - float64(i)/float64(n)
			v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * volume * env
			samples[k] = [2]float64{v, v}
			k++
			i++
		}
		return k, true
	})
}

// Streamer returns the notes of cue played back to back.
func Streamer(c Cue, volume float64) beep.Streamer {
	notes := cues[c]
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = Tone(SampleRate, n.freq, n.dur, volume)
	}
	return beep.Seq(parts...)
}

// Player initializes the speaker on first use. When initialization fails
// every later Play returns the same error.
type Player struct {
	Volume float64

	once    sync.Once
	initErr error
}

func NewPlayer() *Player {
	return &Player{Volume: 0.3}
}

func (p *Player) Play(c Cue) error {
	p.once.Do(func() {
		p.initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/20))
	})
	if p.initErr != nil {
		return p.initErr
	}
	speaker.Play(Streamer(c, p.Volume))
	return nil
}
