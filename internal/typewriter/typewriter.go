// Package typewriter animates the rotating role line under the hero title.
package typewriter

import "time"

const (
	TypeDelay   = 90 * time.Millisecond
	DeleteDelay = 30 * time.Millisecond

	// hold is how many extra steps a finished role stays before deleting
	hold = 6
)

// Banner types a role one rune per step, holds it, deletes it and moves
// to the next role. A caret is shown on even positions so it blinks.
type Banner struct {
	roles   [][]rune
	index   int
	pos     int
	reverse bool

	text  string
	delay time.Duration
	acc   time.Duration
}

// New returns a banner that has already taken its first step.
func New(roles []string) *Banner {
	b := &Banner{}
	for _, r := range roles {
		b.roles = append(b.roles, []rune(r))
	}
	b.delay = b.Step()
	return b
}

// Step advances one position and returns the delay before the next step.
func (b *Banner) Step() time.Duration {
	if len(b.roles) == 0 {
		b.text = ""
		return TypeDelay
	}
	current := b.roles[b.index]
	if !b.reverse {
		b.pos++
		if b.pos > len(current)+hold {
			b.reverse = true
		}
	} else {
		b.pos--
		if b.pos == 0 {
			b.reverse = false
			b.index = (b.index + 1) % len(b.roles)
		}
	}

	show := string(current[:min(b.pos, len(current))])
	if b.pos%2 == 0 {
		show += "|"
	}
	b.text = show

	if b.reverse {
		return DeleteDelay
	}
	return TypeDelay
}

// Advance feeds elapsed host time and runs every step that fell due.
func (b *Banner) Advance(dt time.Duration) {
	b.acc += dt
	for b.acc >= b.delay {
		b.acc -= b.delay
		b.delay = b.Step()
	}
}

func (b *Banner) Text() string { return b.text }

// Role returns the index of the role being typed.
func (b *Banner) Role() int { return b.index }
