// Package theme switches between the dark and light page themes and keeps
// the choice under a single preference key.
package theme

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Key is the preference key the theme is stored under.
const Key = "theme"

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "dark" or "light" in any case.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}
	return "", false
}

// Palette is the set of colours a theme paints the page with.
type Palette struct {
	Background color.NRGBA
	Panel      color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
	Error      color.NRGBA
	Success    color.NRGBA
}

func (t Theme) Palette() Palette {
	p := Palette{
		Accent:  color.NRGBA{R: 0x6c, G: 0x63, B: 0xff, A: 0xff},
		Error:   color.NRGBA{R: 0xe2, G: 0x3a, B: 0x41, A: 0xff},
		Success: color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 0xff},
	}
	if t == Light {
		p.Background = color.NRGBA{R: 0xf7, G: 0xf7, B: 0xfb, A: 0xff}
		p.Panel = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0}
		p.Text = color.NRGBA{R: 0x1d, G: 0x1b, B: 0x2e, A: 0xff}
		p.Muted = color.NRGBA{R: 0x6b, G: 0x6b, B: 0x80, A: 0xff}
		return p
	}
	p.Background = color.NRGBA{R: 0x0e, G: 0x0d, B: 0x1a, A: 0xff}
	p.Panel = color.NRGBA{R: 0x1a, G: 0x18, B: 0x2e, A: 0xd0}
	p.Text = color.NRGBA{R: 0xee, G: 0xee, B: 0xf6, A: 0xff}
	p.Muted = color.NRGBA{R: 0x9a, G: 0x98, B: 0xb8, A: 0xff}
	return p
}

// Store persists the theme preference.
type Store interface {
	Load() (Theme, bool, error)
	Save(Theme) error
}

// FileStore keeps the preference as a key=value line in a small file.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (Theme, bool, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != Key {
			continue
		}
		t, ok := Parse(value)
		return t, ok, nil
	}
	return "", false, scanner.Err()
}

func (s FileStore) Save(t Theme) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}
	return os.WriteFile(s.Path, []byte(Key+"="+string(t)+"\n"), 0o644)
}

// MemoryStore keeps the preference for the lifetime of the process.
type MemoryStore struct {
	theme Theme
}

// NewMemoryStore returns a store holding t; an empty t stores nothing.
func NewMemoryStore(t Theme) *MemoryStore { return &MemoryStore{theme: t} }

func (m *MemoryStore) Load() (Theme, bool, error) { return m.theme, m.theme != "", nil }

func (m *MemoryStore) Save(t Theme) error {
	m.theme = t
	return nil
}

// Resolve returns the stored theme, falling back to the system preference
// when nothing usable is stored.
func Resolve(s Store, prefersDark bool) Theme {
	if t, ok, err := s.Load(); err == nil && ok {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Switcher holds the active theme and writes every change to its store.
type Switcher struct {
	store   Store
	current Theme
}

func NewSwitcher(s Store, prefersDark bool) *Switcher {
	return &Switcher{store: s, current: Resolve(s, prefersDark)}
}

func (sw *Switcher) Current() Theme { return sw.current }

// Set applies t and persists it. The theme changes even if saving fails.
func (sw *Switcher) Set(t Theme) error {
	sw.current = t
	return sw.store.Save(t)
}

func (sw *Switcher) Toggle() (Theme, error) {
	t := sw.current.Toggle()
	return t, sw.Set(t)
}
