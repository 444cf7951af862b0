package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/EaheaMozumder/my-portfolio/internal/particles"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestDefaultConfig verifies the built-in values match the particle defaults
func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	want := particles.DefaultConfig()

	if cfg.Particles.Count != want.Count {
		t.Errorf("Expected count %d, got %d", want.Count, cfg.Particles.Count)
	}
	if cfg.Particles.LinkDistance != 90 {
		t.Errorf("Expected link distance 90, got %f", cfg.Particles.LinkDistance)
	}
	if len(cfg.Particles.Palette) != len(want.Palette) {
		t.Fatalf("Expected %d palette entries, got %d", len(want.Palette), len(cfg.Particles.Palette))
	}
	for i := range want.Palette {
		if cfg.Particles.Palette[i] != want.Palette[i] {
			t.Errorf("palette %d: expected %v, got %v", i, want.Palette[i], cfg.Particles.Palette[i])
		}
	}
	if cfg.ContactDelay != ContactDelay {
		t.Errorf("Expected contact delay %v, got %v", ContactDelay, cfg.ContactDelay)
	}
	if len(cfg.Roles) != 3 {
		t.Errorf("Expected 3 roles, got %v", cfg.Roles)
	}
	if !cfg.PreferDark {
		t.Error("Expected dark preference by default")
	}
}

// TestLoadFile verifies values from a TOML file override defaults
func TestLoadFile(t *testing.T) {
	path := writeFile(t, "portfolio.toml", `
name = "Test Person"
seed = 99
roles = ["Gopher"]

[particles]
count = 90
max_speed = 0.7
palette = ["#6c63ff", "#4f45e4", "#b8b5ff"]
link_alpha = 0.4

[contact]
delay = "10ms"
failure_rate = 0.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "Test Person" || cfg.Seed != 99 {
		t.Errorf("Unexpected name/seed %q %d", cfg.Name, cfg.Seed)
	}
	if cfg.Particles.Count != 90 || cfg.Particles.MaxSpeed != 0.7 || cfg.Particles.LinkAlpha != 0.4 {
		t.Errorf("Unexpected particles %+v", cfg.Particles)
	}
	if got := cfg.Particles.Palette[0]; got != (color.NRGBA{R: 0x6c, G: 0x63, B: 0xff, A: 255}) {
		t.Errorf("Expected #6c63ff, got %v", got)
	}
	if cfg.ContactDelay != 10*time.Millisecond || cfg.ContactFailureRate != 0.5 {
		t.Errorf("Unexpected contact settings %v %f", cfg.ContactDelay, cfg.ContactFailureRate)
	}
	if cfg.ConfigFile != path {
		t.Errorf("Expected config file %q, got %q", path, cfg.ConfigFile)
	}
	if cfg.RandSeed() != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.RandSeed())
	}
}

// TestLoadEnvOverride verifies PORTFOLIO_* variables win over defaults
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORTFOLIO_PARTICLES_COUNT", "12")
	t.Setenv("PORTFOLIO_PARTICLES_LINK_DISTANCE", "40")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Particles.Count != 12 {
		t.Errorf("Expected count 12, got %d", cfg.Particles.Count)
	}
	if cfg.Particles.LinkDistance != 40 {
		t.Errorf("Expected link distance 40, got %f", cfg.Particles.LinkDistance)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("Expected no config file, got %q", cfg.ConfigFile)
	}
}

// TestLoadRejectsBadValues verifies validation errors name the key
func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		oob  bool
	}{
		{"bad palette", "[particles]\npalette = [\"not-a-colour\"]\n", false},
		{"bad link colour", "[particles]\nlink_color = \"#zzzzzz\"\n", false},
		{"alpha above one", "[particles]\nalpha = 1.5\n", true},
		{"negative count", "[particles]\ncount = -1\n", true},
		{"inverted radius", "[particles]\nradius_min = 3.0\nradius_max = 1.0\n", true},
		{"failure rate", "[contact]\nfailure_rate = 2.0\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "portfolio.toml", tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.oob && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

// TestLoadMissingExplicitFile verifies an explicit path must exist
func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

// TestParseColor verifies short and long hex forms
func TestParseColor(t *testing.T) {
	c, err := ParseColor(" #fff ")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected white, got %v", c)
	}
	if _, err := ParsePalette(nil); err == nil {
		t.Error("Expected error for empty palette")
	}
}

// TestRandSeedFallsBackToClock verifies a zero seed is replaced
func TestRandSeedFallsBackToClock(t *testing.T) {
	cfg := Default()
	cfg.Seed = 0
	if cfg.RandSeed() == 0 {
		t.Error("Expected non-zero seed")
	}
}
