package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/EaheaMozumder/my-portfolio/internal/particles"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Frame-time ring buffer for the status line
	FrameRingSize = 120

	// Skills chart placement
	ChartRadius = 70

	// Simulated contact delivery
	ContactDelay       = 1200 * time.Millisecond
	ContactFailureRate = 0.15

	EnvPrefix = "PORTFOLIO"
)

// Config is everything the hosts read at startup.
type Config struct {
	Name      string
	Roles     []string
	Seed      uint64 // 0 picks a time based seed
	Particles particles.Config

	ContactDelay       time.Duration
	ContactFailureRate float64

	ThemeFile  string
	PreferDark bool
	SoundCues  bool
	ConfigFile string
}

var defaultRoles = []string{
	"Web Developer",
	"Data Science Enthusiast",
	"Designer",
}

func setDefaults(v *viper.Viper) {
	p := particles.DefaultConfig()
	palette := make([]string, len(p.Palette))
	for i, c := range p.Palette {
		palette[i] = hex(c)
	}

	v.SetDefault("name", "Eahea Mozumder")
	v.SetDefault("roles", defaultRoles)
	v.SetDefault("seed", 0)

	v.SetDefault("particles.count", p.Count)
	v.SetDefault("particles.max_speed", p.MaxSpeed)
	v.SetDefault("particles.radius_min", p.RadiusMin)
	v.SetDefault("particles.radius_max", p.RadiusMax)
	v.SetDefault("particles.palette", palette)
	v.SetDefault("particles.alpha", p.Alpha)
	v.SetDefault("particles.twinkle", p.Twinkle)
	v.SetDefault("particles.link_distance", p.LinkDistance)
	v.SetDefault("particles.link_alpha", p.LinkAlpha)
	v.SetDefault("particles.link_color", hex(p.LinkColor))
	v.SetDefault("particles.link_width", p.LinkWidth)

	v.SetDefault("contact.delay", ContactDelay)
	v.SetDefault("contact.failure_rate", ContactFailureRate)

	v.SetDefault("theme.file", defaultThemeFile())
	v.SetDefault("theme.prefer_dark", true)
	v.SetDefault("sound.enabled", true)
}

func defaultThemeFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".portfolio-preferences"
	}
	return filepath.Join(dir, "portfolio", "preferences")
}

// Default returns the built-in configuration without reading files or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// defaults are static; a failure here is a programming error
		panic(err)
	}
	return cfg
}

// Load reads an optional .env file, then the config file at path (or
// portfolio.{toml,yaml,json} in the working directory or
// $HOME/.config/portfolio when path is empty), then PORTFOLIO_* env vars.
// A missing default file is fine; a missing explicit path is not.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("portfolio")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "portfolio"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	p := particles.Config{
		Count:        v.GetInt("particles.count"),
		MaxSpeed:     v.GetFloat64("particles.max_speed"),
		RadiusMin:    v.GetFloat64("particles.radius_min"),
		RadiusMax:    v.GetFloat64("particles.radius_max"),
		Alpha:        v.GetFloat64("particles.alpha"),
		Twinkle:      v.GetFloat64("particles.twinkle"),
		LinkDistance: v.GetFloat64("particles.link_distance"),
		LinkAlpha:    v.GetFloat64("particles.link_alpha"),
		LinkWidth:    v.GetFloat64("particles.link_width"),
	}

	var err error
	if p.Palette, err = ParsePalette(v.GetStringSlice("particles.palette")); err != nil {
		return nil, fmt.Errorf("config: %s: %w", "particles.palette", err)
	}
	if p.LinkColor, err = ParseColor(v.GetString("particles.link_color")); err != nil {
		return nil, fmt.Errorf("config: %s: %w", "particles.link_color", err)
	}

	checks := []struct {
		key string
		ok  bool
	}{
		{"particles.count", p.Count >= 0},
		{"particles.max_speed", p.MaxSpeed >= 0},
		{"particles.radius_min", p.RadiusMin >= 0},
		{"particles.radius_max", p.RadiusMax >= p.RadiusMin},
		{"particles.alpha", p.Alpha >= 0 && p.Alpha <= 1},
		{"particles.twinkle", p.Twinkle >= 0 && p.Twinkle <= 1},
		{"particles.link_distance", p.LinkDistance >= 0},
		{"particles.link_alpha", p.LinkAlpha >= 0 && p.LinkAlpha <= 1},
		{"particles.link_width", p.LinkWidth > 0},
		{"contact.failure_rate", v.GetFloat64("contact.failure_rate") >= 0 && v.GetFloat64("contact.failure_rate") <= 1},
		{"contact.delay", v.GetDuration("contact.delay") >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return nil, fmt.Errorf("config: %s: %w", c.key, ErrOutOfRange)
		}
	}

	return &Config{
		Name:               v.GetString("name"),
		Roles:              v.GetStringSlice("roles"),
		Seed:               v.GetUint64("seed"),
		Particles:          p,
		ContactDelay:       v.GetDuration("contact.delay"),
		ContactFailureRate: v.GetFloat64("contact.failure_rate"),
		ThemeFile:          v.GetString("theme.file"),
		PreferDark:         v.GetBool("theme.prefer_dark"),
		SoundCues:          v.GetBool("sound.enabled"),
	}, nil
}

// ErrOutOfRange is wrapped by Load when a numeric option is invalid.
var ErrOutOfRange = errors.New("value out of range")

// RandSeed returns the configured seed, or one derived from the clock.
func (c *Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// ParseColor parses a #rrggbb (or #rgb) colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParsePalette parses a list of hex colours; it must not be empty.
func ParsePalette(list []string) ([]color.NRGBA, error) {
	if len(list) == 0 {
		return nil, errors.New("empty palette")
	}
	out := make([]color.NRGBA, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
