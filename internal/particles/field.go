package particles

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
)

// Config holds the tunables of a field. The two page variants this was taken
// from disagree on most numbers, so none of them is fixed here.
type Config struct {
	Count     int
	MaxSpeed  float64 // per axis, symmetric
	RadiusMin float64
	RadiusMax float64
	Palette   []color.NRGBA
	Alpha     float64
	Twinkle   float64 // extra random alpha added per draw, 0 disables

	LinkDistance float64
	LinkAlpha    float64
	LinkColor    color.NRGBA
	LinkWidth    float64
}

// DefaultPalette is the star palette of the hero section.
var DefaultPalette = []color.NRGBA{
	{R: 180, G: 180, B: 255, A: 255},
	{R: 108, G: 99, B: 255, A: 255},
	{R: 184, G: 181, B: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

func DefaultConfig() Config {
	return Config{
		Count:        80,
		MaxSpeed:     0.35,
		RadiusMin:    0.7,
		RadiusMax:    2.5,
		Palette:      DefaultPalette,
		Alpha:        0.7,
		LinkDistance: 90,
		LinkAlpha:    0.13,
		LinkColor:    color.NRGBA{R: 180, G: 180, B: 255, A: 255},
		LinkWidth:    1,
	}
}

// Field owns a point set and the bounds it moves in. It is not safe for
// concurrent use; drive it from a single goroutine or through a Loop.
type Field struct {
	cfg    Config
	rng    Rand
	bounds Bounds
	count  int
	points []Point
	nextID uint64

	// area covered by the last drawn frame
	painted Bounds
}

func New(cfg Config, rng Rand) *Field {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.RadiusMax < cfg.RadiusMin {
		cfg.RadiusMin, cfg.RadiusMax = cfg.RadiusMax, cfg.RadiusMin
	}
	return &Field{cfg: cfg, rng: rng, count: cfg.Count}
}

// Initialize replaces the point set with count fresh points spread over b and
// returns a copy of them.
func (f *Field) Initialize(count int, b Bounds) []Point {
	f.bounds = b
	f.count = count
	f.points = spawn(count, b, f.cfg, f.rng, &f.nextID)
	return f.Points()
}

// Init spawns the configured number of points.
func (f *Field) Init(b Bounds) { f.Initialize(f.cfg.Count, b) }

// Resize adopts new bounds and respawns the same number of points. Points
// jump to new random positions; nothing carries over from the old set.
func (f *Field) Resize(b Bounds) { f.Initialize(f.count, b) }

func (f *Field) Bounds() Bounds { return f.bounds }

func (f *Field) Config() Config { return f.cfg }

func (f *Field) Len() int { return len(f.points) }

func (f *Field) Points() []Point {
	return append([]Point(nil), f.points...)
}

// Tick advances every point by its velocity and reverses the velocity on any
// axis where the point is out of bounds. Positions are not clamped, so a point
// may sit just outside for a frame while it turns around.
func (f *Field) Tick() {
	for i := range f.points {
		p := &f.points[i]
		p.Pos = r2.Add(p.Pos, p.Vel)
		if p.Pos.X < 0 || p.Pos.X > f.bounds.W {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 || p.Pos.Y > f.bounds.H {
			p.Vel.Y = -p.Vel.Y
		}
	}
}

// Render clears the surface, draws every point and then links each pair
// closer than LinkDistance. It returns the number of links drawn. With empty
// bounds or no points nothing is drawn; only the previous frame is wiped.
//
// The link pass compares every pair, O(n²), which is fine for tens of points.
func (f *Field) Render(s canvas.Surface) int {
	if f.bounds.Empty() || len(f.points) == 0 {
		if !f.painted.Empty() {
			s.ClearRect(0, 0, f.painted.W, f.painted.H)
			f.painted = Bounds{}
		}
		return 0
	}
	s.ClearRect(0, 0, f.bounds.W, f.bounds.H)
	f.painted = f.bounds

	for _, p := range f.points {
		a := f.cfg.Alpha
		if f.cfg.Twinkle > 0 {
			a += f.rng.Float64() * f.cfg.Twinkle
		}
		s.SetGlobalAlpha(a)
		s.SetFillColor(p.Color)
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius)
	}

	s.SetGlobalAlpha(f.cfg.LinkAlpha)
	s.SetStrokeColor(f.cfg.LinkColor)
	s.SetLineWidth(f.cfg.LinkWidth)
	links := 0
	for i := 0; i < len(f.points); i++ {
		a := f.points[i].Pos
		for j := i + 1; j < len(f.points); j++ {
			b := f.points[j].Pos
			if r2.Norm(r2.Sub(a, b)) < f.cfg.LinkDistance {
				s.StrokeLine(a.X, a.Y, b.X, b.Y)
				links++
			}
		}
	}
	s.SetGlobalAlpha(1)
	return links
}

// Step runs one frame: Tick, then Render, so drawn positions are the
// updated ones.
func (f *Field) Step(s canvas.Surface) int {
	f.Tick()
	return f.Render(s)
}
