// Package particles implements the animated hero background: a fixed-size set
// of drifting points that bounce off the surface edges and are joined by faint
// lines when close to each other.
package particles

import (
	"image/color"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a single animated dot.
type Point struct {
	ID     uint64
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Color  color.NRGBA
}

// Bounds is the area the points move within.
type Bounds struct {
	W, H float64
}

// Empty reports whether there is nothing to draw on.
func (b Bounds) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Rand is the random source used to spawn points.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// spawn builds count points drawing, per point and in order: x, y, radius,
// dx, dy and palette index. Non-positive bounds collapse positions to 0.
func spawn(count int, b Bounds, cfg Config, rng Rand, nextID *uint64) []Point {
	if count <= 0 {
		return nil
	}
	w, h := max(b.W, 0), max(b.H, 0)
	pts := make([]Point, count)
	for i := range pts {
		*nextID++
		p := Point{ID: *nextID}
		p.Pos.X = rng.Float64() * w
		p.Pos.Y = rng.Float64() * h
		p.Radius = cfg.RadiusMin + rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin)
		p.Vel.X = (rng.Float64()*2 - 1) * cfg.MaxSpeed
		p.Vel.Y = (rng.Float64()*2 - 1) * cfg.MaxSpeed
		p.Color = pick(cfg.Palette, rng.Float64())
		pts[i] = p
	}
	return pts
}

func pick(palette []color.NRGBA, u float64) color.NRGBA {
	i := int(u * float64(len(palette)))
	if i >= len(palette) {
		i = len(palette) - 1
	}
	if i < 0 {
		i = 0
	}
	return palette[i]
}
