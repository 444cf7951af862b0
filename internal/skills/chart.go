// Package skills draws the radial skills chart.
package skills

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
)

// Skill is one axis of the chart; Level is a percentage.
type Skill struct {
	Name  string
	Level float64
	Color color.NRGBA
}

var Default = []Skill{
	{Name: "HTML", Level: 90, Color: color.NRGBA{R: 0x6c, G: 0x63, B: 0xff, A: 0xff}},
	{Name: "CSS", Level: 86, Color: color.NRGBA{R: 0x4f, G: 0x45, B: 0xe4, A: 0xff}},
	{Name: "JavaScript", Level: 82, Color: color.NRGBA{R: 0xb8, G: 0xb5, B: 0xff, A: 0xff}},
	{Name: "Python", Level: 78, Color: color.NRGBA{R: 0x51, G: 0x42, B: 0xd8, A: 0xff}},
}

var (
	axisColor  = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	labelColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	areaColor  = color.NRGBA{R: 108, G: 99, B: 255, A: 0xff}
)

const (
	areaAlpha = 0.18
	dotRadius = 4
	labelLift = 8
)

// Chart places skills on evenly spaced axes starting straight up. Levels
// spring from zero to their targets once revealed.
type Chart struct {
	Skills []Skill
	Center canvas.Vec
	Radius float64

	spring   harmonica.Spring
	shown    []float64
	vel      []float64
	revealed bool
}

func NewChart(skills []Skill, center canvas.Vec, radius float64) *Chart {
	return &Chart{
		Skills: skills,
		Center: center,
		Radius: radius,
		spring: harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.8),
		shown:  make([]float64, len(skills)),
		vel:    make([]float64, len(skills)),
	}
}

func (c *Chart) angle(i int) float64 {
	return 2*math.Pi*float64(i)/float64(len(c.Skills)) - math.Pi/2
}

func (c *Chart) at(i int, r float64) canvas.Vec {
	a := c.angle(i)
	return canvas.Vec{X: c.Center.X + math.Cos(a)*r, Y: c.Center.Y + math.Sin(a)*r}
}

// Axis returns the outer end of axis i.
func (c *Chart) Axis(i int) canvas.Vec { return c.at(i, c.Radius) }

// Vertices returns the polygon for the levels currently shown.
func (c *Chart) Vertices() []canvas.Vec {
	out := make([]canvas.Vec, len(c.Skills))
	for i := range c.Skills {
		out[i] = c.at(i, c.Radius*c.shown[i]/100)
	}
	return out
}

// Reveal starts the grow-in animation.
func (c *Chart) Reveal() { c.revealed = true }

// Update advances the spring by one 60 FPS frame.
func (c *Chart) Update() {
	if !c.revealed {
		return
	}
	for i, s := range c.Skills {
		c.shown[i], c.vel[i] = c.spring.Update(c.shown[i], c.vel[i], s.Level)
	}
}

// Settle jumps straight to the target levels.
func (c *Chart) Settle() {
	c.revealed = true
	for i, s := range c.Skills {
		c.shown[i] = s.Level
		c.vel[i] = 0
	}
}

// Shown returns the level currently displayed for skill i.
func (c *Chart) Shown(i int) float64 { return c.shown[i] }

// Draw paints the axes, their dots and labels, then the level polygon.
func (c *Chart) Draw(s canvas.Surface) {
	if len(c.Skills) == 0 {
		return
	}
	s.SetGlobalAlpha(1)
	s.SetTextAlign(canvas.AlignCenter)
	for i, sk := range c.Skills {
		end := c.Axis(i)
		s.SetStrokeColor(axisColor)
		s.SetLineWidth(1.5)
		s.StrokeLine(c.Center.X, c.Center.Y, end.X, end.Y)

		s.SetFillColor(sk.Color)
		s.FillCircle(end.X, end.Y, dotRadius)

		s.SetFillColor(labelColor)
		s.FillText(sk.Name, end.X, end.Y-labelLift)
	}
	s.SetTextAlign(canvas.AlignLeft)

	poly := c.Vertices()
	s.SetGlobalAlpha(areaAlpha)
	s.SetFillColor(areaColor)
	s.FillPolygon(poly)
	s.SetGlobalAlpha(1)
	s.SetStrokeColor(areaColor)
	s.SetLineWidth(2.5)
	s.StrokePolygon(poly)
}
