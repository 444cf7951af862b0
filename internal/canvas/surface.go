// Package canvas defines the 2-D drawing surface the page widgets paint on,
// shaped after the browser canvas context, and its backends.
package canvas

import "image/color"

// Vec is a position in surface units.
type Vec struct {
	X, Y float64
}

// Align controls where FillText anchors its text horizontally.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is a stateful 2-D drawing context. Fill and stroke colours are
// multiplied by the global alpha when a shape is drawn.
type Surface interface {
	ClearRect(x, y, w, h float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetGlobalAlpha(a float64)
	SetLineWidth(w float64)
	SetTextAlign(a Align)

	FillCircle(x, y, r float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillPolygon(pts []Vec)
	StrokePolygon(pts []Vec)
	// FillText draws s with its baseline at y.
	FillText(s string, x, y float64)
}

// Presenter is implemented by surfaces that buffer drawing until flushed.
type Presenter interface {
	Present()
}

// state is the drawing state shared by every backend.
type state struct {
	fill      color.Color
	stroke    color.Color
	alpha     float64
	lineWidth float64
	align     Align
}

func newState() state {
	return state{
		fill:      color.Black,
		stroke:    color.Black,
		alpha:     1,
		lineWidth: 1,
	}
}

func (s *state) SetFillColor(c color.Color)   { s.fill = c }
func (s *state) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *state) SetGlobalAlpha(a float64)     { s.alpha = clamp01(a) }
func (s *state) SetTextAlign(a Align)         { s.align = a }

func (s *state) SetLineWidth(w float64) {
	if w > 0 {
		s.lineWidth = w
	}
}

func (s *state) fillColor() color.NRGBA   { return WithAlpha(s.fill, s.alpha) }
func (s *state) strokeColor() color.NRGBA { return WithAlpha(s.stroke, s.alpha) }

// WithAlpha converts c to non-premultiplied form and scales its alpha by a.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*clamp01(a) + 0.5)
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
