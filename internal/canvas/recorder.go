package canvas

import "image/color"

// Op identifies a drawing call captured by a Recorder.
type Op int

const (
	OpClear Op = iota
	OpCircle
	OpLine
	OpPolygon
	OpText
)

// Call is one recorded drawing operation with the colour it resolved to.
type Call struct {
	Op     Op
	Points []Vec
	Radius float64
	Width  float64
	Color  color.NRGBA
	Filled bool
	Text   string
	Align  Align
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	state
	Calls []Call
}

func NewRecorder() *Recorder {
	return &Recorder{state: newState()}
}

// Reset drops the recorded calls but keeps the drawing state.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Of returns the recorded calls of kind op in order.
func (r *Recorder) Of(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Points: []Vec{{x, y}, {x + w, y + h}}})
}

func (r *Recorder) FillCircle(x, y, rad float64) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Points: []Vec{{x, y}}, Radius: rad, Color: r.fillColor(), Filled: true})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []Vec{{x0, y0}, {x1, y1}}, Width: r.lineWidth, Color: r.strokeColor()})
}

func (r *Recorder) FillPolygon(pts []Vec) {
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: append([]Vec(nil), pts...), Color: r.fillColor(), Filled: true})
}

func (r *Recorder) StrokePolygon(pts []Vec) {
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: append([]Vec(nil), pts...), Width: r.lineWidth, Color: r.strokeColor()})
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Calls = append(r.Calls, Call{Op: OpText, Points: []Vec{{x, y}}, Text: s, Color: r.fillColor(), Align: r.align})
}
