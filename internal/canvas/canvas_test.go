package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestWithAlpha verifies alpha scaling on opaque and translucent colours
func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		in    color.Color
		alpha float64
		want  color.NRGBA
	}{
		{"opaque half", color.NRGBA{R: 180, G: 180, B: 255, A: 255}, 0.5, color.NRGBA{R: 180, G: 180, B: 255, A: 128}},
		{"clamped above one", color.NRGBA{R: 1, G: 2, B: 3, A: 200}, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 200}},
		{"clamped below zero", color.NRGBA{R: 1, G: 2, B: 3, A: 200}, -1, color.NRGBA{R: 1, G: 2, B: 3, A: 0}},
		{"nil colour", nil, 1, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithAlpha(tt.in, tt.alpha); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestRecorderResolvesState verifies recorded calls carry the colour in effect
func TestRecorderResolvesState(t *testing.T) {
	r := NewRecorder()
	r.SetFillColor(color.NRGBA{R: 255, A: 255})
	r.SetGlobalAlpha(0.5)
	r.FillCircle(1, 2, 3)

	r.SetStrokeColor(color.NRGBA{G: 255, A: 255})
	r.SetLineWidth(2)
	r.SetGlobalAlpha(1)
	r.StrokeLine(0, 0, 10, 10)

	if r.Count(OpCircle) != 1 || r.Count(OpLine) != 1 {
		t.Fatalf("Expected one circle and one line, got %d calls", len(r.Calls))
	}
	circle := r.Of(OpCircle)[0]
	if circle.Color.A != 128 || circle.Radius != 3 {
		t.Errorf("Expected alpha 128 radius 3, got %d %f", circle.Color.A, circle.Radius)
	}
	line := r.Of(OpLine)[0]
	if line.Width != 2 || line.Color.G != 255 || line.Color.A != 255 {
		t.Errorf("Unexpected line call %+v", line)
	}

	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("Expected no calls after reset, got %d", len(r.Calls))
	}
}

// TestLineWidthIgnoresNonPositive verifies invalid widths keep the previous one
func TestLineWidthIgnoresNonPositive(t *testing.T) {
	r := NewRecorder()
	r.SetLineWidth(3)
	r.SetLineWidth(0)
	r.StrokeLine(0, 0, 1, 1)
	if w := r.Calls[0].Width; w != 3 {
		t.Errorf("Expected width 3, got %f", w)
	}
}

// TestImageClearAndFill verifies the gg backend paints background and shapes
func TestImageClearAndFill(t *testing.T) {
	im, err := NewImage(40, 40)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	bg := color.NRGBA{R: 10, G: 12, B: 20, A: 255}
	im.SetBackground(bg)
	im.ClearRect(0, 0, 40, 40)

	if got := color.NRGBAModel.Convert(im.Image().At(1, 1)).(color.NRGBA); got != bg {
		t.Errorf("Expected background %v, got %v", bg, got)
	}

	im.SetFillColor(color.White)
	im.FillCircle(20, 20, 5)
	if got := color.NRGBAModel.Convert(im.Image().At(20, 20)).(color.NRGBA); got.R < 200 {
		t.Errorf("Expected white circle centre, got %v", got)
	}

	var buf bytes.Buffer
	if err := im.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("Expected decodable PNG, got %v", err)
	}
}

// TestNewImageRejectsEmpty verifies zero-sized images are refused
func TestNewImageRejectsEmpty(t *testing.T) {
	if _, err := NewImage(0, 10); err == nil {
		t.Error("Expected error for zero width")
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

// TestTerminalCircleAndLine verifies points and links land in the right cells
func TestTerminalCircleAndLine(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	term := NewTerminal(s, 2, 4)

	w, h := term.Bounds()
	if w != 40 || h != 40 {
		t.Fatalf("Expected bounds 40x40, got %fx%f", w, h)
	}

	term.ClearRect(0, 0, w, h)
	term.SetFillColor(color.White)
	term.FillCircle(5, 5, 2.5)

	if r, _, _, _ := s.GetContent(2, 1); r != '●' {
		t.Errorf("Expected large point glyph at (2,1), got %q", r)
	}

	term.SetStrokeColor(color.White)
	term.StrokeLine(5, 5, 15, 5)
	for cx := 3; cx <= 7; cx++ {
		if r, _, _, _ := s.GetContent(cx, 1); r != '·' {
			t.Errorf("Expected link glyph at (%d,1), got %q", cx, r)
		}
	}
	if r, _, _, _ := s.GetContent(2, 1); r != '●' {
		t.Errorf("Expected link to keep the point glyph, got %q", r)
	}
}

// TestTerminalText verifies centred text placement
func TestTerminalText(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	term := NewTerminal(s, 1, 1)
	term.SetTextAlign(AlignCenter)
	term.FillText("abcd", 10, 2.5)

	got := make([]rune, 0, 4)
	for cx := 8; cx < 12; cx++ {
		r, _, _, _ := s.GetContent(cx, 2)
		got = append(got, r)
	}
	if string(got) != "abcd" {
		t.Errorf("Expected \"abcd\" at columns 8-11, got %q", string(got))
	}
}

// TestInsidePolygon verifies the ray casting helper
func TestInsidePolygon(t *testing.T) {
	square := []Vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !inside(Vec{5, 5}, square) {
		t.Error("Expected centre to be inside")
	}
	if inside(Vec{15, 5}, square) {
		t.Error("Expected outside point to be outside")
	}
}
