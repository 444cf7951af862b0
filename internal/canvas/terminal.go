package canvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal maps surface units onto the cells of a tcell screen. Each cell
// covers cellW x cellH units. Alpha is approximated by darkening towards the
// background since cells cannot blend.
type Terminal struct {
	state
	screen       tcell.Screen
	cellW, cellH float64
	bg           tcell.Color
}

func NewTerminal(screen tcell.Screen, cellW, cellH float64) *Terminal {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Terminal{state: newState(), screen: screen, cellW: cellW, cellH: cellH, bg: tcell.ColorBlack}
}

// Bounds returns the screen size in surface units.
func (t *Terminal) Bounds() (w, h float64) {
	cols, rows := t.screen.Size()
	return float64(cols) * t.cellW, float64(rows) * t.cellH
}

func (t *Terminal) Present() { t.screen.Show() }

func (t *Terminal) cell(x, y float64) (int, int) {
	return int(math.Floor(x / t.cellW)), int(math.Floor(y / t.cellH))
}

func (t *Terminal) style(c color.NRGBA) tcell.Style {
	a := int32(c.A)
	fg := tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
	return tcell.StyleDefault.Foreground(fg).Background(t.bg)
}

func (t *Terminal) put(cx, cy int, r rune, st tcell.Style) {
	cols, rows := t.screen.Size()
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}
	t.screen.SetContent(cx, cy, r, nil, st)
}

func (t *Terminal) empty(cx, cy int) bool {
	r, _, _, _ := t.screen.GetContent(cx, cy)
	return r == ' ' || r == 0
}

func (t *Terminal) ClearRect(x, y, w, h float64) {
	x0, y0 := t.cell(x, y)
	x1, y1 := t.cell(x+w-1e-9, y+h-1e-9)
	st := tcell.StyleDefault.Background(t.bg)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			t.put(cx, cy, ' ', st)
		}
	}
}

func (t *Terminal) FillCircle(x, y, r float64) {
	cx, cy := t.cell(x, y)
	glyph := '·'
	switch {
	case r >= 2:
		glyph = '●'
	case r >= 1.2:
		glyph = '•'
	}
	t.put(cx, cy, glyph, t.style(t.fillColor()))
}

// StrokeLine walks the cells between both ends and only marks empty ones,
// so points drawn earlier stay visible.
func (t *Terminal) StrokeLine(x0, y0, x1, y1 float64) {
	ax, ay := t.cell(x0, y0)
	bx, by := t.cell(x1, y1)
	st := t.style(t.strokeColor())

	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		if t.empty(ax, ay) {
			t.put(ax, ay, '·', st)
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (t *Terminal) FillPolygon(pts []Vec) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0, y0 := t.cell(minX, minY)
	x1, y1 := t.cell(maxX, maxY)
	st := t.style(t.fillColor())
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			center := Vec{(float64(cx) + 0.5) * t.cellW, (float64(cy) + 0.5) * t.cellH}
			if inside(center, pts) && t.empty(cx, cy) {
				t.put(cx, cy, '░', st)
			}
		}
	}
}

func (t *Terminal) StrokePolygon(pts []Vec) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		t.StrokeLine(a.X, a.Y, b.X, b.Y)
	}
}

func (t *Terminal) FillText(s string, x, y float64) {
	runes := []rune(s)
	cx, cy := t.cell(x, y-t.cellH/2)
	if t.align == AlignCenter {
		cx -= len(runes) / 2
	}
	st := t.style(t.fillColor())
	for i, r := range runes {
		t.put(cx+i, cy, r, st)
	}
}

// inside reports whether p lies in the polygon, by ray casting.
func inside(p Vec, poly []Vec) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
