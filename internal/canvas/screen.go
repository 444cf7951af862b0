package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var whiteSubImage *ebiten.Image

// white returns a 1x1 opaque source image used to fill triangles.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Screen draws onto an ebiten image.
type Screen struct {
	state
	dst  *ebiten.Image
	face font.Face
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{state: newState(), dst: dst, face: basicfont.Face7x13}
}

// Retarget points the surface at a new image, e.g. after the window resized.
func (s *Screen) Retarget(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) ClearRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	r = r.Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	if r == s.dst.Bounds() {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Screen) FillCircle(x, y, r float64) {
	if s.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), s.fillColor(), true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1 float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(s.lineWidth), s.strokeColor(), true)
}

func (s *Screen) FillPolygon(pts []Vec) {
	if s.dst == nil || len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	c := s.fillColor()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	s.dst.DrawTriangles(vs, is, white(), op)
}

func (s *Screen) StrokePolygon(pts []Vec) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		s.StrokeLine(a.X, a.Y, b.X, b.Y)
	}
}

func (s *Screen) FillText(str string, x, y float64) {
	if s.dst == nil || str == "" {
		return
	}
	px := int(x)
	if s.align == AlignCenter {
		px -= font.MeasureString(s.face, str).Ceil() / 2
	}
	text.Draw(s.dst, str, s.face, px, int(y), s.fillColor())
}
