package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Image draws into an in-memory RGBA image through gg, for PNG snapshots.
type Image struct {
	state
	dc *gg.Context
	bg color.Color
}

// NewImage creates a w x h transparent image with the Go Mono face loaded.
func NewImage(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid image size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	return &Image{state: newState(), dc: dc}, nil
}

// SetBackground makes ClearRect paint c instead of leaving pixels transparent.
func (im *Image) SetBackground(c color.Color) { im.bg = c }

// Image returns the underlying pixels.
func (im *Image) Image() image.Image { return im.dc.Image() }

func (im *Image) SavePNG(path string) error { return im.dc.SavePNG(path) }

func (im *Image) EncodePNG(w io.Writer) error { return im.dc.EncodePNG(w) }

func (im *Image) ClearRect(x, y, w, h float64) {
	dst, ok := im.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	src := image.Image(image.Transparent)
	if im.bg != nil {
		src = image.NewUniform(im.bg)
	}
	draw.Draw(dst, r.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
}

func (im *Image) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	im.dc.SetColor(im.fillColor())
	im.dc.DrawCircle(x, y, r)
	im.dc.Fill()
}

func (im *Image) StrokeLine(x0, y0, x1, y1 float64) {
	im.dc.SetColor(im.strokeColor())
	im.dc.SetLineWidth(im.lineWidth)
	im.dc.DrawLine(x0, y0, x1, y1)
	im.dc.Stroke()
}

func (im *Image) tracePolygon(pts []Vec) {
	im.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		im.dc.LineTo(p.X, p.Y)
	}
	im.dc.ClosePath()
}

func (im *Image) FillPolygon(pts []Vec) {
	if len(pts) < 3 {
		return
	}
	im.tracePolygon(pts)
	im.dc.SetColor(im.fillColor())
	im.dc.Fill()
}

func (im *Image) StrokePolygon(pts []Vec) {
	if len(pts) < 2 {
		return
	}
	im.tracePolygon(pts)
	im.dc.SetColor(im.strokeColor())
	im.dc.SetLineWidth(im.lineWidth)
	im.dc.Stroke()
}

func (im *Image) FillText(s string, x, y float64) {
	ax := 0.0
	if im.align == AlignCenter {
		ax = 0.5
	}
	im.dc.SetColor(im.fillColor())
	im.dc.DrawStringAnchored(s, x, y, ax, 0)
}
