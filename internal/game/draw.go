package game

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
	"github.com/EaheaMozumder/my-portfolio/internal/contact"
	"github.com/EaheaMozumder/my-portfolio/internal/theme"
)

// Panel geometry, in window pixels
var (
	projectsPanel = image.Rect(40, 130, 460, 330)
	contactPanel  = image.Rect(40, 350, 460, 590)
)

func filterRect(i int) image.Rectangle {
	x := projectsPanel.Min.X + 12 + i*88
	y := projectsPanel.Min.Y + 14
	return image.Rect(x, y, x+80, y+22)
}

func fieldRect(i int) image.Rectangle {
	x := contactPanel.Min.X + 12
	y := contactPanel.Min.Y + 38 + i*56
	return image.Rect(x, y, contactPanel.Max.X-12, y+24)
}

func chartPanel(center canvas.Vec) image.Rectangle {
	cx, cy := int(center.X), int(center.Y)
	return image.Rect(cx-110, cy-110, cx+110, cy+110)
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.palette()
	screen.Fill(pal.Background)

	// Hero layer
	if g.hero != nil {
		screen.DrawImage(g.hero, nil)
	}

	g.ui.Retarget(screen)
	g.drawHeading(pal)
	g.drawProjects(screen, pal)
	g.drawContact(screen, pal)
	g.drawChart(screen, pal)
	g.drawStatus(screen)
}

func drawPanel(screen *ebiten.Image, r image.Rectangle, fill, border color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)
}

func (g *Game) drawHeading(pal theme.Palette) {
	g.ui.SetGlobalAlpha(1)
	g.ui.SetTextAlign(canvas.AlignLeft)
	g.ui.SetFillColor(pal.Text)
	g.ui.FillText(g.cfg.Name, 40, 70)
	g.ui.SetFillColor(pal.Accent)
	g.ui.FillText(g.banner.Text(), 40, 94)
}

func (g *Game) drawProjects(screen *ebiten.Image, pal theme.Palette) {
	drawPanel(screen, projectsPanel, pal.Panel, canvas.WithAlpha(pal.Muted, 0.4))

	// Filter buttons
	for i, cat := range g.catalog.Categories() {
		r := filterRect(i)
		var bg color.Color = canvas.WithAlpha(pal.Muted, 0.25)
		switch {
		case cat == g.catalog.Active():
			bg = pulse(g.phase)
		case i == g.pressedFilter:
			bg = canvas.WithAlpha(pal.Accent, 0.6)
		case i == g.hoveredFilter:
			bg = canvas.WithAlpha(pal.Accent, 0.35)
		}
		drawPanel(screen, r, bg, canvas.WithAlpha(pal.Accent, 0.8))

		g.ui.SetTextAlign(canvas.AlignCenter)
		g.ui.SetFillColor(pal.Text)
		g.ui.FillText(fmt.Sprintf("%d %s", i+1, cat), float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+16))
	}

	// Visible projects
	g.ui.SetTextAlign(canvas.AlignLeft)
	y := projectsPanel.Min.Y + 64
	for _, p := range g.catalog.Visible() {
		g.ui.SetFillColor(pal.Text)
		g.ui.FillText(p.Title, float64(projectsPanel.Min.X+14), float64(y))
		g.ui.SetFillColor(pal.Muted)
		g.ui.FillText(p.Summary, float64(projectsPanel.Min.X+150), float64(y))
		y += 26
	}
}

func (g *Game) drawContact(screen *ebiten.Image, pal theme.Palette) {
	drawPanel(screen, contactPanel, pal.Panel, canvas.WithAlpha(pal.Muted, 0.4))
	g.ui.SetTextAlign(canvas.AlignLeft)
	g.ui.SetFillColor(pal.Text)
	g.ui.FillText("Contact", float64(contactPanel.Min.X+12), float64(contactPanel.Min.Y+20))

	for i, f := range contact.Fields {
		r := fieldRect(i)
		border := canvas.WithAlpha(pal.Muted, 0.6)
		if i == g.focus {
			border = pulse(g.phase)
		}
		drawPanel(screen, r, canvas.WithAlpha(pal.Background, 0.6), border)

		g.ui.SetFillColor(pal.Muted)
		g.ui.FillText(strings.ToUpper(string(f[:1]))+string(f[1:]), float64(r.Min.X), float64(r.Min.Y-4))
		if msg := g.fieldErrs[f]; msg != "" {
			g.ui.SetFillColor(pal.Error)
			g.ui.FillText(msg, float64(r.Min.X+80), float64(r.Min.Y-4))
		}

		value := g.form.Get(f)
		if i == g.focus && int(g.phase*2)%2 == 0 {
			value += "_"
		}
		g.ui.SetFillColor(pal.Text)
		g.ui.FillText(tail(value, (r.Dx()-12)/7), float64(r.Min.X+6), float64(r.Min.Y+16))
	}

	var c color.Color = pal.Muted
	switch g.status.Kind {
	case contact.Sent:
		c = pal.Success
	case contact.Failed, contact.Invalid:
		c = pal.Error
	case contact.Pending:
		c = pal.Accent
	}
	g.ui.SetFillColor(c)
	g.ui.FillText(g.status.Text, float64(contactPanel.Min.X+12), float64(contactPanel.Max.Y-14))
}

func (g *Game) drawChart(screen *ebiten.Image, pal theme.Palette) {
	drawPanel(screen, chartPanel(g.chart.Center), pal.Panel, canvas.WithAlpha(pal.Muted, 0.4))
	g.chart.Draw(g.ui)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%d points, %d links, frame %s, up %s",
		g.field.Len(), g.loop.Links(), formatMillis(g.frames.mean()), formatDuration(time.Since(g.start)))
	if !g.loop.Running() {
		status = "Paused | " + status
	}
	status += " | T theme, 1-4 filter, Tab form, S snapshot, P pause, Esc quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-18)
}

// tail keeps the last n runes of s so the caret stays visible.
func tail(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
