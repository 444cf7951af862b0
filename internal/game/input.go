package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/EaheaMozumder/my-portfolio/internal/contact"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func indexAt(rects func(int) image.Rectangle, n, x, y int) int {
	p := image.Pt(x, y)
	for i := 0; i < n; i++ {
		if p.In(rects(i)) {
			return i
		}
	}
	return noFocus
}

func (g *Game) handleInput() error {
	categories := g.catalog.Categories()

	// Filter buttons and form fields react to the mouse
	mouseX, mouseY := ebiten.CursorPosition()
	g.hoveredFilter = indexAt(filterRect, len(categories), mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressedFilter = g.hoveredFilter
		g.focus = indexAt(fieldRect, len(contact.Fields), mouseX, mouseY)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressedFilter != noFocus && g.pressedFilter == g.hoveredFilter {
			g.catalog.Select(categories[g.pressedFilter])
		}
		g.pressedFilter = noFocus
	}

	if g.focus != noFocus {
		g.handleFormInput()
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.Close()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.toggleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.toggleAnimation()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.saveSnapshot(); err != nil {
			g.lastErr = err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.focus = 0
	}

	for i, k := range digitKeys {
		if i < len(categories) && inpututil.IsKeyJustPressed(k) {
			g.catalog.Select(categories[i])
		}
	}
	return nil
}

// handleFormInput routes typing into the focused contact field.
func (g *Game) handleFormInput() {
	field := contact.Fields[g.focus]

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.focus = noFocus
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.focus = (g.focus + 1) % len(contact.Fields)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.submit()
		return
	case repeating(ebiten.KeyBackspace):
		if v := []rune(g.form.Get(field)); len(v) > 0 {
			g.form.Set(field, string(v[:len(v)-1]))
		}
	}

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		g.form.Set(field, g.form.Get(field)+string(chars))
	}
}

// repeating reports a key press plus auto-repeat while it is held.
func repeating(k ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
