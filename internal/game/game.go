// Package game is the ebiten host for the portfolio page: the particle hero
// background with the page widgets drawn on top.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
	"github.com/EaheaMozumder/my-portfolio/internal/chime"
	"github.com/EaheaMozumder/my-portfolio/internal/config"
	"github.com/EaheaMozumder/my-portfolio/internal/contact"
	"github.com/EaheaMozumder/my-portfolio/internal/particles"
	"github.com/EaheaMozumder/my-portfolio/internal/projects"
	"github.com/EaheaMozumder/my-portfolio/internal/skills"
	"github.com/EaheaMozumder/my-portfolio/internal/theme"
	"github.com/EaheaMozumder/my-portfolio/internal/typewriter"
)

const noFocus = -1

type Game struct {
	cfg *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	// hero
	width, height int
	hero          *ebiten.Image
	heroSurface   *canvas.Screen
	field         *particles.Field
	loop          *particles.Loop
	frames        *frameTap

	// widgets
	ui      *canvas.Screen
	banner  *typewriter.Banner
	chart   *skills.Chart
	catalog *projects.Catalog
	themes  *theme.Switcher

	// filter buttons
	hoveredFilter int
	pressedFilter int

	// contact form
	form      contact.Form
	focus     int
	fieldErrs contact.Errors
	status    contact.Status
	submitter *contact.Submitter
	results   chan error
	chime     *chime.Player

	// state
	start   time.Time
	phase   float64
	lastErr error
}

func New(cfg *config.Config) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	seed := cfg.RandSeed()

	field := particles.New(cfg.Particles, particles.NewRand(seed))
	heroSurface := canvas.NewScreen(nil)

	g := &Game{
		cfg:           cfg,
		ctx:           ctx,
		cancel:        cancel,
		heroSurface:   heroSurface,
		field:         field,
		loop:          particles.NewLoop(field, heroSurface),
		frames:        newFrameTap(config.FrameRingSize),
		ui:            canvas.NewScreen(nil),
		banner:        typewriter.New(cfg.Roles),
		chart:         skills.NewChart(skills.Default, canvas.Vec{}, config.ChartRadius),
		catalog:       projects.NewCatalog(projects.Default),
		themes:        theme.NewSwitcher(theme.FileStore{Path: cfg.ThemeFile}, cfg.PreferDark),
		hoveredFilter: noFocus,
		pressedFilter: noFocus,
		focus:         noFocus,
		submitter:     contact.NewSubmitter(cfg.ContactDelay, cfg.ContactFailureRate, particles.NewRand(seed+1)),
		results:       make(chan error, 1),
		start:         time.Now(),
	}
	if cfg.SoundCues {
		g.chime = chime.NewPlayer()
	}
	g.chart.Reveal()
	return g
}

func (g *Game) Update() error {
	if g.hero == nil {
		return nil
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	// Hero frame: tick then render into the hero layer
	began := time.Now()
	if g.loop.Frame() {
		g.frames.record(time.Since(began))
	}

	// Widgets
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.banner.Advance(time.Second / time.Duration(tps))
	g.chart.Update()
	g.phase += 0.05
	g.pollSubmission()

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		if g.width > 0 {
			return g.width, g.height
		}
		return config.WindowWidth, config.WindowHeight
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// resize swaps the hero layer and queues the field resize, which respawns
// every particle at the start of the next frame.
func (g *Game) resize(w, h int) {
	if g.hero != nil {
		g.hero.Deallocate()
	}
	g.width, g.height = w, h
	g.hero = ebiten.NewImage(w, h)
	g.heroSurface.Retarget(g.hero)

	b := particles.Bounds{W: float64(w), H: float64(h)}
	if g.field.Len() == 0 {
		g.field.Init(b)
	} else {
		g.loop.Resize(b)
	}
	if !g.loop.Running() {
		// paused: the new layer would stay blank until restart
		g.loop.Redraw()
	}
	g.chart.Center = canvas.Vec{X: float64(w) - 150, Y: 170}
}

func (g *Game) palette() theme.Palette { return g.themes.Current().Palette() }

func (g *Game) toggleTheme() {
	if _, err := g.themes.Toggle(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) toggleAnimation() {
	if g.loop.Running() {
		g.loop.Stop()
		return
	}
	g.loop.Restart()
}

func (g *Game) submit() {
	if g.status.Kind == contact.Pending {
		return
	}
	if errs := contact.Validate(g.form); errs != nil {
		g.fieldErrs = errs
		g.status = contact.StatusFor(contact.ErrInvalid)
		return
	}
	g.fieldErrs = nil
	g.status = contact.StatusPending
	form := g.form
	go func() {
		g.results <- g.submitter.Submit(g.ctx, form)
	}()
}

func (g *Game) pollSubmission() {
	select {
	case err := <-g.results:
		g.status = contact.StatusFor(err)
		g.fieldErrs = contact.FieldErrors(err)
		if err == nil {
			g.form = contact.Form{}
			g.focus = noFocus
		}
		g.playCue(err)
	default:
	}
}

func (g *Game) playCue(err error) {
	if g.chime == nil || errors.Is(err, context.Canceled) {
		return
	}
	cue := chime.Success
	if err != nil {
		cue = chime.Failure
	}
	if perr := g.chime.Play(cue); perr != nil {
		// no audio device; stay quiet from now on
		g.lastErr = fmt.Errorf("sound disabled: %w", perr)
		g.chime = nil
	}
}

func (g *Game) saveSnapshot() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Hero Snapshot"),
		zenity.Filename("hero.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	img, err := canvas.NewImage(g.width, g.height)
	if err != nil {
		return err
	}
	img.SetBackground(g.palette().Background)
	links := g.field.Render(img)
	if err := img.SavePNG(filename); err != nil {
		return err
	}
	log.Printf("saved snapshot %s (%d points, %d links)", filename, g.field.Len(), links)
	return nil
}

// Close stops the hero loop and abandons any pending submission.
func (g *Game) Close() {
	g.loop.Stop()
	g.cancel()
}
