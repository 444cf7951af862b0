// Command starfield runs the particle hero in the terminal.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
	"github.com/EaheaMozumder/my-portfolio/internal/config"
	"github.com/EaheaMozumder/my-portfolio/internal/particles"
)

// Surface units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellWidth  = 8
	cellHeight = 16
	frameRate  = 30
)

type host struct {
	screen tcell.Screen
	term   *canvas.Terminal
	field  *particles.Field
	loop   *particles.Loop
}

func newHost(screen tcell.Screen, cfg *config.Config) *host {
	term := canvas.NewTerminal(screen, cellWidth, cellHeight)
	field := particles.New(cfg.Particles, particles.NewRand(cfg.RandSeed()))
	h := &host{
		screen: screen,
		term:   term,
		field:  field,
		loop:   particles.NewLoop(field, term),
	}
	field.Init(h.bounds())
	return h
}

func (h *host) bounds() particles.Bounds {
	w, hh := h.term.Bounds()
	return particles.Bounds{W: w, H: hh}
}

// handle reacts to one terminal event. It returns false when the user quits.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.loop.Resize(h.bounds())
		h.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	}
	return true
}

// run steps the field on every frame until frames closes, the user quits or
// ctx is cancelled.
func (h *host) run(ctx context.Context, frames <-chan time.Time) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil || !h.handle(ev) {
				h.loop.Stop()
				cancel()
				return
			}
		}
	}()

	err := h.loop.Run(ctx, frames)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	var (
		seed    uint64
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:          "starfield",
		Short:        "Animate the particle hero in the terminal (Esc or q to quit)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
			screen.HideCursor()
			screen.Clear()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ticker := time.NewTicker(time.Second / frameRate)
			defer ticker.Stop()
			return newHost(screen, cfg).run(ctx, ticker.C)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default ./portfolio.toml or ~/.config/portfolio)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
