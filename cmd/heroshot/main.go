// Command heroshot renders the particle hero offscreen and writes it as PNG.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/EaheaMozumder/my-portfolio/internal/canvas"
	"github.com/EaheaMozumder/my-portfolio/internal/config"
	"github.com/EaheaMozumder/my-portfolio/internal/particles"
	"github.com/EaheaMozumder/my-portfolio/internal/theme"
)

type options struct {
	width, height int
	frames        int
	seed          uint64
	out           string
	config        string
	theme         string
}

// result describes a finished render.
type result struct {
	points, links int
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "heroshot",
		Short:        "Render the particle hero to a PNG image",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			res, err := run(cfg, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if opts.out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d points, %d links)\n", opts.out, res.points, res.links)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", config.WindowWidth, "image width in pixels")
	f.IntVar(&opts.height, "height", config.WindowHeight, "image height in pixels")
	f.IntVar(&opts.frames, "frames", 60, "ticks to advance before the final render")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.StringVarP(&opts.out, "out", "o", "hero.png", "output file, - for stdout")
	f.StringVar(&opts.theme, "theme", "", "dark or light (default: saved preference)")
	f.StringVar(&opts.config, "config", "", "config file (default ./portfolio.toml or ~/.config/portfolio)")
	return cmd
}

// run advances a fresh field by opts.frames ticks, renders it over the
// theme background and writes the PNG to opts.out (or stdout).
func run(cfg *config.Config, opts options, stdout io.Writer) (result, error) {
	if opts.frames < 0 {
		return result{}, fmt.Errorf("frames must not be negative, got %d", opts.frames)
	}
	img, err := canvas.NewImage(opts.width, opts.height)
	if err != nil {
		return result{}, err
	}
	var store theme.Store = theme.FileStore{Path: cfg.ThemeFile}
	if opts.theme != "" {
		t, ok := theme.Parse(opts.theme)
		if !ok {
			return result{}, fmt.Errorf("unknown theme %q", opts.theme)
		}
		store = theme.NewMemoryStore(t)
	}
	pal := theme.Resolve(store, cfg.PreferDark).Palette()
	img.SetBackground(pal.Background)

	field := particles.New(cfg.Particles, particles.NewRand(cfg.RandSeed()))
	field.Init(particles.Bounds{W: float64(opts.width), H: float64(opts.height)})
	for i := 0; i < opts.frames; i++ {
		field.Tick()
	}
	img.ClearRect(0, 0, float64(opts.width), float64(opts.height))
	links := field.Render(img)

	if opts.out == "-" {
		err = img.EncodePNG(stdout)
	} else {
		err = img.SavePNG(opts.out)
	}
	if err != nil {
		return result{}, err
	}
	return result{points: field.Len(), links: links}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
