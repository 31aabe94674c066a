// Package cli wires flags, configuration, logging and the GL backend into a
// cobra command shared by the demo programs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/go-theft-auto/sketch"
	"github.com/go-theft-auto/sketch/backend/opengl"
	"github.com/go-theft-auto/sketch/config"
	"github.com/go-theft-auto/sketch/internal/logging"
)

// Scene is what a program hands back to the shared runner.
type Scene struct {
	sketch.Scene
	Title      string
	Background config.RGBA
}

// Program describes one demo binary.
type Program struct {
	Name  string
	Short string

	// Flags registers program-specific flags. Optional.
	Flags func(fs *pflag.FlagSet)

	// Build creates the scene from the loaded configuration. fs is the
	// parsed flag set so Build can apply its own overrides.
	Build func(fs *pflag.FlagSet, cfg *config.Config, log *zap.Logger) (Scene, error)
}

type options struct {
	configPath string
	logLevel   string
	width      int
	height     int
	vsync      bool
}

// Command builds the cobra command for p.
func Command(p Program) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           p.Name,
		Short:         p.Short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := prepare(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			return run(p, cmd.Flags(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.IntVar(&opts.width, "width", 0, "window width in screen coordinates")
	fs.IntVar(&opts.height, "height", 0, "window height in screen coordinates")
	fs.BoolVar(&opts.vsync, "vsync", true, "wait for vertical sync on buffer swap")
	if p.Flags != nil {
		p.Flags(fs)
	}

	return cmd
}

// prepare loads the config file and applies the flags that were set.
func prepare(fs *pflag.FlagSet, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if fs.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if fs.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if fs.Changed("vsync") {
		cfg.Window.VSync = opts.vsync
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func run(p Program, fs *pflag.FlagSet, cfg config.Config) error {
	log, err := logging.New(p.Name, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	scene, err := p.Build(fs, &cfg, log)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	title := scene.Title
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}

	win, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  title,
		VSync:  cfg.Window.VSync,
	}, log)
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height, opengl.WithRendererLogger(log))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	bg := scene.Background
	app := sketch.New(renderer, scene.Scene,
		sketch.WithLogger(log),
		sketch.WithClearColor(sketch.Color{R: bg[0], G: bg[1], B: bg[2], A: bg[3]}),
	)

	log.Info("started")
	if err := opengl.Run(win, renderer, app); err != nil {
		return err
	}
	log.Info("stopped", zap.Uint64("frames", app.Frames()))
	return nil
}
