// Command clickbox is a reaction game: click the pulsing box before it jumps.
//
//	go run ./cmd/clickbox
//	go run ./cmd/clickbox --seed 7 --log-level debug
//
// Left click scores on a hit. Each interval without a hit costs a point.
// Space pauses, R resets the score, F1 shows the keys, Esc quits.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/go-theft-auto/sketch/clickbox"
	"github.com/go-theft-auto/sketch/config"
	"github.com/go-theft-auto/sketch/internal/cli"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := cli.Command(cli.Program{
		Name:  "clickbox",
		Short: "Click the box before it moves",
		Flags: flags,
		Build: build,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func flags(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "random seed for box placement (0 = time based)")
	fs.Float32("interval", 0, "seconds before the box moves on its own")
}

func build(fs *pflag.FlagSet, cfg *config.Config, log *zap.Logger) (cli.Scene, error) {
	if fs.Changed("seed") {
		seed, err := fs.GetInt64("seed")
		if err != nil {
			return cli.Scene{}, err
		}
		cfg.ClickBox.Seed = seed
	}
	if fs.Changed("interval") {
		interval, err := fs.GetFloat32("interval")
		if err != nil {
			return cli.Scene{}, err
		}
		if interval <= 0 {
			return cli.Scene{}, fmt.Errorf("interval must be positive, got %g", interval)
		}
		cfg.ClickBox.MoveInterval = interval
	}

	seed := cfg.ClickBox.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("clickbox configured", zap.Int64("seed", seed), zap.Float32("interval", cfg.ClickBox.MoveInterval))

	game := clickbox.New(cfg.ClickBox, rand.New(rand.NewSource(seed)), log)
	return cli.Scene{
		Scene:      game,
		Title:      cfg.ClickBox.Title,
		Background: cfg.ClickBox.Background,
	}, nil
}
