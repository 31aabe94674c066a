// Command car loops a car across a road.
//
//	go run ./cmd/car
//	go run ./cmd/car --speed 1.2
//
// Up and Down change speed, Space pauses, R restarts, F1 shows the keys,
// Esc quits.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/go-theft-auto/sketch/car"
	"github.com/go-theft-auto/sketch/config"
	"github.com/go-theft-auto/sketch/internal/cli"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := cli.Command(cli.Program{
		Name:  "car",
		Short: "Looping car animation",
		Flags: flags,
		Build: build,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func flags(fs *pflag.FlagSet) {
	fs.Float32("speed", 0, "initial speed in screen halves per second")
}

func build(fs *pflag.FlagSet, cfg *config.Config, log *zap.Logger) (cli.Scene, error) {
	if fs.Changed("speed") {
		speed, err := fs.GetFloat32("speed")
		if err != nil {
			return cli.Scene{}, err
		}
		cfg.Car.Speed = speed
		if err := cfg.Validate(); err != nil {
			return cli.Scene{}, err
		}
	}

	log.Debug("car configured", zap.Float32("speed", cfg.Car.Speed))
	return cli.Scene{
		Scene:      car.New(cfg.Car, log),
		Title:      cfg.Car.Title,
		Background: cfg.Car.Background,
	}, nil
}
