// SPDX-License-Identifier: EPL-2.0

// Command audmix plays or renders a mixer scene.
//
//	audmix -scene demo.yaml                  # play until interrupted
//	audmix -scene demo.yaml -seconds 10 -meter
//	audmix -scene demo.yaml -render out.wav -seconds 30
//
// Without -scene a small built-in procedural scene is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/scene"
)

const demoScene = `
volumes:
  master: 0.8
sounds:
  - name: pad
    wave: sine
    frequency: 220
    duration: 2s
    attack: {time: 400ms, curve: in-out-sine}
    falloff: {time: 600ms, curve: out-quad}
    category: music
    next: bass
    autostart: true
  - name: bass
    wave: saw
    frequency: 110
    duration: 1s
    volume: 0.4
    category: music
    repeat: true
    loops: 3
    falloff: {time: 200ms}
  - name: tick
    wave: square
    frequency: 880
    duration: 50ms
    volume: 0.2
    repeat: true
    falloff: {time: 50ms, curve: out-cubic}
    autostart: true
`

type options struct {
	scene   string
	render  string
	seconds float64
	chunk   int
	meter   bool
	buffer  time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "", "Scene YAML file (defaults to a built-in demo)")
	flag.StringVar(&opts.render, "render", "", "Render to this WAV file instead of playing")
	flag.Float64Var(&opts.seconds, "seconds", 0, "Stop after this many seconds (0 plays until interrupted; render defaults to 5)")
	flag.IntVar(&opts.chunk, "chunk", 1024, "Frames mixed per Service call when rendering")
	flag.BoolVar(&opts.meter, "meter", false, "Print a peak meter from the visualization ring while playing")
	flag.DurationVar(&opts.buffer, "buffer", 0, "Audio device buffer length (0 uses the device default)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		slog.Error("audmix failed", "err", err)
		os.Exit(1)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Load(strings.NewReader(demoScene))
	}
	return scene.LoadFile(path)
}

// setup builds the engine described by the scene and loads its sounds.
func setup(path string) (*mixer.Engine, error) {
	sc, err := loadScene(path)
	if err != nil {
		return nil, err
	}

	cfg := sc.Config()
	cfg.Logger = slog.Default().With("component", "mixer")
	eng, err := mixer.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	loader := audmix.NewLoader(audmix.OptionsFor(eng.Format()))
	slots, err := sc.Apply(eng, loader)
	if err != nil {
		eng.Close()
		return nil, err
	}
	slog.Debug("scene loaded", "path", path, "slots", slots)

	return eng, nil
}

func run(opts options) error {
	eng, err := setup(opts.scene)
	if err != nil {
		return err
	}
	defer eng.Close()

	if opts.render != "" {
		seconds := opts.seconds
		if seconds <= 0 {
			seconds = 5
		}
		return renderFile(eng, opts.render, seconds, opts.chunk)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.seconds*float64(time.Second)))
		defer cancel()
	}

	return play(ctx, eng, opts)
}
