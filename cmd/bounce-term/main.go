package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fixedstep/config"
	"github.com/plus3/fixedstep/logging"
	"github.com/plus3/fixedstep/loop"
	"github.com/plus3/fixedstep/loop/components"
	"github.com/plus3/fixedstep/loop/termhost"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML scene description; built-in defaults when empty.")
	refresh := flag.Duration("refresh", 16*time.Millisecond, "Interval between screen refreshes.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// The terminal is the display, so logs only go to a file when configured.
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		var err error
		if logger, err = logging.New(cfg.LogLevel, cfg.LogFile); err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}
	defer logger.Sync()

	if err := run(cfg, *refresh, logger); err != nil {
		log.Fatalf("bounce-term failed: %v", err)
	}
}

func run(cfg *config.Config, refresh time.Duration, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	host := termhost.NewHost(screen, logger)
	canvas, err := termhost.NewCanvas(host.Targets(), termhost.TargetName, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}

	keyboard := termhost.NewKeyboard(nil, termhost.DefaultHold)
	driver, err := loop.NewDriver(buildScenes(cfg, canvas, keyboard),
		append(cfg.DriverOptions(), loop.WithScheduler(host), loop.WithLogger(logger))...)
	if err != nil {
		return err
	}

	host.OnKey(keyboard.HandleKey)
	host.OnKey(func(ev *tcell.EventKey) {
		switch {
		case ev.Key() == tcell.KeyTab:
			driver.Next()
		case ev.Key() == tcell.KeyBacktab:
			driver.Prev()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
			driver.Stop()
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host.Schedule(driver.Start)
	return host.Run(ctx, refresh)
}

// buildScenes assembles one scene per configured scene with glyph sprites.
// All moving entities share one bounce physics; steered entities share one
// steering input.
func buildScenes(cfg *config.Config, surface loop.Surface, keys components.DirectionSource) []*loop.Scene {
	bounce := cfg.NewBounce()
	steer := components.NewSteer(keys, cfg.SteerSpeed)

	scenes := make([]*loop.Scene, 0, len(cfg.Scenes))
	for _, sc := range cfg.Scenes {
		scene := loop.NewScene(surface)

		for _, e := range sc.Entities {
			c, _ := config.ParseColor(e.Color)
			r := '#'
			if e.Glyph != "" {
				r = []rune(e.Glyph)[0]
			}
			glyph := &termhost.Glyph{
				Rune:   r,
				Style:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))),
				Width:  e.Size.X,
				Height: e.Size.Y,
			}

			opts := []loop.EntityOption{loop.WithGraphics(components.NewSprite(glyph))}
			if !e.Static {
				opts = append(opts, loop.WithPhysics(bounce))
			}
			if e.Steer {
				opts = append(opts, loop.WithInput(steer))
			}

			t := loop.NewTransition(e.Position.Loop()).SetVelocity(e.Velocity.Loop())
			scene.Add(loop.NewEntity(t, opts...))
		}
		scenes = append(scenes, scene)
	}
	return scenes
}
