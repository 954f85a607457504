package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fixedstep/config"
	"github.com/plus3/fixedstep/logging"
	"github.com/plus3/fixedstep/loop"
	"github.com/plus3/fixedstep/loop/components"
	"github.com/plus3/fixedstep/loop/debugui"
	"github.com/plus3/fixedstep/loop/ebitenhost"
	"go.uber.org/zap"
)

const targetName = "main"

func main() {
	configPath := flag.String("config", "", "YAML scene description; built-in defaults when empty.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui loop statistics overlay.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, *debug, logger); err != nil {
		logger.Fatal("bounce failed", zap.Error(err))
	}
}

func run(cfg *config.Config, debug bool, logger *zap.Logger) error {
	w, h := cfg.Window.Width, cfg.Window.Height

	var overlay *debugui.Overlay
	if debug {
		overlay = debugui.NewOverlay(cfg.Window.Title, w, h)
	}

	host := ebitenhost.NewHost(w, h, logger)
	host.NewTarget(targetName, w, h)

	canvas, err := ebitenhost.NewCanvas(host.Targets(), targetName, w, h)
	if err != nil {
		return err
	}

	switcher := &sceneKeys{}
	scenes := buildScenes(cfg, canvas, ebitenhost.NewKeyboard(nil), switcher)

	opts := append(cfg.DriverOptions(),
		loop.WithScheduler(host),
		loop.WithLogger(logger))
	driver, err := loop.NewDriver(scenes, opts...)
	if err != nil {
		return err
	}
	switcher.driver = driver

	if overlay != nil {
		overlay.Add(debugui.NewLoopStats(driver, 120))
		host.SetOverlay(overlay)
	}

	host.Schedule(driver.Start)
	return host.Run(cfg.Window.Title)
}

// buildScenes assembles one scene per configured scene. All entities share a
// single bounce physics and steering input; each gets its own sprite. Every
// scene starts with an entity listening for scene navigation keys.
func buildScenes(cfg *config.Config, surface loop.Surface, keys components.DirectionSource, switcher loop.Input) []*loop.Scene {
	bounce := cfg.NewBounce()
	steer := components.NewSteer(keys, cfg.SteerSpeed)

	scenes := make([]*loop.Scene, 0, len(cfg.Scenes))
	for _, sc := range cfg.Scenes {
		scene := loop.NewScene(surface, loop.NewEntity(nil, loop.WithInput(switcher)))

		for _, e := range sc.Entities {
			c, _ := config.ParseColor(e.Color)
			sprite := ebitenhost.NewFilledSprite(int(e.Size.X), int(e.Size.Y), c)

			opts := []loop.EntityOption{loop.WithGraphics(components.NewSprite(sprite))}
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

// sceneKeys switches scenes on Tab / Shift+Tab and stops the loop on P.
type sceneKeys struct {
	driver *loop.Driver
}

func (k *sceneKeys) Update(_ *loop.Entity, _ *loop.Scene) error {
	if k.driver == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			k.driver.Prev()
		} else {
			k.driver.Next()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		k.driver.Stop()
	}
	return nil
}
