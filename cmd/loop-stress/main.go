package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/fixedstep/logging"
	"github.com/plus3/fixedstep/loop"
	"github.com/plus3/fixedstep/loop/components"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of bouncing entities in the scene.")
	fps := flag.Int("fps", loop.DefaultFPS, "Simulation steps per second.")
	refresh := flag.Duration("refresh", 16*time.Millisecond, "Interval between scheduler callbacks, standing in for the display refresh.")
	maxSteps := flag.Int("max-steps", 0, "Cap on steps per tick, 0 for none.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	logLevel := flag.String("log-level", "warn", "Log level.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		FPS:            *fps,
		Refresh:        *refresh,
		MaxSteps:       *maxSteps,
		GCPauseMetrics: *gcPauseMetrics,
	}

	if err := run(report, *profileMode, *logLevel); err != nil {
		log.Fatalf("loop-stress failed: %v", err)
	}

	fmt.Println("\n\n--- Loop Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run drives the loop for report.Duration and fills in the results. The
// profile, when requested, covers exactly this call.
func run(report *Report, profileMode, logLevel string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	logger, err := logging.New(logLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("populating scene", zap.Int("entities", report.Entities))
	scene, tracker := populate(report.Entities)

	scheduler := loop.NewTickerScheduler()
	driver, err := loop.NewDriver([]*loop.Scene{scene},
		loop.WithFPS(report.FPS),
		loop.WithMaxSteps(report.MaxSteps),
		loop.WithScheduler(scheduler),
		loop.WithLogger(logger))
	if err != nil {
		return err
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running", zap.Duration("duration", report.Duration))
	ctx, cancel := context.WithTimeout(context.Background(), report.Duration)
	defer cancel()

	startTime := time.Now()
	if err := driver.Start(); err != nil {
		return fmt.Errorf("first tick: %w", err)
	}
	if err := scheduler.Run(ctx, report.Refresh); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	driver.Stop()

	report.TotalTime = time.Since(startTime)
	report.Stats = driver.Stats()
	report.ExpectedSteps = int64(report.TotalTime / driver.Dt())
	report.TrackerUpdates, report.TrackerRenders = components.Counts(tracker)
	runtime.ReadMemStats(&report.MemStatsEnd)
	return nil
}

// populate builds a scene of bouncing entities spread across the bounce
// range, plus a tracker entity counting its update and render calls.
func populate(n int) (*loop.Scene, *loop.Entity) {
	bounce := components.NewBounce()
	scene := loop.NewScene(nopSurface{})

	for i := 0; i < n; i++ {
		x := float64(i%int(bounce.High-bounce.Low)) + bounce.Low
		t := loop.NewTransition(loop.Point{X: x}).SetVelocity(bounce.Rebound)
		scene.Add(loop.NewEntity(t, loop.WithPhysics(bounce)))
	}

	tracker := loop.NewEntity(nil,
		loop.WithState(loop.NewState(nil)),
		loop.WithPhysics(components.UpdateCounter{}),
		loop.WithGraphics(components.RenderCounter{}))
	scene.Add(tracker)

	return scene, tracker
}

type nopSurface struct{}

func (nopSurface) Clear() {}

func (nopSurface) Draw(loop.Drawable, loop.Point, loop.Point) error { return nil }
