package loop_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/fixedstep/loop"
)

var errBoom = errors.New("boom")

// recorder collects a trace of calls across surfaces and capabilities.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

type recordingSurface struct {
	rec    *recorder
	clears int
	draws  int
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.rec.add("clear")
}

func (s *recordingSurface) Draw(d loop.Drawable, at, size loop.Point) error {
	s.draws++
	s.rec.add("draw %v", at)
	return nil
}

type fakeDrawable struct {
	size loop.Point
}

func (d fakeDrawable) Size() loop.Point { return d.size }
func (d fakeDrawable) Ready() bool { return true }

type recordingInput struct {
	rec  *recorder
	name string
}

func (i *recordingInput) Update(e *loop.Entity, s *loop.Scene) error {
	i.rec.add("input %s", i.name)
	return nil
}

type recordingPhysics struct {
	rec   *recorder
	name  string
	calls int
	dts   []time.Duration
	err   error
}

func (p *recordingPhysics) Update(e *loop.Entity, s *loop.Scene, dt time.Duration) error {
	p.calls++
	p.dts = append(p.dts, dt)
	p.rec.add("update %s", p.name)
	return p.err
}

type recordingGraphics struct {
	rec        *recorder
	name       string
	remainders []float64
}

func (g *recordingGraphics) Update(e *loop.Entity, surface loop.Surface, remainder float64) error {
	g.remainders = append(g.remainders, remainder)
	g.rec.add("render %s", g.name)
	return surface.Draw(fakeDrawable{}, e.Transition().Position(), loop.Point{})
}

// harness wires one scene with one fully equipped entity to a driver running
// on a manual clock and scheduler.
type harness struct {
	rec       *recorder
	surface   *recordingSurface
	physics   *recordingPhysics
	graphics  *recordingGraphics
	scene     *loop.Scene
	clock     *loop.ManualClock
	scheduler *loop.ManualScheduler
	driver    *loop.Driver
}

func newHarness(opts ...loop.Option) (*harness, error) {
	rec := &recorder{}
	h := &harness{
		rec:       rec,
		surface:   &recordingSurface{rec: rec},
		physics:   &recordingPhysics{rec: rec, name: "a"},
		graphics:  &recordingGraphics{rec: rec, name: "a"},
		clock:     loop.NewManualClock(time.Unix(1000, 0)),
		scheduler: loop.NewManualScheduler(),
	}

	entity := loop.NewEntity(loop.NewTransition(loop.Point{}),
		loop.WithInput(&recordingInput{rec: rec, name: "a"}),
		loop.WithPhysics(h.physics),
		loop.WithGraphics(h.graphics),
	)
	h.scene = loop.NewScene(h.surface, entity)

	opts = append([]loop.Option{
		loop.WithClock(h.clock),
		loop.WithScheduler(h.scheduler),
	}, opts...)

	driver, err := loop.NewDriver([]*loop.Scene{h.scene}, opts...)
	if err != nil {
		return nil, err
	}
	h.driver = driver
	return h, nil
}

// tick advances the clock by d and fires the pending scheduled step.
func (h *harness) tick(d time.Duration) error {
	h.clock.Advance(d)
	return h.scheduler.RunPending()
}
