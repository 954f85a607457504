package loop

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultFPS is the tick rate used when no rate option is given.
const DefaultFPS = 30

// RunState is the lifecycle state of a Driver.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Option configures a Driver.
type Option func(*driverConfig)

type driverConfig struct {
	fps         int
	step        time.Duration
	scheduler   Scheduler
	clock       Clock
	logger      *zap.Logger
	maxSteps    int
	resetOnSwap bool
}

// WithFPS sets the tick rate in steps per second; dt becomes time.Second/fps.
func WithFPS(fps int) Option {
	return func(c *driverConfig) {
		c.fps = fps
		c.step = 0
	}
}

// WithStep sets the fixed step size directly.
func WithStep(step time.Duration) Option {
	return func(c *driverConfig) {
		c.step = step
		c.fps = 0
	}
}

// WithScheduler sets the host hook used to request the next tick.
func WithScheduler(s Scheduler) Option {
	return func(c *driverConfig) { c.scheduler = s }
}

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(clock Clock) Option {
	return func(c *driverConfig) { c.clock = clock }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *driverConfig) { c.logger = logger }
}

// WithMaxSteps caps the number of fixed steps run in one tick. Whole steps
// beyond the cap are discarded so lag stays below dt. Zero means no cap.
func WithMaxSteps(n int) Option {
	return func(c *driverConfig) { c.maxSteps = n }
}

// WithLagResetOnSwitch makes scene switches discard accumulated lag, so the
// newly active scene does not receive a burst of catch-up steps.
func WithLagResetOnSwitch(reset bool) Option {
	return func(c *driverConfig) { c.resetOnSwap = reset }
}

// Driver runs the fixed-timestep loop over a list of scenes. Each tick it
// measures elapsed time, runs as many whole dt steps on the active scene as
// the accumulated lag allows and renders once with the leftover fraction.
//
// A Driver is not safe for concurrent use; hosts call it from one goroutine.
type Driver struct {
	scenes []*Scene
	active int

	state      RunState
	generation uint64

	dt       time.Duration
	lag      time.Duration
	current  time.Time
	previous time.Time
	elapsed  time.Duration

	maxSteps    int
	resetOnSwap bool

	scheduler Scheduler
	clock     Clock
	logger    *zap.Logger
	stats     *statsRecorder
}

// NewDriver creates a stopped driver over scenes. The first scene is active.
func NewDriver(scenes []*Scene, opts ...Option) (*Driver, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}

	cfg := driverConfig{fps: DefaultFPS}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dt time.Duration
	switch {
	case cfg.step != 0:
		if cfg.step < 0 {
			return nil, fmt.Errorf("%w: step %s", ErrInvalidTickRate, cfg.step)
		}
		dt = cfg.step
	default:
		if cfg.fps <= 0 {
			return nil, fmt.Errorf("%w: fps %d", ErrInvalidTickRate, cfg.fps)
		}
		dt = time.Second / time.Duration(cfg.fps)
	}

	if cfg.maxSteps < 0 {
		cfg.maxSteps = 0
	}
	if cfg.scheduler == nil {
		cfg.scheduler = NewManualScheduler()
	}
	if cfg.clock == nil {
		cfg.clock = SystemClock{}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return &Driver{
		scenes:      scenes,
		dt:          dt,
		maxSteps:    cfg.maxSteps,
		resetOnSwap: cfg.resetOnSwap,
		scheduler:   cfg.scheduler,
		clock:       cfg.clock,
		logger:      cfg.logger.Named("loop"),
		stats:       newStatsRecorder(),
	}, nil
}

func (d *Driver) reset() {
	d.lag = 0
	d.current = time.Time{}
	d.previous = time.Time{}
	d.elapsed = 0
}

// Start resets time bookkeeping and runs the first tick synchronously. Later
// ticks are requested from the scheduler.
func (d *Driver) Start() error {
	d.reset()
	d.previous = d.clock.Now()
	d.state = Running
	d.generation++

	d.logger.Info("loop started",
		zap.Duration("dt", d.dt),
		zap.Int("scene", d.active),
		zap.Int("max_steps", d.maxSteps))

	return d.Step()
}

// Stop marks the driver stopped. A tick already requested from the scheduler
// does no work when it fires.
func (d *Driver) Stop() {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	d.logger.Info("loop stopped", zap.Int64("ticks", d.stats.ticks), zap.Int64("steps", d.stats.steps))
}

// Step runs one tick: input once, zero or more fixed updates, render once,
// then requests the next tick. It does nothing while stopped. An error from
// any phase aborts the tick and no further tick is requested; the driver
// stays in its current state.
func (d *Driver) Step() error {
	if d.state != Running {
		return nil
	}

	scene := d.Active()

	d.current = d.clock.Now()
	d.elapsed = d.current.Sub(d.previous)
	d.previous = d.current
	d.lag += d.elapsed
	d.stats.ticks++

	start := d.clock.Now()
	if err := scene.HandleInput(); err != nil {
		return fmt.Errorf("input phase: %w", err)
	}
	d.stats.record(PhaseInput, d.clock.Now().Sub(start))

	steps := 0
	for d.lag >= d.dt {
		if d.maxSteps > 0 && steps == d.maxSteps {
			d.clamp()
			break
		}

		start = d.clock.Now()
		if err := scene.Update(d.dt); err != nil {
			return fmt.Errorf("update phase: %w", err)
		}
		d.stats.record(PhaseUpdate, d.clock.Now().Sub(start))

		d.lag -= d.dt
		d.stats.steps++
		steps++
	}

	start = d.clock.Now()
	if err := scene.Render(d.Interpolation()); err != nil {
		return fmt.Errorf("render phase: %w", err)
	}
	d.stats.record(PhaseRender, d.clock.Now().Sub(start))

	if d.state == Running {
		gen := d.generation
		d.scheduler.Schedule(func() error {
			if gen != d.generation {
				return nil
			}
			return d.Step()
		})
	}

	return nil
}

func (d *Driver) clamp() {
	dropped := int64(d.lag / d.dt)
	d.lag %= d.dt
	d.stats.clampedSteps += dropped
	d.logger.Warn("tick exceeded max steps, discarding time",
		zap.Int("max_steps", d.maxSteps),
		zap.Int64("dropped_steps", dropped),
		zap.Duration("elapsed", d.elapsed))
}

// Interpolation returns lag/dt, the unsimulated fraction of a step.
func (d *Driver) Interpolation() float64 {
	return float64(d.lag) / float64(d.dt)
}

// Active returns the active scene.
func (d *Driver) Active() *Scene {
	return d.scenes[d.active]
}

func (d *Driver) ActiveIndex() int { return d.active }

// SetActive makes the scene at id active. An id outside the scene list fails
// with ErrInvalidScene and leaves the active scene unchanged.
func (d *Driver) SetActive(id int) error {
	if id < 0 || id >= len(d.scenes) {
		return fmt.Errorf("%w: %d (have %d)", ErrInvalidScene, id, len(d.scenes))
	}
	d.switchTo(id)
	return nil
}

// SetActiveScene activates scene if it belongs to the driver and reports
// whether it did.
func (d *Driver) SetActiveScene(scene *Scene) bool {
	for i, s := range d.scenes {
		if s == scene {
			d.switchTo(i)
			return true
		}
	}
	return false
}

// Next activates the following scene, wrapping from the last to the first.
func (d *Driver) Next() {
	d.switchTo((d.active + 1) % len(d.scenes))
}

// Prev activates the preceding scene, wrapping from the first to the last.
func (d *Driver) Prev() {
	d.switchTo((d.active + len(d.scenes) - 1) % len(d.scenes))
}

// switchTo activates the scene at a valid index.
func (d *Driver) switchTo(id int) {
	if id == d.active {
		return
	}

	d.logger.Debug("scene switched",
		zap.Int("from", d.active),
		zap.Int("to", id),
		zap.Duration("lag", d.lag),
		zap.Bool("lag_reset", d.resetOnSwap))

	d.active = id
	if d.resetOnSwap {
		d.lag = 0
	}
}

func (d *Driver) Scenes() []*Scene { return d.scenes }
func (d *Driver) State() RunState { return d.state }
func (d *Driver) Dt() time.Duration { return d.dt }
func (d *Driver) Lag() time.Duration { return d.lag }
func (d *Driver) Elapsed() time.Duration { return d.elapsed }
func (d *Driver) Scheduler() Scheduler { return d.scheduler }

// Stats returns a snapshot of tick, step and per-phase timing counters.
func (d *Driver) Stats() Stats {
	return d.stats.snapshot()
}
