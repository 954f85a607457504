package components_test

import (
	"testing"
	"time"

	"github.com/plus3/fixedstep/loop"
	"github.com/plus3/fixedstep/loop/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	drawable loop.Drawable
	at, size loop.Point
}

type captureSurface struct {
	clears int
	draws  []drawCall
}

func (s *captureSurface) Clear() { s.clears++ }

func (s *captureSurface) Draw(d loop.Drawable, at, size loop.Point) error {
	s.draws = append(s.draws, drawCall{drawable: d, at: at, size: size})
	return nil
}

type box struct {
	w, h  float64
	ready bool
}

func (b *box) Size() loop.Point { return loop.Point{X: b.w, Y: b.h} }
func (b *box) Ready() bool { return b.ready }

type fixedDirection loop.Point

func (d fixedDirection) Direction() loop.Point { return loop.Point(d) }

func TestBounce(t *testing.T) {
	step := time.Second / 30

	t.Run("high bound reverses before integrating", func(t *testing.T) {
		bounce := components.NewBounce()
		tr := loop.NewTransition(loop.Point{X: 304, Y: 10}).SetVelocity(loop.Point{X: 4, Y: 2})
		entity := loop.NewEntity(tr, loop.WithPhysics(bounce))

		require.NoError(t, entity.Update(nil, step))

		assert.Equal(t, loop.Point{X: -4, Y: -2}, tr.Velocity())
		assert.Equal(t, loop.Point{X: 300, Y: 8}, tr.Position())
	})

	t.Run("low bound", func(t *testing.T) {
		bounce := components.NewBounce()
		tr := loop.NewTransition(loop.Point{X: -1, Y: 0}).SetVelocity(loop.Point{X: -4, Y: -2})
		entity := loop.NewEntity(tr, loop.WithPhysics(bounce))

		require.NoError(t, entity.Update(nil, step))

		assert.Equal(t, loop.Point{X: 4, Y: 2}, tr.Velocity())
		assert.Equal(t, loop.Point{X: 3, Y: 2}, tr.Position())
	})

	t.Run("between bounds keeps velocity", func(t *testing.T) {
		bounce := components.NewBounce()
		tr := loop.NewTransition(loop.Point{X: 100, Y: 0}).SetVelocity(loop.Point{X: 1.5, Y: -1})
		entity := loop.NewEntity(tr, loop.WithPhysics(bounce))

		require.NoError(t, entity.Update(nil, step))

		assert.Equal(t, loop.Point{X: 1.5, Y: -1}, tr.Velocity())
		assert.Equal(t, loop.Point{X: 101.5, Y: -1}, tr.Position())
	})

	t.Run("trajectory is independent of frame delivery", func(t *testing.T) {
		run := func(frames []time.Duration) []loop.Point {
			tr := loop.NewTransition(loop.Point{X: 290}).SetVelocity(components.DefaultRebound)
			scene := loop.NewScene(&captureSurface{},
				loop.NewEntity(tr, loop.WithPhysics(components.NewBounce())))

			clock := loop.NewManualClock(time.Unix(0, 0))
			scheduler := loop.NewManualScheduler()
			driver, err := loop.NewDriver([]*loop.Scene{scene},
				loop.WithStep(10*time.Millisecond),
				loop.WithClock(clock),
				loop.WithScheduler(scheduler))
			require.NoError(t, err)
			require.NoError(t, driver.Start())

			var positions []loop.Point
			for _, f := range frames {
				clock.Advance(f)
				require.NoError(t, scheduler.RunPending())
			}
			positions = append(positions, tr.Position(), tr.Velocity())
			return positions
		}

		smooth := make([]time.Duration, 20)
		for i := range smooth {
			smooth[i] = 10 * time.Millisecond
		}
		jittery := []time.Duration{
			3 * time.Millisecond, 41 * time.Millisecond, 0, 16 * time.Millisecond,
			90 * time.Millisecond, 7 * time.Millisecond, 43 * time.Millisecond,
		}

		assert.Equal(t, run(smooth), run(jittery))
	})
}

func TestSprite(t *testing.T) {
	t.Run("draws once at position with drawable size", func(t *testing.T) {
		surface := &captureSurface{}
		drawable := &box{w: 16, h: 8}
		tr := loop.NewTransition(loop.Point{X: 5, Y: 7}).
			SetVelocity(loop.Point{X: 100, Y: 100}).
			SetRotation(loop.Point{X: 1})
		entity := loop.NewEntity(tr, loop.WithGraphics(components.NewSprite(drawable)))
		scene := loop.NewScene(surface, entity)

		require.NoError(t, scene.Render(0.9))

		require.Len(t, surface.draws, 1)
		assert.Same(t, drawable, surface.draws[0].drawable)
		assert.Equal(t, loop.Point{X: 5, Y: 7}, surface.draws[0].at)
		assert.Equal(t, loop.Point{X: 16, Y: 8}, surface.draws[0].size)
		assert.Equal(t, loop.Point{X: 5, Y: 7}, tr.Position())
	})

	t.Run("shared sprite draws every entity", func(t *testing.T) {
		surface := &captureSurface{}
		sprite := components.NewSprite(&box{w: 1, h: 1})
		scene := loop.NewScene(surface,
			loop.NewEntity(loop.NewTransition(loop.Point{X: 1}), loop.WithGraphics(sprite)),
			loop.NewEntity(loop.NewTransition(loop.Point{X: 2}), loop.WithGraphics(sprite)),
		)

		require.NoError(t, scene.Render(0))

		require.Len(t, surface.draws, 2)
		assert.Equal(t, 1.0, surface.draws[0].at.X)
		assert.Equal(t, 2.0, surface.draws[1].at.X)
	})
}

func TestSteer(t *testing.T) {
	t.Run("held direction sets velocity", func(t *testing.T) {
		tr := loop.NewTransition(loop.Point{})
		entity := loop.NewEntity(tr, loop.WithInput(components.NewSteer(fixedDirection{X: -1}, 3)))

		require.NoError(t, entity.HandleInput(nil))
		assert.Equal(t, loop.Point{X: -3}, tr.Velocity())
	})

	t.Run("no direction leaves velocity", func(t *testing.T) {
		tr := loop.NewTransition(loop.Point{}).SetVelocity(loop.Point{X: 4, Y: 2})
		entity := loop.NewEntity(tr, loop.WithInput(components.NewSteer(fixedDirection{}, 3)))

		require.NoError(t, entity.HandleInput(nil))
		assert.Equal(t, loop.Point{X: 4, Y: 2}, tr.Velocity())
	})
}

func TestCounters(t *testing.T) {
	state := loop.NewState(nil)
	entity := loop.NewEntity(nil,
		loop.WithState(state),
		loop.WithPhysics(components.UpdateCounter{}),
		loop.WithGraphics(components.RenderCounter{}),
	)
	scene := loop.NewScene(&captureSurface{}, entity)

	for i := 0; i < 3; i++ {
		require.NoError(t, scene.Update(time.Millisecond))
	}
	require.NoError(t, scene.Render(0))

	updates, renders := components.Counts(entity)
	assert.Equal(t, int64(3), updates)
	assert.Equal(t, int64(1), renders)

	stateless := loop.NewEntity(nil, loop.WithPhysics(components.UpdateCounter{}))
	require.NoError(t, stateless.Update(nil, time.Millisecond))
	updates, _ = components.Counts(stateless)
	assert.Zero(t, updates)
}
