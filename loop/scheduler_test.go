package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/fixedstep/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler(t *testing.T) {
	t.Run("callbacks scheduled while running wait for the next batch", func(t *testing.T) {
		s := loop.NewManualScheduler()
		runs := 0
		var again func() error
		again = func() error {
			runs++
			s.Schedule(again)
			return nil
		}
		s.Schedule(again)

		require.NoError(t, s.RunPending())
		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, s.Pending())

		require.NoError(t, s.RunPending())
		assert.Equal(t, 2, runs)
	})

	t.Run("error stops the batch", func(t *testing.T) {
		s := loop.NewManualScheduler()
		ran := false
		s.Schedule(func() error { return errBoom })
		s.Schedule(func() error { ran = true; return nil })

		assert.ErrorIs(t, s.RunPending(), errBoom)
		assert.False(t, ran)
		assert.Equal(t, 0, s.Pending())
	})
}

func TestTickerScheduler(t *testing.T) {
	t.Run("context cancellation in run", func(t *testing.T) {
		s := loop.NewTickerScheduler()
		clock := loop.NewManualClock(time.Unix(0, 0))
		physics := &recordingPhysics{rec: &recorder{}}
		scene := loop.NewScene(&recordingSurface{rec: &recorder{}},
			loop.NewEntity(nil, loop.WithPhysics(physics)))

		driver, err := loop.NewDriver([]*loop.Scene{scene},
			loop.WithStep(time.Millisecond),
			loop.WithClock(clock),
			loop.WithScheduler(s))
		require.NoError(t, err)
		require.NoError(t, driver.Start())

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- s.Run(ctx, time.Millisecond)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Greater(t, driver.Stats().Ticks, int64(1))
	})

	t.Run("callback error ends run", func(t *testing.T) {
		s := loop.NewTickerScheduler()
		s.Schedule(func() error { return errBoom })

		err := s.Run(context.Background(), time.Millisecond)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestResolveTarget(t *testing.T) {
	targets := loop.Targets{
		"main": &recordingSurface{},
		"text": "not a surface",
	}

	surface, err := loop.Resolve[*recordingSurface](targets, "main")
	require.NoError(t, err)
	assert.NotNil(t, surface)

	_, err = loop.Resolve[*recordingSurface](targets, "missing")
	assert.ErrorIs(t, err, loop.ErrTargetNotFound)

	_, err = loop.Resolve[loop.Surface](targets, "text")
	assert.ErrorIs(t, err, loop.ErrTargetKind)
}
