package loop_test

import (
	"testing"

	"github.com/plus3/fixedstep/loop"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tr := loop.NewTransition(loop.Point{X: 1, Y: 2})

		assert.Equal(t, loop.Point{X: 1, Y: 2}, tr.Position())
		assert.Equal(t, loop.Point{}, tr.Rotation())
		assert.Equal(t, loop.Point{}, tr.Velocity())
	})

	t.Run("fluent setters", func(t *testing.T) {
		tr := loop.NewTransition(loop.Point{})

		got := tr.SetPosition(loop.Point{X: 5, Y: 6}).
			SetRotation(loop.Point{X: 0.5}).
			SetVelocity(loop.Point{X: -1, Y: 1})

		assert.Same(t, tr, got)
		assert.Equal(t, loop.Point{X: 5, Y: 6}, tr.Position())
		assert.Equal(t, loop.Point{X: 0.5}, tr.Rotation())
		assert.Equal(t, loop.Point{X: -1, Y: 1}, tr.Velocity())
	})

	t.Run("point arithmetic", func(t *testing.T) {
		p := loop.Point{X: 1, Y: -2}

		assert.Equal(t, loop.Point{X: 4, Y: 0}, p.Add(loop.Point{X: 3, Y: 2}))
		assert.Equal(t, loop.Point{X: -1, Y: 2}, p.Neg())
		assert.Equal(t, loop.Point{X: 2, Y: -4}, p.Scale(2))
	})
}

func TestState(t *testing.T) {
	seed := map[string]any{"hp": 10}
	state := loop.NewState(seed)
	seed["hp"] = 0

	hp, ok := loop.Lookup[int](state, "hp")
	assert.True(t, ok)
	assert.Equal(t, 10, hp)

	assert.Same(t, state, state.Set("name", "ball"))
	assert.Equal(t, "ball", state.Get("name"))
	assert.Equal(t, 2, state.Len())

	_, ok = loop.Lookup[string](state, "hp")
	assert.False(t, ok)

	_, ok = loop.Lookup[int](nil, "hp")
	assert.False(t, ok)

	var empty loop.State
	empty.Set("k", 1)
	assert.Equal(t, 1, empty.Get("k"))

	entity := loop.NewEntity(nil, loop.WithState(state))
	assert.Same(t, state, entity.State())
}
