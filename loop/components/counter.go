package components

import (
	"time"

	"github.com/plus3/fixedstep/loop"
)

// State keys written by the counters.
const (
	UpdatesKey = "updates"
	RendersKey = "renders"
)

// UpdateCounter is a Physics capability that counts fixed steps in the
// entity's State bag. Entities without State are left alone.
type UpdateCounter struct{}

func (UpdateCounter) Update(entity *loop.Entity, _ *loop.Scene, _ time.Duration) error {
	increment(entity.State(), UpdatesKey)
	return nil
}

// RenderCounter is a Graphics capability that counts renders in the entity's
// State bag without drawing anything.
type RenderCounter struct{}

func (RenderCounter) Update(entity *loop.Entity, _ loop.Surface, _ float64) error {
	increment(entity.State(), RendersKey)
	return nil
}

// Counts returns the update and render counts recorded for entity.
func Counts(entity *loop.Entity) (updates, renders int64) {
	updates, _ = loop.Lookup[int64](entity.State(), UpdatesKey)
	renders, _ = loop.Lookup[int64](entity.State(), RendersKey)
	return updates, renders
}

func increment(state *loop.State, key string) {
	if state == nil {
		return
	}
	n, _ := loop.Lookup[int64](state, key)
	state.Set(key, n+1)
}
