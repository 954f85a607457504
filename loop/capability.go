package loop

import "time"

// Input reacts to an external input source during the input phase.
type Input interface {
	Update(entity *Entity, scene *Scene) error
}

// Physics advances an entity by one fixed step. Implementations must derive
// the new transition only from the current transition and dt so that runs are
// reproducible regardless of frame rate.
type Physics interface {
	Update(entity *Entity, scene *Scene, dt time.Duration) error
}

// Graphics draws an entity. remainder is the unsimulated fraction of a step in
// [0, 1); implementations may use it for visual interpolation but must not
// touch simulation state with it.
type Graphics interface {
	Update(entity *Entity, surface Surface, remainder float64) error
}

// Surface is a passive drawing target.
type Surface interface {
	// Clear wipes the whole drawable area.
	Clear()
	// Draw places d at the given position scaled to size.
	Draw(d Drawable, at, size Point) error
}

// Drawable is a passive resource a Surface knows how to draw.
type Drawable interface {
	Size() Point
	// Ready reports whether the underlying pixel data has been supplied.
	Ready() bool
}
