package components

import "github.com/plus3/fixedstep/loop"

// Sprite draws a drawable at the entity position at the drawable's own size.
// Rotation and velocity extrapolation are not applied, and the drawable is
// drawn whether or not it reports Ready.
type Sprite struct {
	Drawable loop.Drawable
}

func NewSprite(d loop.Drawable) *Sprite {
	return &Sprite{Drawable: d}
}

func (s *Sprite) Update(entity *loop.Entity, surface loop.Surface, _ float64) error {
	position := entity.Transition().Position()
	return surface.Draw(s.Drawable, position, s.Drawable.Size())
}
