package components

import "github.com/plus3/fixedstep/loop"

// DirectionSource reports the direction currently requested by the player as
// a vector with components in [-1, 1]. A zero vector means no request.
type DirectionSource interface {
	Direction() loop.Point
}

// Steer replaces the entity velocity with the requested direction scaled by
// Speed whenever a direction is held. Without input the velocity is left as
// is, so physics keeps control of the entity.
type Steer struct {
	Source DirectionSource
	Speed  float64
}

func NewSteer(source DirectionSource, speed float64) *Steer {
	return &Steer{Source: source, Speed: speed}
}

func (s *Steer) Update(entity *loop.Entity, _ *loop.Scene) error {
	dir := s.Source.Direction()
	if dir == (loop.Point{}) {
		return nil
	}
	entity.Transition().SetVelocity(dir.Scale(s.Speed))
	return nil
}
