package components

import (
	"time"

	"github.com/plus3/fixedstep/loop"
)

// Default bounce parameters.
const (
	DefaultLow  = 0
	DefaultHigh = 304
)

// DefaultRebound is the velocity applied after touching the low bound; its
// negation is applied after touching the high bound.
var DefaultRebound = loop.Point{X: 4, Y: 2}

// Bounce moves an entity by its velocity every step and reverses it when the
// horizontal position reaches a bound. The bound check reads the position at
// the start of the step and the position is then advanced by the velocity
// stored after the check.
type Bounce struct {
	Low     float64
	High    float64
	Rebound loop.Point
}

// NewBounce returns a Bounce with the default bounds and rebound.
func NewBounce() *Bounce {
	return &Bounce{
		Low:     DefaultLow,
		High:    DefaultHigh,
		Rebound: DefaultRebound,
	}
}

func (b *Bounce) Update(entity *loop.Entity, _ *loop.Scene, _ time.Duration) error {
	t := entity.Transition()
	position := t.Position()

	switch {
	case position.X >= b.High:
		t.SetVelocity(b.Rebound.Neg())
	case position.X <= b.Low:
		t.SetVelocity(b.Rebound)
	}

	t.SetPosition(position.Add(t.Velocity()))
	return nil
}
