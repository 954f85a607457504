package loop

// Transition holds the spatial state of a single entity. Rotation is kept as an
// opaque pair; the bundled components read Rotation.X as radians but do not
// apply it when drawing.
type Transition struct {
	position Point
	rotation Point
	velocity Point
}

// NewTransition creates a transition at the given position with zero rotation
// and velocity.
func NewTransition(position Point) *Transition {
	return &Transition{position: position}
}

func (t *Transition) Position() Point { return t.position }
func (t *Transition) Rotation() Point { return t.rotation }
func (t *Transition) Velocity() Point { return t.velocity }

// SetPosition replaces the stored position and returns t for chaining.
func (t *Transition) SetPosition(p Point) *Transition {
	t.position = p
	return t
}

// SetRotation replaces the stored rotation and returns t for chaining.
func (t *Transition) SetRotation(p Point) *Transition {
	t.rotation = p
	return t
}

// SetVelocity replaces the stored velocity and returns t for chaining.
func (t *Transition) SetVelocity(p Point) *Transition {
	t.velocity = p
	return t
}
