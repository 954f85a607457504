package loop

import "time"

// EntityId identifies an entity within the scene holding it. Zero means the
// entity has not been added to a scene.
type EntityId uint64

// Entity aggregates one Transition and up to one capability per phase.
// Capabilities are referenced, not owned, and may be shared between entities.
type Entity struct {
	id         EntityId
	transition *Transition
	state      *State

	input    Input
	physics  Physics
	graphics Graphics
}

// EntityOption configures an Entity at construction.
type EntityOption func(*Entity)

func WithInput(input Input) EntityOption {
	return func(e *Entity) { e.input = input }
}

func WithPhysics(physics Physics) EntityOption {
	return func(e *Entity) { e.physics = physics }
}

func WithGraphics(graphics Graphics) EntityOption {
	return func(e *Entity) { e.graphics = graphics }
}

func WithState(state *State) EntityOption {
	return func(e *Entity) { e.state = state }
}

// NewEntity creates an entity owning transition. A nil transition is replaced
// by one at the origin.
func NewEntity(transition *Transition, opts ...EntityOption) *Entity {
	if transition == nil {
		transition = NewTransition(Point{})
	}
	e := &Entity{transition: transition}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Entity) Id() EntityId { return e.id }
func (e *Entity) Transition() *Transition { return e.transition }

// State returns the entity's state bag, or nil if none was attached.
func (e *Entity) State() *State { return e.state }

// HandleInput runs the attached Input capability, if any.
func (e *Entity) HandleInput(scene *Scene) error {
	if e.input == nil {
		return nil
	}
	return e.input.Update(e, scene)
}

// Update runs the attached Physics capability, if any.
func (e *Entity) Update(scene *Scene, dt time.Duration) error {
	if e.physics == nil {
		return nil
	}
	return e.physics.Update(e, scene, dt)
}

// Render runs the attached Graphics capability against the scene's surface,
// if any.
func (e *Entity) Render(scene *Scene, remainder float64) error {
	if e.graphics == nil {
		return nil
	}
	return e.graphics.Update(e, scene.Surface(), remainder)
}
