package loop

import (
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// Scene owns an ordered list of entities and references the surface they are
// drawn on. Entity order is dispatch order for every phase.
type Scene struct {
	entities []*Entity
	index    *intmap.Map[EntityId, *Entity]
	nextId   EntityId
	surface  Surface
	commands *Commands

	iterating bool
}

// NewScene creates a scene drawing onto surface. The surface is referenced,
// not owned; its lifetime is managed by the caller.
func NewScene(surface Surface, entities ...*Entity) *Scene {
	s := &Scene{
		entities: make([]*Entity, 0, len(entities)),
		index:    intmap.New[EntityId, *Entity](max(len(entities), 16)),
		surface:  surface,
	}
	s.commands = newCommands(s)
	for _, e := range entities {
		s.Add(e)
	}
	return s
}

// Surface returns the rendering surface the scene draws on.
func (s *Scene) Surface() Surface { return s.surface }

// Commands returns the buffer for structural changes requested mid-phase.
func (s *Scene) Commands() *Commands { return s.commands }

// Entities returns the entities in dispatch order. The slice must not be
// modified.
func (s *Scene) Entities() []*Entity { return s.entities }

func (s *Scene) Len() int { return len(s.entities) }

// Add appends entity to the dispatch order and assigns it an id. Calling Add
// while a phase is iterating is safe but the entity is only visited from the
// next phase on; capabilities should prefer Commands().Spawn.
func (s *Scene) Add(entity *Entity) EntityId {
	id := s.reserveId()
	s.insert(entity, id)
	return id
}

func (s *Scene) reserveId() EntityId {
	s.nextId++
	return s.nextId
}

func (s *Scene) insert(entity *Entity, id EntityId) {
	entity.id = id
	s.entities = append(s.entities, entity)
	s.index.Put(id, entity)
}

// Lookup returns the entity with the given id.
func (s *Scene) Lookup(id EntityId) (*Entity, bool) {
	return s.index.Get(id)
}

// Remove drops the entity with the given id, preserving the order of the rest.
// While a phase is iterating, removal is queued on Commands and takes effect
// when the phase ends. It reports whether the id was known.
func (s *Scene) Remove(id EntityId) bool {
	entity, ok := s.index.Get(id)
	if !ok {
		return false
	}
	if s.iterating {
		s.commands.Despawn(id)
		return true
	}
	s.index.Del(id)
	if i := slices.Index(s.entities, entity); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
	entity.id = 0
	return true
}

// HandleInput runs the input phase for every entity in order.
func (s *Scene) HandleInput() error {
	return s.each(func(e *Entity) error {
		return e.HandleInput(s)
	})
}

// Update advances every entity by one fixed step of dt.
func (s *Scene) Update(dt time.Duration) error {
	return s.each(func(e *Entity) error {
		return e.Update(s, dt)
	})
}

// Render clears the surface once and then draws every entity in order.
func (s *Scene) Render(remainder float64) error {
	s.surface.Clear()
	return s.each(func(e *Entity) error {
		return e.Render(s, remainder)
	})
}

// each runs fn over the entities in order and flushes queued commands if
// every call succeeded. The first error stops the phase.
func (s *Scene) each(fn func(*Entity) error) error {
	s.iterating = true
	for _, e := range s.entities {
		if err := fn(e); err != nil {
			s.iterating = false
			return err
		}
	}
	s.iterating = false

	s.commands.Flush()
	return nil
}
