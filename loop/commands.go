package loop

type spawn struct {
	entity *Entity
	id     EntityId
}

// Commands buffers structural scene changes requested while a phase is
// iterating entities. The buffer is flushed once the phase has visited every
// entity, so the dispatch order of the running phase never changes under it.
type Commands struct {
	scene    *Scene
	spawns   []spawn
	despawns []EntityId
	defers   []func()
}

func newCommands(scene *Scene) *Commands {
	return &Commands{scene: scene}
}

// Spawn queues an entity to be appended to the scene. The entity's id is
// reserved immediately, so it can be despawned before the flush that adds it.
func (c *Commands) Spawn(entity *Entity) EntityId {
	id := c.scene.reserveId()
	entity.id = id
	c.spawns = append(c.spawns, spawn{entity: entity, id: id})
	return id
}

// Despawn queues removal of the entity with the given id.
func (c *Commands) Despawn(id EntityId) {
	c.despawns = append(c.despawns, id)
}

// Defer queues a function to run after the current phase.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether any command is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns) > 0 || len(c.despawns) > 0 || len(c.defers) > 0
}

// Flush applies all queued commands to the scene. Spawns run before
// despawns, deferred functions run last. Commands queued by a deferred
// function are applied by the same Flush.
func (c *Commands) Flush() {
	for c.Pending() {
		spawns, despawns, defers := c.spawns, c.despawns, c.defers
		c.spawns, c.despawns, c.defers = nil, nil, nil

		for _, s := range spawns {
			c.scene.insert(s.entity, s.id)
		}

		for _, id := range despawns {
			c.scene.Remove(id)
		}

		for _, fn := range defers {
			fn()
		}
	}
}
