package loop

// State is a schemaless key-value bag owned by one entity. Capabilities that
// are shared between entities keep their per-entity bookkeeping here.
type State struct {
	values map[string]any
}

// NewState creates a state bag seeded with the given values. The map is
// copied.
func NewState(initial map[string]any) *State {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &State{values: values}
}

// Get returns the value stored under key, or nil.
func (s *State) Get(key string) any {
	return s.values[key]
}

// Set stores value under key and returns s for chaining.
func (s *State) Set(key string, value any) *State {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
	return s
}

// Len returns the number of stored keys.
func (s *State) Len() int {
	return len(s.values)
}

// Lookup returns the value under key if it is present and of type T.
func Lookup[T any](s *State, key string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.values[key].(T)
	if !ok {
		return zero, false
	}
	return v, true
}
