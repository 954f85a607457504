package loop

import (
	"fmt"
	"reflect"
)

// Targets is a registry of named output targets that surfaces bind to at
// construction.
type Targets map[string]any

// Resolve returns the target registered under name as a T. It fails with
// ErrTargetNotFound when the name is missing and ErrTargetKind when the
// registered value is not a T.
func Resolve[T any](targets Targets, name string) (T, error) {
	var zero T
	raw, ok := targets[name]
	if !ok || raw == nil {
		return zero, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
	}
	target, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %v", ErrTargetKind, name, raw, reflect.TypeFor[T]())
	}
	return target, nil
}
