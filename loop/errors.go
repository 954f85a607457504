package loop

import "errors"

var (
	// ErrNoScenes is returned by NewDriver when no scene is supplied.
	ErrNoScenes = errors.New("loop: at least one scene must be provided")
	// ErrInvalidScene is returned when a scene index does not exist.
	ErrInvalidScene = errors.New("loop: no scene with this id")
	// ErrInvalidTickRate is returned for non-positive fps or step values.
	ErrInvalidTickRate = errors.New("loop: tick rate must be positive")
	// ErrTargetNotFound is returned when a named render target is missing.
	ErrTargetNotFound = errors.New("loop: render target not found")
	// ErrTargetKind is returned when a named render target has the wrong type.
	ErrTargetKind = errors.New("loop: render target has the wrong kind")
	// ErrDrawableKind is returned by a Surface asked to draw a resource it
	// does not support.
	ErrDrawableKind = errors.New("loop: drawable not supported by surface")
)
