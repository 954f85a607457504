package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fixedstep/loop"
)

// KeyPoller reports whether a key is held.
type KeyPoller func(ebiten.Key) bool

// Keyboard is a direction source reading the arrow keys and WASD.
type Keyboard struct {
	pressed KeyPoller
}

// NewKeyboard polls Ebiten's keyboard state, or poller when non-nil.
func NewKeyboard(poller KeyPoller) *Keyboard {
	if poller == nil {
		poller = ebiten.IsKeyPressed
	}
	return &Keyboard{pressed: poller}
}

func (k *Keyboard) Direction() loop.Point {
	var dir loop.Point
	if k.any(ebiten.KeyArrowLeft, ebiten.KeyA) {
		dir.X--
	}
	if k.any(ebiten.KeyArrowRight, ebiten.KeyD) {
		dir.X++
	}
	if k.any(ebiten.KeyArrowUp, ebiten.KeyW) {
		dir.Y--
	}
	if k.any(ebiten.KeyArrowDown, ebiten.KeyS) {
		dir.Y++
	}
	return dir
}

func (k *Keyboard) any(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
