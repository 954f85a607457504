package ebitenhost

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fixedstep/loop"
)

// Sprite is a loop.Drawable backed by an Ebiten image. Its size is fixed at
// construction; the texture may be supplied later from another goroutine.
type Sprite struct {
	width, height float64
	texture       atomic.Pointer[ebiten.Image]
}

// NewSprite creates a sprite of the given size whose texture is not ready yet.
func NewSprite(width, height float64) *Sprite {
	return &Sprite{width: width, height: height}
}

// NewSpriteFromImage creates a ready sprite sized to img.
func NewSpriteFromImage(img *ebiten.Image) *Sprite {
	b := img.Bounds()
	s := NewSprite(float64(b.Dx()), float64(b.Dy()))
	s.Fulfill(img)
	return s
}

// NewFilledSprite creates a ready sprite of a single colour.
func NewFilledSprite(width, height int, c color.Color) *Sprite {
	img := ebiten.NewImage(width, height)
	img.Fill(c)
	return NewSpriteFromImage(img)
}

// Fulfill supplies the texture and marks the sprite ready.
func (s *Sprite) Fulfill(img *ebiten.Image) {
	s.texture.Store(img)
}

// Texture returns the texture, or nil while the sprite is not ready.
func (s *Sprite) Texture() *ebiten.Image {
	return s.texture.Load()
}

func (s *Sprite) Size() loop.Point {
	return loop.Point{X: s.width, Y: s.height}
}

func (s *Sprite) Ready() bool {
	return s.texture.Load() != nil
}
