package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fixedstep/loop"
)

// Canvas is a loop.Surface drawing into an offscreen Ebiten image.
type Canvas struct {
	image  *ebiten.Image
	width  int
	height int
}

// NewCanvas binds to the *ebiten.Image registered under name and fixes its
// logical size. It fails with loop.ErrTargetNotFound or loop.ErrTargetKind.
func NewCanvas(targets loop.Targets, name string, width, height int) (*Canvas, error) {
	image, err := loop.Resolve[*ebiten.Image](targets, name)
	if err != nil {
		return nil, err
	}
	return &Canvas{image: image, width: width, height: height}, nil
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Clear wipes the whole image.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// Draw renders a *Sprite scaled to size with its top-left corner at at.
// Sprites without pixels yet draw nothing.
func (c *Canvas) Draw(d loop.Drawable, at, size loop.Point) error {
	sprite, ok := d.(*Sprite)
	if !ok {
		return fmt.Errorf("%w: %T on ebiten canvas", loop.ErrDrawableKind, d)
	}

	texture := sprite.Texture()
	if texture == nil {
		return nil
	}

	bounds := texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	if bounds.Dx() > 0 && bounds.Dy() > 0 {
		op.GeoM.Scale(size.X/float64(bounds.Dx()), size.Y/float64(bounds.Dy()))
	}
	op.GeoM.Translate(at.X, at.Y)
	c.image.DrawImage(texture, op)
	return nil
}
