// Package termhost runs a loop.Driver on a terminal through tcell. Scene
// coordinates are logical pixels mapped onto the terminal's cell grid.
package termhost

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fixedstep/loop"
)

// Glyph is a drawable that fills its area with one styled rune.
type Glyph struct {
	Rune   rune
	Style  tcell.Style
	Width  float64
	Height float64
}

func (g *Glyph) Size() loop.Point { return loop.Point{X: g.Width, Y: g.Height} }

// Ready is always true; glyphs have no pixel data to load.
func (g *Glyph) Ready() bool { return true }

// Canvas is a loop.Surface over a tcell.Screen. The logical area of width x
// height pixels is stretched over the screen's current cell grid.
type Canvas struct {
	screen tcell.Screen
	width  float64
	height float64
}

// NewCanvas binds to the tcell.Screen registered under name.
func NewCanvas(targets loop.Targets, name string, width, height int) (*Canvas, error) {
	screen, err := loop.Resolve[tcell.Screen](targets, name)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("termhost: canvas size %dx%d must be positive", width, height)
	}
	return &Canvas{screen: screen, width: float64(width), height: float64(height)}, nil
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Draw fills the cells covered by the rectangle at..at+size with a *Glyph.
// Cells outside the screen are skipped. Any drawn rectangle covers at least
// one cell.
func (c *Canvas) Draw(d loop.Drawable, at, size loop.Point) error {
	glyph, ok := d.(*Glyph)
	if !ok {
		return fmt.Errorf("%w: %T on terminal canvas", loop.ErrDrawableKind, d)
	}

	cols, rows := c.screen.Size()
	toCol := func(x float64) float64 { return x * float64(cols) / c.width }
	toRow := func(y float64) float64 { return y * float64(rows) / c.height }

	x0 := int(math.Floor(toCol(at.X)))
	y0 := int(math.Floor(toRow(at.Y)))
	x1 := max(int(math.Ceil(toCol(at.X+size.X))), x0+1)
	y1 := max(int(math.Ceil(toRow(at.Y+size.Y))), y0+1)

	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			c.screen.SetContent(x, y, glyph.Rune, nil, glyph.Style)
		}
	}
	return nil
}
