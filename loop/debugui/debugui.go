// Package debugui draws Dear ImGui windows describing a running loop.Driver
// on top of an Ebiten host.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window renders ImGui widgets once per frame.
type Window interface {
	Render()
}

// Overlay owns the ImGui Ebiten backend and renders its windows each frame.
// It satisfies ebitenhost.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	windows []Window
}

// NewOverlay creates the backend and its window. Call it before the host
// starts the game.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

// Add registers a window rendered every frame.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// BeginFrame starts an ImGui frame.
func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame renders the windows and closes the frame.
func (o *Overlay) EndFrame() {
	for _, w := range o.windows {
		w.Render()
	}
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
