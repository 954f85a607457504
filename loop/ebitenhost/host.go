// Package ebitenhost runs a loop.Driver inside an Ebiten window. The Host is
// both the ebiten.Game and the driver's Scheduler: every ebiten Update runs
// the callbacks submitted since the previous one, and Draw presents the
// offscreen targets the scene canvases render into.
package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fixedstep/loop"
	"go.uber.org/zap"
)

// Overlay is drawn on top of the presented targets, for example a debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

type target struct {
	name  string
	image *ebiten.Image
}

// Host implements ebiten.Game and loop.Scheduler.
type Host struct {
	loop.ManualScheduler

	width, height int
	targets       loop.Targets
	order         []target
	overlay       Overlay
	quitKeys      []ebiten.Key
	logger        *zap.Logger
}

// NewHost creates a host with a logical screen of width x height pixels.
// Escape ends the game by default.
func NewHost(width, height int, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		width:    width,
		height:   height,
		targets:  loop.Targets{},
		quitKeys: []ebiten.Key{ebiten.KeyEscape},
		logger:   logger.Named("ebiten"),
	}
}

// NewTarget creates an offscreen image registered under name. Targets are
// presented in creation order.
func (h *Host) NewTarget(name string, width, height int) *ebiten.Image {
	image := ebiten.NewImage(width, height)
	h.targets[name] = image
	h.order = append(h.order, target{name: name, image: image})
	return image
}

// Targets returns the registry canvases bind to.
func (h *Host) Targets() loop.Targets { return h.targets }

// SetOverlay installs an overlay drawn after all targets.
func (h *Host) SetOverlay(o Overlay) { h.overlay = o }

// SetQuitKeys replaces the keys that end the game.
func (h *Host) SetQuitKeys(keys ...ebiten.Key) { h.quitKeys = keys }

// Update runs the callbacks scheduled since the last frame.
func (h *Host) Update() error {
	for _, k := range h.quitKeys {
		if ebiten.IsKeyPressed(k) {
			return ebiten.Termination
		}
	}

	if h.overlay != nil {
		h.overlay.BeginFrame()
		defer h.overlay.EndFrame()
	}

	if err := h.RunPending(); err != nil {
		h.logger.Error("tick failed", zap.Error(err))
		return err
	}
	return nil
}

// Draw presents every target at the origin, then the overlay.
func (h *Host) Draw(screen *ebiten.Image) {
	for _, t := range h.order {
		screen.DrawImage(t.image, nil)
	}
	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.overlay != nil {
		h.overlay.Layout(outsideWidth, outsideHeight)
	}
	return h.width, h.height
}

// Run opens the window and blocks until the game ends. Update is synced to
// the display refresh so each scheduled tick fires once per frame. A quit key
// is not reported as an error.
func (h *Host) Run(title string) error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
