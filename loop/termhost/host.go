package termhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fixedstep/loop"
	"go.uber.org/zap"
)

// TargetName is the name the host registers its screen under.
const TargetName = "terminal"

// KeyHandler receives key events on the loop goroutine.
type KeyHandler func(ev *tcell.EventKey)

// Host is a loop.Scheduler that runs scheduled callbacks on a ticker and
// shows the screen after each batch. Input events are read on a background
// goroutine and handed to the loop goroutine through a channel.
type Host struct {
	loop.ManualScheduler

	screen   tcell.Screen
	events   chan tcell.Event
	handlers []KeyHandler
	logger   *zap.Logger
}

// NewHost wraps an initialised screen.
func NewHost(screen tcell.Screen, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		screen: screen,
		events: make(chan tcell.Event, 64),
		logger: logger.Named("term"),
	}
}

// Targets returns a registry holding the screen under TargetName.
func (h *Host) Targets() loop.Targets {
	return loop.Targets{TargetName: h.screen}
}

// OnKey registers a handler for key events other than the quit keys.
func (h *Host) OnKey(handler KeyHandler) {
	h.handlers = append(h.handlers, handler)
}

// Run drives scheduled callbacks every interval until the context ends, a
// quit key (Escape, Ctrl-C) is pressed or a callback fails.
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	done := make(chan struct{})
	defer close(done)
	go h.poll(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-h.events:
			if h.dispatch(ev) {
				h.logger.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			if err := h.RunPending(); err != nil {
				h.logger.Error("tick failed", zap.Error(err))
				return err
			}
			h.screen.Show()
		}
	}
}

// poll forwards screen events until the screen is finalised or done is
// closed.
func (h *Host) poll(done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-done:
			return
		}
	}
}

// dispatch handles one event and reports whether the host should quit.
func (h *Host) dispatch(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		for _, handler := range h.handlers {
			handler(ev)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}
