package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestPollStopsAfterRun(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	h := NewHost(screen, nil)
	for len(h.events) < cap(h.events) {
		h.events <- tcell.NewEventInterrupt(nil)
	}

	done := make(chan struct{})
	close(done)
	exited := make(chan struct{})
	go func() {
		h.poll(done)
		close(exited)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("poll blocked on a full event buffer after run ended")
	}
}
