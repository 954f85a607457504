package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fixedstep/loop"
)

// DefaultHold is how long a key press counts as held. Terminals report key
// repeats, not key state, so a direction fades unless the key keeps repeating.
const DefaultHold = 150 * time.Millisecond

// Keyboard is a direction source fed with tcell key events.
type Keyboard struct {
	clock loop.Clock
	hold  time.Duration
	last  map[tcell.Key]time.Time
}

func NewKeyboard(clock loop.Clock, hold time.Duration) *Keyboard {
	if clock == nil {
		clock = loop.SystemClock{}
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{clock: clock, hold: hold, last: make(map[tcell.Key]time.Time)}
}

// HandleKey records a key press. Runes h, j, k, l map to the arrows.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) {
	key := ev.Key()
	if key == tcell.KeyRune {
		switch ev.Rune() {
		case 'h':
			key = tcell.KeyLeft
		case 'j':
			key = tcell.KeyDown
		case 'k':
			key = tcell.KeyUp
		case 'l':
			key = tcell.KeyRight
		default:
			return
		}
	}
	k.last[key] = k.clock.Now()
}

func (k *Keyboard) Direction() loop.Point {
	var dir loop.Point
	if k.held(tcell.KeyLeft) {
		dir.X--
	}
	if k.held(tcell.KeyRight) {
		dir.X++
	}
	if k.held(tcell.KeyUp) {
		dir.Y--
	}
	if k.held(tcell.KeyDown) {
		dir.Y++
	}
	return dir
}

func (k *Keyboard) held(key tcell.Key) bool {
	at, ok := k.last[key]
	return ok && k.clock.Now().Sub(at) < k.hold
}
