package core

import "time"

// Key is a single-character token for the most recently observed key.
// Only a small fixed set of keys is recognized; everything else is KeyNone.
type Key rune

const (
	KeyNone  Key = '_'
	KeyUp    Key = 'w' // W - menu up
	KeyLeft  Key = 'a' // A
	KeyDown  Key = 's' // S - menu down
	KeyRight Key = 'd' // D
	KeyFlap  Key = ' ' // Space - flap in game, select in menu
)

// KeyFromRune maps a typed character to its token.
// Upper-case letters are accepted.
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyUp
	case 'a', 'A':
		return KeyLeft
	case 's', 'S':
		return KeyDown
	case 'd', 'D':
		return KeyRight
	case ' ':
		return KeyFlap
	default:
		return KeyNone
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "W"
	case KeyLeft:
		return "A"
	case KeyDown:
		return "S"
	case KeyRight:
		return "D"
	case KeyFlap:
		return "Space"
	default:
		return "Unknown"
	}
}

// InputSource produces the most recently observed key on demand.
// Sample must not block; it is polled once per tick.
type InputSource interface {
	Sample() Key
}

// Latch is an InputSource that reports the last key pressed. Later presses
// overwrite earlier ones and there is no queue.
//
// Terminals deliver a held key as a press followed by auto-repeat events,
// which arrive slower than the tick rate. A press therefore stays active for
// the hold window so that a held key reads as held on every tick in between.
// With a zero window each press is reported by exactly one Sample.
// Latch is not safe for concurrent use.
type Latch struct {
	last    Key
	pressed time.Time
	hold    time.Duration
	now     func() time.Time
}

// NewLatch creates an empty latch with the given hold window. A nil now
// uses time.Now.
func NewLatch(hold time.Duration, now func() time.Time) *Latch {
	if now == nil {
		now = time.Now
	}
	return &Latch{last: KeyNone, hold: hold, now: now}
}

// Press records k as the most recent key. KeyNone is ignored.
func (l *Latch) Press(k Key) {
	if k == KeyNone {
		return
	}
	l.last = k
	if l.now != nil {
		l.pressed = l.now()
	}
}

// Sample returns the latched key. The key is released once its hold window
// has passed, or right away when there is no window.
func (l *Latch) Sample() Key {
	k := l.last
	if k == 0 || k == KeyNone {
		return KeyNone
	}
	if l.hold <= 0 || l.now == nil {
		l.last = KeyNone
		return k
	}
	if l.now().Sub(l.pressed) > l.hold {
		l.last = KeyNone
		return KeyNone
	}
	return k
}
