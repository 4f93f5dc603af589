package core

import (
	"strings"
	"sync"
)

// Direction is one of the four movement directions a player can hold.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all movement directions in resolution order.
// Horizontal axes are resolved before vertical ones each tick.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirSet is an immutable snapshot of held movement directions.
type DirSet uint8

// Has reports whether the direction is held in this snapshot.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Empty reports whether no direction is held.
func (s DirSet) Empty() bool {
	return s == 0
}

func (s DirSet) with(d Direction) DirSet {
	return s | 1<<d
}

func (s DirSet) without(d Direction) DirSet {
	return s &^ (1 << d)
}

// MapKey translates a raw key name into a movement direction.
// Arrow-key names and the WASD alternatives are both recognized,
// case-insensitively. Any other key returns ok=false and must be
// ignored by the caller.
func MapKey(name string) (Direction, bool) {
	switch strings.ToLower(name) {
	case "up", "arrowup", "w":
		return DirUp, true
	case "down", "arrowdown", "s":
		return DirDown, true
	case "left", "arrowleft", "a":
		return DirLeft, true
	case "right", "arrowright", "d":
		return DirRight, true
	}
	return 0, false
}

// Held is the set of currently pressed movement directions.
//
// It is the single point of shared mutable state between the input
// adapter (asynchronous key events) and the simulation engine. The
// engine must call Snapshot exactly once at the start of each tick and
// resolve all four directions against that stable copy, never against
// the live set.
type Held struct {
	mu  sync.Mutex
	set DirSet
}

// Press marks a direction as held. Idempotent.
func (h *Held) Press(d Direction) {
	h.mu.Lock()
	h.set = h.set.with(d)
	h.mu.Unlock()
}

// Release removes a direction from the held set. Release always
// applies, regardless of the current game status.
func (h *Held) Release(d Direction) {
	h.mu.Lock()
	h.set = h.set.without(d)
	h.mu.Unlock()
}

// Snapshot returns a stable copy of the held set for one tick.
func (h *Held) Snapshot() DirSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.set
}

// Clear releases every direction.
func (h *Held) Clear() {
	h.mu.Lock()
	h.set = 0
	h.mu.Unlock()
}
