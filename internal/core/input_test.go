package core

import "testing"

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		dir  Direction
		ok   bool
	}{
		{"arrow up", "up", DirUp, true},
		{"arrow down", "down", DirDown, true},
		{"arrow left", "left", DirLeft, true},
		{"arrow right", "right", DirRight, true},
		{"dom-style arrow name", "ArrowUp", DirUp, true},
		{"wasd w", "w", DirUp, true},
		{"wasd a", "a", DirLeft, true},
		{"wasd s", "s", DirDown, true},
		{"wasd d", "d", DirRight, true},
		{"uppercase wasd", "W", DirUp, true},
		{"mixed case arrow", "ArrowLeft", DirLeft, true},
		{"unrecognized letter", "x", 0, false},
		{"unrecognized key", "enter", 0, false},
		{"empty", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := MapKey(tc.key)
			if ok != tc.ok {
				t.Fatalf("MapKey(%q) ok = %v, expected %v", tc.key, ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, dir, tc.dir)
			}
		})
	}
}

func TestHeldPressRelease(t *testing.T) {
	var h Held

	h.Press(DirUp)
	h.Press(DirLeft)

	snap := h.Snapshot()
	if !snap.Has(DirUp) || !snap.Has(DirLeft) {
		t.Error("Snapshot should contain pressed directions")
	}
	if snap.Has(DirDown) || snap.Has(DirRight) {
		t.Error("Snapshot should not contain unpressed directions")
	}

	h.Release(DirUp)
	snap = h.Snapshot()
	if snap.Has(DirUp) {
		t.Error("Released direction should not be held")
	}
	if !snap.Has(DirLeft) {
		t.Error("Other directions should remain held after release")
	}
}

func TestHeldPressIdempotent(t *testing.T) {
	var h Held

	h.Press(DirRight)
	h.Press(DirRight)
	h.Release(DirRight)

	if h.Snapshot().Has(DirRight) {
		t.Error("Single release should clear a direction pressed twice")
	}
}

func TestHeldSnapshotIsStable(t *testing.T) {
	var h Held

	h.Press(DirDown)
	snap := h.Snapshot()

	// Mutations after the snapshot must not affect it.
	h.Release(DirDown)
	h.Press(DirUp)

	if !snap.Has(DirDown) {
		t.Error("Snapshot should keep the state at the time it was taken")
	}
	if snap.Has(DirUp) {
		t.Error("Snapshot should not see later presses")
	}
}

func TestHeldClear(t *testing.T) {
	var h Held

	h.Press(DirUp)
	h.Press(DirDown)
	h.Clear()

	if !h.Snapshot().Empty() {
		t.Error("Clear should release all directions")
	}
}
