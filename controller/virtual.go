package controller

import (
	"sync"
	"time"
)

// DefaultTapHold is how long a virtual key tap keeps its button held.
const DefaultTapHold = 150 * time.Millisecond

// VirtualSource is a pad driven from the TUI keyboard. Terminals deliver
// key-down only, so note buttons are "tapped": held for a fixed window
// after each keypress, released automatically. L and R toggle so combos
// and boogie mutes stay reachable.
type VirtualSource struct {
	mu        sync.Mutex
	held      [NumButtons]bool
	releaseAt [NumButtons]time.Time
	tapHold   time.Duration
}

func NewVirtualSource() *VirtualSource {
	return &VirtualSource{tapHold: DefaultTapHold}
}

// Tap presses a note button and schedules its release. Tapping again
// while held extends the hold, which is how a terminal key autorepeat
// sustains a note.
func (v *VirtualSource) Tap(button int) {
	if button < 0 || button >= NumNoteButtons {
		return
	}
	v.mu.Lock()
	v.held[button] = true
	v.releaseAt[button] = time.Now().Add(v.tapHold)
	v.mu.Unlock()
}

// Toggle flips a modifier button (L or R).
func (v *VirtualSource) Toggle(button int) {
	if button != BtnL && button != BtnR {
		return
	}
	v.mu.Lock()
	v.held[button] = !v.held[button]
	v.mu.Unlock()
}

// Held reports a button's current state (for the TUI view).
func (v *VirtualSource) Held(button int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if button < 0 || button >= NumButtons {
		return false
	}
	return v.held[button]
}

// Read applies due releases and returns the held state.
func (v *VirtualSource) Read() [NumButtons]bool {
	now := time.Now()
	v.mu.Lock()
	defer v.mu.Unlock()
	for b := 0; b < NumNoteButtons; b++ {
		if v.held[b] && now.After(v.releaseAt[b]) {
			v.held[b] = false
		}
	}
	return v.held
}

func (v *VirtualSource) Close() error { return nil }
