package controller

// Snapshot is one poll cycle's view of the pad. It is derived once per
// cycle by a Tracker and treated as immutable; components keep only the
// derived state they own (press history, active notes), never a copy of
// raw button state.
type Snapshot struct {
	Held     [NumButtons]bool
	Pressed  [NumButtons]bool // went down this cycle
	Released [NumButtons]bool // came up this cycle
}

// FirstPressed returns the lowest-index note button that went down this
// cycle, or -1.
func (s Snapshot) FirstPressed() int {
	for b := 0; b < NumNoteButtons; b++ {
		if s.Pressed[b] {
			return b
		}
	}
	return -1
}

// AnyNoteHeld reports whether any of the ten note buttons is down.
func (s Snapshot) AnyNoteHeld() bool {
	for b := 0; b < NumNoteButtons; b++ {
		if s.Held[b] {
			return true
		}
	}
	return false
}

// LowestHeld returns the lowest-index held note button other than skip,
// or -1.
func (s Snapshot) LowestHeld(skip int) int {
	for b := 0; b < NumNoteButtons; b++ {
		if s.Held[b] && b != skip {
			return b
		}
	}
	return -1
}

// Tracker turns successive raw held states into Snapshots and records
// press order in its History ring.
type Tracker struct {
	prev    [NumButtons]bool
	History *PressHistory
}

func NewTracker() *Tracker {
	return &Tracker{History: NewPressHistory()}
}

// Apply derives the Snapshot for this cycle from the current held state
// and appends any new presses to the history.
func (t *Tracker) Apply(held [NumButtons]bool) Snapshot {
	var snap Snapshot
	snap.Held = held
	for b := 0; b < NumButtons; b++ {
		snap.Pressed[b] = held[b] && !t.prev[b]
		snap.Released[b] = !held[b] && t.prev[b]
		if snap.Pressed[b] {
			t.History.Push(b)
		}
	}
	t.prev = held
	return snap
}
