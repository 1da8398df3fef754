package controller

// Action is the outcome of one cycle of priority resolution.
type Action int

const (
	ActionNone Action = iota // nothing changed
	ActionPlay               // play (or retrigger) the returned button
	ActionStop               // stop the current note, nothing left to play
)

// ResolvePriority decides which button should drive the voice this cycle.
// current is the button the sounding note belongs to (-1 for none).
// Evaluation order is strict:
//
//  1. A new press always wins, even over a sounding note.
//  2. If the sounding button was released, fall back to the most recent
//     history entry that is still held, then to the lowest-index held
//     button. History entries that are no longer held are skipped, never
//     played. If nothing is held (and, when allowL, L isn't either), stop.
//  3. L pressed alone acts as a trigger when allowL is set.
//  4. A pitch-bend change retriggers the current button.
//
// Monophonic and chord playstyles and the boogie scheduler all share this
// resolution; they differ only in how the decision is applied to voices.
func ResolvePriority(snap Snapshot, hist *PressHistory, current int, bendChanged, allowL bool) (Action, int) {
	if b := snap.FirstPressed(); b != -1 {
		return ActionPlay, b
	}

	if current != -1 && snap.Released[current] {
		if current != BtnL {
			b := hist.Newest(func(b int) bool {
				return b < NumNoteButtons && b != current && snap.Held[b]
			})
			if b != -1 {
				return ActionPlay, b
			}
		}
		if b := snap.LowestHeld(current); b != -1 {
			return ActionPlay, b
		}
		if allowL && snap.Held[BtnL] {
			return ActionPlay, BtnL
		}
		return ActionStop, -1
	}

	if allowL && snap.Pressed[BtnL] {
		return ActionPlay, BtnL
	}

	if bendChanged && current != -1 {
		return ActionPlay, current
	}

	return ActionNone, -1
}
