package synth

import (
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/music"
)

// PlayStyle advances the instrument one polled cycle: apply this cycle's
// snapshot to the voices it manages. Styles share the priority resolution
// in the controller package and differ only in how a decision is applied.
type PlayStyle interface {
	Advance(st *State, snap controller.Snapshot, hist *controller.PressHistory)
	Silence(st *State)
}

// BasePitch resolves a note button to its pre-bend pitch under the active
// mapping profile. The boogie scheduler uses it too, so profile and key
// changes land mid-sequence. ok=false flags a contract violation that was
// clamped.
func BasePitch(st *State, button int) (int, bool) {
	if st.Profile == music.ProfileThunderstruck {
		if button == controller.BtnL {
			return music.ThunderstruckOpenB, true
		}
		return music.ThunderstruckNote(button)
	}
	if button < 0 || button >= controller.NumNoteButtons {
		return st.BaseNote, false
	}
	degree := controller.MusicalPosition[button] + 1
	return music.Pitch(st.ScaleID, st.KeyOffset, st.BaseNote, degree)
}

// Polyphonic is reserved; the original hardware never implemented it.
// Selecting it plays nothing.
type Polyphonic struct{}

func (Polyphonic) Advance(st *State, snap controller.Snapshot, hist *controller.PressHistory) {}
func (Polyphonic) Silence(st *State)                                                          {}
