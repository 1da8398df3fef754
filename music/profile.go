package music

// Mapping profiles decide how buttons become pitches and how the L/R
// modifiers bend them.
const (
	ProfileScale         = 0 // buttons walk the active scale
	ProfileThunderstruck = 1 // fixed riff mapping, L doubles as a trigger
)

// ProfileNames, indexed by mapping profile.
var ProfileNames = [2]string{"Scale", "Thunder"}

// Fixed note mapping for the Thunderstruck profile, indexed by button.
// The four d-pad directions all play the open B string.
var thunderstruckNotes = [10]int{
	79, // B  -> G
	78, // Y  -> F#
	75, // Sel -> D#
	76, // St -> E
	71, // Up -> B (open)
	71, // Down -> B (open)
	71, // Left -> B (open)
	71, // Right -> B (open)
	81, // A  -> A
	80, // X  -> G#
}

// ThunderstruckOpenB is the note the L trigger plays in that profile.
const ThunderstruckOpenB = 71

// ThunderstruckNote returns the fixed pitch for a note button.
func ThunderstruckNote(button int) (int, bool) {
	if button < 0 || button >= len(thunderstruckNotes) {
		return ThunderstruckOpenB, false
	}
	return thunderstruckNotes[button], true
}

// Bend maps the modifier pair to a discrete octave shift. The standard
// profile bends down with L and up with R, cancelling when both are held;
// Thunderstruck reserves L as a trigger, so only R bends.
func Bend(profile int, lHeld, rHeld bool) int {
	if profile == ProfileThunderstruck {
		if rHeld {
			return 12
		}
		return 0
	}
	switch {
	case lHeld && rHeld:
		return 0
	case lHeld:
		return -12
	case rHeld:
		return 12
	default:
		return 0
	}
}
