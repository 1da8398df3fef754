package music

// MaxChordVoices is the number of voices a chord can occupy.
const MaxChordVoices = 4

// NumProfiles is the number of chord profiles.
const NumProfiles = 2

// Chord definitions: [profile][scale degree 1..10] -> up to 4 scale-degree
// offsets relative to the chord's root degree. 0 terminates shorter
// chords. Negative offsets reach below the root (e.g. -2 puts the fifth
// below the bass for a slash chord).
var chordDefinitions = [NumProfiles][10][MaxChordVoices]int{
	// Profile 0: stacked 1-3-5-8, diatonic within the scale.
	{
		{1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8},
		{1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8},
	},
	// Profile 1: as profile 0 except degree 2 voiced as a slash chord.
	{
		{1, 3, 5, 8}, {-2, 1, 3, 5}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8},
		{1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8}, {1, 3, 5, 8},
	},
}

// Chord resolves a 1-based scale degree to the MIDI pitches of its chord
// under the given profile, in voice order. Out-of-range profile or degree
// clamps to profile 0 / degree 1 and returns ok=false; the caller logs.
func Chord(scaleID, profile, keyOffset, baseNote, degree int) ([]int, bool) {
	intervals, ok := Intervals(scaleID)
	n := len(intervals)

	if profile < 0 || profile >= NumProfiles {
		profile = 0
		ok = false
	}
	if degree < 1 || degree > 10 {
		degree = 1
		ok = false
	}

	def := chordDefinitions[profile][degree-1]
	pitches := make([]int, 0, MaxChordVoices)
	for _, offset := range def {
		if offset == 0 {
			break
		}
		// Offset 1 is the chord root itself; resolve the combined degree
		// against the scale with downward wrap for negative reaches.
		adjusted := (degree - 1) + (offset - 1)
		idx := floorMod(adjusted, n)
		oct := floorDiv(adjusted, n) * 12
		pitches = append(pitches, baseNote+keyOffset+intervals[idx]+oct)
	}
	return pitches, ok
}
