package music

// Scale interval tables, semitones from the tonic, -1 terminated. Row
// order is the scale id exposed to commands and config.
var scaleDefinitions = [NumScales][maxScaleLen]int{
	{0, 2, 4, 5, 7, 9, 11, -1}, // Major
	{0, 2, 3, 5, 7, 8, 10, -1}, // Natural Minor
	{0, 2, 3, 5, 7, 8, 11, -1}, // Harmonic Minor
	{0, 2, 3, 5, 7, 9, 11, -1}, // Melodic Minor
	{0, 2, 4, 6, 7, 9, 11, -1}, // Lydian
	{0, 2, 4, 5, 7, 9, 10, -1}, // Mixolydian
	{0, 2, 3, 5, 7, 8, 10, -1}, // Dorian
}

const (
	NumScales   = 7
	maxScaleLen = 10
)

// ScaleNames, indexed by scale id.
var ScaleNames = [NumScales]string{
	"Major", "Minor", "Harm Min", "Mel Min", "Lydian", "Mixolydian", "Dorian",
}

// KeyNames, indexed by key offset 0..11.
var KeyNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Intervals returns the interval list for a scale id. An out-of-range id
// clamps to scale 0 and returns ok=false; the caller logs the violation.
func Intervals(scaleID int) ([]int, bool) {
	ok := true
	if scaleID < 0 || scaleID >= NumScales {
		scaleID = 0
		ok = false
	}
	row := scaleDefinitions[scaleID]
	n := 0
	for n < maxScaleLen && row[n] != -1 {
		n++
	}
	return row[:n], ok
}

// Pitch resolves a 1-based scale degree to a MIDI pitch. Degrees beyond
// the scale length wrap with a +12 octave per full wrap; degrees below 1
// wrap downward (floor division, not truncation).
func Pitch(scaleID, keyOffset, baseNote, degree int) (int, bool) {
	intervals, ok := Intervals(scaleID)
	n := len(intervals)
	idx := floorMod(degree-1, n)
	oct := floorDiv(degree-1, n) * 12
	return baseNote + keyOffset + intervals[idx] + oct, ok
}

// ClampMIDI confines a pitch to the valid MIDI range before emission.
func ClampMIDI(pitch int) uint8 {
	if pitch < 0 {
		return 0
	}
	if pitch > 127 {
		return 127
	}
	return uint8(pitch)
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	m := a % n
	if m != 0 && (m < 0) != (n < 0) {
		m += n
	}
	return m
}
