package boogie

import "time"

// slot is one note window within a beat, offsets relative to beat start.
// start <= t < stop sounds; stop <= t < next start is the gap.
type slot struct {
	start time.Duration
	stop  time.Duration
}

// gateFraction is how much of a slot's nominal span the note occupies.
const gateFraction = 0.5

// beatSlots computes the note windows inside one beat.
//
// Swung-eighths mode: slot 0 starts on the beat, slot 1 is delayed by
// swing * quarter/6 past the nominal off-beat, so full swing lands the
// second eighth on the final triplet. Triplet mode divides the beat into
// three equal slots and ignores swing; the two feels are mutually
// exclusive within a beat.
func beatSlots(quarter time.Duration, swing float64, triplet bool) []slot {
	if triplet {
		third := quarter / 3
		gate := time.Duration(float64(third) * gateFraction)
		return []slot{
			{start: 0, stop: gate},
			{start: third, stop: third + gate},
			{start: 2 * third, stop: 2*third + gate},
		}
	}

	if swing < 0 {
		swing = 0
	}
	if swing > 1 {
		swing = 1
	}

	eighth := quarter / 2
	delay := time.Duration(swing * float64(quarter) / 6)
	gate := time.Duration(float64(eighth) * gateFraction)

	slot1Start := eighth + delay

	stop0 := gate
	if stop0 > slot1Start {
		stop0 = slot1Start
	}
	stop1 := slot1Start + gate
	if stop1 > quarter {
		stop1 = quarter
	}

	return []slot{
		{start: 0, stop: stop0},
		{start: slot1Start, stop: stop1},
	}
}
