package boogie

import (
	"time"

	"github.com/sdamask/snesSynth2025/debug"
)

// PulsesPerBeat is the external clock resolution: 24 pulses per quarter
// note, downbeat at pulse index 0 mod 24.
const PulsesPerBeat = 24

type syncState int

const (
	unsynced syncState = iota
	sampling
	locked
)

// TempoTracker converts incoming clock pulses into a stable time-per-tick
// estimate. It samples one full beat's worth of pulses before locking and
// deliberately never recomputes while locked: continuous re-estimation
// would let clock jitter drift the slot grid.
type TempoTracker struct {
	state        syncState
	tickInterval time.Duration
	quarter      time.Duration

	sampleCount int
	sampleSum   time.Duration
	lastPulse   time.Time

	pulseCount   int
	lastDownbeat time.Time
	haveDownbeat bool

	established bool
}

// NewTempoTracker returns a tracker in the unsynced state. A defaultBPM
// greater than zero seeds the tick interval so the scheduler can free-run
// before any external clock has ever been seen.
func NewTempoTracker(defaultBPM int) *TempoTracker {
	t := &TempoTracker{}
	if defaultBPM > 0 {
		// The beat duration is stored exactly; dividing down to the tick
		// first would truncate (120 BPM is 20833333ns per tick) and leak
		// the rounding error back into the beat.
		t.quarter = time.Minute / time.Duration(defaultBPM)
		t.tickInterval = t.quarter / PulsesPerBeat
		t.established = true
	}
	return t
}

// Pulse records one external clock tick.
func (t *TempoTracker) Pulse(now time.Time) {
	switch t.state {
	case unsynced:
		t.state = sampling
		t.sampleCount = 0
		t.sampleSum = 0
		t.pulseCount = 0
		debug.Log(debug.CatTempo, "clock sampling started")

	case sampling:
		interval := now.Sub(t.lastPulse)
		if interval <= 0 {
			// Duplicate or reordered pulse timestamp; discard the sample
			// rather than poisoning the average.
			break
		}
		t.sampleSum += interval
		t.sampleCount++
		if t.sampleCount >= PulsesPerBeat {
			t.tickInterval = t.sampleSum / time.Duration(t.sampleCount)
			t.quarter = t.tickInterval * PulsesPerBeat
			t.state = locked
			t.established = true
			debug.Log(debug.CatTempo, "clock locked: %v per tick (%d BPM)",
				t.tickInterval, int(time.Minute/(t.tickInterval*PulsesPerBeat)))
		}

	case locked:
		// Locked interval is intentionally frozen until a clock stop.
	}

	if t.state != unsynced {
		// Pulse index 0 mod 24 is the downbeat; the very first pulse
		// after a resync counts as one.
		if t.pulseCount%PulsesPerBeat == 0 {
			t.lastDownbeat = now
			t.haveDownbeat = true
		}
		t.pulseCount++
	}
	t.lastPulse = now
}

// ClockStopped invalidates the lock. Established stays latched so the
// scheduler can tell "never synced" from "was synced before".
func (t *TempoTracker) ClockStopped() {
	if t.state == unsynced {
		return
	}
	t.state = unsynced
	t.haveDownbeat = false
	debug.Log(debug.CatTempo, "clock stopped, tracker unsynced")
}

// Locked reports whether an external clock currently drives timing.
func (t *TempoTracker) Locked() bool { return t.state == locked }

// Established reports whether a usable tempo has ever existed. One-way
// latch across clock stop/start cycles.
func (t *TempoTracker) Established() bool { return t.established }

// TickInterval is the current time per 1/24-beat pulse.
func (t *TempoTracker) TickInterval() time.Duration { return t.tickInterval }

// QuarterNote is the current beat duration.
func (t *TempoTracker) QuarterNote() time.Duration {
	return t.quarter
}

// LastDownbeat returns the timestamp of the most recent downbeat pulse.
func (t *TempoTracker) LastDownbeat() (time.Time, bool) {
	return t.lastDownbeat, t.haveDownbeat
}
