package boogie

import (
	"time"

	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
	"github.com/sdamask/snesSynth2025/music"
)

// NoteSink receives the scheduler's quantized note events.
type NoteSink interface {
	NoteOn(pitch, velocity, channel uint8)
	NoteOff(pitch, channel uint8)
}

// PitchFunc resolves the base pitch for a trigger button, before the
// scheduler's transpose. ok=false marks a caller contract violation that
// has been clamped.
type PitchFunc func(button int) (int, bool)

// DefaultTranspose drops boogie notes two octaves below the pad's range.
const DefaultTranspose = -24

// Scheduler is the boogie engine. Against a beat reference (the external
// clock's last downbeat, or a free-running mark set when the sequence was
// armed) it emits exactly-once note on/off pairs inside swung or triplet
// sub-beat slots. While boogie runs, L and R stop being pitch bends and
// mute slot 0 / slot 1 respectively; both held together selects the
// triplet feel.
type Scheduler struct {
	tempo *TempoTracker
	sink  NoteSink
	pitch PitchFunc

	Swing     float64
	Transpose int
	Velocity  uint8
	Channel   uint8

	trigger  int  // held button driving the sequence, -1 when idle
	active   bool // a sequence is armed
	external bool // beat reference comes from the external clock
	armedAt  time.Time

	sounding  int // pitch, -1 when silent
	slotIndex int
	stopAt    time.Time

	triplet bool
}

func NewScheduler(tempo *TempoTracker, sink NoteSink, pitch PitchFunc) *Scheduler {
	return &Scheduler{
		tempo:     tempo,
		sink:      sink,
		pitch:     pitch,
		Transpose: DefaultTranspose,
		Velocity:  100,
		trigger:   -1,
		sounding:  -1,
		slotIndex: -1,
	}
}

// Sounding reports the pitch currently on, or -1.
func (s *Scheduler) Sounding() int { return s.sounding }

// Silence force-stops any sounding note and disarms the sequence. Called
// on mode switches so a note can never outlive the boogie engine.
func (s *Scheduler) Silence() {
	s.forceOff()
	s.active = false
	s.trigger = -1
	s.armedAt = time.Time{}
}

// Advance runs one polled invocation. Evaluation order is load-bearing:
// feel/regime transitions first, then scheduled note-off, then trigger
// stop/start, then scheduled note-on. Off-before-on guarantees no
// overlapping notes when a transition lands on a slot boundary.
func (s *Scheduler) Advance(now time.Time, snap controller.Snapshot, hist *controller.PressHistory) {
	lHeld := snap.Held[controller.BtnL]
	rHeld := snap.Held[controller.BtnR]

	triplet := lHeld && rHeld
	if triplet != s.triplet {
		// Hard stop across the feel change; no crossfade.
		s.forceOff()
		s.triplet = triplet
	}

	external := s.tempo.Locked()
	if external != s.external {
		s.forceOff()
		s.external = external
		if !external && s.active {
			s.armedAt = now
		}
		debug.Log(debug.CatBoogie, "beat reference now %s", referenceName(external))
	}

	// Scheduled note-off comes before anything that could start a note.
	if s.sounding != -1 && !now.Before(s.stopAt) {
		s.forceOff()
	}

	// A freshly held mute kills its slot's note immediately; the other
	// slot's timing is untouched.
	if s.sounding != -1 && !s.triplet {
		if (s.slotIndex == 0 && lHeld) || (s.slotIndex == 1 && rHeld) {
			s.forceOff()
		}
	}

	// Trigger stop/start.
	s.updateTrigger(snap, hist)
	if s.trigger == -1 {
		if s.active || s.sounding != -1 {
			s.forceOff()
			s.active = false
			s.armedAt = time.Time{}
		}
		return
	}
	if !s.active {
		s.active = true
		if !s.external {
			s.armedAt = now
		}
		debug.Log(debug.CatBoogie, "sequence armed on button %s", controller.Names[s.trigger])
	}

	// Scheduled note-on, only with silence in hand.
	if s.sounding != -1 {
		return
	}

	var ref time.Time
	if s.external {
		downbeat, ok := s.tempo.LastDownbeat()
		if !ok {
			return
		}
		ref = downbeat
	} else {
		// Free-run needs a tempo from somewhere: a past lock or the
		// configured default. Never synced and no default means idle.
		if !s.tempo.Established() {
			return
		}
		ref = s.armedAt
	}

	quarter := s.tempo.QuarterNote()
	if quarter <= 0 {
		return
	}
	elapsed := now.Sub(ref)
	if elapsed < 0 {
		return
	}
	phase := elapsed % quarter
	beatStart := now.Add(-phase)

	for i, sl := range beatSlots(quarter, s.Swing, s.triplet) {
		if phase < sl.start || phase >= sl.stop {
			continue
		}
		if !s.triplet && ((i == 0 && lHeld) || (i == 1 && rHeld)) {
			return // slot muted; skip the note, keep the grid
		}
		base, ok := s.pitch(s.trigger)
		if !ok {
			debug.Warn(debug.CatBoogie, "pitch lookup clamped for button %d", s.trigger)
		}
		pitch := music.ClampMIDI(base + s.Transpose)
		s.sink.NoteOn(pitch, s.Velocity, s.Channel)
		s.sounding = int(pitch)
		s.slotIndex = i
		s.stopAt = beatStart.Add(sl.stop)
		return
	}
}

// updateTrigger applies the shared button-priority rule to the sequence's
// trigger button, without the arbiter's start/stop side effects.
func (s *Scheduler) updateTrigger(snap controller.Snapshot, hist *controller.PressHistory) {
	action, b := controller.ResolvePriority(snap, hist, s.trigger, false, false)
	switch action {
	case controller.ActionPlay:
		s.trigger = b
	case controller.ActionStop:
		s.trigger = -1
	case controller.ActionNone:
		if s.trigger != -1 && !snap.Held[s.trigger] {
			// Missed release edge (e.g. buttons held across a mode
			// switch); fall back deterministically.
			s.trigger = snap.LowestHeld(-1)
		} else if s.trigger == -1 {
			s.trigger = snap.LowestHeld(-1)
		}
	}
}

func (s *Scheduler) forceOff() {
	if s.sounding == -1 {
		return
	}
	s.sink.NoteOff(uint8(s.sounding), s.Channel)
	s.sounding = -1
	s.slotIndex = -1
}

func referenceName(external bool) string {
	if external {
		return "external clock"
	}
	return "internal free-run"
}
