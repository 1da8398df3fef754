package boogie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sdamask/snesSynth2025/controller"
)

type sinkEvent struct {
	on    bool
	pitch uint8
}

// recordingSink counts outstanding notes to check pairing invariants.
type recordingSink struct {
	events      []sinkEvent
	outstanding int
	maxOut      int
}

func (r *recordingSink) NoteOn(pitch, velocity, channel uint8) {
	r.events = append(r.events, sinkEvent{on: true, pitch: pitch})
	r.outstanding++
	if r.outstanding > r.maxOut {
		r.maxOut = r.outstanding
	}
}

func (r *recordingSink) NoteOff(pitch, channel uint8) {
	r.events = append(r.events, sinkEvent{on: false, pitch: pitch})
	r.outstanding--
}

func heldOf(buttons ...int) [controller.NumButtons]bool {
	var h [controller.NumButtons]bool
	for _, b := range buttons {
		h[b] = true
	}
	return h
}

func fixedPitch(p int) PitchFunc {
	return func(button int) (int, bool) { return p, true }
}

// newFreeRun builds a scheduler free-running at 120 BPM (500ms beat).
func newFreeRun(sink NoteSink) *Scheduler {
	return NewScheduler(NewTempoTracker(120), sink, fixedPitch(60))
}

func TestFreeRunPlaysSwungEighths(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	// Holding a button arms the sequence; phase 0 is inside slot 0.
	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0, snap, tr.History)
	assert.Equal(t, 36, s.Sounding(), "pitch is transposed two octaves down")

	// Slot 0 gate is 125ms; the note must end there.
	snap = tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0.Add(130*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())

	// Between the slots: silence.
	snap = tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0.Add(200*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())

	// Slot 1 opens at 250ms.
	snap = tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0.Add(260*time.Millisecond), snap, tr.History)
	assert.Equal(t, 36, s.Sounding())

	assert.Equal(t, 1, sink.maxOut, "never more than one outstanding note")
}

func TestReleaseForcesNoteOff(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0, snap, tr.History)
	assert.Equal(t, 36, s.Sounding())

	snap = tr.Apply(heldOf())
	s.Advance(t0.Add(10*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())
	assert.Equal(t, 0, sink.outstanding)
}

func TestMuteKillsItsSlotOnly(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0, snap, tr.History)
	assert.Equal(t, 36, s.Sounding())

	// L mutes slot 0: the sounding slot-0 note dies immediately.
	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL))
	s.Advance(t0.Add(20*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())

	// Still inside slot 0's window: muted, no new note.
	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL))
	s.Advance(t0.Add(60*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())

	// Slot 1 is unaffected by the slot-0 mute.
	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL))
	s.Advance(t0.Add(260*time.Millisecond), snap, tr.History)
	assert.Equal(t, 36, s.Sounding())
}

func TestTripletModeSwitchForcesOff(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(t0, snap, tr.History)
	assert.Equal(t, 36, s.Sounding())

	// Both modifiers held: triplet mode. The swung-mode note is hard
	// stopped before any triplet slot can start one.
	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL, controller.BtnR))
	s.Advance(t0.Add(5*time.Millisecond), snap, tr.History)
	assert.Equal(t, 36, s.Sounding(), "triplet slot 0 covers phase 5ms")
	assert.Equal(t, 1, sink.maxOut)

	// Second triplet slot opens at ~166.7ms.
	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL, controller.BtnR))
	s.Advance(t0.Add(90*time.Millisecond), snap, tr.History)
	assert.Equal(t, -1, s.Sounding(), "triplet gate (83ms) has closed")

	snap = tr.Apply(heldOf(controller.BtnDown, controller.BtnL, controller.BtnR))
	s.Advance(t0.Add(170*time.Millisecond), snap, tr.History)
	assert.Equal(t, 36, s.Sounding())
}

func TestExternalClockDrivesBeatReference(t *testing.T) {
	sink := &recordingSink{}
	tempo := NewTempoTracker(0)
	s := NewScheduler(tempo, sink, fixedPitch(60))
	tr := controller.NewTracker()

	// Lock the tracker at 20ms per tick (480ms beat).
	at := time.Unix(100, 0)
	for i := 0; i <= PulsesPerBeat; i++ {
		tempo.Pulse(at)
		at = at.Add(20 * time.Millisecond)
	}
	assert.True(t, tempo.Locked())

	downbeat, _ := tempo.LastDownbeat()

	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(downbeat.Add(10*time.Millisecond), snap, tr.History)
	assert.Equal(t, 36, s.Sounding(), "slot 0 of the external beat")

	// Clock loss mid-note: the old note is unconditionally stopped before
	// the free-running regime re-arms (and may start a fresh slot-0 note
	// in the same invocation).
	tempo.ClockStopped()
	snap = tr.Apply(heldOf(controller.BtnDown))
	s.Advance(downbeat.Add(20*time.Millisecond), snap, tr.History)
	assert.Equal(t, sinkEvent{on: false, pitch: 36}, sink.events[1])
	assert.LessOrEqual(t, sink.outstanding, 1)
	assert.Equal(t, 1, sink.maxOut, "off always precedes the next on")
}

func TestNeverSyncedNoDefaultStaysSilent(t *testing.T) {
	sink := &recordingSink{}
	s := NewScheduler(NewTempoTracker(0), sink, fixedPitch(60))
	tr := controller.NewTracker()

	snap := tr.Apply(heldOf(controller.BtnDown))
	s.Advance(time.Unix(100, 0), snap, tr.History)
	assert.Equal(t, -1, s.Sounding())
	assert.Empty(t, sink.events)
}

func TestTriggerFallbackOnRelease(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	snap := tr.Apply(heldOf(controller.BtnRight))
	s.Advance(t0, snap, tr.History)

	snap = tr.Apply(heldOf(controller.BtnRight, controller.BtnStart))
	s.Advance(t0.Add(time.Millisecond), snap, tr.History)

	// Releasing the trigger falls back to the other held button; the
	// sequence stays armed.
	snap = tr.Apply(heldOf(controller.BtnStart))
	s.Advance(t0.Add(2*time.Millisecond), snap, tr.History)

	snap = tr.Apply(heldOf(controller.BtnStart))
	s.Advance(t0.Add(600*time.Millisecond), snap, tr.History)
	assert.NotEqual(t, 0, len(sink.events))
	assert.LessOrEqual(t, sink.maxOut, 1)
}

func TestNoOverlapAcrossManyCycles(t *testing.T) {
	sink := &recordingSink{}
	s := newFreeRun(sink)
	tr := controller.NewTracker()
	t0 := time.Unix(100, 0)

	// Two seconds of 2ms polls with the trigger held, mutes toggling.
	for i := 0; i < 1000; i++ {
		held := heldOf(controller.BtnDown)
		if i%300 > 200 {
			held[controller.BtnL] = true
		}
		snap := tr.Apply(held)
		s.Advance(t0.Add(time.Duration(i)*2*time.Millisecond), snap, tr.History)
		assert.LessOrEqual(t, sink.outstanding, 1)
	}
	s.Silence()
	assert.Equal(t, 0, sink.outstanding, "every note-on has a matching note-off")
}
