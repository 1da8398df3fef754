package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sdamask/snesSynth2025/boogie"
	"github.com/sdamask/snesSynth2025/controller"
)

// scriptedSource replays a fixed sequence of held states, then idles.
type scriptedSource struct {
	frames [][controller.NumButtons]bool
	i      int
}

func (s *scriptedSource) Read() [controller.NumButtons]bool {
	if s.i >= len(s.frames) {
		return [controller.NumButtons]bool{}
	}
	f := s.frames[s.i]
	s.i++
	return f
}

func (s *scriptedSource) Close() error { return nil }

func newEngineRig(frames ...[controller.NumButtons]bool) (*Engine, *fakeSink) {
	sink := &fakeSink{}
	st := NewState()
	tempo := boogie.NewTempoTracker(120)
	sched := boogie.NewScheduler(tempo, sink, func(button int) (int, bool) {
		return BasePitch(st, button)
	})
	eng := NewEngine(st, &scriptedSource{frames: frames}, &fakeVoices{}, sink, tempo, sched, nil)
	return eng, sink
}

func TestEngineTickPlaysAndReleases(t *testing.T) {
	eng, sink := newEngineRig(
		heldOf(controller.BtnDown),
		heldOf(),
	)
	now := time.Now()
	eng.Tick(now)
	eng.Tick(now.Add(2 * time.Millisecond))

	assert.Equal(t, []noteEvent{{true, 60}, {false, 60}}, sink.events)
}

func TestEngineCommandCycleSuppressesNotes(t *testing.T) {
	// L+R+Y cycles the scale; the Y press must not also play a note.
	eng, sink := newEngineRig(
		heldOf(controller.BtnL, controller.BtnR),
		heldOf(controller.BtnL, controller.BtnR, controller.BtnY),
	)
	now := time.Now()
	eng.Tick(now)
	eng.Tick(now.Add(2 * time.Millisecond))

	assert.Empty(t, sink.events)
	assert.Equal(t, 1, eng.State().ScaleID)
}

func TestEngineModeChangeSilencesSoundingNote(t *testing.T) {
	eng, sink := newEngineRig(
		heldOf(controller.BtnDown),
		heldOf(controller.BtnDown, controller.BtnL, controller.BtnR),
		heldOf(controller.BtnDown, controller.BtnL, controller.BtnR, controller.BtnUp),
	)
	now := time.Now()
	for i := 0; i < 3; i++ {
		eng.Tick(now.Add(time.Duration(i) * 2 * time.Millisecond))
	}

	assert.Equal(t, StyleChord, eng.State().Style)
	assert.Equal(t, 0, sink.outstanding, "switching playstyles leaves nothing sounding")
}

func TestEngineBoogieDispatch(t *testing.T) {
	frames := [][controller.NumButtons]bool{
		heldOf(controller.BtnL, controller.BtnR),
		heldOf(controller.BtnL, controller.BtnR, controller.BtnLeft), // boogie on
		heldOf(),
		heldOf(controller.BtnDown),
	}
	eng, sink := newEngineRig(frames...)
	now := time.Now()
	for i := range frames {
		eng.Tick(now.Add(time.Duration(i) * 2 * time.Millisecond))
	}

	// The scheduler owns emission now: slot 0 fires immediately on arming,
	// transposed down two octaves.
	assert.True(t, eng.State().Boogie)
	assert.Equal(t, []noteEvent{{true, 36}}, sink.events)
}

func TestEngineDrainClockFeedsTempo(t *testing.T) {
	clock := make(chan boogie.ClockEvent, 32)
	sink := &fakeSink{}
	st := NewState()
	tempo := boogie.NewTempoTracker(0)
	sched := boogie.NewScheduler(tempo, sink, func(button int) (int, bool) {
		return BasePitch(st, button)
	})
	eng := NewEngine(st, &scriptedSource{}, &fakeVoices{}, sink, tempo, sched, clock)

	start := time.Now()
	tick := 500 * time.Millisecond / boogie.PulsesPerBeat
	for i := 0; i <= boogie.PulsesPerBeat; i++ {
		clock <- boogie.ClockEvent{Type: boogie.ClockPulse, At: start.Add(time.Duration(i) * tick)}
	}
	eng.Tick(start.Add(600 * time.Millisecond))

	assert.True(t, tempo.Locked())
	assert.InDelta(t, float64(500*time.Millisecond), float64(tempo.QuarterNote()), float64(time.Millisecond))
}
