package synth

import (
	"context"
	"time"

	"github.com/sdamask/snesSynth2025/boogie"
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
)

// DefaultPollInterval is the control loop cadence.
const DefaultPollInterval = 2 * time.Millisecond

// uiFPS is how often the TUI is nudged while running.
const uiFPS = 30

// Engine is the single-threaded control loop: read one snapshot, run
// command combos, then either the active playstyle or the boogie
// scheduler, and emit events. All instrument state is owned by this loop;
// clock pulses arrive over a channel and are drained as polled input, so
// nothing here needs locking.
type Engine struct {
	state   *State
	source  controller.Source
	tracker *controller.Tracker

	mono  *Monophonic
	chord *ChordStyle
	poly  Polyphonic

	tempo *boogie.TempoTracker
	sched *boogie.Scheduler
	clock <-chan boogie.ClockEvent

	Poll time.Duration

	// Updates nudges the TUI; non-blocking sends, capacity 1.
	Updates chan struct{}
}

// NewEngine wires the control loop. clock may be nil when no external
// clock input is configured.
func NewEngine(
	st *State,
	source controller.Source,
	voices VoiceEngine,
	sink NoteSink,
	tempo *boogie.TempoTracker,
	sched *boogie.Scheduler,
	clock <-chan boogie.ClockEvent,
) *Engine {
	return &Engine{
		state:   st,
		source:  source,
		tracker: controller.NewTracker(),
		mono:    &Monophonic{Voices: voices, Sink: sink},
		chord:   &ChordStyle{Voices: voices, Sink: sink},
		tempo:   tempo,
		sched:   sched,
		clock:   clock,
		Poll:    DefaultPollInterval,
		Updates: make(chan struct{}, 1),
	}
}

// State exposes the instrument state for the TUI's status line. Reads are
// racy in theory but display-only, matching how the loop is used.
func (e *Engine) State() *State { return e.state }

// Run drives the poll loop until the context is cancelled. Everything is
// force-silenced on the way out so no note survives shutdown.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.Poll)
	uiTicker := time.NewTicker(time.Second / uiFPS)
	defer ticker.Stop()
	defer uiTicker.Stop()

	debug.Log(debug.CatGeneral, "engine running, poll %v", e.Poll)
	for {
		select {
		case <-ctx.Done():
			e.silenceAll()
			debug.Log(debug.CatGeneral, "engine stopped")
			return
		case <-ticker.C:
			e.Tick(time.Now())
		case <-uiTicker.C:
			e.notify()
		}
	}
}

// Tick runs one polled cycle.
func (e *Engine) Tick(now time.Time) {
	e.drainClock()

	snap := e.tracker.Apply(e.source.Read())

	if res := CheckCommands(e.state, snap); res.Handled {
		if res.ModeChanged {
			// Entering or leaving a mode always starts from silence.
			e.silenceAll()
		}
		e.notify()
		return
	}

	if e.state.Boogie {
		e.sched.Advance(now, snap, e.tracker.History)
		return
	}
	e.style().Advance(e.state, snap, e.tracker.History)
}

func (e *Engine) style() PlayStyle {
	switch e.state.Style {
	case StyleChord:
		return e.chord
	case StylePolyphonic:
		return e.poly
	default:
		return e.mono
	}
}

func (e *Engine) drainClock() {
	for {
		select {
		case ev := <-e.clock:
			e.tempo.Apply(ev)
		default:
			return
		}
	}
}

func (e *Engine) silenceAll() {
	e.mono.Silence(e.state)
	e.chord.Silence(e.state)
	e.sched.Silence()
}

func (e *Engine) notify() {
	select {
	case e.Updates <- struct{}{}:
	default:
	}
}
