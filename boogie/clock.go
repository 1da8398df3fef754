package boogie

import "time"

// ClockEventType classifies transport/clock input.
type ClockEventType int

const (
	ClockPulse ClockEventType = iota // one 1/24-beat tick
	ClockStart                       // transport start: next pulse is the downbeat
	ClockStop                        // transport stop: external clock lost
)

// ClockEvent is a timestamped clock message, polled by the engine at the
// same cadence as button state rather than handled as an interrupt.
type ClockEvent struct {
	Type ClockEventType
	At   time.Time
}

// Apply feeds one clock event into the tracker. Start resets the tracker
// so sampling re-aligns on the announced downbeat.
func (t *TempoTracker) Apply(ev ClockEvent) {
	switch ev.Type {
	case ClockPulse:
		t.Pulse(ev.At)
	case ClockStart:
		t.ClockStopped()
	case ClockStop:
		t.ClockStopped()
	}
}
