package midi

import (
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/sdamask/snesSynth2025/boogie"
	"github.com/sdamask/snesSynth2025/debug"
)

// ClockListener converts incoming MIDI realtime messages into timestamped
// clock events. The engine drains the channel once per poll cycle, so the
// buffer only has to cover one cycle's worth of pulses.
type ClockListener struct {
	port   drivers.In
	stop   func()
	events chan boogie.ClockEvent
}

// OpenClock listens for clock on the named input port (same matching
// rules as OpenOut).
func OpenClock(name string) (*ClockListener, error) {
	port, err := findInPort(name)
	if err != nil {
		return nil, err
	}
	cl := &ClockListener{
		port:   port,
		events: make(chan boogie.ClockEvent, 64),
	}
	stop, err := gomidi.ListenTo(port, cl.onMessage)
	if err != nil {
		return nil, fmt.Errorf("open midi clock %q: %w", port.String(), err)
	}
	cl.stop = stop
	debug.Log(debug.CatMIDI, "midi clock in: %s", port.String())
	return cl, nil
}

func findInPort(name string) (drivers.In, error) {
	ports := gomidi.GetInPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no midi input ports available")
	}
	if name == "" {
		return ports[0], nil
	}
	want := name
	for _, p := range ports {
		if containsFold(p.String(), want) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("midi input port %q not found", name)
}

// Events is the channel the engine drains.
func (c *ClockListener) Events() <-chan boogie.ClockEvent { return c.events }

func (c *ClockListener) onMessage(msg gomidi.Message, timestampms int32) {
	var ev boogie.ClockEvent
	switch msg.Type() {
	case gomidi.TimingClockMsg:
		ev = boogie.ClockEvent{Type: boogie.ClockPulse, At: time.Now()}
	case gomidi.StartMsg, gomidi.ContinueMsg:
		ev = boogie.ClockEvent{Type: boogie.ClockStart, At: time.Now()}
	case gomidi.StopMsg:
		ev = boogie.ClockEvent{Type: boogie.ClockStop, At: time.Now()}
	default:
		return
	}
	select {
	case c.events <- ev:
	default:
		// Engine stalled; dropping pulses just re-samples the tempo.
	}
}

// Close stops listening.
func (c *ClockListener) Close() error {
	if c.stop != nil {
		c.stop()
	}
	return nil
}
