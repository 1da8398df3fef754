package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/sdamask/snesSynth2025/debug"
)

// Out sends the instrument's note stream to one MIDI output port. It
// satisfies both the playstyles' and the boogie scheduler's sink
// interfaces.
type Out struct {
	port drivers.Out
	send func(gomidi.Message) error
}

// OpenOut opens the named output port. An empty name picks the first
// available port; otherwise the match is a case-insensitive substring,
// same as how ports are usually half-remembered.
func OpenOut(name string) (*Out, error) {
	port, err := findOutPort(name)
	if err != nil {
		return nil, err
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open midi out %q: %w", port.String(), err)
	}
	debug.Log(debug.CatMIDI, "midi out: %s", port.String())
	return &Out{port: port, send: send}, nil
}

func findOutPort(name string) (drivers.Out, error) {
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no midi output ports available")
	}
	if name == "" {
		return ports[0], nil
	}
	for _, p := range ports {
		if containsFold(p.String(), name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("midi output port %q not found", name)
}

// NoteOn emits a note-on. channel is 0-based.
func (o *Out) NoteOn(pitch, velocity, channel uint8) {
	if err := o.send(gomidi.NoteOn(channel, pitch, velocity)); err != nil {
		debug.Warn(debug.CatMIDI, "note on %d failed: %v", pitch, err)
	}
}

// NoteOff emits a note-off.
func (o *Out) NoteOff(pitch, channel uint8) {
	if err := o.send(gomidi.NoteOff(channel, pitch)); err != nil {
		debug.Warn(debug.CatMIDI, "note off %d failed: %v", pitch, err)
	}
}

// AllNotesOff emits CC 123, the channel-wide panic for anything a
// per-note off might have missed.
func (o *Out) AllNotesOff(channel uint8) {
	if err := o.send(gomidi.ControlChange(channel, 123, 0)); err != nil {
		debug.Warn(debug.CatMIDI, "all notes off failed: %v", err)
	}
}

// Close silences the port and releases it.
func (o *Out) Close() error {
	for ch := uint8(0); ch < 16; ch++ {
		o.send(gomidi.ControlChange(ch, 123, 0))
	}
	o.port.Close()
	return nil
}
