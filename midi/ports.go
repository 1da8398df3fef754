package midi

import (
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// InPortNames lists the available MIDI input ports.
func InPortNames() []string {
	var names []string
	for _, p := range gomidi.GetInPorts() {
		names = append(names, p.String())
	}
	return names
}

// OutPortNames lists the available MIDI output ports.
func OutPortNames() []string {
	var names []string
	for _, p := range gomidi.GetOutPorts() {
		names = append(names, p.String())
	}
	return names
}

// CloseDriver releases the underlying MIDI driver. Call once on shutdown.
func CloseDriver() {
	gomidi.CloseDriver()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
