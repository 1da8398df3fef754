package synth

import (
	"fmt"

	"github.com/sdamask/snesSynth2025/music"
)

// StyleID selects the playstyle dispatched each cycle.
type StyleID int

const (
	StyleMonophonic StyleID = iota
	StylePolyphonic
	StyleChord
)

// StyleNames, indexed by StyleID.
var StyleNames = [3]string{"Mono", "Poly", "Chord"}

// State is the instrument's mutable state. It is owned exclusively by the
// engine goroutine; everything here mutates once per polled cycle.
type State struct {
	// Musical configuration
	ScaleID      int
	KeyOffset    int
	BaseNote     int
	ChordProfile int
	Profile      int // mapping profile (music.ProfileScale / ProfileThunderstruck)
	Style        StyleID
	Portamento   bool
	Boogie       bool

	// Pitch bend, current and previous cycle's value
	Bend     int
	PrevBend int

	// Monophonic voice: which button owns the note and what sounds.
	// -1 means silence.
	CurrentButton int
	CurrentPitch  int

	// Chord voices, -1 per empty slot.
	ChordPitches [music.MaxChordVoices]int

	// Emission defaults
	Velocity uint8
	Channel  uint8 // 1..16
}

// NewState returns silent defaults: middle C major scale, mono style.
func NewState() *State {
	s := &State{
		BaseNote:      60,
		CurrentButton: -1,
		CurrentPitch:  -1,
		Velocity:      100,
		Channel:       1,
	}
	for i := range s.ChordPitches {
		s.ChordPitches[i] = -1
	}
	return s
}

// WireChannel is the 0-based MIDI channel for emission.
func (s *State) WireChannel() uint8 {
	if s.Channel < 1 || s.Channel > 16 {
		return 0
	}
	return s.Channel - 1
}

// Status renders the one-line state summary shown in the TUI header.
func (s *State) Status() string {
	mode := StyleNames[s.Style]
	if s.Boogie {
		mode += "(Boogie)"
	}
	porta := "Off"
	if s.Portamento {
		porta = "On"
	}
	key := "?"
	if s.KeyOffset >= 0 && s.KeyOffset < 12 {
		key = music.KeyNames[s.KeyOffset]
	}
	scale := "?"
	if s.ScaleID >= 0 && s.ScaleID < music.NumScales {
		scale = music.ScaleNames[s.ScaleID]
	}
	return fmt.Sprintf("MODE:%s | PROFILE:%s | KEY:%s | SCALE:%s | PORTA:%s",
		mode, music.ProfileNames[s.Profile%2], key, scale, porta)
}
