package synth

import (
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
	"github.com/sdamask/snesSynth2025/music"
)

// Monophonic plays exactly one note at a time on voice 0. A new press
// always steals the note; releasing the sounding button falls back to the
// press history, then the lowest held button; a bend change retriggers in
// place. A note-on for a different pitch is never emitted without the
// previous note's note-off.
type Monophonic struct {
	Voices VoiceEngine
	Sink   NoteSink
}

func (m *Monophonic) Advance(st *State, snap controller.Snapshot, hist *controller.PressHistory) {
	lHeld := snap.Held[controller.BtnL]
	rHeld := snap.Held[controller.BtnR]
	bend := music.Bend(st.Profile, lHeld, rHeld)
	bendChanged := st.CurrentButton != -1 && bend != st.PrevBend

	allowL := st.Profile == music.ProfileThunderstruck
	action, button := controller.ResolvePriority(snap, hist, st.CurrentButton, bendChanged, allowL)

	switch action {
	case controller.ActionStop:
		m.Silence(st)

	case controller.ActionPlay:
		base, ok := BasePitch(st, button)
		if !ok {
			debug.Warn(debug.CatPlaystyle, "mono: pitch lookup clamped for button %d", button)
		}
		pitch := int(music.ClampMIDI(base + bend))

		// Same button, same pitch: already sounding, nothing to emit.
		trigger := pitch != st.CurrentPitch || button != st.CurrentButton
		if trigger {
			if st.CurrentPitch != -1 {
				m.Sink.NoteOff(uint8(st.CurrentPitch), st.WireChannel())
			}
			m.Sink.NoteOn(uint8(pitch), st.Velocity, st.WireChannel())
			if st.Portamento && st.CurrentPitch != -1 {
				m.Voices.GlideTo(0, uint8(pitch))
			} else {
				m.Voices.Start(0, uint8(pitch))
			}
			debug.Log(debug.CatPlaystyle, "mono: button %s -> pitch %d (bend %+d)",
				controller.Names[button], pitch, bend)
			st.CurrentPitch = pitch
		}
		st.CurrentButton = button
	}

	st.Bend = bend
	st.PrevBend = bend
}

// Silence stops the sounding note, if any.
func (m *Monophonic) Silence(st *State) {
	if st.CurrentPitch != -1 {
		m.Sink.NoteOff(uint8(st.CurrentPitch), st.WireChannel())
		m.Voices.Stop(0)
		debug.Log(debug.CatPlaystyle, "mono: stop")
	}
	st.CurrentPitch = -1
	st.CurrentButton = -1
}
