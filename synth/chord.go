package synth

import (
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
	"github.com/sdamask/snesSynth2025/music"
)

// ChordStyle fans each trigger out to up to four voices, one per chord
// tone in resolver output order. On a retrigger the outgoing chord is
// stopped before the incoming one starts, except under portamento, where
// occupied voices are kept alive and glided to their new targets.
type ChordStyle struct {
	Voices VoiceEngine
	Sink   NoteSink
}

func (c *ChordStyle) Advance(st *State, snap controller.Snapshot, hist *controller.PressHistory) {
	lHeld := snap.Held[controller.BtnL]
	rHeld := snap.Held[controller.BtnR]
	bend := music.Bend(music.ProfileScale, lHeld, rHeld)
	bendChanged := st.CurrentButton != -1 && bend != st.PrevBend

	action, button := controller.ResolvePriority(snap, hist, st.CurrentButton, bendChanged, false)

	// Guard against a desynced current button (e.g. state restored while
	// buttons were already up): nothing held means nothing sounding.
	if action == controller.ActionNone && st.CurrentButton != -1 && !snap.AnyNoteHeld() {
		action = controller.ActionStop
	}

	switch action {
	case controller.ActionStop:
		c.Silence(st)

	case controller.ActionPlay:
		c.play(st, button, bend)
	}

	st.Bend = bend
	st.PrevBend = bend
}

func (c *ChordStyle) play(st *State, button, bend int) {
	// Prepare outgoing voices. MIDI note-offs are always sent; audio
	// voices survive only when portamento will glide them.
	if st.CurrentButton != -1 {
		for v, p := range st.ChordPitches {
			if p == -1 {
				continue
			}
			c.Sink.NoteOff(uint8(p), st.WireChannel())
			if !st.Portamento {
				c.Voices.Stop(v)
				st.ChordPitches[v] = -1
			}
		}
	}

	st.CurrentButton = button
	degree := controller.MusicalPosition[button] + 1
	pitches, ok := music.Chord(st.ScaleID, st.ChordProfile, st.KeyOffset, st.BaseNote, degree)
	if !ok {
		debug.Warn(debug.CatPlaystyle, "chord: resolver clamped (scale %d profile %d degree %d)",
			st.ScaleID, st.ChordProfile, degree)
	}

	for v, p := range pitches {
		pitch := music.ClampMIDI(p + bend)
		if st.Portamento && st.ChordPitches[v] != -1 {
			c.Voices.GlideTo(v, pitch)
		} else {
			c.Voices.Start(v, pitch)
		}
		c.Sink.NoteOn(pitch, st.Velocity, st.WireChannel())
		st.ChordPitches[v] = int(pitch)
	}
	debug.Log(debug.CatPlaystyle, "chord: button %s degree %d -> %d voices",
		controller.Names[button], degree, len(pitches))

	// Tones beyond the returned count free their voices explicitly. Their
	// note-offs already went out with the rest of the outgoing chord; a
	// slot can only still be occupied here on the portamento path.
	for v := len(pitches); v < music.MaxChordVoices; v++ {
		if st.ChordPitches[v] == -1 {
			continue
		}
		c.Voices.Stop(v)
		st.ChordPitches[v] = -1
	}
}

// Silence stops every sounding chord voice and sends All Notes Off when
// anything was actually playing.
func (c *ChordStyle) Silence(st *State) {
	anyPlaying := false
	for v, p := range st.ChordPitches {
		if p == -1 {
			continue
		}
		anyPlaying = true
		c.Voices.Stop(v)
		c.Sink.NoteOff(uint8(p), st.WireChannel())
		st.ChordPitches[v] = -1
	}
	if anyPlaying {
		c.Sink.AllNotesOff(st.WireChannel())
		debug.Log(debug.CatPlaystyle, "chord: all voices stopped")
	}
	st.CurrentButton = -1
}
