package synth

import "github.com/sdamask/snesSynth2025/debug"

// VoiceEngine is the sound backend: one independently controllable voice
// per index. Implementations glide on GlideTo when they can; a backend
// without portamento may treat it as a retune.
type VoiceEngine interface {
	Start(voice int, pitch uint8)
	Stop(voice int)
	GlideTo(voice int, pitch uint8)
}

// NoteSink receives outbound note events, already clamped to MIDI range.
type NoteSink interface {
	NoteOn(pitch, velocity, channel uint8)
	NoteOff(pitch, channel uint8)
	AllNotesOff(channel uint8)
}

// LoggingVoices is the stand-in VoiceEngine used when no synth hardware
// is attached; it just traces voice activity to the debug log.
type LoggingVoices struct{}

func (LoggingVoices) Start(voice int, pitch uint8) {
	debug.Log(debug.CatState, "voice %d start pitch %d", voice, pitch)
}

func (LoggingVoices) Stop(voice int) {
	debug.Log(debug.CatState, "voice %d stop", voice)
}

func (LoggingVoices) GlideTo(voice int, pitch uint8) {
	debug.Log(debug.CatState, "voice %d glide to pitch %d", voice, pitch)
}
