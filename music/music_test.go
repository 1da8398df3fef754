package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchMajorScale(t *testing.T) {
	// Major, key C, base 60: degree 1 is the tonic, degree 8 wraps one
	// octave up.
	p, ok := Pitch(0, 0, 60, 1)
	assert.True(t, ok)
	assert.Equal(t, 60, p)

	p, _ = Pitch(0, 0, 60, 8)
	assert.Equal(t, 72, p)

	p, _ = Pitch(0, 0, 60, 3)
	assert.Equal(t, 64, p)

	p, _ = Pitch(0, 0, 60, 10)
	assert.Equal(t, 76, p) // degree 3 an octave up
}

func TestPitchWrapsDownward(t *testing.T) {
	// Degree 0 sits one step below the tonic: leading tone, one octave
	// down. Floor division, not truncation toward zero.
	p, _ := Pitch(0, 0, 60, 0)
	assert.Equal(t, 59, p)

	p, _ = Pitch(0, 0, 60, -6)
	assert.Equal(t, 48, p) // a full octave below
}

func TestPitchKeyOffset(t *testing.T) {
	p, _ := Pitch(0, 2, 60, 1)
	assert.Equal(t, 62, p)
}

func TestPitchClampsInvalidScale(t *testing.T) {
	p, ok := Pitch(99, 0, 60, 1)
	assert.False(t, ok)
	assert.Equal(t, 60, p) // clamped to scale 0
}

func TestChordBasicProfile(t *testing.T) {
	// Profile 0, degree 1, major scale, base 60 -> C E G C.
	pitches, ok := Chord(0, 0, 0, 60, 1)
	assert.True(t, ok)
	assert.Equal(t, []int{60, 64, 67, 72}, pitches)
}

func TestChordRelativeDegrees(t *testing.T) {
	// Degree 2 in profile 0 stacks from D: D F A D.
	pitches, _ := Chord(0, 0, 0, 60, 2)
	assert.Equal(t, []int{62, 65, 69, 74}, pitches)
}

func TestChordNegativeOffsetWrapsDown(t *testing.T) {
	// Profile 1 voices degree 2 as {-2, 1, 3, 5}: the -2 reaches below
	// the root, wrapping downward an octave.
	pitches, _ := Chord(0, 1, 0, 60, 2)
	assert.Equal(t, []int{57, 62, 65, 69}, pitches)
}

func TestChordClampsInvalidProfile(t *testing.T) {
	pitches, ok := Chord(0, 7, 0, 60, 1)
	assert.False(t, ok)
	assert.Equal(t, []int{60, 64, 67, 72}, pitches)
}

func TestClampMIDI(t *testing.T) {
	assert.Equal(t, uint8(0), ClampMIDI(-5))
	assert.Equal(t, uint8(127), ClampMIDI(300))
	assert.Equal(t, uint8(64), ClampMIDI(64))
}

func TestBendStandardProfile(t *testing.T) {
	assert.Equal(t, 0, Bend(ProfileScale, false, false))
	assert.Equal(t, -12, Bend(ProfileScale, true, false))
	assert.Equal(t, 12, Bend(ProfileScale, false, true))
	assert.Equal(t, 0, Bend(ProfileScale, true, true))
}

func TestBendThunderstruck(t *testing.T) {
	assert.Equal(t, 0, Bend(ProfileThunderstruck, true, false))
	assert.Equal(t, 12, Bend(ProfileThunderstruck, false, true))
	assert.Equal(t, 12, Bend(ProfileThunderstruck, true, true))
}
