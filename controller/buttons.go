package controller

// SNES pad button indices. The first ten trigger notes, L and R are
// modifiers (pitch bend, boogie mutes, command combos).
const (
	BtnB = iota
	BtnY
	BtnSelect
	BtnStart
	BtnUp
	BtnDown
	BtnLeft
	BtnRight
	BtnA
	BtnX
	BtnL
	BtnR

	NumButtons     = 12
	NumNoteButtons = 10
)

// Names for status output, in button-index order.
var Names = [NumButtons]string{
	"B", "Y", "Sel", "St", "Up", "Down", "Left", "Right", "A", "X", "L", "R",
}

// MusicalPosition maps a note button to its 0-based position in playing
// order: Down, Left, Up, Right, Select, Start, Y, B, X, A. Position 0 is
// the lowest note on the pad.
var MusicalPosition = [NumNoteButtons]int{
	7, // B
	6, // Y
	4, // Select
	5, // Start
	2, // Up
	0, // Down
	1, // Left
	3, // Right
	9, // A
	8, // X
}

// DecodeRegister unpacks the pad's 16-bit shift register into per-button
// held state. Bits are active low: a cleared bit means the button is down.
func DecodeRegister(reg uint16) [NumButtons]bool {
	var held [NumButtons]bool
	for bit := 0; bit < NumButtons; bit++ {
		held[bit] = reg&(1<<bit) == 0
	}
	return held
}
