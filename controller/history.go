package controller

// HistorySize is how many recent presses the pad remembers.
const HistorySize = 8

// PressHistory is a fixed-capacity ring of the most recently pressed
// button indices, oldest entries overwritten. It only informs retrigger
// fallback; an entry never implies the button still owns a note.
type PressHistory struct {
	buf  [HistorySize]int
	next int
}

func NewPressHistory() *PressHistory {
	h := &PressHistory{}
	for i := range h.buf {
		h.buf[i] = -1
	}
	return h
}

// Push records a press, overwriting the oldest entry.
func (h *PressHistory) Push(button int) {
	h.buf[h.next] = button
	h.next = (h.next + 1) % HistorySize
}

// Newest walks entries from most to least recent and returns the first
// one accept approves, or -1. Empty slots are skipped.
func (h *PressHistory) Newest(accept func(button int) bool) int {
	idx := h.next
	for i := 0; i < HistorySize; i++ {
		idx = (idx + HistorySize - 1) % HistorySize
		b := h.buf[idx]
		if b >= 0 && accept(b) {
			return b
		}
	}
	return -1
}
