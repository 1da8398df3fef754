package controller

// Source supplies the current held state of all pad buttons, one read per
// poll cycle. Implementations must be safe to read from the engine
// goroutine while their transport (serial reader, TUI) feeds them from
// another.
type Source interface {
	Read() [NumButtons]bool
	Close() error
}
