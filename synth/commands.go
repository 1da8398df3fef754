package synth

import (
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
	"github.com/sdamask/snesSynth2025/music"
)

// CommandResult reports what a command cycle changed.
type CommandResult struct {
	Handled     bool // a combo fired; skip note handling this cycle
	ModeChanged bool // playstyle/boogie changed; engine must silence first
}

// CheckCommands handles the L+R+button configuration combos. Holding both
// modifiers and pressing:
//
//	A      toggle portamento        Y     cycle scale
//	X      key offset up            B     key offset down
//	Up     chord playstyle          Down  mono playstyle
//	Right  cycle chord profile      Left  toggle boogie mode
func CheckCommands(st *State, snap controller.Snapshot) CommandResult {
	if !snap.Held[controller.BtnL] || !snap.Held[controller.BtnR] {
		return CommandResult{}
	}

	switch {
	case snap.Pressed[controller.BtnA]:
		st.Portamento = !st.Portamento
		debug.Log(debug.CatCommand, "portamento: %v", st.Portamento)
		return CommandResult{Handled: true}

	case snap.Pressed[controller.BtnY]:
		st.ScaleID = (st.ScaleID + 1) % music.NumScales
		debug.Log(debug.CatCommand, "scale: %s", music.ScaleNames[st.ScaleID])
		return CommandResult{Handled: true}

	case snap.Pressed[controller.BtnX]:
		st.KeyOffset = (st.KeyOffset + 1) % 12
		debug.Log(debug.CatCommand, "key: %s", music.KeyNames[st.KeyOffset])
		return CommandResult{Handled: true}

	case snap.Pressed[controller.BtnB]:
		st.KeyOffset = (st.KeyOffset + 11) % 12
		debug.Log(debug.CatCommand, "key: %s", music.KeyNames[st.KeyOffset])
		return CommandResult{Handled: true}

	case snap.Pressed[controller.BtnUp]:
		st.Style = StyleChord
		debug.Log(debug.CatCommand, "playstyle: chord")
		return CommandResult{Handled: true, ModeChanged: true}

	case snap.Pressed[controller.BtnDown]:
		st.Style = StyleMonophonic
		debug.Log(debug.CatCommand, "playstyle: mono")
		return CommandResult{Handled: true, ModeChanged: true}

	case snap.Pressed[controller.BtnRight]:
		st.ChordProfile = (st.ChordProfile + 1) % music.NumProfiles
		debug.Log(debug.CatCommand, "chord profile: %d", st.ChordProfile)
		return CommandResult{Handled: true}

	case snap.Pressed[controller.BtnLeft]:
		st.Boogie = !st.Boogie
		debug.Log(debug.CatCommand, "boogie: %v", st.Boogie)
		return CommandResult{Handled: true, ModeChanged: true}
	}

	return CommandResult{}
}
