package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdamask/snesSynth2025/boogie"
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/synth"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("213"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
)

// keyToButton maps terminal keys onto the pad. The d-pad sits on the
// arrow keys, the face buttons on their own letters.
var keyToButton = map[string]int{
	"up":    controller.BtnUp,
	"down":  controller.BtnDown,
	"left":  controller.BtnLeft,
	"right": controller.BtnRight,
	"a":     controller.BtnA,
	"b":     controller.BtnB,
	"x":     controller.BtnX,
	"y":     controller.BtnY,
	",":     controller.BtnSelect,
	".":     controller.BtnStart,
}

type Model struct {
	Engine *synth.Engine
	Tempo  *boogie.TempoTracker

	// Pad is non-nil when the instrument runs on the virtual pad; key
	// presses are forwarded to it. With hardware attached the TUI is
	// display-only.
	Pad *controller.VirtualSource

	quitting bool
}

type UpdateMsg struct{}

func NewModel(engine *synth.Engine, tempo *boogie.TempoTracker, pad *controller.VirtualSource) Model {
	return Model{Engine: engine, Tempo: tempo, Pad: pad}
}

func ListenForUpdates(engine *synth.Engine) tea.Cmd {
	return func() tea.Msg {
		<-engine.Updates
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Engine)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "l":
			if m.Pad != nil {
				m.Pad.Toggle(controller.BtnL)
			}

		case "r":
			if m.Pad != nil {
				m.Pad.Toggle(controller.BtnR)
			}

		default:
			if b, ok := keyToButton[key]; ok && m.Pad != nil {
				m.Pad.Tap(b)
			}
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Engine)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("snessynth  " + m.Engine.State().Status())

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(m.tempoLine())
	out.WriteString("\n")
	out.WriteString(m.padView())
	out.WriteString("\n\n")
	if m.Pad != nil {
		out.WriteString(dimStyle.Render("arrows/abxy:notes  ,:select .:start  l/r:shoulders  q:quit"))
	} else {
		out.WriteString(dimStyle.Render("hardware pad attached  q:quit"))
	}
	out.WriteString("\n")

	return out.String()
}

func (m Model) tempoLine() string {
	switch {
	case m.Tempo.Locked():
		bpm := float64(time.Minute) / float64(m.Tempo.QuarterNote())
		return fmt.Sprintf("clock: external %.1f bpm", bpm)
	case m.Tempo.Established():
		bpm := float64(time.Minute) / float64(m.Tempo.QuarterNote())
		return fmt.Sprintf("clock: free-run %.1f bpm", bpm)
	default:
		return "clock: unsynced"
	}
}

func (m Model) padView() string {
	if m.Pad == nil {
		return ""
	}
	var cells []string
	for b := 0; b < controller.NumButtons; b++ {
		label := " " + controller.Names[b] + " "
		if m.Pad.Held(b) {
			cells = append(cells, heldStyle.Render(label))
		} else {
			cells = append(cells, idleStyle.Render(label))
		}
	}
	return strings.Join(cells, " ")
}
