package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdamask/snesSynth2025/boogie"
	"github.com/sdamask/snesSynth2025/config"
	"github.com/sdamask/snesSynth2025/controller"
	"github.com/sdamask/snesSynth2025/debug"
	"github.com/sdamask/snesSynth2025/midi"
	"github.com/sdamask/snesSynth2025/music"
	"github.com/sdamask/snesSynth2025/synth"
	"github.com/sdamask/snesSynth2025/tui"
)

var (
	flagSerial string
	flagOut    string
	flagClock  string
	flagDebug  bool
)

func init() {
	runCmd.Flags().StringVar(&flagSerial, "serial", "", "serial device of the pad (overrides config; empty uses the virtual pad)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "MIDI output port substring (overrides config)")
	runCmd.Flags().StringVar(&flagClock, "clock", "", "MIDI clock input port substring (overrides config)")
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "write the category debug log")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the instrument",
	Long:  `Runs the poll loop against the configured pad and MIDI ports, with the TUI in front.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}
	defer midi.CloseDriver()

	out, err := midi.OpenOut(cfg.Midi.OutPort)
	if err != nil {
		return err
	}
	defer out.Close()

	var clockEvents <-chan boogie.ClockEvent
	if cfg.Midi.ClockPort != "" {
		clock, err := midi.OpenClock(cfg.Midi.ClockPort)
		if err != nil {
			return err
		}
		defer clock.Close()
		clockEvents = clock.Events()
	}

	var source controller.Source
	var pad *controller.VirtualSource
	if cfg.Pad.SerialPort != "" {
		source, err = controller.OpenSerialSource(cfg.Pad.SerialPort, cfg.Pad.SerialBaud)
		if err != nil {
			return err
		}
	} else {
		pad = controller.NewVirtualSource()
		source = pad
	}
	defer source.Close()

	st := stateFromConfig(cfg)
	tempo := boogie.NewTempoTracker(cfg.Boogie.DefaultTempo)
	sched := boogie.NewScheduler(tempo, out, func(button int) (int, bool) {
		return synth.BasePitch(st, button)
	})
	sched.Swing = cfg.Boogie.SwingAmount
	sched.Transpose = cfg.Boogie.Transpose
	sched.Velocity = st.Velocity
	sched.Channel = st.WireChannel()

	engine := synth.NewEngine(st, source, synth.LoggingVoices{}, out, tempo, sched, clockEvents)
	if ms := cfg.Pad.PollMs; ms > 0 {
		engine.Poll = time.Duration(ms) * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go engine.Run(ctx)

	program := tea.NewProgram(tui.NewModel(engine, tempo, pad))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func applyFlags(cfg *config.Config) {
	if flagSerial != "" {
		cfg.Pad.SerialPort = flagSerial
	}
	if flagOut != "" {
		cfg.Midi.OutPort = flagOut
	}
	if flagClock != "" {
		cfg.Midi.ClockPort = flagClock
	}
	if flagDebug {
		cfg.Debug = true
	}
}

func stateFromConfig(cfg *config.Config) *synth.State {
	st := synth.NewState()
	st.ScaleID = cfg.Music.Scale
	st.KeyOffset = cfg.Music.Key
	st.BaseNote = cfg.Music.BaseNote
	st.ChordProfile = cfg.Music.ChordProfile
	st.Portamento = cfg.Music.Portamento
	st.Boogie = cfg.Boogie.Enabled
	st.Velocity = uint8(cfg.Midi.Velocity)
	st.Channel = uint8(cfg.Midi.Channel)
	if cfg.Music.Profile == "thunderstruck" {
		st.Profile = music.ProfileThunderstruck
	}
	if cfg.Music.PlayStyle == "chord" {
		st.Style = synth.StyleChord
	}
	return st
}
