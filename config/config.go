package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MusicConfig stores the musical startup state
type MusicConfig struct {
	Scale        int    `json:"scale,omitempty"`
	Key          int    `json:"key,omitempty"`
	BaseNote     int    `json:"baseNote,omitempty"`
	ChordProfile int    `json:"chordProfile,omitempty"`
	Profile      string `json:"profile,omitempty"`   // "scale" or "thunderstruck"
	PlayStyle    string `json:"playStyle,omitempty"` // "mono" or "chord"
	Portamento   bool   `json:"portamento,omitempty"`
}

// BoogieConfig stores the auto-play settings
type BoogieConfig struct {
	Enabled      bool    `json:"enabled,omitempty"`
	SwingAmount  float64 `json:"swingAmount,omitempty"` // 0..1
	DefaultTempo int     `json:"defaultTempo,omitempty"`
	Transpose    int     `json:"transpose"`
}

// MidiConfig defines the MIDI output and clock input ports
type MidiConfig struct {
	OutPort   string `json:"outPort,omitempty"`
	ClockPort string `json:"clockPort,omitempty"` // empty disables external sync
	Channel   int    `json:"channel,omitempty"`   // 1..16
	Velocity  int    `json:"velocity,omitempty"`
}

// PadConfig defines the controller input source
type PadConfig struct {
	SerialPort string `json:"serialPort,omitempty"` // empty uses the virtual pad
	SerialBaud int    `json:"serialBaud,omitempty"`
	PollMs     int    `json:"pollMs,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Music  MusicConfig  `json:"music,omitempty"`
	Boogie BoogieConfig `json:"boogie,omitempty"`
	Midi   MidiConfig   `json:"midi,omitempty"`
	Pad    PadConfig    `json:"pad,omitempty"`
	Debug  bool         `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Music: MusicConfig{
			BaseNote:  60,
			Profile:   "scale",
			PlayStyle: "mono",
		},
		Boogie: BoogieConfig{
			SwingAmount:  0.5,
			DefaultTempo: 120,
			Transpose:    -24,
		},
		Midi: MidiConfig{
			Channel:  1,
			Velocity: 100,
		},
		Pad: PadConfig{
			SerialBaud: 115200,
			PollMs:     2,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snessynth"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
// Whatever comes back is clamped into valid ranges.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) clamp() {
	if c.Music.Scale < 0 || c.Music.Scale > 6 {
		c.Music.Scale = 0
	}
	if c.Music.Key < 0 || c.Music.Key > 11 {
		c.Music.Key = 0
	}
	if c.Music.BaseNote < 0 || c.Music.BaseNote > 127 {
		c.Music.BaseNote = 60
	}
	if c.Music.ChordProfile < 0 || c.Music.ChordProfile > 1 {
		c.Music.ChordProfile = 0
	}
	if c.Boogie.SwingAmount < 0 {
		c.Boogie.SwingAmount = 0
	}
	if c.Boogie.SwingAmount > 1 {
		c.Boogie.SwingAmount = 1
	}
	if c.Boogie.DefaultTempo < 0 || c.Boogie.DefaultTempo > 400 {
		c.Boogie.DefaultTempo = 120
	}
	if c.Midi.Channel < 1 || c.Midi.Channel > 16 {
		c.Midi.Channel = 1
	}
	if c.Midi.Velocity < 1 || c.Midi.Velocity > 127 {
		c.Midi.Velocity = 100
	}
	if c.Pad.SerialBaud <= 0 {
		c.Pad.SerialBaud = 115200
	}
	if c.Pad.PollMs <= 0 {
		c.Pad.PollMs = 2
	}
}
