package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log categories, one per subsystem. Matches the categories the firmware
// used on its serial console.
const (
	CatGeneral   = "general"
	CatMIDI      = "midi"
	CatCtrl      = "ctrl"
	CatCommand   = "cmd"
	CatState     = "state"
	CatPlaystyle = "playstyle"
	CatBoogie    = "boogie"
	CatTempo     = "tempo"
)

// Levels. Warnings always reach the log; debug chatter can be filtered
// out with SetLevel when only anomalies matter.
const (
	LevelDebug = iota
	LevelWarning
)

var (
	mu       sync.Mutex
	file     *os.File
	enabled  bool
	minLevel = LevelDebug
	counters = make(map[string]int)
)

// Enable starts debug logging to ~/.config/snessynth/debug.log
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(homeDir, ".config", "snessynth")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	file = f
	enabled = true
	write(LevelDebug, CatGeneral, "=== Debug logging started ===")
	return nil
}

// Disable stops debug logging
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		write(LevelDebug, CatGeneral, "=== Debug logging stopped ===")
		file.Close()
		file = nil
	}
	enabled = false
}

// SetLevel raises the verbosity floor. Messages below lvl are dropped.
func SetLevel(lvl int) {
	mu.Lock()
	minLevel = lvl
	mu.Unlock()
}

// Log writes a debug-level message.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	write(LevelDebug, category, format, args...)
}

// Warn writes a warning: something off-nominal that the instrument
// recovered from (failed sends, clamped lookups, dropped serial frames).
func Warn(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	write(LevelWarning, category, format, args...)
}

// LogEvery writes a debug-level message only every N calls (for
// high-frequency events like the poll loop or clock pulses).
func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	key := category + format
	counters[key]++
	if counters[key]%n != 0 {
		return
	}
	write(LevelDebug, category, format+" (every %d, count=%d)", append(args, n, counters[key])...)
}

// write appends one line. Callers hold mu.
func write(lvl int, category, format string, args ...any) {
	if !enabled || file == nil || lvl < minLevel {
		return
	}

	tag := ""
	if lvl == LevelWarning {
		tag = "WARN "
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(file, "[%s] %-10s %s%s\n", ts, category, tag, fmt.Sprintf(format, args...))
	file.Sync() // flush immediately so we see logs even on crash
}
