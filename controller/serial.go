package controller

import (
	"fmt"
	"sync"

	"go.bug.st/serial"

	"github.com/sdamask/snesSynth2025/debug"
)

// SerialSource reads framed button-register reports from the pad MCU over
// a serial port. A reader goroutine keeps the latest register; Read hands
// it to the engine without blocking.
type SerialSource struct {
	port serial.Port

	mu   sync.Mutex
	held [NumButtons]bool

	done chan struct{}
}

// OpenSerialSource opens the named serial device and starts the reader.
func OpenSerialSource(device string, baud int) (*SerialSource, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", device, err)
	}
	s := &SerialSource{
		port: port,
		done: make(chan struct{}),
	}
	// Idle register: all bits set means nothing pressed.
	s.held = DecodeRegister(0xFFFF)
	go s.readLoop()
	debug.Log(debug.CatCtrl, "serial source open: %s @ %d", device, baud)
	return s, nil
}

func (s *SerialSource) readLoop() {
	var dec frameDecoder
	buf := make([]byte, 64)
	for {
		select {
		case <-s.done:
			return
		default:
		}
		n, err := s.port.Read(buf)
		if err != nil {
			debug.Warn(debug.CatCtrl, "serial read error: %v", err)
			return
		}
		for _, b := range buf[:n] {
			reg, ok := dec.Feed(b)
			if !ok {
				continue
			}
			held := DecodeRegister(reg)
			s.mu.Lock()
			s.held = held
			s.mu.Unlock()
		}
	}
}

// Read returns the most recent held state.
func (s *SerialSource) Read() [NumButtons]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

func (s *SerialSource) Close() error {
	close(s.done)
	return s.port.Close()
}
