package controller

// Wire protocol for the pad MCU link. The microcontroller that shifts the
// SNES register out sends one report frame per scan:
//
//	[SOF0][SOF1][LEN][CMD][reg lo][reg hi][CKS]
//
// CKS is LEN xor CMD xor payload bytes.
const (
	SOF0           = 0xAA
	SOF1           = 0x55
	CmdButtonState = 0x01
)

// EncodeButtonFrame builds the on-wire representation of a register
// report. Used by tests and by the pad simulator.
func EncodeButtonFrame(reg uint16) []byte {
	lo := byte(reg)
	hi := byte(reg >> 8)
	length := byte(3) // CMD + 2 payload bytes
	cks := length ^ CmdButtonState ^ lo ^ hi
	return []byte{SOF0, SOF1, length, CmdButtonState, lo, hi, cks}
}

// frameDecoder is a byte-at-a-time state machine recovering register
// reports from the serial stream. Garbage between frames is discarded.
type frameDecoder struct {
	state   int
	length  byte
	payload []byte
}

const (
	waitSOF0 = iota
	waitSOF1
	waitLen
	waitBody
)

// Feed consumes one byte and returns a decoded register and true when a
// complete, checksum-valid button frame has been assembled.
func (d *frameDecoder) Feed(b byte) (uint16, bool) {
	switch d.state {
	case waitSOF0:
		if b == SOF0 {
			d.state = waitSOF1
		}
	case waitSOF1:
		if b == SOF1 {
			d.state = waitLen
		} else {
			d.state = waitSOF0
		}
	case waitLen:
		if b == 0 || b > 16 {
			d.state = waitSOF0
			break
		}
		d.length = b
		d.payload = d.payload[:0]
		d.state = waitBody
	case waitBody:
		d.payload = append(d.payload, b)
		if len(d.payload) < int(d.length)+1 { // body + checksum
			break
		}
		d.state = waitSOF0

		cks := d.length
		for _, pb := range d.payload[:d.length] {
			cks ^= pb
		}
		if cks != d.payload[d.length] {
			return 0, false
		}
		if d.payload[0] != CmdButtonState || d.length != 3 {
			return 0, false
		}
		return uint16(d.payload[1]) | uint16(d.payload[2])<<8, true
	}
	return 0, false
}
