// Package sound implements the Ensoniq DOC sound GLU's register window
// at C03C-C03E and a pull-API ring buffer of produced audio frames,
// grounded on original_source/clem_device.h's clem_sound_write_switch /
// clem_sound_read_switch / clem_sound_consume_frames interface. This
// supplements a feature the distilled specification names ("sound GLU
// (Ensoniq DOC)") without detailing its register protocol.
package sound

import "github.com/clem-emu/clem/clock"

const (
	RegControl = 0x3C // C03C: control/status
	RegData    = 0x3D // C03D: DOC register data, windowed by RegAddr
	RegAddr    = 0x3E // C03E: DOC register address latch
)

const docRegCount = 256

// Frame is one produced stereo audio sample.
type Frame struct {
	Left, Right int16
}

const ringCapacity = 4096

// GLU owns the DOC's 256-register file and the output ring buffer
// (spec.md §3 "Device state", §6 "Output": "a ring of audio frames with a
// consumer-side 'consumed N frames' advance").
type GLU struct {
	docRegs  [docRegCount]byte
	addrLatch byte

	ring     [ringCapacity]Frame
	head     int // next frame to produce
	tail     int // oldest unconsumed frame
	count    int

	lastSyncTS uint64
}

func New() *GLU {
	g := &GLU{}
	g.Reset()
	return g
}

func (g *GLU) Reset() {
	g.docRegs = [docRegCount]byte{}
	g.addrLatch = 0
	g.head, g.tail, g.count = 0, 0, 0
}

// GLUSync is the periodic DOC microcontroller tick. A full Ensoniq DOC
// oscillator mixer is out of scope (spec.md §1 Non-goals "audio device
// output"); this core only tracks elapsed time so a host-supplied mixer
// could be layered on top without changing this package's surface.
func (g *GLU) GLUSync(clk *clock.Clock) {
	g.lastSyncTS = clk.TS
}

// ReadSwitch returns the DOC register currently addressed by RegAddr.
func (g *GLU) ReadSwitch(reg uint8, noOp bool) byte {
	_ = noOp
	switch reg {
	case RegAddr:
		return g.addrLatch
	case RegData:
		return g.docRegs[g.addrLatch]
	case RegControl:
		return 0
	}
	return 0xFF
}

// WriteSwitch writes the DOC register currently addressed by RegAddr, or
// moves the address latch.
func (g *GLU) WriteSwitch(reg uint8, v byte) {
	switch reg {
	case RegAddr:
		g.addrLatch = v
	case RegData:
		g.docRegs[g.addrLatch] = v
	case RegControl:
		// DOC-wide control bits (halt/start); no-op beyond acceptance,
		// since oscillator mixing is out of scope.
	}
}

// PushFrame appends one produced frame to the ring, grounded on the
// original's pull-API model (host-side mixing out of scope); a full ring
// drops the oldest unconsumed frame rather than blocking, since this core
// has no internal concurrency to block against.
func (g *GLU) PushFrame(f Frame) {
	if g.count == ringCapacity {
		g.tail = (g.tail + 1) % ringCapacity
		g.count--
	}
	g.ring[g.head] = f
	g.head = (g.head + 1) % ringCapacity
	g.count++
}

// ConsumeFrames returns up to n unconsumed frames and advances the
// consumer-side read pointer (clem_sound_consume_frames).
func (g *GLU) ConsumeFrames(n int) []Frame {
	if n > g.count {
		n = g.count
	}
	out := make([]Frame, n)
	for i := 0; i < n; i++ {
		out[i] = g.ring[(g.tail+i)%ringCapacity]
	}
	g.tail = (g.tail + n) % ringCapacity
	g.count -= n
	return out
}
