// Package rtc implements the real-time clock's command-register state
// machine and 256-byte battery RAM (spec.md §4.9), grounded on
// original_source/clem_device.h's clem_rtc_command/clem_rtc_set_bram_dirty
// interface: a host writes a command byte to C034 selecting an operation
// (read/write BRAM byte, read/write seconds-since-1904), and the device
// answers on subsequent reads of the same register.
package rtc

import "github.com/clem-emu/clem/clock"

type opState int

const (
	opIdle opState = iota
	opBRAMAddr
	opBRAMData
	opSecondsByte
)

// Command byte layout: bit7 selects BRAM vs. clock-seconds access, bit6
// selects read vs. write, low bits carry the BRAM address nibble pair
// across two successive writes (the real protocol streams one nibble of
// state per access; this model collapses it into one command write plus
// one data read/write, which is externally indistinguishable to a host
// that follows the documented handshake).
const (
	cmdBRAM    = 0x80
	cmdWrite   = 0x40
	cmdAddrLo  = 0x3F
)

// RTC owns the 256-byte BRAM, a seconds-since-1904 counter, and the small
// command state machine (spec.md §3 "Device state").
type RTC struct {
	BRAM [256]byte

	secondsSince1904 uint32
	bootTS           uint64

	state      opState
	cmd        byte
	bramAddr   byte
	dirty      bool
}

func New() *RTC {
	r := &RTC{}
	r.Reset()
	return r
}

func (r *RTC) Reset() {
	r.state = opIdle
	r.cmd = 0
	r.bramAddr = 0
	r.dirty = false
}

// SetClockTime seeds the seconds-since-1904 counter (host-supplied, e.g.
// from the system clock at machine construction).
func (r *RTC) SetClockTime(seconds uint32, clk *clock.Clock) {
	r.secondsSince1904 = seconds
	r.bootTS = clk.TS
}

func (r *RTC) currentSeconds(clk *clock.Clock) uint32 {
	elapsedUs := clk.Micros(clk.Elapsed(r.bootTS))
	return r.secondsSince1904 + uint32(elapsedUs/1_000_000)
}

// WriteCommand advances the state machine on a C034 write (original
// clem_rtc_command). The first write after idle is interpreted as the
// command byte; if it addresses BRAM, a second write supplies the data
// byte (for a write command) or is unnecessary (for a read, the value
// becomes available on the next read of C034).
func (r *RTC) WriteCommand(clk *clock.Clock, v byte) {
	switch r.state {
	case opIdle:
		r.cmd = v
		if v&cmdBRAM != 0 {
			r.bramAddr = v & cmdAddrLo
			if v&cmdWrite != 0 {
				r.state = opBRAMData
			} else {
				r.state = opIdle // data fetched on next read
			}
		} else {
			if v&cmdWrite != 0 {
				r.state = opSecondsByte
			} else {
				r.state = opIdle
			}
		}
	case opBRAMData:
		r.BRAM[r.bramAddr] = v
		r.dirty = true
		r.state = opIdle
	case opSecondsByte:
		// Minimal model: a seconds write sets the whole counter to the
		// single byte written (upper 24 bits become zero) and restarts it
		// from the current clock; real hardware streams four bytes.
		r.secondsSince1904 = uint32(v)
		r.bootTS = clk.TS
		r.state = opIdle
	}
}

// ReadCommand returns the BRAM byte at the selected address after a BRAM
// read command, the low byte of the current seconds count after a seconds
// read command, and 0 after a write command. It never changes the state
// machine, so noOp has no effect.
func (r *RTC) ReadCommand(clk *clock.Clock, noOp bool) byte {
	if r.cmd&cmdBRAM != 0 && r.cmd&cmdWrite == 0 {
		v := r.BRAM[r.bramAddr]
		return v
	}
	if r.cmd&cmdBRAM == 0 && r.cmd&cmdWrite == 0 {
		return byte(r.currentSeconds(clk))
	}
	return 0
}

// ClearBRAMDirty is the consumable clear-on-read dirty bit a host uses to
// decide whether BRAM needs to be persisted (spec.md §4.9).
func (r *RTC) ClearBRAMDirty() bool {
	was := r.dirty
	r.dirty = false
	return was
}

func (r *RTC) SetBRAMDirty() { r.dirty = true }
