// Package iwm implements the Integrated Woz Machine disk controller: the
// four soft-switch latches (Q6, Q7, drive-select, motor-on) and a
// per-drive nibble-stream cursor, grounded on spec.md §4.7 and the
// interface shape of original_source/clem_device.h's
// clem_iwm_read_switch/write_switch/speed_disk_gate/eject_disk_async.
package iwm

import "github.com/clem-emu/clem/clock"

// C0E0-C0EF register offsets toggle the four latches by even/odd address
// pairs, the classic IWM "soft switch" convention: reading or writing an
// even address in a pair clears the latch, the odd address sets it.
const (
	RegBase = 0xE0
	RegEnd  = 0xEF
)

const maxDrives = 4

// Drive holds one drive bay slot's nibble-stream media.
type Drive struct {
	Nibbles    []byte
	BitLength  int
	TrackMap   []int
	cursor     int
	present    bool
	ejecting   bool
	WriteProt  bool
}

// IWM owns the four latches and the drive bay (spec.md §3 "Device
// state": "IWM holds drive-bay state plus a nibble-stream cursor per
// active drive").
type IWM struct {
	q6, q7       bool
	driveSelect  int // 0 or 1 within the active bay (the bay is chosen by use35)
	motorOn      bool
	use35        bool // which of two drive bays is addressed

	drives [maxDrives]Drive

	speedFast bool
	lastTickTS uint64
}

func New() *IWM {
	m := &IWM{}
	m.Reset()
	return m
}

func (m *IWM) Reset() {
	m.q6, m.q7 = false, false
	m.driveSelect = 0
	m.motorOn = false
	m.use35 = false
	for i := range m.drives {
		m.drives[i].cursor = 0
	}
}

func (m *IWM) activeDriveIndex() int {
	idx := m.driveSelect
	if m.use35 {
		idx += 2
	}
	return idx
}

// InsertDisk mounts nibble-stream media into a drive slot (clem_iwm_insert_disk).
func (m *IWM) InsertDisk(driveIdx int, nibbles []byte, bitLength int, trackMap []int) {
	if driveIdx < 0 || driveIdx >= maxDrives {
		return
	}
	m.drives[driveIdx] = Drive{Nibbles: nibbles, BitLength: bitLength, TrackMap: trackMap, present: true}
}

// EjectDisk synchronously ejects (5.25" drives eject immediately; callers
// emulating 3.5" timing should use EjectDiskAsync instead).
func (m *IWM) EjectDisk(driveIdx int) bool {
	if driveIdx < 0 || driveIdx >= maxDrives || !m.drives[driveIdx].present {
		return false
	}
	m.drives[driveIdx] = Drive{}
	return true
}

// EjectDiskAsync starts (or polls) an asynchronous 3.5" eject
// (clem_iwm_eject_disk_async): returns true once the mechanism reports
// complete. This model completes on the first poll after being marked
// ejecting, since no stepper-motor timing is simulated (spec.md §1
// Non-goals "sub-cycle analog effects").
func (m *IWM) EjectDiskAsync(driveIdx int) bool {
	if driveIdx < 0 || driveIdx >= maxDrives {
		return false
	}
	d := &m.drives[driveIdx]
	if !d.present {
		return false
	}
	if !d.ejecting {
		d.ejecting = true
		return false
	}
	*d = Drive{}
	return true
}

// SpeedDiskGate reports whether the disk subsystem should run at fast or
// slow bus timing (clem_iwm_speed_disk_gate): 3.5" drives always force
// slow (Mega2) timing regardless of the speed register, since their
// mechanism is Mega2-synchronized.
func (m *IWM) SpeedDiskGate() bool {
	return !m.use35 && m.speedFast
}

// ReadSwitch toggles the latch addressed by reg and, while the motor is
// on, advances the active drive's nibble cursor one step (spec.md §4.7).
func (m *IWM) ReadSwitch(clk *clock.Clock, reg uint8, noOp bool) byte {
	m.applyLatch(reg)
	if !noOp {
		m.advanceCursor(clk)
	}

	switch {
	case reg == RegBase+0x0C: // Q6L: data-register read in read mode
		return m.readDataLatch()
	case reg == RegBase+0x0E: // Q6H/Q7H combo: status register
		return m.statusByte()
	}
	return 0
}

func (m *IWM) WriteSwitch(clk *clock.Clock, reg uint8, v byte) {
	m.applyLatch(reg)
	m.advanceCursor(clk)
	if reg == RegBase+0x0D {
		m.writeDataLatch(v)
	}
}

// applyLatch implements the even/odd soft-switch convention for the four
// latches within the C0E0-C0EF window: each latch owns a pair of
// addresses, even clears it and odd sets it.
func (m *IWM) applyLatch(reg uint8) {
	off := reg - RegBase
	switch off {
	case 0x00:
		m.driveSelect = 0
	case 0x01:
		m.driveSelect = 1
	case 0x08:
		m.motorOn = false
	case 0x09:
		m.motorOn = true
	case 0x0A:
		m.use35 = false
	case 0x0B:
		m.use35 = true
	case 0x0C:
		m.q6 = false
	case 0x0D:
		m.q6 = true
	case 0x0E:
		m.q7 = false
	case 0x0F:
		m.q7 = true
	}
}

func (m *IWM) advanceCursor(clk *clock.Clock) {
	if !m.motorOn {
		return
	}
	d := &m.drives[m.activeDriveIndex()]
	if !d.present || d.BitLength == 0 {
		return
	}
	now := clk.TS
	if m.lastTickTS == 0 {
		m.lastTickTS = now
		return
	}
	m.lastTickTS = now
	d.cursor = (d.cursor + 1) % len(d.Nibbles)
}

func (m *IWM) readDataLatch() byte {
	d := &m.drives[m.activeDriveIndex()]
	if !d.present || len(d.Nibbles) == 0 {
		return 0
	}
	return d.Nibbles[d.cursor]
}

func (m *IWM) writeDataLatch(v byte) {
	d := &m.drives[m.activeDriveIndex()]
	if !d.present || d.WriteProt || len(d.Nibbles) == 0 {
		return
	}
	d.Nibbles[d.cursor] = v
}

func (m *IWM) statusByte() byte {
	var s byte
	d := &m.drives[m.activeDriveIndex()]
	if d.present {
		s |= 0x80
	}
	if m.motorOn {
		s |= 0x20
	}
	if d.WriteProt {
		s |= 0x40
	}
	return s
}
