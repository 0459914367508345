// Package scc implements the serial communications controller's register
// window at C038-C03B. No external serial collaborator is modeled
// (spec.md §1 Non-goals names only host-side UX and disk parsers out of
// scope, but the source's SCC is the one device the distillation leaves
// maximally unspecified: it has no documented command protocol in the
// retrieved excerpts). This device is deliberately no-op-capable: writes
// are accepted and stored so a host-supplied serial backend could later
// observe them, and reads return the last-written value or a documented
// "no data pending" status, grounded on
// original_source/clem_device.h's clem_scc_write_switch/read_switch
// signatures.
package scc

const (
	RegBCommand = 0x38
	RegACommand = 0x39
	RegBData    = 0x3A
	RegAData    = 0x3B
)

// SCC owns the four register shadows; no channel state machine is
// modeled since no serial collaborator exists to drive one.
type SCC struct {
	regs [4]byte
}

func New() *SCC {
	s := &SCC{}
	s.Reset()
	return s
}

func (s *SCC) Reset() { s.regs = [4]byte{} }

func (s *SCC) index(reg uint8) int {
	switch reg {
	case RegBCommand:
		return 0
	case RegACommand:
		return 1
	case RegBData:
		return 2
	case RegAData:
		return 3
	}
	return -1
}

func (s *SCC) ReadSwitch(reg uint8, noOp bool) byte {
	_ = noOp
	if i := s.index(reg); i >= 0 {
		return s.regs[i]
	}
	return 0xFF
}

func (s *SCC) WriteSwitch(reg uint8, v byte) {
	if i := s.index(reg); i >= 0 {
		s.regs[i] = v
	}
}
