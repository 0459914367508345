// Package timer implements the Mega2 1-second and quarter-second interval
// timers (spec.md §4.8), grounded directly on the original implementation's
// clem_timer_sync: two additive microsecond accumulators, each checked
// against its threshold in a loop so a single sync call can cross the
// threshold more than once.
package timer

// Thresholds in microseconds (original_source/clem_timer.c: 1 second and
// about 3.75 Hz, i.e. 1,000,000 and 266,667 microseconds).
const (
	oneSecUs  = 1_000_000
	qtrSecUs  = 266_667
	IRQ1Sec   = 1 << 0
	IRQQtrSec = 1 << 1
)

// Timer holds the two accumulators and their enable bits (spec.md §3
// "Device state": "internal counters, pending-IRQ bit").
type Timer struct {
	acc1Sec  uint32
	accQtSec uint32

	enable1Sec  bool
	enableQtSec bool

	pending uint32 // IRQ1Sec|IRQQtrSec bits latched since last read
}

func New() *Timer {
	t := &Timer{}
	t.Reset()
	return t
}

func (t *Timer) Reset() {
	t.acc1Sec = 0
	t.accQtSec = 0
	t.enable1Sec = false
	t.enableQtSec = false
	t.pending = 0
}

// Sync is additive (spec.md §8 invariant 5): sync(a); sync(b) behaves like
// sync(a+b) for both IRQ delivery and remainder counters, since the
// threshold-crossing loop only depends on the running accumulator value.
func (t *Timer) Sync(deltaUs uint32) (irqLine uint32) {
	t.acc1Sec += deltaUs
	for t.acc1Sec >= oneSecUs {
		t.acc1Sec -= oneSecUs
		if t.enable1Sec {
			t.pending |= IRQ1Sec
		}
	}

	t.accQtSec += deltaUs
	for t.accQtSec >= qtrSecUs {
		t.accQtSec -= qtrSecUs
		if t.enableQtSec {
			t.pending |= IRQQtrSec
		}
	}

	return uint32(t.pending)
}

// WriteControl sets the two enable bits from a C032-style control write.
func (t *Timer) WriteControl(v byte) {
	t.enable1Sec = v&0x01 != 0
	t.enableQtSec = v&0x02 != 0
}

func (t *Timer) ReadControl() byte {
	var v byte
	if t.enable1Sec {
		v |= 0x01
	}
	if t.enableQtSec {
		v |= 0x02
	}
	return v
}

// ReadIRQ reports which of this timer's bits are currently latched in
// irqLine (the machine-owned IRQ bitmask, spec.md §9 "Interrupt delivery").
func (t *Timer) ReadIRQ(irqLine uint32) byte {
	var v byte
	if irqLine&IRQ1Sec != 0 {
		v |= 0x40
	}
	if irqLine&IRQQtrSec != 0 {
		v |= 0x80
	}
	return v
}

// AckRead clears this timer's bits out of the pending set once the host
// reads the IRQ-clear register with side effects enabled.
func (t *Timer) AckRead() {
	t.pending = 0
}

// Remainder1Sec exposes the 1-second accumulator remainder, used by tests
// asserting the additive-sync invariant.
func (t *Timer) Remainder1Sec() uint32 { return t.acc1Sec }

// RemainderQtrSec exposes the quarter-second accumulator remainder.
func (t *Timer) RemainderQtrSec() uint32 { return t.accQtSec }
