package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncIsAdditive(t *testing.T) {
	a := New()
	a.WriteControl(0x03) // both IRQs enabled
	bits := a.Sync(600_000)
	bits |= a.Sync(400_000)

	b := New()
	b.WriteControl(0x03)
	wantBits := b.Sync(1_000_000)

	assert.Equal(t, wantBits, bits, "sync(a); sync(b) must equal sync(a+b)")
	assert.NotZero(t, bits&IRQ1Sec, "1-second threshold must have fired")
}

func TestQuarterSecondFiresOncePerPeriod(t *testing.T) {
	tm := New()
	tm.WriteControl(0x02) // quarter-second IRQ only
	var fired int
	for i := 0; i < 4; i++ {
		bits := tm.Sync(qtrSecUs)
		if bits&IRQQtrSec != 0 {
			fired++
		}
		tm.AckRead()
	}
	assert.Equal(t, 4, fired)
}

func TestDisabledIRQNeverSets(t *testing.T) {
	tm := New()
	bits := tm.Sync(oneSecUs * 2)
	assert.Zero(t, bits, "no enable bits set: sync must never raise an IRQ")
}

func TestRemaindersCarryAcrossCalls(t *testing.T) {
	tm := New()
	tm.Sync(300_000)
	assert.Equal(t, uint32(300_000), tm.Remainder1Sec())
	tm.Sync(800_000)
	assert.Equal(t, uint32(100_000), tm.Remainder1Sec(), "1,100,000 - 1,000,000 wrapped once")
}
