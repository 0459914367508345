package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOCRegisterWindowReadWrite(t *testing.T) {
	g := New()
	g.WriteSwitch(RegAddr, 0x10)
	g.WriteSwitch(RegData, 0x7F)

	assert.Equal(t, byte(0x10), g.ReadSwitch(RegAddr, false))
	assert.Equal(t, byte(0x7F), g.ReadSwitch(RegData, false))

	g.WriteSwitch(RegAddr, 0x11)
	assert.Zero(t, g.ReadSwitch(RegData, false), "register 0x11 was never written")
}

func TestRingBufferFIFOOrder(t *testing.T) {
	g := New()
	g.PushFrame(Frame{Left: 1, Right: -1})
	g.PushFrame(Frame{Left: 2, Right: -2})

	out := g.ConsumeFrames(1)
	assert.Equal(t, []Frame{{Left: 1, Right: -1}}, out)

	out = g.ConsumeFrames(5)
	assert.Equal(t, []Frame{{Left: 2, Right: -2}}, out, "ConsumeFrames clamps to available count")
}

func TestRingBufferDropsOldestWhenFull(t *testing.T) {
	g := New()
	for i := 0; i < ringCapacity+3; i++ {
		g.PushFrame(Frame{Left: int16(i)})
	}
	out := g.ConsumeFrames(1)
	assert.Equal(t, int16(3), out[0].Left, "first 3 frames must have been dropped")
}
