package adb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyQueueDrainsFIFOOrder(t *testing.T) {
	a := New()
	a.DeviceInput(Event{Kind: EventKeyDown, Code: 0x41})
	a.DeviceInput(Event{Kind: EventKeyDown, Code: 0x42})

	first := a.ReadSwitch(RegCmdData, false)
	assert.Equal(t, byte(0x41|0x80), first)

	second := a.ReadSwitch(RegCmdData, false)
	assert.Equal(t, byte(0x42|0x80), second)
}

func TestNoOpReadDoesNotDrainQueue(t *testing.T) {
	a := New()
	a.DeviceInput(Event{Kind: EventKeyDown, Code: 0x10})

	a.ReadSwitch(RegCmdData, true)
	v := a.ReadSwitch(RegCmdData, false)
	assert.Equal(t, byte(0x10|0x80), v)
}

func TestStatusReflectsPendingQueues(t *testing.T) {
	a := New()
	assert.Zero(t, a.ReadSwitch(RegStatus, true))

	a.DeviceInput(Event{Kind: EventKeyDown, Code: 0x20})
	assert.Equal(t, byte(statusKeyPending), a.ReadSwitch(RegStatus, true))

	a.DeviceInput(Event{Kind: EventMouseDelta, DX: 3})
	assert.Equal(t, byte(statusKeyPending|statusMousePending), a.ReadSwitch(RegStatus, true))
}

func TestQueueCapacityBounded(t *testing.T) {
	a := New()
	for i := 0; i < queueCapacity+5; i++ {
		a.DeviceInput(Event{Kind: EventKeyDown, Code: byte(i)})
	}
	assert.LessOrEqual(t, len(a.keyQueue), queueCapacity)
}
