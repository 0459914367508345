package scc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterWindowEchoesLastWrite(t *testing.T) {
	s := New()
	s.WriteSwitch(RegAData, 0x42)
	assert.Equal(t, byte(0x42), s.ReadSwitch(RegAData, false))
	assert.Zero(t, s.ReadSwitch(RegBData, false), "untouched register reads 0")
}

func TestUnknownRegisterFloatsHigh(t *testing.T) {
	s := New()
	assert.Equal(t, byte(0xFF), s.ReadSwitch(0x50, false))
}

func TestResetClearsAllRegisters(t *testing.T) {
	s := New()
	s.WriteSwitch(RegACommand, 0x99)
	s.Reset()
	assert.Zero(t, s.ReadSwitch(RegACommand, false))
}
