package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	writes map[uint32]byte
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{writes: map[uint32]byte{}}
}

func (f *fakeTarget) WriteBankByte(bank uint8, addr uint16, v byte) {
	f.writes[uint32(bank)<<16|uint32(addr)] = v
}

func TestLoadRoundTripsDataRecord(t *testing.T) {
	// sum = 04+10+00+00+DE+AD+BE+EF = 844 = 0x34C -> low byte 0x4C
	// checksum = 0x01 + ^0x4C = 0x01 + 0xB3 = 0xB4
	hex := ":04100000DEADBEEFB4\n:00000001FF\n"

	tgt := newFakeTarget()
	n, err := LoadString(tgt, 0x01, hex)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, byte(0xDE), tgt.writes[uint32(1)<<16|0x1000])
	assert.Equal(t, byte(0xAD), tgt.writes[uint32(1)<<16|0x1001])
	assert.Equal(t, byte(0xBE), tgt.writes[uint32(1)<<16|0x1002])
	assert.Equal(t, byte(0xEF), tgt.writes[uint32(1)<<16|0x1003])
}

func TestParseRejectsBadChecksum(t *testing.T) {
	_, err := Parse(strings.NewReader(":04100000DEADBEEF00\n"))
	assert.Error(t, err)
}

func TestParseRejectsMissingColon(t *testing.T) {
	_, err := Parse(strings.NewReader("04100000DEADBEEFB4\n"))
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseStopsAtEOFRecord(t *testing.T) {
	hex := ":00000001FF\n:04100000DEADBEEFB4\n" // a data record AFTER the EOF record
	tgt := newFakeTarget()
	n, err := LoadString(tgt, 0, hex)
	require.NoError(t, err)
	assert.Zero(t, n, "records after the EOF record must be ignored")
}

func TestAddressWrapsAt64K(t *testing.T) {
	// two data bytes starting at address 0xFFFF; the second wraps to 0x0000
	// sum = 0x02+0xFF+0xFF+0x00+0xAB+0xCD = 2+255+255+0+171+205 = 888 = 0x378 -> 0x78
	// checksum = 0x01 + ^0x78 = 0x01 + 0x87 = 0x88
	hex := ":02FFFF00ABCD88\n:00000001FF\n"
	tgt := newFakeTarget()
	n, err := LoadString(tgt, 2, hex)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, byte(0xAB), tgt.writes[uint32(2)<<16|0xFFFF])
	assert.Equal(t, byte(0xCD), tgt.writes[uint32(2)<<16|0x0000])
}
