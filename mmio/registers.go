// Package mmio implements the MMIO dispatcher: it owns every device and
// routes C000-C0FF (plus the language-card bank-select window at
// C080-C08F) register accesses to the device that owns the register,
// rebuilding the MMU's page map whenever a bank-switch register is
// written (spec.md §4.5).
package mmio

import (
	"github.com/clem-emu/clem/devices/adb"
	"github.com/clem-emu/clem/devices/gameport"
	"github.com/clem-emu/clem/devices/iwm"
	"github.com/clem-emu/clem/devices/rtc"
	"github.com/clem-emu/clem/devices/scc"
	"github.com/clem-emu/clem/devices/sound"
	"github.com/clem-emu/clem/devices/timer"
	"github.com/clem-emu/clem/devices/vgc"
	"github.com/clem-emu/clem/mask"
	"github.com/clem-emu/clem/mmu"
)

// Register indices, named per the device grouping in spec.md §4.5.
const (
	RegVBLBar    = 0x19
	RegVertCnt   = 0x1A
	RegHorizCnt  = 0x1B
	RegTextColor = 0x22
	RegNewVideo  = 0x29
	RegRegion    = 0x2B
	RegScanCtlA  = 0x2E
	RegScanCtlB  = 0x2F

	RegRdAltZP = 0x16
	RegSpeed   = 0x36
	RegShadow  = 0x35
	RegState   = 0x68

	RegSlotCxRom = 0x06
	RegIntCxRom  = 0x07
	RegStdZP     = 0x08
	RegAltZP     = 0x09
	RegSlotC3Rom = 0x0A
	RegIntC3Rom  = 0x0B

	RegRTCCommand = 0x34

	RegTimerCtl    = 0x32
	RegTimerIRQClr = 0x46

	RegADBMouseLo = 0x24
	RegADBModKey  = 0x25
	RegADBCmdData = 0x26
	RegADBStatus  = 0x27

	RegSoundCtlLo  = 0x3C
	RegSoundAddrHi = 0x3E

	RegSCCBCmd  = 0x38
	RegSCCAData = 0x3B

	RegButn0  = 0x61
	RegButn1  = 0x62
	RegPaddl0 = 0x64
	RegPaddl3 = 0x67
	RegPTrig  = 0x70

	RegIWMLo = 0xE0
	RegIWMHi = 0xEF
)

// IRQ bits this dispatcher ORs into IRQLine (spec.md §9 "Interrupt
// delivery": "the IRQ line is a bitmask owned by the machine; devices OR
// their bits into it during sync").
const (
	IRQVGCBlank   = vgc.IRQVBlank
	IRQTimer1Sec  = timer.IRQ1Sec << 8
	IRQTimerQtSec = timer.IRQQtrSec << 8
)

// Dispatcher owns every peripheral device and the shared IRQ line.
type Dispatcher struct {
	MMU *mmu.MMU

	RTC      *rtc.RTC
	Timer    *timer.Timer
	VGC      *vgc.VGC
	ADB      *adb.ADB
	Sound    *sound.GLU
	IWM      *iwm.IWM
	SCC      *scc.SCC
	Gameport *gameport.Gameport

	IRQLine uint32

	lastTickTS uint64
}

// New constructs a dispatcher over m and wires itself in as m's IOHandler.
func New(m *mmu.MMU) *Dispatcher {
	d := &Dispatcher{
		MMU:      m,
		RTC:      rtc.New(),
		Timer:    timer.New(),
		VGC:      vgc.New(),
		ADB:      adb.New(),
		Sound:    sound.New(),
		IWM:      iwm.New(),
		SCC:      scc.New(),
		Gameport: gameport.New(),
	}
	m.SetIOHandler(d)
	return d
}

// Reset reinitializes every device (spec.md §3 "Lifecycle").
func (d *Dispatcher) Reset() {
	d.RTC.Reset()
	d.Timer.Reset()
	d.VGC.Reset()
	d.ADB.Reset()
	d.Sound.Reset()
	d.IWM.Reset()
	d.SCC.Reset()
	d.Gameport.Reset()
	d.IRQLine = 0
	d.lastTickTS = d.MMU.Clock.TS
}

// Tick performs the periodic "sync all devices once" pass spec.md §9
// calls for (the lazy-sync pattern: per-access syncs only touch the
// targeted device; this catches everything else, e.g. VGC scanline
// advance with no register traffic).
func (d *Dispatcher) Tick() {
	us := uint32(d.MMU.Clock.Micros(d.MMU.Clock.Elapsed(d.lastTickTS)))
	d.lastTickTS = d.MMU.Clock.TS

	if bits := d.Timer.Sync(us); bits&timer.IRQ1Sec != 0 || bits&timer.IRQQtrSec != 0 {
		d.IRQLine |= uint32(bits) << 8
	}
	d.IRQLine |= d.VGC.Sync(d.MMU.Clock)
	d.ADB.GLUSync(us)
	d.Sound.GLUSync(d.MMU.Clock)
	d.Gameport.Sync(d.MMU.Clock)
}

// ReadIO implements mmu.IOHandler.
func (d *Dispatcher) ReadIO(reg uint8, hint mmu.AccessHint) byte {
	noOp := hint == mmu.HintNoOpRead
	switch {
	case reg == RegVBLBar:
		return d.VGC.ReadSwitch(d.MMU.Clock, vgc.RegVBLBar, noOp)
	case reg == RegVertCnt:
		return d.VGC.ReadSwitch(d.MMU.Clock, vgc.RegVertCnt, noOp)
	case reg == RegHorizCnt:
		return d.VGC.ReadSwitch(d.MMU.Clock, vgc.RegHorizCnt, noOp)
	case reg == RegNewVideo:
		return d.VGC.ReadNewVideo()
	case reg == RegRegion:
		return d.VGC.ReadRegion()
	case reg == RegRTCCommand:
		return d.RTC.ReadCommand(d.MMU.Clock, noOp)
	case reg == RegTimerCtl:
		return d.Timer.ReadControl()
	case reg == RegTimerIRQClr:
		v := d.Timer.ReadIRQ(d.IRQLine >> 8)
		if !noOp {
			d.IRQLine &^= IRQTimer1Sec | IRQTimerQtSec
			d.Timer.AckRead()
		}
		return v
	case reg >= RegADBMouseLo && reg <= RegADBStatus:
		return d.ADB.ReadSwitch(reg, noOp)
	case reg >= RegSoundCtlLo && reg <= RegSoundAddrHi:
		return d.Sound.ReadSwitch(reg, noOp)
	case reg >= RegSCCBCmd && reg <= RegSCCAData:
		return d.SCC.ReadSwitch(reg, noOp)
	case reg >= RegIWMLo && reg <= RegIWMHi:
		return d.IWM.ReadSwitch(d.MMU.Clock, reg, noOp)
	case reg == RegButn0 || reg == RegButn1:
		return d.Gameport.ReadButton(reg)
	case reg >= RegPaddl0 && reg <= RegPaddl3:
		return d.Gameport.ReadPaddle(d.MMU.Clock, reg, noOp)
	case reg == RegPTrig:
		if !noOp {
			d.Gameport.TriggerReset(d.MMU.Clock)
		}
		return 0
	case reg == RegRdAltZP:
		if d.MMU.SW.AltZPLC {
			return mask.Set(0, mask.I1, 1)
		}
		return 0
	case reg == RegState:
		return d.MMU.SW.StateRegByte()
	default:
		return 0xFF // documented floating-bus value (spec.md §7)
	}
}

// WriteIO implements mmu.IOHandler.
func (d *Dispatcher) WriteIO(reg uint8, v byte) {
	switch {
	case reg == RegSlotCxRom:
		d.MMU.SW.CXROM = true
		d.MMU.RebuildPageMaps()
	case reg == RegIntCxRom:
		d.MMU.SW.CXROM = false
		d.MMU.RebuildPageMaps()
	case reg == RegSlotC3Rom:
		d.MMU.SW.C3ROM = true
		d.MMU.RebuildPageMaps()
	case reg == RegIntC3Rom:
		d.MMU.SW.C3ROM = false
		d.MMU.RebuildPageMaps()
	case reg == RegStdZP:
		d.MMU.SW.AltZPLC = false
		d.MMU.RebuildPageMaps()
	case reg == RegAltZP:
		d.MMU.SW.AltZPLC = true
		d.MMU.RebuildPageMaps()
	case reg == RegShadow:
		d.MMU.SW.SetShadowReg(v)
		d.MMU.RebuildPageMaps()
	case reg == RegSpeed:
		d.MMU.SW.SetSpeedReg(v)
		d.MMU.RebuildPageMaps()
	case reg >= 0x80 && reg <= 0x8F:
		d.MMU.SW.LCSwitch(reg)
		d.MMU.RebuildPageMaps()
	case reg == RegNewVideo:
		d.VGC.WriteNewVideo(v)
	case reg == RegTextColor:
		d.VGC.WriteTextColors(v)
	case reg == RegRegion:
		d.VGC.WriteRegion(v)
	case reg == RegScanCtlA || reg == RegScanCtlB:
		d.VGC.WriteScanlineControl(reg == RegScanCtlB, v)
	case reg == RegRTCCommand:
		d.RTC.WriteCommand(d.MMU.Clock, v)
	case reg == RegTimerCtl:
		d.Timer.WriteControl(v)
	case reg >= RegADBMouseLo && reg <= RegADBStatus:
		d.ADB.WriteSwitch(reg, v)
	case reg >= RegSoundCtlLo && reg <= RegSoundAddrHi:
		d.Sound.WriteSwitch(reg, v)
	case reg >= RegSCCBCmd && reg <= RegSCCAData:
		d.SCC.WriteSwitch(reg, v)
	case reg >= RegIWMLo && reg <= RegIWMHi:
		d.IWM.WriteSwitch(d.MMU.Clock, reg, v)
	default:
		// Unimplemented MMIO write: documented no-op (spec.md §7).
	}
}
