// Package machine is the top-level driver: it owns the clock, MMU, CPU,
// and MMIO dispatcher, advances the CPU instruction by instruction,
// sub-advances devices via the dispatcher's per-access sync plus a
// periodic tick, and exposes the external interfaces a host embeds
// against (spec.md §4 "Machine Loop", §6 "External Interfaces").
//
// Grounded on the teacher's cpu.loop() drive pattern, generalized to
// delegate cycle accounting to the MMU instead of time.Sleep, and to
// drain the IRQ line the dispatcher accumulates into the CPU's pin.
package machine

import (
	"fmt"
	"io"
	"strings"

	"github.com/clem-emu/clem/clock"
	"github.com/clem-emu/clem/cpu"
	"github.com/clem-emu/clem/devices/adb"
	"github.com/clem-emu/clem/loader"
	"github.com/clem-emu/clem/mmio"
	"github.com/clem-emu/clem/mmu"
)

// Config carries everything the host must supply at construction (spec.md
// §6 "Initialization"): ROM bytes, FPI RAM bank count, and the fast and
// Mega2 cycle steps (zero selects clock.DefaultConfig's value). There is
// no separate speed-factor setting. Reset is implicit on construction.
type Config struct {
	ROM          []byte
	FPIBankCount int // at least 4, up to 256
	FastStep     uint32
	Mega2Step    uint32
	Logger       cpu.Logger
}

// DriveID names one of the four drive-bay slots (two 5.25", two 3.5").
type DriveID int

const (
	Drive525_1 DriveID = iota
	Drive525_2
	Drive35_1
	Drive35_2
)

// NibbleDisk is the opaque nibble-stream media a host inserts/ejects
// (spec.md §6 "Disk media").
type NibbleDisk struct {
	Nibbles   []byte
	BitLength int
	TrackMap  []int
}

// InputEvent is the discrete input record posted into the ADB module
// (spec.md §6 "Input").
type InputEvent = adb.Event

// ScanlineInfo is the per-scanline video description a host renderer
// converts to pixels (spec.md §6 "Output" (a)).
type ScanlineInfo struct {
	Mode   string
	Offset uint32
	Meta   byte
}

// AudioFrame mirrors devices/sound.Frame at the machine boundary.
type AudioFrame struct {
	Left, Right int16
}

// TraceEntry mirrors the opcode trace callback payload (spec.md §6
// "Output" (c)).
type TraceEntry = cpu.TraceEntry

// Machine is the fully wired emulator core. Fields are unexported so the
// CPU()/MMU() accessors below (required by debugger.Inspector) don't
// collide with field names of the same concept.
type Machine struct {
	clk  *clock.Clock
	mem  *mmu.MMU
	core *cpu.Cpu
	io   *mmio.Dispatcher

	cfg Config

	traceFn func(TraceEntry)

	debugFlags uint32
}

// Debug flag bits (spec.md §6 "Debug flags").
const (
	DebugStdoutTrace uint32 = 1 << iota
	DebugCallbackTrace
	DebugInternalLog
)

// ConfigError reports an initialization failure (spec.md §7
// "Configuration error").
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "clem: configuration error: " + e.Reason }

// New constructs and resets a Machine (spec.md §6 "Reset is implicit on
// construction").
func New(cfg Config) (*Machine, error) {
	if len(cfg.ROM) == 0 {
		return nil, &ConfigError{Reason: "missing ROM"}
	}
	if cfg.FPIBankCount < 4 {
		return nil, &ConfigError{Reason: "insufficient RAM banks (need at least 4)"}
	}
	if cfg.FastStep == 0 {
		cfg.FastStep = clock.DefaultConfig().StepFast
	}
	if cfg.Mega2Step == 0 {
		cfg.Mega2Step = clock.DefaultConfig().StepMega2
	}
	if cfg.Mega2Step <= cfg.FastStep {
		return nil, &ConfigError{Reason: "inverted step ratio: Mega2 step must exceed fast step"}
	}

	banks, err := mmu.NewBanks(cfg.FPIBankCount, cfg.ROM)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	clk := clock.New()
	ccfg := clock.Config{StepFast: cfg.FastStep, StepMega2: cfg.Mega2Step}
	m := mmu.New(banks, clk, ccfg)

	c := cpu.New(m)
	if cfg.Logger != nil {
		c.Logger = cfg.Logger
	}

	io := mmio.New(m)

	mach := &Machine{clk: clk, mem: m, core: c, io: io, cfg: cfg}
	mach.reset()
	return mach, nil
}

func (mach *Machine) reset() {
	mach.io.Reset()
	mach.core.Reset()
}

// CPU and MMU satisfy debugger.Inspector (kept narrow there specifically
// so it doesn't need to import this package).
func (mach *Machine) CPU() *cpu.Cpu   { return mach.core }
func (mach *Machine) MMU() *mmu.MMU   { return mach.mem }
func (mach *Machine) Clock() *clock.Clock { return mach.clk }
func (mach *Machine) IO() *mmio.Dispatcher { return mach.io }

// SetTraceCallback installs an opcode trace callback, invoked per
// executed instruction (spec.md §6 "Output" (c)).
func (mach *Machine) SetTraceCallback(fn func(TraceEntry)) {
	mach.traceFn = fn
	mach.core.Trace = fn
}

// SetDebugFlags toggles the stdout/callback/internal-log trace bitmask
// (spec.md §6 "Debug flags").
func (mach *Machine) SetDebugFlags(flags uint32) { mach.debugFlags = flags }

// Step executes one CPU instruction (or reset micro-op), services a
// pending interrupt at the instruction boundary, and performs the
// periodic device tick (spec.md §4 "Machine Loop", §5 "Ordering").
func (mach *Machine) Step() error {
	if mach.io.IRQLine != 0 && !mach.core.P.Irq {
		mach.core.IRQ()
	}
	err := mach.core.Step()
	mach.io.Tick()
	if mach.debugFlags&DebugStdoutTrace != 0 && mach.traceFn == nil {
		fmt.Printf("%02X:%04X\n", mach.core.PBR, mach.core.PC)
	}
	return err
}

// Run steps the machine until err != nil or n instructions have executed,
// whichever comes first (n <= 0 means unbounded).
func (mach *Machine) Run(n int) error {
	for i := 0; n <= 0 || i < n; i++ {
		if err := mach.Step(); err != nil {
			return err
		}
	}
	return nil
}

// PostInput delivers a discrete input event into the ADB module
// (spec.md §6 "Input").
func (mach *Machine) PostInput(ev InputEvent) {
	mach.io.ADB.DeviceInput(ev)
}

// Scanline returns the video description for scanline n, selecting the
// offset table for the currently active video mode (spec.md §6 "Output"
// (a)).
func (mach *Machine) Scanline(n int) ScanlineInfo {
	if n < 0 {
		return ScanlineInfo{}
	}
	vgcDev := mach.io.VGC
	switch {
	case mach.mem.SW.SHires && n < len(vgcDev.SHGR):
		sl := vgcDev.SHGR[n]
		return ScanlineInfo{Mode: "shgr", Offset: sl.Offset, Meta: sl.Meta}
	case mach.mem.SW.HiRes && n < len(vgcDev.HGR1):
		table := &vgcDev.HGR1
		if mach.mem.SW.PageAlt {
			table = &vgcDev.HGR2
		}
		sl := table[n]
		return ScanlineInfo{Mode: "hgr", Offset: sl.Offset, Meta: sl.Meta}
	case n < len(vgcDev.Text1):
		table := &vgcDev.Text1
		if mach.mem.SW.PageAlt {
			table = &vgcDev.Text2
		}
		sl := table[n]
		return ScanlineInfo{Mode: "text", Offset: sl.Offset, Meta: sl.Meta}
	}
	return ScanlineInfo{}
}

// ConsumeAudioFrames drains up to n produced audio frames (spec.md §6
// "Output" (b)).
func (mach *Machine) ConsumeAudioFrames(n int) []AudioFrame {
	frames := mach.io.Sound.ConsumeFrames(n)
	out := make([]AudioFrame, len(frames))
	for i, f := range frames {
		out[i] = AudioFrame{Left: f.Left, Right: f.Right}
	}
	return out
}

func driveIndex(d DriveID) int {
	switch d {
	case Drive525_1:
		return 0
	case Drive525_2:
		return 1
	case Drive35_1:
		return 2
	case Drive35_2:
		return 3
	}
	return -1
}

// InsertDisk mounts opaque nibble-stream media into drive (spec.md §6
// "Disk media").
func (mach *Machine) InsertDisk(drive DriveID, disk NibbleDisk) error {
	idx := driveIndex(drive)
	if idx < 0 {
		return fmt.Errorf("clem: unknown drive %d", drive)
	}
	mach.io.IWM.InsertDisk(idx, disk.Nibbles, disk.BitLength, disk.TrackMap)
	return nil
}

// EjectDisk ejects media from drive. 3.5" drives eject asynchronously
// (spec.md §7 "Disk eject-while-busy": returns false until the mechanism
// finishes).
func (mach *Machine) EjectDisk(drive DriveID) bool {
	idx := driveIndex(drive)
	if idx < 0 {
		return false
	}
	if drive == Drive35_1 || drive == Drive35_2 {
		return mach.io.IWM.EjectDiskAsync(idx)
	}
	return mach.io.IWM.EjectDisk(idx)
}

// LoadHex reads Intel HEX text from r and writes its data records into
// bank, returning the byte count written (spec.md §6 "Program loading").
func (mach *Machine) LoadHex(bank uint8, r io.Reader) (int, error) {
	return loader.Load(mach.mem, bank, r)
}

// LoadIntelHex loads a program already split into hex-record lines
// (spec.md §6 "Program loading" external entry point).
func LoadIntelHex(mach *Machine, bank uint8, lines []string) (int, error) {
	return mach.LoadHex(bank, strings.NewReader(strings.Join(lines, "\n")))
}

// Peek is a read-only view over a bank, wrapping at the 16-bit address
// boundary and without the opcode-fetch/no-op-read side effects a normal
// access carries (spec.md §6 "Memory inspection").
func (mach *Machine) Peek(bank uint8, addr uint16, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = mach.mem.ReadNoEffect(bank, addr+uint16(i))
	}
	return out
}
