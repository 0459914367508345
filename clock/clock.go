// Package clock implements the shared time base that the CPU, MMU and
// every device synchronize against. There is exactly one Clock per
// Machine; every memory access advances it by the step matching the bank
// being addressed.
package clock

// StepDenominator is the unit used to convert abstract clock units into
// nanoseconds: ns = clocks * RefStep / StepDenominator.
const StepDenominator = 1000

// Clock is a monotonically increasing count of abstract clock units,
// together with the unit cost (RefStep) of the most recent bus cycle.
//
// Grounded on the teacher's package-level `Tick` duration
// (cpu.go: `tick = 10e9 / 1789773`), generalized from a single fixed NES
// cycle rate to the IIgs's dual fast/slow clocking with a configurable
// step per spec.md §6.
type Clock struct {
	TS      uint64 // abstract clock units elapsed since power-on
	RefStep uint32 // unit cost of the most recent bus cycle
}

// Config carries the two step sizes a Machine is constructed with.
type Config struct {
	StepFast  uint32 // cost of one fast-bus (FPI) cycle
	StepMega2 uint32 // cost of one slow-bus (Mega2) cycle
}

// DefaultConfig reproduces the documented IIgs ratio: Mega2 cycles take
// roughly 2.7x as long as fast-mode FPI cycles at the nominal 2.8 MHz/
// 1.023 MHz split.
func DefaultConfig() Config {
	return Config{
		StepFast:  1024,
		StepMega2: 2800,
	}
}

// New creates a Clock at TS=0.
func New() *Clock {
	return &Clock{}
}

// Step advances the clock by step units and records it as the most recent
// bus cycle cost.
func (c *Clock) Step(step uint32) {
	c.TS += uint64(step)
	c.RefStep = step
}

// StepFastOrMega2 advances by cfg.StepFast or cfg.StepMega2 depending on
// which bus the access targeted. This is the single call site every
// memory access in the MMU goes through (spec.md §4.1).
func (c *Clock) StepFastOrMega2(cfg Config, mega2 bool) {
	if mega2 {
		c.Step(cfg.StepMega2)
	} else {
		c.Step(cfg.StepFast)
	}
}

// Elapsed returns the number of clock units that have passed since last,
// saturating at zero (devices must never observe negative elapsed time).
func (c *Clock) Elapsed(last uint64) uint64 {
	if c.TS < last {
		return 0
	}
	return c.TS - last
}

// Nanos converts a span of clock units into nanoseconds using the current
// RefStep, per spec.md §3: ns = clocks * ref_step / step_denominator.
func (c *Clock) Nanos(clocks uint64) uint64 {
	return clocks * uint64(c.RefStep) / StepDenominator
}

// Micros converts a span of clock units into microseconds.
func (c *Clock) Micros(clocks uint64) uint64 {
	return c.Nanos(clocks) / 1000
}
