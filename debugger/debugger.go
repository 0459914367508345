// Package debugger provides an interactive terminal inspector over a
// running machine: register file, flags, a multi-bank memory page view,
// and the decoded opcode at PC.
//
// Grounded on the teacher's cpu/debugger.go bubbletea model (a single
// model struct holding cpu + cursor state, Update stepping the CPU on a
// keypress, View rendering a page table beside a register/flag summary),
// generalized from a single 64K bus to the 65816's banked address space:
// the page table now renders a chosen (bank, page) window instead of a
// fixed five-row slice of one flat array, and the status view adds
// PBR/DBR/D/S and the emulation-mode bit.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/clem-emu/clem/cpu"
	"github.com/clem-emu/clem/mmu"
)

// Inspector is the minimal surface the debugger needs from a machine,
// kept narrow so it doesn't import package machine (avoiding an import
// cycle, since machine is the thing that wires this in).
type Inspector interface {
	CPU() *cpu.Cpu
	MMU() *mmu.MMU
}

type model struct {
	insp Inspector

	bank   uint8
	page   uint8 // high byte of the address window
	prevPC uint16
	err    error
	steps  uint64
}

// New constructs the debugger model over insp, viewing bank/page first.
func New(insp Inspector) model {
	return model{insp: insp}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			c := m.insp.CPU()
			m.prevPC = c.PC
			if err := c.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.steps++
		case "b":
			m.bank++
		case "B":
			m.bank--
		case "p":
			m.page++
		case "P":
			m.page--
		}
	}
	return m, nil
}

func (m model) renderPageRow(row uint8) string {
	addr := uint16(m.page)<<8 | uint16(row)<<4
	s := fmt.Sprintf("%02X:%04x | ", m.bank, addr)
	c := m.insp.CPU()
	mm := m.insp.MMU()
	for i := uint16(0); i < 16; i++ {
		v := mm.ReadNoEffect(m.bank, addr+i)
		if m.bank == c.PBR && addr+i == c.PC {
			s += fmt.Sprintf("[%02x] ", v)
		} else {
			s += fmt.Sprintf(" %02x  ", v)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := fmt.Sprintf("bank %02X page %02X", m.bank, m.page)
	rows := []string{header}
	for row := uint8(0); row < 16; row++ {
		rows = append(rows, m.renderPageRow(row))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	c := m.insp.CPU()
	var flags string
	for _, f := range []bool{c.P.Negative, c.P.Overflow, c.P.M, c.P.X, c.P.Decimal, c.P.Irq, c.P.Zero, c.P.Carry} {
		if f {
			flags += "1 "
		} else {
			flags += "0 "
		}
	}
	mode := "native"
	if c.Emulation {
		mode = "emulation"
	}
	return fmt.Sprintf(`
mode: %s  steps: %d
PBR:%02X PC:%04x (prev %04x)
DBR:%02X D:%04x S:%04x
A:%04x X:%04x Y:%04x
N V M X D I Z C
%s`,
		mode, m.steps, c.PBR, c.PC, m.prevPC, c.DBR, c.D, c.S, c.A, c.X, c.Y, flags)
}

func (m model) View() string {
	c := m.insp.CPU()
	currentOp := cpu.Opcodes[m.insp.MMU().ReadNoEffect(c.PBR, c.PC)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(currentOp),
	)
}

// Run starts the interactive TUI, blocking until the user quits.
func Run(insp Inspector) error {
	final, err := tea.NewProgram(New(insp)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
