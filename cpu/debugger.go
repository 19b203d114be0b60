package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gomos/mask"
)

type model struct {
	cpu     *Cpu
	program []byte

	offset uint16 // where the program was loaded; anchors the memory view
	prevPC uint16
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	m.cpu.LoadAt(m.program, m.offset)
	m.cpu.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.step(); err != nil {
				m.error = err
				return m, tea.Quit
			}
			if m.cpu.halted {
				return m, tea.Quit
			}

		case "n":
			m.cpu.interrupt(nmiVector)
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as a line. The current PC is
// highlighted.
func (m model) renderRow(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := range uint16(16) {
		b := m.cpu.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []Status{
		Negative,
		Overflow,
		Unused,
		Break,
		Decimal,
		InterruptDisable,
		Zero,
		Carry,
	} {
		if m.cpu.Status.Has(flag) {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
 P: %02x
N V 1 B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
		m.cpu.Status.Bits(),
	) + flags
}

func (m model) memoryTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	offsets := []uint16{
		0, 16, 32, 48, 64,
		mask.Word(0x01, 0xf0), // top of the stack page
		m.offset,
		m.offset + 16*1,
		m.offset + 16*2,
		m.offset + 16*3,
	}
	for _, o := range offsets {
		rows = append(rows, m.renderRow(o))
	}
	return strings.Join(rows, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryTable(),
			m.status(),
		),
		"",
		Trace(m.cpu),
		"",
		spew.Sdump(Opcodes[m.cpu.Read(m.cpu.PC)]),
	)
}

// Debug loads the program into memory at the given offset, then starts an
// interactive TUI: space/j steps one instruction, n fires an NMI, q quits.
func (c *Cpu) Debug(program []byte, offset uint16) {
	m, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
