package terminal

import "fmt"

// CRT controller registers
const (
	crtcCursorStart   byte = 0x0A
	crtcLocationHigh  byte = 0x0E
	crtcLocationLow   byte = 0x0F
	cursorDisableMask byte = 0x20
)

// PortIO is byte-wide x86 port I/O.
type PortIO interface {
	Inb(port uint16) byte
	Outb(port uint16, value byte)
}

// Cursor tracks the logical cursor cell and mirrors it onto the CRT
// controller. It is not locked; Console serialises access.
type Cursor struct {
	row   int
	col   int
	ports PortIO
}

// NewCursor places the cursor at the start position, the first column of
// the bottom row.
func NewCursor(ports PortIO) *Cursor {
	c := &Cursor{ports: ports}
	c.SetPosition(VGAHeight-1, 0)
	return c
}

func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

// SetPosition moves the cursor. An out of range cell is a driver bug and
// panics.
func (c *Cursor) SetPosition(row, col int) {
	if row < 0 || row >= VGAHeight || col < 0 || col >= VGAWidth {
		panic(fmt.Sprintf("cursor position out of bounds: (%d, %d)", row, col))
	}

	pos := uint16(row*VGAWidth + col)

	c.ports.Outb(vgaCursorIndexPort, crtcLocationLow)
	c.ports.Outb(vgaCursorDataPort, byte(pos&0xFF))

	c.ports.Outb(vgaCursorIndexPort, crtcLocationHigh)
	c.ports.Outb(vgaCursorDataPort, byte((pos>>8)&0xFF))

	c.row, c.col = row, col
}

func (c *Cursor) Show() {
	c.ports.Outb(vgaCursorIndexPort, crtcCursorStart)
	start := c.ports.Inb(vgaCursorDataPort)
	c.ports.Outb(vgaCursorDataPort, start&^cursorDisableMask)
}

func (c *Cursor) Hide() {
	c.ports.Outb(vgaCursorIndexPort, crtcCursorStart)
	start := c.ports.Inb(vgaCursorDataPort)
	c.ports.Outb(vgaCursorDataPort, start|cursorDisableMask)
}
