package terminal

import "sync"

// CRTC emulates the index/data register pair of a VGA CRT controller. It
// lets the cursor logic run without real port I/O.
type CRTC struct {
	mu    sync.Mutex
	index byte
	regs  [256]byte
}

func NewCRTC() *CRTC {
	return &CRTC{}
}

func (c *CRTC) Outb(port uint16, value byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch port {
	case vgaCursorIndexPort:
		c.index = value
	case vgaCursorDataPort:
		c.regs[c.index] = value
	}
}

func (c *CRTC) Inb(port uint16) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch port {
	case vgaCursorIndexPort:
		return c.index
	case vgaCursorDataPort:
		return c.regs[c.index]
	}
	return 0xFF
}

// CursorCell returns the cell the cursor location registers point at.
func (c *CRTC) CursorCell() (row, col int) {
	c.mu.Lock()
	pos := int(c.regs[crtcLocationHigh])<<8 | int(c.regs[crtcLocationLow])
	c.mu.Unlock()
	return pos / VGAWidth, pos % VGAWidth
}

// CursorHidden reports whether the cursor-disable bit is set.
func (c *CRTC) CursorHidden() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[crtcCursorStart]&cursorDisableMask != 0
}
