// Package hosted runs the kernel on a host terminal. It stands in for
// the VGA text buffer, the CRT controller and the PS/2 controller.
package hosted

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/SimonOneNineEight/charizardOS/terminal"
)

// Display is an emulated VGA text adapter drawn on a tcell screen. It
// implements terminal.CellWriter for the cell memory and
// terminal.PortIO for the CRT controller, and mirrors the controller's
// cursor onto the host terminal.
type Display struct {
	mu     sync.Mutex
	screen tcell.Screen
	style  tcell.Style
	crtc   *terminal.CRTC
	cells  [terminal.VGAHeight][terminal.VGAWidth]rune
}

// NewDisplay draws on s with the named colors. Unknown color names fall
// back to the terminal default.
func NewDisplay(s tcell.Screen, fg, bg string) *Display {
	d := &Display{
		screen: s,
		style:  tcell.StyleDefault.Foreground(tcell.GetColor(fg)).Background(tcell.GetColor(bg)),
		crtc:   terminal.NewCRTC(),
	}
	d.Clear()
	return d
}

// glyph keeps every cell one column wide so the 80x25 grid stays aligned.
func glyph(ch rune) rune {
	if ch < ' ' || runewidth.RuneWidth(ch) != 1 {
		return '?'
	}
	return ch
}

func (d *Display) WriteCharAt(row, col int, ch rune) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row < 0 || row >= terminal.VGAHeight || col < 0 || col >= terminal.VGAWidth {
		return
	}
	d.cells[row][col] = glyph(ch)
	d.screen.SetContent(col, row, d.cells[row][col], nil, d.style)
	d.screen.Show()
}

func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for r := range d.cells {
		for c := range d.cells[r] {
			d.cells[r][c] = ' '
		}
	}
	d.redraw()
}

// NewLine scrolls the grid up one row. tcell has no scroll primitive so
// the shadow grid is shifted and redrawn.
func (d *Display) NewLine() {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.cells[:], d.cells[1:])
	last := terminal.VGAHeight - 1
	for c := range d.cells[last] {
		d.cells[last][c] = ' '
	}
	d.redraw()
}

func (d *Display) redraw() {
	d.screen.Fill(' ', d.style)
	for r := range d.cells {
		for c, ch := range d.cells[r] {
			d.screen.SetContent(c, r, ch, nil, d.style)
		}
	}
	d.screen.Show()
}

func (d *Display) Inb(port uint16) byte {
	return d.crtc.Inb(port)
}

// Outb forwards to the CRT controller and repaints the host cursor.
func (d *Display) Outb(port uint16, value byte) {
	d.crtc.Outb(port, value)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.crtc.CursorHidden() {
		d.screen.HideCursor()
	} else {
		row, col := d.crtc.CursorCell()
		d.screen.ShowCursor(col, row)
	}
	d.screen.Show()
}

// Row returns the text of one row with trailing blanks trimmed.
func (d *Display) Row(row int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	end := terminal.VGAWidth
	for end > 0 && d.cells[row][end-1] == ' ' {
		end--
	}
	return string(d.cells[row][:end])
}
