package terminal

const (
	VGAWidth  = 80
	VGAHeight = 25

	vgaCursorIndexPort uint16 = 0x3D4
	vgaCursorDataPort  uint16 = 0x3D5
)

const (
	ColorBlack     = 0
	ColorLightGrey = 7
)

// glyph used for runes outside printable ASCII
const unknownGlyph = 0xFE

// CellWriter places glyphs on a fixed VGAHeight x VGAWidth grid. It never
// moves a cursor; Console owns that.
type CellWriter interface {
	WriteCharAt(row, col int, ch rune)
	// Clear blanks every cell.
	Clear()
	// NewLine scrolls the grid up by one row and blanks the last row.
	NewLine()
}

// TextBuffer is a VGA text-mode cell array: one glyph byte and one
// attribute byte per cell. On real hardware cells points at 0xB8000.
type TextBuffer struct {
	cells *[VGAHeight][VGAWidth][2]byte
	color byte
}

// NewTextBuffer wraps cells, allocating a fresh array when cells is nil.
func NewTextBuffer(cells *[VGAHeight][VGAWidth][2]byte) *TextBuffer {
	if cells == nil {
		cells = new([VGAHeight][VGAWidth][2]byte)
	}
	b := &TextBuffer{
		cells: cells,
		color: makeColor(ColorLightGrey, ColorBlack),
	}
	b.Clear()
	return b
}

func makeColor(fg, bg byte) byte {
	return fg | (bg << 4)
}

// SetColor changes the attribute used for subsequent writes.
func (b *TextBuffer) SetColor(fg, bg byte) {
	b.color = makeColor(fg, bg)
}

func (b *TextBuffer) WriteCharAt(row, col int, ch rune) {
	if col < 0 || col >= VGAWidth {
		return
	}
	if row < 0 || row >= VGAHeight {
		return
	}
	g := byte(unknownGlyph)
	if ch >= 0x20 && ch <= 0x7E {
		g = byte(ch)
	}
	b.cells[row][col][0] = g
	b.cells[row][col][1] = b.color
}

func (b *TextBuffer) Clear() {
	for r := 0; r < VGAHeight; r++ {
		b.blankRow(r)
	}
}

func (b *TextBuffer) NewLine() {
	for r := 1; r < VGAHeight; r++ {
		b.cells[r-1] = b.cells[r]
	}
	b.blankRow(VGAHeight - 1)
}

func (b *TextBuffer) blankRow(r int) {
	for c := 0; c < VGAWidth; c++ {
		b.cells[r][c][0] = ' '
		b.cells[r][c][1] = b.color
	}
}

// CharAt returns the glyph byte stored at (row, col).
func (b *TextBuffer) CharAt(row, col int) byte {
	return b.cells[row][col][0]
}

// Row returns the glyphs of one row with trailing blanks removed.
func (b *TextBuffer) Row(row int) string {
	buf := make([]byte, 0, VGAWidth)
	for c := 0; c < VGAWidth; c++ {
		buf = append(buf, b.cells[row][c][0])
	}
	end := len(buf)
	for end > 0 && buf[end-1] == ' ' {
		end--
	}
	return string(buf[:end])
}
