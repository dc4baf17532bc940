package terminal

import (
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/internal/metrics"
)

const escape = 0x1b

// The only escape sequences the console understands.
const (
	SeqClearScreen = "[2J"
	SeqShowCursor  = "[?25h"
	SeqHideCursor  = "[?25l"
)

var escapeSequences = []string{SeqClearScreen, SeqShowCursor, SeqHideCursor}

// Console renders characters onto a CellWriter and keeps the cursor in
// step. All methods are safe to call from the keyboard interrupt handler.
type Console struct {
	mu     sync.Mutex
	cursor *Cursor
	writer CellWriter
	log    *zap.Logger
}

func NewConsole(writer CellWriter, cursor *Cursor, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		cursor: cursor,
		writer: writer,
		log:    log,
	}
}

// Position returns the logical cursor cell.
func (c *Console) Position() (row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor.Position()
}

// PutChar renders ch at the cursor and advances it, wrapping at the end
// of a row and scrolling past the bottom row. '\n' only moves the cursor.
func (c *Console) PutChar(ch rune) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putChar(ch)
}

func (c *Console) putChar(ch rune) {
	if ch == '\n' {
		c.moveToNextLine()
		return
	}

	row, col := c.cursor.Position()
	c.writer.WriteCharAt(row, col, ch)

	switch {
	case col < VGAWidth-1:
		c.cursor.SetPosition(row, col+1)
	case row < VGAHeight-1:
		c.cursor.SetPosition(row+1, 0)
	default:
		c.scrollUp()
	}
}

func (c *Console) moveToNextLine() {
	row, _ := c.cursor.Position()
	if row < VGAHeight-1 {
		c.cursor.SetPosition(row+1, 0)
		return
	}
	c.scrollUp()
}

func (c *Console) scrollUp() {
	c.writer.NewLine()
	c.cursor.SetPosition(VGAHeight-1, 0)
	metrics.RecordScroll()
	c.log.Debug("scrolled")
}

// Backspace moves the cursor one cell back, wrapping to the end of the
// previous row, and blanks that cell. It does nothing at (0, 0).
func (c *Console) Backspace() {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, col := c.cursor.Position()
	switch {
	case col > 0:
		c.cursor.SetPosition(row, col-1)
		c.writer.WriteCharAt(row, col-1, ' ')
	case row > 0:
		c.cursor.SetPosition(row-1, VGAWidth-1)
		c.writer.WriteCharAt(row-1, VGAWidth-1, ' ')
	}
}

// ClearScreen blanks the display and parks the cursor on the bottom row.
func (c *Console) ClearScreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearScreen()
}

func (c *Console) clearScreen() {
	c.writer.Clear()
	c.cursor.SetPosition(VGAHeight-1, 0)
}

func (c *Console) ShowCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor.Show()
}

func (c *Console) HideCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor.Hide()
}

// HandleANSIEscape executes one of the literal sequences "[2J", "[?25h"
// or "[?25l" (without the leading ESC). Anything else is ignored.
func (c *Console) HandleANSIEscape(seq string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handleEscape(seq)
}

func (c *Console) handleEscape(seq string) {
	switch seq {
	case SeqClearScreen:
		c.clearScreen()
	case SeqShowCursor:
		c.cursor.Show()
	case SeqHideCursor:
		c.cursor.Hide()
	default:
		c.log.Debug("ignored escape sequence", zap.String("seq", seq))
	}
}

// Print renders s. An ESC immediately followed by one of the known
// sequences runs that sequence; nothing is carried over between calls,
// so a sequence split across two Print calls is printed literally.
func (c *Console) Print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(s); {
		if s[i] == escape {
			if seq, ok := matchEscape(s[i+1:]); ok {
				c.handleEscape(seq)
				i += 1 + len(seq)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		c.putChar(r)
		i += size
	}
}

func matchEscape(s string) (string, bool) {
	for _, seq := range escapeSequences {
		if strings.HasPrefix(s, seq) {
			return seq, true
		}
	}
	return "", false
}
