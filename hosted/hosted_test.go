package hosted

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/SimonOneNineEight/charizardOS/keyboard"
	"github.com/SimonOneNineEight/charizardOS/keyboard/pckbd"
	"github.com/SimonOneNineEight/charizardOS/terminal"
)

func newSimDisplay(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(terminal.VGAWidth, terminal.VGAHeight)
	return NewDisplay(s, "silver", "black"), s
}

func simRune(s tcell.SimulationScreen, row, col int) rune {
	cells, w, _ := s.GetContents()
	c := cells[row*w+col]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDisplayDrawsAndScrolls(t *testing.T) {
	d, s := newSimDisplay(t)

	d.WriteCharAt(24, 0, 'o')
	d.WriteCharAt(24, 1, 'k')
	d.WriteCharAt(24, 2, '世')
	d.WriteCharAt(24, 3, '\x01')
	if got := d.Row(24); got != "ok??" {
		t.Errorf("row 24 = %q, want %q", got, "ok??")
	}
	if got := simRune(s, 24, 1); got != 'k' {
		t.Errorf("screen cell (24,1) = %q, want 'k'", got)
	}

	d.NewLine()
	if got := d.Row(23); got != "ok??" {
		t.Errorf("row 23 after scroll = %q", got)
	}
	if got := d.Row(24); got != "" {
		t.Errorf("row 24 after scroll = %q, want blank", got)
	}
	if got := simRune(s, 23, 0); got != 'o' {
		t.Errorf("screen cell (23,0) after scroll = %q, want 'o'", got)
	}

	d.Clear()
	if got := d.Row(23); got != "" {
		t.Errorf("row 23 after clear = %q", got)
	}
}

func TestDisplayMirrorsCursor(t *testing.T) {
	d, s := newSimDisplay(t)
	cur := terminal.NewCursor(d)

	x, y, visible := s.GetCursor()
	if x != 0 || y != terminal.VGAHeight-1 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (0, 24, true)", x, y, visible)
	}

	cur.SetPosition(3, 7)
	if x, y, _ := s.GetCursor(); x != 7 || y != 3 {
		t.Errorf("cursor = (%d, %d), want (7, 3)", x, y)
	}

	cur.Hide()
	if _, _, visible := s.GetCursor(); visible {
		t.Error("cursor still visible after Hide")
	}
	cur.Show()
	if _, _, visible := s.GetCursor(); !visible {
		t.Error("cursor hidden after Show")
	}
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// drain submits every latched byte, one per interrupt.
func drain(src *KeySource, drv *keyboard.Driver) {
	for {
		select {
		case <-src.Interrupts():
			drv.Submit(src.ReadScancode())
		default:
			return
		}
	}
}

func newTypingRig(t *testing.T) (*Display, *keyboard.Driver, *KeySource) {
	t.Helper()
	d, _ := newSimDisplay(t)
	console := terminal.NewConsole(d, terminal.NewCursor(d), nil)
	drv := keyboard.NewDriver(pckbd.New(), &keyboard.Queue{}, console, nil)
	return d, drv, NewKeySource(nil)
}

// typeLine sends every rune of s and then Enter, and returns the runes
// that were rejected.
func typeLine(src *KeySource, drv *keyboard.Driver, s string) string {
	var rejected []rune
	for _, r := range s {
		if !src.HandleEvent(runeEvent(r)) {
			rejected = append(rejected, r)
		}
	}
	src.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	drain(src, drv)
	return string(rejected)
}

func TestKeySourceTypesThroughDriver(t *testing.T) {
	d, drv, src := newTypingRig(t)

	const text = "Hello WORLD 42*+/-.,;='[]\\`"
	if rejected := typeLine(src, drv, text); rejected != "" {
		t.Fatalf("rejected %q", rejected)
	}
	if got := d.Row(terminal.VGAHeight - 2); got != text {
		t.Errorf("echoed row = %q, want %q", got, text)
	}
	if line := drv.ReadLine(haltOnce{}); line != text {
		t.Errorf("ReadLine() = %q, want %q", line, text)
	}
}

func TestShiftedSymbolDoesNotBlockSlash(t *testing.T) {
	_, drv, src := newTypingRig(t)

	if rejected := typeLine(src, drv, "touch a_b"); rejected != "_" {
		t.Errorf("rejected %q, want %q", rejected, "_")
	}
	if line := drv.ReadLine(haltOnce{}); line != "touch ab" {
		t.Errorf("ReadLine() = %q, want %q", line, "touch ab")
	}

	if rejected := typeLine(src, drv, "ls /"); rejected != "" {
		t.Fatalf("rejected %q after a shifted symbol", rejected)
	}
	if line := drv.ReadLine(haltOnce{}); line != "ls /" {
		t.Errorf("ReadLine() = %q, want %q", line, "ls /")
	}
}

func TestShiftedSymbolsAreRejected(t *testing.T) {
	src := NewKeySource(nil)
	for _, r := range "!@#$%^&()_{}|:\"<>?~" {
		if src.HandleEvent(runeEvent(r)) {
			t.Errorf("HandleEvent(%q) accepted", r)
		}
	}
	if n := len(src.Interrupts()); n != 0 {
		t.Errorf("rejected keys raised %d interrupts", n)
	}
}

type haltOnce struct{}

func (haltOnce) Halt() { panic("no line was queued") }

func TestKeySourceLatchesBytes(t *testing.T) {
	src := NewKeySource(nil)
	if b := src.ReadScancode(); b != 0 {
		t.Errorf("ReadScancode() on empty source = %#x, want 0", b)
	}

	src.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if n := len(src.Interrupts()); n != 2 {
		t.Errorf("interrupts raised = %d, want 2", n)
	}
	if b := src.ReadScancode(); b != 0x1C {
		t.Errorf("first byte = %#x, want 0x1c", b)
	}
	if b := src.ReadScancode(); b != 0x9C {
		t.Errorf("second byte = %#x, want 0x9c", b)
	}

	if src.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Error("arrow key should not be sent")
	}
	if src.HandleEvent(runeEvent('é')) {
		t.Error("'é' has no key on the layout")
	}
}
