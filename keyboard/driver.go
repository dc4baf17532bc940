// Package keyboard turns scancodes from the keyboard interrupt into a
// queue of typed characters and hands complete lines to the shell.
package keyboard

import (
	"sync"

	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/internal/metrics"
	"github.com/SimonOneNineEight/charizardOS/keyboard/pckbd"
)

const releaseBit = 0x80

// KeyDecoder turns scancode bytes into key events and key events into
// characters or raw keys. *pckbd.Decoder implements it.
type KeyDecoder interface {
	AddByte(b byte) (*pckbd.KeyEvent, error)
	ProcessKeyEvent(ev pckbd.KeyEvent) (pckbd.DecodedKey, bool)
}

// Echo is the visible side of typing. *terminal.Console implements it.
type Echo interface {
	PutChar(ch rune)
	Backspace()
	ShowCursor()
}

// Halter suspends the caller until the next interrupt has been handled.
type Halter interface {
	Halt()
}

// Driver is the keyboard input driver. Submit runs in interrupt context
// and never blocks on the shell; ReadLine runs in the shell loop.
type Driver struct {
	decMu   sync.Mutex
	decoder KeyDecoder
	queue   *Queue
	echo    Echo
	log     *zap.Logger
}

func NewDriver(decoder KeyDecoder, queue *Queue, echo Echo, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		decoder: decoder,
		queue:   queue,
		echo:    echo,
		log:     log,
	}
}

// Submit handles one scancode byte. Key releases are dropped before they
// reach the decoder.
func (d *Driver) Submit(scancode byte) {
	if scancode&releaseBit != 0 {
		metrics.RecordScancode("released")
		return
	}

	key, ok := d.decode(scancode)
	if !ok {
		return
	}

	// the queue lock is held across the echo so the screen shows
	// characters in queue order
	d.queue.mu.Lock()
	defer d.queue.mu.Unlock()

	switch {
	case isBackspace(key):
		metrics.RecordKey("backspace")
		if _, ok := d.queue.pop(); ok {
			d.echo.Backspace()
		}
	case !key.Raw:
		metrics.RecordKey("char")
		d.queue.push(key.Rune)
		d.echo.PutChar(key.Rune)
	case key.Code == pckbd.Return || key.Code == pckbd.NumpadEnter:
		metrics.RecordKey("enter")
		d.queue.push('\n')
		d.echo.PutChar('\n')
	default:
		metrics.RecordKey("raw")
		d.log.Debug("raw key ignored", zap.Stringer("key", key.Code))
	}
}

func (d *Driver) decode(scancode byte) (pckbd.DecodedKey, bool) {
	d.decMu.Lock()
	defer d.decMu.Unlock()

	ev, err := d.decoder.AddByte(scancode)
	if err != nil {
		metrics.RecordScancode("decode_error")
		d.log.Warn("failed to decode scancode", zap.Uint8("scancode", scancode), zap.Error(err))
		return pckbd.DecodedKey{}, false
	}
	metrics.RecordScancode("accepted")
	if ev == nil {
		return pckbd.DecodedKey{}, false
	}
	return d.decoder.ProcessKeyEvent(*ev)
}

func isBackspace(k pckbd.DecodedKey) bool {
	if k.Raw {
		return k.Code == pckbd.Backspace
	}
	return k.Rune == '\b'
}

// TryTakeOne pops the most recently typed character without waiting.
func (d *Driver) TryTakeOne() (rune, bool) {
	return d.queue.Pop()
}

// ReadLine waits, halting between checks, until the last typed character
// is a newline, then drains the queue and returns the line in typing
// order without the newline. It cannot be cancelled.
func (d *Driver) ReadLine(h Halter) string {
	d.echo.ShowCursor()
	for {
		if line, ok := d.queue.takeLine(); ok {
			metrics.RecordLineRead()
			return line
		}
		h.Halt()
	}
}
