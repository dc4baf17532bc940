package hosted

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/keyboard/pckbd"
)

const releaseBit = 0x80

// Only keys without the 0xE0 prefix are sent. The driver drops the
// prefix with the release bytes, so an extended key would decode as its
// keypad twin.
var specialKeys = map[tcell.Key]pckbd.KeyCode{
	tcell.KeyEnter:      pckbd.Return,
	tcell.KeyBackspace:  pckbd.Backspace,
	tcell.KeyBackspace2: pckbd.Backspace,
	tcell.KeyTab:        pckbd.Tab,
	tcell.KeyEscape:     pckbd.Escape,
	tcell.KeyF1:         pckbd.F1,
	tcell.KeyF2:         pckbd.F2,
	tcell.KeyF3:         pckbd.F3,
	tcell.KeyF4:         pckbd.F4,
	tcell.KeyF5:         pckbd.F5,
	tcell.KeyF6:         pckbd.F6,
	tcell.KeyF7:         pckbd.F7,
	tcell.KeyF8:         pckbd.F8,
	tcell.KeyF9:         pckbd.F9,
	tcell.KeyF10:        pckbd.F10,
	tcell.KeyF11:        pckbd.F11,
	tcell.KeyF12:        pckbd.F12,
}

// KeySource plays the PS/2 controller: it turns host key events into
// set 1 scancode bytes, latches them and raises one interrupt per byte.
//
// The keyboard driver never forwards release bytes to its decoder, so
// a shift once pressed would stay pressed for the rest of the session.
// KeySource therefore never presses shift. Letters get their case from
// caps lock toggles, '*' and '+' come from the keypad, and any other
// character that needs shift is rejected.
type KeySource struct {
	mu      sync.Mutex
	pending []byte
	caps    bool
	irqs    chan struct{}
	log     *zap.Logger
}

func NewKeySource(log *zap.Logger) *KeySource {
	if log == nil {
		log = zap.NewNop()
	}
	return &KeySource{
		irqs: make(chan struct{}, 256),
		log:  log,
	}
}

// Interrupts delivers one value per latched byte.
func (k *KeySource) Interrupts() <-chan struct{} {
	return k.irqs
}

// ReadScancode returns the oldest latched byte, or 0 when none is left.
func (k *KeySource) ReadScancode() byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.pending) == 0 {
		return 0
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b
}

// HandleEvent latches the scancodes for ev. It reports false when the
// key cannot be typed without shift or has no single-byte scancode.
func (k *KeySource) HandleEvent(ev *tcell.EventKey) bool {
	k.mu.Lock()
	codes, ok := k.encode(ev)
	if ok {
		k.pending = append(k.pending, codes...)
	}
	k.mu.Unlock()

	if !ok {
		k.log.Debug("key not representable", zap.String("key", ev.Name()))
		return false
	}
	for range codes {
		k.irqs <- struct{}{}
	}
	return true
}

func (k *KeySource) encode(ev *tcell.EventKey) ([]byte, bool) {
	if ev.Key() != tcell.KeyRune {
		kc, ok := specialKeys[ev.Key()]
		if !ok {
			return nil, false
		}
		return tap(nil, kc)
	}
	return k.encodeRune(ev.Rune())
}

func (k *KeySource) encodeRune(r rune) ([]byte, bool) {
	if kc, ok := pckbd.NumpadKeyForRune(r); ok {
		if out, ok := tap(nil, kc); ok {
			return out, true
		}
	}
	kc, shift, ok := pckbd.KeyForRune(r)
	if !ok {
		return nil, false
	}

	if !pckbd.IsLetter(kc) {
		if shift {
			return nil, false
		}
		return tap(nil, kc)
	}

	var out []byte
	if shift != k.caps {
		out, _ = tap(out, pckbd.CapsLock)
		k.caps = shift
	}
	return tap(out, kc)
}

// makeCode returns the single-byte make code of kc.
func makeCode(kc pckbd.KeyCode) (byte, bool) {
	code, ext, ok := pckbd.MakeCode(kc)
	return code, ok && !ext
}

// tap appends the make and break codes of kc.
func tap(out []byte, kc pckbd.KeyCode) ([]byte, bool) {
	code, ok := makeCode(kc)
	if !ok {
		return out, false
	}
	return append(out, code, code|releaseBit), true
}
