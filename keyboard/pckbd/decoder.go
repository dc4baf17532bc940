// Package pckbd decodes PC keyboard scan code set 1 into key events and
// maps them through a US 104-key layout. Control combinations are not
// mapped to control characters; Ctrl+A decodes as 'a'.
package pckbd

import (
	"errors"
	"fmt"
)

const (
	extendedPrefix = 0xE0
	releaseBit     = 0x80
)

var ErrUnknownKeyCode = errors.New("unknown key code")

type KeyState uint8

const (
	Up KeyState = iota
	Down
)

func (s KeyState) String() string {
	if s == Down {
		return "Down"
	}
	return "Up"
}

// KeyEvent is one key transition.
type KeyEvent struct {
	Code  KeyCode
	State KeyState
}

// DecodedKey is either a character (Raw false) or a key with no
// character meaning (Raw true).
type DecodedKey struct {
	Raw  bool
	Rune rune
	Code KeyCode
}

func Unicode(r rune) DecodedKey {
	return DecodedKey{Rune: r}
}

func RawKey(k KeyCode) DecodedKey {
	return DecodedKey{Raw: true, Code: k}
}

func (k DecodedKey) String() string {
	if k.Raw {
		return fmt.Sprintf("RawKey(%s)", k.Code)
	}
	return fmt.Sprintf("Unicode(%q)", k.Rune)
}

type modifiers struct {
	lshift   bool
	rshift   bool
	lctrl    bool
	rctrl    bool
	alt      bool
	altgr    bool
	capslock bool
	numlock  bool
}

func (m *modifiers) shifted() bool {
	return m.lshift || m.rshift
}

// Decoder is stateful: it remembers a pending 0xE0 prefix and the
// modifier and lock keys. It is not safe for concurrent use.
type Decoder struct {
	extended bool
	mods     modifiers
}

// New returns a decoder with num lock on, as a PC keyboard powers up.
func New() *Decoder {
	return &Decoder{mods: modifiers{numlock: true}}
}

// AddByte feeds one scan code byte. It returns nil, nil while a
// multi-byte sequence is incomplete.
func (d *Decoder) AddByte(b byte) (*KeyEvent, error) {
	if b == extendedPrefix {
		d.extended = true
		return nil, nil
	}

	table := set1
	if d.extended {
		table = set1Extended
		d.extended = false
	}

	state := Down
	if b&releaseBit != 0 {
		state = Up
	}
	code, ok := table[b&^releaseBit]
	if !ok {
		return nil, fmt.Errorf("scancode %#04x: %w", b, ErrUnknownKeyCode)
	}
	return &KeyEvent{Code: code, State: state}, nil
}

// ProcessKeyEvent updates modifier state and translates a key-down event.
// Modifier keys and key-up events decode to nothing.
func (d *Decoder) ProcessKeyEvent(ev KeyEvent) (DecodedKey, bool) {
	down := ev.State == Down
	switch ev.Code {
	case LShift:
		d.mods.lshift = down
		return DecodedKey{}, false
	case RShift:
		d.mods.rshift = down
		return DecodedKey{}, false
	case LControl:
		d.mods.lctrl = down
		return DecodedKey{}, false
	case RControl:
		d.mods.rctrl = down
		return DecodedKey{}, false
	case LAlt:
		d.mods.alt = down
		return DecodedKey{}, false
	case RAltGr:
		d.mods.altgr = down
		return DecodedKey{}, false
	case CapsLock:
		if down {
			d.mods.capslock = !d.mods.capslock
		}
		return DecodedKey{}, false
	case NumpadLock:
		if down {
			d.mods.numlock = !d.mods.numlock
		}
		return DecodedKey{}, false
	}
	if !down {
		return DecodedKey{}, false
	}
	return mapUS104(ev.Code, &d.mods), true
}
