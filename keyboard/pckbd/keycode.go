package pckbd

// KeyCode names a physical key, independent of layout.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota

	Escape
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Backtick
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	Minus
	Equals
	Backspace

	Tab
	Q
	W
	E
	R
	T
	Y
	U
	I
	O
	P
	BracketLeft
	BracketRight
	Backslash

	CapsLock
	A
	S
	D
	F
	G
	H
	J
	K
	L
	Semicolon
	Quote
	Return

	LShift
	Z
	X
	C
	V
	B
	N
	M
	Comma
	Period
	Slash
	RShift

	LControl
	LWin
	LAlt
	Spacebar
	RAltGr
	RWin
	Apps
	RControl

	ScrollLock
	Insert
	Home
	PageUp
	Delete
	End
	PageDown
	ArrowUp
	ArrowLeft
	ArrowDown
	ArrowRight

	NumpadLock
	NumpadDivide
	NumpadMultiply
	NumpadSubtract
	NumpadAdd
	NumpadEnter
	NumpadPeriod
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
)

// keyNames is indexed by KeyCode and must follow the const order.
var keyNames = [...]string{
	"Unknown", "Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11",
	"F12", "Backtick", "Key1", "Key2", "Key3", "Key4", "Key5", "Key6", "Key7", "Key8",
	"Key9", "Key0", "Minus", "Equals", "Backspace", "Tab", "Q", "W", "E", "R", "T", "Y",
	"U", "I", "O", "P", "BracketLeft", "BracketRight", "Backslash", "CapsLock", "A", "S",
	"D", "F", "G", "H", "J", "K", "L", "Semicolon", "Quote", "Return", "LShift", "Z", "X",
	"C", "V", "B", "N", "M", "Comma", "Period", "Slash", "RShift", "LControl", "LWin",
	"LAlt", "Spacebar", "RAltGr", "RWin", "Apps", "RControl", "ScrollLock", "Insert",
	"Home", "PageUp", "Delete", "End", "PageDown", "ArrowUp", "ArrowLeft", "ArrowDown",
	"ArrowRight", "NumpadLock", "NumpadDivide", "NumpadMultiply", "NumpadSubtract",
	"NumpadAdd", "NumpadEnter", "NumpadPeriod", "Numpad0", "Numpad1", "Numpad2", "Numpad3",
	"Numpad4", "Numpad5", "Numpad6", "Numpad7", "Numpad8", "Numpad9",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// set1 maps single-byte scan code set 1 make codes to keys.
var set1 = map[byte]KeyCode{
	0x01: Escape,
	0x02: Key1, 0x03: Key2, 0x04: Key3, 0x05: Key4, 0x06: Key5,
	0x07: Key6, 0x08: Key7, 0x09: Key8, 0x0A: Key9, 0x0B: Key0,
	0x0C: Minus, 0x0D: Equals, 0x0E: Backspace, 0x0F: Tab,
	0x10: Q, 0x11: W, 0x12: E, 0x13: R, 0x14: T, 0x15: Y, 0x16: U, 0x17: I, 0x18: O, 0x19: P,
	0x1A: BracketLeft, 0x1B: BracketRight, 0x1C: Return, 0x1D: LControl,
	0x1E: A, 0x1F: S, 0x20: D, 0x21: F, 0x22: G, 0x23: H, 0x24: J, 0x25: K, 0x26: L,
	0x27: Semicolon, 0x28: Quote, 0x29: Backtick, 0x2A: LShift, 0x2B: Backslash,
	0x2C: Z, 0x2D: X, 0x2E: C, 0x2F: V, 0x30: B, 0x31: N, 0x32: M,
	0x33: Comma, 0x34: Period, 0x35: Slash, 0x36: RShift,
	0x37: NumpadMultiply, 0x38: LAlt, 0x39: Spacebar, 0x3A: CapsLock,
	0x3B: F1, 0x3C: F2, 0x3D: F3, 0x3E: F4, 0x3F: F5, 0x40: F6, 0x41: F7, 0x42: F8, 0x43: F9, 0x44: F10,
	0x45: NumpadLock, 0x46: ScrollLock,
	0x47: Numpad7, 0x48: Numpad8, 0x49: Numpad9, 0x4A: NumpadSubtract,
	0x4B: Numpad4, 0x4C: Numpad5, 0x4D: Numpad6, 0x4E: NumpadAdd,
	0x4F: Numpad1, 0x50: Numpad2, 0x51: Numpad3, 0x52: Numpad0, 0x53: NumpadPeriod,
	0x57: F11, 0x58: F12,
}

// set1Extended maps make codes that follow an 0xE0 prefix.
var set1Extended = map[byte]KeyCode{
	0x1C: NumpadEnter, 0x1D: RControl, 0x35: NumpadDivide, 0x38: RAltGr,
	0x47: Home, 0x48: ArrowUp, 0x49: PageUp, 0x4B: ArrowLeft, 0x4D: ArrowRight,
	0x4F: End, 0x50: ArrowDown, 0x51: PageDown, 0x52: Insert, 0x53: Delete,
	0x5B: LWin, 0x5C: RWin, 0x5D: Apps,
}

// MakeCode returns the set 1 make code for k and whether it needs the
// 0xE0 prefix. ok is false for keys with no code.
func MakeCode(k KeyCode) (code byte, extended bool, ok bool) {
	for b, kc := range set1 {
		if kc == k {
			return b, false, true
		}
	}
	for b, kc := range set1Extended {
		if kc == k {
			return b, true, true
		}
	}
	return 0, false, false
}
