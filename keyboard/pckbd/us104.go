package pckbd

// keyPair holds the unshifted and shifted character of a key.
type keyPair struct {
	plain, shift rune
}

var us104Chars = map[KeyCode]keyPair{
	Backtick: {'`', '~'},
	Key1:     {'1', '!'},
	Key2:     {'2', '@'},
	Key3:     {'3', '#'},
	Key4:     {'4', '$'},
	Key5:     {'5', '%'},
	Key6:     {'6', '^'},
	Key7:     {'7', '&'},
	Key8:     {'8', '*'},
	Key9:     {'9', '('},
	Key0:     {'0', ')'},
	Minus:    {'-', '_'},
	Equals:   {'=', '+'},

	BracketLeft:  {'[', '{'},
	BracketRight: {']', '}'},
	Backslash:    {'\\', '|'},
	Semicolon:    {';', ':'},
	Quote:        {'\'', '"'},
	Comma:        {',', '<'},
	Period:       {'.', '>'},
	Slash:        {'/', '?'},
}

var us104Letters = map[KeyCode]rune{
	Q: 'q', W: 'w', E: 'e', R: 'r', T: 't', Y: 'y', U: 'u', I: 'i', O: 'o', P: 'p',
	A: 'a', S: 's', D: 'd', F: 'f', G: 'g', H: 'h', J: 'j', K: 'k', L: 'l',
	Z: 'z', X: 'x', C: 'c', V: 'v', B: 'b', N: 'n', M: 'm',
}

// numpad keys that type a digit or '.' with num lock on, and the
// navigation key they act as with it off.
var us104Numpad = map[KeyCode]struct {
	char rune
	nav  KeyCode
}{
	Numpad0:      {'0', Insert},
	Numpad1:      {'1', End},
	Numpad2:      {'2', ArrowDown},
	Numpad3:      {'3', PageDown},
	Numpad4:      {'4', ArrowLeft},
	Numpad5:      {'5', KeyUnknown},
	Numpad6:      {'6', ArrowRight},
	Numpad7:      {'7', Home},
	Numpad8:      {'8', ArrowUp},
	Numpad9:      {'9', PageUp},
	NumpadPeriod: {'.', Delete},
}

func mapUS104(k KeyCode, m *modifiers) DecodedKey {
	if r, ok := us104Letters[k]; ok {
		if m.shifted() != m.capslock {
			r -= 'a' - 'A'
		}
		return Unicode(r)
	}
	if p, ok := us104Chars[k]; ok {
		if m.shifted() {
			return Unicode(p.shift)
		}
		return Unicode(p.plain)
	}
	if n, ok := us104Numpad[k]; ok {
		if m.numlock {
			return Unicode(n.char)
		}
		if n.nav == KeyUnknown {
			return RawKey(k)
		}
		return RawKey(n.nav)
	}

	switch k {
	case Spacebar:
		return Unicode(' ')
	case Tab:
		return Unicode('\t')
	case Return, NumpadEnter:
		return Unicode('\n')
	case Backspace:
		return Unicode('\b')
	case Escape:
		return Unicode(0x1B)
	case Delete:
		return Unicode(0x7F)
	case NumpadDivide:
		return Unicode('/')
	case NumpadMultiply:
		return Unicode('*')
	case NumpadSubtract:
		return Unicode('-')
	case NumpadAdd:
		return Unicode('+')
	}
	return RawKey(k)
}

// KeyForRune finds the key that types r on a US 104-key layout and
// whether shift must be held for it. Letters report shift for upper
// case.
func KeyForRune(r rune) (k KeyCode, shift bool, ok bool) {
	for kc, l := range us104Letters {
		switch r {
		case l:
			return kc, false, true
		case l - ('a' - 'A'):
			return kc, true, true
		}
	}
	for kc, p := range us104Chars {
		switch r {
		case p.plain:
			return kc, false, true
		case p.shift:
			return kc, true, true
		}
	}
	if r == ' ' {
		return Spacebar, false, true
	}
	return KeyUnknown, false, false
}

// NumpadKeyForRune finds the keypad key that types r with num lock on.
// Keypad keys ignore shift.
func NumpadKeyForRune(r rune) (KeyCode, bool) {
	switch r {
	case '/':
		return NumpadDivide, true
	case '*':
		return NumpadMultiply, true
	case '-':
		return NumpadSubtract, true
	case '+':
		return NumpadAdd, true
	}
	for kc, n := range us104Numpad {
		if n.char == r {
			return kc, true
		}
	}
	return KeyUnknown, false
}

// IsLetter reports whether k is one of the 26 letter keys.
func IsLetter(k KeyCode) bool {
	_, ok := us104Letters[k]
	return ok
}
