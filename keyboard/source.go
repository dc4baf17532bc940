package keyboard

// DataPort is the PS/2 controller data port.
const DataPort uint16 = 0x60

// ScancodeSource yields one raw scancode byte per call.
type ScancodeSource interface {
	ReadScancode() byte
}

// PortReader is byte-wide port input.
type PortReader interface {
	Inb(port uint16) byte
}

// PortSource reads scancodes from the PS/2 data port.
type PortSource struct {
	Ports PortReader
}

func (s PortSource) ReadScancode() byte {
	return s.Ports.Inb(DataPort)
}
