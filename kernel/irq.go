package kernel

// IRQLine stands in for the CPU's interrupt pin. Halt parks the caller
// until Raise is called; a Raise with nobody halted is remembered, so an
// interrupt that lands between a check and Halt is never lost.
type IRQLine struct {
	ch chan struct{}
}

func NewIRQLine() *IRQLine {
	return &IRQLine{ch: make(chan struct{}, 1)}
}

// Raise signals end of interrupt. It never blocks.
func (l *IRQLine) Raise() {
	select {
	case l.ch <- struct{}{}:
	default:
	}
}

func (l *IRQLine) Halt() {
	<-l.ch
}
