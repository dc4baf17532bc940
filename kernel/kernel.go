package kernel

import (
	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/fs"
	"github.com/SimonOneNineEight/charizardOS/keyboard"
	"github.com/SimonOneNineEight/charizardOS/keyboard/pckbd"
	"github.com/SimonOneNineEight/charizardOS/shell"
	"github.com/SimonOneNineEight/charizardOS/terminal"
)

const banner = "charizardOS 0.1.0\n"

type Config struct {
	Prompt       string
	ClearOnStart bool
	Banner       bool
}

// Hardware is what the kernel needs from the machine.
type Hardware struct {
	Cells    terminal.CellWriter
	Ports    terminal.PortIO
	Scancode keyboard.ScancodeSource
}

// Kernel owns every process-wide piece of shell state. New is the only
// place they are created.
type Kernel struct {
	cfg      Config
	hw       Hardware
	irq      *IRQLine
	console  *terminal.Console
	keyboard *keyboard.Driver
	fs       *fs.FileSystem
	shell    *shell.Shell
	log      *zap.Logger
}

func New(hw Hardware, cfg Config, log *zap.Logger) *Kernel {
	if log == nil {
		log = zap.NewNop()
	}

	k := &Kernel{
		cfg: cfg,
		hw:  hw,
		irq: NewIRQLine(),
		fs:  fs.New(),
		log: log.Named("kernel"),
	}

	k.console = terminal.NewConsole(hw.Cells, terminal.NewCursor(hw.Ports), log.Named("console"))
	k.keyboard = keyboard.NewDriver(pckbd.New(), &keyboard.Queue{}, k.console, log.Named("keyboard"))
	k.shell = shell.New(lineReader{k.keyboard, k.irq}, k.console, k.fs, cfg.Prompt, log.Named("shell"))
	return k
}

type lineReader struct {
	d *keyboard.Driver
	h keyboard.Halter
}

func (r lineReader) ReadLine() string {
	return r.d.ReadLine(r.h)
}

func (k *Kernel) Console() *terminal.Console { return k.console }
func (k *Kernel) FS() *fs.FileSystem         { return k.fs }

// HandleKeyboardInterrupt is the IRQ1 handler: read one byte, process
// it, then signal end of interrupt so a halted shell re-checks its queue.
func (k *Kernel) HandleKeyboardInterrupt() {
	b := k.hw.Scancode.ReadScancode()
	k.keyboard.Submit(b)
	k.irq.Raise()
}

// ServeInterrupts runs the keyboard handler once per value received on
// lines, until lines is closed.
func (k *Kernel) ServeInterrupts(lines <-chan struct{}) {
	for range lines {
		k.HandleKeyboardInterrupt()
	}
}

// Boot prepares the screen before the shell starts. The cursor stays
// hidden until the first ReadLine shows it.
func (k *Kernel) Boot() {
	k.console.HideCursor()
	if k.cfg.ClearOnStart {
		k.console.ClearScreen()
	}
	if k.cfg.Banner {
		k.console.Print(banner)
	}
	k.log.Info("shell started")
}

// Step runs one prompt/read/execute cycle.
func (k *Kernel) Step() {
	k.shell.Step()
}

// Main boots and runs the shell forever.
func (k *Kernel) Main() {
	k.Boot()
	k.shell.Run()
}
