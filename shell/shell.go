// Package shell reads command lines from the keyboard driver, runs them
// against the in-memory file system and prints the result.
package shell

import (
	"strings"

	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/fs"
	"github.com/SimonOneNineEight/charizardOS/internal/metrics"
)

const defaultPrompt = "> "

// LineReader blocks until a full line has been typed.
type LineReader interface {
	ReadLine() string
}

// Printer renders text on the console.
type Printer interface {
	Print(s string)
}

type Shell struct {
	in     LineReader
	out    Printer
	fs     *fs.FileSystem
	prompt string
	log    *zap.Logger
}

func New(in LineReader, out Printer, fsys *fs.FileSystem, prompt string, log *zap.Logger) *Shell {
	if prompt == "" {
		prompt = defaultPrompt
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		in:     in,
		out:    out,
		fs:     fsys,
		prompt: prompt,
		log:    log,
	}
}

// Run loops forever.
func (s *Shell) Run() {
	for {
		s.Step()
	}
}

// Step prints the prompt, waits for one line and prints its result.
func (s *Shell) Step() {
	s.out.Print(s.prompt)
	line := s.in.ReadLine()

	out, err := Execute(line, s.fs)
	name := metricName(line)
	metrics.RecordCommand(name, err == nil)

	if err != nil {
		s.log.Info("command failed", zap.String("command", name), zap.Error(err))
		s.out.Print("Error: " + err.Error() + "\n")
		return
	}
	s.log.Debug("command ok", zap.String("command", name))
	metrics.SetFSNodes(s.fs.Stats())
	if out != "" {
		s.out.Print(out + "\n")
	}
}

// metricName keeps the command label set bounded.
func metricName(line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "none"
	}
	if _, ok := lookup(parts[0]); ok {
		return parts[0]
	}
	return "unknown"
}
