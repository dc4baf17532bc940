package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SimonOneNineEight/charizardOS/fs"
	"github.com/SimonOneNineEight/charizardOS/terminal"
)

const (
	osName    = "charizardOS"
	osVersion = "0.1.0"
)

var ErrNoCommand = errors.New("no command entered")

// UsageError reports a command called with too few arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Unknown command: " + e.Name
}

type command struct {
	name    string
	minArgs int
	usage   string
	help    string
	run     func(args []string, fsys *fs.FileSystem) (string, error)
}

var commands []command

func init() {
	commands = []command{
		{"help", 1, "help", "Show available commands.", runHelp},
		{"clear", 1, "clear", "Clear the screen.", runClear},
		{"echo", 1, "echo [text...]", "Print arguments.", runEcho},
		{"version", 1, "version", "Show build version.", runVersion},
		{"mkdir", 2, "mkdir <path>", "Create a directory under /.", runMkdir},
		{"touch", 2, "touch <path> [content]", "Create a file under /.", runTouch},
		{"ls", 2, "ls <path>", "List a directory.", runLs},
		{"cat", 2, "cat <path>", "Print a file under /.", runCat},
		{"rm", 2, "rm <path>", "Delete a file or empty directory under /.", runRm},
		{"rename", 3, "rename <path> <new_name>", "Rename a node under /.", runRename},
		{"stat", 1, "stat", "Show file system node counts.", runStat},
	}
}

func lookup(name string) (*command, bool) {
	for i := range commands {
		if commands[i].name == name {
			return &commands[i], true
		}
	}
	return nil, false
}

// Execute runs one command line against fsys and returns the text to
// show. Tokens are split on whitespace with no quoting. mkdir, touch,
// cat, rm and rename always address children of the root.
func Execute(line string, fsys *fs.FileSystem) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", ErrNoCommand
	}

	cmd, ok := lookup(parts[0])
	if !ok {
		return "", &UnknownCommandError{Name: parts[0]}
	}
	if len(parts) < cmd.minArgs {
		return "", &UsageError{Usage: cmd.usage}
	}
	return cmd.run(parts, fsys)
}

func runHelp(_ []string, _ *fs.FileSystem) (string, error) {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range commands {
		fmt.Fprintf(&b, "\n  %-26s %s", c.usage, c.help)
	}
	return b.String(), nil
}

func runClear(_ []string, _ *fs.FileSystem) (string, error) {
	return "\x1b" + terminal.SeqClearScreen, nil
}

func runEcho(args []string, _ *fs.FileSystem) (string, error) {
	return strings.Join(args[1:], " "), nil
}

func runVersion(_ []string, _ *fs.FileSystem) (string, error) {
	return osName + " " + osVersion, nil
}

func runMkdir(args []string, fsys *fs.FileSystem) (string, error) {
	if err := fsys.CreateDirectory("/", args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory '%s' created", args[1]), nil
}

// runTouch reports a name collision with an existing file as an error.
// A directory of the same name does not collide.
func runTouch(args []string, fsys *fs.FileSystem) (string, error) {
	content := strings.Join(args[2:], " ")
	if err := fsys.CreateFile("/", args[1], content); err != nil {
		return "", err
	}
	return fmt.Sprintf("File '%s' created", args[1]), nil
}

func runLs(args []string, fsys *fs.FileSystem) (string, error) {
	names, err := fsys.ListDirectory(args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contents of '%s': %q", args[1], names), nil
}

func runCat(args []string, fsys *fs.FileSystem) (string, error) {
	return fsys.ReadFile("/", args[1])
}

func runRm(args []string, fsys *fs.FileSystem) (string, error) {
	if err := fsys.DeleteNode("/", args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Node '%s' deleted", args[1]), nil
}

func runRename(args []string, fsys *fs.FileSystem) (string, error) {
	if err := fsys.RenameNode("/", args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Node '%s' renamed to '%s'", args[1], args[2]), nil
}

func runStat(_ []string, fsys *fs.FileSystem) (string, error) {
	files, dirs := fsys.Stats()
	return fmt.Sprintf("files=%d directories=%d", files, dirs), nil
}
