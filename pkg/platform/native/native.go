// Package native provides the OS-backed platform.Console used by the
// brewin CLI: stdout for Print, buffered stdin for ReadLine.
package native

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/go-brewin/pkg/platform"
)

// Console reads from an arbitrary io.Reader and writes to an arbitrary
// io.Writer, defaulting to os.Stdin/os.Stdout.
type Console struct {
	out io.Writer
	in  *bufio.Reader
}

var _ platform.Console = (*Console)(nil)

// NewConsole returns a Console backed by os.Stdin and os.Stdout.
func NewConsole() *Console {
	return NewConsoleWithIO(os.Stdin, os.Stdout)
}

// NewConsoleWithIO returns a Console backed by the given reader/writer,
// letting tests substitute files or buffers for the real terminal.
func NewConsoleWithIO(in io.Reader, out io.Writer) *Console {
	return &Console{out: out, in: bufio.NewReader(in)}
}

// Print implements platform.Console. Each call is one line: the
// original's interpreter.output() (original_source/interpreterv2.py)
// terminates every call with Python's print(), and spec.md §6 delegates
// that newline convention to the host shim rather than dropping it.
func (c *Console) Print(s string) {
	io.WriteString(c.out, s)
	io.WriteString(c.out, "\n")
}

// ReadLine implements platform.Console.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
