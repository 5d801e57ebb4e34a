// Package output provides terminal output helpers: a small structured logger
// and colorizers for diffs and status rows.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{writer: os.Stdout}
}

// NewSplogWriter creates a splog writing to w
func NewSplogWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "✖ "+format+"\n", args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}

// Page writes raw content
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// IsTerminal reports whether stdout is a TTY; colorized output is only
// produced for terminals.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
