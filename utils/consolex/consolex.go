// File: consolex.go
// Title: Console I/O Utilities
// Description: Implements line-oriented console output and input. Print
//              writes the textual form of its arguments separated by a
//              configurable separator and ended by a configurable
//              terminator; Input writes an optional prompt and reads one
//              line without its line ending.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with Print and Input

package consolex

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/msto63/pyutils/utils/stringx"
)

// Default output formatting
const (
	DefaultSeparator  = " "
	DefaultTerminator = "\n"
)

// Options controls how Print formats its arguments
type Options struct {
	Separator  string // written between consecutive arguments
	Terminator string // written after the last argument
}

// DefaultOptions returns a single space separator and a newline terminator
func DefaultOptions() Options {
	return Options{
		Separator:  DefaultSeparator,
		Terminator: DefaultTerminator,
	}
}

// Console couples an output and an input stream. All methods are safe for
// concurrent use; each call holds the console for its whole duration.
type Console struct {
	mutex   sync.Mutex
	out     io.Writer
	in      *bufio.Reader
	options Options
}

// New creates a console writing to out and reading from in. A nil stream
// is replaced by io.Discard or an empty reader respectively.
func New(out io.Writer, in io.Reader) *Console {
	return NewWithOptions(out, in, DefaultOptions())
}

// NewWithOptions creates a console with explicit formatting options
func NewWithOptions(out io.Writer, in io.Reader, options Options) *Console {
	if out == nil {
		out = io.Discard
	}
	if in == nil {
		in = strings.NewReader("")
	}
	return &Console{
		out:     out,
		in:      bufio.NewReader(in),
		options: options,
	}
}

// Options returns the formatting options in use
func (c *Console) Options() Options {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.options
}

// SetOptions replaces the formatting options
func (c *Console) SetOptions(options Options) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.options = options
}

// Print writes the textual form of every argument, separated by the
// separator and followed by the terminator. Without arguments only the
// terminator is written.
func (c *Console) Print(args ...any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(c.options.Separator)
		}
		sb.WriteString(stringx.Str(arg))
	}
	sb.WriteString(c.options.Terminator)

	_, err := io.WriteString(c.out, sb.String())
	return err
}

// Input writes prompt, if it is non-empty, and returns the next line of
// input without its trailing "\n" or "\r\n". At end of input the text read
// so far is returned, which is "" when nothing was left.
func (c *Console) Input(prompt string) string {
	line, _ := c.ReadLine(prompt)
	return line
}

// ReadLine behaves like Input and additionally reports whether a line was
// available. It returns false only when the input was already exhausted.
func (c *Console) ReadLine(prompt string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if prompt != "" {
		_, _ = io.WriteString(c.out, prompt)
		if f, ok := c.out.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

// ===============================
// Package Level Console
// ===============================

var (
	defaultConsole   = New(os.Stdout, os.Stdin)
	defaultConsoleMu sync.RWMutex
)

// Default returns the console bound to standard output and standard input
func Default() *Console {
	defaultConsoleMu.RLock()
	defer defaultConsoleMu.RUnlock()
	return defaultConsole
}

// SetDefault replaces the console used by the package level functions. A
// nil console is ignored.
func SetDefault(c *Console) {
	if c == nil {
		return
	}
	defaultConsoleMu.Lock()
	defer defaultConsoleMu.Unlock()
	defaultConsole = c
}

// Print writes args to the default console
func Print(args ...any) error {
	return Default().Print(args...)
}

// Input reads a line from the default console
func Input(prompt string) string {
	return Default().Input(prompt)
}
