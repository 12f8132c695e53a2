// Package ansiterm provides low-level output to an ANSI/VT100 compatible terminal.
//
// Everything the renderer sends to the screen goes through a Terminal: glyphs,
// cursor addressing, color changes and the alternate-buffer setup/restore
// sequences. Output is buffered and only reaches the terminal on Flush.
package ansiterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/mattn/go-colorable"
)

// DefaultBufferSize is used when a Terminal is created without a size hint.
const DefaultBufferSize = 4096

// Verbose enables debug output when set to true
var Verbose = false

var debugOut io.Writer = os.Stderr

// SetVerbose enables or disables verbose debug output globally
func SetVerbose(v bool) {
	Verbose = v
}

// SetDebugOutput redirects debug output. Stdout carries the frames, so
// diagnostics default to stderr and can be sent to a file instead.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

// debugf prints debug output if verbose mode is enabled
func debugf(format string, args ...interface{}) {
	if Verbose {
		fmt.Fprintf(debugOut, "[cubeterm] "+format+"\n", args...)
	}
}

// Debugf is debugf for the other cubeterm packages.
func Debugf(format string, args ...interface{}) {
	debugf(format, args...)
}

// Terminal is a buffered writer for terminal control sequences and glyphs.
// Control sequences come from a terminfo description.
type Terminal struct {
	raw     io.Writer
	out     *bufio.Writer
	ti      *terminfo.Terminfo
	colors  [numColors]string
	written int64

	restoreOnce sync.Once
}

// New wraps w in a Terminal with a write buffer of size bufSize, using the
// plain ANSI Fallback description.
// A bufSize <= 0 selects DefaultBufferSize.
func New(w io.Writer, bufSize int) *Terminal {
	return NewTerminfo(w, bufSize, Fallback)
}

// NewTerminfo is New with an explicit terminal description.
// A nil ti selects Fallback.
func NewTerminfo(w io.Writer, bufSize int, ti *terminfo.Terminfo) *Terminal {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	if ti == nil {
		ti = Fallback
	}
	t := &Terminal{
		raw: w,
		out: bufio.NewWriterSize(w, bufSize),
		ti:  ti,
	}
	for c := ColorReset; c < numColors; c++ {
		if c == ColorReset {
			t.colors[c] = ti.AttrOff
			continue
		}
		t.colors[c] = ti.TColor(colorIndex[c], -1)
	}
	return t
}

// Stdout returns a Terminal writing to the process standard output, described
// by $TERM. On platforms without native escape handling the output is
// translated by go-colorable.
func Stdout(bufSize int) *Terminal {
	return NewTerminfo(colorable.NewColorableStdout(), bufSize, Lookup(os.Getenv("TERM")))
}

// Write buffers raw bytes.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	t.written += int64(n)
	if err != nil {
		return n, fmt.Errorf("terminal write: %w", err)
	}
	return n, nil
}

// WriteString buffers a string.
func (t *Terminal) WriteString(s string) (int, error) {
	n, err := t.out.WriteString(s)
	t.written += int64(n)
	if err != nil {
		return n, fmt.Errorf("terminal write: %w", err)
	}
	return n, nil
}

// WriteByte buffers a single glyph.
func (t *Terminal) WriteByte(b byte) error {
	if err := t.out.WriteByte(b); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	t.written++
	return nil
}

// Flush sends all buffered data to the underlying writer.
func (t *Terminal) Flush() error {
	if err := t.out.Flush(); err != nil {
		debugf("flush failed: %v", err)
		return fmt.Errorf("terminal flush: %w", err)
	}
	return nil
}

// Written returns the number of bytes buffered since the Terminal was created.
func (t *Terminal) Written() int64 {
	return t.written
}
