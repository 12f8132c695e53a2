// Package display provides a high-level interface for drawing frames on a terminal.
package display

import (
	"github.com/sagostin/cubeterm/pkg/ansiterm"
)

// Display owns a terminal and the framebuffer drawn onto it.
type Display struct {
	term *ansiterm.Terminal
	fb   *ansiterm.FrameBuffer
}

// New creates a Display for a width x height terminal.
func New(term *ansiterm.Terminal, width, height int) *Display {
	return &Display{
		term: term,
		fb:   ansiterm.NewFrameBuffer(width, height),
	}
}

// NewStdout creates a width x height Display on standard output.
// The output buffer holds three bytes per cell, enough for a typical frame diff.
func NewStdout(width, height int) *Display {
	return New(ansiterm.Stdout(width*height*3), width, height)
}

// Open prepares the terminal for drawing.
func (d *Display) Open() error {
	return d.term.Setup()
}

// Close restores the terminal. Safe to call more than once.
func (d *Display) Close() error {
	return d.term.Restore()
}

// Terminal returns the underlying terminal for advanced operations.
func (d *Display) Terminal() *ansiterm.Terminal {
	return d.term
}

// FrameBuffer returns the underlying framebuffer for drawing.
func (d *Display) FrameBuffer() *ansiterm.FrameBuffer {
	return d.fb
}

// Width in cells.
func (d *Display) Width() int { return d.fb.Width() }

// Height in cells.
func (d *Display) Height() int { return d.fb.Height() }

// BeginFrame snapshots the last frame and clears the framebuffer.
func (d *Display) BeginFrame() {
	d.fb.BeginFrame()
}

// Update writes the cells that changed since the previous frame.
// Returns the number of cells written. Output stays buffered until Flush.
func (d *Display) Update() (int, error) {
	return WriteDiff(d.term, d.fb)
}

// Flush sends the buffered frame to the terminal.
func (d *Display) Flush() error {
	return d.term.Flush()
}
