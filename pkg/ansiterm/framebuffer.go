package ansiterm

import (
	"fmt"
	"strings"
)

// FrameBuffer holds one frame of character cells plus the previous frame.
//
// All buffers are flat and indexed by y*width + x:
//   - chars: the glyph drawn in each cell
//   - colors: the color of each glyph
//   - depth: inverse depth ("one over z") of the point that won the cell; 0 = empty
//
// prevChars and prevColors hold the previous frame so that only changed
// cells need to be sent to the terminal.
type FrameBuffer struct {
	width  int
	height int

	chars  []byte
	colors []Color
	depth  []float32

	prevChars  []byte
	prevColors []Color
}

// Blank is the glyph of an empty cell.
const Blank = ' '

// NewFrameBuffer creates a blank width x height framebuffer.
// The previous-frame snapshot is blank too, so the first diff only
// contains cells that were actually drawn.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height
	fb := &FrameBuffer{
		width:      width,
		height:     height,
		chars:      make([]byte, n),
		colors:     make([]Color, n),
		depth:      make([]float32, n),
		prevChars:  make([]byte, n),
		prevColors: make([]Color, n),
	}
	fb.Clear()
	copy(fb.prevChars, fb.chars)
	copy(fb.prevColors, fb.colors)
	return fb
}

// Width of the framebuffer in cells.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height of the framebuffer in cells.
func (fb *FrameBuffer) Height() int { return fb.height }

// Len returns width*height.
func (fb *FrameBuffer) Len() int { return len(fb.chars) }

// Clear resets every cell to blank, reset color and zero depth.
func (fb *FrameBuffer) Clear() {
	for i := range fb.chars {
		fb.chars[i] = Blank
		fb.colors[i] = ColorReset
		fb.depth[i] = 0
	}
}

// BeginFrame snapshots the current frame into the previous-frame buffers
// and clears the current frame.
func (fb *FrameBuffer) BeginFrame() {
	fb.checkLengths()
	copy(fb.prevChars, fb.chars)
	copy(fb.prevColors, fb.colors)
	fb.Clear()
}

// Plot draws glyph in color c at index if ooz is strictly greater than the
// depth already stored there. Indices outside the buffer are dropped.
// Reports whether the cell was written.
func (fb *FrameBuffer) Plot(index int, ooz float32, glyph byte, c Color) bool {
	if index < 0 || index >= len(fb.chars) {
		return false
	}
	if !(ooz > fb.depth[index]) {
		return false
	}
	fb.depth[index] = ooz
	fb.colors[index] = c
	fb.chars[index] = glyph
	return true
}

// At returns the glyph and color at index.
// Returns a blank reset cell for out-of-bounds indices.
func (fb *FrameBuffer) At(index int) (byte, Color) {
	if index < 0 || index >= len(fb.chars) {
		return Blank, ColorReset
	}
	return fb.chars[index], fb.colors[index]
}

// Depth returns the inverse depth stored at index, 0 when out of bounds.
func (fb *FrameBuffer) Depth(index int) float32 {
	if index < 0 || index >= len(fb.depth) {
		return 0
	}
	return fb.depth[index]
}

// Changed reports whether the cell at index differs from the previous frame
// in glyph or color.
func (fb *FrameBuffer) Changed(index int) bool {
	return fb.chars[index] != fb.prevChars[index] || fb.colors[index] != fb.prevColors[index]
}

// String returns the glyphs as plain text, one line per row.
func (fb *FrameBuffer) String() string {
	var b strings.Builder
	b.Grow(len(fb.chars) + fb.height)
	for y := 0; y < fb.height; y++ {
		b.Write(fb.chars[y*fb.width : (y+1)*fb.width])
		b.WriteByte('\n')
	}
	return b.String()
}

func (fb *FrameBuffer) checkLengths() {
	n := fb.width * fb.height
	if len(fb.chars) != n || len(fb.colors) != n || len(fb.depth) != n ||
		len(fb.prevChars) != n || len(fb.prevColors) != n {
		panic(fmt.Sprintf("ansiterm: framebuffer length mismatch: want %d, chars=%d colors=%d depth=%d prev=%d/%d",
			n, len(fb.chars), len(fb.colors), len(fb.depth), len(fb.prevChars), len(fb.prevColors)))
	}
}
