package display

import (
	"github.com/sagostin/cubeterm/pkg/ansiterm"
)

// CellWriter receives the operations of a frame diff.
type CellWriter interface {
	MoveCursor(row, col int) error
	SetColor(c ansiterm.Color) error
	WriteByte(b byte) error
}

// WriteDiff emits every cell whose glyph or color changed since the previous
// frame, in row-major order: cursor position, then the color if it differs
// from the last color emitted during this scan, then the glyph.
// Returns the number of cells written.
func WriteDiff(w CellWriter, fb *ansiterm.FrameBuffer) (int, error) {
	width := fb.Width()
	current := ansiterm.ColorReset
	written := 0

	for index := 0; index < fb.Len(); index++ {
		if !fb.Changed(index) {
			continue
		}
		glyph, color := fb.At(index)

		if err := w.MoveCursor(index/width+1, index%width+1); err != nil {
			return written, err
		}
		if color != current {
			if err := w.SetColor(color); err != nil {
				return written, err
			}
			current = color
		}
		if err := w.WriteByte(glyph); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
