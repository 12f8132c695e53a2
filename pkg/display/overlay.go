package display

import (
	"fmt"
	"time"

	"github.com/sagostin/cubeterm/pkg/stats"
)

// Overlay columns, right after the width of the rendered text.
const (
	fpsColumn    = 1 + 11
	timingColumn = 1 + 22
)

// DrawDebug writes the FPS and frame time in the top-left corner:
//
//	   60.00fps
//	   16.67ms (  16667us)
//
// Each line is cleared from its start up to the end of the text first.
// The overlay is written straight to the terminal and is not part of the
// framebuffer.
func (d *Display) DrawDebug(frame time.Duration) error {
	us := frame.Microseconds()
	fps := stats.FPS(frame)
	ms := float64(us) / 1000

	if err := d.clearLineTo(1, fpsColumn); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(d.term, "%8.2ffps", fps); err != nil {
		return err
	}

	if err := d.clearLineTo(2, timingColumn); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(d.term, "%8.2fms (%7dus)", ms, us); err != nil {
		return err
	}
	return nil
}

func (d *Display) clearLineTo(row, col int) error {
	if err := d.term.MoveCursor(row, col); err != nil {
		return err
	}
	if err := d.term.ResetAttributes(); err != nil {
		return err
	}
	if err := d.term.EraseLineStartToCursor(); err != nil {
		return err
	}
	return d.term.WriteByte('\r')
}

