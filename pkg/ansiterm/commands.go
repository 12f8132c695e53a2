package ansiterm

import (
	"github.com/gdamore/tcell/v2/terminfo"
	// Registers the common terminal descriptions (xterm, screen, vt100, ...).
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// Erase from the start of the line up to the cursor (EL1). terminfo has no
// entry for it, and every VT100 descendant understands it.
const seqEraseLineStartToCursor = "\x1b[1K"

// Fallback describes a plain ANSI terminal. It is used when $TERM is unset
// or has no known description.
var Fallback = &terminfo.Terminfo{
	Name:       "ansi-fallback",
	Colors:     16,
	Clear:      "\x1b[2J",
	EnterCA:    "\x1b[?1049h",
	ExitCA:     "\x1b[?1049l",
	ShowCursor: "\x1b[?25h",
	HideCursor: "\x1b[?25l",
	AttrOff:    "\x1b[0m",
	SetFg:      "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m",
	SetCursor:  "\x1b[%i%p1%d;%p2%dH",
}

// Lookup returns the terminal description for name, or Fallback.
func Lookup(name string) *terminfo.Terminfo {
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		debugf("no terminfo for %q (%v), using %s", name, err, Fallback.Name)
		return Fallback
	}
	debugf("using terminfo %s", ti.Name)
	return ti
}

func (t *Terminal) send(seq string) error {
	_, err := t.WriteString(seq)
	return err
}

// EnterAltBuffer switches to the alternate screen buffer.
func (t *Terminal) EnterAltBuffer() error { return t.send(t.ti.EnterCA) }

// LeaveAltBuffer returns to the normal screen buffer.
func (t *Terminal) LeaveAltBuffer() error { return t.send(t.ti.ExitCA) }

// EraseScreen clears the whole screen.
func (t *Terminal) EraseScreen() error { return t.send(t.ti.Clear) }

// EraseLineStartToCursor clears from the start of the line up to the cursor.
func (t *Terminal) EraseLineStartToCursor() error { return t.send(seqEraseLineStartToCursor) }

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() error { return t.send(t.ti.HideCursor) }

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() error { return t.send(t.ti.ShowCursor) }

// MoveCursor moves the cursor to (row, col), both 1-based.
func (t *Terminal) MoveCursor(row, col int) error {
	return t.send(t.ti.TGoto(col-1, row-1))
}

// SetColor switches the foreground attribute to c.
func (t *Terminal) SetColor(c Color) error {
	return t.send(t.colorSequence(c))
}

// ResetAttributes clears all text attributes.
func (t *Terminal) ResetAttributes() error {
	return t.SetColor(ColorReset)
}

// colorSequence returns the escape text selecting c.
// Unknown values fall back to the reset sequence.
func (t *Terminal) colorSequence(c Color) string {
	if !c.Valid() {
		c = ColorReset
	}
	return t.colors[c]
}

// Setup prepares the terminal for full-screen drawing:
// alternate buffer, cleared screen, hidden cursor.
func (t *Terminal) Setup() error {
	if err := t.EnterAltBuffer(); err != nil {
		return err
	}
	if err := t.EraseScreen(); err != nil {
		return err
	}
	return t.HideCursor()
}

// Restore undoes Setup and flushes. Only the first call has any effect, so it
// is safe to call from both a deferred cleanup and an error path.
//
// Anything still buffered is dropped, together with a previous write error,
// so the restore sequence goes out even after the frame output failed.
func (t *Terminal) Restore() error {
	var err error
	t.restoreOnce.Do(func() {
		debugf("restoring terminal")
		t.out.Reset(t.raw)
		for _, step := range []func() error{t.EraseScreen, t.LeaveAltBuffer, t.ResetAttributes, t.ShowCursor} {
			if err = step(); err != nil {
				return
			}
		}
		err = t.Flush()
	})
	return err
}
