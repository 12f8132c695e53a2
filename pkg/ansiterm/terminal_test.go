package ansiterm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2/terminfo"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminal_MoveCursor(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 0)

	if err := term.MoveCursor(3, 12); err != nil {
		t.Fatal(err)
	}
	if err := term.MoveCursor(1, 1); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("Nothing should reach the writer before Flush")
	}
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[3;12H\x1b[1;1H"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}
}

func TestTerminal_SetColor(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 0)

	term.SetColor(Yellow)
	term.WriteByte('@')
	term.ResetAttributes()
	term.Flush()

	want := "\x1b[33m@\x1b[0m"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}
	if term.Written() != int64(len(want)) {
		t.Errorf("Written() = %d, want %d", term.Written(), len(want))
	}
}

func TestTerminal_Setup(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 0)

	if err := term.Setup(); err != nil {
		t.Fatal(err)
	}
	term.Flush()

	want := "\x1b[?1049h\x1b[2J\x1b[?25l"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}
}

func TestTerminal_RestoreOnce(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 0)

	if err := term.Restore(); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[2J\x1b[?1049l\x1b[0m\x1b[?25h"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}

	// Second call is a no-op
	if err := term.Restore(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("Restore should only write once, got %q", buf.String())
	}
}

func TestTerminal_FlushError(t *testing.T) {
	term := New(failingWriter{}, 16)

	term.WriteString("hello")
	if err := term.Flush(); err == nil {
		t.Error("Flush to a failing writer should return an error")
	}
}

// flakyWriter fails the first write and accepts everything after it.
type flakyWriter struct {
	failed bool
	buf    bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if !w.failed {
		w.failed = true
		return 0, errors.New("transient")
	}
	return w.buf.Write(p)
}

func TestTerminal_RestoreAfterWriteError(t *testing.T) {
	w := &flakyWriter{}
	term := New(w, 0)

	if err := term.Setup(); err != nil {
		t.Fatal(err)
	}
	if err := term.Flush(); err == nil {
		t.Fatal("First flush should fail")
	}
	// bufio keeps the error, so ordinary writes keep failing
	if _, err := term.WriteString("x"); err == nil {
		t.Error("Writes after a failed flush should fail")
	}

	if err := term.Restore(); err != nil {
		t.Fatalf("Restore after a write error: %v", err)
	}
	want := "\x1b[2J\x1b[?1049l\x1b[0m\x1b[?25h"
	if w.buf.String() != want {
		t.Errorf("Got %q, want %q", w.buf.String(), want)
	}
}

func TestTerminal_ColorSequences(t *testing.T) {
	term := New(&bytes.Buffer{}, 0)

	if numColors < 13 {
		t.Fatalf("Palette should contain reset plus at least 12 colors, got %d", numColors)
	}

	seen := make(map[string]Color)
	for c := ColorReset; c < numColors; c++ {
		seq := term.colorSequence(c)
		if len(seq) < 4 || seq[0] != 0x1b || seq[len(seq)-1] != 'm' {
			t.Errorf("Color %v has malformed sequence %q", c, seq)
		}
		if prev, ok := seen[seq]; ok {
			t.Errorf("Colors %v and %v share sequence %q", prev, c, seq)
		}
		seen[seq] = c
		if !c.Valid() {
			t.Errorf("Palette color %v should be valid", c)
		}
	}

	for c, want := range map[Color]string{
		ColorReset:  "\x1b[0m",
		Black:       "\x1b[30m",
		White:       "\x1b[37m",
		BrightBlack: "\x1b[90m",
		BrightRed:   "\x1b[91m",
		BrightWhite: "\x1b[97m",
	} {
		if got := term.colorSequence(c); got != want {
			t.Errorf("%v: got %q, want %q", c, got, want)
		}
	}

	bogus := Color(200)
	if bogus.Valid() {
		t.Error("Color(200) should not be valid")
	}
	if term.colorSequence(bogus) != term.colorSequence(ColorReset) {
		t.Error("Unknown colors should fall back to reset")
	}
	if bogus.String() != "unknown" {
		t.Errorf("Unknown color name = %q", bogus.String())
	}
	if BrightRed.String() != "bright-red" {
		t.Errorf("BrightRed.String() = %q", BrightRed.String())
	}
}

func TestLookup(t *testing.T) {
	if ti := Lookup("no-such-terminal"); ti != Fallback {
		t.Errorf("Unknown terminal should use the fallback, got %s", ti.Name)
	}
	if ti := Lookup(""); ti != Fallback {
		t.Errorf("Empty TERM should use the fallback, got %s", ti.Name)
	}

	ti := Lookup("xterm")
	if ti == Fallback {
		t.Fatal("xterm should have a terminfo description")
	}
	if ti.EnterCA == "" || ti.SetCursor == "" {
		t.Error("xterm description is missing alternate buffer or cursor addressing")
	}
}

func TestNewTerminfo_UsesDescription(t *testing.T) {
	var buf bytes.Buffer
	ti := &terminfo.Terminfo{
		Name:      "test",
		Colors:    8,
		AttrOff:   "<off>",
		SetFg:     "<fg%p1%d>",
		SetCursor: "<%p1%d,%p2%d>",
	}
	term := NewTerminfo(&buf, 0, ti)

	term.MoveCursor(3, 12)
	term.SetColor(Green)
	// Only 8 colors: bright colors map to their normal counterpart
	term.SetColor(BrightGreen)
	term.ResetAttributes()
	term.Flush()

	want := "<2,11><fg2><fg2><off>"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}
}
