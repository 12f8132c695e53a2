package ansiterm

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// Fallback dimensions used when the terminal cannot be queried.
const (
	DefaultWidth  = 100
	DefaultHeight = 5
)

// ErrSizeUnavailable is returned when the terminal size cannot be determined.
var ErrSizeUnavailable = errors.New("terminal size unavailable")

// Size returns the column and row count of the terminal attached to f.
func Size(f *os.File) (cols, rows int, err error) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return 0, 0, ErrSizeUnavailable
	}
	cols, rows, err = querySize(f.Fd())
	if err != nil {
		return 0, 0, err
	}
	if cols == 0 || rows == 0 {
		return 0, 0, ErrSizeUnavailable
	}
	return cols, rows, nil
}

// SizeOrDefault returns the terminal size, or DefaultWidth x DefaultHeight
// when it cannot be determined.
func SizeOrDefault(f *os.File) (cols, rows int) {
	cols, rows, err := Size(f)
	if err != nil {
		debugf("size query failed: %v, using %dx%d", err, DefaultWidth, DefaultHeight)
		return DefaultWidth, DefaultHeight
	}
	debugf("terminal size %dx%d", cols, rows)
	return cols, rows
}
