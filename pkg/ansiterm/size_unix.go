//go:build unix

package ansiterm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func querySize(fd uintptr) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: ioctl TIOCGWINSZ: %v", ErrSizeUnavailable, err)
	}
	return int(ws.Col), int(ws.Row), nil
}
