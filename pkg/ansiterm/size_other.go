//go:build !unix

package ansiterm

func querySize(fd uintptr) (cols, rows int, err error) {
	return 0, 0, ErrSizeUnavailable
}
