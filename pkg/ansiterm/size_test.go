package ansiterm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSize_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := Size(f); !errors.Is(err, ErrSizeUnavailable) {
		t.Errorf("Expected ErrSizeUnavailable for a regular file, got %v", err)
	}

	cols, rows := SizeOrDefault(f)
	if cols != DefaultWidth || rows != DefaultHeight {
		t.Errorf("Expected fallback %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cols, rows)
	}
}
