package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sagostin/cubeterm/pkg/animation"
	"github.com/sagostin/cubeterm/pkg/ansiterm"
	"github.com/sagostin/cubeterm/pkg/display"
	"github.com/sagostin/cubeterm/pkg/render3d"
)

// cmdSnapshot renders one frame at the start orientation and prints it as
// plain text, without any escape sequences.
func cmdSnapshot() error {
	cfg, err := config()
	if err != nil {
		return err
	}

	w, h := screenSize()
	text, err := snapshot(w, h, cfg)
	if err != nil {
		return err
	}

	_, err = io.WriteString(os.Stdout, text)
	return err
}

func snapshot(w, h int, cfg animation.Config) (string, error) {
	// Escapes go nowhere; only the framebuffer contents are printed.
	disp := display.New(ansiterm.New(io.Discard, 0), w, h)

	driver, err := animation.New(disp, cfg)
	if err != nil {
		return "", err
	}
	if err := driver.Render(); err != nil {
		return "", err
	}
	return disp.FrameBuffer().String(), nil
}

// parseAngles parses "a,b,c" in radians.
func parseAngles(s string) (render3d.Angles, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return render3d.Angles{}, fmt.Errorf("angles must be a,b,c: %q", s)
	}

	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return render3d.Angles{}, fmt.Errorf("invalid angle %q: %w", p, err)
		}
		v[i] = float32(f)
	}
	return render3d.Angles{A: v[0], B: v[1], C: v[2]}, nil
}
