// cubeterm renders a spinning Rubik's-style cube as colored ASCII art.
//
// Usage:
//
//	cubeterm [options] [command]
//
// Commands:
//
//	run        Animate the cube until interrupted (default)
//	snapshot   Print a single frame as plain text
//	info       Show screen size and point cloud details
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sagostin/cubeterm/pkg/animation"
	"github.com/sagostin/cubeterm/pkg/ansiterm"
	"github.com/sagostin/cubeterm/pkg/display"
	"github.com/sagostin/cubeterm/pkg/render3d"
	"github.com/sagostin/cubeterm/pkg/stats"
)

var (
	debugInfo = flag.Bool("debug", false, "Show FPS and frame timing overlay and print a summary on exit")
	fpsLimit  = flag.Uint("fps-limit", 60, "Frame rate cap (0 = uncapped)")
	width     = flag.Int("width", 0, "Screen width in columns (0 = terminal width)")
	height    = flag.Int("height", 0, "Screen height in rows (0 = terminal height)")
	angles    = flag.String("angles", "", "Start orientation as a,b,c radians (default -1.5708,-1.5708,2.3562)")
	verbose   = flag.Bool("v", false, "Verbose output")
	logPath   = flag.String("log", "", "Write verbose output to this file instead of stderr")
)

func init() {
	flag.BoolVar(debugInfo, "d", false, "Shorthand for -debug")
	flag.UintVar(fpsLimit, "f", 60, "Shorthand for -fps-limit")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [command]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  run        Animate the cube until interrupted (default)")
		fmt.Fprintln(os.Stderr, "  snapshot   Print a single frame as plain text")
		fmt.Fprintln(os.Stderr, "  info       Show screen size and point cloud details")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *verbose {
		ansiterm.SetVerbose(true)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		ansiterm.SetDebugOutput(f)
	}

	cmd := "run"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	var err error
	switch cmd {
	case "run":
		err = cmdRun()
	case "snapshot":
		err = cmdSnapshot()
	case "info":
		err = cmdInfo()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// screenSize applies the -width/-height overrides on top of the detected
// terminal size.
func screenSize() (int, int) {
	w, h := *width, *height
	if w <= 0 || h <= 0 {
		cols, rows := ansiterm.SizeOrDefault(os.Stdout)
		if w <= 0 {
			w = cols
		}
		if h <= 0 {
			h = rows
		}
	}
	return w, h
}

func config() (animation.Config, error) {
	cfg := animation.DefaultConfig()
	cfg.FPSLimit = *fpsLimit
	cfg.Debug = *debugInfo
	if *angles != "" {
		start, err := parseAngles(*angles)
		if err != nil {
			return cfg, err
		}
		cfg.Start = start
	}
	return cfg, nil
}

func cmdRun() error {
	cfg, err := config()
	if err != nil {
		return err
	}

	w, h := screenSize()
	disp := display.NewStdout(w, h)

	driver, err := animation.New(disp, cfg)
	if err != nil {
		return err
	}

	// Interrupts cancel the context; the loop finishes the current frame first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := disp.Open()
	if runErr == nil {
		runErr = driver.Run(ctx)
	}
	if err := disp.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	if *debugInfo {
		return driver.Stats().WriteSummary(os.Stdout, stats.Summary{
			Width:  w,
			Height: h,
			Points: driver.Cloud().Len(),
		})
	}
	return nil
}

func cmdInfo() error {
	w, h := screenSize()
	spacing := render3d.SpacingForWidth(w)
	cloud, err := render3d.GenerateCube(spacing)
	if err != nil {
		return err
	}
	proj := render3d.NewProjection(w, h)

	fmt.Printf("Width: %d | Height: %d\n", w, h)
	fmt.Printf("Spacing: %.5f\n", spacing)
	fmt.Printf("Scale (K1): %.3f\n", proj.K1)
	fmt.Printf("Points: %d\n", cloud.Len())
	fmt.Printf("Axis ranges: A=%d B=%d C=%d\n", cloud.Ranges.A, cloud.Ranges.B, cloud.Ranges.C)
	return nil
}
