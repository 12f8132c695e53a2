// Package animation drives the spinning cube: it advances the rotation,
// renders each frame and paces the loop.
package animation

import (
	"context"
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/sagostin/cubeterm/pkg/ansiterm"
	"github.com/sagostin/cubeterm/pkg/display"
	"github.com/sagostin/cubeterm/pkg/render3d"
	"github.com/sagostin/cubeterm/pkg/stats"
)

// Config controls the animation.
type Config struct {
	// FPSLimit caps the frame rate; 0 renders as fast as possible.
	FPSLimit uint
	// Debug draws the FPS overlay.
	Debug bool
	// Start is the orientation before the first frame.
	Start render3d.Angles
	// Spin is added to the orientation at the start of every frame.
	Spin render3d.Angles
	// LightSource is scaled by Start and normalized once.
	LightSource render3d.Vector3
	// Palette colors the faces and grid lines.
	Palette render3d.Palette
}

// DefaultConfig returns the standard animation: 60 fps, the cube starting
// corner-on and tumbling on all three axes.
func DefaultConfig() Config {
	return Config{
		FPSLimit:    60,
		Start:       render3d.Angles{A: -math32.Pi / 2, B: -math32.Pi / 2, C: math32.Pi/2 + math32.Pi/4},
		Spin:        render3d.Angles{A: 0.03, B: 0.02, C: 0.01},
		LightSource: render3d.DefaultLightSource,
		Palette:     render3d.DefaultPalette,
	}
}

// Driver renders frames of the cube onto a Display.
type Driver struct {
	display *display.Display
	raster  *render3d.Rasterizer
	cfg     Config

	angles render3d.Angles
	light  render3d.Vector3
	stats  *stats.FrameStats

	// replaceable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New builds the point cloud for the display size and returns a Driver.
func New(d *display.Display, cfg Config) (*Driver, error) {
	cloud, err := render3d.GenerateCube(render3d.SpacingForWidth(d.Width()))
	if err != nil {
		return nil, fmt.Errorf("generate cube for width %d: %w", d.Width(), err)
	}
	ansiterm.Debugf("%dx%d screen, %d points, axis ranges %+v", d.Width(), d.Height(), cloud.Len(), cloud.Ranges)

	raster := render3d.NewRasterizer(cloud, d.Width(), d.Height())
	raster.Palette = cfg.Palette

	return &Driver{
		display: d,
		raster:  raster,
		cfg:     cfg,
		angles:  cfg.Start,
		light:   render3d.StartLight(cfg.LightSource, cfg.Start),
		stats:   stats.New(stats.DefaultHistory),
		now:     time.Now,
		sleep:   time.Sleep,
	}, nil
}

// Cloud returns the point cloud being rendered.
func (dr *Driver) Cloud() *render3d.Cloud { return dr.raster.Cloud }

// Stats returns the frame statistics.
func (dr *Driver) Stats() *stats.FrameStats { return dr.stats }

// Angles returns the current orientation.
func (dr *Driver) Angles() render3d.Angles { return dr.angles }

// frameBudget is the minimum frame time for the configured FPS limit.
func (dr *Driver) frameBudget() time.Duration {
	if dr.cfg.FPSLimit == 0 {
		return 0
	}
	return time.Second / time.Duration(dr.cfg.FPSLimit)
}

// Render draws the cube at the current orientation into the framebuffer and
// writes the changed cells to the terminal buffer. It does not flush.
func (dr *Driver) Render() error {
	t := dr.angles.Trig()

	dr.display.BeginFrame()
	lum := render3d.ComputeLuminance(t, dr.light)
	dr.raster.Draw(dr.display.FrameBuffer(), t, lum)

	if _, err := dr.display.Update(); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// Step advances the rotation and produces one complete frame: render,
// pace to the FPS limit, overlay, flush.
func (dr *Driver) Step() error {
	start := dr.now()
	dr.angles = dr.angles.Add(dr.cfg.Spin)

	if err := dr.Render(); err != nil {
		return err
	}

	if budget := dr.frameBudget(); budget > 0 {
		if elapsed := dr.now().Sub(start); elapsed < budget {
			dr.sleep(budget - elapsed)
		}
	}

	dr.stats.Record(dr.now().Sub(start))
	if dr.cfg.Debug {
		if err := dr.display.DrawDebug(dr.stats.Last()); err != nil {
			return fmt.Errorf("draw overlay: %w", err)
		}
	}

	if err := dr.display.Flush(); err != nil {
		return err
	}
	return nil
}

// Run renders frames until ctx is done or a frame fails.
// Cancellation is checked before each frame, so the frame in progress is
// always completed and flushed.
func (dr *Driver) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		if err := dr.Step(); err != nil {
			return err
		}
	}
	ansiterm.Debugf("stopping after %d frames at %+v: %v", dr.stats.Frames(), dr.Angles(), ctx.Err())
	return nil
}
