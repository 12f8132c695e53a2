package render3d

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/sagostin/cubeterm/pkg/ansiterm"
)

// K2 is the distance from the viewer to the cube center.
const K2 = 10.0

// LuminanceRamp lists glyphs from darkest to brightest.
const LuminanceRamp = ".,-~:;=!*#$@"

// luminanceTolerance absorbs float32 rounding of dot products between unit vectors.
const luminanceTolerance = 1e-4

// Glyph returns the ramp glyph for a luminance in [-1, 1].
// Non-positive luminance gets the darkest glyph.
func Glyph(luminance float32) byte {
	if !(luminance > 0) {
		return LuminanceRamp[0]
	}
	idx := int(luminance * float32(len(LuminanceRamp)-1))
	if idx >= len(LuminanceRamp) {
		idx = len(LuminanceRamp) - 1
	}
	return LuminanceRamp[idx]
}

// Palette maps every face, and grid lines, to a terminal color.
type Palette struct {
	Faces [6]ansiterm.Color
	Grid  ansiterm.Color
}

// DefaultPalette is the classic cube coloring.
var DefaultPalette = Palette{
	Faces: [6]ansiterm.Color{
		AFront: ansiterm.Yellow,
		ABack:  ansiterm.White,
		BFront: ansiterm.Green,
		BBack:  ansiterm.Blue,
		CFront: ansiterm.BrightRed,
		CBack:  ansiterm.Red,
	},
	Grid: ansiterm.Black,
}

// Projection maps rotated points to framebuffer cells.
type Projection struct {
	Width  int
	Height int
	K1     float32 // screen scale
}

// NewProjection returns the projection that fits the cube into a width x height screen.
func NewProjection(width, height int) Projection {
	return Projection{
		Width:  width,
		Height: height,
		K1:     (float32(width) * K2 * 3) / (8 * (math32.Sqrt(3) * CubeSize)),
	}
}

// Project returns the flat cell index of a rotated point and its inverse depth.
// The index may lie outside the screen; callers drop such points.
func (p Projection) Project(v Vector3) (index int, ooz float32) {
	ooz = 1 / (v.Z + K2) // "one over z"

	xp := int(float32(p.Width)/2 + p.K1*ooz*v.X)
	yp := int(float32(p.Height)/2 - p.K1*ooz*v.Y)

	return xp + yp*p.Width, ooz
}

// Rasterizer draws a point cloud into a framebuffer.
type Rasterizer struct {
	Cloud   *Cloud
	Proj    Projection
	Palette Palette
}

// NewRasterizer creates a rasterizer for a cloud on a width x height screen.
func NewRasterizer(cloud *Cloud, width, height int) *Rasterizer {
	return &Rasterizer{
		Cloud:   cloud,
		Proj:    NewProjection(width, height),
		Palette: DefaultPalette,
	}
}

// Draw rotates, projects and depth tests every point of the cloud into fb.
// fb must have been cleared for the frame. Returns the number of points that
// won their cell at the time they were drawn.
func (r *Rasterizer) Draw(fb *ansiterm.FrameBuffer, t Trig, lum AxesLuminance) int {
	if fb.Width() != r.Proj.Width || fb.Height() != r.Proj.Height {
		panic(fmt.Sprintf("render3d: framebuffer is %dx%d, projection is %dx%d",
			fb.Width(), fb.Height(), r.Proj.Width, r.Proj.Height))
	}

	var glyphs [6]byte
	for f := AFront; f <= CBack; f++ {
		l := lum.Face(f)
		if l > 1+luminanceTolerance {
			panic(fmt.Sprintf("render3d: luminance %v of face %v exceeds 1", l, f))
		}
		glyphs[f] = Glyph(l)
	}

	drawn := 0
	cloud := r.Cloud
	for i, p := range cloud.Points {
		face := cloud.Face(i)
		color := r.Palette.Grid
		if cloud.Flags[i] {
			color = r.Palette.Faces[face]
		}

		index, ooz := r.Proj.Project(Vector3(p).Rotate(t))
		if fb.Plot(index, ooz, glyphs[face], color) {
			drawn++
		}
	}
	return drawn
}
