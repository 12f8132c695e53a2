package render3d

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Cube dimensions in object space.
const (
	CubeSize = 1.0 // unit cube

	// GridLineWidth is the half-width of the dark lines splitting each face into thirds.
	GridLineWidth = 0.04
)

const (
	halfSize  float32 = CubeSize / 2
	thirdSize float32 = CubeSize / 3

	// minSpacing keeps each float32 step large enough to advance a
	// coordinate near halfSize.
	minSpacing float32 = halfSize * 1e-6
)

// Positions of the two grid lines on each in-plane axis of a face.
var gridLines = [2]float32{-halfSize + thirdSize, halfSize - thirdSize}

// ErrInvalidSpacing is returned for a grid step that would not advance.
var ErrInvalidSpacing = errors.New("render3d: spacing must be a positive number of at least 5e-7")

// Point is a position on one of the cube faces.
type Point Vector3

// AxisRanges are cumulative point counts: points [0, A) lie on the faces
// normal to Z, [A, B) on the faces normal to Y and [B, C) on the faces
// normal to X. C is always the total point count.
type AxisRanges struct {
	A, B, C int
}

// Face identifies one of the six cube faces.
type Face int

const (
	AFront Face = iota // +Z
	ABack              // -Z
	BFront             // +Y
	BBack              // -Y
	CFront             // +X
	CBack              // -X
)

func (f Face) String() string {
	switch f {
	case AFront:
		return "A-front"
	case ABack:
		return "A-back"
	case BFront:
		return "B-front"
	case BBack:
		return "B-back"
	case CFront:
		return "C-front"
	case CBack:
		return "C-back"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Cloud is the static point cloud of the cube.
//
// Points are emitted in pairs, front face first, so within every axis range
// even indices lie on the front face and odd indices on the back face.
// Flags[i] is false for points on a grid line.
type Cloud struct {
	Points []Point
	Flags  []bool
	Ranges AxisRanges
}

// Len returns the number of points.
func (c *Cloud) Len() int {
	return len(c.Points)
}

// Face returns the face point i belongs to.
func (c *Cloud) Face(i int) Face {
	back := Face(i & 1)
	switch {
	case i < c.Ranges.A:
		return AFront + back
	case i < c.Ranges.B:
		return BFront + back
	default:
		return CFront + back
	}
}

// SpacingForWidth returns the grid step used for a terminal width in columns.
func SpacingForWidth(width int) float32 {
	if width <= 0 {
		return 0
	}
	return 3.0 / float32(width)
}

// GenerateCube builds the point cloud for the given grid step.
//
// Each face coordinate runs from -0.5 up to and including 0.5 (while the
// accumulated value is <= 0.5), so the exact count depends on float32
// rounding of the accumulated steps.
func GenerateCube(spacing float32) (*Cloud, error) {
	if !(spacing >= minSpacing) || math32.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpacing, spacing)
	}

	steps := int(CubeSize/spacing) + 2
	capacity := 3 * 2 * steps * steps
	c := &Cloud{
		Points: make([]Point, 0, capacity),
		Flags:  make([]bool, 0, capacity),
	}

	// Axis A: faces normal to Z
	for i := -halfSize; i <= halfSize; i += spacing {
		for j := -halfSize; j <= halfSize; j += spacing {
			c.push(Point{X: j, Y: i, Z: halfSize}, Point{X: j, Y: i, Z: -halfSize}, i, j)
		}
	}
	c.Ranges.A = len(c.Points)

	// Axis B: faces normal to Y
	for j := -halfSize; j <= halfSize; j += spacing {
		for k := -halfSize; k <= halfSize; k += spacing {
			c.push(Point{X: j, Y: halfSize, Z: k}, Point{X: j, Y: -halfSize, Z: k}, j, k)
		}
	}
	c.Ranges.B = len(c.Points)

	// Axis C: faces normal to X
	for k := -halfSize; k <= halfSize; k += spacing {
		for i := -halfSize; i <= halfSize; i += spacing {
			c.push(Point{X: halfSize, Y: i, Z: k}, Point{X: -halfSize, Y: i, Z: k}, k, i)
		}
	}
	c.Ranges.C = len(c.Points)

	return c, nil
}

func (c *Cloud) push(front, back Point, u, v float32) {
	regular := !onGridLine(u) && !onGridLine(v)
	c.Points = append(c.Points, front, back)
	c.Flags = append(c.Flags, regular, regular)
}

func onGridLine(v float32) bool {
	for _, line := range gridLines {
		if v > line-GridLineWidth && v < line+GridLineWidth {
			return true
		}
	}
	return false
}
