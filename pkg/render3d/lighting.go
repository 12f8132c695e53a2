package render3d

// FacePair holds the luminance of the front and back face of one axis.
type FacePair struct {
	Front, Back float32
}

// AxesLuminance is the luminance of all six faces for one orientation.
// Values lie in [-1, 1]; positive means the face is turned towards the light.
type AxesLuminance struct {
	A, B, C FacePair
}

// Face returns the luminance of f.
func (l AxesLuminance) Face(f Face) float32 {
	switch f {
	case AFront:
		return l.A.Front
	case ABack:
		return l.A.Back
	case BFront:
		return l.B.Front
	case BBack:
		return l.B.Back
	case CFront:
		return l.C.Front
	case CBack:
		return l.C.Back
	}
	return 0
}

// Object-space face normals, indexed by Face.
var faceNormals = [6]Vector3{
	AFront: {0, 0, CubeSize},
	ABack:  {0, 0, -CubeSize},
	BFront: {0, CubeSize, 0},
	BBack:  {0, -CubeSize, 0},
	CFront: {CubeSize, 0, 0},
	CBack:  {-CubeSize, 0, 0},
}

// ComputeLuminance rotates the six face normals by t and shades them against
// light, which must already be rotated and normalized.
func ComputeLuminance(t Trig, light Vector3) AxesLuminance {
	var lum [6]float32
	for f, n := range faceNormals {
		lum[f] = n.Rotate(t).Normalize().Dot(light)
	}
	return AxesLuminance{
		A: FacePair{lum[AFront], lum[ABack]},
		B: FacePair{lum[BFront], lum[BBack]},
		C: FacePair{lum[CFront], lum[CBack]},
	}
}

// DefaultLightSource is the object-space light position before scaling.
var DefaultLightSource = Vector3{X: 0, Y: 0.5, Z: -0.5}

// StartLight scales the light source by the starting orientation and
// normalizes it: (x, y/start.A, z/start.C). With the default start angles
// this tilts the light so the first frames are shaded evenly.
// Zero angles leave the corresponding component unscaled.
func StartLight(src Vector3, start Angles) Vector3 {
	l := src
	if start.A != 0 {
		l.Y /= start.A
	}
	if start.C != 0 {
		l.Z /= start.C
	}
	return l.Normalize()
}
