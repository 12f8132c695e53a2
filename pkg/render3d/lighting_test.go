package render3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestComputeLuminance_IdentityOrientation(t *testing.T) {
	light := Vector3{0, 1, -1}.Normalize()
	lum := ComputeLuminance(Identity, light)

	halfSqrt2 := math32.Sqrt(2) / 2

	if !near(lum.A.Front, -halfSqrt2) {
		t.Errorf("A front: expected %v, got %v", -halfSqrt2, lum.A.Front)
	}
	if !near(lum.A.Back, halfSqrt2) {
		t.Errorf("A back: expected %v, got %v", halfSqrt2, lum.A.Back)
	}
	if !near(lum.B.Front, halfSqrt2) || !near(lum.B.Back, -halfSqrt2) {
		t.Errorf("B: unexpected %+v", lum.B)
	}
	if !near(lum.C.Front, 0) || !near(lum.C.Back, 0) {
		t.Errorf("C faces are perpendicular to the light, got %+v", lum.C)
	}
}

func TestComputeLuminance_Range(t *testing.T) {
	light := StartLight(DefaultLightSource, Angles{-math32.Pi / 2, -math32.Pi / 2, 3 * math32.Pi / 4})

	for step := 0; step < 200; step++ {
		a := Angles{float32(step) * 0.03, float32(step) * 0.02, float32(step) * 0.01}
		lum := ComputeLuminance(a.Trig(), light)
		for f := AFront; f <= CBack; f++ {
			l := lum.Face(f)
			if l < -1-luminanceTolerance || l > 1+luminanceTolerance {
				t.Fatalf("Step %d face %v: luminance %v out of range", step, f, l)
			}
		}
		// Opposite faces are opposite normals
		if !near(lum.A.Front, -lum.A.Back) || !near(lum.B.Front, -lum.B.Back) || !near(lum.C.Front, -lum.C.Back) {
			t.Fatalf("Step %d: opposite faces should have opposite luminance: %+v", step, lum)
		}
	}
}

func TestAxesLuminance_Face(t *testing.T) {
	lum := AxesLuminance{
		A: FacePair{0.1, 0.2},
		B: FacePair{0.3, 0.4},
		C: FacePair{0.5, 0.6},
	}
	want := map[Face]float32{AFront: 0.1, ABack: 0.2, BFront: 0.3, BBack: 0.4, CFront: 0.5, CBack: 0.6}
	for f, w := range want {
		if got := lum.Face(f); got != w {
			t.Errorf("Face(%v) = %v, want %v", f, got, w)
		}
	}
}

func TestStartLight(t *testing.T) {
	start := Angles{-math32.Pi / 2, -math32.Pi / 2, 3 * math32.Pi / 4}
	l := StartLight(DefaultLightSource, start)

	if !near(l.Magnitude(), 1) {
		t.Errorf("Light should be normalized, got magnitude %v", l.Magnitude())
	}
	if l.X != 0 || l.Y >= 0 || l.Z >= 0 {
		t.Errorf("Unexpected light direction %v", l)
	}

	// Zero angles leave the source direction as is
	plain := StartLight(DefaultLightSource, Angles{})
	if !nearVec(plain, DefaultLightSource.Normalize()) {
		t.Errorf("Expected %v, got %v", DefaultLightSource.Normalize(), plain)
	}
}
