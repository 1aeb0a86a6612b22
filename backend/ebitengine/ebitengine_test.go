package ebitengine

import "testing"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/hajimehoshi/ebiten/v2"

func TestSetGeoM(t *testing.T) {
	var geoM ebiten.GeoM
	transform := mgl32.Translate2D(3, 4).Mul3(mgl32.HomogRotate2D(0.5)).Mul3(mgl32.Scale2D(2, 3))
	SetGeoM(&geoM, transform)

	x, y := geoM.Apply(5, 7)
	expected := transform.Mul3x1(mgl32.Vec3{5, 7, 1})
	if !mgl32.FloatEqualThreshold(float32(x), expected.X(), 1e-4) || !mgl32.FloatEqualThreshold(float32(y), expected.Y(), 1e-4) {
		t.Fatalf("expected (%v, %v), got (%v, %v)", expected.X(), expected.Y(), x, y)
	}
}
