package sway

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	if got := multiplyAffine(identityTransform, m); got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
	if got := multiplyAffine(m, identityTransform); got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestMultiplyAffineTranslations(t *testing.T) {
	got := multiplyAffine(translateAffine(10, 20), translateAffine(5, -5))
	if got != translateAffine(15, 15) {
		t.Errorf("composed translation = %v", got)
	}
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, -6}
	prod := multiplyAffine(m, invertAffine(m))
	for i := range prod {
		if !approxEqual(prod[i], identityTransform[i]) {
			t.Fatalf("m * inverse = %v, want identity", prod)
		}
	}
}

func TestInvertAffineSingular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestTransformPoint(t *testing.T) {
	x, y := transformPoint([6]float64{2, 0, 0, 3, 10, 20}, 1, 1)
	if x != 12 || y != 23 {
		t.Errorf("point = (%v, %v), want (12, 23)", x, y)
	}
}

func TestComputeLayerTransformScalesAboutCenter(t *testing.T) {
	l := NewLayer("l", LayerStandard, Rect{100, 50, 40, 20})
	UpdateScale(Immediate, l, 2, nil)
	m := computeLayerTransform(l)

	// The center stays at (120, 60).
	cx, cy := transformPoint(m, 20, 10)
	if !approxEqual(cx, 120) || !approxEqual(cy, 60) {
		t.Errorf("center = (%v, %v), want (120, 60)", cx, cy)
	}
	x, y := transformPoint(m, 0, 0)
	if !approxEqual(x, 80) || !approxEqual(y, 40) {
		t.Errorf("top-left = (%v, %v), want (80, 40)", x, y)
	}
	if isAxisAligned(m) {
		t.Error("scaled transform should not be axis aligned")
	}
}

func TestComputeLayerTransformUnscaled(t *testing.T) {
	l := NewLayer("l", LayerStandard, Rect{7, 9, 10, 10})
	m := computeLayerTransform(l)
	if m != translateAffine(7, 9) || !isAxisAligned(m) {
		t.Errorf("transform = %v, want translate(7, 9)", m)
	}
}

func TestWorldLocalRoundTrip(t *testing.T) {
	s, _ := newTestScene()
	parent := addTestLayer(s, "parent", Rect{100, 100, 200, 200})
	child := NewLayer("child", LayerStandard, Rect{10, 20, 50, 50})
	parent.AddChild(child)
	parent.SetBoundsOrigin(Vec2{0, 15})
	traverseScene(s)

	wx, wy := child.LocalToWorld(0, 0)
	if wx != 110 || wy != 105 {
		t.Errorf("LocalToWorld = (%v, %v), want (110, 105)", wx, wy)
	}
	lx, ly := child.WorldToLocal(wx, wy)
	if !approxEqual(lx, 0) || !approxEqual(ly, 0) {
		t.Errorf("WorldToLocal = (%v, %v), want (0, 0)", lx, ly)
	}
}
