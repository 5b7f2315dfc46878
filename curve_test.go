package sway

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{Linear, EaseInOut, EaseOut, Legacy, Spring, SystemCurve,
		Bezier(0.1, 0.7, 0.3, 1), FromEase(ease.OutCubic), SpringCurve(12, 0.4)}
	for _, c := range curves {
		if got := c.Eval(0); got != 0 {
			t.Errorf("%s.Eval(0) = %v, want 0", c, got)
		}
		if got := c.Eval(1); got != 1 {
			t.Errorf("%s.Eval(1) = %v, want 1", c, got)
		}
		if got := c.Eval(-0.5); got != 0 {
			t.Errorf("%s.Eval(-0.5) = %v, want 0", c, got)
		}
		if got := c.Eval(1.5); got != 1 {
			t.Errorf("%s.Eval(1.5) = %v, want 1", c, got)
		}
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := Linear.Eval(x); got != x {
			t.Errorf("Linear.Eval(%v) = %v", x, got)
		}
	}
}

func TestEaseNamesShareApproximation(t *testing.T) {
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.95} {
		a, b, c := EaseInOut.Eval(x), EaseOut.Eval(x), Legacy.Eval(x)
		if a != b || a != c {
			t.Errorf("at %v: easeInOut=%v easeOut=%v legacy=%v", x, a, b, c)
		}
	}
	if got := EaseInOut.Eval(0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("EaseInOut.Eval(0.5) = %v, want 0.5", got)
	}
	if got := EaseInOut.Eval(0.25); got >= 0.25 {
		t.Errorf("EaseInOut.Eval(0.25) = %v, want slow start below 0.25", got)
	}
}

func TestSpringTableRoundTrip(t *testing.T) {
	for i, s := range springSamples {
		if got := SpringTable(s.t); i < len(springSamples)-1 && got != s.v {
			t.Errorf("SpringTable(%v) = %v, want %v", s.t, got, s.v)
		}
	}
	if got := Spring.Eval(0.5); got != 0.942038357257843 {
		t.Errorf("Spring.Eval(0.5) = %.15f, want 0.942038357257843", got)
	}
}

func TestSpringTableInterpolates(t *testing.T) {
	got := SpringTable(0.03125)
	want := 0.291900175398868 / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SpringTable(1/32) = %v, want %v", got, want)
	}
}

func TestSpringTableOutOfRange(t *testing.T) {
	for _, x := range []float64{-0.01, 1, 1.2, 40} {
		if got := SpringTable(x); got != 1 {
			t.Errorf("SpringTable(%v) = %v, want 1", x, got)
		}
	}
}

func TestSpringTableMonotonic(t *testing.T) {
	prev := -1.0
	for _, s := range springSamples {
		if s.v <= prev {
			t.Fatalf("sample at %v = %v not above %v", s.t, s.v, prev)
		}
		prev = s.v
	}
}

func TestBezierDiagonalIsLinear(t *testing.T) {
	c := Bezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.33, 0.5, 0.8} {
		if got := c.Eval(x); math.Abs(got-x) > 1e-6 {
			t.Errorf("Bezier diagonal Eval(%v) = %v", x, got)
		}
	}
}

func TestCubicBezierReferenceValues(t *testing.T) {
	// Reference y values from bisecting the parametric x(s) to full precision.
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		x, want        float64
	}{
		{"system", 0.23, 1, 0.32, 1, 0.1, 0.3981241047},
		{"system", 0.23, 1, 0.32, 1, 0.25, 0.7753816553},
		{"system", 0.23, 1, 0.32, 1, 0.5, 0.9659825603},
		{"system", 0.23, 1, 0.32, 1, 0.75, 0.9973622544},
		{"system", 0.23, 1, 0.32, 1, 0.9, 0.9998653855},
		{"easeInOut", 0.42, 0, 0.58, 1, 0.1, 0.0197224535},
		{"easeInOut", 0.42, 0, 0.58, 1, 0.25, 0.1291619310},
		{"easeInOut", 0.42, 0, 0.58, 1, 0.5, 0.5},
		{"easeInOut", 0.42, 0, 0.58, 1, 0.75, 0.8708380690},
		{"easeInOut", 0.42, 0, 0.58, 1, 0.9, 0.9802775465},
	}
	for _, tt := range tests {
		if got := CubicBezier(tt.x1, tt.y1, tt.x2, tt.y2, tt.x); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s CubicBezier(%v) = %.10f, want %.10f", tt.name, tt.x, got, tt.want)
		}
	}
	for _, x := range []float64{0.1, 0.25, 0.75} {
		if got, want := EaseInOut.Eval(x), CubicBezier(0.42, 0, 0.58, 1, x); got != want {
			t.Errorf("EaseInOut.Eval(%v) = %v, want %v", x, got, want)
		}
		if got, want := SystemCurve.Eval(x), CubicBezier(0.23, 1, 0.32, 1, x); got != want {
			t.Errorf("SystemCurve.Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSystemCurveDecelerates(t *testing.T) {
	if got := SystemCurve.Eval(0.2); got < 0.5 {
		t.Errorf("SystemCurve.Eval(0.2) = %v, want a fast start", got)
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := SystemCurve.Eval(float64(i) / 20)
		if v < prev-1e-9 {
			t.Fatalf("SystemCurve not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestFromEase(t *testing.T) {
	c := FromEase(ease.OutQuad)
	if got := c.Eval(0.5); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("OutQuad Eval(0.5) = %v, want 0.75", got)
	}
	if FromEase(nil).Kind != CurveLinear {
		t.Error("FromEase(nil) should be Linear")
	}
}

func TestEaseFuncAdapter(t *testing.T) {
	fn := Linear.EaseFunc()
	if got := fn(0.5, 10, 20, 1); got != 20 {
		t.Errorf("Linear.EaseFunc()(0.5, 10, 20, 1) = %v, want 20", got)
	}
	if got := fn(1, 10, 20, 0); got != 30 {
		t.Errorf("zero duration = %v, want 30", got)
	}
	spring := Spring.EaseFunc()
	if got := spring(0.5, 0, 1, 1); math.Abs(float64(got)-0.942038357257843) > 1e-6 {
		t.Errorf("Spring.EaseFunc()(0.5) = %v", got)
	}
}

func TestSpringCurve(t *testing.T) {
	if SpringCurve(0, 1).Kind != CurveSpring {
		t.Error("non-positive frequency should return Spring")
	}

	critical := SpringCurve(8, 1)
	prev := 0.0
	for i := 1; i <= 64; i++ {
		v := critical.Eval(float64(i) / 64)
		if v < prev || v > 1 {
			t.Fatalf("critically damped sample %d = %v (prev %v)", i, v, prev)
		}
		prev = v
	}

	bouncy := SpringCurve(20, 0.2)
	peak := 0.0
	for i := 1; i < 64; i++ {
		peak = math.Max(peak, bouncy.Eval(float64(i)/64))
	}
	if peak <= 1 {
		t.Errorf("underdamped spring peak = %v, want overshoot", peak)
	}
}

func TestCurveString(t *testing.T) {
	tests := []struct {
		c    Curve
		want string
	}{
		{Linear, "linear"},
		{EaseInOut, "easeInOut"},
		{Legacy, "legacy"},
		{Spring, "spring"},
		{Bezier(0.23, 1, 0.32, 1), "bezier(0.23,1,0.32,1)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestInterpolateClamped(t *testing.T) {
	if got := interpolateClamped(LerpFloat, 10, 20, -1); got != 10 {
		t.Errorf("t<0 = %v, want 10", got)
	}
	if got := interpolateClamped(LerpFloat, 10, 20, 1.3); got != 20 {
		t.Errorf("t>1 = %v, want 20", got)
	}
	if got := interpolateClamped(LerpFloat, 10, 20, 0.25); got != 12.5 {
		t.Errorf("t=0.25 = %v, want 12.5", got)
	}
	r := interpolateClamped(LerpRect, Rect{0, 0, 10, 10}, Rect{10, 20, 30, 40}, 0.5)
	if r != (Rect{5, 10, 20, 25}) {
		t.Errorf("rect lerp = %+v", r)
	}
	c := LerpColor(Color{0, 0, 0, 1}, Color{1, 1, 1, 1}, 0.5)
	if c != (Color{0.5, 0.5, 0.5, 1}) {
		t.Errorf("color lerp = %+v", c)
	}
}
