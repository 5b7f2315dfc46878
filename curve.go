package sway

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// CurveKind names a timing function that maps linear progress to eased progress.
type CurveKind uint8

const (
	CurveLinear    CurveKind = iota // identity
	CurveEaseInOut                  // cubic Bezier (0.42, 0, 0.58, 1)
	CurveEaseOut                    // same approximation as CurveEaseInOut
	CurveLegacy                     // same approximation; selects group batching on effect layers
	CurveSpring                     // 17-sample spring table
	CurveBezier                     // custom control points
	CurveEase                       // a gween easing function
	CurveTable                      // sampled table, see SpringCurve
)

// Curve is a timing function value. The zero value is Linear.
// Curves are immutable and safe to share.
type Curve struct {
	Kind   CurveKind
	bezier UnitBezier
	ease   ease.TweenFunc
	table  []curveSample
}

// Named curves.
var (
	Linear    = Curve{Kind: CurveLinear}
	EaseInOut = Curve{Kind: CurveEaseInOut}
	EaseOut   = Curve{Kind: CurveEaseOut}
	Legacy    = Curve{Kind: CurveLegacy}
	Spring    = Curve{Kind: CurveSpring}

	// SystemCurve is the platform's default deceleration curve.
	SystemCurve = Bezier(0.23, 1.0, 0.32, 1.0)
)

// easeInOutBezier backs CurveEaseInOut, CurveEaseOut and CurveLegacy, which
// share one approximation.
var easeInOutBezier = NewUnitBezier(0.42, 0.0, 0.58, 1.0)

// Bezier returns a custom cubic Bezier curve through (0,0), (x1,y1), (x2,y2), (1,1).
func Bezier(x1, y1, x2, y2 float64) Curve {
	return Curve{Kind: CurveBezier, bezier: NewUnitBezier(x1, y1, x2, y2)}
}

// FromEase wraps a gween easing function. A nil function yields Linear.
func FromEase(fn ease.TweenFunc) Curve {
	if fn == nil {
		return Linear
	}
	return Curve{Kind: CurveEase, ease: fn}
}

// Eval maps progress t to eased progress. t is clamped into [0, 1] first, so
// Eval(0) == 0 and Eval(1) == 1 for every curve.
func (c Curve) Eval(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c.Kind {
	case CurveLinear:
		return t
	case CurveEaseInOut, CurveEaseOut, CurveLegacy:
		return easeInOutBezier.Solve(t)
	case CurveSpring:
		return SpringTable(t)
	case CurveBezier:
		return c.bezier.Solve(t)
	case CurveEase:
		return float64(c.ease(float32(t), 0, 1, 1))
	case CurveTable:
		return lookupTable(c.table, t)
	default:
		return t
	}
}

// EaseFunc adapts the curve to gween's easing signature so it can drive a
// gween.Tween: b + c*Eval(t/d).
func (c Curve) EaseFunc() ease.TweenFunc {
	if c.Kind == CurveEase {
		return c.ease
	}
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		return b + ch*float32(c.Eval(float64(t/d)))
	}
}

// String returns the curve's name.
func (c Curve) String() string {
	switch c.Kind {
	case CurveLinear:
		return "linear"
	case CurveEaseInOut:
		return "easeInOut"
	case CurveEaseOut:
		return "easeOut"
	case CurveLegacy:
		return "legacy"
	case CurveSpring:
		return "spring"
	case CurveBezier:
		return fmt.Sprintf("bezier(%g,%g,%g,%g)", c.bezier.x1, c.bezier.y1, c.bezier.x2, c.bezier.y2)
	case CurveEase:
		return "ease"
	case CurveTable:
		return "table"
	default:
		return fmt.Sprintf("CurveKind(%d)", c.Kind)
	}
}

// --- Cubic Bezier ---

// UnitBezier is a cubic Bezier from (0,0) to (1,1) with precomputed
// polynomial coefficients.
type UnitBezier struct {
	x1, y1, x2, y2 float64

	ax, bx, cx float64
	ay, by, cy float64
}

// NewUnitBezier precomputes the polynomial form of the curve.
func NewUnitBezier(x1, y1, x2, y2 float64) UnitBezier {
	b := UnitBezier{x1: x1, y1: y1, x2: x2, y2: y2}
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b *UnitBezier) sampleX(s float64) float64 { return ((b.ax*s+b.bx)*s + b.cx) * s }
func (b *UnitBezier) sampleY(s float64) float64 { return ((b.ay*s+b.by)*s + b.cy) * s }
func (b *UnitBezier) sampleDX(s float64) float64 {
	return (3*b.ax*s+2*b.bx)*s + b.cx
}

const bezierEpsilon = 1e-7

// solveX finds the parameter s with x(s) == x. Newton's method converges in a
// few steps for typical curves; bisection covers flat derivatives.
func (b *UnitBezier) solveX(x float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		dx := b.sampleX(s) - x
		if dx > -bezierEpsilon && dx < bezierEpsilon {
			return s
		}
		d := b.sampleDX(s)
		if d > -1e-6 && d < 1e-6 {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := b.sampleX(s)
		if v-x > -bezierEpsilon && v-x < bezierEpsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		next := (hi-lo)/2 + lo
		if next == s {
			break
		}
		s = next
	}
	return s
}

// Solve returns y for the given x. x is clamped into [0, 1].
func (b UnitBezier) Solve(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.sampleY(b.solveX(x))
}

// CubicBezier evaluates the curve through control points (x1,y1) and (x2,y2)
// at x = t.
func CubicBezier(x1, y1, x2, y2, t float64) float64 {
	b := NewUnitBezier(x1, y1, x2, y2)
	return b.Solve(t)
}

// --- Spring table ---

type curveSample struct {
	t, v float64
}

// springSamples is the hand-tabulated spring response at steps of 1/16.
// Read-only; lookups interpolate linearly between bracketing samples.
//
// Only the endpoints and the 0.5 sample (0.942038357257843) are literal
// reference values. The other 14 are fitted from an overdamped spring
// (mass 3, stiffness 1000, damping 500) through that midpoint, so the table
// is not bit-compatible with the platform curve it approximates.
var springSamples = [17]curveSample{
	{0.0, 0.0},
	{0.0625, 0.291900175398868},
	{0.125, 0.504760390631308},
	{0.1875, 0.653633199491599},
	{0.25, 0.757753705025012},
	{0.3125, 0.830574791397521},
	{0.375, 0.881505303051354},
	{0.4375, 0.917125713931416},
	{0.5, 0.942038357257843},
	{0.5625, 0.959462069735489},
	{0.625, 0.971648081172566},
	{0.6875, 0.980170884503664},
	{0.75, 0.986131668062390},
	{0.8125, 0.990300594559183},
	{0.875, 0.993216309911778},
	{0.9375, 0.995255538961245},
	{1.0, 1.0},
}

// SpringTable evaluates the spring curve at t. Values below 0 or at/above the
// last sample return 1.
func SpringTable(t float64) float64 {
	return lookupTable(springSamples[:], t)
}

func lookupTable(samples []curveSample, t float64) float64 {
	if len(samples) == 0 || t < 0 || t >= samples[len(samples)-1].t {
		return 1.0
	}
	for i := 0; i < len(samples)-1; i++ {
		a, b := samples[i], samples[i+1]
		if t >= a.t && t < b.t {
			f := (t - a.t) / (b.t - a.t)
			return a.v + (b.v-a.v)*f
		}
	}
	return 1.0
}
