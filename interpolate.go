package sway

// Interpolator linearly blends two values of T. t is already eased; callers
// clamp it at the endpoints, so implementations never see values outside
// [0, 1] from this package.
type Interpolator[T any] func(from, to T, t float64) T

// Lerper is implemented by value types that know how to blend themselves.
type Lerper[T any] interface {
	Lerp(to T, t float64) T
}

// InterpolatorOf returns the Interpolator declared by T's Lerp method.
func InterpolatorOf[T Lerper[T]]() Interpolator[T] {
	return func(from, to T, t float64) T {
		return from.Lerp(to, t)
	}
}

// LerpFloat blends two scalars.
func LerpFloat(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Interpolators for the package's value types.
var (
	LerpVec2  = InterpolatorOf[Vec2]()
	LerpSize  = InterpolatorOf[Size]()
	LerpRect  = InterpolatorOf[Rect]()
	LerpColor = InterpolatorOf[Color]()
)

// interpolateClamped applies lerp with endpoint clamping: t <= 0 yields from
// and t >= 1 yields to exactly.
func interpolateClamped[T any](lerp Interpolator[T], from, to T, t float64) T {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	default:
		return lerp(from, to, t)
	}
}
