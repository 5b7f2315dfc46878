package sway

import "fmt"

// Transition is the declarative instruction passed down a view tree telling
// each output how to reach its new state: either Immediate or Animated with a
// duration and curve. It is a value type; modifiers return copies.
type Transition struct {
	duration    float64
	curve       Curve
	fromCurrent bool
}

// Immediate applies changes synchronously. It is the zero Transition.
var Immediate = Transition{}

// Animated returns a transition lasting duration seconds along curve. A
// non-positive duration is equivalent to Immediate.
func Animated(duration float64, curve Curve) Transition {
	if duration <= 0 {
		return Immediate
	}
	return Transition{duration: duration, curve: curve}
}

// IsAnimated reports whether the transition drives an animation.
func (tr Transition) IsAnimated() bool {
	return tr.duration > 0
}

// Duration returns the animation length in seconds (0 for Immediate).
func (tr Transition) Duration() float64 {
	return tr.duration
}

// Curve returns the timing curve. Immediate transitions report Linear.
func (tr Transition) Curve() Curve {
	return tr.curve
}

// FromCurrentState returns a copy that starts scale, alpha and stroke
// animations from the on-screen presentation value instead of the logical one.
func (tr Transition) FromCurrentState() Transition {
	tr.fromCurrent = true
	return tr
}

// BeginsFromCurrentState reports whether FromCurrentState was applied.
func (tr Transition) BeginsFromCurrentState() bool {
	return tr.fromCurrent
}

// String describes the transition for debug logs.
func (tr Transition) String() string {
	if !tr.IsAnimated() {
		return "immediate"
	}
	return fmt.Sprintf("animated(%gs, %s)", tr.duration, tr.curve)
}
