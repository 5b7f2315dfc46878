package sway

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default layer color.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp blends c toward to by t.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// toRGBA converts to premultiplied 8-bit RGBA scaled by alpha.
func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets and scroll origins.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Lerp blends v toward to by t.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{v.X + (to.X-v.X)*t, v.Y + (to.Y-v.Y)*t}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Lerp blends s toward to by t.
func (s Size) Lerp(to Size, t float64) Size {
	return Size{s.Width + (to.Width-s.Width)*t, s.Height + (to.Height-s.Height)*t}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// RectFrom builds a Rect from an origin and a size.
func RectFrom(origin Vec2, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Lerp blends r toward to by t.
func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X:      r.X + (to.X-r.X)*t,
		Y:      r.Y + (to.Y-r.Y)*t,
		Width:  r.Width + (to.Width-r.Width)*t,
		Height: r.Height + (to.Height-r.Height)*t,
	}
}

// LayerKind selects how a layer is composited and, for Legacy-curve frame
// transitions, which animation path is used.
type LayerKind uint8

const (
	LayerStandard LayerKind = iota // opaque output, per-property animator
	LayerEffect                    // translucent/blurred surface, group batching
)

// Channel identifies one animatable output property of a Layer.
type Channel uint8

const (
	ChannelPosition  Channel = iota // frame origin
	ChannelSize                     // frame size
	ChannelAlpha                    // opacity in [0, 1]
	ChannelScale                    // uniform transform scale
	ChannelStrokeEnd                // stroke-end fraction in [0, 1]
	ChannelKeyframes                // keyframed position path
)

var channelNames = [...]string{"position", "size", "alpha", "scale", "strokeEnd", "keyframes"}

// String returns the channel's name.
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// floatTolerance is the equality tolerance for "already at target" checks.
const floatTolerance = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
