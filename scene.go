package sway

import (
	"time"
)

// EventSink is the interface for optional ECS integration.
// When set on a Scene, transition results are forwarded to it.
type EventSink interface {
	EmitEvent(event TransitionEvent)
}

// TransitionEvent reports that an animation request on a layer channel
// settled. Completed is false when the request was interrupted or cancelled.
type TransitionEvent struct {
	LayerID   uint32
	LayerName string
	Channel   Channel
	Completed bool
}

// Scene is the top-level object that owns the layer tree, the display link
// every animation is scheduled on, and the registered scroll views.
type Scene struct {
	root  *Layer
	link  *DisplayLink
	sink  EventSink
	debug bool

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files. Empty selects
	// DefaultScreenshotDir.
	ScreenshotDir string

	scrollViews []*ScrollView
	updateFunc  func() error
	testRunner  *TestRunner
	stats       debugStats
	drawBuf     []drawItem

	screenshotQueue []string
}

// NewScene creates a scene with a root layer, timed by the system clock.
func NewScene() *Scene {
	return NewSceneWithTime(SystemTime())
}

// NewSceneWithTime creates a scene whose display link reads timestamps from ts.
// Tests pass a *ManualTime to step animations deterministically.
func NewSceneWithTime(ts TimeSource) *Scene {
	s := &Scene{link: NewDisplayLink(ts)}
	s.root = NewLayer("root", LayerStandard, Rect{})
	s.root.scene = s
	return s
}

// Root returns the scene's root layer.
func (s *Scene) Root() *Layer {
	return s.root
}

// Link returns the display link driving the scene's animations.
func (s *Scene) Link() *DisplayLink {
	return s.link
}

// Now returns the scene's current timestamp in seconds.
func (s *Scene) Now() float64 {
	return s.link.Now()
}

// Update runs the scripted test runner, if any, then advances every animation
// by one display frame.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.link.Step()

	if s.debug {
		s.stats.stepTime = time.Since(t0)
		s.stats.tickers = s.link.lastTicks
		s.stats.steps = s.link.steps
		s.debugLog()
	}
}

// SetUpdateFunc registers a callback run by Run before each Scene.Update.
// Returning an error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// NewScrollView creates a scroll view over viewport driven by the scene's
// display link and registers it so scripts can address it by name.
func (s *Scene) NewScrollView(viewport *Layer, opts ScrollOptions) *ScrollView {
	sv := NewScrollView(s.link, viewport, opts)
	s.scrollViews = append(s.scrollViews, sv)
	return sv
}

// ScrollView returns the registered scroll view with the given name, or nil.
func (s *Scene) ScrollView(name string) *ScrollView {
	for _, sv := range s.scrollViews {
		if sv.Name == name {
			return sv
		}
	}
	return nil
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) emitTransition(ev TransitionEvent) {
	if s.debug {
		debugLogf("%s on %q settled (completed=%t)", ev.Channel, ev.LayerName, ev.Completed)
	}
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-layer
// access panics, every transition start and settle is logged, and per-frame
// link stats are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that layer
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
