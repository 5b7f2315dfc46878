package sway

import "math"

// DefaultDecayRate is the fraction of the remaining scroll distance left after
// each frame of momentum scrolling.
const DefaultDecayRate = 0.78

// convergeEpsilon is the per-axis movement below which a frame counts as
// stalled.
const convergeEpsilon = 0.1

// ScrollOptions configures a ScrollView. Zero values select defaults.
type ScrollOptions struct {
	// DecayRate in (0, 1); out-of-range values use DefaultDecayRate.
	DecayRate float64
	// ContentSize is the scrollable document size, used by Indicator.
	ContentSize Size
	// OnScroll is called after every origin change so dependent chrome
	// (scroll indicators, headers) can refresh.
	OnScroll func(origin Vec2)
}

// ScrollView animates the bounds origin of a viewport layer toward a
// destination by exponential decay, one step per display frame.
//
// States: idle (clock stopped, no destination) and converging (clock
// running). At most one completion is pending; a new ScrollTo or Cancel
// settles it with false before taking over.
type ScrollView struct {
	// Name identifies the view in scripted runs; defaults to the viewport's name.
	Name string
	// OnScroll mirrors ScrollOptions.OnScroll.
	OnScroll func(origin Vec2)

	viewport *Layer
	link     *DisplayLink
	clock    *PeriodicClock

	origin         Vec2
	destination    Vec2
	hasDestination bool
	decay          float64
	content        Size

	pending    Completion
	generation uint64
	hopPending bool
}

// NewScrollView creates an idle scroll view over viewport, starting at the
// viewport's current bounds origin.
func NewScrollView(link *DisplayLink, viewport *Layer, opts ScrollOptions) *ScrollView {
	decay := opts.DecayRate
	if decay <= 0 || decay >= 1 {
		decay = DefaultDecayRate
	}
	s := &ScrollView{
		Name:     viewport.Name,
		OnScroll: opts.OnScroll,
		viewport: viewport,
		link:     link,
		origin:   viewport.BoundsOrigin(),
		decay:    decay,
		content:  opts.ContentSize,
	}
	s.clock = NewPeriodicClock(link, s.tick)
	return s
}

// CurrentOrigin returns the origin currently applied to the viewport.
func (s *ScrollView) CurrentOrigin() Vec2 { return s.origin }

// Destination returns the origin being converged on, if any.
func (s *ScrollView) Destination() (Vec2, bool) {
	return s.destination, s.hasDestination
}

// IsConverging reports whether a scroll animation is in flight, including the
// pause between the two hops of a long jump.
func (s *ScrollView) IsConverging() bool {
	return s.clock.IsRunning() || s.hopPending
}

// DecayRate returns the per-frame decay rate.
func (s *ScrollView) DecayRate() float64 { return s.decay }

// Viewport returns the layer whose bounds origin the view drives.
func (s *ScrollView) Viewport() *Layer { return s.viewport }

// SetContentSize updates the document size used by Indicator.
func (s *ScrollView) SetContentSize(size Size) {
	s.content = size
}

// ScrollTo moves the origin to dest. Any pending completion first fires with
// false. A destination equal to the current origin completes with true
// synchronously, as does a non-animated scroll. An animated scroll farther
// than one viewport extent on an axis first jumps to half a viewport short of
// dest and animates the remainder on the next frame.
func (s *ScrollView) ScrollTo(dest Vec2, animated bool, completion Completion) {
	s.generation++
	gen := s.generation
	s.hopPending = false

	if prev := s.pending; prev != nil {
		s.pending = nil
		prev(false)
		if s.generation != gen {
			// The interrupted callback issued its own ScrollTo, which is newer.
			if completion != nil {
				completion(false)
			}
			return
		}
	}
	s.pending = completion

	if dest == s.origin {
		s.settle()
		s.finish(true)
		return
	}
	if !animated {
		s.settle()
		s.apply(dest)
		s.finish(true)
		return
	}

	if mid, split := s.splitJump(dest); split {
		s.clock.Stop()
		s.hasDestination = false
		s.apply(mid)
		s.hopPending = true
		s.link.Post(func() {
			if s.generation != gen {
				return
			}
			s.hopPending = false
			s.converge(dest)
		})
		debugLogf("scroll %q: split jump to %v, then %v", s.Name, mid, dest)
		return
	}
	s.converge(dest)
}

// Cancel stops any scroll in flight where it is and fires the pending
// completion with false.
func (s *ScrollView) Cancel() {
	s.generation++
	s.hopPending = false
	s.settle()
	s.finish(false)
}

// splitJump returns the intermediate origin for jumps longer than the viewport.
func (s *ScrollView) splitJump(dest Vec2) (Vec2, bool) {
	extent := s.viewport.Frame().Size()
	mid := dest
	split := false
	if extent.Height > 0 && math.Abs(dest.Y-s.origin.Y) > extent.Height {
		half := math.Floor(extent.Height / 2)
		if s.origin.Y < dest.Y {
			mid.Y = dest.Y - half
		} else {
			mid.Y = dest.Y + half
		}
		split = true
	}
	if extent.Width > 0 && math.Abs(dest.X-s.origin.X) > extent.Width {
		half := math.Floor(extent.Width / 2)
		if s.origin.X < dest.X {
			mid.X = dest.X - half
		} else {
			mid.X = dest.X + half
		}
		split = true
	}
	return mid, split
}

func (s *ScrollView) converge(dest Vec2) {
	s.destination = dest
	s.hasDestination = true
	if dest == s.origin {
		s.settle()
		s.finish(true)
		return
	}
	s.clock.Start()
}

// tick is one frame of momentum scrolling.
func (s *ScrollView) tick(float64) {
	if s.viewport.IsDisposed() || s.viewport.Scene() == nil {
		s.settle()
		return
	}
	if !s.hasDestination {
		s.clock.Stop()
		return
	}

	cur, dst := s.origin, s.destination
	factor := 1 - s.decay
	next := Vec2{
		X: decayStep(cur.X, dst.X, factor),
		Y: decayStep(cur.Y, dst.Y, factor),
	}
	s.apply(next)

	if math.Abs(next.X-cur.X) < convergeEpsilon && math.Abs(next.Y-cur.Y) < convergeEpsilon {
		if next == dst {
			s.settle()
			s.apply(next)
			s.finish(true)
			return
		}
		// Rounding stalled short of the target: nudge by the smallest step.
		s.apply(Vec2{
			X: next.X + nudge(dst.X-next.X),
			Y: next.Y + nudge(dst.Y-next.Y),
		})
	}
}

// settle stops the clock and makes the current origin the destination.
func (s *ScrollView) settle() {
	s.clock.Stop()
	s.destination = s.origin
	s.hasDestination = false
}

func (s *ScrollView) finish(ok bool) {
	p := s.pending
	s.pending = nil
	if p != nil {
		p(ok)
	}
}

func (s *ScrollView) apply(o Vec2) {
	s.origin = o
	s.viewport.SetBoundsOrigin(o)
	if s.OnScroll != nil {
		s.OnScroll(o)
	}
}

// Indicator returns the vertical scroll knob rectangle in viewport
// coordinates, or a zero Rect when the content fits.
func (s *ScrollView) Indicator() Rect {
	const knobWidth, minKnob = 4.0, 16.0
	view := s.viewport.Frame().Size()
	if s.content.Height <= view.Height || view.Height <= 0 {
		return Rect{}
	}
	knob := math.Max(minKnob, view.Height*view.Height/s.content.Height)
	if knob > view.Height {
		knob = view.Height
	}
	travel := s.content.Height - view.Height
	pos := clamp01(s.origin.Y/travel) * (view.Height - knob)
	return Rect{X: view.Width - knobWidth, Y: pos, Width: knobWidth, Height: knob}
}

// decayStep closes factor of the gap from cur to dst, rounded to whole units,
// never overshooting dst.
func decayStep(cur, dst, factor float64) float64 {
	if cur == dst {
		return dst
	}
	next := math.Round(cur + (dst-cur)*factor)
	if (dst-cur)*(dst-next) < 0 {
		return dst
	}
	return next
}

// nudge returns the smallest move toward a remaining gap: one unit, or the
// gap itself when it is less than one.
func nudge(gap float64) float64 {
	switch {
	case gap >= 1:
		return 1
	case gap <= -1:
		return -1
	default:
		return gap
	}
}
