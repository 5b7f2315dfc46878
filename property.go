package sway

// Retargeting an in-flight animation with an Immediate transition continues
// over the remaining duration; scalar jumps wider than this settle faster.
const (
	retargetJumpThreshold = 0.56
	retargetJumpFactor    = 0.8
)

// PropertyAnimation is one in-flight transition of a property. It is never
// mutated: retargeting replaces it with a new value.
type PropertyAnimation[T any] struct {
	From, To T
	Curve    Curve
	Duration float64
	Start    float64
}

// Elapsed returns seconds since the animation started.
func (a PropertyAnimation[T]) Elapsed(now float64) float64 {
	return now - a.Start
}

// Remaining returns the seconds left, negative once expired.
func (a PropertyAnimation[T]) Remaining(now float64) float64 {
	return a.Duration - a.Elapsed(now)
}

// Progress returns eased progress at now. Raw progress below 0 is clamped, so
// a timestamp before Start yields 0.
func (a PropertyAnimation[T]) Progress(now float64) float64 {
	if a.Duration <= 0 {
		return 1
	}
	raw := a.Elapsed(now) / a.Duration
	if raw < 0 {
		raw = 0
	}
	return a.Curve.Eval(raw)
}

// ValueAt samples the animation at now using lerp, clamped to From and To.
func (a PropertyAnimation[T]) ValueAt(now float64, lerp Interpolator[T]) T {
	return interpolateClamped(lerp, a.From, a.To, a.Progress(now))
}

// AnimatableProperty holds a logical value and the presentation value that
// trails it while a transition is in flight. When idle the two are equal.
//
// A property is polled: call Tick once per frame while it returns true, or
// Attach it to a DisplayLink and it subscribes itself on every Update.
type AnimatableProperty[T any] struct {
	value        T
	presentation T
	anim         *PropertyAnimation[T]

	lerp     Interpolator[T]
	distance func(a, b T) float64
	time     TimeSource

	link *DisplayLink
	sub  *Subscription

	// OnChange, if set, receives every presentation value written by Update
	// or Tick.
	OnChange func(T)
}

// NewProperty creates an idle property. ts supplies animation start times; a
// nil ts uses SystemTime.
func NewProperty[T any](initial T, lerp Interpolator[T], ts TimeSource) *AnimatableProperty[T] {
	if ts == nil {
		ts = SystemTime()
	}
	return &AnimatableProperty[T]{
		value:        initial,
		presentation: initial,
		lerp:         lerp,
		time:         ts,
	}
}

// NewScalarProperty creates a float64 property. Scalar properties shorten the
// remaining duration of an Immediate retarget when the jump is large.
func NewScalarProperty(initial float64, ts TimeSource) *AnimatableProperty[float64] {
	p := NewProperty(initial, LerpFloat, ts)
	p.distance = scalarDistance
	return p
}

func scalarDistance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Attach routes the property through link: every Update that starts an
// animation subscribes the property, and the link drops it once Tick reports
// completion. The link also becomes the property's time source.
func (p *AnimatableProperty[T]) Attach(link *DisplayLink) {
	p.link = link
	p.time = link
}

// Detach cancels the link subscription. Any in-flight animation is left as is
// and can still be ticked manually.
func (p *AnimatableProperty[T]) Detach() {
	p.sub.Cancel()
	p.sub = nil
	p.link = nil
}

// Value returns the logical value.
func (p *AnimatableProperty[T]) Value() T { return p.value }

// PresentationValue returns the value last handed to the renderer.
func (p *AnimatableProperty[T]) PresentationValue() T { return p.presentation }

// Animation returns the in-flight animation, if any.
func (p *AnimatableProperty[T]) Animation() (PropertyAnimation[T], bool) {
	if p.anim == nil {
		var zero PropertyAnimation[T]
		return zero, false
	}
	return *p.anim, true
}

// IsAnimating reports whether an animation is in flight.
func (p *AnimatableProperty[T]) IsAnimating() bool {
	return p.anim != nil
}

// Update sets the logical value to v immediately and decides how the
// presentation value follows:
//
//   - Animated: a fresh animation from the current presentation value to v,
//     replacing any in-flight one.
//   - Immediate while idle: presentation jumps to v.
//   - Immediate while animating: a new animation from the current
//     presentation value to v over the old animation's remaining duration and
//     curve, shortened to 80% for scalar jumps wider than 0.56.
func (p *AnimatableProperty[T]) Update(v T, tr Transition) {
	now := p.time.Now()
	p.value = v

	if tr.IsAnimated() {
		p.animate(p.sample(now), v, tr.Curve(), tr.Duration(), now)
		return
	}
	if p.anim == nil {
		p.snap(v)
		return
	}

	cur := p.sample(now)
	remaining := p.anim.Remaining(now)
	if p.distance != nil && p.distance(cur, v) > retargetJumpThreshold {
		remaining *= retargetJumpFactor
	}
	if remaining <= 0 {
		p.snap(v)
		return
	}
	p.animate(cur, v, p.anim.Curve, remaining, now)
}

// Tick advances the presentation value to now. It returns true while the
// animation has time left and false once idle; the expired animation is
// cleared by the first Tick past its end.
func (p *AnimatableProperty[T]) Tick(now float64) bool {
	a := p.anim
	if a == nil {
		return false
	}
	p.present(a.ValueAt(now, p.lerp))
	if a.Elapsed(now) <= a.Duration {
		return true
	}
	p.anim = nil
	return false
}

// sample writes and returns the presentation value at now without changing
// the animation.
func (p *AnimatableProperty[T]) sample(now float64) T {
	if p.anim != nil {
		p.present(p.anim.ValueAt(now, p.lerp))
	}
	return p.presentation
}

// animate installs a new animation. A non-positive duration snaps instead.
func (p *AnimatableProperty[T]) animate(from, to T, curve Curve, duration, now float64) {
	if duration <= 0 {
		p.snap(to)
		return
	}
	p.anim = &PropertyAnimation[T]{
		From:     from,
		To:       to,
		Curve:    curve,
		Duration: duration,
		Start:    now,
	}
	p.present(from)
	if p.link != nil && !p.sub.Active() {
		p.sub = p.link.Add(p)
	}
}

// snap drops any animation and makes presentation equal to v.
func (p *AnimatableProperty[T]) snap(v T) {
	p.anim = nil
	p.value = v
	p.present(v)
}

func (p *AnimatableProperty[T]) present(v T) {
	p.presentation = v
	if p.OnChange != nil {
		p.OnChange(v)
	}
}
