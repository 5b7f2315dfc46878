package sway

// animChannel is the type-erased view of one animatable layer property, so a
// Layer can tick channels of different value types in a fixed order.
type animChannel interface {
	tick(now float64) bool
	tickGrouped(g *AnimationGroup, now float64) bool
	animating() bool
	owner() *AnimationGroup
	dispose()
}

// channel is a transient AnimatableProperty state machine bound to one layer
// property. Each request installs its own animation and completion; a newer
// request settles the older one with false.
type channel[T any] struct {
	id    Channel
	layer *Layer
	prop  *AnimatableProperty[T]
	done  *completion
	group *AnimationGroup
}

func newChannel[T any](l *Layer, id Channel, initial T, lerp Interpolator[T]) *channel[T] {
	ch := &channel[T]{
		id:    id,
		layer: l,
		prop: &AnimatableProperty[T]{
			value:        initial,
			presentation: initial,
			lerp:         lerp,
		},
	}
	ch.prop.OnChange = func(T) { l.presented(id) }
	return ch
}

// set jumps to v, settling any in-flight request as interrupted.
func (ch *channel[T]) set(v T) {
	old := ch.detach()
	ch.prop.snap(v)
	ch.settle(old, false)
}

// start installs an animation from -> to. The previous request is settled
// after the new animation is in place, so a completion that starts yet another
// animation still wins.
func (ch *channel[T]) start(from, to T, tr Transition, now float64, done *completion, g *AnimationGroup) {
	old := ch.detach()
	ch.prop.value = to
	ch.prop.animate(from, to, tr.Curve(), tr.Duration(), now)
	ch.done = done
	ch.group = g
	ch.settle(old, false)
}

// current returns the presentation value if fromPresentation, else the
// logical value.
func (ch *channel[T]) current(fromPresentation bool) T {
	if fromPresentation {
		return ch.prop.presentation
	}
	return ch.prop.value
}

func (ch *channel[T]) tick(now float64) bool {
	if ch.group != nil {
		return false
	}
	return ch.advance(now)
}

func (ch *channel[T]) tickGrouped(g *AnimationGroup, now float64) bool {
	if ch.group != g {
		return false
	}
	return ch.advance(now)
}

func (ch *channel[T]) advance(now float64) bool {
	if !ch.prop.IsAnimating() {
		return false
	}
	if ch.prop.Tick(now) {
		return true
	}
	ch.settle(ch.detach(), true)
	return false
}

// animating reports whether the layer itself must keep ticking the channel.
func (ch *channel[T]) animating() bool {
	return ch.group == nil && ch.prop.IsAnimating()
}

// owner returns the group ticking the channel, or nil.
func (ch *channel[T]) owner() *AnimationGroup { return ch.group }

// cancelRequest stops the animation if it still belongs to c and snaps the
// presentation value to the logical value.
func (ch *channel[T]) cancelRequest(c *completion) {
	if ch.done != c || c == nil {
		return
	}
	old := ch.detach()
	ch.prop.snap(ch.prop.value)
	ch.settle(old, false)
}

// dispose drops the animation without firing its completion.
func (ch *channel[T]) dispose() {
	ch.done = nil
	ch.group = nil
	ch.prop.anim = nil
	ch.prop.presentation = ch.prop.value
}

func (ch *channel[T]) detach() *completion {
	d := ch.done
	ch.done = nil
	ch.group = nil
	return d
}

func (ch *channel[T]) settle(d *completion, ok bool) {
	if d == nil {
		return
	}
	ch.layer.emit(ch.id, ok)
	d.settle(ok)
}
