package sway

import "github.com/tanema/gween"

// keyframes replays an ordered list of positions as a timed path. Key times
// are evenly spaced; the transition curve shapes progress along the whole
// path. A gween.Tween over the segment index drives the timing.
type keyframes struct {
	layer  *Layer
	points []Vec2
	tween  *gween.Tween
	start  float64
	done   *completion
	active bool
}

func (k *keyframes) begin(points []Vec2, tr Transition, now float64, done *completion) {
	old := k.detach()
	k.points = append(k.points[:0], points...)
	k.tween = gween.New(0, float32(len(points)-1), float32(tr.Duration()), tr.Curve().EaseFunc())
	k.start = now
	k.done = done
	k.active = true
	k.layer.position.prop.present(points[0])
	k.settle(old, false)
}

// sample returns the point at fractional segment index pos.
func (k *keyframes) sample(pos float32) Vec2 {
	last := len(k.points) - 1
	if pos <= 0 {
		return k.points[0]
	}
	i := int(pos)
	if i >= last {
		return k.points[last]
	}
	return k.points[i].Lerp(k.points[i+1], float64(pos)-float64(i))
}

func (k *keyframes) tick(now float64) bool {
	if !k.active {
		return false
	}
	pos, finished := k.tween.Set(float32(now - k.start))
	k.layer.position.prop.present(k.sample(pos))
	if !finished {
		return true
	}
	k.active = false
	k.settle(k.detach(), true)
	return false
}

func (k *keyframes) tickGrouped(*AnimationGroup, float64) bool { return false }

func (k *keyframes) animating() bool { return k.active }

func (k *keyframes) owner() *AnimationGroup { return nil }

// interrupt stops the path without touching the position channel; the caller
// is about to write a new position or animate from the on-screen one.
func (k *keyframes) interrupt() {
	if !k.active {
		return
	}
	k.active = false
	k.settle(k.detach(), false)
}

func (k *keyframes) cancelRequest(c *completion) {
	if !k.active || k.done != c || c == nil {
		return
	}
	k.active = false
	pos := k.layer.position.prop
	pos.present(pos.value)
	k.settle(k.detach(), false)
}

func (k *keyframes) dispose() {
	k.active = false
	k.done = nil
}

func (k *keyframes) detach() *completion {
	d := k.done
	k.done = nil
	return d
}

func (k *keyframes) settle(d *completion, ok bool) {
	if d == nil {
		return
	}
	k.layer.emit(ChannelKeyframes, ok)
	d.settle(ok)
}
