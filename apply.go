package sway

// The Update* functions apply a Transition to one property of a Layer. With
// Immediate (or when the layer is not attached to a Scene) the change is
// synchronous and completion fires with true before the function returns.
// With an animated transition the layer animates from its current value and
// completion fires once when the request settles: true when it ran to the
// end, false when a newer request for the same property or Token.Cancel
// interrupted it. Completion may be nil.

// UpdateFrame moves and resizes l. Origin and size animate independently with
// the same duration and curve; a dimension that does not change is left
// alone. The completion fires once after every changed dimension settles, or
// synchronously with true if nothing changed.
//
// Effect layers animated with the Legacy curve run both dimensions as a single
// AnimationGroup on the link's group path instead of the layer's own ticker.
func UpdateFrame(tr Transition, l *Layer, frame Rect, completion Completion) *Token {
	origin, size := frame.Origin(), frame.Size()
	onPath := l.keyframes.active
	posChanged := l.position.prop.value != origin || onPath
	sizeChanged := l.size.prop.value != size

	link := l.link()
	if !tr.IsAnimated() || link == nil {
		if posChanged {
			l.keyframes.interrupt()
			l.position.set(origin)
		}
		if sizeChanged {
			l.size.set(size)
		}
		return completedToken(completion)
	}
	if !posChanged && !sizeChanged {
		return completedToken(completion)
	}

	pending := 0
	if posChanged {
		pending++
	}
	if sizeChanged {
		pending++
	}
	done := newCompletion(completion, pending)
	tok := &Token{done: done}
	now := link.Now()
	fromCurrent := tr.BeginsFromCurrentState()

	var g *AnimationGroup
	if l.Kind == LayerEffect && tr.Curve().Kind == CurveLegacy {
		g = newAnimationGroup(done)
		link.addGroup(g)
	}

	if posChanged {
		l.keyframes.interrupt()
		l.position.start(l.position.current(fromCurrent || onPath), origin, tr, now, done, g)
		tok.cancels = append(tok.cancels, func() { l.position.cancelRequest(done) })
		if g != nil {
			g.add(l.position)
		}
	}
	if sizeChanged {
		l.size.start(l.size.current(fromCurrent), size, tr, now, done, g)
		tok.cancels = append(tok.cancels, func() { l.size.cancelRequest(done) })
		if g != nil {
			g.add(l.size)
		}
	}
	if g == nil {
		l.ensureTicking(link)
	}
	logTransition(l, "frame", tr)
	return tok
}

// UpdatePosition moves l's frame origin.
// A running keyframe path is stopped and the new animation starts from the
// path's on-screen position.
func UpdatePosition(tr Transition, l *Layer, origin Vec2, completion Completion) *Token {
	if l.keyframes.active {
		l.keyframes.interrupt()
		tr = tr.FromCurrentState()
	}
	return updateChannel(tr, l, l.position, origin, vec2Equal, completion)
}

// UpdateSize resizes l's frame.
func UpdateSize(tr Transition, l *Layer, size Size, completion Completion) *Token {
	return updateChannel(tr, l, l.size, size, sizeEqual, completion)
}

// UpdateAlpha changes l's opacity. alpha is clamped into [0, 1].
func UpdateAlpha(tr Transition, l *Layer, alpha float64, completion Completion) *Token {
	return updateChannel(tr, l, l.alpha, clamp01(alpha), nearlyEqual, completion)
}

// UpdateScale changes l's uniform transform scale. The animation starts from
// the logical scale, or from the on-screen scale when tr was built with
// FromCurrentState. If that value already equals scale, completion fires
// synchronously and no animation is created.
func UpdateScale(tr Transition, l *Layer, scale float64, completion Completion) *Token {
	return updateChannel(tr, l, l.scale, scale, nearlyEqual, completion)
}

// UpdateStrokeEnd changes how much of l's stroke is drawn, for progress rings.
// end is clamped into [0, 1].
func UpdateStrokeEnd(tr Transition, l *Layer, end float64, completion Completion) *Token {
	return updateChannel(tr, l, l.strokeEnd, clamp01(end), nearlyEqual, completion)
}

// AnimatePositionKeyframes replays points as a timed path with evenly spaced
// key times, shaped by tr's curve. The layer's logical position becomes the
// last point. Immediate transitions, single points and detached layers jump to
// the last point and complete synchronously; an empty list only completes.
func AnimatePositionKeyframes(tr Transition, l *Layer, points []Vec2, completion Completion) *Token {
	if len(points) == 0 {
		return completedToken(completion)
	}
	last := points[len(points)-1]

	link := l.link()
	if !tr.IsAnimated() || link == nil || len(points) == 1 {
		l.keyframes.interrupt()
		l.position.set(last)
		return completedToken(completion)
	}

	done := newCompletion(completion, 1)
	l.position.set(last)
	l.keyframes.begin(points, tr, link.Now(), done)
	l.ensureTicking(link)
	logTransition(l, "keyframes", tr)
	return &Token{done: done, cancels: []func(){
		func() { l.keyframes.cancelRequest(done) },
	}}
}

// updateChannel is the shared shape of single-channel updates.
func updateChannel[T any](tr Transition, l *Layer, ch *channel[T], v T, equal func(a, b T) bool, completion Completion) *Token {
	link := l.link()
	if !tr.IsAnimated() || link == nil {
		ch.set(v)
		return completedToken(completion)
	}

	from := ch.current(tr.BeginsFromCurrentState())
	if equal(from, v) {
		if !equal(ch.prop.value, v) {
			ch.set(v)
		}
		return completedToken(completion)
	}

	done := newCompletion(completion, 1)
	ch.start(from, v, tr, link.Now(), done, nil)
	l.ensureTicking(link)
	logTransition(l, ch.id.String(), tr)
	return &Token{done: done, cancels: []func(){
		func() { ch.cancelRequest(done) },
	}}
}

func vec2Equal(a, b Vec2) bool { return a == b }

func sizeEqual(a, b Size) bool { return a == b }
