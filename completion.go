package sway

// Completion is called once when a transition request settles. completed is
// false when the request was interrupted by a newer one or cancelled.
type Completion func(completed bool)

// completion aggregates the sub-animations of one request into a single
// callback that fires exactly once, after all of them settle, with true only
// if every one ran to the end.
type completion struct {
	fn      Completion
	pending int
	ok      bool
	fired   bool
}

func newCompletion(fn Completion, pending int) *completion {
	return &completion{fn: fn, pending: pending, ok: true}
}

// settle records the outcome of one sub-animation.
func (c *completion) settle(ok bool) {
	if c == nil || c.fired {
		return
	}
	if !ok {
		c.ok = false
	}
	c.pending--
	if c.pending <= 0 {
		c.fire()
	}
}

func (c *completion) fire() {
	if c.fired {
		return
	}
	c.fired = true
	if c.fn != nil {
		c.fn(c.ok)
	}
}

// Token is the handle for one transition request. It makes cancellation
// explicit instead of tying it to object lifetime.
type Token struct {
	done    *completion
	cancels []func()
}

// completedToken fires fn(true) synchronously and returns a settled token.
func completedToken(fn Completion) *Token {
	c := newCompletion(fn, 0)
	c.fire()
	return &Token{done: c}
}

// Cancel stops every animation started by the request that has not yet
// settled. Presentation values jump to their logical values and the
// completion fires with false. No-op once the request has settled.
func (t *Token) Cancel() {
	if t == nil || t.done.fired {
		return
	}
	for _, cancel := range t.cancels {
		cancel()
	}
}

// Done reports whether the request's completion has fired.
func (t *Token) Done() bool {
	return t == nil || t.done.fired
}

// Completed reports whether the request settled without interruption.
// Only meaningful once Done returns true.
func (t *Token) Completed() bool {
	return t == nil || (t.done.fired && t.done.ok)
}
