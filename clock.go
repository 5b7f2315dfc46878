package sway

import "time"

// TimeSource reports a monotonic timestamp in seconds.
type TimeSource interface {
	Now() float64
}

type systemTime struct {
	epoch time.Time
}

// SystemTime returns a TimeSource backed by the monotonic wall clock, measured
// from the moment it was created.
func SystemTime() TimeSource {
	return systemTime{epoch: time.Now()}
}

func (s systemTime) Now() float64 {
	return time.Since(s.epoch).Seconds()
}

// ManualTime is a TimeSource advanced explicitly, for tests and scripted runs.
type ManualTime struct {
	T float64
}

// Now returns the current manual timestamp.
func (m *ManualTime) Now() float64 { return m.T }

// Advance moves the clock forward by dt seconds.
func (m *ManualTime) Advance(dt float64) { m.T += dt }

// Ticker is anything advanced once per display frame. Tick returns false when
// it no longer needs frames; the DisplayLink then drops it.
type Ticker interface {
	Tick(now float64) bool
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(now float64) bool

// Tick calls f.
func (f TickerFunc) Tick(now float64) bool { return f(now) }

// Subscription is the handle returned by DisplayLink.Add.
type Subscription struct {
	ticker Ticker
	active bool
}

// Cancel removes the subscription before its next tick. Safe to call more than
// once and from inside a tick.
func (s *Subscription) Cancel() {
	if s != nil {
		s.active = false
	}
}

// Active reports whether the subscription will receive further ticks.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// DisplayLink is the frame scheduler: it owns an ordered list of tickers and
// calls them once per Step with a shared timestamp. There is no global
// registry; each Scene owns one link and components subscribe through it.
//
// DisplayLink is not safe for concurrent use. All calls happen on the UI
// thread; RunRealtime marshals its ticks onto that thread.
type DisplayLink struct {
	time   TimeSource
	subs   []*Subscription
	groups []*AnimationGroup
	posted []func()

	steps     uint64
	lastTicks int
}

// NewDisplayLink creates a link reading timestamps from ts. A nil ts uses
// SystemTime.
func NewDisplayLink(ts TimeSource) *DisplayLink {
	if ts == nil {
		ts = SystemTime()
	}
	return &DisplayLink{time: ts}
}

// Now returns the link's current timestamp.
func (l *DisplayLink) Now() float64 {
	return l.time.Now()
}

// Add subscribes t. Tickers are called in the order they were added.
// Tickers added during a Step first run on the following Step.
func (l *DisplayLink) Add(t Ticker) *Subscription {
	s := &Subscription{ticker: t, active: true}
	l.subs = append(l.subs, s)
	return s
}

// Post schedules fn to run at the start of the next Step, before any ticker.
func (l *DisplayLink) Post(fn func()) {
	l.posted = append(l.posted, fn)
}

// addGroup registers a batched animation group. Groups tick after all
// individual subscribers.
func (l *DisplayLink) addGroup(g *AnimationGroup) {
	g.linked = true
	l.groups = append(l.groups, g)
}

// Running reports whether any subscriber, group or posted task is pending.
// An idle link lets the host skip frame work.
func (l *DisplayLink) Running() bool {
	return l.Len() > 0 || len(l.groups) > 0 || len(l.posted) > 0
}

// Len returns the number of active subscribers.
func (l *DisplayLink) Len() int {
	n := 0
	for _, s := range l.subs {
		if s.active {
			n++
		}
	}
	return n
}

// Step runs one frame: posted tasks, then subscribers in registration order,
// then animation groups. Subscribers returning false are removed.
func (l *DisplayLink) Step() {
	l.steps++
	now := l.time.Now()

	if len(l.posted) > 0 {
		tasks := l.posted
		l.posted = nil
		for _, fn := range tasks {
			fn()
		}
	}

	ticks := 0
	n := len(l.subs)
	for i := 0; i < n; i++ {
		s := l.subs[i]
		if !s.active {
			continue
		}
		ticks++
		if !s.ticker.Tick(now) {
			s.active = false
		}
	}

	ng := len(l.groups)
	for i := 0; i < ng; i++ {
		g := l.groups[i]
		if !g.finished && !g.suspended {
			ticks++
			g.Tick(now)
		}
	}
	l.lastTicks = ticks

	l.compact()
}

// compact drops inactive subscribers and finished or suspended groups,
// preserving order.
func (l *DisplayLink) compact() {
	live := l.subs[:0]
	for _, s := range l.subs {
		if s.active {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(l.subs); i++ {
		l.subs[i] = nil
	}
	l.subs = live

	groups := l.groups[:0]
	for _, g := range l.groups {
		if !g.finished && !g.suspended {
			groups = append(groups, g)
		} else {
			g.linked = false
		}
	}
	for i := len(groups); i < len(l.groups); i++ {
		l.groups[i] = nil
	}
	l.groups = groups
}

// RunRealtime drives the link from a time.Ticker for hosts without their own
// frame loop. Each tick posts l.Step onto eventQueue so it runs on the UI
// thread; the goroutine exits when stop is closed.
func (l *DisplayLink) RunRealtime(interval time.Duration, eventQueue chan<- func(), stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case eventQueue <- l.Step:
				case <-stop:
					return
				}
			}
		}
	}()
}

// PeriodicClock is a start/stop repeating per-frame callback on a DisplayLink.
// Start and Stop are idempotent.
type PeriodicClock struct {
	link *DisplayLink
	fn   func(now float64)
	sub  *Subscription
}

// NewPeriodicClock creates a stopped clock that calls fn on every frame of link
// while running.
func NewPeriodicClock(link *DisplayLink, fn func(now float64)) *PeriodicClock {
	return &PeriodicClock{link: link, fn: fn}
}

// Start begins per-frame callbacks. No-op if already running.
func (c *PeriodicClock) Start() {
	if c.IsRunning() {
		return
	}
	c.sub = c.link.Add(TickerFunc(func(now float64) bool {
		c.fn(now)
		return true
	}))
}

// Stop ends per-frame callbacks. No-op if already stopped.
func (c *PeriodicClock) Stop() {
	c.sub.Cancel()
	c.sub = nil
}

// IsRunning reports whether the clock is subscribed.
func (c *PeriodicClock) IsRunning() bool {
	return c.sub.Active()
}
