package sway

import (
	"testing"
	"time"
)

func TestDisplayLinkOrder(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	var order []string
	link.Add(TickerFunc(func(float64) bool { order = append(order, "a"); return true }))
	link.Add(TickerFunc(func(float64) bool { order = append(order, "b"); return true }))
	link.Post(func() { order = append(order, "posted") })

	link.Step()
	want := []string{"posted", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDisplayLinkDropsFinishedTickers(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	n := 0
	link.Add(TickerFunc(func(float64) bool { n++; return n < 3 }))
	for i := 0; i < 5; i++ {
		link.Step()
	}
	if n != 3 {
		t.Errorf("ticked %d times, want 3", n)
	}
	if link.Running() {
		t.Error("link should be idle")
	}
}

func TestDisplayLinkAddDuringStep(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	var late int
	link.Add(TickerFunc(func(float64) bool {
		link.Add(TickerFunc(func(float64) bool { late++; return false }))
		return false
	}))
	link.Step()
	if late != 0 {
		t.Error("ticker added during Step should wait for the next Step")
	}
	link.Step()
	if late != 1 {
		t.Errorf("late ticker ran %d times, want 1", late)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	n := 0
	sub := link.Add(TickerFunc(func(float64) bool { n++; return true }))
	link.Step()
	sub.Cancel()
	sub.Cancel()
	link.Step()
	if n != 1 || sub.Active() || link.Len() != 0 {
		t.Errorf("n=%d active=%v len=%d", n, sub.Active(), link.Len())
	}
	var nilSub *Subscription
	nilSub.Cancel()
	if nilSub.Active() {
		t.Error("nil subscription should be inactive")
	}
}

func TestDisplayLinkSharedTimestamp(t *testing.T) {
	clock := &ManualTime{T: 3}
	link := NewDisplayLink(clock)
	var seen []float64
	for i := 0; i < 3; i++ {
		link.Add(TickerFunc(func(now float64) bool { seen = append(seen, now); return false }))
	}
	link.Step()
	for _, v := range seen {
		if v != 3 {
			t.Errorf("timestamps = %v, want all 3", seen)
		}
	}
}

func TestPeriodicClockIdempotent(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	n := 0
	c := NewPeriodicClock(link, func(float64) { n++ })

	c.Stop()
	c.Start()
	c.Start()
	if link.Len() != 1 || !c.IsRunning() {
		t.Fatalf("Len=%d running=%v, want one subscription", link.Len(), c.IsRunning())
	}
	link.Step()
	link.Step()
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
	c.Stop()
	c.Stop()
	link.Step()
	if n != 2 || c.IsRunning() {
		t.Errorf("fired %d times after Stop, running=%v", n, c.IsRunning())
	}
}

func TestPeriodicClockStopFromCallback(t *testing.T) {
	link := NewDisplayLink(&ManualTime{})
	n := 0
	var c *PeriodicClock
	c = NewPeriodicClock(link, func(float64) {
		n++
		c.Stop()
	})
	c.Start()
	link.Step()
	link.Step()
	if n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}
}

func TestManualTime(t *testing.T) {
	clock := &ManualTime{}
	clock.Advance(0.5)
	clock.Advance(0.25)
	if clock.Now() != 0.75 {
		t.Errorf("Now = %v, want 0.75", clock.Now())
	}
}

func TestSystemTimeMonotonic(t *testing.T) {
	ts := SystemTime()
	a := ts.Now()
	b := ts.Now()
	if b < a || a < 0 {
		t.Errorf("timestamps %v then %v", a, b)
	}
	if NewDisplayLink(nil).time == nil {
		t.Error("nil time source should default to SystemTime")
	}
}

func TestRunRealtime(t *testing.T) {
	clock := &ManualTime{}
	link := NewDisplayLink(clock)
	n := 0
	link.Add(TickerFunc(func(float64) bool { n++; return n < 3 }))

	queue := make(chan func())
	stop := make(chan struct{})
	link.RunRealtime(time.Millisecond, queue, stop)

	// Drain the queue on this goroutine, as a UI thread would.
	for i := 0; i < 3; i++ {
		select {
		case fn := <-queue:
			fn()
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a frame")
		}
	}
	close(stop)
	if n != 3 {
		t.Errorf("ticked %d times, want 3", n)
	}
	if link.Running() {
		t.Error("link should be idle after the ticker finished")
	}
}
