package sway

// AnimationGroup batches channel animations that share one duration, curve
// and completion, and runs them on the DisplayLink's group path rather than
// through each layer's own ticker. It is the host-style group-animation
// facility used for effect layers animated with the Legacy curve.
//
// A group whose layer leaves the scene is suspended: the link drops it and
// resume puts it back when the layer is attached again.
type AnimationGroup struct {
	members   []animChannel
	done      *completion
	finished  bool
	suspended bool
	linked    bool
}

func newAnimationGroup(done *completion) *AnimationGroup {
	return &AnimationGroup{done: done}
}

func (g *AnimationGroup) add(ch animChannel) {
	g.members = append(g.members, ch)
}

// Tick advances every member still owned by the group. Members that were
// superseded by a newer request are skipped; the group finishes once no
// member is left running.
func (g *AnimationGroup) Tick(now float64) bool {
	if g.finished {
		return false
	}
	alive := false
	for _, ch := range g.members {
		if ch.tickGrouped(g, now) {
			alive = true
		}
	}
	if !alive {
		g.finished = true
	}
	return alive
}

func (g *AnimationGroup) suspend() {
	g.suspended = true
}

func (g *AnimationGroup) resume(link *DisplayLink) {
	g.suspended = false
	if !g.linked && !g.finished {
		link.addGroup(g)
	}
}

// Finished reports whether every member has settled.
func (g *AnimationGroup) Finished() bool {
	return g.finished
}
