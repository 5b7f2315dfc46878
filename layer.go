package sway

// layerIDCounter is a plain counter (no atomic: sway is single-threaded).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is a renderable output in the retained view tree. It keeps a logical
// and a presentation value for each animatable channel: frame origin, frame
// size, opacity, uniform scale and stroke-end fraction. Transitions are
// applied with the Update* functions; the layer registers itself with its
// Scene's DisplayLink while any of its channels is animating.
type Layer struct {
	// Identity
	ID   uint32
	Name string
	Kind LayerKind

	// Hierarchy
	Parent   *Layer
	children []*Layer

	// Appearance (not animated)
	Color       Color
	StrokeColor Color
	StrokeWidth float64
	Visible     bool
	// ClipsToBounds restricts drawing of children to the layer's frame.
	// Ignored while the layer is scaled.
	ClipsToBounds bool

	// Metadata
	UserData any

	// OnPresent, if set, is called whenever a presentation value of the layer
	// changes, with the channel that changed.
	OnPresent func(l *Layer, ch Channel)

	position  *channel[Vec2]
	size      *channel[Size]
	alpha     *channel[float64]
	scale     *channel[float64]
	strokeEnd *channel[float64]
	keyframes *keyframes
	channels  [6]animChannel

	// boundsOrigin offsets children, like a clip view's scroll position.
	boundsOrigin Vec2

	// Computed by Scene.Draw from presentation values.
	worldTransform [6]float64
	worldAlpha     float64

	sub      *Subscription
	scene    *Scene // set on scene roots only
	dirty    bool
	disposed bool
}

// NewLayer creates a visible layer with the given frame, full opacity, unit
// scale and a fully drawn stroke.
func NewLayer(name string, kind LayerKind, frame Rect) *Layer {
	l := &Layer{
		ID:          nextLayerID(),
		Name:        name,
		Kind:        kind,
		Color:       ColorWhite,
		StrokeColor: ColorWhite,
		Visible:     true,
		dirty:       true,

		worldTransform: identityTransform,
		worldAlpha:     1,
	}
	l.position = newChannel(l, ChannelPosition, frame.Origin(), LerpVec2)
	l.size = newChannel(l, ChannelSize, frame.Size(), LerpSize)
	l.alpha = newChannel(l, ChannelAlpha, 1.0, LerpFloat)
	l.scale = newChannel(l, ChannelScale, 1.0, LerpFloat)
	l.strokeEnd = newChannel(l, ChannelStrokeEnd, 1.0, LerpFloat)
	l.keyframes = &keyframes{layer: l}
	l.channels = [6]animChannel{l.position, l.size, l.alpha, l.scale, l.strokeEnd, l.keyframes}
	return l
}

// --- Values ---

// Frame returns the logical frame.
func (l *Layer) Frame() Rect {
	return RectFrom(l.position.prop.value, l.size.prop.value)
}

// PresentationFrame returns the frame currently on screen.
func (l *Layer) PresentationFrame() Rect {
	return RectFrom(l.position.prop.presentation, l.size.prop.presentation)
}

// Alpha returns the logical opacity.
func (l *Layer) Alpha() float64 { return l.alpha.prop.value }

// PresentationAlpha returns the opacity currently on screen.
func (l *Layer) PresentationAlpha() float64 { return l.alpha.prop.presentation }

// Scale returns the logical uniform scale.
func (l *Layer) Scale() float64 { return l.scale.prop.value }

// PresentationScale returns the scale currently on screen.
func (l *Layer) PresentationScale() float64 { return l.scale.prop.presentation }

// StrokeEnd returns the logical stroke-end fraction.
func (l *Layer) StrokeEnd() float64 { return l.strokeEnd.prop.value }

// PresentationStrokeEnd returns the stroke-end fraction currently on screen.
func (l *Layer) PresentationStrokeEnd() float64 { return l.strokeEnd.prop.presentation }

// BoundsOrigin returns the offset applied to children.
func (l *Layer) BoundsOrigin() Vec2 { return l.boundsOrigin }

// SetBoundsOrigin sets the offset applied to children and marks the layer dirty.
func (l *Layer) SetBoundsOrigin(o Vec2) {
	if l.boundsOrigin == o {
		return
	}
	l.boundsOrigin = o
	l.MarkDirty()
}

// IsAnimating reports whether the given channel has an animation in flight.
func (l *Layer) IsAnimating(ch Channel) bool {
	switch ch {
	case ChannelPosition:
		return l.position.prop.IsAnimating() || l.keyframes.active
	case ChannelSize:
		return l.size.prop.IsAnimating()
	case ChannelAlpha:
		return l.alpha.prop.IsAnimating()
	case ChannelScale:
		return l.scale.prop.IsAnimating()
	case ChannelStrokeEnd:
		return l.strokeEnd.prop.IsAnimating()
	case ChannelKeyframes:
		return l.keyframes.active
	}
	return false
}

// MarkDirty flags the layer for redraw.
func (l *Layer) MarkDirty() {
	l.dirty = true
}

// Dirty reports whether the layer changed since ClearDirty.
func (l *Layer) Dirty() bool { return l.dirty }

// ClearDirty resets the dirty flag; the renderer calls it after drawing.
func (l *Layer) ClearDirty() { l.dirty = false }

// --- Scheduling ---

// Scene returns the scene the layer is attached to, or nil when detached.
func (l *Layer) Scene() *Scene {
	for p := l; p != nil; p = p.Parent {
		if p.scene != nil {
			return p.scene
		}
	}
	return nil
}

// link returns the display link of the layer's scene, or nil when detached.
func (l *Layer) link() *DisplayLink {
	if s := l.Scene(); s != nil {
		return s.link
	}
	return nil
}

// Tick advances every channel not owned by an animation group, in a fixed
// order, and reports whether any still needs frames.
func (l *Layer) Tick(now float64) bool {
	if l.disposed {
		return false
	}
	for _, ch := range l.channels {
		ch.tick(now)
	}
	// A completion may have started new animations during the loop.
	return l.needsTicks()
}

func (l *Layer) needsTicks() bool {
	for _, ch := range l.channels {
		if ch.animating() {
			return true
		}
	}
	return false
}

func (l *Layer) ensureTicking(link *DisplayLink) {
	if !l.sub.Active() {
		l.sub = link.Add(l)
	}
}

func (l *Layer) presented(ch Channel) {
	l.dirty = true
	if l.OnPresent != nil {
		l.OnPresent(l, ch)
	}
}

func (l *Layer) emit(ch Channel, completed bool) {
	s := l.Scene()
	if s == nil {
		return
	}
	s.emitTransition(TransitionEvent{
		LayerID:   l.ID,
		LayerName: l.Name,
		Channel:   ch,
		Completed: completed,
	})
}

// --- Tree manipulation ---

// AddChild appends child to this layer's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this layer (cycle).
func (l *Layer) AddChild(child *Layer) {
	if child == nil {
		panic("sway: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(l, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, l) {
		panic("sway: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = l
	l.children = append(l.children, child)
	l.dirty = true
	if globalDebug {
		debugCheckTreeDepth(child)
	}
	if link := l.link(); link != nil {
		resumeSubtree(child, link)
	}
}

// RemoveChild detaches child from this layer. In-flight animations stay on
// the child and resume if it is attached to a scene again.
// Panics if child.Parent != l.
func (l *Layer) RemoveChild(child *Layer) {
	if child.Parent != l {
		panic("sway: child's parent is not this layer")
	}
	l.removeChildByPtr(child)
	child.Parent = nil
	suspendSubtree(child)
	l.dirty = true
}

// RemoveFromParent detaches this layer from its parent.
// No-op if this layer has no parent.
func (l *Layer) RemoveFromParent() {
	if l.Parent == nil {
		return
	}
	l.Parent.RemoveChild(l)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (l *Layer) Children() []*Layer {
	return l.children
}

// NumChildren returns the number of children.
func (l *Layer) NumChildren() int {
	return len(l.children)
}

// Find returns the first layer named name in this subtree, depth first,
// or nil.
func (l *Layer) Find(name string) *Layer {
	if l.Name == name {
		return l
	}
	for _, child := range l.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this layer from its parent, drops every in-flight animation
// without firing completions, and recursively disposes all descendants.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.RemoveFromParent()
	l.dispose()
}

func (l *Layer) dispose() {
	l.disposed = true
	for _, ch := range l.channels {
		ch.dispose()
	}
	l.sub.Cancel()
	l.sub = nil
	for _, child := range l.children {
		child.Parent = nil
		child.dispose()
	}
	l.children = nil
	l.Parent = nil
	l.UserData = nil
	l.OnPresent = nil
}

// IsDisposed returns true if this layer has been disposed.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of layer.
func isAncestor(candidate, layer *Layer) bool {
	for p := layer; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from l.children without clearing child.Parent.
func (l *Layer) removeChildByPtr(child *Layer) {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			return
		}
	}
}

// resumeSubtree re-subscribes layers that still have animations in flight,
// including suspended animation groups.
func resumeSubtree(l *Layer, link *DisplayLink) {
	if l.needsTicks() {
		l.ensureTicking(link)
	}
	for _, ch := range l.channels {
		if g := ch.owner(); g != nil {
			g.resume(link)
		}
	}
	for _, child := range l.children {
		resumeSubtree(child, link)
	}
}

// suspendSubtree drops the link subscriptions of a detached subtree.
func suspendSubtree(l *Layer) {
	l.sub.Cancel()
	l.sub = nil
	for _, ch := range l.channels {
		if g := ch.owner(); g != nil {
			g.suspend()
		}
	}
	for _, child := range l.children {
		suspendSubtree(child)
	}
}
