package sway

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawKind identifies the kind of draw item.
type drawKind uint8

const (
	drawFill   drawKind = iota // filled frame rectangle
	drawStroke                 // stroke-end ring inscribed in the frame
)

// ringSegments is the number of line segments in a full stroke ring.
const ringSegments = 64

// drawItem is a single draw instruction emitted during tree traversal.
type drawItem struct {
	kind      drawKind
	transform [6]float64
	size      Size
	color     color.RGBA
	width     float64 // stroke width
	end       float64 // stroke-end fraction
	clip      image.Rectangle
	clipped   bool
}

// Draw renders the presentation state of the layer tree to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA(1))
	}
	s.drawBuf = s.drawBuf[:0]
	s.traverse(s.root, identityTransform, 1, image.Rectangle{}, false)
	s.submit(screen)
	s.flushScreenshots(screen)
}

// traverse walks the layer tree depth-first, updating world transforms and
// emitting draw items for visible layers.
func (s *Scene) traverse(l *Layer, parentTransform [6]float64, parentAlpha float64, clip image.Rectangle, clipped bool) {
	if !l.Visible || l.disposed {
		return
	}
	l.worldTransform = multiplyAffine(parentTransform, computeLayerTransform(l))
	l.worldAlpha = parentAlpha * l.PresentationAlpha()
	l.ClearDirty()
	if l.worldAlpha <= 0 {
		return
	}

	size := l.size.prop.presentation
	if size.Width > 0 && size.Height > 0 {
		if l.Color.A > 0 {
			s.drawBuf = append(s.drawBuf, drawItem{
				kind:      drawFill,
				transform: l.worldTransform,
				size:      size,
				color:     l.Color.toRGBA(l.worldAlpha),
				clip:      clip,
				clipped:   clipped,
			})
		}
		if end := l.PresentationStrokeEnd(); l.StrokeWidth > 0 && end > 0 && l.StrokeColor.A > 0 {
			s.drawBuf = append(s.drawBuf, drawItem{
				kind:      drawStroke,
				transform: l.worldTransform,
				size:      size,
				color:     l.StrokeColor.toRGBA(l.worldAlpha),
				width:     l.StrokeWidth,
				end:       end,
				clip:      clip,
				clipped:   clipped,
			})
		}
	}

	if len(l.children) == 0 {
		return
	}
	if l.ClipsToBounds && isAxisAligned(l.worldTransform) {
		x, y := l.worldTransform[4], l.worldTransform[5]
		r := image.Rect(
			int(math.Floor(x)), int(math.Floor(y)),
			int(math.Ceil(x+size.Width)), int(math.Ceil(y+size.Height)),
		)
		if clipped {
			r = r.Intersect(clip)
		}
		clip, clipped = r, true
	}
	childTransform := multiplyAffine(l.worldTransform, translateAffine(-l.boundsOrigin.X, -l.boundsOrigin.Y))
	for _, child := range l.children {
		s.traverse(child, childTransform, l.worldAlpha, clip, clipped)
	}
}

// submit draws the collected items in tree order.
func (s *Scene) submit(screen *ebiten.Image) {
	for i := range s.drawBuf {
		item := &s.drawBuf[i]
		dst := screen
		if item.clipped {
			if item.clip.Empty() {
				continue
			}
			dst = screen.SubImage(item.clip).(*ebiten.Image)
		}
		var path vector.Path
		switch item.kind {
		case drawFill:
			rectPath(&path, item)
			drawOp := &vector.DrawPathOptions{AntiAlias: true}
			drawOp.ColorScale.ScaleWithColor(item.color)
			vector.FillPath(dst, &path, nil, drawOp)
		case drawStroke:
			ringPath(&path, item)
			scale := math.Sqrt(math.Abs(item.transform[0]*item.transform[3] - item.transform[1]*item.transform[2]))
			strokeOp := &vector.StrokeOptions{Width: float32(item.width * scale)}
			drawOp := &vector.DrawPathOptions{AntiAlias: true}
			drawOp.ColorScale.ScaleWithColor(item.color)
			vector.StrokePath(dst, &path, strokeOp, drawOp)
		}
	}
}

// rectPath traces the item's frame rectangle in screen space.
func rectPath(path *vector.Path, item *drawItem) {
	m := item.transform
	w, h := item.size.Width, item.size.Height
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, w, 0)
	x2, y2 := transformPoint(m, w, h)
	x3, y3 := transformPoint(m, 0, h)
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()
}

// ringPath traces the first end fraction of the ellipse inscribed in the
// item's frame, clockwise from twelve o'clock.
func ringPath(path *vector.Path, item *drawItem) {
	cx, cy := item.size.Width/2, item.size.Height/2
	rx, ry := cx-item.width/2, cy-item.width/2
	if rx <= 0 || ry <= 0 {
		return
	}
	n := int(math.Ceil(ringSegments * item.end))
	if n < 1 {
		n = 1
	}
	sweep := 2 * math.Pi * item.end
	for i := 0; i <= n; i++ {
		a := -math.Pi/2 + sweep*float64(i)/float64(n)
		x, y := transformPoint(item.transform, cx+rx*math.Cos(a), cy+ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	if item.end >= 1 {
		path.Close()
	}
}
