package sway

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLayerTransform computes the local affine matrix of l from its
// presentation frame and scale. Returns [a, b, c, d, tx, ty].
//
// Scale is applied about the frame's center:
//
//	Translate(-w/2, -h/2) -> Scale -> Translate(x+w/2, y+h/2)
func computeLayerTransform(l *Layer) [6]float64 {
	f := l.PresentationFrame()
	s := l.PresentationScale()
	cx, cy := f.Width/2, f.Height/2
	return [6]float64{s, 0, 0, s, f.X + cx - s*cx, f.Y + cy - s*cy}
}

// translateAffine returns a pure translation matrix.
func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// isAxisAligned reports whether m only translates.
func isAxisAligned(m [6]float64) bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1
}

// --- Coordinate conversion ---

// WorldToLocal converts a screen-space point to this layer's coordinate space,
// as of the last Draw.
func (l *Layer) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(l.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a point in this layer's coordinate space to screen
// space, as of the last Draw.
func (l *Layer) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(l.worldTransform, lx, ly)
}
