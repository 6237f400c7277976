// Package geom provides small 2D helpers for reasoning about lofted frustum
// cross-sections: linear interpolation between paired convex polygons and
// inward offsets for constant wall thickness. The solid-modeling kernel does
// the actual lofting; these helpers exist so callers can compute where
// material will be at a given height (wire slots, validation, tests).
package geom

import (
	"errors"
	"math"
)

// Point is a 2D point in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	ErrZeroHeight     = errors.New("height must be non-zero")
	ErrVertexMismatch = errors.New("polygons must have the same number of vertices")
	ErrDegenerate     = errors.New("degenerate polygon")
)

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two points.
func LerpPoint(p0, p1 Point, t float64) Point {
	return Point{
		X: Lerp(p0.X, p1.X, t),
		Y: Lerp(p0.Y, p1.Y, t),
	}
}

// RectPolygon returns the CCW corner points of a w x h rectangle centered
// on the origin.
func RectPolygon(w, h float64) []Point {
	return []Point{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: w / 2, Y: h / 2},
		{X: -w / 2, Y: h / 2},
	}
}

// FrustumPolygonAtZ returns the cross-section polygon at height z between
// base (at z=0) and top (at z=height), assuming both polygons are convex
// with the same vertex count and corresponding vertices paired.
func FrustumPolygonAtZ(z, height float64, base, top []Point) ([]Point, error) {
	if height == 0 {
		return nil, ErrZeroHeight
	}
	if len(base) != len(top) {
		return nil, ErrVertexMismatch
	}
	t := z / height
	out := make([]Point, len(base))
	for i := range base {
		out[i] = LerpPoint(base[i], top[i], t)
	}
	return out, nil
}

// OffsetConvexInward offsets a convex CCW polygon inward by d. Each edge is
// shifted along its inward normal and adjacent shifted edges are
// re-intersected. Returns ErrDegenerate for polygons with fewer than three
// vertices, repeated vertices, or parallel adjacent edges.
func OffsetConvexInward(poly []Point, d float64) ([]Point, error) {
	n := len(poly)
	if n < 3 {
		return nil, ErrDegenerate
	}

	type segment struct {
		p, q Point
	}
	shifted := make([]segment, n)
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		ex, ey := q.X-p.X, q.Y-p.Y
		length := math.Hypot(ex, ey)
		if length == 0 {
			return nil, ErrDegenerate
		}
		// Interior of a CCW polygon lies to the left of each edge.
		nx, ny := -ey/length, ex/length
		shifted[i] = segment{
			p: Point{X: p.X + nx*d, Y: p.Y + ny*d},
			q: Point{X: q.X + nx*d, Y: q.Y + ny*d},
		}
	}

	out := make([]Point, n)
	for i := 0; i < n; i++ {
		prev := shifted[(i+n-1)%n]
		cur := shifted[i]
		ip, ok := lineIntersection(prev.p, prev.q, cur.p, cur.q)
		if !ok {
			return nil, ErrDegenerate
		}
		out[i] = ip
	}
	return out, nil
}

// FrustumInnerPolygonAtZ returns the interior cross-section at height z for
// a frustum with a constant wall thickness.
func FrustumInnerPolygonAtZ(z, height float64, base, top []Point, wall float64) ([]Point, error) {
	outer, err := FrustumPolygonAtZ(z, height, base, top)
	if err != nil {
		return nil, err
	}
	return OffsetConvexInward(outer, wall)
}

// lineIntersection returns the intersection of the infinite lines through
// (a1,a2) and (b1,b2). ok is false when the lines are parallel.
func lineIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1x, d1y := a2.X-a1.X, a2.Y-a1.Y
	d2x, d2y := b2.X-b1.X, b2.Y-b1.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	return Point{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, true
}
