package geom

import (
	"fmt"
	"math"
)

// An absolute position, stored as a relative vector plus an offset. The
// absolute position is always rel + offset; every method that changes one of
// the two adjusts the other so the invariant holds.
type Point struct {
	rel, offset Vector
}

func NewPoint(x, y float64) Point {
	return Point{rel: Vector{x, y}}
}

func NewPointWithOffset(rel, offset Vector) Point {
	return Point{rel: rel, offset: offset}
}

func (p Point) X() float64 {
	return p.rel.DX + p.offset.DX
}

func (p Point) Y() float64 {
	return p.rel.DY + p.offset.DY
}

// The absolute position as a vector from the origin.
func (p Point) Vector() Vector {
	return p.rel.Add(p.offset)
}

func (p Point) Rel() Vector {
	return p.rel
}

func (p Point) Offset() Vector {
	return p.offset
}

// Replace the offset, keeping the absolute position.
func (p Point) WithOffset(offset Vector) Point {
	return Point{rel: p.Vector().Sub(offset), offset: offset}
}

// Replace the relative part, keeping the absolute position.
func (p Point) WithRel(rel Vector) Point {
	return Point{rel: rel, offset: p.Vector().Sub(rel)}
}

func (p Point) Equals(q Point, eps float64) bool {
	return Equal(p.X(), q.X(), eps) && Equal(p.Y(), q.Y(), eps)
}

// Order points by y, then x, ascending. Returns -1, 0 or 1. The comparison is
// exact so that sorting is a strict weak order.
func (p Point) Compare(q Point) int {
	switch {
	case p.Y() < q.Y():
		return -1
	case p.Y() > q.Y():
		return 1
	case p.X() < q.X():
		return -1
	case p.X() > q.X():
		return 1
	}
	return 0
}

// The vector from q to p.
func (p Point) Sub(q Point) Vector {
	return p.Vector().Sub(q.Vector())
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Move the point by v. The offset absorbs the move.
func (p Point) Translate(v Vector) Point {
	return Point{rel: p.rel, offset: p.offset.Add(v)}
}

// Rotate about pivot by theta radians, positive clockwise. The offset is kept
// and the relative part absorbs the rotation.
func (p Point) Rotate(pivot Point, theta float64) Point {
	theta = NormalizeAngle(theta)
	if theta == 0 {
		return p
	}
	abs := pivot.Vector().Add(p.Sub(pivot).Rotate(theta))
	return Point{rel: abs.Sub(p.offset), offset: p.offset}
}

// Check if the point lies in the strip between the two lines perpendicular to
// a→b through a and through b. This does not check collinearity.
func (p Point) IsBetween(a, b Point, eps float64) bool {
	if a.Equals(b, eps) {
		return p.Equals(a, eps)
	}
	ab := b.Sub(a)
	atA := NewLine(a.Vector(), ab.Orthogonal())
	atB := NewLine(b.Vector(), ab.Orthogonal())
	return atA.IsOnSameSide(p, b, eps) && atB.IsOnSameSide(p, a, eps)
}

func (p Point) AABB() *AABB {
	return NewAABB(p)
}

func (p Point) Points() []Point {
	return []Point{p}
}

func (p Point) Edges() []*Segment {
	return nil
}

func (p Point) IntersectsPoint(q Point, eps float64) bool {
	return p.Equals(q, eps)
}

// Points have no interior.
func (p Point) ContainsPoint(q Point, eps float64) bool {
	return false
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}

// Remove points that are equal within eps to an earlier point, keeping the
// order of first appearance.
func GetUnique(points []Point, eps float64) []Point {
	unique := make([]Point, 0, len(points))
outer:
	for _, p := range points {
		for _, u := range unique {
			if p.Equals(u, eps) {
				continue outer
			}
		}
		unique = append(unique, p)
	}
	return unique
}

// Find the two points furthest from one another. Used to collapse a collinear
// point set to the segment that spans it.
func farthestPair(points []Point) (Point, Point) {
	var a, b Point
	best := math.Inf(-1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Distance(points[j]); d > best {
				best = d
				a, b = points[i], points[j]
			}
		}
	}
	return a, b
}
