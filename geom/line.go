package geom

import (
	"fmt"
	"math"
)

// An infinite line through pv+offset with direction v. The two derived points
// P = pv+offset and Q = pv+v+offset are memoized and cleared on Translate.
type Line struct {
	pv, v, offset Vector
	p, q          *Point
}

func NewLine(pv, v Vector) *Line {
	return NewLineWithOffset(pv, v, Vector{})
}

func NewLineWithOffset(pv, v, offset Vector) *Line {
	if v.DX == 0 && v.DY == 0 {
		fatalf("line direction must not be the zero vector")
	}
	return &Line{pv: pv, v: v, offset: offset}
}

// The line through two points. The points must be distinct within eps.
func NewLineThrough(p, q Point, eps float64) *Line {
	if p.Equals(q, eps) {
		fatalf("cannot define a line through coincident points %v and %v", p, q)
	}
	return NewLineWithOffset(p.Rel(), q.Sub(p), p.Offset())
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) P() Point {
	if l.p == nil {
		p := NewPointWithOffset(l.pv, l.offset)
		l.p = &p
	}
	return *l.p
}

func (l *Line) Q() Point {
	if l.q == nil {
		q := NewPointWithOffset(l.pv.Add(l.v), l.offset)
		l.q = &q
	}
	return *l.q
}

func (l *Line) Direction() Vector {
	return l.v
}

func (l *Line) Offset() Vector {
	return l.offset
}

// Signed perpendicular distance of a point from the line, positive on the
// left when looking along the direction.
func (l *Line) signedDistance(pt Point) float64 {
	return l.v.Unit().Det(pt.Sub(l.P()))
}

func (l *Line) Distance(pt Point) float64 {
	return math.Abs(l.signedDistance(pt))
}

func (l *Line) IntersectsPoint(pt Point, eps float64) bool {
	return l.Distance(pt) <= eps
}

// The foot of the perpendicular from pt onto the line.
func (l *Line) Project(pt Point) Point {
	p := l.P()
	t := pt.Sub(p).Dot(l.v) / l.v.Dot(l.v)
	return p.Translate(l.v.Scale(t))
}

// The line through at, perpendicular to this one.
func (l *Line) Perpendicular(at Point) *Line {
	return NewLineWithOffset(at.Rel(), l.v.Orthogonal(), at.Offset())
}

func (l *Line) IsParallel(o *Line, eps float64) bool {
	return l.v.IsScalarMultipleEps(o.v, eps)
}

// Lines are equal when both of this line's derived points lie on the other.
func (l *Line) Equals(o *Line, eps float64) bool {
	return o.IntersectsPoint(l.P(), eps) && o.IntersectsPoint(l.Q(), eps)
}

// Check if a and b are on the same side of the line. A point on the line is on
// the same side as everything.
func (l *Line) IsOnSameSide(a, b Point, eps float64) bool {
	if l.IntersectsPoint(a, eps) || l.IntersectsPoint(b, eps) {
		return true
	}
	return l.signedDistance(a)*l.signedDistance(b) >= -eps
}

// Intersect two lines. Returns nil for distinct parallel lines, a copy of this
// line for coincident lines, and otherwise the crossing Point.
func (l *Line) Intersection(o *Line, eps float64) Shape {
	if l.IsParallel(o, eps) {
		if l.Equals(o, eps) {
			return l.Clone()
		}
		if pt, ok := l.shallowCrossing(o); ok && l.IntersectsPoint(pt, eps) && o.IntersectsPoint(pt, eps) {
			return pt
		}
		return nil
	}
	return l.crossing(o)
}

// Lines parallel within eps may still cross at a shallow angle. The crossing
// exists unless the directions are exactly parallel; callers must check that
// it lies on both pieces.
func (l *Line) shallowCrossing(o *Line) (Point, bool) {
	if l.v.Det(o.v) == 0 {
		return Point{}, false
	}
	return l.crossing(o), true
}

// The crossing point of two non-parallel lines. Solves P + t·v = O + u·w by
// crossing both sides with w.
func (l *Line) crossing(o *Line) Point {
	p := l.P()
	t := o.P().Sub(p).Det(o.v) / l.v.Det(o.v)
	return p.Translate(l.v.Scale(t))
}

func (l *Line) IntersectionSegment(s *Segment, eps float64) Shape {
	return s.IntersectionLine(l, eps)
}

func (l *Line) IntersectionRay(r *Ray, eps float64) Shape {
	return r.IntersectionLine(l, eps)
}

func (l *Line) Translate(v Vector) {
	l.offset = l.offset.Add(v)
	l.p, l.q = nil, nil
}

func (l *Line) Rotate(pivot Point, theta float64) *Line {
	p := l.P().Rotate(pivot, theta)
	return NewLineWithOffset(p.Rel(), l.v.Rotate(theta), p.Offset())
}

func (l *Line) Clone() *Line {
	return &Line{pv: l.pv, v: l.v, offset: l.offset}
}

func (l *Line) String() string {
	return fmt.Sprintf("Line{%v + t%v}", l.P(), l.v)
}
