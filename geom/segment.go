package geom

import (
	"fmt"
	"math"
)

// A bounded line. The wrapped Line's P and Q are the segment's endpoints.
type Segment struct {
	line *Line
	aabb *AABB
}

func NewSegment(p, q Point, eps float64) *Segment {
	if p.Equals(q, eps) {
		fatalf("degenerate segment: endpoints %v and %v coincide", p, q)
	}
	return &Segment{line: NewLineThrough(p, q, eps)}
}

func (s *Segment) Kind() Kind { return KindSegment }

func (s *Segment) P() Point {
	return s.line.P()
}

func (s *Segment) Q() Point {
	return s.line.Q()
}

// The underlying infinite line. Callers must not translate it; translate the
// segment instead.
func (s *Segment) Line() *Line {
	return s.line
}

// The vector from P to Q.
func (s *Segment) Vector() Vector {
	return s.line.v
}

func (s *Segment) Length() float64 {
	return s.line.v.Magnitude()
}

func (s *Segment) Midpoint() Point {
	return s.P().Translate(s.line.v.Scale(0.5))
}

func (s *Segment) Points() []Point {
	return []Point{s.P(), s.Q()}
}

func (s *Segment) Edges() []*Segment {
	return []*Segment{s}
}

func (s *Segment) AABB() *AABB {
	if s.aabb == nil {
		s.aabb = NewAABB(s.P(), s.Q())
	}
	return s.aabb
}

// Fill every lazily derived field, so that later reads do not write.
func (s *Segment) warm() {
	s.AABB()
	s.line.P()
	s.line.Q()
}

// A point is aligned with the segment when it lies in the strip between the
// perpendiculars through P and Q: on the Q side of the one through P, and on
// the P side of the one through Q.
func (s *Segment) IsAligned(pt Point, eps float64) bool {
	p, q := s.P(), s.Q()
	return s.line.Perpendicular(p).IsOnSameSide(pt, q, eps) &&
		s.line.Perpendicular(q).IsOnSameSide(pt, p, eps)
}

func (s *Segment) IntersectsPoint(pt Point, eps float64) bool {
	if s.AABB().IsBeyondPoint(pt, eps) {
		return false
	}
	return s.line.IntersectsPoint(pt, eps) && s.IsAligned(pt, eps)
}

// Segments have no interior.
func (s *Segment) ContainsPoint(pt Point, eps float64) bool {
	return false
}

func (s *Segment) IntersectsSegment(o *Segment, eps float64) bool {
	return s.Intersection(o, eps) != nil
}

// Intersect two segments. The result is nil when they are disjoint, a Point
// when they cross or touch at one point, and the overlapping Segment when they
// are collinear and overlap.
func (s *Segment) Intersection(o *Segment, eps float64) Shape {
	if s.AABB().IsBeyond(o.AABB(), eps) {
		return nil
	}
	if s.line.IsParallel(o.line, eps) {
		if s.line.Equals(o.line, eps) {
			return s.collinearOverlap(o.Points(), o.IsAligned, eps)
		}
		if pt, ok := s.line.shallowCrossing(o.line); ok && s.IntersectsPoint(pt, eps) && o.IntersectsPoint(pt, eps) {
			return pt
		}
		return nil
	}
	pt := s.line.crossing(o.line)
	if s.IsAligned(pt, eps) && o.IsAligned(pt, eps) {
		return pt
	}
	return nil
}

// Resolve the overlap of this segment with a collinear bounded or
// semi-bounded piece. Each of the other piece's defining points is kept if it
// is aligned with this segment, and each of this segment's endpoints is kept if
// it is aligned with the other piece. The overlap is the minimal segment
// spanning whatever survives.
func (s *Segment) collinearOverlap(otherPoints []Point, otherAligned func(Point, float64) bool, eps float64) Shape {
	var aligned []Point
	for _, pt := range otherPoints {
		if s.IsAligned(pt, eps) {
			aligned = append(aligned, pt)
		}
	}
	for _, pt := range s.Points() {
		if otherAligned(pt, eps) {
			aligned = append(aligned, pt)
		}
	}
	return spanCollinear(aligned, eps)
}

// Collapse collinear points to nil, a Point or the Segment spanning them.
func spanCollinear(points []Point, eps float64) Shape {
	points = GetUnique(points, eps)
	switch len(points) {
	case 0:
		return nil
	case 1:
		return points[0]
	}
	a, b := farthestPair(points)
	return NewSegment(a, b, eps)
}

// Intersect with an infinite line: nil, a Point, or a copy of the segment when
// it lies on the line.
func (s *Segment) IntersectionLine(l *Line, eps float64) Shape {
	if s.line.IsParallel(l, eps) {
		if s.line.Equals(l, eps) {
			return s.Clone()
		}
		if pt, ok := s.line.shallowCrossing(l); ok && s.IntersectsPoint(pt, eps) && l.IntersectsPoint(pt, eps) {
			return pt
		}
		return nil
	}
	pt := s.line.crossing(l)
	if s.IsAligned(pt, eps) {
		return pt
	}
	return nil
}

func (s *Segment) IntersectionRay(r *Ray, eps float64) Shape {
	return r.IntersectionSegment(s, eps)
}

// The point of the segment closest to pt.
func (s *Segment) NearestPoint(pt Point, eps float64) Point {
	proj := s.line.Project(pt)
	if s.IsAligned(proj, eps) {
		return proj
	}
	if pt.Distance(s.P()) <= pt.Distance(s.Q()) {
		return s.P()
	}
	return s.Q()
}

func (s *Segment) Distance(pt Point, eps float64) float64 {
	if s.IsAligned(pt, eps) {
		return s.line.Distance(pt)
	}
	return math.Min(pt.Distance(s.P()), pt.Distance(s.Q()))
}

// Zero when the segments intersect. Otherwise the closest pair always has an
// endpoint of one segment on one side, so the answer is the smallest of the
// four endpoint distances.
func (s *Segment) DistanceSegment(o *Segment, eps float64) float64 {
	if s.IntersectsSegment(o, eps) {
		return 0
	}
	return math.Min(
		math.Min(s.Distance(o.P(), eps), s.Distance(o.Q(), eps)),
		math.Min(o.Distance(s.P(), eps), o.Distance(s.Q(), eps)),
	)
}

// Segments are equal when they have the same endpoints, in either order.
func (s *Segment) Equals(o *Segment, eps float64) bool {
	return (s.P().Equals(o.P(), eps) && s.Q().Equals(o.Q(), eps)) ||
		(s.P().Equals(o.Q(), eps) && s.Q().Equals(o.P(), eps))
}

func (s *Segment) Translate(v Vector) {
	s.line.Translate(v)
	s.aabb = nil
}

func (s *Segment) Rotate(pivot Point, theta float64) *Segment {
	return &Segment{line: s.line.Rotate(pivot, theta)}
}

func (s *Segment) Clone() *Segment {
	return &Segment{line: s.line.Clone()}
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment{%v → %v}", s.P(), s.Q())
}
