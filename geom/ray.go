package geom

import (
	"fmt"
	"math"
)

// A semi-infinite line. The wrapped Line's P is the start; only the half on
// the Q side of the perpendicular through P belongs to the ray.
type Ray struct {
	line *Line
}

func NewRay(start Point, direction Vector) *Ray {
	if direction.DX == 0 && direction.DY == 0 {
		fatalf("ray direction must not be the zero vector")
	}
	return &Ray{line: NewLineWithOffset(start.Rel(), direction, start.Offset())}
}

func (r *Ray) Kind() Kind { return KindRay }

func (r *Ray) Start() Point {
	return r.line.P()
}

func (r *Ray) Direction() Vector {
	return r.line.v
}

func (r *Ray) Line() *Line {
	return r.line
}

// A point is aligned with the ray when it is on the forward side of the
// perpendicular through the start.
func (r *Ray) IsAligned(pt Point, eps float64) bool {
	return r.line.Perpendicular(r.Start()).IsOnSameSide(pt, r.line.Q(), eps)
}

func (r *Ray) IntersectsPoint(pt Point, eps float64) bool {
	return r.line.IntersectsPoint(pt, eps) && r.IsAligned(pt, eps)
}

func (r *Ray) ContainsPoint(pt Point, eps float64) bool {
	return false
}

// Intersect with an infinite line: nil, a Point, or a copy of the ray when it
// lies on the line.
func (r *Ray) IntersectionLine(l *Line, eps float64) Shape {
	if r.line.IsParallel(l, eps) {
		if r.line.Equals(l, eps) {
			return r.Clone()
		}
		if pt, ok := r.line.shallowCrossing(l); ok && r.IntersectsPoint(pt, eps) && l.IntersectsPoint(pt, eps) {
			return pt
		}
		return nil
	}
	pt := r.line.crossing(l)
	if r.IsAligned(pt, eps) {
		return pt
	}
	return nil
}

// Intersect two rays. Collinear rays split four ways:
//
//   - same direction: the ray starting further along, which is the one whose
//     start is aligned with the other;
//   - opposite directions, starts mutually aligned: the segment between the
//     starts (or a Point if the starts coincide);
//   - opposite directions, starts not aligned: nil.
func (r *Ray) IntersectionRay(o *Ray, eps float64) Shape {
	if r.line.IsParallel(o.line, eps) {
		if !r.line.Equals(o.line, eps) {
			if pt, ok := r.line.shallowCrossing(o.line); ok && r.IntersectsPoint(pt, eps) && o.IntersectsPoint(pt, eps) {
				return pt
			}
			return nil
		}
		if r.line.v.Dot(o.line.v) > 0 {
			if o.IsAligned(r.Start(), eps) {
				return r.Clone()
			}
			return o.Clone()
		}
		if r.IsAligned(o.Start(), eps) && o.IsAligned(r.Start(), eps) {
			return spanCollinear([]Point{r.Start(), o.Start()}, eps)
		}
		return nil
	}
	pt := r.line.crossing(o.line)
	if r.IsAligned(pt, eps) && o.IsAligned(pt, eps) {
		return pt
	}
	return nil
}

// Intersect with a segment. In the collinear case the segment endpoints on the
// ray and the ray start (if it lies within the segment) span the overlap.
func (r *Ray) IntersectionSegment(s *Segment, eps float64) Shape {
	if r.line.IsParallel(s.line, eps) {
		if !r.line.Equals(s.line, eps) {
			if pt, ok := r.line.shallowCrossing(s.line); ok && r.IntersectsPoint(pt, eps) && s.IntersectsPoint(pt, eps) {
				return pt
			}
			return nil
		}
		return s.collinearOverlap([]Point{r.Start()}, r.IsAligned, eps)
	}
	pt := r.line.crossing(s.line)
	if r.IsAligned(pt, eps) && s.IsAligned(pt, eps) {
		return pt
	}
	return nil
}

func (r *Ray) Distance(pt Point, eps float64) float64 {
	if r.IsAligned(pt, eps) {
		return r.line.Distance(pt)
	}
	return pt.Distance(r.Start())
}

func (r *Ray) Equals(o *Ray, eps float64) bool {
	return r.Start().Equals(o.Start(), eps) &&
		r.line.IsParallel(o.line, eps) &&
		r.line.v.Dot(o.line.v) > 0
}

func (r *Ray) Translate(v Vector) {
	r.line.Translate(v)
}

func (r *Ray) Rotate(pivot Point, theta float64) *Ray {
	return &Ray{line: r.line.Rotate(pivot, theta)}
}

func (r *Ray) Clone() *Ray {
	return &Ray{line: r.line.Clone()}
}

// The angle of the ray's direction from the positive x axis, in (-π, π].
func (r *Ray) Heading() float64 {
	return math.Atan2(r.line.v.DY, r.line.v.DX)
}

func (r *Ray) String() string {
	return fmt.Sprintf("Ray{%v → %v}", r.Start(), r.line.v)
}
