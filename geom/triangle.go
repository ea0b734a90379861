package geom

import "math"

// A triangle with vertices P, Q and R. Vertices are stored as vectors relative
// to the area's offset.
type Triangle struct {
	area
	pv, qv, rv Vector
}

// Create a triangle. The vertices must be pairwise distinct and not collinear
// within the environment's epsilon.
func NewTriangle(env *Env, p, q, r Point) *Triangle {
	if env == nil {
		fatalf("areas must be created with an environment")
	}
	t := newTriangle(env, p, q, r, env.Epsilon)
	if t.flatEdge(env.Epsilon) != nil {
		fatalf("degenerate triangle: vertices %v, %v and %v are collinear", p, q, r)
	}
	return t
}

func newTriangle(env *Env, p, q, r Point, eps float64) *Triangle {
	if p.Equals(q, eps) || q.Equals(r, eps) || r.Equals(p, eps) {
		fatalf("degenerate triangle: vertices %v, %v and %v are not distinct", p, q, r)
	}
	return &Triangle{
		area: newArea(env),
		pv:   p.Vector(),
		qv:   q.Vector(),
		rv:   r.Vector(),
	}
}

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) P() Point { return NewPointWithOffset(t.pv, t.offset) }
func (t *Triangle) Q() Point { return NewPointWithOffset(t.qv, t.offset) }
func (t *Triangle) R() Point { return NewPointWithOffset(t.rv, t.offset) }

func (t *Triangle) derived() *areaCache {
	return t.area.derived(func() []Point {
		return []Point{t.P(), t.Q(), t.R()}
	})
}

func (t *Triangle) Points() []Point {
	return t.derived().points
}

// Edges PQ, QR and RP, in that order.
func (t *Triangle) Edges() []*Segment {
	return t.derived().edges
}

func (t *Triangle) AABB() *AABB {
	return t.derived().aabb
}

// Internal angles at P, Q and R. They sum to π.
func (t *Triangle) Angles() [3]float64 {
	p, q, r := t.P(), t.Q(), t.R()
	return [3]float64{
		q.Sub(p).Angle(r.Sub(p)),
		r.Sub(q).Angle(p.Sub(q)),
		p.Sub(r).Angle(q.Sub(r)),
	}
}

// Positive when P, Q, R wind counterclockwise.
func (t *Triangle) SignedArea() float64 {
	return t.qv.Sub(t.pv).Det(t.rv.Sub(t.pv)) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) Perimeter() float64 {
	return perimeter(t.Edges())
}

func (t *Triangle) Centroid() Point {
	c := t.pv.Add(t.qv).Add(t.rv).Scale(1.0 / 3)
	return NewPointWithOffset(c, t.offset)
}

// Check if the point is on the inward side of all three edge lines. This skips
// the bounding box check. A flat triangle has no inward side, so the point is
// tested against its longest edge instead.
func (t *Triangle) Intersects0(p Point, eps float64) bool {
	if flat := t.flatEdge(eps); flat != nil {
		return flat.IntersectsPoint(p, eps)
	}
	edges := t.Edges()
	return edges[0].Line().IsOnSameSide(p, t.R(), eps) &&
		edges[1].Line().IsOnSameSide(p, t.P(), eps) &&
		edges[2].Line().IsOnSameSide(p, t.Q(), eps)
}

// The longest edge if the opposite vertex lies within eps of its line,
// otherwise nil.
func (t *Triangle) flatEdge(eps float64) *Segment {
	var longest *Segment
	for _, e := range t.Edges() {
		if longest == nil || e.Length() > longest.Length() {
			longest = e
		}
	}
	if 2*t.Area()/longest.Length() > eps {
		return nil
	}
	return longest
}

func (t *Triangle) IntersectsPoint(p Point, eps float64) bool {
	if t.AABB().IsBeyondPoint(p, eps) {
		return false
	}
	return t.Intersects0(p, eps)
}

func (t *Triangle) ContainsPoint(p Point, eps float64) bool {
	return containsPoint(t, p, eps)
}

func (t *Triangle) ContainsShape(s Finite, eps float64) bool {
	return containsShape(t, s, eps)
}

// Check if every vertex of s is in the triangle, boundary included.
func (t *Triangle) alignsAll(s Finite, eps float64) bool {
	for _, p := range s.Points() {
		if !t.IntersectsPoint(p, eps) {
			return false
		}
	}
	return true
}

// Intersect the triangle with any shape except a Polygon. The result is nil, a
// Point, a Segment, a Triangle or a ConvexArea.
func (t *Triangle) Intersection(s Shape, eps float64) Shape {
	switch s := s.(type) {
	case nil:
		return nil
	case Point:
		if t.IntersectsPoint(s, eps) {
			return s
		}
		return nil
	case *Line:
		return clipLine(t.env, t, s, eps)
	case *Ray:
		return clipRay(t.env, t, s, eps)
	case *Segment:
		return clipSegment(t.env, t, s, eps)
	case *Triangle:
		return t.intersectTriangle(s, eps)
	case *Rectangle:
		return s.Intersection(t, eps)
	case *ConvexArea:
		return s.Intersection(t, eps)
	case *Polygon:
		fatalf("intersection of a polygon with a %s is not supported", t.Kind())
	}
	return nil
}

func (t *Triangle) intersectTriangle(o *Triangle, eps float64) Shape {
	if t.AABB().IsBeyond(o.AABB(), eps) {
		return nil
	}
	// Full containment either way returns the contained triangle as is
	if t.alignsAll(o, eps) {
		return o.Clone()
	}
	if o.alignsAll(t, eps) {
		return t.Clone()
	}
	return clipConvex(t.env, t, o, eps)
}

func (t *Triangle) Distance(p Point, eps float64) float64 {
	return distanceToArea(t, p, eps)
}

func (t *Triangle) Translate(v Vector) {
	t.offset = t.offset.Add(v)
	t.invalidate()
}

// A rotated copy with a new id.
func (t *Triangle) Rotate(pivot Point, theta float64) *Triangle {
	return newTriangle(t.env,
		t.P().Rotate(pivot, theta),
		t.Q().Rotate(pivot, theta),
		t.R().Rotate(pivot, theta),
		0,
	)
}

// A copy with the same id. The derived caches are not shared.
func (t *Triangle) Clone() *Triangle {
	return &Triangle{
		area: area{env: t.env, id: t.id, offset: t.offset},
		pv:   t.pv,
		qv:   t.qv,
		rv:   t.rv,
	}
}

func (t *Triangle) Equals(o *Triangle, eps float64) bool {
	return sameRing(t.Points(), o.Points(), eps)
}

func (t *Triangle) DbgName() string {
	return dbgName(t.Kind(), t.id, false)
}

func (t *Triangle) String() string {
	return areaString(t, false)
}

// Check if two vertex rings describe the same cycle, in either direction and
// from any starting vertex.
func sameRing(a, b []Point, eps float64) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}
	for start := 0; start < n; start++ {
		for _, dir := range []int{1, -1} {
			match := true
			for i := 0; i < n; i++ {
				if !a[i].Equals(b[CircularIndex(start+dir*i, n)], eps) {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
	}
	return false
}
