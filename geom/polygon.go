package geom

import (
	"math"
	"sort"
)

// A polygon whose only concavities open onto its convex hull (it has no
// internal holes). It is represented as its convex hull minus a set of
// external holes. Each hole is the region between the hull boundary and a run
// of ring points that leaves the hull, and is itself a Polygon, so holes can
// have holes of their own, which belong to the polygon again.
type Polygon struct {
	area
	ring   []Vector
	hull   *ConvexArea
	holes  map[int]*Polygon
	isHole bool
}

// Decompose a ring of boundary points. The ring is given in order (either
// winding) without repeating the first point at the end, although a repeated
// closing point is tolerated.
func NewPolygon(env *Env, ring []Point, eps float64) *Polygon {
	if env == nil {
		fatalf("areas must be created with an environment")
	}
	if len(ring) == 0 {
		fatalf("cannot build a polygon from an empty ring")
	}
	return decompose(env, ring, NewConvexArea(env, ring, eps), eps, false)
}

// Decompose a ring whose convex hull the caller has already computed. The
// polygon keeps its own copy of the hull.
func NewPolygonWithHull(env *Env, ring []Point, hull *ConvexArea, eps float64) *Polygon {
	if len(ring) == 0 {
		fatalf("cannot build a polygon from an empty ring")
	}
	return decompose(env, ring, hull.Clone(), eps, false)
}

func decompose(env *Env, ring []Point, hull *ConvexArea, eps float64, isHole bool) *Polygon {
	if n := len(ring); n > 1 && ring[n-1].Equals(ring[0], eps) {
		ring = ring[:n-1]
	}
	n := len(ring)

	// Classify each point as on or off the hull boundary. A point equal to its
	// predecessor is the same logical vertex and takes its classification.
	hullEdges := hull.Edges()
	onHull := make([]bool, n)
	start := -1
	for i, p := range ring {
		if i > 0 && p.Equals(ring[i-1], eps) {
			onHull[i] = onHull[i-1]
			continue
		}
		onHull[i] = AnySegmentIntersects(p, hullEdges, eps)
		if onHull[i] && start < 0 {
			start = i
		}
	}
	if start < 0 {
		fatalf("no ring point lies on the convex hull; hull %v does not belong to the ring", hull)
	}

	poly := &Polygon{
		area:   newArea(env),
		ring:   dedupeRing(ring, eps),
		hull:   hull,
		holes:  make(map[int]*Polygon),
		isHole: isHole,
	}

	// Scan once around the ring from a point on the hull, so that a hole
	// spanning the end of the slice is still seen as one run. Ending on the
	// start point closes any run still open.
	inHole := false
	var bracket Point
	var run []Point
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		p := ring[i]
		if !onHull[i] {
			if !inHole {
				inHole = true
				bracket = ring[CircularIndex(i-1, n)]
				run = nil
			}
			run = append(run, p)
			continue
		}
		if inHole {
			inHole = false
			holeRing := make([]Point, 0, len(run)+2)
			holeRing = append(holeRing, bracket)
			holeRing = append(holeRing, run...)
			holeRing = append(holeRing, p)
			if hole := newHole(env, holeRing, eps); hole != nil {
				poly.holes[hole.id] = hole
			}
		}
	}
	return poly
}

// Build the polygon for one hole, or nil if the hole has no area (its points
// are collinear).
func newHole(env *Env, ring []Point, eps float64) *Polygon {
	hull := monotoneChain(ring, eps)
	if len(hull) < 3 {
		return nil
	}
	return decompose(env, ring, newConvexAreaFromHull(env, hull), eps, true)
}

// Drop consecutive duplicates, including a last point equal to the first.
func dedupeRing(ring []Point, eps float64) []Vector {
	result := make([]Vector, 0, len(ring))
	for i, p := range ring {
		if i > 0 && p.Equals(ring[i-1], eps) {
			continue
		}
		result = append(result, p.Vector())
	}
	for len(result) > 1 && result[len(result)-1].Equals(result[0], eps) {
		result = result[:len(result)-1]
	}
	return result
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) derived() *areaCache {
	return p.area.derived(func() []Point {
		points := make([]Point, len(p.ring))
		for i, v := range p.ring {
			points[i] = NewPointWithOffset(v, p.offset)
		}
		return points
	})
}

// The boundary ring, in the order it was given.
func (p *Polygon) Points() []Point {
	return p.derived().points
}

func (p *Polygon) Ring() []Point {
	return p.Points()
}

func (p *Polygon) Edges() []*Segment {
	return p.derived().edges
}

func (p *Polygon) AABB() *AABB {
	return p.derived().aabb
}

func (p *Polygon) Hull() *ConvexArea {
	return p.hull
}

// The external holes keyed by id. The map must not be modified.
func (p *Polygon) Holes() map[int]*Polygon {
	return p.holes
}

// The external holes in id order.
func (p *Polygon) HoleList() []*Polygon {
	list := make([]*Polygon, 0, len(p.holes))
	for _, h := range p.holes {
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].id < list[j].id
	})
	return list
}

func (p *Polygon) IsHole() bool {
	return p.isHole
}

func (p *Polygon) Area() float64 {
	a := p.hull.Area()
	for _, h := range p.holes {
		a -= h.Area()
	}
	return a
}

func (p *Polygon) Perimeter() float64 {
	return perimeter(p.Edges())
}

func (p *Polygon) OnBoundary(pt Point, eps float64) bool {
	return AnySegmentIntersects(pt, p.Edges(), eps)
}

// Boundary-inclusive membership: inside the hull and, unless on the ring
// itself, not inside any hole.
func (p *Polygon) IntersectsPoint(pt Point, eps float64) bool {
	if !p.hull.IntersectsPoint(pt, eps) {
		return false
	}
	if p.OnBoundary(pt, eps) {
		return true
	}
	for _, h := range p.holes {
		if h.IntersectsPoint(pt, eps) {
			return false
		}
	}
	return true
}

func (p *Polygon) ContainsPoint(pt Point, eps float64) bool {
	return p.IntersectsPoint(pt, eps) && !p.OnBoundary(pt, eps)
}

func (p *Polygon) ContainsShape(s Finite, eps float64) bool {
	return containsShape(p, s, eps)
}

// Even-odd rule membership computed from the ring alone, independent of the
// decomposition. Points exactly on the boundary may go either way.
func (p *Polygon) ContainsPointByEvenOdd(pt Point) bool {
	return p.CrossingCount(pt)%2 == 1
}

// Count the ring edges crossed by a ray from pt towards +x.
func (p *Polygon) CrossingCount(pt Point) int {
	crossingCount := 0
	points := p.Points()
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if (a.Y() > pt.Y()) == (b.Y() > pt.Y()) {
			continue
		}
		x := a.X() + (pt.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
		if x > pt.X() {
			crossingCount++
		}
	}
	return crossingCount
}

// Check if the polygon intersects any shape. Boundaries crossing, or any
// vertex of one inside the other, counts.
func (p *Polygon) Intersects(s Shape, eps float64) bool {
	switch s := s.(type) {
	case nil:
		return false
	case Point:
		return p.IntersectsPoint(s, eps)
	case *Line:
		for _, e := range p.Edges() {
			if e.IntersectionLine(s, eps) != nil {
				return true
			}
		}
		return false
	case *Ray:
		if p.IntersectsPoint(s.Start(), eps) {
			return true
		}
		for _, e := range p.Edges() {
			if s.IntersectionSegment(e, eps) != nil {
				return true
			}
		}
		return false
	case Finite:
		if p.AABB().IsBeyond(s.AABB(), eps) {
			return false
		}
		for _, e := range p.Edges() {
			for _, o := range s.Edges() {
				if e.IntersectsSegment(o, eps) {
					return true
				}
			}
		}
		for _, pt := range s.Points() {
			if p.IntersectsPoint(pt, eps) {
				return true
			}
		}
		for _, pt := range p.Points() {
			if s.IntersectsPoint(pt, eps) {
				return true
			}
		}
	}
	return false
}

func (p *Polygon) Distance(pt Point, eps float64) float64 {
	if p.IntersectsPoint(pt, eps) {
		return 0
	}
	best := math.Inf(1)
	for _, e := range p.Edges() {
		best = math.Min(best, e.Distance(pt, eps))
	}
	return best
}

// Move the polygon, its hull and every hole.
func (p *Polygon) Translate(v Vector) {
	p.offset = p.offset.Add(v)
	p.hull.Translate(v)
	for _, h := range p.holes {
		h.Translate(v)
	}
	p.invalidate()
}

// A rotated copy. The decomposition is recomputed from the rotated ring.
func (p *Polygon) Rotate(pivot Point, theta float64) *Polygon {
	points := p.Points()
	rotated := make([]Point, len(points))
	for i, pt := range points {
		rotated[i] = pt.Rotate(pivot, theta)
	}
	return decompose(p.env, rotated, p.hull.Rotate(pivot, theta), p.env.Epsilon, p.isHole)
}

func (p *Polygon) Clone() *Polygon {
	ring := make([]Vector, len(p.ring))
	copy(ring, p.ring)
	holes := make(map[int]*Polygon, len(p.holes))
	for id, h := range p.holes {
		holes[id] = h.Clone()
	}
	return &Polygon{
		area:   area{env: p.env, id: p.id, offset: p.offset},
		ring:   ring,
		hull:   p.hull.Clone(),
		holes:  holes,
		isHole: p.isHole,
	}
}

func (p *Polygon) DbgName() string {
	return dbgName(p.Kind(), p.id, p.isHole)
}

func (p *Polygon) String() string {
	return areaString(p, p.isHole)
}
