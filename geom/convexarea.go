package geom

import "sort"

// A set of points in convex position, stored in counterclockwise hull order.
// The area is triangulated as a fan from the first hull point; the fan backs
// point queries and intersections.
type ConvexArea struct {
	area
	hull []Vector
}

// Build the convex hull of a point set. Duplicate points (within eps) are
// dropped and interior points are left out of the hull. The set must have at
// least three non-collinear points; use Geometry to handle any point set.
func NewConvexArea(env *Env, points []Point, eps float64) *ConvexArea {
	if env == nil {
		fatalf("areas must be created with an environment")
	}
	if len(points) == 0 {
		fatalf("cannot build a convex area from an empty point set")
	}
	hull := monotoneChain(points, eps)
	if len(hull) < 3 {
		fatalf("convex area needs at least three non-collinear points, got hull %v", hull)
	}
	return newConvexAreaFromHull(env, hull)
}

func newConvexAreaFromHull(env *Env, hull []Point) *ConvexArea {
	c := &ConvexArea{area: newArea(env), hull: make([]Vector, len(hull))}
	for i, p := range hull {
		c.hull[i] = p.Vector()
	}
	return c
}

// Andrew's monotone chain over the (y, x) ordering. Returns the hull in
// counterclockwise order, starting from the lowest point. Collinear sets give
// back their two extreme points, and sets of fewer than three unique points
// are returned as is.
func monotoneChain(points []Point, eps float64) []Point {
	sorted := GetUnique(points, eps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	if len(sorted) < 3 {
		return sorted
	}

	chain := func(points []Point) PointStack {
		var stack PointStack
		for _, p := range points {
			for stack.Len() >= 2 {
				top, _ := stack.Peek()
				second, _ := stack.PeekSecond()
				if isLeftTurn(second, top, p, eps) {
					break
				}
				stack.Pop()
			}
			stack.Push(p)
		}
		return stack
	}

	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	lower := chain(sorted)
	upper := chain(reversed)

	// The last point of each chain is the first point of the other
	hull := make([]Point, 0, lower.Len()+upper.Len()-2)
	hull = append(hull, lower[:lower.Len()-1]...)
	hull = append(hull, upper[:upper.Len()-1]...)
	return hull
}

// Check if o→a→b turns left (counterclockwise) by more than eps. The test is
// the distance of a from the line o→b, so eps is a length.
func isLeftTurn(o, a, b Point, eps float64) bool {
	ob := b.Sub(o)
	if ob.IsZero(0) {
		return false
	}
	return a.Sub(o).Det(ob.Unit()) > eps
}

func (c *ConvexArea) Kind() Kind { return KindConvexArea }

func (c *ConvexArea) derived() *areaCache {
	return c.area.derived(func() []Point {
		points := make([]Point, len(c.hull))
		for i, v := range c.hull {
			points[i] = NewPointWithOffset(v, c.offset)
		}
		return points
	})
}

// The hull points, counterclockwise.
func (c *ConvexArea) Points() []Point {
	return c.derived().points
}

func (c *ConvexArea) Edges() []*Segment {
	return c.derived().edges
}

func (c *ConvexArea) AABB() *AABB {
	return c.derived().aabb
}

// The fan triangulation from the first hull point.
func (c *ConvexArea) Triangles() []*Triangle {
	cache := c.derived()
	if cache.triangles == nil {
		points := cache.points
		cache.triangles = make([]*Triangle, 0, len(points)-2)
		for i := 1; i+1 < len(points); i++ {
			cache.triangles = append(cache.triangles, newTriangle(c.env, points[0], points[i], points[i+1], 0))
		}
	}
	return cache.triangles
}

func (c *ConvexArea) Area() float64 {
	var sum float64
	for _, t := range c.Triangles() {
		sum += t.Area()
	}
	return sum
}

func (c *ConvexArea) Perimeter() float64 {
	return perimeter(c.Edges())
}

func (c *ConvexArea) IntersectsPoint(p Point, eps float64) bool {
	if c.AABB().IsBeyondPoint(p, eps) {
		return false
	}
	for _, t := range c.Triangles() {
		if t.Intersects0(p, eps) {
			return true
		}
	}
	return false
}

// Interior containment. Points on the hull boundary are not contained.
func (c *ConvexArea) ContainsPoint(p Point, eps float64) bool {
	return containsPoint(c, p, eps)
}

func (c *ConvexArea) ContainsShape(s Finite, eps float64) bool {
	return containsShape(c, s, eps)
}

// Intersect with any shape except a Polygon. Areas are intersected triangle by
// triangle across the fan and the pieces merged.
func (c *ConvexArea) Intersection(s Shape, eps float64) Shape {
	switch s := s.(type) {
	case nil:
		return nil
	case Point:
		if c.IntersectsPoint(s, eps) {
			return s
		}
		return nil
	case *Line:
		return clipLine(c.env, c, s, eps)
	case *Ray:
		return clipRay(c.env, c, s, eps)
	case *Segment:
		return clipSegment(c.env, c, s, eps)
	case *Triangle, *Rectangle, *ConvexArea:
		if c.AABB().IsBeyond(s.(Bounded).AABB(), eps) {
			return nil
		}
		var fragments []Shape
		for _, t := range c.Triangles() {
			fragments = append(fragments, t.Intersection(s, eps))
		}
		return mergeFragments(c.env, fragments, eps)
	case *Polygon:
		fatalf("intersection of a polygon with a %s is not supported", c.Kind())
	}
	return nil
}

func (c *ConvexArea) Distance(p Point, eps float64) float64 {
	return distanceToArea(c, p, eps)
}

// Downgrade to a Triangle for three hull points, or to a Rectangle for four
// points that form one. Otherwise return the area itself.
func (c *ConvexArea) Simplify(eps float64) Areal {
	points := c.Points()
	switch len(points) {
	case 3:
		return newTriangle(c.env, points[0], points[1], points[2], 0)
	case 4:
		if IsRectangle(points[0], points[1], points[2], points[3], eps) {
			return newRectangle(c.env, points[0], points[1], points[2], points[3], 0)
		}
	}
	return c
}

func (c *ConvexArea) Translate(v Vector) {
	c.offset = c.offset.Add(v)
	c.invalidate()
}

// A rotated copy. Rotation keeps convex position and winding, so the hull is
// reused without recomputing it.
func (c *ConvexArea) Rotate(pivot Point, theta float64) *ConvexArea {
	points := c.Points()
	rotated := make([]Point, len(points))
	for i, p := range points {
		rotated[i] = p.Rotate(pivot, theta)
	}
	return newConvexAreaFromHull(c.env, rotated)
}

func (c *ConvexArea) Clone() *ConvexArea {
	hull := make([]Vector, len(c.hull))
	copy(hull, c.hull)
	return &ConvexArea{
		area: area{env: c.env, id: c.id, offset: c.offset},
		hull: hull,
	}
}

func (c *ConvexArea) Equals(o *ConvexArea, eps float64) bool {
	return sameRing(c.Points(), o.Points(), eps)
}

func (c *ConvexArea) DbgName() string {
	return dbgName(c.Kind(), c.id, false)
}

func (c *ConvexArea) String() string {
	return areaString(c, false)
}
