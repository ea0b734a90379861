package geom

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/dbg"
)

// Common state of every area: the environment it was built in, its unique id,
// its offset, and the lazily derived point ring, edges, bounding box and
// triangulation. Any mutation must call invalidate so that no derived value
// outlives the geometry it was computed from.
type area struct {
	env    *Env
	id     int
	offset Vector
	cache  *areaCache
}

type areaCache struct {
	points    []Point
	edges     []*Segment
	aabb      *AABB
	triangles []*Triangle
}

func newArea(env *Env) area {
	if env == nil {
		fatalf("areas must be created with an environment")
	}
	return area{env: env, id: env.NextID()}
}

func (a *area) ID() int {
	return a.id
}

func (a *area) Env() *Env {
	return a.env
}

func (a *area) Offset() Vector {
	return a.offset
}

func (a *area) invalidate() {
	a.cache = nil
}

// Get the cache, computing the point ring with buildPoints if it is missing.
// Edges and the bounding box follow from the ring.
func (a *area) derived(buildPoints func() []Point) *areaCache {
	if a.cache == nil {
		points := buildPoints()
		a.cache = &areaCache{
			points: points,
			edges:  ringEdges(points),
			aabb:   NewAABB(points...),
		}
	}
	return a.cache
}

// The closed chain of edges through a point ring. Rings are deduplicated
// before they get here, so only exactly equal neighbors are skipped.
func ringEdges(points []Point) []*Segment {
	edges := make([]*Segment, 0, len(points))
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		if p.Equals(q, 0) {
			continue
		}
		edges = append(edges, NewSegment(p, q, 0))
	}
	return edges
}

func perimeter(edges []*Segment) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Length()
	}
	return sum
}

// Interior containment: the point is in the shape and not on its boundary.
func containsPoint(f Finite, p Point, eps float64) bool {
	return f.IntersectsPoint(p, eps) && !AnySegmentIntersects(p, f.Edges(), eps)
}

// Every vertex of s must be interior to f.
func containsShape(f Finite, s Finite, eps float64) bool {
	for _, p := range s.Points() {
		if !f.ContainsPoint(p, eps) {
			return false
		}
	}
	return true
}

// Zero inside the shape, otherwise the distance to the nearest edge.
func distanceToArea(f Finite, p Point, eps float64) float64 {
	if f.IntersectsPoint(p, eps) {
		return 0
	}
	best := math.Inf(1)
	for _, e := range f.Edges() {
		best = math.Min(best, e.Distance(p, eps))
	}
	return best
}

// Colored readable name for debugging: green for areas, yellow for the pieces
// of a decomposition (holes).
func dbgName(kind Kind, id int, hole bool) string {
	name := fmt.Sprintf("%s %s#%d", kind, dbg.Name(id), id)
	if hole {
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}

func areaString(a Areal, hole bool) string {
	return fmt.Sprintf("%s %v", dbgName(a.Kind(), a.ID(), hole), a.Points())
}
