package geom

import (
	"fmt"
	"math"
)

// An axis-aligned bounding box. The extents are stored relative to an offset
// so that translation is cheap. Corners and edges are computed lazily and
// dropped on Translate rather than adjusted.
type AABB struct {
	xMin, xMax, yMin, yMax float64
	offset                 Vector

	corners *aabbCorners
	edges   *aabbEdges
}

type aabbCorners struct {
	ll, ul, ur, lr Point
}

// Edges degenerate to a Point when the box has no extent along them.
type aabbEdges struct {
	top, bottom, left, right Shape
}

func NewAABB(points ...Point) *AABB {
	if len(points) == 0 {
		fatalf("cannot build a bounding box from an empty point set")
	}
	b := &AABB{
		xMin: math.Inf(1),
		yMin: math.Inf(1),
		xMax: math.Inf(-1),
		yMax: math.Inf(-1),
	}
	for _, p := range points {
		b.xMin = math.Min(b.xMin, p.X())
		b.yMin = math.Min(b.yMin, p.Y())
		b.xMax = math.Max(b.xMax, p.X())
		b.yMax = math.Max(b.yMax, p.Y())
	}
	return b
}

func NewAABBFromExtents(xMin, xMax, yMin, yMax float64) *AABB {
	if xMin > xMax || yMin > yMax {
		fatalf("inverted bounding box [%g, %g]×[%g, %g]", xMin, xMax, yMin, yMax)
	}
	return &AABB{xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}
}

func (b *AABB) XMin() float64 { return b.xMin + b.offset.DX }
func (b *AABB) XMax() float64 { return b.xMax + b.offset.DX }
func (b *AABB) YMin() float64 { return b.yMin + b.offset.DY }
func (b *AABB) YMax() float64 { return b.yMax + b.offset.DY }

func (b *AABB) Width() float64 {
	return b.xMax - b.xMin
}

func (b *AABB) Height() float64 {
	return b.yMax - b.yMin
}

// Check if the boxes are disjoint, even after padding both by eps. This is
// the fast reject every shape intersection starts with.
func (b *AABB) IsBeyond(o *AABB, eps float64) bool {
	return b.XMax()+eps < o.XMin() || o.XMax()+eps < b.XMin() ||
		b.YMax()+eps < o.YMin() || o.YMax()+eps < b.YMin()
}

func (b *AABB) IsBeyondPoint(p Point, eps float64) bool {
	return p.X() < b.XMin()-eps || p.X() > b.XMax()+eps ||
		p.Y() < b.YMin()-eps || p.Y() > b.YMax()+eps
}

func (b *AABB) Intersects(o *AABB, eps float64) bool {
	return !b.IsBeyond(o, eps)
}

// Containment is inclusive of the boundary.
func (b *AABB) ContainsPoint(p Point, eps float64) bool {
	return !b.IsBeyondPoint(p, eps)
}

func (b *AABB) ContainsAABB(o *AABB, eps float64) bool {
	return o.XMin() >= b.XMin()-eps && o.XMax() <= b.XMax()+eps &&
		o.YMin() >= b.YMin()-eps && o.YMax() <= b.YMax()+eps
}

func (b *AABB) Union(o *AABB) *AABB {
	return NewAABBFromExtents(
		math.Min(b.XMin(), o.XMin()),
		math.Max(b.XMax(), o.XMax()),
		math.Min(b.YMin(), o.YMin()),
		math.Max(b.YMax(), o.YMax()),
	)
}

// The overlap of two boxes, or nil if they do not intersect.
func (b *AABB) Intersection(o *AABB, eps float64) *AABB {
	if b.IsBeyond(o, eps) {
		return nil
	}
	xMin := math.Max(b.XMin(), o.XMin())
	xMax := math.Min(b.XMax(), o.XMax())
	yMin := math.Max(b.YMin(), o.YMin())
	yMax := math.Min(b.YMax(), o.YMax())
	// Boxes that only touch within eps can produce slightly inverted extents
	if xMin > xMax {
		xMin, xMax = (xMin+xMax)/2, (xMin+xMax)/2
	}
	if yMin > yMax {
		yMin, yMax = (yMin+yMax)/2, (yMin+yMax)/2
	}
	return NewAABBFromExtents(xMin, xMax, yMin, yMax)
}

func (b *AABB) Equals(o *AABB, eps float64) bool {
	return Equal(b.XMin(), o.XMin(), eps) && Equal(b.XMax(), o.XMax(), eps) &&
		Equal(b.YMin(), o.YMin(), eps) && Equal(b.YMax(), o.YMax(), eps)
}

func (b *AABB) getCorners() *aabbCorners {
	if b.corners == nil {
		b.corners = &aabbCorners{
			ll: NewPointWithOffset(Vector{b.xMin, b.yMin}, b.offset),
			ul: NewPointWithOffset(Vector{b.xMin, b.yMax}, b.offset),
			ur: NewPointWithOffset(Vector{b.xMax, b.yMax}, b.offset),
			lr: NewPointWithOffset(Vector{b.xMax, b.yMin}, b.offset),
		}
	}
	return b.corners
}

func (b *AABB) LL() Point { return b.getCorners().ll }
func (b *AABB) UL() Point { return b.getCorners().ul }
func (b *AABB) UR() Point { return b.getCorners().ur }
func (b *AABB) LR() Point { return b.getCorners().lr }

func (b *AABB) getEdges() *aabbEdges {
	if b.edges == nil {
		c := b.getCorners()
		edge := func(p, q Point) Shape {
			// Exact comparison: a box of zero width has identical corners
			if p.Equals(q, 0) {
				return p
			}
			return NewSegment(p, q, 0)
		}
		b.edges = &aabbEdges{
			top:    edge(c.ul, c.ur),
			bottom: edge(c.ll, c.lr),
			left:   edge(c.ll, c.ul),
			right:  edge(c.lr, c.ur),
		}
	}
	return b.edges
}

func (b *AABB) Top() Shape    { return b.getEdges().top }
func (b *AABB) Bottom() Shape { return b.getEdges().bottom }
func (b *AABB) Left() Shape   { return b.getEdges().left }
func (b *AABB) Right() Shape  { return b.getEdges().right }

func (b *AABB) Translate(v Vector) {
	b.offset = b.offset.Add(v)
	b.corners = nil
	b.edges = nil
}

func (b *AABB) Clone() *AABB {
	return &AABB{xMin: b.xMin, xMax: b.xMax, yMin: b.yMin, yMax: b.yMax, offset: b.offset}
}

func (b *AABB) String() string {
	return fmt.Sprintf("AABB[%g, %g]×[%g, %g]", b.XMin(), b.XMax(), b.YMin(), b.YMax())
}
