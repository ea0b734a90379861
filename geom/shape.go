package geom

// Intersection queries can produce several kinds of geometry, so results are
// returned through this closed union. Switch on the concrete type (or on Kind)
// to get at the value; a nil Shape means "no intersection".
type Shape interface {
	Kind() Kind

	// Dummy method that closes the union to the types enumerated below.
	shapeTypeHint()
}

func (Point) shapeTypeHint()       {}
func (*Line) shapeTypeHint()       {}
func (*Segment) shapeTypeHint()    {}
func (*Ray) shapeTypeHint()        {}
func (*Triangle) shapeTypeHint()   {}
func (*Rectangle) shapeTypeHint()  {}
func (*ConvexArea) shapeTypeHint() {}
func (*Polygon) shapeTypeHint()    {}

type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindSegment
	KindRay
	KindTriangle
	KindRectangle
	KindConvexArea
	KindPolygon
)

var kindNames = [...]string{
	KindPoint:      "Point",
	KindLine:       "Line",
	KindSegment:    "Segment",
	KindRay:        "Ray",
	KindTriangle:   "Triangle",
	KindRectangle:  "Rectangle",
	KindConvexArea: "ConvexArea",
	KindPolygon:    "Polygon",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

func (Point) Kind() Kind { return KindPoint }

// Capabilities. Each concrete shape implements the ones that make sense for it.

type Bounded interface {
	AABB() *AABB
}

type Translatable interface {
	Translate(v Vector)
}

// IntersectsPoint includes the boundary; ContainsPoint is interior only.
type PointContainer interface {
	IntersectsPoint(p Point, eps float64) bool
	ContainsPoint(p Point, eps float64) bool
}

// A bounded shape described by its vertices and boundary edges.
type Finite interface {
	Shape
	Bounded
	PointContainer
	Points() []Point
	Edges() []*Segment
}

// Shapes whose intersection with another convex shape is again convex, and
// therefore representable by Geometry.
type Convex interface {
	Finite
	convexTypeHint()
}

func (Point) convexTypeHint()       {}
func (*Segment) convexTypeHint()    {}
func (*Triangle) convexTypeHint()   {}
func (*Rectangle) convexTypeHint()  {}
func (*ConvexArea) convexTypeHint() {}

// An area: a finite shape with positive measure and a unique id.
type Areal interface {
	Finite
	ID() int
	Area() float64
	Perimeter() float64
	Distance(p Point, eps float64) float64
}

var (
	_ Convex = Point{}
	_ Convex = (*Segment)(nil)
	_ Areal  = (*Triangle)(nil)
	_ Areal  = (*Rectangle)(nil)
	_ Areal  = (*ConvexArea)(nil)
	_ Areal  = (*Polygon)(nil)
)
