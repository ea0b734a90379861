package geom

// A rectangle PQRS made of the triangles PQR and RSP, which share the diagonal
// RP. Whether the four points really form a rectangle is not checked here;
// use IsRectangle.
type Rectangle struct {
	area
	pqr, rsp *Triangle
}

func NewRectangle(env *Env, p, q, r, s Point) *Rectangle {
	if env == nil {
		fatalf("areas must be created with an environment")
	}
	return newRectangle(env, p, q, r, s, env.Epsilon)
}

func newRectangle(env *Env, p, q, r, s Point, eps float64) *Rectangle {
	return &Rectangle{
		area: newArea(env),
		pqr:  newTriangle(env, p, q, r, eps),
		rsp:  newTriangle(env, r, s, p, eps),
	}
}

// Check if PQRS is a rectangle: opposite edges parallel and the corner at Q a
// right angle.
func IsRectangle(p, q, r, s Point, eps float64) bool {
	pq, qr, rs, sp := q.Sub(p), r.Sub(q), s.Sub(r), p.Sub(s)
	return pq.IsScalarMultipleEps(rs, eps) &&
		qr.IsScalarMultipleEps(sp, eps) &&
		pq.IsOrthogonal(qr, eps)
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) P() Point { return r.pqr.P() }
func (r *Rectangle) Q() Point { return r.pqr.Q() }
func (r *Rectangle) R() Point { return r.pqr.R() }
func (r *Rectangle) S() Point { return r.rsp.Q() }

// The two triangles, PQR then RSP.
func (r *Rectangle) Triangles() []*Triangle {
	return []*Triangle{r.pqr, r.rsp}
}

func (r *Rectangle) derived() *areaCache {
	return r.area.derived(func() []Point {
		return []Point{r.P(), r.Q(), r.R(), r.S()}
	})
}

func (r *Rectangle) Points() []Point {
	return r.derived().points
}

// Edges PQ, QR, RS and SP.
func (r *Rectangle) Edges() []*Segment {
	return r.derived().edges
}

func (r *Rectangle) AABB() *AABB {
	return r.derived().aabb
}

func (r *Rectangle) IsRectangle(eps float64) bool {
	return IsRectangle(r.P(), r.Q(), r.R(), r.S(), eps)
}

func (r *Rectangle) Area() float64 {
	return r.pqr.Area() + r.rsp.Area()
}

func (r *Rectangle) Perimeter() float64 {
	return perimeter(r.Edges())
}

func (r *Rectangle) IntersectsPoint(p Point, eps float64) bool {
	if r.AABB().IsBeyondPoint(p, eps) {
		return false
	}
	return r.pqr.Intersects0(p, eps) || r.rsp.Intersects0(p, eps)
}

func (r *Rectangle) ContainsPoint(p Point, eps float64) bool {
	return containsPoint(r, p, eps)
}

func (r *Rectangle) ContainsShape(s Finite, eps float64) bool {
	return containsShape(r, s, eps)
}

// Intersect each half with s and merge the pieces.
func (r *Rectangle) Intersection(s Shape, eps float64) Shape {
	if s == nil {
		return nil
	}
	if _, ok := s.(*Polygon); ok {
		fatalf("intersection of a polygon with a %s is not supported", r.Kind())
	}
	if b, ok := s.(Bounded); ok && r.AABB().IsBeyond(b.AABB(), eps) {
		return nil
	}
	return mergeFragments(r.env, []Shape{
		r.pqr.Intersection(s, eps),
		r.rsp.Intersection(s, eps),
	}, eps)
}

func (r *Rectangle) Distance(p Point, eps float64) float64 {
	return distanceToArea(r, p, eps)
}

func (r *Rectangle) Translate(v Vector) {
	r.offset = r.offset.Add(v)
	r.pqr.Translate(v)
	r.rsp.Translate(v)
	r.invalidate()
}

func (r *Rectangle) Rotate(pivot Point, theta float64) *Rectangle {
	return newRectangle(r.env,
		r.P().Rotate(pivot, theta),
		r.Q().Rotate(pivot, theta),
		r.R().Rotate(pivot, theta),
		r.S().Rotate(pivot, theta),
		0,
	)
}

func (r *Rectangle) Clone() *Rectangle {
	return &Rectangle{
		area: area{env: r.env, id: r.id, offset: r.offset},
		pqr:  r.pqr.Clone(),
		rsp:  r.rsp.Clone(),
	}
}

func (r *Rectangle) Equals(o *Rectangle, eps float64) bool {
	return sameRing(r.Points(), o.Points(), eps)
}

func (r *Rectangle) DbgName() string {
	return dbgName(r.Kind(), r.id, false)
}

func (r *Rectangle) String() string {
	return areaString(r, false)
}
