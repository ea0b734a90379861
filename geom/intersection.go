package geom

// Intersection results between convex pieces are assembled the same way no
// matter which shapes produced them: gather every boundary fragment (vertices
// of one shape inside the other, and edge-edge crossings or overlaps), flatten
// the fragments to points, and collapse the points to the smallest shape that
// spans them. The intersection of convex shapes is convex, so the convex hull
// of the fragments is the answer.

// Collapse a list of fragments into a single shape.
func mergeFragments(env *Env, fragments []Shape, eps float64) Shape {
	var points []Point
	for _, fragment := range fragments {
		switch f := fragment.(type) {
		case nil:
		case Point:
			points = append(points, f)
		case *Segment:
			points = append(points, f.P(), f.Q())
		case *Triangle:
			points = append(points, f.Points()...)
		case *Rectangle:
			points = append(points, f.Points()...)
		case *ConvexArea:
			points = append(points, f.Points()...)
		case *Line, *Ray, *Polygon:
			fatalf("cannot merge unbounded or non-convex fragment %v", f)
		}
	}
	return Geometry(env, points, eps)
}

// Collapse a set of points to the minimal shape spanning them: nil for no
// points, then a Point, a Segment (for any collinear set), a Triangle for three
// non-collinear points, or a ConvexArea for more.
func Geometry(env *Env, points []Point, eps float64) Shape {
	points = GetUnique(points, eps)
	switch len(points) {
	case 0:
		return nil
	case 1:
		return points[0]
	case 2:
		return NewSegment(points[0], points[1], eps)
	}
	hull := monotoneChain(points, eps)
	if len(hull) < 3 {
		return spanCollinear(points, eps)
	}
	if len(points) == 3 {
		return newTriangle(env, points[0], points[1], points[2], eps)
	}
	return newConvexAreaFromHull(env, hull)
}

// Clip an infinite line to a convex area.
func clipLine(env *Env, c Convex, l *Line, eps float64) Shape {
	var fragments []Shape
	for _, e := range c.Edges() {
		fragments = append(fragments, e.IntersectionLine(l, eps))
	}
	return mergeFragments(env, fragments, eps)
}

// Clip a ray to a convex area. The start point counts if it is inside.
func clipRay(env *Env, c Convex, r *Ray, eps float64) Shape {
	var fragments []Shape
	if c.IntersectsPoint(r.Start(), eps) {
		fragments = append(fragments, r.Start())
	}
	for _, e := range c.Edges() {
		fragments = append(fragments, r.IntersectionSegment(e, eps))
	}
	return mergeFragments(env, fragments, eps)
}

// Clip a segment to a convex area.
func clipSegment(env *Env, c Convex, s *Segment, eps float64) Shape {
	if c.AABB().IsBeyond(s.AABB(), eps) {
		return nil
	}
	var fragments []Shape
	for _, p := range s.Points() {
		if c.IntersectsPoint(p, eps) {
			fragments = append(fragments, p)
		}
	}
	for _, e := range c.Edges() {
		fragments = append(fragments, e.Intersection(s, eps))
	}
	return mergeFragments(env, fragments, eps)
}

// Intersect two convex shapes from their vertices and edges.
func clipConvex(env *Env, a, b Convex, eps float64) Shape {
	if a.AABB().IsBeyond(b.AABB(), eps) {
		return nil
	}
	var fragments []Shape
	for _, p := range a.Points() {
		if b.IntersectsPoint(p, eps) {
			fragments = append(fragments, p)
		}
	}
	for _, p := range b.Points() {
		if a.IntersectsPoint(p, eps) {
			fragments = append(fragments, p)
		}
	}
	for _, ea := range a.Edges() {
		for _, eb := range b.Edges() {
			fragments = append(fragments, ea.Intersection(eb, eps))
		}
	}
	return mergeFragments(env, fragments, eps)
}

// Intersect any two shapes. Returns nil when they do not intersect. Every
// combination of convex and unbounded shapes is supported; a Polygon can only
// be intersected with a Point, since its intersection with anything else is
// not convex in general. Use Intersects for a yes/no answer with polygons.
func Intersection(env *Env, a, b Shape, eps float64) Shape {
	if a == nil || b == nil {
		return nil
	}
	switch a := a.(type) {
	case Point:
		if IntersectsPoint(b, a, eps) {
			return a
		}
		return nil
	case *Line:
		switch b := b.(type) {
		case *Line:
			return a.Intersection(b, eps)
		case *Ray:
			return b.IntersectionLine(a, eps)
		case *Segment:
			return b.IntersectionLine(a, eps)
		}
	case *Ray:
		switch b := b.(type) {
		case *Line:
			return a.IntersectionLine(b, eps)
		case *Ray:
			return a.IntersectionRay(b, eps)
		case *Segment:
			return a.IntersectionSegment(b, eps)
		}
	case *Segment:
		switch b := b.(type) {
		case *Line:
			return a.IntersectionLine(b, eps)
		case *Ray:
			return b.IntersectionSegment(a, eps)
		case *Segment:
			return a.Intersection(b, eps)
		}
	case *Triangle:
		return a.Intersection(b, eps)
	case *Rectangle:
		return a.Intersection(b, eps)
	case *ConvexArea:
		return a.Intersection(b, eps)
	case *Polygon:
		if p, ok := b.(Point); ok {
			if a.IntersectsPoint(p, eps) {
				return p
			}
			return nil
		}
		fatalf("intersection of a polygon with a %s is not supported", b.Kind())
	}
	// The remaining combinations are an unbounded shape against an area, which
	// the area handles.
	return Intersection(env, b, a, eps)
}

// Check if a shape intersects a point, including its boundary.
func IntersectsPoint(s Shape, p Point, eps float64) bool {
	switch s := s.(type) {
	case Point:
		return s.Equals(p, eps)
	case *Line:
		return s.IntersectsPoint(p, eps)
	case *Ray:
		return s.IntersectsPoint(p, eps)
	case *Segment:
		return s.IntersectsPoint(p, eps)
	case *Triangle:
		return s.IntersectsPoint(p, eps)
	case *Rectangle:
		return s.IntersectsPoint(p, eps)
	case *ConvexArea:
		return s.IntersectsPoint(p, eps)
	case *Polygon:
		return s.IntersectsPoint(p, eps)
	}
	return false
}

// Check if two shapes intersect. Unlike Intersection this supports every pair,
// including polygons.
func Intersects(env *Env, a, b Shape, eps float64) bool {
	if a == nil || b == nil {
		return false
	}
	if pa, ok := a.(*Polygon); ok {
		return pa.Intersects(b, eps)
	}
	if pb, ok := b.(*Polygon); ok {
		return pb.Intersects(a, eps)
	}
	return Intersection(env, a, b, eps) != nil
}

// Return a translated copy of any shape.
func Translate(s Shape, v Vector) Shape {
	switch s := s.(type) {
	case Point:
		return s.Translate(v)
	case *Line:
		c := s.Clone()
		c.Translate(v)
		return c
	case *Ray:
		c := s.Clone()
		c.Translate(v)
		return c
	case *Segment:
		c := s.Clone()
		c.Translate(v)
		return c
	case *Triangle:
		c := s.Clone()
		c.Translate(v)
		return c
	case *Rectangle:
		c := s.Clone()
		c.Translate(v)
		return c
	case *ConvexArea:
		c := s.Clone()
		c.Translate(v)
		return c
	case *Polygon:
		c := s.Clone()
		c.Translate(v)
		return c
	}
	return nil
}

// Return a copy of any shape rotated about pivot by theta radians, positive
// clockwise.
func Rotate(s Shape, pivot Point, theta float64) Shape {
	switch s := s.(type) {
	case Point:
		return s.Rotate(pivot, theta)
	case *Line:
		return s.Rotate(pivot, theta)
	case *Ray:
		return s.Rotate(pivot, theta)
	case *Segment:
		return s.Rotate(pivot, theta)
	case *Triangle:
		return s.Rotate(pivot, theta)
	case *Rectangle:
		return s.Rotate(pivot, theta)
	case *ConvexArea:
		return s.Rotate(pivot, theta)
	case *Polygon:
		return s.Rotate(pivot, theta)
	}
	return nil
}
