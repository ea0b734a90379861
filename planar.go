// A 2D Euclidean geometry kernel for Go.
//
// This package wraps the kernel in package geom with entry points that return
// errors instead of panicking on invalid input. Vectors, points, lines,
// segments, rays, bounding boxes, triangles, rectangles, convex areas and
// polygons support tolerance-based intersection, containment, distance and
// rigid transforms. See package geom for the full API.
package planar

import (
	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

type Vector = geom.Vector
type Point = geom.Point
type Shape = geom.Shape
type Env = geom.Env
type Segment = geom.Segment
type Triangle = geom.Triangle
type ConvexArea = geom.ConvexArea
type Polygon = geom.Polygon

const DefaultEpsilon = geom.DefaultEpsilon

func NewPoint(x, y float64) Point {
	return geom.NewPoint(x, y)
}

func NewEnv(epsilon float64) (env *Env, err error) {
	defer recoverInto(&err)
	return geom.NewEnv(epsilon), nil
}

func NewSegment(p, q Point, epsilon float64) (segment *Segment, err error) {
	defer recoverInto(&err)
	return geom.NewSegment(p, q, epsilon), nil
}

func NewTriangle(env *Env, p, q, r Point) (triangle *Triangle, err error) {
	defer recoverInto(&err)
	return geom.NewTriangle(env, p, q, r), nil
}

// Build the convex hull of a set of points, collapsed to the smallest shape
// that spans them: a Point, a Segment, a Triangle or a ConvexArea.
func Hull(env *Env, points ...Point) (result Shape, err error) {
	defer recoverInto(&err)
	if len(points) == 0 {
		return nil, errors.New("no points given")
	}
	return geom.Geometry(env, points, env.Epsilon), nil
}

// Decompose a ring of boundary points into its convex hull and the external
// holes carved out of it.
func Decompose(env *Env, ring ...Point) (polygon *Polygon, err error) {
	defer recoverInto(&err)
	return geom.NewPolygon(env, ring, env.Epsilon), nil
}

// Intersect two shapes using the environment's tolerance. A nil result with a
// nil error means the shapes do not intersect.
func Intersection(env *Env, a, b Shape) (result Shape, err error) {
	defer recoverInto(&err)
	return geom.Intersection(env, a, b, env.Epsilon), nil
}

func recoverInto(err *error) {
	recoveredErr := geom.HandlePanicRecover(recover())
	if recoveredErr != nil {
		*err = recoveredErr
	}
}
