package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A free vector. Vectors are values; every operation returns a new one.
type Vector struct {
	DX, DY float64
}

type Quadrant int

const (
	// Only the zero vector has no quadrant.
	NoQuadrant Quadrant = iota
	// Quadrants are half-open so that every non-zero direction lands in exactly
	// one of them. The positive x axis belongs to the first quadrant, the
	// positive y axis to the second, and so on counterclockwise.
	FirstQuadrant
	SecondQuadrant
	ThirdQuadrant
	FourthQuadrant
)

func (v Vector) Add(o Vector) Vector {
	return Vector{v.DX + o.DX, v.DY + o.DY}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.DX - o.DX, v.DY - o.DY}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{v.DX * k, v.DY * k}
}

func (v Vector) Reverse() Vector {
	return Vector{-v.DX, -v.DY}
}

func (v Vector) Dot(o Vector) float64 {
	return v.DX*o.DX + v.DY*o.DY
}

// The 2D determinant (z component of the cross product). Positive when o is
// counterclockwise from v.
func (v Vector) Det(o Vector) float64 {
	return v.DX*o.DY - v.DY*o.DX
}

func (v Vector) Magnitude() float64 {
	return math.Hypot(v.DX, v.DY)
}

// The unit vector in the same direction. The zero vector has no direction, so
// it is returned unchanged.
func (v Vector) Unit() Vector {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vector{v.DX / m, v.DY / m}
}

// Rotate by 90 degrees counterclockwise.
func (v Vector) Orthogonal() Vector {
	return Vector{-v.DY, v.DX}
}

// Rotate by theta radians, positive clockwise. An angle that normalizes to
// zero returns v untouched.
func (v Vector) Rotate(theta float64) Vector {
	theta = NormalizeAngle(theta)
	if theta == 0 {
		return v
	}
	// mgl64 rotates counterclockwise, so negate to get the clockwise convention:
	// dx' = dx·cosθ + dy·sinθ, dy' = dy·cosθ − dx·sinθ
	r := mgl64.Rotate2D(-theta).Mul2x1(mgl64.Vec2{v.DX, v.DY})
	return Vector{r.X(), r.Y()}
}

// The unsigned angle between two vectors, in [0, π]. Use this for magnitudes,
// not for ordering.
func (v Vector) Angle(o Vector) float64 {
	m := v.Magnitude() * o.Magnitude()
	if m == 0 {
		return 0
	}
	c := v.Dot(o) / m
	// Rounding can push the cosine just outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// The signed angle from v to o, in (-π, π], positive counterclockwise.
func (v Vector) Angle2(o Vector) float64 {
	return math.Atan2(v.Det(o), v.Dot(o))
}

// Exact test that v = k·o for some k. Two zero vectors are multiples of each
// other; a zero vector and a non-zero vector never are.
func (v Vector) IsScalarMultiple(o Vector) bool {
	vZero := v.DX == 0 && v.DY == 0
	oZero := o.DX == 0 && o.DY == 0
	if vZero || oZero {
		return vZero == oZero
	}
	return v.Det(o) == 0
}

// Tolerant version of IsScalarMultiple. The determinant of the unit vectors is
// the sine of the angle between them, so eps bounds that sine and the result
// does not depend on the vectors' lengths.
func (v Vector) IsScalarMultipleEps(o Vector, eps float64) bool {
	vZero := v.IsZero(eps)
	oZero := o.IsZero(eps)
	if vZero || oZero {
		return vZero == oZero
	}
	return math.Abs(v.Unit().Det(o.Unit())) <= eps
}

func (v Vector) IsOrthogonal(o Vector, eps float64) bool {
	if v.IsZero(eps) || o.IsZero(eps) {
		return false
	}
	return math.Abs(v.Unit().Dot(o.Unit())) <= eps
}

func (v Vector) Equals(o Vector, eps float64) bool {
	return Equal(v.DX, o.DX, eps) && Equal(v.DY, o.DY, eps)
}

func (v Vector) IsZero(eps float64) bool {
	return Equal(v.DX, 0, eps) && Equal(v.DY, 0, eps)
}

func (v Vector) Quadrant() Quadrant {
	switch {
	case v.DX == 0 && v.DY == 0:
		return NoQuadrant
	case v.DX > 0 && v.DY >= 0:
		return FirstQuadrant
	case v.DX <= 0 && v.DY > 0:
		return SecondQuadrant
	case v.DX < 0 && v.DY <= 0:
		return ThirdQuadrant
	default:
		return FourthQuadrant
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g>", v.DX, v.DY)
}
