package geom

import "math"

// The tolerance used when the caller has no better idea. It matches the scale
// of coordinates in the tens to thousands.
const DefaultEpsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Comparisons are inclusive: a difference of exactly eps is still equal.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Normalize an angle in radians into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	if theta >= 2*math.Pi {
		theta = 0
	}
	return theta
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The element below the top of the stack. The hull builder needs the last two
// points to test the turn direction.
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
