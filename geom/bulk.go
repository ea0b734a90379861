package geom

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Below this many candidates, spinning up goroutines costs more than the checks.
const parallelThreshold = 256

var errFound = errors.New("found")

// Check if the point lies on any of the segments. Large edge sets are checked
// in parallel, stopping early once any goroutine finds a hit. Only the OR of
// the results is meaningful; no ordering between checks is implied.
func AnySegmentIntersects(p Point, segments []*Segment, eps float64) bool {
	if len(segments) < parallelThreshold {
		for _, s := range segments {
			if s.IntersectsPoint(p, eps) {
				return true
			}
		}
		return false
	}

	// Segments memoize derived state on first read. Fill the caches here so
	// that the goroutines below only ever read them.
	for _, s := range segments {
		s.warm()
	}
	return anyParallel(len(segments), func(i int) bool {
		return segments[i].IntersectsPoint(p, eps)
	})
}

// Check if any of the points lies on the segment, in parallel for large sets.
func AnyPointOnSegment(points []Point, s *Segment, eps float64) bool {
	if len(points) < parallelThreshold {
		for _, p := range points {
			if s.IntersectsPoint(p, eps) {
				return true
			}
		}
		return false
	}
	s.warm()
	return anyParallel(len(points), func(i int) bool {
		return s.IntersectsPoint(points[i], eps)
	})
}

// Evaluate pred over [0, n) across GOMAXPROCS goroutines and report whether
// any call returned true.
func anyParallel(n int, pred func(i int) bool) bool {
	g, ctx := errgroup.WithContext(context.Background())
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start, end := start, start+chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return nil
				}
				if pred(i) {
					return errFound
				}
			}
			return nil
		})
	}
	return errors.Is(g.Wait(), errFound)
}
