package geom

import "sync/atomic"

// Env is the caller-owned environment shared by a session of geometry: a
// default tolerance and an allocator of unique area ids. Pass the same Env to
// every constructor whose ids must not collide.
type Env struct {
	Epsilon float64
	nextID  int64
}

func NewEnv(epsilon float64) *Env {
	if epsilon < 0 {
		fatalf("epsilon must be non-negative, got %g", epsilon)
	}
	return &Env{Epsilon: epsilon}
}

// Allocate the next id. Ids start at 1, so the zero value never names a shape.
func (e *Env) NextID() int {
	return int(atomic.AddInt64(&e.nextID, 1))
}
