package combat

import "sync/atomic"

// Registry holds the tables currently in use. The grade scale can be replaced
// while readers keep evaluating against the previous snapshot.
type Registry struct {
	current    atomic.Pointer[Tables]
	generation atomic.Uint64
}

// NewRegistry returns a registry serving t.
func NewRegistry(t *Tables) *Registry {
	r := &Registry{}
	r.current.Store(t)
	return r
}

// Tables returns the current snapshot.
func (r *Registry) Tables() *Tables {
	return r.current.Load()
}

// Generation increments every time the tables change.
func (r *Registry) Generation() uint64 {
	return r.generation.Load()
}

// SetGrades swaps in a new grade scale after validating it.
func (r *Registry) SetGrades(g GradeScale) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for {
		old := r.current.Load()
		if r.current.CompareAndSwap(old, old.WithGrades(g)) {
			r.generation.Add(1)
			return nil
		}
	}
}
