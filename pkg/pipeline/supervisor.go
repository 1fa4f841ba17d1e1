package pipeline

import (
	"context"
	"sync"

	"github.com/andreaperaltro/camo/pkg/errors"
)

// Supervisor serializes interactive regeneration per target. Each target
// (a UI panel, an API session) gets a monotonically increasing sequence
// number; when a generation finishes it is kept only if no newer request
// for the same target was issued in the meantime. Stale results are
// discarded so rapid slider changes never publish out of order.
type Supervisor struct {
	runner *Runner

	mu     sync.Mutex
	latest map[string]uint64
}

// NewSupervisor creates a supervisor over the given runner.
func NewSupervisor(r *Runner) *Supervisor {
	return &Supervisor{
		runner: r,
		latest: make(map[string]uint64),
	}
}

// Generate runs the pipeline for the target. If a newer Generate call for
// the same target was issued while this one ran, the finished result is
// dropped and an error with code SUPERSEDED is returned instead.
func (s *Supervisor) Generate(ctx context.Context, targetID string, opts Options) (*Result, error) {
	s.mu.Lock()
	s.latest[targetID]++
	seq := s.latest[targetID]
	s.mu.Unlock()

	result, err := s.runner.Generate(ctx, opts)

	s.mu.Lock()
	current := s.latest[targetID]
	s.mu.Unlock()
	if seq != current {
		return nil, errors.New(errors.ErrCodeSuperseded, "generation for target %q superseded", targetID)
	}
	return result, err
}

// IsSuperseded reports whether err marks a discarded stale generation.
func IsSuperseded(err error) bool {
	return errors.Is(err, errors.ErrCodeSuperseded)
}
