package cfr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
)

// Checkpoint is a serializable snapshot of solve progress: enough to
// report the best-so-far strategy if a long solve is cancelled (§5) or to
// resume iteration counting after a restart. The infoset table itself is
// not snapshotted — only the root strategy, which is what callers
// ultimately consume.
type Checkpoint struct {
	Iteration    int       `json:"iteration"`
	RootStrategy []float64 `json:"root_strategy"`
	TableSize    int       `json:"table_size"`
	SavedAt      time.Time `json:"saved_at"`
}

// SaveCheckpoint writes a Checkpoint of s's current progress to path.
func (s *Solver) SaveCheckpoint(path string, clock quartz.Clock) error {
	cp := Checkpoint{
		Iteration:    s.iteration,
		RootStrategy: s.RootStrategy(),
		TableSize:    s.table.Size(),
		SavedAt:      clock.Now(),
	}
	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("cfr: marshal checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cfr: write checkpoint %s: %w", path, err)
	}
	return nil
}

// LoadCheckpoint reads a Checkpoint previously written by SaveCheckpoint,
// for progress reporting across a resumed run.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cfr: read checkpoint %s: %w", path, err)
	}
	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("cfr: unmarshal checkpoint %s: %w", path, err)
	}
	return &cp, nil
}

// SolveWithCheckpoints runs n iterations like Solve, additionally writing
// a Checkpoint to path every interval of wall-clock time as measured by
// clock. Pass quartz.NewReal() in production and quartz.NewMock(t) in
// tests that need to control when checkpoints fire without sleeping.
// Iterations run in small batches between checkpoint checks rather than
// one at a time, so checkpointing overhead stays proportional to interval
// rather than iteration count.
func (s *Solver) SolveWithCheckpoints(ctx context.Context, n int, clock quartz.Clock, path string, interval time.Duration) error {
	const batch = 100
	lastCheckpoint := clock.Now()

	for done := 0; done < n; done += batch {
		step := batch
		if remaining := n - done; remaining < step {
			step = remaining
		}
		if err := s.Solve(ctx, step); err != nil {
			return err
		}

		if path != "" && clock.Now().Sub(lastCheckpoint) >= interval {
			if err := s.SaveCheckpoint(path, clock); err != nil {
				return err
			}
			lastCheckpoint = clock.Now()
		}
	}
	return nil
}
