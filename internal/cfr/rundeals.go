package cfr

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/gto-solver/internal/evaluator"
	"github.com/lox/gto-solver/poker"
)

// Deal is one (hero hole cards, villain hole cards, board) sample the
// aggregator wants solved independently.
type Deal struct {
	Hero    poker.Hand
	Villain poker.Hand
	Board   poker.Hand
}

// DealResult pairs a solved deal with its root-node strategy.
type DealResult struct {
	Deal     Deal
	Strategy []float64
}

// RunDeals solves every deal concurrently, each on its own Solver with its
// own infoset table; only the evaluator tables are shared, by reference.
// This is the fan-out §5 calls for: independent (hero, villain, board)
// tasks spread across workers. workers <= 0 means GOMAXPROCS-sized
// parallelism, left to errgroup.SetLimit's default of unlimited goroutines
// bounded by the deal count itself.
func RunDeals(ctx context.Context, cfg Config, evalCtx *evaluator.Context, deals []Deal, iterations, workers int) ([]DealResult, error) {
	results := make([]DealResult, len(deals))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, deal := range deals {
		i, deal := i, deal
		g.Go(func() error {
			solver := NewSolver(cfg, evalCtx, deal.Hero, deal.Villain, deal.Board)
			if err := solver.Solve(gctx, iterations); err != nil {
				return err
			}
			results[i] = DealResult{Deal: deal, Strategy: solver.RootStrategy()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
