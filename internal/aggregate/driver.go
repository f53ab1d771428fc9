package aggregate

import (
	"context"
	"fmt"

	"github.com/lox/gto-solver/internal/cfr"
	"github.com/lox/gto-solver/internal/evaluator"
	"github.com/lox/gto-solver/internal/rangeparser"
	"github.com/lox/gto-solver/poker"
)

// Warner receives a human-readable message for a non-fatal condition
// (§7's "skip and warn" policy). It may be nil.
type Warner func(string)

// Run solves the CFR root strategy for every (hero combo, villain combo,
// board) triple drawn from heroRange x villainRange x boards, skipping any
// combination with overlapping cards, and accumulates the results into a
// 169-cell grid keyed by the hero hand's class.
//
// Each contribution's weight is heroCombo.Weight * heroRange.Overall; the
// villain combo only gates which deals are sampled, not the weight (the
// grid classifies by the hero's hand, per §4.6).
func Run(ctx context.Context, cfg cfr.Config, evalCtx *evaluator.Context, heroRange, villainRange *rangeparser.Range, boards []poker.Hand, iterationsPerDeal int, warn Warner) (*Grid, error) {
	if warn == nil {
		warn = func(string) {}
	}

	var deals []cfr.Deal
	var weights []float64

	for _, board := range boards {
		for _, hero := range heroRange.Combos() {
			heroHand := poker.NewHand(hero.A, hero.B)
			if heroHand&board != 0 {
				warn(fmt.Sprintf("skipping hero combo %s%s: overlaps board", hero.A, hero.B))
				continue
			}
			for _, villain := range villainRange.Combos() {
				villainHand := poker.NewHand(villain.A, villain.B)
				if villainHand&board != 0 || villainHand&heroHand != 0 {
					warn(fmt.Sprintf("skipping villain combo %s%s against hero %s%s: overlapping cards", villain.A, villain.B, hero.A, hero.B))
					continue
				}
				deals = append(deals, cfr.Deal{Hero: heroHand, Villain: villainHand, Board: board})
				weights = append(weights, hero.Weight*heroRange.Overall)
			}
		}
	}

	if len(deals) == 0 {
		return nil, fmt.Errorf("aggregate: no non-overlapping deals to solve")
	}

	results, err := RunDeals(ctx, cfg, evalCtx, deals, iterationsPerDeal)
	if err != nil {
		return nil, err
	}

	numActions := len(results[0].Strategy)
	grid := NewGrid(numActions)
	for i, r := range results {
		grid.Add(r.Deal.Hero, r.Strategy, weights[i])
	}
	return grid, nil
}

// RunDeals is a thin forward to cfr.RunDeals with worker count left to the
// caller's GOMAXPROCS, kept as its own name so callers depending only on
// aggregate need not import internal/cfr directly for the common path.
func RunDeals(ctx context.Context, cfg cfr.Config, evalCtx *evaluator.Context, deals []cfr.Deal, iterations int) ([]cfr.DealResult, error) {
	return cfr.RunDeals(ctx, cfg, evalCtx, deals, iterations, 0)
}
