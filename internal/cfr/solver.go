// Package cfr implements vanilla counterfactual regret minimization over a
// bounded, fixed-bet-size post-flop betting tree, keyed by information sets
// stored in an open-addressed hash table.
//
// A Solver owns exactly one infoset table and solves exactly one fixed
// (hero hand, villain hand, board) deal; the evaluator tables it reads from
// are immutable and shared by reference across however many solvers a
// caller runs concurrently (see RunDeals).
package cfr

import (
	"context"
	"fmt"

	"github.com/lox/gto-solver/internal/evaluator"
	"github.com/lox/gto-solver/poker"
)

// Solver runs CFR iterations against one fixed deal.
type Solver struct {
	cfg   Config
	ctx   *evaluator.Context
	table *InfosetTable

	hand0, hand1, board poker.Hand
	boardBucket         BoardBucket
	iteration           int
}

// NewSolver builds a solver for one fixed deal. hole0 and hole1 must each
// carry exactly two cards and board exactly five; callers are expected to
// have already rejected overlapping deals (§7's card-overlap policy is
// enforced by the driver, not here).
func NewSolver(cfg Config, evalCtx *evaluator.Context, hole0, hole1, board poker.Hand) *Solver {
	s := &Solver{
		cfg:   cfg,
		ctx:   evalCtx,
		table: NewInfosetTable(),
		hand0: hole0 | board,
		hand1: hole1 | board,
		board: board,
	}
	if cfg.BoardBucketing {
		s.boardBucket = ClassifyBoard(board)
	}
	return s
}

// Table exposes the infoset table for inspection or checkpointing.
func (s *Solver) Table() *InfosetTable { return s.table }

// Solve runs up to n iterations of vanilla CFR, checking ctx between
// iterations so callers can cancel a long run and keep the best-so-far
// strategy.
func (s *Solver) Solve(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.iteration++
		root := initialState(&s.cfg)
		s.traverse(root, 1.0, 1.0)
	}
	return nil
}

// RootStrategy returns the average strategy at the root decision node
// (street=Flop, player 0, empty history), the node the aggregator reads.
func (s *Solver) RootStrategy() []float64 {
	root := initialState(&s.cfg)
	actions := LegalActions(&s.cfg, root)
	key := newInfoSetKey(int(root.Street), root.Acting, root.History, s.boardBucket, root.PotBB, root.CurrentBetBB)
	entry := s.table.Get(key, len(actions))
	return entry.AverageStrategy()
}

// traverse recurses the full game tree (no sampling) and returns the node's
// value from player 0's perspective. At each non-terminal node it updates
// the acting player's regret using counterfactual reach (the other
// player's reach probability) and accumulates the acting player's own
// reach-weighted strategy contribution.
func (s *Solver) traverse(state *GameState, reachP0, reachP1 float64) float64 {
	if state.Terminal {
		return s.terminalPayoff(state)
	}
	if state.Depth >= s.cfg.DepthCap {
		return 0
	}
	if reachP0 < s.cfg.ReachEpsilon && reachP1 < s.cfg.ReachEpsilon {
		return 0
	}

	actions := LegalActions(&s.cfg, state)
	key := newInfoSetKey(int(state.Street), state.Acting, state.History, s.boardBucket, state.PotBB, state.CurrentBetBB)
	entry := s.table.Get(key, len(actions))
	strategy := entry.Strategy()

	values := make([]float64, len(actions))
	nodeValue := 0.0
	for i, a := range actions {
		child := Apply(&s.cfg, state, a)
		var cp0, cp1 float64
		if state.Acting == 0 {
			cp0, cp1 = reachP0*strategy[i], reachP1
		} else {
			cp0, cp1 = reachP0, reachP1*strategy[i]
		}
		v := s.traverse(child, cp0, cp1)
		values[i] = v
		nodeValue += strategy[i] * v
	}

	ownReach, cfReach := reachP0, reachP1
	if state.Acting == 1 {
		ownReach, cfReach = reachP1, reachP0
	}

	regrets := make([]float64, len(actions))
	for i := range actions {
		uP, nodeUP := values[i], nodeValue
		if state.Acting == 1 {
			uP, nodeUP = -uP, -nodeUP
		}
		regrets[i] = cfReach * (uP - nodeUP)
	}
	entry.Update(regrets, strategy, ownReach, s.cfg.ClampNegativeRegrets)

	return nodeValue
}

// terminalPayoff returns player 0's profit in big blinds at a terminal node.
func (s *Solver) terminalPayoff(state *GameState) float64 {
	if !state.Showdown {
		if state.FoldedPlayer == 0 {
			return -state.P0PutBB
		}
		return state.PotBB - state.P0PutBB
	}

	s0 := s.ctx.Evaluate7(s.hand0)
	s1 := s.ctx.Evaluate7(s.hand1)
	var winnings float64
	switch {
	case s0 > s1:
		winnings = state.PotBB
	case s0 < s1:
		winnings = 0
	default:
		winnings = state.PotBB / 2
	}
	return winnings - state.P0PutBB
}

func (s *Solver) String() string {
	return fmt.Sprintf("cfr.Solver(iterations=%d, infosets=%d)", s.iteration, s.table.Size())
}
