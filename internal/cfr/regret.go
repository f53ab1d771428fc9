package cfr

import "sync"

// RegretEntry accumulates regrets and strategy sums for one information set.
// Slices are sized to the node's legal-action count on first visit and never
// shrink afterward.
type RegretEntry struct {
	RegretSum   []float64
	StrategySum []float64
	Normalising float64
	mutex       sync.Mutex
}

func newRegretEntry(actionCount int) *RegretEntry {
	return &RegretEntry{
		RegretSum:   make([]float64, actionCount),
		StrategySum: make([]float64, actionCount),
	}
}

// Strategy returns the current regret-matching distribution: positive
// regrets normalized to sum to 1, or uniform if none are positive.
func (e *RegretEntry) Strategy() []float64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	strat := make([]float64, len(e.RegretSum))
	total := 0.0
	for i, r := range e.RegretSum {
		if r > 0 {
			strat[i] = r
			total += r
		}
	}
	if total <= 0 {
		v := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = v
		}
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// Update accumulates one iteration's regret and strategy contribution.
// reachWeight is the acting player's own reach probability for the node.
func (e *RegretEntry) Update(regret, strategy []float64, reachWeight float64, clampNegative bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	for i := range regret {
		e.RegretSum[i] += regret[i]
		if clampNegative && e.RegretSum[i] < 0 {
			e.RegretSum[i] = 0
		}
		e.StrategySum[i] += reachWeight * strategy[i]
	}
	e.Normalising += reachWeight
}

// AverageStrategy returns the normalized strategy-sum, the strategy the
// solver converges to after many iterations.
func (e *RegretEntry) AverageStrategy() []float64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	strat := make([]float64, len(e.StrategySum))
	if e.Normalising <= 0 {
		v := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = v
		}
		return strat
	}
	for i := range strat {
		strat[i] = e.StrategySum[i] / e.Normalising
	}
	return strat
}
