package evaluator

import "github.com/lox/gto-solver/internal/evaltables"

// HandRank is a total-ordering strength value: higher is stronger. It
// commits to the §3 convention rather than the legacy "rank 1 = best"
// table-builder convention; callers never need to invert it.
type HandRank uint16

// Compare returns 1 if h beats other, -1 if other beats h, 0 on a tie.
func (h HandRank) Compare(other HandRank) int {
	switch {
	case h > other:
		return 1
	case h < other:
		return -1
	default:
		return 0
	}
}

// Category names the rank category a strength value falls in.
func (h HandRank) Category() string {
	switch {
	case h >= evaltables.StraightFlushFloor:
		return "straight-flush"
	case h >= evaltables.QuadsFloor:
		return "quads"
	case h >= evaltables.FullHouseFloor:
		return "full-house"
	case h >= evaltables.FlushFloor:
		return "flush"
	case h >= evaltables.StraightFloor:
		return "straight"
	case h >= evaltables.TripsFloor:
		return "trips"
	case h >= evaltables.TwoPairFloor:
		return "two-pair"
	case h >= evaltables.OnePairFloor:
		return "one-pair"
	default:
		return "high-card"
	}
}

func (h HandRank) String() string {
	return h.Category()
}
