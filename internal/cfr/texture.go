package cfr

import (
	"math/bits"

	"github.com/lox/gto-solver/poker"
)

// BoardBucket is a coarse wet/dry classification of a board, used to keep
// the infoset key's board dimension bounded when a blueprint merges
// strategies learned across many different boards sampled for the same
// hand class. It has no bearing on the betting-tree contract itself: a
// single Solver always solves one fixed board, so within one solve this
// bucket is a constant; it only matters once callers start sharing one
// InfosetTable across multiple boards (see Config.BoardBucketing).
type BoardBucket int

const (
	BucketDry BoardBucket = iota
	BucketSemiWet
	BucketWet
	BucketVeryWet
)

func (b BoardBucket) String() string {
	switch b {
	case BucketDry:
		return "dry"
	case BucketSemiWet:
		return "semi-wet"
	case BucketWet:
		return "wet"
	case BucketVeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

type flushPotential struct {
	maxSuitCount int
	isMonotone   bool
}

type straightPotential struct {
	connectedCards int
}

// ClassifyBoard scores board wetness from flush, straight, pairing, and
// high-card density, then buckets the score into four bands.
func ClassifyBoard(board poker.Hand) BoardBucket {
	if board.CountCards() < 3 {
		return BucketDry
	}

	wetness := 0

	flush := analyzeFlushPotential(board)
	switch {
	case flush.isMonotone:
		wetness += 4
	case flush.maxSuitCount >= 4:
		wetness += 4
	case flush.maxSuitCount == 3:
		wetness += 3
	case flush.maxSuitCount == 2:
		wetness += 1
	}

	straight := analyzeStraightPotential(board)
	switch {
	case straight.connectedCards >= 4:
		wetness += 4
	case straight.connectedCards == 3:
		wetness += 3
	case straight.connectedCards == 2:
		wetness += 1
	}

	if countBoardPairs(board) >= 1 {
		wetness++
	}
	if countHighCards(board) >= 3 {
		wetness++
	}

	switch {
	case wetness <= 0:
		return BucketDry
	case wetness <= 3:
		return BucketSemiWet
	case wetness <= 5:
		return BucketWet
	default:
		return BucketVeryWet
	}
}

func analyzeFlushPotential(board poker.Hand) flushPotential {
	var maxCount int
	nonZeroSuits := 0
	for suit := uint8(0); suit < 4; suit++ {
		count := bits.OnesCount16(board.GetSuitMask(suit))
		if count == 0 {
			continue
		}
		nonZeroSuits++
		if count > maxCount {
			maxCount = count
		}
	}
	return flushPotential{
		maxSuitCount: maxCount,
		isMonotone:   nonZeroSuits == 1 && board.CountCards() >= 3,
	}
}

func analyzeStraightPotential(board poker.Hand) straightPotential {
	rankMask := board.GetRankMask()
	ranks := make([]int, 0, board.CountCards())
	for rank := 0; rank < 13; rank++ {
		if rankMask&(1<<rank) != 0 {
			ranks = append(ranks, rank)
		}
	}
	if len(ranks) == 0 {
		return straightPotential{}
	}

	maxConnected, current := 1, 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] == 1 {
			current++
			if current > maxConnected {
				maxConnected = current
			}
		} else {
			current = 1
		}
	}

	// Wheel connectivity (A-2-3-4-5): treat the ace as rank -1 when low
	// ranks are present, since it does not appear adjacent to King here.
	if rankMask&(1<<poker.Ace) != 0 {
		var low []int
		for _, r := range ranks {
			if r <= 3 {
				low = append(low, r)
			}
		}
		if len(low) >= 2 {
			wheelRanks := append([]int{-1}, low...)
			wheelConnected, wheelMax := 1, 1
			for i := 1; i < len(wheelRanks); i++ {
				if wheelRanks[i]-wheelRanks[i-1] == 1 {
					wheelConnected++
					if wheelConnected > wheelMax {
						wheelMax = wheelConnected
					}
				} else {
					wheelConnected = 1
				}
			}
			if wheelMax > maxConnected {
				maxConnected = wheelMax
			}
		}
	}

	return straightPotential{connectedCards: maxConnected}
}

func countBoardPairs(board poker.Hand) int {
	var rankCounts [13]int
	for suit := uint8(0); suit < 4; suit++ {
		mask := board.GetSuitMask(suit)
		for rank := uint8(0); rank < 13; rank++ {
			if mask&(1<<rank) != 0 {
				rankCounts[rank]++
			}
		}
	}
	pairs := 0
	for _, c := range rankCounts {
		if c >= 2 {
			pairs++
		}
	}
	return pairs
}

func countHighCards(board poker.Hand) int {
	count := 0
	for suit := uint8(0); suit < 4; suit++ {
		count += bits.OnesCount16(board.GetSuitMask(suit) & 0x1F00) // T..A
	}
	return count
}
