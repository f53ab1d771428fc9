package evaluator

import (
	"math/bits"

	"github.com/lox/gto-solver/internal/evaltables"
	"github.com/lox/gto-solver/poker"
)

// sevenChooseFive enumerates the 21 five-element index combinations of
// {0..6}, used by the subset evaluator below.
var sevenChooseFive = func() [][5]int {
	var out [][5]int
	var chosen [5]int
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == 5 {
			out = append(out, chosen)
			return
		}
		for i := start; i < 7; i++ {
			chosen[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}()

// EvaluateSubsets is the equivalent alternate algorithm from the design
// notes: it evaluates all C(7,5)=21 five-card subsets independently
// against the flush, unique-rank, and product tables and returns the best.
// It never touches the rank map, so it is useful as an independent
// cross-check of Evaluate7 in tests.
func (c *Context) EvaluateSubsets(cards [7]poker.Card) HandRank {
	var best HandRank
	for _, combo := range sevenChooseFive {
		var five [5]poker.Card
		for i, idx := range combo {
			five[i] = cards[idx]
		}
		if s := c.evaluateFive(five); s > best {
			best = s
		}
	}
	return best
}

func (c *Context) evaluateFive(cards [5]poker.Card) HandRank {
	var suitCounts [4]int
	var hist [13]int
	var rankMask uint16
	for _, card := range cards {
		suitCounts[card.Suit()]++
		hist[card.Rank()]++
		rankMask |= 1 << card.Rank()
	}

	isFlush := false
	for _, n := range suitCounts {
		if n == 5 {
			isFlush = true
		}
	}

	if isFlush {
		return HandRank(c.Tables.Flush[rankMask])
	}

	if bits.OnesCount16(rankMask) == 5 {
		// Five distinct ranks, no flush: straight or pure high card.
		return HandRank(c.Tables.Unique5[rankMask])
	}

	product := uint64(1)
	for rank, count := range hist {
		for i := 0; i < count; i++ {
			product *= evaltables.Primes[rank]
		}
	}
	strength, ok := c.Tables.LookupProduct(product)
	if !ok {
		panic("evaluator: no product-table entry for a paired five-card hand; table corruption")
	}
	return HandRank(strength)
}
