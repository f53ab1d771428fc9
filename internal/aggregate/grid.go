// Package aggregate accumulates CFR root-strategy contributions from many
// sampled (hero hand, villain hand, board) deals into the 169-cell hand-class
// grid: one cell per pocket pair, suited combo, and offsuit combo.
package aggregate

import (
	"math/bits"

	"github.com/lox/gto-solver/poker"
)

type cell struct {
	sum    []float64
	weight float64
}

// Grid is a 13x13 array of accumulators indexed by rank pair. By
// convention cell[hi][lo] (hi > lo) holds the offsuit class, cell[lo][hi]
// holds the suited class, and cell[r][r] holds the pocket pair class —
// the standard hand-class grid layout.
type Grid struct {
	cells      [13][13]*cell
	numActions int
}

// NewGrid returns an empty grid sized for root nodes with numActions
// legal actions (the root decision is always CHECK plus one BET per
// configured size, so this is constant across every contribution).
func NewGrid(numActions int) *Grid {
	return &Grid{numActions: numActions}
}

// Add folds one deal's root strategy into its hero hand's class cell,
// scaled by weight (the range's per-hand weight times any overall
// frequency multiplier, per §4.4/§4.6).
func (g *Grid) Add(hero poker.Hand, strategy []float64, weight float64) {
	if weight <= 0 {
		return
	}
	hi, lo := classCoords(hero)
	c := g.cells[hi][lo]
	if c == nil {
		c = &cell{sum: make([]float64, g.numActions)}
		g.cells[hi][lo] = c
	}
	for i, p := range strategy {
		c.sum[i] += weight * p
	}
	c.weight += weight
}

// Average returns the weight-normalized average strategy for one class,
// and false if the class was never sampled.
func (g *Grid) Average(hi, lo uint8) ([]float64, bool) {
	c := g.cells[hi][lo]
	if c == nil || c.weight <= 0 {
		return nil, false
	}
	out := make([]float64, len(c.sum))
	for i, s := range c.sum {
		out[i] = s / c.weight
	}
	return out, true
}

// classCoords maps a two-card hand to its grid coordinates: cells[hi][lo]
// for pairs and offsuit, cells[lo][hi] for suited, with hi always the
// higher rank.
func classCoords(hole poker.Hand) (row, col uint8) {
	mask := hole.GetRankMask()
	var ranks []uint8
	for r := uint8(0); r < 13; r++ {
		if mask&(1<<r) != 0 {
			ranks = append(ranks, r)
		}
	}

	if len(ranks) == 1 {
		return ranks[0], ranks[0]
	}

	hi, lo := ranks[1], ranks[0] // ranks is ascending since r counts up
	for suit := uint8(0); suit < 4; suit++ {
		if bits.OnesCount16(hole.GetSuitMask(suit)) == 2 {
			return lo, hi
		}
	}
	return hi, lo
}
