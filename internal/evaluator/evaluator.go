// Package evaluator implements the seven-card Texas Hold'em hand
// evaluator: given any seven cards, it returns a total-ordering strength
// (higher is stronger) using two static tables and a collision-resolving
// rank map.
//
// # Algorithm
//
// 1. Compute each suit's 13-bit rank mask. If any mask's popcount is >= 5,
// the hand contains a flush (or straight flush); the flush table already
// stores the correct value for every such mask, including 6- and 7-card
// supersets.
// 2. Otherwise, canonicalize the packed hand by suit-reassignment and look
// it up in the rank map.
//
// A slower, equivalent alternate algorithm (enumerating all C(7,5)=21
// five-card subsets against the flush/unique-rank/product tables) is kept
// in subsets.go purely to cross-check this algorithm in tests; it is not
// used on the hot path.
package evaluator

import (
	"fmt"
	"math/bits"

	"github.com/lox/gto-solver/internal/evaltables"
	"github.com/lox/gto-solver/internal/rankmap"
	"github.com/lox/gto-solver/poker"
)

// Context owns the immutable evaluator tables and rank map, built once and
// shared by reference across every solver worker.
type Context struct {
	Tables *evaltables.Tables
	Ranks  *rankmap.Table
}

// NewContext builds a fresh evaluator context from scratch.
func NewContext() *Context {
	return NewContextFromTables(evaltables.Build())
}

// NewContextFromTables builds a context around already-built tables (for
// instance, ones deserialized from handranks.dat by internal/solverio),
// rebuilding only the rank map, which is not itself persisted.
func NewContextFromTables(tables *evaltables.Tables) *Context {
	return &Context{
		Tables: tables,
		Ranks:  rankmap.Build(tables),
	}
}

// Evaluate7 returns the strength of the best five-card hand within the
// given seven packed cards.
func (c *Context) Evaluate7(hand poker.Hand) HandRank {
	for suit := uint8(0); suit < 4; suit++ {
		mask := hand.GetSuitMask(suit)
		if bits.OnesCount16(mask) >= 5 {
			return HandRank(c.Tables.Flush[mask])
		}
	}

	canon := rankmap.Canonicalize(hand)
	strength, ok := c.Ranks.Lookup(canon)
	if !ok {
		panic(fmt.Sprintf("evaluator: rank map miss for canonical hand %#x; table corruption", uint64(canon)))
	}
	return HandRank(strength)
}

// Evaluate7Cards is a convenience wrapper over a concrete card slice,
// which must contain exactly seven cards.
func (c *Context) Evaluate7Cards(cards []poker.Card) HandRank {
	if len(cards) != 7 {
		panic(fmt.Sprintf("evaluator: Evaluate7Cards requires exactly 7 cards, got %d", len(cards)))
	}
	return c.Evaluate7(poker.NewHand(cards...))
}
