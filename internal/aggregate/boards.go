package aggregate

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/gto-solver/poker"
)

// ParseBoard parses a flat board string (0, 6, 8, or 10 characters, each
// pair a <rank><suit> card) into a Hand, per §6's CLI contract. An empty
// string yields an empty Hand (the caller samples boards instead).
func ParseBoard(s string) (poker.Hand, error) {
	if len(s)%2 != 0 {
		return 0, fmt.Errorf("aggregate: board %q has an odd number of characters", s)
	}
	n := len(s) / 2
	switch n {
	case 0, 3, 4, 5:
	default:
		return 0, fmt.Errorf("aggregate: board %q has %d cards, want 0, 3, 4, or 5", s, n)
	}

	var board poker.Hand
	for i := 0; i < n; i++ {
		card, err := poker.ParseCard(s[2*i : 2*i+2])
		if err != nil {
			return 0, fmt.Errorf("aggregate: board %q: %w", s, err)
		}
		if board.HasCard(card) {
			return 0, fmt.Errorf("aggregate: board %q repeats card %s", s, card)
		}
		board.AddCard(card)
	}
	return board, nil
}

// SampleRiverBoards draws n five-card boards from fresh, independently
// shuffled decks, for the no-board preflop driver path (§8 scenario 5
// samples boards rather than fixing one).
func SampleRiverBoards(rng *rand.Rand, n int) []poker.Hand {
	boards := make([]poker.Hand, n)
	for i := range boards {
		deck := poker.NewDeck(rng)
		boards[i] = poker.NewHand(deck.Deal(5)...)
	}
	return boards
}
