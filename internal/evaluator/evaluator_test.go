package evaluator

import (
	"math/rand"
	"testing"

	"github.com/lox/gto-solver/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, notations ...string) [7]poker.Card {
	t.Helper()
	var out [7]poker.Card
	require.Len(t, notations, 7)
	for i, n := range notations {
		c, err := poker.ParseCard(n)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestRoyalFlush(t *testing.T) {
	t.Parallel()
	ctx := NewContext()
	cards := mustCards(t, "Ac", "Kc", "Qc", "Jc", "Tc", "2d", "3d")
	rank := ctx.Evaluate7Cards(cards[:])
	assert.Equal(t, "straight-flush", rank.Category())
	assert.Equal(t, HandRank(7463), rank) // floor(7453) + offset(10)
}

func TestWheelStraightFlush(t *testing.T) {
	t.Parallel()
	ctx := NewContext()
	cards := mustCards(t, "Ad", "2d", "3d", "4d", "5d", "9s", "Kh")
	rank := ctx.Evaluate7Cards(cards[:])
	assert.Equal(t, "straight-flush", rank.Category())
	assert.Equal(t, HandRank(7454), rank) // floor + 1, the weakest straight flush
}

func TestQuadsKickerComparison(t *testing.T) {
	t.Parallel()
	ctx := NewContext()
	low := mustCards(t, "Ac", "Ad", "Ah", "As", "9c", "2d", "3d")
	high := mustCards(t, "Ac", "Ad", "Ah", "As", "Kd", "2d", "3d")

	lowRank := ctx.Evaluate7Cards(low[:])
	highRank := ctx.Evaluate7Cards(high[:])
	// Kicker indices are contiguous (normalizeRank(kicker, quads)), so the
	// gap between two kickers is their index distance: with aces as the
	// quad rank, 9 and K sit at indices 7 and 11, four kicker slots apart.
	// The factor of twelve in the quads formula steps between quad ranks,
	// not between kickers.
	assert.Equal(t, 4, int(highRank)-int(lowRank))
}

func TestEvaluatorMonotonicityAgreesWithSubsets(t *testing.T) {
	t.Parallel()
	ctx := NewContext()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		cards := randomSevenCards(rng)
		got := ctx.Evaluate7(poker.NewHand(cards[:]...))
		want := ctx.EvaluateSubsets(cards)
		assert.Equal(t, want, got, "hand %v", cards)
	}
}

func randomSevenCards(rng *rand.Rand) [7]poker.Card {
	var deck [52]poker.Card
	i := 0
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			deck[i] = poker.NewCard(rank, suit)
			i++
		}
	}
	rng.Shuffle(52, func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	var out [7]poker.Card
	copy(out[:], deck[:7])
	return out
}
