package cfr

import (
	"testing"

	"github.com/lox/gto-solver/poker"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBoardDryRainbowUnconnected(t *testing.T) {
	t.Parallel()
	board := poker.NewHand(
		mustCard(t, "2c"), mustCard(t, "7d"), mustCard(t, "Kh"),
	)
	assert.Equal(t, BucketDry, ClassifyBoard(board))
}

func TestClassifyBoardMonotoneIsVeryWet(t *testing.T) {
	t.Parallel()
	board := poker.NewHand(
		mustCard(t, "2c"), mustCard(t, "7c"), mustCard(t, "Kc"),
	)
	assert.Equal(t, BucketVeryWet, ClassifyBoard(board))
}

func TestClassifyBoardConnectedStraighty(t *testing.T) {
	t.Parallel()
	board := poker.NewHand(
		mustCard(t, "7c"), mustCard(t, "8d"), mustCard(t, "9h"),
	)
	bucket := ClassifyBoard(board)
	assert.GreaterOrEqual(t, int(bucket), int(BucketSemiWet))
}

func TestClassifyBoardShortBoardIsDry(t *testing.T) {
	t.Parallel()
	board := poker.NewHand(mustCard(t, "2c"), mustCard(t, "7d"))
	assert.Equal(t, BucketDry, ClassifyBoard(board))
}

func TestSolverWithBoardBucketingEnabled(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.BoardBucketing = true
	hero := poker.NewHand(mustCard(t, "Ac"), mustCard(t, "Ad"))
	villain := poker.NewHand(mustCard(t, "7c"), mustCard(t, "2h"))
	board := poker.NewHand(mustCard(t, "3s"), mustCard(t, "4s"), mustCard(t, "5s"), mustCard(t, "9c"), mustCard(t, "Th"))

	solver := NewSolver(cfg, sharedEvalCtx, hero, villain, board)
	assert.Equal(t, BucketVeryWet, solver.boardBucket) // three spades plus a 3-4-5 run
}
