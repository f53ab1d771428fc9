package aggregate

import (
	"fmt"
	"strings"
)

var rankLabel = [13]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// ClassLabel renders a grid coordinate pair in standard notation: "AA" for
// a pair, "AKs"/"AKo" for suited/offsuit non-pairs.
func ClassLabel(hi, lo uint8) string {
	if hi == lo {
		return string([]byte{rankLabel[hi], rankLabel[hi]})
	}
	if hi > lo {
		return string([]byte{rankLabel[hi], rankLabel[lo], 'o'})
	}
	return string([]byte{rankLabel[lo], rankLabel[hi], 's'})
}

// BetFrequency returns the probability mass on every action except CHECK
// (action 0), the summary statistic §8's scenario 5 is stated in terms of.
func BetFrequency(strategy []float64) float64 {
	if len(strategy) == 0 {
		return 0
	}
	return 1 - strategy[0]
}

// Render renders the 169-cell grid as a 13x13 text table of bet
// frequencies, Ace-high row/column first, one row per line. A class with
// no samples renders as "-".
func Render(g *Grid) string {
	var b strings.Builder
	for row := 12; row >= 0; row-- {
		for col := 12; col >= 0; col-- {
			// row > col looks up the offsuit/pair cell; row < col looks up
			// the suited cell — Grid.Average's argument order is the
			// discriminator, so the coordinates are passed through as-is.
			strat, ok := g.Average(uint8(row), uint8(col))
			if !ok {
				fmt.Fprintf(&b, "%-6s", "-")
				continue
			}
			fmt.Fprintf(&b, "%-6.2f", BetFrequency(strat))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
