// Package evaltables builds the static lookup structures the evaluator
// consults at run time: a flush table, a unique-rank table, and a sorted
// prime-product table for paired five-card hands. All three are built once
// from first principles by enumerating the 7,462 distinct five-card hand
// categories in rule-book order.
package evaltables

import "sort"

// Strength category floors. Higher values are stronger hands; each
// category occupies a contiguous interval starting at its floor.
const (
	HighCardFloor      = 1
	OnePairFloor       = 1278
	TwoPairFloor       = 4138
	TripsFloor         = 4996
	StraightFloor      = 5854
	FlushFloor         = 5864
	FullHouseFloor     = 7141
	QuadsFloor         = 7297
	StraightFlushFloor = 7453
)

// Primes maps a zero-based rank (0=deuce..12=ace) to the prime used for
// product hashing of five-card paired hands.
var Primes = [13]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// ProductEntry is one row of the sorted prime-product table.
type ProductEntry struct {
	Product  uint64
	Strength uint16
}

// Tables holds the three static structures the evaluator reads.
type Tables struct {
	// Flush holds, for every 13-bit rank mask with popcount >= 5, the
	// straight-flush or flush strength of its best five ranks. Zero
	// elsewhere.
	Flush [8192]uint16

	// Unique5 holds, for every exactly-5-bit rank mask, the straight or
	// high-card strength. Zero elsewhere (including masks with any other
	// popcount).
	Unique5 [8192]uint16

	// Products is the prime-product table for quads, full houses,
	// trips, two pair, and one pair, sorted ascending by Product for
	// binary-search lookup.
	Products []ProductEntry
}

// straightOffset returns the 1..10 strength offset for a straight whose
// high card is the zero-based rank `high` (4..12), or 0 if mask carries no
// straight. The wheel (A-2-3-4-5) is the weakest straight and scores 1.
func straightOffset(mask uint16) (offset uint16, ok bool) {
	for high := 12; high >= 4; high-- {
		window := uint16(0x1F) << uint(high-4)
		if mask&window == window {
			return uint16(high-4) + 2, true
		}
	}
	const wheelMask = 0x100F
	if mask&wheelMask == wheelMask {
		return 1, true
	}
	return 0, false
}

// StraightOffset is the exported form of straightOffset, shared with
// internal/rankmap so both the table builder and the direct 7-card scorer
// agree on straight strength.
func StraightOffset(mask uint16) (offset uint16, ok bool) {
	return straightOffset(mask)
}

// Build constructs all three tables.
func Build() *Tables {
	t := &Tables{}

	straightMasks := make(map[uint16]bool, 10)
	allFive := allFiveRankMasks()
	for _, m := range allFive {
		if _, ok := straightOffset(m); ok {
			straightMasks[m] = true
		}
	}

	// Non-straight five-rank masks, sorted descending by numeric value.
	// Numeric descending order over a rank-bitmask is exactly "descending
	// lexicographic order of the rank 5-tuple", since higher ranks occupy
	// higher bit positions.
	nonStraight := make([]uint16, 0, len(allFive)-len(straightMasks))
	for _, m := range allFive {
		if !straightMasks[m] {
			nonStraight = append(nonStraight, m)
		}
	}
	sort.Slice(nonStraight, func(i, j int) bool { return nonStraight[i] > nonStraight[j] })

	// Category 4 (flushes) and category 9 (high card) share this ordering:
	// strongest listed hand gets the top of its interval.
	for i, m := range nonStraight {
		strength := uint16(len(nonStraight) - i)
		t.Flush[m] = FlushFloor + strength
		t.Unique5[m] = HighCardFloor + strength
	}

	// Category 1 (straight flush) and category 5 (straight).
	for m := range straightMasks {
		offset, _ := straightOffset(m)
		t.Flush[m] = StraightFlushFloor + offset
		t.Unique5[m] = StraightFloor + offset
	}

	// Extend the flush table to every popcount >= 5 mask (7,099 of them).
	// A mask holding any straight gets the straight-flush value of its
	// highest straight; otherwise it is reduced to its top five ranks by
	// repeatedly clearing the lowest set bit. The straight check comes
	// first because the dropped low bits can contain a straight flush
	// (ranks A,K,9,8,7,6,5 reduce to A,K,9,8,7, an ace-high flush, while
	// the hand holds a 9-high straight flush).
	for mask := 0; mask < 8192; mask++ {
		m := uint16(mask)
		if popcount(m) < 5 {
			continue
		}
		if offset, ok := straightOffset(m); ok {
			t.Flush[m] = StraightFlushFloor + offset
			continue
		}
		reduced := m
		for popcount(reduced) > 5 {
			reduced &= reduced - 1
		}
		t.Flush[m] = t.Flush[reduced]
	}

	t.Products = buildProductTable()
	sort.Slice(t.Products, func(i, j int) bool { return t.Products[i].Product < t.Products[j].Product })

	return t
}

// LookupProduct binary-searches the sorted product table.
func (t *Tables) LookupProduct(product uint64) (uint16, bool) {
	i := sort.Search(len(t.Products), func(i int) bool { return t.Products[i].Product >= product })
	if i < len(t.Products) && t.Products[i].Product == product {
		return t.Products[i].Strength, true
	}
	return 0, false
}

func buildProductTable() []ProductEntry {
	entries := make([]ProductEntry, 0, 4888)

	// Category 2: four of a kind (156 = 13 quad ranks * 12 kickers).
	for quad := 0; quad < 13; quad++ {
		for kicker := 0; kicker < 13; kicker++ {
			if kicker == quad {
				continue
			}
			idx := normalize(kicker, quad)
			strength := uint16(QuadsFloor + quad*12 + idx + 1)
			product := pow(Primes[quad], 4) * Primes[kicker]
			entries = append(entries, ProductEntry{product, strength})
		}
	}

	// Category 3: full house (156 = 13 trip ranks * 12 pair ranks).
	for trips := 0; trips < 13; trips++ {
		for pair := 0; pair < 13; pair++ {
			if pair == trips {
				continue
			}
			idx := normalize(pair, trips)
			strength := uint16(FullHouseFloor + trips*12 + idx + 1)
			product := pow(Primes[trips], 3) * pow(Primes[pair], 2)
			entries = append(entries, ProductEntry{product, strength})
		}
	}

	// Category 6: trips only (858 = 13 * C(12,2)).
	for trips := 0; trips < 13; trips++ {
		others := otherRanks(trips)
		for i := 0; i < len(others); i++ {
			for j := i + 1; j < len(others); j++ {
				kHigh, kLow := others[j], others[i] // others ascending, so j>i means others[j] higher
				idxHigh := normalize(kHigh, trips)
				idxLow := normalize(kLow, trips)
				strength := uint16(TripsFloor + trips*66 + choose(idxHigh, 2) + choose(idxLow, 1) + 1)
				product := pow(Primes[trips], 3) * Primes[kHigh] * Primes[kLow]
				entries = append(entries, ProductEntry{product, strength})
			}
		}
	}

	// Category 7: two pair (858 = C(13,2) * 11).
	for hi := 0; hi < 13; hi++ {
		for lo := 0; lo < hi; lo++ {
			pairIdx := choose(hi, 2) + choose(lo, 1)
			for kicker := 0; kicker < 13; kicker++ {
				if kicker == hi || kicker == lo {
					continue
				}
				kickerNorm := normalize2(kicker, hi, lo)
				strength := uint16(TwoPairFloor + pairIdx*11 + kickerNorm + 1)
				product := pow(Primes[hi], 2) * pow(Primes[lo], 2) * Primes[kicker]
				entries = append(entries, ProductEntry{product, strength})
			}
		}
	}

	// Category 8: one pair (2860 = 13 * C(12,3)).
	for pair := 0; pair < 13; pair++ {
		others := otherRanks(pair)
		for i := 0; i < len(others); i++ {
			for j := i + 1; j < len(others); j++ {
				for k := j + 1; k < len(others); k++ {
					k1, k2, k3 := others[k], others[j], others[i] // descending
					i1 := normalize(k1, pair)
					i2 := normalize(k2, pair)
					i3 := normalize(k3, pair)
					strength := uint16(OnePairFloor + pair*220 + choose(i1, 3) + choose(i2, 2) + choose(i3, 1) + 1)
					product := pow(Primes[pair], 2) * Primes[k1] * Primes[k2] * Primes[k3]
					entries = append(entries, ProductEntry{product, strength})
				}
			}
		}
	}

	return entries
}

// normalize maps rank into [0,11] after removing a single higher-index
// group rank from the 13-rank universe.
func normalize(rank, removed int) int {
	if rank > removed {
		return rank - 1
	}
	return rank
}

// normalize2 maps rank into [0,10] after removing two group ranks.
func normalize2(rank, removedA, removedB int) int {
	n := rank
	if removedA < rank {
		n--
	}
	if removedB < rank {
		n--
	}
	return n
}

func otherRanks(exclude int) []int {
	out := make([]int, 0, 12)
	for r := 0; r < 13; r++ {
		if r != exclude {
			out = append(out, r)
		}
	}
	return out
}

func choose(n, k int) int {
	if n < k || n < 0 || k < 0 {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func popcount(m uint16) int {
	count := 0
	for m != 0 {
		m &= m - 1
		count++
	}
	return count
}

// allFiveRankMasks enumerates every 13-bit mask with exactly 5 bits set.
func allFiveRankMasks() []uint16 {
	out := make([]uint16, 0, 1287)
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == 5 {
			var m uint16
			for _, r := range chosen {
				m |= 1 << uint(r)
			}
			out = append(out, m)
			return
		}
		for r := start; r < 13; r++ {
			rec(r+1, append(chosen, r))
		}
	}
	rec(0, nil)
	return out
}
