package cfr

import "math"

// maxDepth bounds the action history length an information-set key can
// record; it mirrors the recursion depth cap so no valid node overflows it.
const maxDepth = 20

// potQuantum is the big-blind granularity pot and to-call amounts are
// quantized to before becoming part of an InfoSetKey (two decimal places
// of a big blind, per §3), so that floating-point noise across equal
// betting lineages still collides into the same key.
const potQuantum = 100

// InfoSetKey identifies a decision node. Within a single solve, hole cards
// are fixed for the life of the solver, so the information distinguishing
// one node from another is the acting player, the street, the sequence of
// actions taken so far on that street's path from the root, and — since
// terminal payoffs scale with the pot — the pot size and the amount still
// owed to call, each quantized to two BB decimals. Two nodes with the same
// street/player/history but different pots are different information sets:
// without PotBucket/ToCallBucket, e.g. a flop CHECK,CHECK and a flop
// BET,CALL would both reach turn key {Turn, P0, []} despite carrying
// different pots, corrupting their shared regret entry.
type InfoSetKey struct {
	Street       int8
	Player       int8
	Len          int8
	BoardBucket  int8 // 0 unless Config.BoardBucketing is enabled
	PotBucket    int32
	ToCallBucket int32
	History      [maxDepth]int8
}

func quantizeBB(bb float64) int32 {
	return int32(math.Round(bb * potQuantum))
}

func newInfoSetKey(street, player int, history []Action, boardBucket BoardBucket, potBB, currentBetBB float64) InfoSetKey {
	k := InfoSetKey{
		Street:       int8(street),
		Player:       int8(player),
		Len:          int8(len(history)),
		BoardBucket:  int8(boardBucket),
		PotBucket:    quantizeBB(potBB),
		ToCallBucket: quantizeBB(currentBetBB),
	}
	for i, a := range history {
		if i >= maxDepth {
			break
		}
		k.History[i] = int8(a)
	}
	return k
}

// hash is an FNV-1a fold over the key's fields, good enough for
// open-addressed placement; full-key equality resolves collisions.
func (k InfoSetKey) hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= prime64
	}
	mixInt32 := func(v int32) {
		u := uint32(v)
		mix(byte(u))
		mix(byte(u >> 8))
		mix(byte(u >> 16))
		mix(byte(u >> 24))
	}
	mix(byte(k.Street))
	mix(byte(k.Player))
	mix(byte(k.Len))
	mix(byte(k.BoardBucket))
	mixInt32(k.PotBucket)
	mixInt32(k.ToCallBucket)
	for i := int8(0); i < k.Len; i++ {
		mix(byte(k.History[i]))
	}
	if h == 0 {
		h = prime64
	}
	return h
}
