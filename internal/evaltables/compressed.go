package evaltables

import (
	"encoding/binary"
	"fmt"

	"github.com/opencoff/go-chd"
)

// CompressedProductIndex is an alternate to Tables.LookupProduct's binary
// search: a minimal perfect hash over the product table built with CHD
// (compress, hash, displace), giving O(1) lookup at the cost of a one-time
// build pass. The binary-search path remains the default; this is opt-in
// for callers that build a table once and query it many times (a solver
// run spanning many deals, for instance).
type CompressedProductIndex struct {
	h        *chd.CHD
	strength []uint16
}

// NewCompressedProductIndex builds a CompressedProductIndex over the given
// product table. The table is assumed immutable afterward: CHD builds a
// hash function for a fixed key set, it does not support insertion.
func NewCompressedProductIndex(products []ProductEntry) (*CompressedProductIndex, error) {
	keys := make([][]byte, len(products))
	for i, p := range products {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], p.Product)
		keys[i] = b[:]
	}

	b := chd.NewBuilder()
	for _, k := range keys {
		b.Add(k)
	}
	h, err := b.Freeze(0)
	if err != nil {
		return nil, fmt.Errorf("evaltables: build compressed product index: %w", err)
	}

	strength := make([]uint16, len(products))
	for i, p := range products {
		slot := h.Find(keys[i])
		if int(slot) >= len(strength) {
			return nil, fmt.Errorf("evaltables: compressed index slot %d out of range for %d products", slot, len(products))
		}
		strength[slot] = p.Strength
	}

	return &CompressedProductIndex{h: h, strength: strength}, nil
}

// Lookup returns the strength for product, or false if product was not a
// member of the table the index was built from. Unlike LookupProduct, a
// miss against a key outside the original set is not guaranteed to be
// detected: CHD only guarantees collision-free hashing over its build set,
// so callers must not query products known to be absent from the
// evaluator's domain (all 7-card hands always hash to a member product).
func (c *CompressedProductIndex) Lookup(product uint64) (uint16, bool) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], product)
	slot := c.h.Find(b[:])
	if int(slot) >= len(c.strength) {
		return 0, false
	}
	strength := c.strength[slot]
	return strength, strength != 0
}
