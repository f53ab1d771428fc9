// Package solverio reads and writes the evaluator table file
// (handranks.dat): a tightly packed little-endian binary encoding of the
// flush table, the unique-rank table, and the sorted prime-product table,
// so a driver can skip rebuilding them (§4.1) on every run.
//
// The layout is a fixed, non-self-describing binary format with no
// natural fit in any serialization library the corpus imports (no
// protobuf/msgpack/gob schema would reproduce this exact byte layout) —
// encoding/binary is used directly for the field-by-field reads and
// writes, and a raw byte slice for the bulk table copies.
package solverio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/lox/gto-solver/internal/evaltables"
)

const (
	// Magic is the tag 0x48524E4B (the ASCII bytes "HRNK" read
	// most-significant first), written little-endian like every header
	// field.
	Magic   uint32 = 0x48524E4B
	Version uint32 = 3

	bitmaskSize = 8192
)

// Write serializes tables to w in the handranks.dat layout.
func Write(w io.Writer, tables *evaltables.Tables) error {
	header := make([]byte, 16)
	binary.LittleEndian.PutUint32(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[4:8], Version)
	binary.LittleEndian.PutUint32(header[8:12], bitmaskSize)
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(tables.Products)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("solverio: write header: %w", err)
	}

	if err := writeUint16Table(w, tables.Flush[:]); err != nil {
		return fmt.Errorf("solverio: write flush table: %w", err)
	}
	if err := writeUint16Table(w, tables.Unique5[:]); err != nil {
		return fmt.Errorf("solverio: write unique5 table: %w", err)
	}

	products := make([]evaltables.ProductEntry, len(tables.Products))
	copy(products, tables.Products)
	sort.Slice(products, func(i, j int) bool { return products[i].Product < products[j].Product })

	row := make([]byte, 6)
	for _, p := range products {
		binary.LittleEndian.PutUint32(row[0:4], uint32(p.Product))
		binary.LittleEndian.PutUint16(row[4:6], p.Strength)
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("solverio: write product entry: %w", err)
		}
	}
	return nil
}

func writeUint16Table(w io.Writer, table []uint16) error {
	buf := make([]byte, 2*len(table))
	for i, v := range table {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], v)
	}
	_, err := w.Write(buf)
	return err
}

// Read deserializes a handranks.dat file from r. A magic mismatch or a
// truncated file is fatal per §7's table-file error policy; callers
// should regenerate via evaltables.Build and retry once.
func Read(r io.Reader) (*evaltables.Tables, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("solverio: read header: %w", err)
	}
	magic := binary.LittleEndian.Uint32(header[0:4])
	if magic != Magic {
		return nil, fmt.Errorf("solverio: bad magic %#x, want %#x", magic, Magic)
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != Version {
		return nil, fmt.Errorf("solverio: unsupported version %d, want %d", version, Version)
	}
	size := binary.LittleEndian.Uint32(header[8:12])
	if size != bitmaskSize {
		return nil, fmt.Errorf("solverio: unexpected bitmask_size %d, want %d", size, bitmaskSize)
	}
	numProducts := binary.LittleEndian.Uint32(header[12:16])

	tables := &evaltables.Tables{}
	if err := readUint16Table(r, tables.Flush[:]); err != nil {
		return nil, fmt.Errorf("solverio: read flush table: %w", err)
	}
	if err := readUint16Table(r, tables.Unique5[:]); err != nil {
		return nil, fmt.Errorf("solverio: read unique5 table: %w", err)
	}

	tables.Products = make([]evaltables.ProductEntry, numProducts)
	row := make([]byte, 6)
	for i := range tables.Products {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("solverio: read product entry %d: %w", i, err)
		}
		tables.Products[i] = evaltables.ProductEntry{
			Product:  uint64(binary.LittleEndian.Uint32(row[0:4])),
			Strength: binary.LittleEndian.Uint16(row[4:6]),
		}
	}
	return tables, nil
}

func readUint16Table(r io.Reader, table []uint16) error {
	buf := make([]byte, 2*len(table))
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	for i := range table {
		table[i] = binary.LittleEndian.Uint16(buf[2*i : 2*i+2])
	}
	return nil
}
