package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
)

// cellSnapshot is one populated grid cell in a form encoding/json can
// round-trip; Grid's own cell type is unexported so callers can't build
// one directly.
type cellSnapshot struct {
	Row    uint8     `json:"row"`
	Col    uint8     `json:"col"`
	Sum    []float64 `json:"sum"`
	Weight float64   `json:"weight"`
}

// Blueprint is a serializable snapshot of a solved grid, letting an
// aggregate run be persisted once and reloaded without re-solving —
// useful since a thorough run (wide ranges, many sampled boards) can take
// long enough that the solver process and the program that reads its
// results needn't be the same invocation.
type Blueprint struct {
	NumActions int            `json:"num_actions"`
	Cells      []cellSnapshot `json:"cells"`
}

// Snapshot captures g's populated cells into a Blueprint.
func (g *Grid) Snapshot() Blueprint {
	bp := Blueprint{NumActions: g.numActions}
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			c := g.cells[row][col]
			if c == nil {
				continue
			}
			bp.Cells = append(bp.Cells, cellSnapshot{
				Row:    uint8(row),
				Col:    uint8(col),
				Sum:    append([]float64(nil), c.sum...),
				Weight: c.weight,
			})
		}
	}
	return bp
}

// Restore rebuilds a Grid from a Blueprint.
func Restore(bp Blueprint) *Grid {
	g := NewGrid(bp.NumActions)
	for _, cs := range bp.Cells {
		g.cells[cs.Row][cs.Col] = &cell{sum: append([]float64(nil), cs.Sum...), weight: cs.Weight}
	}
	return g
}

// SaveJSON writes g's blueprint to path.
func (g *Grid) SaveJSON(path string) error {
	data, err := json.MarshalIndent(g.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("aggregate: marshal blueprint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("aggregate: write blueprint %s: %w", path, err)
	}
	return nil
}

// LoadGridJSON reads a grid blueprint previously written by SaveJSON.
func LoadGridJSON(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aggregate: read blueprint %s: %w", path, err)
	}
	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("aggregate: unmarshal blueprint %s: %w", path, err)
	}
	return Restore(bp), nil
}
