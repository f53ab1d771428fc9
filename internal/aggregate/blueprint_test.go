package aggregate

import (
	"path/filepath"
	"testing"

	"github.com/lox/gto-solver/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	g := NewGrid(2)
	aa := poker.NewHand(mustCard(t, "Ac"), mustCard(t, "Ad"))
	g.Add(aa, []float64{0.2, 0.8}, 1.0)

	restored := Restore(g.Snapshot())
	avg, ok := restored.Average(poker.Ace, poker.Ace)
	require.True(t, ok)
	assert.InDelta(t, 0.2, avg[0], 1e-9)
	assert.InDelta(t, 0.8, avg[1], 1e-9)
}

func TestSaveLoadJSONRoundTrip(t *testing.T) {
	t.Parallel()
	g := NewGrid(2)
	ak := poker.NewHand(mustCard(t, "Ac"), mustCard(t, "Kc"))
	g.Add(ak, []float64{0.4, 0.6}, 2.0)

	path := filepath.Join(t.TempDir(), "blueprint.json")
	require.NoError(t, g.SaveJSON(path))

	loaded, err := LoadGridJSON(path)
	require.NoError(t, err)

	hi, lo := classCoords(ak)
	avg, ok := loaded.Average(hi, lo)
	require.True(t, ok)
	assert.InDelta(t, 0.4, avg[0], 1e-9)
	assert.InDelta(t, 0.6, avg[1], 1e-9)
}
