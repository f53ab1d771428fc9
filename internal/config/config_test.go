package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()
	f, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Zero(t, f.Solver.MaxRaises)
}

func TestLoadParsesSolverBlock(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "solver.hcl")
	contents := `
solver {
  bet_sizes    = [0.5, 1.0, 2.0]
  max_raises   = 3
  iterations   = 5000
  seed         = 42
  depth_cap    = 30
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.0, 2.0}, f.Solver.BetSizes)
	assert.Equal(t, 3, f.Solver.MaxRaises)
	assert.Equal(t, 5000, f.Solver.Iterations)
	assert.EqualValues(t, 42, f.Solver.Seed)
	assert.Equal(t, 30, f.Solver.DepthCap)
}

func TestMergePrecedenceCLIOverFileOverDefault(t *testing.T) {
	t.Parallel()
	file := &File{Solver: SolverSettings{MaxRaises: 5, Iterations: 2000}}

	cfg, iterations, _ := Merge(file, 0, 0, nil)
	assert.Equal(t, 5, cfg.MaxRaises)
	assert.Equal(t, 2000, iterations)

	cfg, iterations, seed := Merge(file, 9000, 7, []float64{2.0})
	assert.Equal(t, 9000, iterations)
	assert.EqualValues(t, 7, seed)
	assert.Equal(t, []float64{2.0}, cfg.BetSizes)
	assert.Equal(t, 5, cfg.MaxRaises) // untouched by CLI args
}

func TestMergeFallsBackToDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg, iterations, seed := Merge(&File{}, 0, 0, nil)
	assert.Equal(t, []float64{1.0}, cfg.BetSizes)
	assert.Equal(t, 2, cfg.MaxRaises)
	assert.Equal(t, 1000, iterations)
	assert.Zero(t, seed)
}
