// Package config loads solver configuration from an optional HCL file,
// with CLI flags taking precedence over file values over built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/gto-solver/internal/cfr"
)

// File is the decoded shape of solver.hcl.
type File struct {
	Solver SolverSettings `hcl:"solver,block"`
}

// SolverSettings mirrors cfr.Config's tunables, HCL-tagged for decoding.
// Zero values mean "not set in the file" and are left for the caller's
// defaults to fill in.
type SolverSettings struct {
	BetSizes             []float64 `hcl:"bet_sizes,optional"`
	MaxRaises            int       `hcl:"max_raises,optional"`
	Iterations           int       `hcl:"iterations,optional"`
	Seed                 int64     `hcl:"seed,optional"`
	DepthCap             int       `hcl:"depth_cap,optional"`
	ClampNegativeRegrets *bool     `hcl:"clamp_negative_regrets,optional"`
	BoardBucketing       *bool     `hcl:"board_bucketing,optional"`
	StartingPotBB        float64   `hcl:"starting_pot_bb,optional"`
}

// Load reads solver configuration from filename, falling back silently to
// an empty File (so cfr.DefaultConfig alone governs) if the file does not
// exist — config files are opt-in, not required.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &File{}, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	return &f, nil
}

// Merge builds a cfr.Config starting from cfr.DefaultConfig(), layering
// file settings over it, then CLI overrides over those — file beats
// default, CLI beats file, matching the precedence the bot SDK config
// package establishes.
func Merge(file *File, cliIterations int, cliSeed int64, cliBetSizes []float64) (cfg cfr.Config, iterations int, seed int64) {
	cfg = cfr.DefaultConfig()
	iterations = 1000
	seed = 0

	s := file.Solver
	if len(s.BetSizes) > 0 {
		cfg.BetSizes = s.BetSizes
	}
	if s.MaxRaises > 0 {
		cfg.MaxRaises = s.MaxRaises
	}
	if s.DepthCap > 0 {
		cfg.DepthCap = s.DepthCap
	}
	if s.ClampNegativeRegrets != nil {
		cfg.ClampNegativeRegrets = *s.ClampNegativeRegrets
	}
	if s.BoardBucketing != nil {
		cfg.BoardBucketing = *s.BoardBucketing
	}
	if s.StartingPotBB > 0 {
		cfg.StartingPotBB = s.StartingPotBB
	}
	if s.Iterations > 0 {
		iterations = s.Iterations
	}
	if s.Seed != 0 {
		seed = s.Seed
	}

	if len(cliBetSizes) > 0 {
		cfg.BetSizes = cliBetSizes
	}
	if cliIterations > 0 {
		iterations = cliIterations
	}
	if cliSeed != 0 {
		seed = cliSeed
	}
	return cfg, iterations, seed
}
