// Command solver runs the CFR aggregator over a hero range, a villain
// range, and an optional board, and prints a 169-cell bet-frequency grid.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/gto-solver/internal/aggregate"
	"github.com/lox/gto-solver/internal/config"
	"github.com/lox/gto-solver/internal/evaltables"
	"github.com/lox/gto-solver/internal/evaluator"
	"github.com/lox/gto-solver/internal/obslog"
	"github.com/lox/gto-solver/internal/randutil"
	"github.com/lox/gto-solver/internal/rangeparser"
	"github.com/lox/gto-solver/internal/solverio"
	"github.com/lox/gto-solver/poker"
)

var cli struct {
	Verbose bool `help:"enable debug logging"`
	Quiet   bool `help:"suppress info logging, warnings only"`

	Solve  SolveCmd  `cmd:"" default:"withargs" help:"solve hero range vs villain range and print the bet-frequency grid"`
	Tables TablesCmd `cmd:"" help:"build and write the evaluator table file (handranks.dat)"`
}

// SolveCmd implements the §6 CLI contract: <program> <hero_range>
// <villain_range> [board].
type SolveCmd struct {
	HeroRange    string `arg:"" help:"hero range notation, e.g. \"22+\""`
	VillainRange string `arg:"" help:"villain range notation"`
	Board        string `arg:"" optional:"" help:"0, 6, 8, or 10 char board string; omit to sample random boards"`

	Config     string    `help:"path to an optional solver.hcl config file" default:"solver.hcl"`
	Iterations int       `help:"CFR iterations per deal" default:"0"`
	Seed       int64     `help:"RNG seed for board sampling" default:"0"`
	BetSizes   []float64 `help:"pot-fraction bet sizes, overrides config/default"`
	TablePath  string    `help:"evaluator table file to load (rebuilt from scratch if empty or missing)"`
	Boards     int       `help:"number of boards to sample when no board is given" default:"3"`
}

// TablesCmd (re)builds the evaluator tables and serializes them.
type TablesCmd struct {
	Out string `help:"path to write handranks.dat" required:""`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("solver"),
		kong.Description("heads-up no-limit hold'em GTO solver core"),
		kong.UsageOnError(),
	)

	logger := obslog.New(os.Stderr, cli.Verbose, cli.Quiet)

	var err error
	switch ctx.Command() {
	case "tables":
		err = cli.Tables.Run(logger)
	default:
		err = cli.Solve.Run(logger)
	}

	if err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func (cmd *TablesCmd) Run(logger *log.Logger) error {
	tables := evaltables.Build()

	f, err := os.Create(cmd.Out)
	if err != nil {
		return fmt.Errorf("tables: create %s: %w", cmd.Out, err)
	}
	defer f.Close()

	if err := solverio.Write(f, tables); err != nil {
		return fmt.Errorf("tables: write %s: %w", cmd.Out, err)
	}
	logger.Info("wrote evaluator tables", "path", cmd.Out, "products", len(tables.Products))
	return nil
}

func (cmd *SolveCmd) Run(logger *log.Logger) error {
	warn := obslog.Warner(logger)

	heroRange, err := rangeparser.Parse(cmd.HeroRange, warn)
	if err != nil {
		return fmt.Errorf("solve: hero range: %w", err)
	}
	villainRange, err := rangeparser.Parse(cmd.VillainRange, warn)
	if err != nil {
		return fmt.Errorf("solve: villain range: %w", err)
	}

	file, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	cfg, iterations, seed := config.Merge(file, cmd.Iterations, cmd.Seed, cmd.BetSizes)

	board, err := aggregate.ParseBoard(cmd.Board)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	evalCtx := loadEvaluatorContext(cmd.TablePath, logger)
	boards := boardsFor(board, cmd.Boards, seed)

	grid, err := aggregate.Run(context.Background(), cfg, evalCtx, heroRange, villainRange, boards, iterations, warn)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Println(aggregate.Render(grid))
	return nil
}

// boardsFor returns a single-board slice if board is non-empty, otherwise
// samples n river boards with a seeded RNG (§8 scenario 5 and 6).
func boardsFor(board poker.Hand, n int, seed int64) []poker.Hand {
	if board.CountCards() > 0 {
		return []poker.Hand{board}
	}
	rng := randutil.New(seed)
	return aggregate.SampleRiverBoards(rng, n)
}

// loadEvaluatorContext reads handranks.dat from path if given and present,
// otherwise builds the tables from scratch — the table-file-missing path
// of §7's error policy ("the driver may regenerate from scratch and retry
// once"), except there is nothing to retry here since Build() cannot fail.
func loadEvaluatorContext(path string, logger *log.Logger) *evaluator.Context {
	if path == "" {
		return evaluator.NewContext()
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("table file unavailable, rebuilding from scratch", "path", path, "err", err)
		return evaluator.NewContext()
	}
	defer f.Close()

	tables, err := solverio.Read(f)
	if err != nil {
		logger.Warn("table file malformed, rebuilding from scratch", "path", path, "err", err)
		return evaluator.NewContext()
	}
	return evaluator.NewContextFromTables(tables)
}
