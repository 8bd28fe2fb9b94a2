// Command pipeloop reports the farthest point and enclosed area of the pipe
// loop in a grid file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/input"
	"github.com/katalvlaran/pipeloop/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	// flags
	configPath string
	verbose    bool
	parity     string
	workers    int
	noColor    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "pipeloop",
		Short: "Analyse the closed pipe loop in a character grid",
		Long: `pipeloop reads a grid of pipe symbols (| - L J 7 F), ground (.) and a
single start marker (S), finds the loop through S and reports:

  - the number of steps from S to the farthest point of the loop
  - the number of cells enclosed by the loop

Grid files are read from a path argument, or from standard input with "-".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.parity, "parity", "", "crossing rule: up or down (overrides config)")
	pf.IntVar(&a.workers, "workers", -1, "concurrent row scans, 0 = one per CPU (overrides config)")

	renderCmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Draw the grid with loop, inside and outside cells marked",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runRender,
	}
	renderCmd.Flags().BoolVar(&a.noColor, "no-color", false, "disable colours")

	root.AddCommand(
		&cobra.Command{
			Use:   "solve [file|-]",
			Short: "Print the farthest-point distance and the enclosed cell count",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runSolve,
		},
		renderCmd,
		&cobra.Command{
			Use:   "stats [file|-]",
			Short: "Print grid extents, start orientation, loop length and junk pipes",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runStats,
		},
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.parity != "" {
		cfg.Parity = a.parity
	}
	if a.workers >= 0 {
		cfg.Workers = a.workers
	}
	if a.noColor {
		cfg.Render.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// load reads the grid named by args and builds a Maze with the configured options.
func (a *app) load(args []string) (*pipeloop.Maze, error) {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	rows, err := input.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rule, err := enclosure.ParseRule(a.cfg.Parity)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("grid loaded", zap.String("path", path), zap.Int("rows", len(rows)))

	m, err := pipeloop.New(rows,
		pipeloop.WithLogger(a.logger),
		pipeloop.WithRule(rule),
		pipeloop.WithWorkers(a.cfg.Workers),
	)
	if err != nil {
		a.logger.Error("grid rejected", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return m, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
