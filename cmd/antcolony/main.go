// SPDX-License-Identifier: MIT

// Command antcolony solves a Traveling Salesman instance with Ant Colony
// Optimization.
//
// The distance matrix is loaded from a CSV file when it exists, otherwise it
// is generated and saved there. Progress is printed per iteration, followed by
// the best route and its length. Ctrl-C stops after the current iteration and
// prints the best route found so far.
//
// Usage:
//
//	antcolony [-config antcolony.yaml] [-cities 300] [-ants 100] [-iterations 100]
//	          [-alpha 1] [-beta 5] [-rho 0.2] [-tau0 1] [-seed 0] [-workers 1]
//	          [-matrix distances.csv] [-db runs.db] [-plot convergence.png]
//	          [-log-level info]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/store"
)

// exitInterrupted is the conventional status for a SIGINT-terminated process.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintln(os.Stderr, "antcolony:", err)
		os.Exit(1)
	}
}

// options is the parsed command line.
type options struct {
	configPath string
	logLevel   string
	file       config.File
}

// parseFlags loads the optional config file and applies explicitly set flags
// on top of it.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("antcolony", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	var (
		opts       options
		cities     = fs.Int("cities", def.Cities, "number of cities for a generated matrix")
		ants       = fs.Int("ants", def.Colony.Ants, "ants per iteration")
		iterations = fs.Int("iterations", def.Colony.Iterations, "iteration budget")
		alpha      = fs.Float64("alpha", def.Colony.Alpha, "pheromone exponent")
		beta       = fs.Float64("beta", def.Colony.Beta, "distance exponent")
		rho        = fs.Float64("rho", def.Colony.Rho, "evaporation rate in [0,1]")
		tau0       = fs.Float64("tau0", def.Colony.Tau0, "initial pheromone level")
		seed       = fs.Int64("seed", def.Colony.Seed, "random seed (0 = fixed default)")
		workers    = fs.Int("workers", def.Colony.Workers, "goroutines building tours")
		matrixPath = fs.String("matrix", def.Distance.File, "distance matrix CSV `file`")
		dbPath     = fs.String("db", def.Output.Database, "sqlite run history `file`")
		plotPath   = fs.String("plot", def.Output.Plot, "convergence chart `file` (.png, .svg)")
		quiet      = fs.Bool("quiet", def.Output.Quiet, "suppress per-iteration lines")
		verbose    = fs.Bool("verbose", def.Output.Verbose, "print iteration statistics")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration `file`")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.file = def
	if opts.configPath != "" {
		f, err := config.Load(opts.configPath)
		if err != nil {
			return opts, err
		}
		opts.file = f
	}

	f := &opts.file
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "cities":
			f.Cities = *cities
		case "ants":
			f.Colony.Ants = *ants
		case "iterations":
			f.Colony.Iterations = *iterations
		case "alpha":
			f.Colony.Alpha = *alpha
		case "beta":
			f.Colony.Beta = *beta
		case "rho":
			f.Colony.Rho = *rho
		case "tau0":
			f.Colony.Tau0 = *tau0
		case "seed":
			f.Colony.Seed = *seed
		case "workers":
			f.Colony.Workers = *workers
		case "matrix":
			f.Distance.File = *matrixPath
		case "db":
			f.Output.Database = *dbPath
		case "plot":
			f.Output.Plot = *plotPath
		case "quiet":
			f.Output.Quiet = *quiet
		case "verbose":
			f.Output.Verbose = *verbose
		}
	})

	return opts, f.Validate()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// run is main without os.Exit, so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}
	cfg := opts.file

	// Matrix generation uses its own stream so the colony seed alone decides the run.
	matrixSeed := cfg.Colony.Seed
	if matrixSeed == 0 {
		matrixSeed = 1
	}
	field, origin, err := distance.LoadOrGenerate(cfg.Distance.File, cfg.Generate(), rand.New(rand.NewSource(matrixSeed)))
	if err != nil {
		return fmt.Errorf("distance matrix: %w", err)
	}
	logger.Info("distance matrix ready", "path", cfg.Distance.File, "origin", origin, "cities", field.N())

	var db *store.Store
	if cfg.Output.Database != "" {
		if db, err = store.Open(cfg.Output.Database); err != nil {
			return err
		}
		defer db.Close()
	}
	matrixName := filepath.Base(cfg.Distance.File)
	if db != nil && origin == distance.Generated {
		if err = db.SaveMatrix(ctx, matrixName, field); err != nil {
			return err
		}
		logger.Info("matrix stored", "name", matrixName, "db", cfg.Output.Database)
	}

	console := report.NewConsole(stdout, cfg.Output.Verbose)
	if cfg.Output.Preview > 0 {
		console.Preview(field, cfg.Output.Preview)
	}

	observers := observerChain{logObserver{logger}}
	if !cfg.Output.Quiet {
		observers = append(observers, console)
	}
	sim, err := colony.New(field, cfg.Colony, colony.WithObserver(observers))
	if err != nil {
		return err
	}

	logger.Info("run started",
		"cities", field.N(), "ants", cfg.Colony.Ants, "iterations", cfg.Colony.Iterations,
		"alpha", cfg.Colony.Alpha, "beta", cfg.Colony.Beta, "rho", cfg.Colony.Rho,
		"seed", cfg.Colony.Seed, "workers", cfg.Colony.Workers)
	rep, runErr := sim.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("run aborted", "err", runErr, "iteration", sim.Iteration())
		return runErr
	}
	if runErr != nil {
		logger.Warn("run interrupted", "completed_iterations", len(rep.Iterations))
	}
	logger.Info("run finished", "best_length", rep.Best.Length, "best_iteration", rep.Best.Iteration,
		"degenerate", rep.Degenerate, "elapsed", rep.Elapsed)

	if len(rep.Iterations) > 0 {
		console.Summary(rep)
	}
	if err = console.Err(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Output.Plot != "" && len(rep.Iterations) > 0 {
		if err = report.SaveConvergence(rep, cfg.Output.Plot); err != nil {
			return err
		}
		logger.Info("convergence chart written", "path", cfg.Output.Plot)
	}
	if db != nil && len(rep.Iterations) > 0 {
		// Persist even after Ctrl-C; the parent context is already cancelled.
		id, err := db.SaveRun(context.WithoutCancel(ctx), cfg.Colony, rep, matrixName)
		if err != nil {
			return err
		}
		logger.Info("run stored", "id", id, "db", cfg.Output.Database)
	}

	return runErr
}

// observerChain fans one iteration record out to several observers in order.
type observerChain []colony.Observer

func (c observerChain) OnIteration(rec colony.IterationRecord) {
	for _, o := range c {
		o.OnIteration(rec)
	}
}

// logObserver reports degenerate selections and improvements at debug level.
type logObserver struct{ logger *slog.Logger }

func (l logObserver) OnIteration(rec colony.IterationRecord) {
	if rec.Degenerate > 0 {
		l.logger.Debug("degenerate selections", "iteration", rec.Iteration, "count", rec.Degenerate)
	}
	if rec.Improved {
		l.logger.Debug("best improved", "iteration", rec.Iteration, "length", rec.BestLength)
	}
}
