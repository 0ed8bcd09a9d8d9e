// Command dfvs computes a minimum directed feedback vertex set.
//
// Usage:
//
//	dfvs [flags] < instance.gr > solution.txt
//	dfvs -in instance.gr.zst -bound 12 -verify
//	dfvs -gen-n 30 -gen-p 0.1 -seed 7 -stats
//
// Instances use the PACE 2022 format and may be gzip or zstd compressed.
// The solution is written to stdout, one 1-based vertex id per line; logs go
// to stderr. SIGINT and SIGTERM abort the search.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xosmig/breaking-the-cycle/algorithm"
	"github.com/xosmig/breaking-the-cycle/builder"
	"github.com/xosmig/breaking-the-cycle/core"
	"github.com/xosmig/breaking-the-cycle/exact"
	"github.com/xosmig/breaking-the-cycle/pace"
)

// maxExactVertices is the largest instance the exact engine accepts.
const maxExactVertices = 64

// errNoSolution is returned when no solution fits the requested bound.
var errNoSolution = errors.New("no solution within bound")

type config struct {
	in       string
	bound    int
	logLevel string
	logJSON  bool
	stats    bool
	verify   bool
	genN     int
	genP     float64
	genLoops bool
	seed     int64
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("dfvs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "instance path, - for stdin")
	fs.IntVar(&cfg.bound, "bound", -1, "accept solutions of at most this many vertices (-1: any)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log JSON records instead of text")
	fs.BoolVar(&cfg.stats, "stats", false, "log search statistics")
	fs.BoolVar(&cfg.verify, "verify", false, "check the solution before printing it")
	fs.IntVar(&cfg.genN, "gen-n", 0, "solve a random G(n,p) graph with this many vertices instead of reading an instance")
	fs.Float64Var(&cfg.genP, "gen-p", 0.1, "edge probability of the random graph")
	fs.BoolVar(&cfg.genLoops, "gen-loops", false, "allow self-loops in the random graph")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed of the random graph")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	return cfg, nil
}

func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func loadGraph(cfg config, stdin io.Reader) (*core.Graph, error) {
	if cfg.genN > 0 {
		bopts := []builder.BuilderOption{builder.WithSeed(cfg.seed)}
		if cfg.genLoops {
			bopts = append(bopts, builder.WithLoops())
		}
		return builder.BuildGraph(nil, bopts, builder.RandomGNP(cfg.genN, cfg.genP))
	}
	if cfg.in == "-" {
		return pace.Decode(stdin)
	}

	return pace.Open(cfg.in)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.logLevel, cfg.logJSON)
	if err != nil {
		return err
	}

	g, err := loadGraph(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Info("instance loaded", "vertices", g.NumVertices(), "edges", g.NumEdges())
	if n := g.NumVertices(); n > maxExactVertices {
		return fmt.Errorf("%d vertices: %w", n, exact.ErrTooManyVertices)
	}

	opts := []exact.Option{exact.WithLogger(logger)}
	if cfg.bound >= 0 {
		opts = append(opts, exact.WithUpperBound(cfg.bound))
	}
	bb := exact.NewBranchAndBound(g, opts...)
	start := time.Now()
	sol, err := algorithm.Run(ctx, bb)
	if err != nil {
		return err
	}
	logger.Info("search finished", "solved", bb.Solved(), "size", len(sol), "elapsed", time.Since(start))
	if cfg.stats {
		st := bb.Stats()
		logger.Info("search statistics", "stats", st.String())
	}
	if !bb.Solved() {
		return errNoSolution
	}

	if cfg.verify {
		if err = exact.Verify(g, sol); err != nil {
			return err
		}
		logger.Info("solution verified")
	}

	return pace.WriteSolution(stdout, sol)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "dfvs: %s\n", err)
		os.Exit(1)
	}
}
