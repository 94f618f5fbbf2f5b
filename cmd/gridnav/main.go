// SPDX-License-Identifier: MIT

// Command gridnav runs a navigation simulation in the terminal.
//
// The layout comes from -map (ASCII, see gridgraph.Parse) or is sampled with
// -size/-targets/-obstacles/-seed. -mode selects the controller: reactive or
// static A* navigation, or the sweep raster walk. -feed replays a file of
// "row,col" lines as live positions, one line per tick interval.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/navigator"
	"github.com/katalvlaran/gridnav/obstacle"
	"github.com/katalvlaran/gridnav/scenario"
)

const modeSweep = "sweep"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	size          int
	targets       int
	obstacles     int
	seed          int64
	solvable      int
	wrap          string
	mode          string
	interval      time.Duration
	maxTicks      int
	maxExpansions int
	mapFile       string
	feedFile      string
	logLevel      string
	quiet         bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.size, "size", 10, "grid side length N")
	fs.IntVar(&o.targets, "targets", 5, "number of targets to sample")
	fs.IntVar(&o.obstacles, "obstacles", 10, "number of obstacles to sample")
	fs.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "seed for layout sampling and obstacle moves")
	fs.IntVar(&o.solvable, "solvable", 100, "resample up to this many layouts until the goal is reachable (0 = off)")
	fs.StringVar(&o.wrap, "wrap", obstacle.Clamp.String(), "obstacle edge policy: clamp, wrap or stay")
	fs.StringVar(&o.mode, "mode", navigator.ModeReactive.String(), "controller: reactive, static or sweep")
	fs.DurationVar(&o.interval, "interval", 500*time.Millisecond, "tick interval (0 = as fast as possible)")
	fs.IntVar(&o.maxTicks, "max-ticks", 1000, "stop after this many ticks (0 = no limit)")
	fs.IntVar(&o.maxExpansions, "max-expansions", 0, "cap on A* expansions per plan (0 = unlimited)")
	fs.StringVar(&o.mapFile, "map", "", "ASCII layout file")
	fs.StringVar(&o.feedFile, "feed", "", `file of "row,col" live positions`)
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&o.quiet, "quiet", false, "print only the final summary")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.maxTicks < 0 || o.maxExpansions < 0 || o.solvable < 0 {
		return o, errors.New("-max-ticks, -max-expansions and -solvable must not be negative")
	}

	return o, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// parseCell reads "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("invalid cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return gridgraph.Cell{Row: row, Col: col}, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level, err := parseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctrl, err := buildController(o, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	feedCtx, stopFeed := context.WithCancel(gctx)
	defer stopFeed()

	runOpts := []navigator.RunOption{
		navigator.WithRunLogger(logger),
		navigator.WithMaxTicks(o.maxTicks),
		navigator.WithOnTick(func(s navigator.Snapshot, changed bool) {
			if !o.quiet {
				render(stdout, s)
			}
		}),
	}
	if o.feedFile != "" {
		feed := new(navigator.PositionFeed)
		runOpts = append(runOpts, navigator.WithFeed(feed))
		g.Go(func() error { return replayFeed(feedCtx, o.feedFile, o.interval, feed) })
	}

	var final navigator.Snapshot
	g.Go(func() error {
		defer stopFeed()
		s, err := navigator.Run(gctx, ctrl, o.interval, runOpts...)
		final = s
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "run %s: %v after %d ticks at %v, plans=%d, visited=%d\n",
		final.RunID, final.Status, final.Tick, final.Agent, final.Plans, len(final.Visited))

	return nil
}

// buildController loads or samples the layout and wraps it in the
// controller selected by -mode.
func buildController(o options, logger *slog.Logger) (navigator.Controller, error) {
	policy := gridgraph.TargetsBlock
	if o.mode == modeSweep {
		policy = gridgraph.TargetsVisitable
	}
	m, err := loadModel(o, policy)
	if err != nil {
		return nil, err
	}
	if o.mode == modeSweep {
		return navigator.NewSweep(m, navigator.WithLogger(logger))
	}

	mode, err := navigator.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}
	wrap, err := obstacle.ParseWrapPolicy(o.wrap)
	if err != nil {
		return nil, err
	}

	return navigator.NewFromModel(m,
		navigator.WithMode(mode),
		navigator.WithWrap(wrap),
		navigator.WithSeed(o.seed),
		navigator.WithMaxExpansions(o.maxExpansions),
		navigator.WithLogger(logger))
}

func loadModel(o options, policy gridgraph.TargetPolicy) (*gridgraph.Model, error) {
	if o.mapFile != "" {
		data, err := os.ReadFile(o.mapFile)
		if err != nil {
			return nil, err
		}
		return gridgraph.Parse(string(data), policy)
	}
	opts := []scenario.Option{scenario.WithSeed(o.seed), scenario.WithTargetPolicy(policy)}
	if o.solvable > 0 && policy == gridgraph.TargetsBlock {
		opts = append(opts, scenario.WithSolvable(o.solvable))
	}
	return scenario.Random(o.size, o.targets, o.obstacles, opts...)
}

// replayFeed publishes one position per line of path, pausing interval
// between lines. Blank lines and lines starting with # are skipped.
func replayFeed(ctx context.Context, path string, interval time.Duration, feed *navigator.PositionFeed) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parseCell(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		feed.Publish(c)
		if interval > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}
		}
	}

	return sc.Err()
}

// render draws the grid with the remaining path as '*' and the agent as '@'.
func render(w io.Writer, s navigator.Snapshot) {
	rows := strings.Split(strings.TrimRight(s.Grid.String(), "\n"), "\n")
	grid := make([][]byte, len(rows))
	for i, r := range rows {
		grid[i] = []byte(r)
	}
	for _, c := range s.Remaining() {
		if grid[c.Row][c.Col] == gridgraph.SymbolFree {
			grid[c.Row][c.Col] = '*'
		}
	}
	grid[s.Agent.Row][s.Agent.Col] = '@'

	_, _ = fmt.Fprintf(w, "tick %d %v\n", s.Tick, s.Status)
	for _, r := range grid {
		_, _ = fmt.Fprintf(w, "%s\n", r)
	}
}
