package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretosearch/frontier"
	"github.com/katalvlaran/paretosearch/internal/config"
	"github.com/katalvlaran/paretosearch/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	workers  int
	pruning  string
	noBounds bool
	metrics  bool
	deadline time.Duration

	cfg     config.Config
	log     *slog.Logger
	reg     *prometheus.Registry
	counter *frontier.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "pareto",
		Short:         "Pareto-pruned frontier search for valve and robot puzzles",
		Long:          `pareto explores time-stepped choice problems round by round, pruning dominated states, and prints the best reachable objective.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpMetrics(cmd.ErrOrStderr())
		},
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.IntVar(&a.workers, "workers", 0, "expansion goroutines, 0 for GOMAXPROCS (overrides config)")
	pf.StringVar(&a.pruning, "pruning", "", "none, duplicates or dominance (overrides config)")
	pf.BoolVar(&a.noBounds, "no-bounds", false, "disable bound cuts")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr when done")
	pf.DurationVar(&a.deadline, "deadline", 0, "abort the search after this long, 0 for no limit (overrides config)")

	rootCmd.AddCommand(newValvesCmd(a), newRobotsCmd(a), newGraphCmd(a), newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelError).Error("pareto failed", "error", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and builds the logger
// and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("pruning") {
		cfg.Pruning = a.pruning
	}
	if a.noBounds {
		cfg.Bounding = false
	}
	if flags.Changed("deadline") {
		cfg.Deadline = a.deadline
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewWriter(cmd.ErrOrStderr(), level)
	if a.metrics {
		a.reg = prometheus.NewRegistry()
		a.counter = frontier.NewMetrics(a.reg)
	}
	a.log.Debug("configured",
		slog.String("config", a.cfgPath),
		slog.Int("workers", cfg.Workers),
		slog.String("pruning", cfg.Pruning),
		slog.Duration("deadline", cfg.Deadline),
	)

	return nil
}

// withDeadline applies the configured deadline to parent.
func (a *app) withDeadline(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Deadline > 0 {
		return context.WithTimeout(parent, a.cfg.Deadline)
	}

	return context.WithCancel(parent)
}

// searchOptions returns the frontier options for one labelled search.
func (a *app) searchOptions(label string) ([]frontier.Option, error) {
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, frontier.WithLogger(a.log.With(slog.String("cmd", label))))
	if a.counter != nil {
		opts = append(opts, frontier.WithMetrics(a.counter, label))
	}

	return opts, nil
}

// dumpMetrics writes the gathered metrics in the Prometheus text format.
func (a *app) dumpMetrics(w io.Writer) error {
	if a.reg == nil {
		return nil
	}
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
