package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretosearch/graph"
	"github.com/katalvlaran/paretosearch/valve"
)

func newValvesCmd(a *app) *cobra.Command {
	var (
		horizon, duoHorizon int
		start               string
		noCollapse, closure bool
	)
	cmd := &cobra.Command{
		Use:   "valves <file>",
		Short: "Maximize pressure released by one agent, then by two",
		Long:  `Reads a valve scan ("Valve AA has flow rate=0; tunnels lead to valves DD, II, BB") and prints the part 1 and part 2 answers on two lines.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Valves
			flags := cmd.Flags()
			if flags.Changed("horizon") {
				cfg.Horizon = horizon
			}
			if flags.Changed("duo-horizon") {
				cfg.DuoHorizon = duoHorizon
			}
			if flags.Changed("start") {
				cfg.Start = start
			}
			if noCollapse {
				cfg.Collapse = false
			}
			if closure {
				cfg.Closure = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			defs, err := readValves(args[0])
			if err != nil {
				return err
			}
			m, err := valve.Prepare(defs, cfg)
			if err != nil {
				return err
			}
			a.log.Info("valve network ready",
				slog.String("file", args[0]),
				slog.Int("nodes", m.Graph().Len()),
				slog.Int("valves", m.Valves()),
			)

			ctx, cancel := a.withDeadline(cmd.Context())
			defer cancel()

			began := time.Now()
			opts, err := a.searchOptions("valves-solo")
			if err != nil {
				return err
			}
			one, err := valve.MaxReleased(ctx, m, cfg.Horizon, opts...)
			if err != nil {
				return err
			}
			if opts, err = a.searchOptions("valves-duo"); err != nil {
				return err
			}
			two, err := valve.MaxReleasedDuo(ctx, m, cfg.DuoHorizon, opts...)
			if err != nil {
				return err
			}
			a.log.Info("valves solved", slog.Int("solo", one), slog.Int("duo", two), slog.Duration("took", time.Since(began)))

			fmt.Fprintln(cmd.OutOrStdout(), one)
			fmt.Fprintln(cmd.OutOrStdout(), two)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&horizon, "horizon", 0, "single-agent horizon (overrides config)")
	f.IntVar(&duoHorizon, "duo-horizon", 0, "two-agent horizon (overrides config)")
	f.StringVar(&start, "start", "", "start location (overrides config)")
	f.BoolVar(&noCollapse, "no-collapse", false, "keep zero-flow pass-through nodes")
	f.BoolVar(&closure, "closure", false, "search on the metric closure over valves")

	return cmd
}

// readValves parses a valve scan file.
func readValves(path string) ([]graph.NodeDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return valve.Parse(f)
}
