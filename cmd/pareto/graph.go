package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretosearch/bfs"
	"github.com/katalvlaran/paretosearch/dijkstra"
	"github.com/katalvlaran/paretosearch/graph"
	"github.com/katalvlaran/paretosearch/valve"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		start             string
		collapse, closure bool
	)
	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Export a valve network as Graphviz DOT",
		Long:  `Reads a valve scan and writes it in DOT syntax, optionally collapsed or closed over valves. Valves unreachable from the start are reported on stderr.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") {
				start = a.cfg.Valves.Start
			}
			defs, err := readValves(args[0])
			if err != nil {
				return err
			}
			g, err := graph.Build(defs)
			if err != nil {
				return err
			}
			sid, err := g.ID(start)
			if err != nil {
				return fmt.Errorf("%w: %w", valve.ErrStartNotFound, err)
			}

			lost, err := bfs.Unreachable(g, sid,
				bfs.WithContext(cmd.Context()),
				bfs.WithOnVisit(func(id graph.NodeID, hops int) error {
					if g.FlowOf(id) > 0 {
						a.log.Debug("valve reached", slog.String("valve", g.Name(id)), slog.Int("hops", hops))
					}
					return nil
				}))
			if err != nil {
				return err
			}
			for _, id := range lost {
				if g.FlowOf(id) > 0 {
					a.log.Warn("valve unreachable", slog.String("valve", g.Name(id)), slog.Int("flow", g.FlowOf(id)), slog.String("start", start))
				}
			}
			if err := warnOutOfReach(a.log, g, sid, lost, a.cfg.Valves.Horizon); err != nil {
				return err
			}

			if collapse {
				if err := g.Collapse(start); err != nil {
					return err
				}
			}
			if closure {
				if g, err = dijkstra.Closure(g, start); err != nil {
					return err
				}
			}

			return g.WriteDOT(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&start, "start", "", "start location (overrides config)")
	f.BoolVar(&collapse, "collapse", false, "drop zero-flow pass-through nodes")
	f.BoolVar(&closure, "closure", false, "replace tunnels with shortest distances between valves")

	return cmd
}

// warnOutOfReach reports connected valves whose tunnel distance leaves no
// minute to release pressure within horizon.
func warnOutOfReach(log *slog.Logger, g *graph.Graph, sid graph.NodeID, lost []graph.NodeID, horizon int) error {
	if horizon < 2 {
		return nil
	}
	dist, err := dijkstra.Distances(g, sid, dijkstra.WithMaxDistance(horizon-2))
	if err != nil {
		return err
	}
	cut := make(map[graph.NodeID]bool, len(lost))
	for _, id := range lost {
		cut[id] = true
	}
	for _, id := range g.Nodes() {
		if _, ok := dist[id]; ok || cut[id] || g.FlowOf(id) == 0 {
			continue
		}
		log.Warn("valve out of reach", slog.String("valve", g.Name(id)), slog.Int("flow", g.FlowOf(id)), slog.Int("horizon", horizon))
	}

	return nil
}
