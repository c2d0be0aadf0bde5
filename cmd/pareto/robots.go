package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretosearch/robots"
)

func newRobotsCmd(a *app) *cobra.Command {
	var horizon, topHorizon, top int
	cmd := &cobra.Command{
		Use:   "robots <file>",
		Short: "Maximize geodes per blueprint",
		Long:  `Reads robot-factory blueprints and prints the quality sum (Σ id × geodes) and the product of geodes over the first blueprints on two lines.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Robots
			flags := cmd.Flags()
			if flags.Changed("horizon") {
				cfg.Horizon = horizon
			}
			if flags.Changed("top-horizon") {
				cfg.TopHorizon = topHorizon
			}
			if flags.Changed("top") {
				cfg.TopCount = top
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			bps, err := robots.Parse(f)
			if err != nil {
				return err
			}
			a.log.Info("blueprints loaded", slog.String("file", args[0]), slog.Int("count", len(bps)))

			ctx, cancel := a.withDeadline(cmd.Context())
			defer cancel()

			began := time.Now()
			opts, err := a.searchOptions("robots")
			if err != nil {
				return err
			}
			sum, err := robots.QualitySum(ctx, bps, cfg.Horizon, opts...)
			if err != nil {
				return err
			}
			prod, err := robots.TopProduct(ctx, bps, cfg.TopCount, cfg.TopHorizon, opts...)
			if err != nil {
				return err
			}
			a.log.Info("robots solved", slog.Int("quality", sum), slog.Int("product", prod), slog.Duration("took", time.Since(began)))

			fmt.Fprintln(cmd.OutOrStdout(), sum)
			fmt.Fprintln(cmd.OutOrStdout(), prod)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&horizon, "horizon", 0, "quality-sum horizon (overrides config)")
	f.IntVar(&topHorizon, "top-horizon", 0, "top-product horizon (overrides config)")
	f.IntVar(&top, "top", 0, "blueprints in the product (overrides config)")

	return cmd
}
