// SPDX-License-Identifier: MIT

// Package cli implements the evolve command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evolve/bench"
	"github.com/katalvlaran/evolve/problems"
)

// NewRootCmd builds the evolve command. Results go to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
		logger     *logrus.Logger
	)

	root := &cobra.Command{
		Use:   "evolve",
		Short: "Evolutionary search on constrained benchmark problems",
		Long: `evolve runs a genetic algorithm or differential evolution many times on
jump-separated xoshiro streams and reports statistics of the results.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			var err error
			logger, err = newLogger(logLevel, errOut)

			return err
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug | info | warn | error")

	root.AddCommand(
		newRunCmd(&configPath, func() *logrus.Logger { return logger }),
		newProblemsCmd(),
	)

	return root
}

func newRunCmd(configPath *string, logger func() *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Repeat a search on a problem and summarize the runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags(), *configPath)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cmd.OutOrStdout(), logger(), cfg)
		},
	}
	addRunFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, out io.Writer, logger *logrus.Logger, cfg Config) error {
	format := strings.ToLower(cfg.Format)
	switch format {
	case "text", "yaml", "csv":
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, cfg.Format)
	}

	p, err := problems.Lookup(cfg.Problem, cfg.Dim)
	if err != nil {
		return err
	}
	if cfg.Weight >= 0 {
		p.PenaltyWeight = cfg.Weight
	}
	algo, err := cfg.algorithm()
	if err != nil {
		return err
	}
	seed, err := parseSeed(cfg.Seed)
	if err != nil {
		return err
	}

	runner := bench.Runner{
		Runs:    cfg.Runs,
		Seed:    seed,
		Variant: bench.Variant(strings.ToLower(cfg.Variant)),
		Stream:  bench.Stream(strings.ToLower(cfg.Stream)),
		Workers: cfg.Workers,
		Logger:  logger,
	}
	logger.WithFields(logrus.Fields{
		"algorithm":  algo.Name,
		"problem":    p.Name,
		"dim":        p.Dim(),
		"runs":       cfg.Runs,
		"iterations": cfg.Iterations,
		"population": cfg.Population,
	}).Info("starting benchmark")

	rec, err := runner.Run(ctx, algo, p)
	if err != nil {
		return err
	}

	return writeRecord(out, format, rec)
}

func writeRecord(w io.Writer, format string, rec bench.Record) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}

		return enc.Close()
	case "csv":
		return bench.WriteCSV(w, []bench.Record{rec})
	default:
		_, err := fmt.Fprintf(w,
			"%s on %s: %d runs, %d feasible\n"+
				"min     %g\nmean    %g\nmedian  %g\nmax     %g\nstd dev %g\n"+
				"best    run %d at %v\n",
			rec.Algorithm, rec.Problem, rec.Runs, rec.FeasibleRuns(),
			rec.Stats.Min, rec.Stats.Mean, rec.Stats.Median, rec.Stats.Max, rec.Stats.StdDev,
			rec.BestRun, rec.Best,
		)

		return err
	}
}

func newProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the built-in problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range problems.Names() {
				p, err := problems.Lookup(name, 0)
				if err != nil {
					return err
				}
				dim := fmt.Sprint(p.Dim())
				if problems.Scalable(name) {
					dim = "any"
				}
				if _, err := fmt.Fprintf(w, "%-28s dim=%-4s constraints=%d weight=%g\n",
					name, dim, len(p.Inequalities), p.PenaltyWeight); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
