// Command simulator runs the tick engine headless for balance work:
// no renderer, no real-time delay, a CSV row per run.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/udisondev/emberfall/internal/simulator"
)

func main() {
	opts := simulator.Options{}

	root := &cobra.Command{
		Use:          "simulator",
		Short:        "Headless balance simulator for Emberfall",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator(opts)
		},
	}

	flags := root.Flags()
	flags.IntVar(&opts.Ticks, "ticks", 36000, "ticks to simulate per run")
	flags.Uint64Var(&opts.Seed, "seed", 42, "base RNG seed; run i uses seed+i")
	flags.IntVar(&opts.Prestige, "prestige", 0, "starting prestige rank")
	flags.IntVar(&opts.Runs, "runs", 1, "number of runs")
	flags.BoolVar(&opts.Verbose, "verbose", false, "log every event")
	flags.StringVar(&opts.CSVPath, "csv", "", "write the report to a CSV file")
	flags.BoolVar(&opts.Quiet, "quiet", false, "suppress the summary table")
	flags.BoolVar(&opts.Stormbreaker, "stormbreaker", false, "start with the Stormbreaker equipped")
	flags.StringVar(&opts.DBPath, "db", "", "append runs to a sqlite history database")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "simulator:", err)
		os.Exit(1)
	}
}

func runSimulator(opts simulator.Options) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	if opts.Quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	start := time.Now()
	results, err := simulator.Run(opts)
	if err != nil {
		return err
	}
	slog.Info("simulation complete",
		"runs", opts.Runs, "ticks", opts.Ticks, "elapsed", time.Since(start))

	if opts.CSVPath != "" {
		if err := simulator.WriteCSVFile(opts.CSVPath, results); err != nil {
			return err
		}
	} else if opts.Quiet {
		// Quiet without a CSV target still emits the machine-readable
		// report on stdout.
		if err := simulator.WriteCSV(os.Stdout, results); err != nil {
			return err
		}
	}

	if opts.DBPath != "" {
		if err := simulator.StoreRuns(opts.DBPath, opts, results, time.Now()); err != nil {
			return err
		}
	}

	if !opts.Quiet {
		simulator.PrintTable(os.Stdout, results)
	}
	return nil
}
