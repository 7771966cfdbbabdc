package commands

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/panyam/lossq/sweep"
)

// sweepConfig builds the sweep configuration for a command invocation:
// either the YAML file named by --config, or the defaults overridden by
// the command's flags.
func sweepConfig(cmd *cobra.Command) (sweep.Config, error) {
	if configPath != "" {
		return sweep.LoadConfig(configPath)
	}
	cfg := sweep.DefaultConfig()
	cfg.Servers, _ = cmd.Flags().GetInt("servers")
	cfg.ServiceRate, _ = cmd.Flags().GetFloat64("mu")
	cfg.LoadStart, _ = cmd.Flags().GetFloat64("loadstart")
	cfg.LoadStep, _ = cmd.Flags().GetFloat64("loadstep")
	cfg.LoadPoints, _ = cmd.Flags().GetInt("points")
	cfg.Horizon, _ = cmd.Flags().GetFloat64("horizon")
	cfg.Iterations, _ = cmd.Flags().GetInt("iterations")
	cfg.MinArrivals, _ = cmd.Flags().GetInt("minarrivals")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.Workers, _ = cmd.Flags().GetInt("workers")
	return cfg, nil
}

func addSweepFlags(cmd *cobra.Command) {
	def := sweep.DefaultConfig()
	cmd.Flags().IntP("servers", "s", def.Servers, "Number of servers (S)")
	cmd.Flags().Float64("mu", def.ServiceRate, "Service rate per busy server (μ)")
	cmd.Flags().Float64("loadstart", def.LoadStart, "First offered load point (erlangs)")
	cmd.Flags().Float64("loadstep", def.LoadStep, "Spacing between load points")
	cmd.Flags().Int("points", def.LoadPoints, "Number of offered load points")
	cmd.Flags().Float64("horizon", def.Horizon, "Simulated time per run (seconds)")
	cmd.Flags().Int("iterations", def.Iterations, "Independent runs averaged per point")
	cmd.Flags().Int("minarrivals", def.MinArrivals, "Extend each run until this many arrivals (0 disables)")
	cmd.Flags().Int64("seed", 0, "Base random seed (0 = wall clock)")
	cmd.Flags().Int("workers", def.Workers, "Concurrent point evaluations")
}

func runSweep(cmd *cobra.Command) ([]sweep.Point, sweep.Config, error) {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	runner, err := sweep.NewRunner(cfg)
	if err != nil {
		return nil, cfg, err
	}
	runner.Verbose, _ = cmd.Flags().GetBool("verbose")
	points, err := runner.Run()
	return points, cfg, err
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare Erlang-B against Monte Carlo simulation across a load sweep",
		Long: `Runs the analytical Erlang-B evaluator and the stochastic simulator
over the same offered-load grid and prints both blocking estimates side
by side with their absolute difference.`,
		Run: func(cmd *cobra.Command, args []string) {
			points, cfg, err := runSweep(cmd)
			if err != nil {
				log.Fatalf("sweep failed: %v", err)
			}

			header := color.New(color.Bold)
			header.Printf("Blocking probability, S=%d servers\n\n", cfg.Servers)
			header.Printf("%10s %12s %12s %12s %10s\n", "Load (A)", "Erlang-B", "Simulated", "Abs Error", "Arrivals")

			good := color.New(color.FgGreen)
			bad := color.New(color.FgRed)
			for _, p := range points {
				line := fmt.Sprintf("%10.2f %12.6f %12.6f %12.6f %10d",
					p.OfferedLoad, p.Analytical, p.Simulated, p.AbsError, p.Arrivals)
				if p.AbsError > 0.02 {
					bad.Println(line)
				} else {
					good.Println(line)
				}
			}
		},
	}
	addSweepFlags(cmd)
	cmd.Flags().Bool("verbose", false, "Log per-point progress")
	return cmd
}

func init() {
	AddCommand(compareCmd())
}
