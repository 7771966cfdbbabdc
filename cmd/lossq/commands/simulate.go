package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/panyam/lossq/core"
	"github.com/panyam/lossq/queueing"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a single Monte Carlo simulation of an M/M/S/S system",
		Run: func(cmd *cobra.Command, args []string) {
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			mu, _ := cmd.Flags().GetFloat64("mu")
			servers, _ := cmd.Flags().GetInt("servers")
			horizon, _ := cmd.Flags().GetFloat64("horizon")
			minArrivals, _ := cmd.Flags().GetInt("minarrivals")
			seed, _ := cmd.Flags().GetInt64("seed")

			sim := &queueing.Simulator{
				ArrivalRate: lambda,
				ServiceRate: mu,
				Servers:     servers,
				Horizon:     horizon,
				MinArrivals: minArrivals,
			}
			if seed != 0 {
				sim.Rand = core.NewRand(seed)
			}
			res, err := sim.Run()
			if err != nil {
				log.Fatalf("simulation failed: %v", err)
			}

			analytical, err := queueing.ErlangB(lambda/mu, servers)
			if err != nil {
				log.Fatalf("erlang-b: %v", err)
			}

			fmt.Printf("arrivals:   %d (served %d, blocked %d)\n", res.Arrivals, res.Served, res.Blocked)
			fmt.Printf("horizon:    %g simulated seconds (%d extensions)\n", res.Horizon, res.Extensions)
			fmt.Printf("simulated:  %.6f\n", res.BlockingProbability())
			fmt.Printf("analytical: %.6f (Erlang-B)\n", analytical)
		},
	}
	cmd.Flags().Float64("lambda", 2.0, "Arrival rate (λ)")
	cmd.Flags().Float64("mu", 1.0, "Service rate per busy server (μ)")
	cmd.Flags().IntP("servers", "s", 2, "Number of servers (S)")
	cmd.Flags().Float64("horizon", 20000, "Simulated time (seconds)")
	cmd.Flags().Int("minarrivals", 0, "Extend the run until this many arrivals (0 disables)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = wall clock)")
	return cmd
}

func init() {
	AddCommand(simulateCmd())
}
