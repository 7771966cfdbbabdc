package commands

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/panyam/lossq/queueing"
)

func erlangCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erlang <offered-load> <servers>",
		Short: "Evaluate the Erlang-B (and optionally Erlang-C) formula for one point",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			load, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				log.Fatalf("invalid offered load %q: %v", args[0], err)
			}
			servers, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalf("invalid server count %q: %v", args[1], err)
			}

			b, err := queueing.ErlangB(load, servers)
			if err != nil {
				log.Fatalf("erlang-b: %v", err)
			}
			fmt.Printf("B(%g, %d) = %.6f\n", load, servers, b)

			if withC, _ := cmd.Flags().GetBool("erlang-c"); withC {
				c, err := queueing.ErlangC(load, servers)
				if err != nil {
					log.Fatalf("erlang-c: %v", err)
				}
				fmt.Printf("C(%g, %d) = %.6f\n", load, servers, c)
			}
		},
	}
	cmd.Flags().Bool("erlang-c", false, "Also print the Erlang-C waiting probability")
	return cmd
}

func init() {
	AddCommand(erlangCmd())
}
