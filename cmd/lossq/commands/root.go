package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Path to a YAML sweep config, shared by the sweep-driven commands.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "lossq",
	Short: "lossq analyzes blocking in finite-server loss systems",
	Long: `lossq estimates the call-blocking probability of an M/M/S/S loss
system two independent ways: the closed-form Erlang-B formula and a
discrete-event Monte Carlo simulation, and compares the two across a
sweep of offered loads.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML sweep config (flags override nothing when set)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
