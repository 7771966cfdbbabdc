package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/panyam/lossq/viz"
)

func plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the analytical vs simulated blocking curves as an SVG chart",
		Run: func(cmd *cobra.Command, args []string) {
			points, _, err := runSweep(cmd)
			if err != nil {
				log.Fatalf("sweep failed: %v", err)
			}

			analytical := make([]viz.DataPoint, len(points))
			simulated := make([]viz.DataPoint, len(points))
			for i, p := range points {
				analytical[i] = viz.DataPoint{X: p.OfferedLoad, Y: p.Analytical}
				simulated[i] = viz.DataPoint{X: p.OfferedLoad, Y: p.Simulated}
			}
			series := []viz.DataSeries{
				{Name: "Erlang B Formula", Points: analytical},
				{Name: "Simulation", Points: simulated},
			}

			title, _ := cmd.Flags().GetString("title")
			outputFile, _ := cmd.Flags().GetString("output")

			plotter := viz.NewSVGPlotter(viz.DefaultPlotConfig())
			svg, err := plotter.Generate(series, title, "Offered Load (A)", "Blocking Probability")
			if err != nil {
				log.Fatalf("rendering chart: %v", err)
			}
			if err := os.WriteFile(outputFile, []byte(svg), 0o644); err != nil {
				log.Fatalf("writing %s: %v", outputFile, err)
			}
			log.Printf("wrote %s (%d points per series)", outputFile, len(points))
		},
	}
	addSweepFlags(cmd)
	cmd.Flags().Bool("verbose", false, "Log per-point progress")
	cmd.Flags().StringP("output", "o", "blocking.svg", "Output file path for the chart")
	cmd.Flags().String("title", "M/M/S/S Queue Blocking Probability", "Title for the chart")
	return cmd
}

func init() {
	AddCommand(plotCmd())
}
