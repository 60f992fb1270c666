package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccination-hubs/pkg/core/services"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show allocation ratios overall and per age interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := services.Statistics(app.Campaign)

			fmt.Printf("\nEpoch %s\n", report.EpochID)
			fmt.Printf("Allocated %d of %d registered (%s)\n\n",
				report.Allocated, report.Registered, services.FormatPercent(report.OverallRatio))

			fmt.Printf("%-12s%-12s%-16s%s\n", "Interval", "Allocated", "Of population", "Of allocated")
			fmt.Println(strings.Repeat("-", 52))
			for _, interval := range report.Intervals {
				fmt.Printf("%-12s%-12d%-16s%s\n",
					interval.Label,
					interval.Allocated,
					services.FormatPercent(interval.RatioOfPopulation),
					services.FormatPercent(interval.ShareOfAllocated))
			}
			fmt.Println()
			return nil
		},
	}
}
