package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/vaccination-hubs/pkg/core/services"
)

// AllocateCmd creates the allocate command
func AllocateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate <hub> <day>",
		Short: "Allocate people to a hub's slots on one day (0 = Monday)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hubName := args[0]
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}

			allocated, err := services.AllocateDay(app.Campaign, app.Logger, hubName, day)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Allocated %d people to %s on %s\n\n", len(allocated), hubName, dayName(day))
			for _, line := range formatIDs(allocated, 8) {
				fmt.Printf("  %s\n", line)
			}
			fmt.Printf("\nEpoch: %s (%d allocated so far)\n\n", app.Campaign.EpochID, app.Campaign.Allocator.Ledger().Size())
			return nil
		},
	}
}

// WeekAllocateCmd creates the weekAllocate command
func WeekAllocateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekAllocate",
		Short: "Allocate every hub for every day of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("ids")

			plan, err := services.AllocateWeek(app.Campaign, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Week allocated: %d people\n\n", plan.Allocated)
			for day, dayAllocation := range plan.Days {
				fmt.Printf("%s (%d):\n", dayName(day), dayTotals(dayAllocation))
				for _, hubName := range app.Campaign.Hubs.Names() {
					ids := dayAllocation[hubName]
					fmt.Printf("  %-20s %d\n", hubName, len(ids))
					if verbose {
						for _, line := range formatIDs(ids, 8) {
							fmt.Printf("      %s\n", line)
						}
					}
				}
			}
			fmt.Printf("\nEpoch: %s\n\n", plan.EpochID)
			return nil
		},
	}

	cmd.Flags().Bool("ids", false, "Print the allocated SSNs")

	return cmd
}

// ClearAllocationCmd creates the clearAllocation command
func ClearAllocationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearAllocation",
		Short: "Forget every allocation and start a new epoch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services.ClearAllocation(app.Campaign, app.Logger)
			fmt.Printf("\n✓ Allocation cleared, new epoch %s\n\n", app.Campaign.EpochID)
			return nil
		},
	}
}
