package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/pkg/core/services"
)

// PeopleCmd creates the people command
func PeopleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "people [ssn]",
		Short: "Show the registered population, or one person by SSN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people := app.Campaign.People

			if len(args) == 0 {
				fmt.Printf("\n%d people registered (reference year %d)\n\n", people.Count(), people.CurrentYear())
				return nil
			}

			ssn := args[0]
			info := people.Info(ssn)
			if info == "" {
				return fmt.Errorf("no person registered with SSN %s", ssn)
			}
			age, _ := people.Age(ssn)

			fmt.Printf("\n%s (age %d)\n\n", info, age)
			return nil
		},
	}
}

// LoadCmd creates the load command
func LoadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Register people from a SSN,LAST,FIRST,YEAR file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.LoadPeople(app.Campaign, app.Logger, args[0])
			if err != nil {
				return err
			}

			printLoadResult(result)
			return nil
		},
	}
}

func printLoadResult(result *services.LoadResult) {
	fmt.Printf("\n✓ Loaded %d people\n", result.Loaded)

	if len(result.Rejected) > 0 {
		fmt.Printf("⚠️  Skipped %d lines:\n", len(result.Rejected))
		for _, rejected := range result.Rejected {
			fmt.Printf("  ✗ line %d: %s\n", rejected.Line, rejected.Raw)
		}
	}
	fmt.Println()
}

// IntervalsCmd creates the intervals command
func IntervalsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "intervals",
		Short: "List the age intervals, youngest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nAge intervals:")
			for _, label := range app.Campaign.Partition.Labels() {
				members, err := app.Campaign.Partition.MembersOf(label, app.Campaign.People)
				if err != nil {
					return err
				}
				fmt.Printf("  %-10s %d people\n", label, len(members))
			}
			fmt.Println()
			return nil
		},
	}
}

// MembersCmd creates the members command
func MembersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "members <interval>",
		Short: "List the SSNs in an age interval, e.g. \"[40,50)\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := args[0]

			members, err := app.Campaign.Partition.MembersOf(label, app.Campaign.People)
			if err != nil {
				return fmt.Errorf("failed to list interval %s: %w", label, err)
			}
			app.Logger.Debug("members command", zap.String("interval", label), zap.Int("count", len(members)))

			fmt.Printf("\n%s: %d people\n", label, len(members))
			for _, line := range formatIDs(members, 8) {
				fmt.Printf("  %s\n", line)
			}
			fmt.Println()
			return nil
		},
	}
}
