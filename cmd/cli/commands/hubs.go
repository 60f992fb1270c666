package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// HubsCmd creates the hubs command
func HubsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hubs",
		Short: "List the hubs with their staffing and hourly capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := app.Campaign.Hubs.Names()

			fmt.Printf("\nFound %d hubs:\n\n", len(names))
			for _, name := range names {
				hub, _ := app.Campaign.Hubs.Lookup(name)
				capacity, err := hub.HourlyCapacity()
				if err != nil {
					fmt.Printf("- %s: %d doctors, %d nurses, %d other - capacity undefined\n",
						hub.Name, hub.Doctors, hub.Nurses, hub.Other)
					continue
				}
				fmt.Printf("- %s: %d doctors, %d nurses, %d other - %d per hour\n",
					hub.Name, hub.Doctors, hub.Nurses, hub.Other, capacity)
			}
			fmt.Println()
			return nil
		},
	}
}

// CapacityCmd creates the capacity command
func CapacityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <hub> [day]",
		Short: "Show the hourly capacity of a hub, or its availability on a day",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hubName := args[0]

			if len(args) == 1 {
				capacity, err := app.Campaign.Hubs.HourlyCapacity(hubName)
				if err != nil {
					return err
				}
				fmt.Printf("\n%s: %d vaccinations per hour\n\n", hubName, capacity)
				return nil
			}

			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			available, err := app.Campaign.Allocator.DailyAvailable(hubName, day)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s on %s: %d vaccinations\n\n", hubName, dayName(day), available)
			return nil
		},
	}
}

// AvailableCmd creates the available command
func AvailableCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "available",
		Short: "Show the daily availability of every hub for the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := app.Campaign.Allocator.Available()
			if err != nil {
				return err
			}

			nameColWidth := 12
			for name := range available {
				nameColWidth = max(nameColWidth, len(name)+2)
			}
			dayColWidth := 11

			fmt.Println()
			fmt.Printf("%-*s", nameColWidth, "")
			for _, name := range dayNames {
				fmt.Printf("%-*s", dayColWidth, name)
			}
			fmt.Println()
			fmt.Println(strings.Repeat("-", nameColWidth+dayColWidth*len(dayNames)))

			for _, name := range app.Campaign.Hubs.Names() {
				fmt.Printf("%-*s", nameColWidth, name)
				for _, slots := range available[name] {
					fmt.Printf("%-*d", dayColWidth, slots)
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}
}

// SlotsCmd creates the slots command
func SlotsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the 15-minute appointment slots of each day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println()
			for day, slots := range app.Campaign.Hours.TimeSlots() {
				if len(slots) == 0 {
					fmt.Printf("%-10s closed\n", dayName(day))
					continue
				}
				fmt.Printf("%-10s %d slots, %s - %s\n", dayName(day), len(slots), slots[0], slots[len(slots)-1])
			}
			fmt.Println()
			return nil
		},
	}
}
