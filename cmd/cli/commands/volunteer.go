package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// RequestSlotCmd creates the requestSlot command
func RequestSlotCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "requestSlot <shift_id>",
		Short: "Claim a volunteer slot on a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := services.RequestSlot(app.Ctx, app.Database, app.Logger, app.identity(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Slot requested!\n\n")
			fmt.Printf("Slot ID: %s\n", slot.ID)
			fmt.Printf("Status:  %s\n\n", slot.Status)
			return nil
		},
	}
}

// SearchUsersCmd creates the searchUsers command
func SearchUsersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "searchUsers <query>",
		Short: "Search volunteers by partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := services.SearchUsers(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n%d result(s):\n\n", len(users))
			for _, user := range users {
				fmt.Printf("  %-36s %s %s\n", user.AccountID, user.FirstName, user.LastName)
			}
			fmt.Println()
			return nil
		},
	}
}

// MyShiftsCmd creates the myShifts command
func MyShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myShifts <driver_account_id>",
		Short: "List the shifts assigned to a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := services.ShiftsByDriver(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n%d shift(s):\n\n", len(shifts))
			for _, shift := range shifts {
				fmt.Printf("  %s  %s-%s  %-16s %s\n",
					schedule.DateKey(shift.Date), shift.StartTime, shift.EndTime, shift.ShiftType, shift.LaunchPointID)
			}
			fmt.Println()
			return nil
		},
	}
}
