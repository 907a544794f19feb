package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// AssignDriverCmd creates the assignDriver command
func AssignDriverCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignDriver <shift_id> [driver_account_id]",
		Short: "Assign a driver to a shift, or clear the assignment",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var driverID *string
			if len(args) == 2 && args[1] != "" {
				driverID = &args[1]
			}

			if err := services.AssignDriver(app.Ctx, app.Database, app.Logger, app.identity(), args[0], driverID); err != nil {
				return err
			}

			if driverID == nil {
				fmt.Printf("\n✓ Driver cleared from shift %s\n\n", args[0])
			} else {
				fmt.Printf("\n✓ Driver %s assigned to shift %s\n\n", *driverID, args[0])
			}
			return nil
		},
	}
}

// AssignVehicleCmd creates the assignVehicle command
func AssignVehicleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignVehicle <shift_id> [vehicle_number]",
		Short: "Assign an ambulance to a shift by fleet number, or clear the assignment",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := ""
			if len(args) == 2 {
				number = args[1]
			}

			if err := services.AssignVehicle(app.Ctx, app.Database, app.Logger, app.identity(), args[0], number); err != nil {
				return err
			}

			if number == "" {
				fmt.Printf("\n✓ Vehicle cleared from shift %s\n\n", args[0])
			} else {
				fmt.Printf("\n✓ Vehicle %s assigned to shift %s\n\n", number, args[0])
			}
			return nil
		},
	}
}
