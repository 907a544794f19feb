package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// CreateLaunchPointCmd creates the createLaunchPoint command
func CreateLaunchPointCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createLaunchPoint <name> <area_id>",
		Short: "Create a new launch point in an area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			launchPoint, err := services.CreateLaunchPoint(app.Ctx, app.Database, app.Logger, app.identity(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Launch point created!\n\n")
			fmt.Printf("ID:   %s\n", launchPoint.ID)
			fmt.Printf("Name: %s\n", launchPoint.Name)
			fmt.Printf("Area: %s\n\n", launchPoint.AreaID)
			return nil
		},
	}
}

// DeleteLaunchPointCmd creates the deleteLaunchPoint command
func DeleteLaunchPointCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteLaunchPoint <launch_point_id>",
		Short: "Delete a launch point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteLaunchPoint(app.Ctx, app.Database, app.Logger, app.identity(), args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Launch point %s deleted\n\n", args[0])
			return nil
		},
	}
}
