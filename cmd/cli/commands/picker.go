package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// PickerCmd creates the picker command
func PickerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "picker <date>",
		Short: "Show the grouped shift picker for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(dateLayout, args[0])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			groups, err := services.PickerDay(app.Ctx, app.Database, app.Logger, date, app.Cfg.OverridePolicy())
			if err != nil {
				return err
			}

			fmt.Println()
			for _, group := range groups {
				fmt.Printf("%s (%d)\n", group.Label, group.Count)
				for _, ambulanceGroup := range group.AmbulanceTypes {
					fmt.Printf("  %s (%d)\n", ambulanceGroup.Label, ambulanceGroup.Count)
					for _, shift := range ambulanceGroup.Shifts {
						number := ""
						if shift.Ambulance != nil {
							number = " [" + shift.Ambulance.Number + "]"
						}
						fmt.Printf("    %s%s  %s-%s\n", shift.LaunchPoint.Name, number, shift.StartTime, shift.EndTime)
					}
				}
			}
			fmt.Println()

			return nil
		},
	}
}
