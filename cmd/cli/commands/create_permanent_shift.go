package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// CreatePermanentShiftCmd creates the createPermanentShift command
func CreatePermanentShiftCmd(app *AppContext) *cobra.Command {
	var params services.PermanentShiftParams

	cmd := &cobra.Command{
		Use:   "createPermanentShift",
		Short: "Create a recurring shift definition, one row per selected weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := services.CreatePermanentShift(app.Ctx, app.Database, app.Logger, app.identity(), params)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %d permanent shift(s) created!\n\n", len(created))
			for _, template := range created {
				fmt.Printf("  %s  week day %d  %s-%s  %s\n",
					template.ID, template.WeekDay, template.StartTime, template.EndTime, template.ShiftType)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&params.AreaID, "area", "", "Area id")
	cmd.Flags().StringVar(&params.LaunchPointID, "launch-point", "", "Launch point id")
	cmd.Flags().StringVar(&params.ShiftType, "type", "", "Shift type (day, evening, night, reinforcement, over_the_machine, security)")
	cmd.Flags().IntSliceVar(&params.WeekDays, "days", nil, "Week days 0-6, 0 = Sunday (e.g. --days 0,2,4)")
	cmd.Flags().StringVar(&params.StartTime, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&params.EndTime, "end", "", "End time HH:MM")
	cmd.Flags().BoolVar(&params.AdultOnly, "adult-only", false, "Restrict to adult volunteers")
	cmd.Flags().IntVar(&params.NumberOfSlots, "slots", 0, "Number of volunteer slots")
	cmd.Flags().StringVar(&params.AmbulanceType, "ambulance-type", "", "Ambulance type (white, intensive)")
	return cmd
}
