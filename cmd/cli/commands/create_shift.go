package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

// CreateShiftCmd creates the createShift command
func CreateShiftCmd(app *AppContext) *cobra.Command {
	var (
		params     services.ShiftParams
		dateArg    string
		templateID string
	)

	cmd := &cobra.Command{
		Use:   "createShift",
		Short: "Create a concrete dated shift instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dateArg != "" {
				date, err := time.Parse(dateLayout, dateArg)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				params.Date = date
			}
			if templateID != "" {
				params.PermanentShiftID = &templateID
			}

			shift, err := services.CreateShift(app.Ctx, app.Database, app.Logger, app.identity(), params)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift created!\n\n")
			fmt.Printf("ID:     %s\n", shift.ID)
			fmt.Printf("Date:   %s\n", schedule.DateKey(shift.Date))
			fmt.Printf("Time:   %s-%s\n", shift.StartTime, shift.EndTime)
			fmt.Printf("Type:   %s\n", shift.ShiftType)
			fmt.Printf("Slots:  %d\n\n", shift.NumberOfSlots)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.LaunchPointID, "launch-point", "", "Launch point id")
	cmd.Flags().StringVar(&dateArg, "date", "", "Shift date YYYY-MM-DD")
	cmd.Flags().StringVar(&templateID, "template", "", "Permanent shift id this instance derives from")
	cmd.Flags().StringVar(&params.ShiftType, "type", "", "Shift type (day, evening, night, reinforcement, over_the_machine, security)")
	cmd.Flags().StringVar(&params.StartTime, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&params.EndTime, "end", "", "End time HH:MM")
	cmd.Flags().BoolVar(&params.AdultOnly, "adult-only", false, "Restrict to adult volunteers")
	cmd.Flags().IntVar(&params.NumberOfSlots, "slots", 0, "Number of volunteer slots")
	cmd.Flags().StringVar(&params.AmbulanceType, "ambulance-type", "", "Ambulance type (white, intensive)")
	return cmd
}

// CancelShiftCmd creates the cancelShift command
func CancelShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelShift <shift_id>",
		Short: "Cancel a shift instance (kept in the store, hidden from display)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.CancelShift(app.Ctx, app.Database, app.Logger, app.identity(), args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift %s canceled\n\n", args[0])
			return nil
		},
	}
}
