package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/core/services"
)

const dateLayout = "2006-01-02"

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	var toDate string

	cmd := &cobra.Command{
		Use:   "schedule <date>",
		Short: "Show the effective schedule for a date (or a range with --to)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(dateLayout, args[0])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			policy := app.Cfg.OverridePolicy()

			if toDate != "" {
				to, err := time.Parse(dateLayout, toDate)
				if err != nil {
					return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
				}
				scheduled, err := services.RangeSchedule(app.Ctx, app.Database, app.Logger, date, to, policy)
				if err != nil {
					return err
				}
				printScheduled(scheduled)
				return nil
			}

			display, err := services.DailySchedule(app.Ctx, app.Database, app.Logger, date, policy)
			if err != nil {
				return err
			}
			printDisplay(display)
			return nil
		},
	}

	cmd.Flags().StringVar(&toDate, "to", "", "End of an inclusive date range (YYYY-MM-DD)")
	return cmd
}

func printScheduled(shifts []schedule.ScheduledShift) {
	fmt.Printf("\n%d shifts:\n\n", len(shifts))
	for _, s := range shifts {
		origin := "        "
		if s.IsSynthesized() {
			origin = "template"
		}
		fmt.Printf("  %s  %s-%s  %-16s %-10s %s\n",
			schedule.DateKey(s.Date), s.StartTime, s.EndTime, s.ShiftType, s.AmbulanceType, origin)
	}
	fmt.Println()
}

func printDisplay(shifts []schedule.DisplayShift) {
	fmt.Printf("\n%d shifts:\n\n", len(shifts))
	for _, s := range shifts {
		driver := "-"
		if s.Driver != nil {
			driver = fmt.Sprintf("%s %s", s.Driver.FirstName, s.Driver.LastName)
		}
		ambulance := "-"
		if s.Ambulance != nil {
			ambulance = s.Ambulance.Number
		}
		filled := 0
		for _, slot := range s.Slots {
			if slot != nil {
				filled++
			}
		}
		fmt.Printf("  %s  %s-%s  %-16s %-24s driver: %-20s ambulance: %-8s slots: %d/%d\n",
			schedule.DateKey(s.Date), s.StartTime, s.EndTime, s.ShiftType,
			s.LaunchPoint.Name, driver, ambulance, filled, s.NumberOfSlots)
	}
	fmt.Println()
}
