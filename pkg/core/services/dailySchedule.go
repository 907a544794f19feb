package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/core/picker"
	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// ScheduleReadStore defines the template and instance reads the
// materialization pipeline needs
type ScheduleReadStore interface {
	GetPermanentShiftsByWeekDay(ctx context.Context, weekDay int) ([]db.PermanentShift, error)
	GetAllPermanentShifts(ctx context.Context) ([]db.PermanentShift, error)
	GetShiftsByDate(ctx context.Context, date time.Time) ([]db.Shift, error)
	GetShiftsByDateRange(ctx context.Context, start, end time.Time) ([]db.Shift, error)
}

// DailyScheduleStore combines the reads of the full daily pipeline
type DailyScheduleStore interface {
	ScheduleReadStore
	EnrichStore
}

// DailySchedule runs the full read pipeline for one date: materialize the
// effective shifts from templates and instances, then enrich them into
// display shifts. Either the full set for the day is returned or the call
// fails; there are no partial results.
func DailySchedule(ctx context.Context, store DailyScheduleStore, logger *zap.Logger, date time.Time, policy schedule.OverridePolicy) ([]schedule.DisplayShift, error) {
	logger.Debug("Building daily schedule", zap.String("date", schedule.DateKey(date)))

	templates, err := store.GetPermanentShiftsByWeekDay(ctx, int(date.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permanent shifts: %w", err)
	}

	instances, err := store.GetShiftsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	scheduled, err := schedule.MaterializeDay(templates, instances, date, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize schedule: %w", err)
	}

	logger.Debug("Materialized shifts",
		zap.Int("templates", len(templates)),
		zap.Int("instances", len(instances)),
		zap.Int("scheduled", len(scheduled)))

	return EnrichDay(ctx, store, logger, scheduled)
}

// RangeSchedule materializes the effective shifts for an inclusive date
// range without display enrichment, for week and month overviews.
func RangeSchedule(ctx context.Context, store ScheduleReadStore, logger *zap.Logger, from, to time.Time, policy schedule.OverridePolicy) ([]schedule.ScheduledShift, error) {
	logger.Debug("Building range schedule",
		zap.String("from", schedule.DateKey(from)),
		zap.String("to", schedule.DateKey(to)))

	templates, err := store.GetAllPermanentShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permanent shifts: %w", err)
	}

	instances, err := store.GetShiftsByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	scheduled, err := schedule.Materialize(templates, instances, from, to, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize schedule: %w", err)
	}

	return scheduled, nil
}

// PickerDay builds the grouped picker view for one date: the daily pipeline
// followed by the shift type / vehicle type / location grouping.
func PickerDay(ctx context.Context, store DailyScheduleStore, logger *zap.Logger, date time.Time, policy schedule.OverridePolicy) ([]picker.ShiftTypeGroup, error) {
	display, err := DailySchedule(ctx, store, logger, date, policy)
	if err != nil {
		return nil, err
	}
	return picker.Group(display), nil
}
