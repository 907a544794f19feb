package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// PermanentShiftParams describes a recurring shift definition to create.
// WeekDays holds every selected day; one template row is stored per day.
type PermanentShiftParams struct {
	AreaID        string
	LaunchPointID string
	ShiftType     string
	WeekDays      []int
	StartTime     string
	EndTime       string
	AdultOnly     bool
	NumberOfSlots int
	AmbulanceType string
}

// CreatePermanentShiftStore defines the write the creation flow needs
type CreatePermanentShiftStore interface {
	InsertPermanentShift(ctx context.Context, permanentShift *db.PermanentShift) (string, error)
}

// CreatePermanentShift validates the submission and stores one flattened
// template row per selected weekday. All fields are checked before any
// write; a rejected submission writes nothing.
func CreatePermanentShift(ctx context.Context, store CreatePermanentShiftStore, logger *zap.Logger, actor auth.Identity, params PermanentShiftParams) ([]db.PermanentShift, error) {
	actor, err := auth.Require(actor)
	if err != nil {
		return nil, err
	}

	var fields []error
	if params.AreaID == "" {
		fields = append(fields, FieldError{Field: "area_id", Message: "area is required"})
	}
	if params.LaunchPointID == "" {
		fields = append(fields, FieldError{Field: "launch_point_id", Message: "launch point is required"})
	}
	shiftType, err := schedule.ParseShiftType(params.ShiftType)
	if err != nil {
		fields = append(fields, FieldError{Field: "shift_type", Message: "shift type is required"})
	}
	if len(params.WeekDays) == 0 {
		fields = append(fields, FieldError{Field: "week_days", Message: "at least one week day is required"})
	}
	for _, day := range params.WeekDays {
		if day < 0 || day > 6 {
			fields = append(fields, FieldError{Field: "week_days", Message: fmt.Sprintf("week day %d out of range 0-6", day)})
			break
		}
	}
	startTime, err := normalizeClock(params.StartTime)
	if err != nil {
		fields = append(fields, FieldError{Field: "start_time", Message: "start time is required as HH:MM"})
	}
	endTime, err := normalizeClock(params.EndTime)
	if err != nil {
		fields = append(fields, FieldError{Field: "end_time", Message: "end time is required as HH:MM"})
	}
	if params.NumberOfSlots < 1 {
		fields = append(fields, FieldError{Field: "number_of_slots", Message: "at least one slot is required"})
	}
	if params.AmbulanceType == "" {
		fields = append(fields, FieldError{Field: "ambulance_type", Message: "ambulance type is required"})
	}
	if len(fields) > 0 {
		return nil, errors.Join(fields...)
	}

	created := make([]db.PermanentShift, 0, len(params.WeekDays))
	for _, day := range params.WeekDays {
		template := db.PermanentShift{
			ID:            uuid.New().String(),
			AreaID:        params.AreaID,
			LaunchPointID: params.LaunchPointID,
			ShiftType:     string(shiftType),
			WeekDay:       day,
			StartTime:     startTime,
			EndTime:       endTime,
			AdultOnly:     params.AdultOnly,
			NumberOfSlots: params.NumberOfSlots,
			AmbulanceType: string(schedule.NormalizeAmbulanceType(params.AmbulanceType)),
			CreatedBy:     actor.AccountID,
		}
		if _, err := store.InsertPermanentShift(ctx, &template); err != nil {
			return created, fmt.Errorf("failed to insert permanent shift for week day %d: %w", day, err)
		}
		created = append(created, template)
	}

	logger.Info("Permanent shifts created",
		zap.String("launch_point_id", params.LaunchPointID),
		zap.String("shift_type", string(shiftType)),
		zap.Ints("week_days", params.WeekDays))

	return created, nil
}

// normalizeClock validates a wall-clock string and zero-pads it to HH:MM,
// the form the materializer's ordering relies on. End times are allowed to
// precede start times: night shifts wrap past midnight.
func normalizeClock(clock string) (string, error) {
	if clock == "" {
		return "", fmt.Errorf("empty clock value")
	}
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		parsed, err = time.Parse("3:04", clock)
		if err != nil {
			return "", fmt.Errorf("invalid clock value %q: %w", clock, err)
		}
	}
	return parsed.Format("15:04"), nil
}
