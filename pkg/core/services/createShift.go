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

// ShiftParams describes a concrete dated shift instance to create
type ShiftParams struct {
	PermanentShiftID *string
	LaunchPointID    string
	AmbulanceType    string
	AmbulanceID      *string
	DriverID         *string
	Date             time.Time
	StartTime        string
	EndTime          string
	ShiftType        string
	AdultOnly        bool
	NumberOfSlots    int
}

// CreateShiftStore defines the write the creation flow needs
type CreateShiftStore interface {
	InsertShift(ctx context.Context, shift *db.Shift) (string, error)
}

// CreateShift validates the submission and stores one dated shift instance
// with status active. Instances are later canceled, never deleted.
func CreateShift(ctx context.Context, store CreateShiftStore, logger *zap.Logger, actor auth.Identity, params ShiftParams) (*db.Shift, error) {
	actor, err := auth.Require(actor)
	if err != nil {
		return nil, err
	}

	var fields []error
	if params.LaunchPointID == "" {
		fields = append(fields, FieldError{Field: "launch_point_id", Message: "launch point is required"})
	}
	if params.Date.IsZero() {
		fields = append(fields, FieldError{Field: "date", Message: "date is required"})
	}
	shiftType, err := schedule.ParseShiftType(params.ShiftType)
	if err != nil {
		fields = append(fields, FieldError{Field: "shift_type", Message: "shift type is required"})
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

	shift := &db.Shift{
		ID:               uuid.New().String(),
		PermanentShiftID: params.PermanentShiftID,
		LaunchPointID:    params.LaunchPointID,
		AmbulanceType:    string(schedule.NormalizeAmbulanceType(params.AmbulanceType)),
		AmbulanceID:      params.AmbulanceID,
		DriverID:         params.DriverID,
		Date:             params.Date,
		StartTime:        startTime,
		EndTime:          endTime,
		ShiftType:        string(shiftType),
		AdultOnly:        params.AdultOnly,
		NumberOfSlots:    params.NumberOfSlots,
		Status:           db.ShiftStatusActive,
		CreatedBy:        actor.AccountID,
	}

	if _, err := store.InsertShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to insert shift: %w", err)
	}

	logger.Info("Shift created",
		zap.String("id", shift.ID),
		zap.String("launch_point_id", shift.LaunchPointID),
		zap.String("date", schedule.DateKey(shift.Date)),
		zap.String("shift_type", shift.ShiftType))

	return shift, nil
}

// CancelShiftStore defines the operations needed to cancel a shift
type CancelShiftStore interface {
	GetShiftByID(ctx context.Context, id string) (*db.Shift, error)
	UpdateShiftStatus(ctx context.Context, shiftID string, status string, updatedBy string) error
}

// CancelShift marks a shift instance canceled. Canceled instances are
// excluded from every display and grouping path but keep their row.
func CancelShift(ctx context.Context, store CancelShiftStore, logger *zap.Logger, actor auth.Identity, shiftID string) error {
	actor, err := auth.Require(actor)
	if err != nil {
		return err
	}

	shift, err := store.GetShiftByID(ctx, shiftID)
	if err != nil {
		return fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}
	if shift.Status == db.ShiftStatusCanceled {
		return nil
	}

	if err := store.UpdateShiftStatus(ctx, shiftID, db.ShiftStatusCanceled, actor.AccountID); err != nil {
		return fmt.Errorf("failed to cancel shift: %w", err)
	}

	logger.Info("Shift canceled", zap.String("shift_id", shiftID), zap.String("updated_by", actor.AccountID))
	return nil
}
