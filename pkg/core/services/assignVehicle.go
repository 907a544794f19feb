package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// AssignVehicleStore defines the database operations needed to assign a vehicle
type AssignVehicleStore interface {
	GetShiftByID(ctx context.Context, id string) (*db.Shift, error)
	GetAmbulanceByNumber(ctx context.Context, number string) (*db.Ambulance, error)
	UpdateShiftAmbulance(ctx context.Context, shiftID string, ambulanceID *string, updatedBy string) error
}

// AssignVehicle resolves a vehicle number to an ambulance and writes the
// reference onto the shift instance. An empty number clears the assignment.
// An unknown number fails with db.ErrNotFound and leaves the instance
// unchanged.
func AssignVehicle(ctx context.Context, store AssignVehicleStore, logger *zap.Logger, actor auth.Identity, shiftID string, vehicleNumber string) error {
	actor, err := auth.Require(actor)
	if err != nil {
		return err
	}

	if _, err := store.GetShiftByID(ctx, shiftID); err != nil {
		return fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}

	var ambulanceID *string
	if vehicleNumber != "" {
		ambulance, err := store.GetAmbulanceByNumber(ctx, vehicleNumber)
		if err != nil {
			return fmt.Errorf("ambulance %q: %w", vehicleNumber, err)
		}
		ambulanceID = &ambulance.ID
	}

	if err := store.UpdateShiftAmbulance(ctx, shiftID, ambulanceID, actor.AccountID); err != nil {
		return fmt.Errorf("failed to update shift ambulance: %w", err)
	}

	if ambulanceID == nil {
		logger.Info("Vehicle assignment cleared", zap.String("shift_id", shiftID), zap.String("updated_by", actor.AccountID))
	} else {
		logger.Info("Vehicle assigned",
			zap.String("shift_id", shiftID),
			zap.String("ambulance_number", vehicleNumber),
			zap.String("updated_by", actor.AccountID))
	}

	return nil
}
