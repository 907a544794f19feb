package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// AssignDriverStore defines the database operations needed to assign a driver
type AssignDriverStore interface {
	GetShiftByID(ctx context.Context, id string) (*db.Shift, error)
	UpdateShiftDriver(ctx context.Context, shiftID string, driverID *string, updatedBy string) error
}

// AssignDriver writes the driver reference of a shift instance, or clears it
// when driverAccountID is nil. The write is single-field and last-write-wins;
// the updating actor is recorded on the row.
func AssignDriver(ctx context.Context, store AssignDriverStore, logger *zap.Logger, actor auth.Identity, shiftID string, driverAccountID *string) error {
	actor, err := auth.Require(actor)
	if err != nil {
		return err
	}

	if _, err := store.GetShiftByID(ctx, shiftID); err != nil {
		return fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}

	if err := store.UpdateShiftDriver(ctx, shiftID, driverAccountID, actor.AccountID); err != nil {
		return fmt.Errorf("failed to update shift driver: %w", err)
	}

	if driverAccountID == nil {
		logger.Info("Driver assignment cleared", zap.String("shift_id", shiftID), zap.String("updated_by", actor.AccountID))
	} else {
		logger.Info("Driver assigned",
			zap.String("shift_id", shiftID),
			zap.String("driver_id", *driverAccountID),
			zap.String("updated_by", actor.AccountID))
	}

	return nil
}
