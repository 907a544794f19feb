package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

// minSearchLength keeps single-character queries from scanning the directory
const minSearchLength = 2

// SearchStore defines the directory lookups backing the assignment search
type SearchStore interface {
	GetUsersByPartialName(ctx context.Context, query string) ([]db.User, error)
}

// SearchUsers finds volunteers whose name contains the query, for the
// driver-assignment picker. Queries shorter than two characters return
// nothing rather than everyone.
func SearchUsers(ctx context.Context, store SearchStore, logger *zap.Logger, query string) ([]db.User, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return nil, nil
	}

	users, err := store.GetUsersByPartialName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	logger.Debug("User search", zap.String("query", query), zap.Int("results", len(users)))
	return users, nil
}

// DriverShiftsStore defines the reads backing a driver's shift listing
type DriverShiftsStore interface {
	GetShiftsByDriver(ctx context.Context, driverID string) ([]db.Shift, error)
}

// ShiftsByDriver lists the shift instances assigned to one driver,
// newest first as the store returns them. Canceled instances are excluded.
func ShiftsByDriver(ctx context.Context, store DriverShiftsStore, logger *zap.Logger, driverID string) ([]db.Shift, error) {
	if driverID == "" {
		return nil, FieldError{Field: "driver_id", Message: "driver id is required"}
	}

	shifts, err := store.GetShiftsByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts for driver %s: %w", driverID, err)
	}

	active := shifts[:0:0]
	for _, shift := range shifts {
		if shift.Status == db.ShiftStatusCanceled {
			continue
		}
		active = append(active, shift)
	}

	logger.Debug("Driver shifts", zap.String("driver_id", driverID), zap.Int("count", len(active)))
	return active, nil
}
