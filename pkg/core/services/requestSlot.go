package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// ErrShiftFull is returned when every declared slot of a shift is taken
var ErrShiftFull = errors.New("shift is full")

// ErrAlreadyRequested is returned when the actor already holds a slot on the shift
var ErrAlreadyRequested = errors.New("slot already requested for this shift")

// RequestSlotStore defines the operations needed to claim a slot
type RequestSlotStore interface {
	GetShiftByID(ctx context.Context, id string) (*db.Shift, error)
	GetShiftSlotsByShift(ctx context.Context, shiftID string) ([]db.ShiftSlot, error)
	InsertShiftSlot(ctx context.Context, slot *db.ShiftSlot) (string, error)
}

// RequestSlot claims one capacity unit of a shift for the acting volunteer.
// The claim is stored pending; confirmation is an administrator action.
func RequestSlot(ctx context.Context, store RequestSlotStore, logger *zap.Logger, actor auth.Identity, shiftID string) (*db.ShiftSlot, error) {
	actor, err := auth.Require(actor)
	if err != nil {
		return nil, err
	}

	shift, err := store.GetShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}
	if shift.Status == db.ShiftStatusCanceled {
		return nil, fmt.Errorf("shift %s is canceled", shiftID)
	}

	slots, err := store.GetShiftSlotsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for shift %s: %w", shiftID, err)
	}

	taken := 0
	for _, slot := range slots {
		if slot.Status == db.SlotStatusCancelled {
			continue
		}
		if slot.UserID == actor.AccountID {
			return nil, ErrAlreadyRequested
		}
		taken++
	}
	if taken >= shift.NumberOfSlots {
		return nil, ErrShiftFull
	}

	slot := &db.ShiftSlot{
		ID:        uuid.New().String(),
		ShiftID:   shiftID,
		UserID:    actor.AccountID,
		Status:    db.SlotStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := store.InsertShiftSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to insert shift slot: %w", err)
	}

	logger.Info("Slot requested",
		zap.String("shift_id", shiftID),
		zap.String("user_id", actor.AccountID),
		zap.Int("taken", taken+1),
		zap.Int("capacity", shift.NumberOfSlots))

	return slot, nil
}
