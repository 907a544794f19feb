package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

// GetShiftSlotsByShift retrieves the slots of one shift, oldest first.
// Slot order is creation order; the enricher maps it onto capacity indices.
func (d *DB) GetShiftSlotsByShift(ctx context.Context, shiftID string) ([]db.ShiftSlot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, user_id, status, created_at
		FROM shift_slot
		WHERE shift_id = $1
		ORDER BY created_at ASC
	`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift slots: %w", err)
	}
	defer rows.Close()

	return scanShiftSlots(rows)
}

// GetShiftSlotsByUser retrieves the slots held by one user, newest first
func (d *DB) GetShiftSlotsByUser(ctx context.Context, userID string) ([]db.ShiftSlot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, user_id, status, created_at
		FROM shift_slot
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift slots by user: %w", err)
	}
	defer rows.Close()

	return scanShiftSlots(rows)
}

// InsertShiftSlot inserts a new shift slot
func (d *DB) InsertShiftSlot(ctx context.Context, slot *db.ShiftSlot) (string, error) {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift_slot (id, shift_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, slot.ID, slot.ShiftID, slot.UserID, slot.Status, slot.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert shift slot: %w", err)
	}
	return slot.ID, nil
}

func scanShiftSlots(rows pgx.Rows) ([]db.ShiftSlot, error) {
	var slots []db.ShiftSlot
	for rows.Next() {
		var s db.ShiftSlot
		if err := rows.Scan(&s.ID, &s.ShiftID, &s.UserID, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift slots: %w", err)
	}
	return slots, nil
}
