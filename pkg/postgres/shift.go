package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

const shiftColumns = `id, permanent_shift_id, launch_point_id, ambulance_type, ambulance_id,
	driver_id, date, start_time, end_time, shift_type, adult_only, number_of_slots,
	status, created_by, updated_by`

// GetShiftByID retrieves a single shift instance
func (d *DB) GetShiftByID(ctx context.Context, id string) (*db.Shift, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE id = $1
	`, id)

	shift, err := scanShift(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shift %s: %w", id, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query shift: %w", err)
	}
	return shift, nil
}

// GetShiftsByDate retrieves the shift instances dated on one calendar day
func (d *DB) GetShiftsByDate(ctx context.Context, date time.Time) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE date = $1::date
		ORDER BY start_time ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts by date: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// GetShiftsByDateRange retrieves the shift instances in an inclusive date range
func (d *DB) GetShiftsByDateRange(ctx context.Context, start, end time.Time) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE date >= $1::date AND date <= $2::date
		ORDER BY date ASC, start_time ASC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts by date range: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// GetShiftsByDriver retrieves the shift instances assigned to one driver
func (d *DB) GetShiftsByDriver(ctx context.Context, driverID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE driver_id = $1
		ORDER BY date DESC, start_time DESC
	`, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts by driver: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// InsertShift inserts a new shift instance
func (d *DB) InsertShift(ctx context.Context, shift *db.Shift) (string, error) {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift (id, permanent_shift_id, launch_point_id, ambulance_type,
			ambulance_id, driver_id, date, start_time, end_time, shift_type,
			adult_only, number_of_slots, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, shift.ID, shift.PermanentShiftID, shift.LaunchPointID, shift.AmbulanceType,
		shift.AmbulanceID, shift.DriverID, shift.Date, shift.StartTime, shift.EndTime,
		shift.ShiftType, shift.AdultOnly, shift.NumberOfSlots, shift.Status, shift.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("failed to insert shift: %w", err)
	}
	return shift.ID, nil
}

// UpdateShiftDriver writes or clears the driver reference of a shift
func (d *DB) UpdateShiftDriver(ctx context.Context, shiftID string, driverID *string, updatedBy string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift SET driver_id = $2, updated_by = $3 WHERE id = $1
	`, shiftID, driverID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update shift driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
	}
	return nil
}

// UpdateShiftAmbulance writes or clears the ambulance reference of a shift
func (d *DB) UpdateShiftAmbulance(ctx context.Context, shiftID string, ambulanceID *string, updatedBy string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift SET ambulance_id = $2, updated_by = $3 WHERE id = $1
	`, shiftID, ambulanceID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update shift ambulance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
	}
	return nil
}

// UpdateShiftStatus sets the lifecycle status of a shift
func (d *DB) UpdateShiftStatus(ctx context.Context, shiftID string, status string, updatedBy string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift SET status = $2, updated_by = $3 WHERE id = $1
	`, shiftID, status, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
	}
	return nil
}

func scanShift(row pgx.Row) (*db.Shift, error) {
	var s db.Shift
	if err := row.Scan(&s.ID, &s.PermanentShiftID, &s.LaunchPointID, &s.AmbulanceType,
		&s.AmbulanceID, &s.DriverID, &s.Date, &s.StartTime, &s.EndTime, &s.ShiftType,
		&s.AdultOnly, &s.NumberOfSlots, &s.Status, &s.CreatedBy, &s.UpdatedBy); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanShifts(rows pgx.Rows) ([]db.Shift, error) {
	var shifts []db.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}
	return shifts, nil
}
