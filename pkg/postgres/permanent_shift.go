package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

const permanentShiftColumns = `id, area_id, launch_point_id, shift_type, week_day,
	start_time, end_time, adult_only, number_of_slots, ambulance_type, created_by`

// GetAllPermanentShifts retrieves every permanent shift definition
func (d *DB) GetAllPermanentShifts(ctx context.Context) ([]db.PermanentShift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+permanentShiftColumns+`
		FROM permanent_shift
		ORDER BY week_day ASC, start_time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query permanent shifts: %w", err)
	}
	defer rows.Close()

	return scanPermanentShifts(rows)
}

// GetPermanentShiftsByWeekDay retrieves the definitions recurring on one weekday
func (d *DB) GetPermanentShiftsByWeekDay(ctx context.Context, weekDay int) ([]db.PermanentShift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+permanentShiftColumns+`
		FROM permanent_shift
		WHERE week_day = $1
		ORDER BY start_time ASC
	`, weekDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query permanent shifts by week day: %w", err)
	}
	defer rows.Close()

	return scanPermanentShifts(rows)
}

// GetPermanentShiftsByLaunchPoint retrieves the definitions of one launch point
func (d *DB) GetPermanentShiftsByLaunchPoint(ctx context.Context, launchPointID string) ([]db.PermanentShift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+permanentShiftColumns+`
		FROM permanent_shift
		WHERE launch_point_id = $1
		ORDER BY week_day ASC, start_time ASC
	`, launchPointID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permanent shifts by launch point: %w", err)
	}
	defer rows.Close()

	return scanPermanentShifts(rows)
}

// InsertPermanentShift inserts a new permanent shift definition
func (d *DB) InsertPermanentShift(ctx context.Context, permanentShift *db.PermanentShift) (string, error) {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO permanent_shift (id, area_id, launch_point_id, shift_type, week_day,
			start_time, end_time, adult_only, number_of_slots, ambulance_type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, permanentShift.ID, permanentShift.AreaID, permanentShift.LaunchPointID,
		permanentShift.ShiftType, permanentShift.WeekDay, permanentShift.StartTime,
		permanentShift.EndTime, permanentShift.AdultOnly, permanentShift.NumberOfSlots,
		permanentShift.AmbulanceType, permanentShift.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("failed to insert permanent shift: %w", err)
	}
	return permanentShift.ID, nil
}

func scanPermanentShifts(rows pgx.Rows) ([]db.PermanentShift, error) {
	var shifts []db.PermanentShift
	for rows.Next() {
		var s db.PermanentShift
		if err := rows.Scan(&s.ID, &s.AreaID, &s.LaunchPointID, &s.ShiftType, &s.WeekDay,
			&s.StartTime, &s.EndTime, &s.AdultOnly, &s.NumberOfSlots, &s.AmbulanceType, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan permanent shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permanent shifts: %w", err)
	}
	return shifts, nil
}
