package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

// GetAllLaunchPoints retrieves every launch point ordered by name
func (d *DB) GetAllLaunchPoints(ctx context.Context) ([]db.LaunchPoint, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, area_id, name, created_by
		FROM launch_point
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query launch points: %w", err)
	}
	defer rows.Close()

	var launchPoints []db.LaunchPoint
	for rows.Next() {
		var lp db.LaunchPoint
		if err := rows.Scan(&lp.ID, &lp.AreaID, &lp.Name, &lp.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan launch point: %w", err)
		}
		launchPoints = append(launchPoints, lp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating launch points: %w", err)
	}
	return launchPoints, nil
}

// GetLaunchPointByID retrieves a single launch point
func (d *DB) GetLaunchPointByID(ctx context.Context, id string) (*db.LaunchPoint, error) {
	var lp db.LaunchPoint
	err := d.pool.QueryRow(ctx, `
		SELECT id, area_id, name, created_by FROM launch_point WHERE id = $1
	`, id).Scan(&lp.ID, &lp.AreaID, &lp.Name, &lp.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("launch point %s: %w", id, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query launch point: %w", err)
	}
	return &lp, nil
}

// InsertLaunchPoint inserts a new launch point
func (d *DB) InsertLaunchPoint(ctx context.Context, launchPoint *db.LaunchPoint) (string, error) {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO launch_point (id, area_id, name, created_by)
		VALUES ($1, $2, $3, $4)
	`, launchPoint.ID, launchPoint.AreaID, launchPoint.Name, launchPoint.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("failed to insert launch point: %w", err)
	}
	return launchPoint.ID, nil
}

// DeleteLaunchPoint removes a launch point row
func (d *DB) DeleteLaunchPoint(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM launch_point WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete launch point: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("launch point %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// GetAreaName retrieves the display name of an area
func (d *DB) GetAreaName(ctx context.Context, areaID string) (string, error) {
	var name string
	err := d.pool.QueryRow(ctx, `SELECT name FROM area WHERE id = $1`, areaID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("area %s: %w", areaID, db.ErrNotFound)
		}
		return "", fmt.Errorf("failed to query area name: %w", err)
	}
	return name, nil
}

// GetAllAmbulances retrieves every ambulance ordered by number
func (d *DB) GetAllAmbulances(ctx context.Context) ([]db.Ambulance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, number, intensive FROM ambulance ORDER BY number ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ambulances: %w", err)
	}
	defer rows.Close()

	var ambulances []db.Ambulance
	for rows.Next() {
		var a db.Ambulance
		if err := rows.Scan(&a.ID, &a.Number, &a.Intensive); err != nil {
			return nil, fmt.Errorf("failed to scan ambulance: %w", err)
		}
		ambulances = append(ambulances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ambulances: %w", err)
	}
	return ambulances, nil
}

// GetAmbulanceByNumber retrieves an ambulance by its fleet number
func (d *DB) GetAmbulanceByNumber(ctx context.Context, number string) (*db.Ambulance, error) {
	var a db.Ambulance
	err := d.pool.QueryRow(ctx, `
		SELECT id, number, intensive FROM ambulance WHERE number = $1
	`, number).Scan(&a.ID, &a.Number, &a.Intensive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ambulance %s: %w", number, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query ambulance by number: %w", err)
	}
	return &a, nil
}

// GetUserByAccountID retrieves a volunteer profile by account id
func (d *DB) GetUserByAccountID(ctx context.Context, accountID string) (*db.User, error) {
	var u db.User
	var imageURL, address, areaID *string
	err := d.pool.QueryRow(ctx, `
		SELECT id, account_id, first_name, last_name, image_url, address, area_id, role
		FROM user_info
		WHERE account_id = $1
	`, accountID).Scan(&u.ID, &u.AccountID, &u.FirstName, &u.LastName, &imageURL, &address, &areaID, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", accountID, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if imageURL != nil {
		u.ImageURL = *imageURL
	}
	if address != nil {
		u.Address = *address
	}
	if areaID != nil {
		u.AreaID = *areaID
	}
	return &u, nil
}

// GetUsersByPartialName retrieves volunteers whose name contains the query
func (d *DB) GetUsersByPartialName(ctx context.Context, query string) ([]db.User, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, account_id, first_name, last_name, image_url, address, area_id, role
		FROM user_info
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR first_name || ' ' || last_name ILIKE '%' || $1 || '%'
		ORDER BY first_name ASC, last_name ASC
	`, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by name: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		var imageURL, address, areaID *string
		if err := rows.Scan(&u.ID, &u.AccountID, &u.FirstName, &u.LastName, &imageURL, &address, &areaID, &u.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if imageURL != nil {
			u.ImageURL = *imageURL
		}
		if address != nil {
			u.Address = *address
		}
		if areaID != nil {
			u.AreaID = *areaID
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
