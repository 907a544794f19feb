package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// LaunchPointStore defines the database operations for launch point administration
type LaunchPointStore interface {
	InsertLaunchPoint(ctx context.Context, launchPoint *db.LaunchPoint) (string, error)
	DeleteLaunchPoint(ctx context.Context, id string) error
}

// CreateLaunchPoint creates a new dispatch location in an area
func CreateLaunchPoint(ctx context.Context, store LaunchPointStore, logger *zap.Logger, actor auth.Identity, name, areaID string) (*db.LaunchPoint, error) {
	actor, err := auth.Require(actor)
	if err != nil {
		return nil, err
	}

	var fields []error
	if name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if areaID == "" {
		fields = append(fields, FieldError{Field: "area_id", Message: "area is required"})
	}
	if len(fields) > 0 {
		return nil, errors.Join(fields...)
	}

	launchPoint := &db.LaunchPoint{
		ID:        uuid.New().String(),
		AreaID:    areaID,
		Name:      name,
		CreatedBy: actor.AccountID,
	}

	if _, err := store.InsertLaunchPoint(ctx, launchPoint); err != nil {
		return nil, fmt.Errorf("failed to insert launch point: %w", err)
	}

	logger.Info("Launch point created",
		zap.String("id", launchPoint.ID),
		zap.String("name", name),
		zap.String("area_id", areaID))

	return launchPoint, nil
}

// DeleteLaunchPoint removes a launch point. This is a hard delete.
// TODO: switch to an inactive flag so historical shifts keep their location.
func DeleteLaunchPoint(ctx context.Context, store LaunchPointStore, logger *zap.Logger, actor auth.Identity, launchPointID string) error {
	if _, err := auth.Require(actor); err != nil {
		return err
	}
	if launchPointID == "" {
		return FieldError{Field: "launch_point_id", Message: "launch point id is required"}
	}

	if err := store.DeleteLaunchPoint(ctx, launchPointID); err != nil {
		return fmt.Errorf("failed to delete launch point: %w", err)
	}

	logger.Info("Launch point deleted", zap.String("id", launchPointID))
	return nil
}
