package db

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by identifier matches no row
var ErrNotFound = errors.New("not found")

// TemplateStore defines read operations over permanent shift definitions
type TemplateStore interface {
	GetAllPermanentShifts(ctx context.Context) ([]PermanentShift, error)
	GetPermanentShiftsByWeekDay(ctx context.Context, weekDay int) ([]PermanentShift, error)
	GetPermanentShiftsByLaunchPoint(ctx context.Context, launchPointID string) ([]PermanentShift, error)
	InsertPermanentShift(ctx context.Context, permanentShift *PermanentShift) (string, error)
}

// InstanceStore defines operations over concrete dated shift instances
type InstanceStore interface {
	GetShiftByID(ctx context.Context, id string) (*Shift, error)
	GetShiftsByDate(ctx context.Context, date time.Time) ([]Shift, error)
	GetShiftsByDateRange(ctx context.Context, start, end time.Time) ([]Shift, error)
	GetShiftsByDriver(ctx context.Context, driverID string) ([]Shift, error)
	InsertShift(ctx context.Context, shift *Shift) (string, error)
	UpdateShiftDriver(ctx context.Context, shiftID string, driverID *string, updatedBy string) error
	UpdateShiftAmbulance(ctx context.Context, shiftID string, ambulanceID *string, updatedBy string) error
	UpdateShiftStatus(ctx context.Context, shiftID string, status string, updatedBy string) error
}

// SlotStore defines operations over shift slots
type SlotStore interface {
	GetShiftSlotsByShift(ctx context.Context, shiftID string) ([]ShiftSlot, error)
	GetShiftSlotsByUser(ctx context.Context, userID string) ([]ShiftSlot, error)
	InsertShiftSlot(ctx context.Context, slot *ShiftSlot) (string, error)
}

// DirectoryStore defines lookups of launch points, areas, vehicles and users
type DirectoryStore interface {
	GetAllLaunchPoints(ctx context.Context) ([]LaunchPoint, error)
	GetLaunchPointByID(ctx context.Context, id string) (*LaunchPoint, error)
	InsertLaunchPoint(ctx context.Context, launchPoint *LaunchPoint) (string, error)
	DeleteLaunchPoint(ctx context.Context, id string) error
	GetAreaName(ctx context.Context, areaID string) (string, error)
	GetAllAmbulances(ctx context.Context) ([]Ambulance, error)
	GetAmbulanceByNumber(ctx context.Context, number string) (*Ambulance, error)
	GetUserByAccountID(ctx context.Context, accountID string) (*User, error)
	GetUsersByPartialName(ctx context.Context, query string) ([]User, error)
}

// Database is the full set of datastore operations.
// pkg/postgres implements it over a pgx connection pool.
type Database interface {
	TemplateStore
	InstanceStore
	SlotStore
	DirectoryStore
}
