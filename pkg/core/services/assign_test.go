package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/auth"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// mockAssignStore implements AssignDriverStore and AssignVehicleStore for testing
type mockAssignStore struct {
	shift     *db.Shift
	ambulance *db.Ambulance

	updatedDriverID    *string
	updatedAmbulanceID *string
	updatedBy          string
	driverUpdates      int
	ambulanceUpdates   int

	getShiftErr        error
	getAmbulanceErr    error
	updateDriverErr    error
	updateAmbulanceErr error
}

func (m *mockAssignStore) GetShiftByID(ctx context.Context, id string) (*db.Shift, error) {
	if m.getShiftErr != nil {
		return nil, m.getShiftErr
	}
	if m.shift == nil || m.shift.ID != id {
		return nil, db.ErrNotFound
	}
	return m.shift, nil
}

func (m *mockAssignStore) GetAmbulanceByNumber(ctx context.Context, number string) (*db.Ambulance, error) {
	if m.getAmbulanceErr != nil {
		return nil, m.getAmbulanceErr
	}
	if m.ambulance == nil || m.ambulance.Number != number {
		return nil, db.ErrNotFound
	}
	return m.ambulance, nil
}

func (m *mockAssignStore) UpdateShiftDriver(ctx context.Context, shiftID string, driverID *string, updatedBy string) error {
	if m.updateDriverErr != nil {
		return m.updateDriverErr
	}
	m.updatedDriverID = driverID
	m.updatedBy = updatedBy
	m.driverUpdates++
	return nil
}

func (m *mockAssignStore) UpdateShiftAmbulance(ctx context.Context, shiftID string, ambulanceID *string, updatedBy string) error {
	if m.updateAmbulanceErr != nil {
		return m.updateAmbulanceErr
	}
	m.updatedAmbulanceID = ambulanceID
	m.updatedBy = updatedBy
	m.ambulanceUpdates++
	return nil
}

var (
	testActor = auth.Identity{AccountID: "admin-1"}
	testShift = &db.Shift{
		ID:            "shift-1",
		LaunchPointID: "lp-1",
		Date:          time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
		Status:        db.ShiftStatusActive,
		NumberOfSlots: 2,
	}
)

func TestAssignDriver(t *testing.T) {
	store := &mockAssignStore{shift: testShift}
	driverID := "acct-9"

	err := AssignDriver(context.Background(), store, zap.NewNop(), testActor, "shift-1", &driverID)
	require.NoError(t, err)
	require.NotNil(t, store.updatedDriverID)
	assert.Equal(t, "acct-9", *store.updatedDriverID)
	assert.Equal(t, "admin-1", store.updatedBy)
}

func TestAssignDriver_Clear(t *testing.T) {
	store := &mockAssignStore{shift: testShift}

	err := AssignDriver(context.Background(), store, zap.NewNop(), testActor, "shift-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, store.driverUpdates)
	assert.Nil(t, store.updatedDriverID)
}

func TestAssignDriver_Unauthorized(t *testing.T) {
	store := &mockAssignStore{shift: testShift}
	driverID := "acct-9"

	err := AssignDriver(context.Background(), store, zap.NewNop(), auth.Identity{}, "shift-1", &driverID)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.Zero(t, store.driverUpdates)
}

func TestAssignDriver_ShiftNotFound(t *testing.T) {
	store := &mockAssignStore{}
	driverID := "acct-9"

	err := AssignDriver(context.Background(), store, zap.NewNop(), testActor, "shift-missing", &driverID)
	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.Zero(t, store.driverUpdates)
}

func TestAssignVehicle(t *testing.T) {
	store := &mockAssignStore{
		shift:     testShift,
		ambulance: &db.Ambulance{ID: "amb-1", Number: "417"},
	}

	err := AssignVehicle(context.Background(), store, zap.NewNop(), testActor, "shift-1", "417")
	require.NoError(t, err)
	require.NotNil(t, store.updatedAmbulanceID)
	assert.Equal(t, "amb-1", *store.updatedAmbulanceID)
	assert.Equal(t, "admin-1", store.updatedBy)
}

func TestAssignVehicle_EmptyNumberClears(t *testing.T) {
	store := &mockAssignStore{shift: testShift}

	err := AssignVehicle(context.Background(), store, zap.NewNop(), testActor, "shift-1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, store.ambulanceUpdates)
	assert.Nil(t, store.updatedAmbulanceID)
}

func TestAssignVehicle_UnknownNumber(t *testing.T) {
	store := &mockAssignStore{shift: testShift}

	err := AssignVehicle(context.Background(), store, zap.NewNop(), testActor, "shift-1", "999")
	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.Zero(t, store.ambulanceUpdates, "a failed vehicle lookup must leave the shift unchanged")
}

func TestAssignVehicle_Unauthorized(t *testing.T) {
	store := &mockAssignStore{shift: testShift}

	err := AssignVehicle(context.Background(), store, zap.NewNop(), auth.Identity{}, "shift-1", "417")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.Zero(t, store.ambulanceUpdates)
}

func TestAssignVehicle_UpdateFails(t *testing.T) {
	store := &mockAssignStore{
		shift:              testShift,
		ambulance:          &db.Ambulance{ID: "amb-1", Number: "417"},
		updateAmbulanceErr: errors.New("write failed"),
	}

	err := AssignVehicle(context.Background(), store, zap.NewNop(), testActor, "shift-1", "417")
	assert.Error(t, err)
}
