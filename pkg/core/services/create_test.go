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

// mockLaunchPointStore implements LaunchPointStore for testing
type mockLaunchPointStore struct {
	inserted  []db.LaunchPoint
	deleted   []string
	insertErr error
	deleteErr error
}

func (m *mockLaunchPointStore) InsertLaunchPoint(ctx context.Context, launchPoint *db.LaunchPoint) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.inserted = append(m.inserted, *launchPoint)
	return launchPoint.ID, nil
}

func (m *mockLaunchPointStore) DeleteLaunchPoint(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// mockPermanentShiftStore implements CreatePermanentShiftStore for testing
type mockPermanentShiftStore struct {
	inserted  []db.PermanentShift
	insertErr error
}

func (m *mockPermanentShiftStore) InsertPermanentShift(ctx context.Context, permanentShift *db.PermanentShift) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.inserted = append(m.inserted, *permanentShift)
	return permanentShift.ID, nil
}

// mockShiftWriteStore implements CreateShiftStore and CancelShiftStore for testing
type mockShiftWriteStore struct {
	shift         *db.Shift
	inserted      []db.Shift
	updatedStatus string
	updatedBy     string
	statusUpdates int
	insertErr     error
	getErr        error
	updateErr     error
}

func (m *mockShiftWriteStore) InsertShift(ctx context.Context, shift *db.Shift) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.inserted = append(m.inserted, *shift)
	return shift.ID, nil
}

func (m *mockShiftWriteStore) GetShiftByID(ctx context.Context, id string) (*db.Shift, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.shift == nil || m.shift.ID != id {
		return nil, db.ErrNotFound
	}
	return m.shift, nil
}

func (m *mockShiftWriteStore) UpdateShiftStatus(ctx context.Context, shiftID string, status string, updatedBy string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = status
	m.updatedBy = updatedBy
	m.statusUpdates++
	return nil
}

func TestCreateLaunchPoint(t *testing.T) {
	store := &mockLaunchPointStore{}

	launchPoint, err := CreateLaunchPoint(context.Background(), store, zap.NewNop(), testActor, "תחנה חדשה", "area-1")
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.NotEmpty(t, launchPoint.ID)
	assert.Equal(t, "תחנה חדשה", launchPoint.Name)
	assert.Equal(t, "area-1", launchPoint.AreaID)
	assert.Equal(t, "admin-1", launchPoint.CreatedBy)
}

func TestCreateLaunchPoint_MissingFields(t *testing.T) {
	store := &mockLaunchPointStore{}

	_, err := CreateLaunchPoint(context.Background(), store, zap.NewNop(), testActor, "", "")
	require.Error(t, err)
	assert.Empty(t, store.inserted)

	var fieldErr FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "area_id")
}

func TestCreateLaunchPoint_Unauthorized(t *testing.T) {
	store := &mockLaunchPointStore{}

	_, err := CreateLaunchPoint(context.Background(), store, zap.NewNop(), auth.Identity{}, "תחנה", "area-1")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.Empty(t, store.inserted)
}

func TestDeleteLaunchPoint(t *testing.T) {
	store := &mockLaunchPointStore{}

	err := DeleteLaunchPoint(context.Background(), store, zap.NewNop(), testActor, "lp-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"lp-1"}, store.deleted)
}

func TestDeleteLaunchPoint_MissingID(t *testing.T) {
	store := &mockLaunchPointStore{}

	err := DeleteLaunchPoint(context.Background(), store, zap.NewNop(), testActor, "")
	require.Error(t, err)
	assert.Empty(t, store.deleted)
}

func validPermanentShiftParams() PermanentShiftParams {
	return PermanentShiftParams{
		AreaID:        "area-1",
		LaunchPointID: "lp-1",
		ShiftType:     "night",
		WeekDays:      []int{0, 2, 4},
		StartTime:     "23:00",
		EndTime:       "07:00",
		NumberOfSlots: 2,
		AmbulanceType: "white",
	}
}

func TestCreatePermanentShift_OneRowPerWeekDay(t *testing.T) {
	store := &mockPermanentShiftStore{}

	created, err := CreatePermanentShift(context.Background(), store, zap.NewNop(), testActor, validPermanentShiftParams())
	require.NoError(t, err)
	require.Len(t, created, 3)
	require.Len(t, store.inserted, 3)

	days := []int{store.inserted[0].WeekDay, store.inserted[1].WeekDay, store.inserted[2].WeekDay}
	assert.Equal(t, []int{0, 2, 4}, days)
	for _, row := range store.inserted {
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, "night", row.ShiftType)
		assert.Equal(t, "23:00", row.StartTime)
		assert.Equal(t, "admin-1", row.CreatedBy)
	}
	// Each weekday gets its own row id
	assert.NotEqual(t, store.inserted[0].ID, store.inserted[1].ID)
}

func TestCreatePermanentShift_NormalizesClockAndAmbulanceType(t *testing.T) {
	store := &mockPermanentShiftStore{}
	params := validPermanentShiftParams()
	params.StartTime = "7:00"
	params.AmbulanceType = "ATAN"

	created, err := CreatePermanentShift(context.Background(), store, zap.NewNop(), testActor, params)
	require.NoError(t, err)
	require.NotEmpty(t, created)
	assert.Equal(t, "07:00", created[0].StartTime)
	assert.Equal(t, "intensive", created[0].AmbulanceType)
}

func TestCreatePermanentShift_AllFieldsValidatedBeforeWrite(t *testing.T) {
	store := &mockPermanentShiftStore{}
	params := PermanentShiftParams{}

	_, err := CreatePermanentShift(context.Background(), store, zap.NewNop(), testActor, params)
	require.Error(t, err)
	assert.Empty(t, store.inserted)

	for _, field := range []string{"area_id", "launch_point_id", "shift_type", "week_days", "start_time", "end_time", "number_of_slots", "ambulance_type"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestCreatePermanentShift_WeekDayOutOfRange(t *testing.T) {
	store := &mockPermanentShiftStore{}
	params := validPermanentShiftParams()
	params.WeekDays = []int{2, 7}

	_, err := CreatePermanentShift(context.Background(), store, zap.NewNop(), testActor, params)
	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestCreatePermanentShift_Unauthorized(t *testing.T) {
	store := &mockPermanentShiftStore{}

	_, err := CreatePermanentShift(context.Background(), store, zap.NewNop(), auth.Identity{}, validPermanentShiftParams())
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.Empty(t, store.inserted)
}

func validShiftParams() ShiftParams {
	return ShiftParams{
		LaunchPointID: "lp-1",
		AmbulanceType: "white",
		Date:          time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     "15:00",
		EndTime:       "23:00",
		ShiftType:     "evening",
		NumberOfSlots: 2,
	}
}

func TestCreateShift(t *testing.T) {
	store := &mockShiftWriteStore{}

	shift, err := CreateShift(context.Background(), store, zap.NewNop(), testActor, validShiftParams())
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, db.ShiftStatusActive, shift.Status)
	assert.Equal(t, "evening", shift.ShiftType)
	assert.Equal(t, "admin-1", shift.CreatedBy)
}

func TestCreateShift_InvalidShiftType(t *testing.T) {
	store := &mockShiftWriteStore{}
	params := validShiftParams()
	params.ShiftType = "brunch"

	_, err := CreateShift(context.Background(), store, zap.NewNop(), testActor, params)
	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestCreateShift_MissingDate(t *testing.T) {
	store := &mockShiftWriteStore{}
	params := validShiftParams()
	params.Date = time.Time{}

	_, err := CreateShift(context.Background(), store, zap.NewNop(), testActor, params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestCancelShift(t *testing.T) {
	store := &mockShiftWriteStore{
		shift: &db.Shift{ID: "shift-1", Status: db.ShiftStatusActive},
	}

	err := CancelShift(context.Background(), store, zap.NewNop(), testActor, "shift-1")
	require.NoError(t, err)
	assert.Equal(t, db.ShiftStatusCanceled, store.updatedStatus)
	assert.Equal(t, "admin-1", store.updatedBy)
}

func TestCancelShift_AlreadyCanceledIsNoOp(t *testing.T) {
	store := &mockShiftWriteStore{
		shift: &db.Shift{ID: "shift-1", Status: db.ShiftStatusCanceled},
	}

	err := CancelShift(context.Background(), store, zap.NewNop(), testActor, "shift-1")
	require.NoError(t, err)
	assert.Zero(t, store.statusUpdates)
}

func TestCancelShift_NotFound(t *testing.T) {
	store := &mockShiftWriteStore{}

	err := CancelShift(context.Background(), store, zap.NewNop(), testActor, "shift-missing")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestCancelShift_UpdateFails(t *testing.T) {
	store := &mockShiftWriteStore{
		shift:     &db.Shift{ID: "shift-1", Status: db.ShiftStatusActive},
		updateErr: errors.New("write failed"),
	}

	err := CancelShift(context.Background(), store, zap.NewNop(), testActor, "shift-1")
	assert.Error(t, err)
}
