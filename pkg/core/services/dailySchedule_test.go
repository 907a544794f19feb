package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// mockDailyScheduleStore implements DailyScheduleStore for testing
type mockDailyScheduleStore struct {
	mockEnrichStore

	templates []db.PermanentShift
	instances []db.Shift

	requestedWeekDay int
	templatesErr     error
	instancesErr     error
}

func (m *mockDailyScheduleStore) GetPermanentShiftsByWeekDay(ctx context.Context, weekDay int) ([]db.PermanentShift, error) {
	m.requestedWeekDay = weekDay
	if m.templatesErr != nil {
		return nil, m.templatesErr
	}
	var matched []db.PermanentShift
	for _, tmpl := range m.templates {
		if tmpl.WeekDay == weekDay {
			matched = append(matched, tmpl)
		}
	}
	return matched, nil
}

func (m *mockDailyScheduleStore) GetAllPermanentShifts(ctx context.Context) ([]db.PermanentShift, error) {
	if m.templatesErr != nil {
		return nil, m.templatesErr
	}
	return m.templates, nil
}

func (m *mockDailyScheduleStore) GetShiftsByDate(ctx context.Context, date time.Time) ([]db.Shift, error) {
	if m.instancesErr != nil {
		return nil, m.instancesErr
	}
	var matched []db.Shift
	for _, inst := range m.instances {
		if schedule.DateKey(inst.Date) == schedule.DateKey(date) {
			matched = append(matched, inst)
		}
	}
	return matched, nil
}

func (m *mockDailyScheduleStore) GetShiftsByDateRange(ctx context.Context, start, end time.Time) ([]db.Shift, error) {
	if m.instancesErr != nil {
		return nil, m.instancesErr
	}
	return m.instances, nil
}

// 2025-01-07 is a Tuesday (week day 2)
var scheduleDate = time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

func nightTemplate(id, launchPointID string, weekDay int) db.PermanentShift {
	return db.PermanentShift{
		ID:            id,
		AreaID:        "area-1",
		LaunchPointID: launchPointID,
		ShiftType:     "night",
		WeekDay:       weekDay,
		StartTime:     "23:00",
		EndTime:       "07:00",
		NumberOfSlots: 2,
		AmbulanceType: "white",
	}
}

func TestDailySchedule_SynthesizedNightShiftWithEmptySlots(t *testing.T) {
	store := &mockDailyScheduleStore{
		mockEnrichStore: mockEnrichStore{
			launchPoints: []db.LaunchPoint{{ID: "lp-1", AreaID: "area-1", Name: "תחנה א"}},
			areaNames:    map[string]string{"area-1": "מרכז"},
		},
		templates: []db.PermanentShift{nightTemplate("tmpl-1", "lp-1", 2)},
	}

	display, err := DailySchedule(context.Background(), store, zap.NewNop(), scheduleDate, schedule.CanceledSuppressesTemplate)
	require.NoError(t, err)
	require.Len(t, display, 1)

	assert.Equal(t, 2, store.requestedWeekDay)

	shift := display[0]
	assert.True(t, shift.IsSynthesized())
	assert.Equal(t, schedule.ShiftTypeNight, shift.ShiftType)
	assert.Equal(t, "תחנה א", shift.LaunchPoint.Name)
	assert.Equal(t, "מרכז", shift.AreaName)
	require.Len(t, shift.Slots, 2)
	assert.Nil(t, shift.Slots[0])
	assert.Nil(t, shift.Slots[1])
}

func TestDailySchedule_InstanceOverridesAndCarriesSlots(t *testing.T) {
	store := &mockDailyScheduleStore{
		mockEnrichStore: mockEnrichStore{
			launchPoints: []db.LaunchPoint{{ID: "lp-1", AreaID: "area-1", Name: "תחנה א"}},
			areaNames:    map[string]string{"area-1": "מרכז"},
			users:        map[string]*db.User{"vol-1": {AccountID: "vol-1", FirstName: "דנה"}},
			slotsByShift: map[string][]db.ShiftSlot{
				"shift-1": {{ID: "slot-1", ShiftID: "shift-1", UserID: "vol-1", Status: db.SlotStatusConfirmed}},
			},
		},
		templates: []db.PermanentShift{nightTemplate("tmpl-1", "lp-1", 2)},
		instances: []db.Shift{
			{
				ID:            "shift-1",
				LaunchPointID: "lp-1",
				AmbulanceType: "white",
				Date:          scheduleDate,
				StartTime:     "23:00",
				EndTime:       "07:00",
				ShiftType:     "night",
				NumberOfSlots: 2,
				Status:        db.ShiftStatusActive,
			},
		},
	}

	display, err := DailySchedule(context.Background(), store, zap.NewNop(), scheduleDate, schedule.CanceledSuppressesTemplate)
	require.NoError(t, err)
	require.Len(t, display, 1)

	shift := display[0]
	assert.Equal(t, schedule.Persisted{ShiftID: "shift-1"}, shift.Origin)
	require.Len(t, shift.Slots, 2)
	require.NotNil(t, shift.Slots[0])
	assert.Equal(t, "דנה", shift.Slots[0].User.FirstName)
	assert.Nil(t, shift.Slots[1])
}

func TestDailySchedule_TemplateFetchFails(t *testing.T) {
	store := &mockDailyScheduleStore{templatesErr: errors.New("store down")}

	_, err := DailySchedule(context.Background(), store, zap.NewNop(), scheduleDate, schedule.CanceledSuppressesTemplate)
	assert.Error(t, err)
}

func TestRangeSchedule(t *testing.T) {
	store := &mockDailyScheduleStore{
		templates: []db.PermanentShift{nightTemplate("tmpl-1", "lp-1", 2)},
	}

	scheduled, err := RangeSchedule(context.Background(), store, zap.NewNop(), scheduleDate, scheduleDate.AddDate(0, 0, 13), schedule.CanceledSuppressesTemplate)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	assert.True(t, scheduled[0].IsSynthesized())
	assert.True(t, scheduled[1].IsSynthesized())
}

func TestPickerDay_GroupsByShiftAndVehicleType(t *testing.T) {
	store := &mockDailyScheduleStore{
		mockEnrichStore: mockEnrichStore{
			launchPoints: []db.LaunchPoint{
				{ID: "lp-1", AreaID: "area-1", Name: "בבא"},
				{ID: "lp-2", AreaID: "area-1", Name: "אבא"},
			},
			areaNames: map[string]string{"area-1": "מרכז"},
		},
		templates: []db.PermanentShift{
			nightTemplate("tmpl-1", "lp-1", 2),
			nightTemplate("tmpl-2", "lp-2", 2),
		},
	}

	groups, err := PickerDay(context.Background(), store, zap.NewNop(), scheduleDate, schedule.CanceledSuppressesTemplate)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, schedule.ShiftTypeNight, groups[0].Type)
	assert.Equal(t, "לילה", groups[0].Label)
	assert.Equal(t, 2, groups[0].Count)

	require.Len(t, groups[0].AmbulanceTypes, 1)
	bucket := groups[0].AmbulanceTypes[0]
	assert.Equal(t, schedule.AmbulanceTypeWhite, bucket.Key)
	require.Len(t, bucket.Shifts, 2)
	assert.Equal(t, "אבא", bucket.Shifts[0].LaunchPoint.Name)
	assert.Equal(t, "בבא", bucket.Shifts[1].LaunchPoint.Name)
}
