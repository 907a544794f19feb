package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

// mockSearchStore implements SearchStore and DriverShiftsStore for testing
type mockSearchStore struct {
	users     []db.User
	shifts    []db.Shift
	queries   []string
	searchErr error
	shiftsErr error
}

func (m *mockSearchStore) GetUsersByPartialName(ctx context.Context, query string) ([]db.User, error) {
	m.queries = append(m.queries, query)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	var matched []db.User
	for _, user := range m.users {
		if strings.Contains(user.FirstName+" "+user.LastName, query) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func (m *mockSearchStore) GetShiftsByDriver(ctx context.Context, driverID string) ([]db.Shift, error) {
	if m.shiftsErr != nil {
		return nil, m.shiftsErr
	}
	return m.shifts, nil
}

func TestSearchUsers(t *testing.T) {
	store := &mockSearchStore{
		users: []db.User{
			{AccountID: "acct-1", FirstName: "דנה", LastName: "כהן"},
			{AccountID: "acct-2", FirstName: "יוסי", LastName: "לוי"},
		},
	}

	users, err := SearchUsers(context.Background(), store, zap.NewNop(), "דנה")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "acct-1", users[0].AccountID)
}

func TestSearchUsers_ShortQuerySkipsStore(t *testing.T) {
	store := &mockSearchStore{}

	users, err := SearchUsers(context.Background(), store, zap.NewNop(), "ד")
	require.NoError(t, err)
	assert.Nil(t, users)
	assert.Empty(t, store.queries)
}

func TestSearchUsers_TrimsWhitespace(t *testing.T) {
	store := &mockSearchStore{
		users: []db.User{{AccountID: "acct-1", FirstName: "דנה"}},
	}

	users, err := SearchUsers(context.Background(), store, zap.NewNop(), "  דנה  ")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, store.queries, 1)
	assert.Equal(t, "דנה", store.queries[0])
}

func TestSearchUsers_StoreError(t *testing.T) {
	store := &mockSearchStore{searchErr: errors.New("directory down")}

	_, err := SearchUsers(context.Background(), store, zap.NewNop(), "דנה")
	assert.Error(t, err)
}

func TestShiftsByDriver_ExcludesCanceled(t *testing.T) {
	date := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	store := &mockSearchStore{
		shifts: []db.Shift{
			{ID: "shift-1", Date: date, Status: db.ShiftStatusActive},
			{ID: "shift-2", Date: date, Status: db.ShiftStatusCanceled},
			{ID: "shift-3", Date: date, Status: db.ShiftStatusActive},
		},
	}

	shifts, err := ShiftsByDriver(context.Background(), store, zap.NewNop(), "acct-1")
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "shift-1", shifts[0].ID)
	assert.Equal(t, "shift-3", shifts[1].ID)
}

func TestShiftsByDriver_MissingID(t *testing.T) {
	store := &mockSearchStore{}

	_, err := ShiftsByDriver(context.Background(), store, zap.NewNop(), "")
	require.Error(t, err)

	var fieldErr FieldError
	assert.ErrorAs(t, err, &fieldErr)
}
