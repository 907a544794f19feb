package schedule

import "github.com/nmoyal/shiftpoint/pkg/db"

// DisplaySlot is a shift slot resolved to its occupant. A nil entry in a
// DisplayShift slot list represents unfilled capacity.
type DisplaySlot struct {
	ID      string
	ShiftID string
	User    *db.User
	Status  string
}

// DisplayShift is a request-scoped projection of a scheduled shift with all
// foreign keys resolved. It is rebuilt on every read and never persisted.
// len(Slots) always equals NumberOfSlots.
type DisplayShift struct {
	ScheduledShift
	LaunchPoint db.LaunchPoint
	AreaName    string
	Ambulance   *db.Ambulance
	Driver      *db.User
	Slots       []*DisplaySlot
}
