package db

import "time"

// Shift instance statuses
const (
	ShiftStatusActive   = "active"
	ShiftStatusCanceled = "canceled"
)

// Shift slot statuses
const (
	SlotStatusPending   = "pending"
	SlotStatusConfirmed = "confirmed"
	SlotStatusCancelled = "cancelled"
)

// Area represents a geographic dispatch area
type Area struct {
	ID   string
	Name string
}

// LaunchPoint represents a physical dispatch location within an area
type LaunchPoint struct {
	ID        string
	AreaID    string
	Name      string
	CreatedBy string
}

// Ambulance represents a vehicle available for shift assignment
type Ambulance struct {
	ID        string
	Number    string
	Intensive bool
}

// User represents a volunteer profile resolvable by account id
type User struct {
	ID        string
	AccountID string
	FirstName string
	LastName  string
	ImageURL  string
	Address   string
	AreaID    string
	Role      string
}

// PermanentShift is a recurring weekly shift definition.
// WeekDay is 0-6 with 0 = Sunday. Start/end times are wall-clock HH:MM strings
// and are deliberately not ordered: night shifts wrap past midnight.
type PermanentShift struct {
	ID            string
	AreaID        string
	LaunchPointID string
	ShiftType     string
	WeekDay       int
	StartTime     string
	EndTime       string
	AdultOnly     bool
	NumberOfSlots int
	AmbulanceType string
	CreatedBy     string
}

// Shift is a concrete dated shift instance, optionally derived from a
// permanent shift. Nullable references are pointers.
type Shift struct {
	ID               string
	PermanentShiftID *string
	LaunchPointID    string
	AmbulanceType    string
	AmbulanceID      *string
	DriverID         *string
	Date             time.Time
	StartTime        string
	EndTime          string
	ShiftType        string
	AdultOnly        bool
	NumberOfSlots    int
	Status           string
	CreatedBy        string
	UpdatedBy        *string
}

// ShiftSlot is one unit of assignable capacity within a shift instance
type ShiftSlot struct {
	ID        string
	ShiftID   string
	UserID    string
	Status    string
	CreatedAt time.Time
}
