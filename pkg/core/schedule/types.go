package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ShiftType is the closed enumeration of shift categories
type ShiftType string

const (
	ShiftTypeDay            ShiftType = "day"
	ShiftTypeEvening        ShiftType = "evening"
	ShiftTypeNight          ShiftType = "night"
	ShiftTypeReinforcement  ShiftType = "reinforcement"
	ShiftTypeOverTheMachine ShiftType = "over_the_machine"
	ShiftTypeSecurity       ShiftType = "security"
)

// ShiftTypeDisplayOrder is the canonical presentation order of shift types.
// Grouping iterates this order and omits types with no shifts.
var ShiftTypeDisplayOrder = []ShiftType{
	ShiftTypeDay,
	ShiftTypeReinforcement,
	ShiftTypeEvening,
	ShiftTypeNight,
	ShiftTypeOverTheMachine,
	ShiftTypeSecurity,
}

// Valid reports whether t is one of the known shift types
func (t ShiftType) Valid() bool {
	switch t {
	case ShiftTypeDay, ShiftTypeEvening, ShiftTypeNight,
		ShiftTypeReinforcement, ShiftTypeOverTheMachine, ShiftTypeSecurity:
		return true
	}
	return false
}

// ParseShiftType converts a raw string into a ShiftType
func ParseShiftType(s string) (ShiftType, error) {
	t := ShiftType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown shift type %q", s)
	}
	return t, nil
}

// AmbulanceType classifies a vehicle. Unlike ShiftType this is an open set:
// new vehicle types are added operationally, so unknown keys pass through
// normalized rather than failing.
type AmbulanceType string

const (
	AmbulanceTypeWhite     AmbulanceType = "white"
	AmbulanceTypeIntensive AmbulanceType = "intensive"
)

// ambulanceTypeAliases maps legacy keys onto the canonical variants
var ambulanceTypeAliases = map[string]AmbulanceType{
	"atan": AmbulanceTypeIntensive,
}

// NormalizeAmbulanceType lowercases the key, collapses whitespace to
// underscores and resolves known aliases. Unrecognized keys are kept as-is.
func NormalizeAmbulanceType(s string) AmbulanceType {
	key := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "_")
	if canonical, ok := ambulanceTypeAliases[key]; ok {
		return canonical
	}
	return AmbulanceType(key)
}

// Origin distinguishes a shift backed by a stored row from one synthesized
// out of a permanent shift definition at read time.
type Origin interface {
	isOrigin()
}

// Persisted marks a shift backed by a concrete stored instance
type Persisted struct {
	ShiftID string
}

func (Persisted) isOrigin() {}

// Synthesized marks a shift generated from a template for a day with no
// concrete instance. It has no stored row.
type Synthesized struct {
	TemplateID string
}

func (Synthesized) isOrigin() {}

// ScheduledShift is one effective shift for a calendar day, either persisted
// or synthesized. Ownership of the underlying template/instance rows stays
// with the store; materialization copies fields rather than aliasing them.
type ScheduledShift struct {
	Origin        Origin
	LaunchPointID string
	AmbulanceType AmbulanceType
	AmbulanceID   *string
	DriverID      *string
	Date          time.Time
	StartTime     string
	EndTime       string
	ShiftType     ShiftType
	AdultOnly     bool
	NumberOfSlots int
}

// IsSynthesized reports whether the shift was generated from a template
func (s ScheduledShift) IsSynthesized() bool {
	_, ok := s.Origin.(Synthesized)
	return ok
}

// ShiftID returns the backing instance id, or "" for synthesized shifts
func (s ScheduledShift) ShiftID() string {
	if p, ok := s.Origin.(Persisted); ok {
		return p.ShiftID
	}
	return ""
}

// DateKey formats the calendar-date component of t. Comparing these keys
// instead of time.Time values keeps an instance on its calendar day even
// when the stored timestamp crosses a timezone boundary.
func DateKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
