package picker

import "github.com/nmoyal/shiftpoint/pkg/core/schedule"

var shiftTypeLabels = map[schedule.ShiftType]string{
	schedule.ShiftTypeDay:            "בוקר",
	schedule.ShiftTypeReinforcement:  "תגבור",
	schedule.ShiftTypeEvening:        "ערב",
	schedule.ShiftTypeNight:          "לילה",
	schedule.ShiftTypeOverTheMachine: "מעל התקן",
	schedule.ShiftTypeSecurity:       "אבטחה",
}

var ambulanceTypeLabels = map[schedule.AmbulanceType]string{
	schedule.AmbulanceTypeWhite:     "אמבולנס לבן",
	schedule.AmbulanceTypeIntensive: "אמבולנס טיפול נמרץ",
}

// ShiftTypeLabel returns the display label for a shift type
func ShiftTypeLabel(t schedule.ShiftType) string {
	if label, ok := shiftTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// AmbulanceTypeLabel returns the display label for a vehicle type.
// Unrecognized keys fall back to the raw key text after case-insensitive
// normalization, since vehicle types are added operationally.
func AmbulanceTypeLabel(t schedule.AmbulanceType) string {
	if label, ok := ambulanceTypeLabels[t]; ok {
		return label
	}
	if label, ok := ambulanceTypeLabels[schedule.NormalizeAmbulanceType(string(t))]; ok {
		return label
	}
	return string(t)
}
