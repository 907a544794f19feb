// Package picker buckets display shifts into the nested structure the
// volunteer-facing picker renders: shift type, then vehicle type, then
// locations. Grouping is pure; identical input yields identical output.
package picker

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
)

// AmbulanceTypeGroup holds the shifts of one vehicle type within a shift
// type, sorted by launch point name.
type AmbulanceTypeGroup struct {
	Key    schedule.AmbulanceType
	Label  string
	Count  int
	Shifts []schedule.DisplayShift
}

// ShiftTypeGroup is the outermost picker bucket
type ShiftTypeGroup struct {
	Type           schedule.ShiftType
	Label          string
	Count          int
	AmbulanceTypes []AmbulanceTypeGroup
}

// Group buckets display shifts into the three-level picker structure.
// Shift types follow the canonical display order with empty types omitted.
// Vehicle-type keys within a shift type sort naturally. Locations within a
// vehicle type sort by launch point name under Hebrew collation, so that
// diacritics and presentation forms order the way a reader expects.
// Counts are instance counts, independent of slot occupancy.
func Group(shifts []schedule.DisplayShift) []ShiftTypeGroup {
	byType := make(map[schedule.ShiftType]map[schedule.AmbulanceType][]schedule.DisplayShift)
	for _, shift := range shifts {
		byAmbulance := byType[shift.ShiftType]
		if byAmbulance == nil {
			byAmbulance = make(map[schedule.AmbulanceType][]schedule.DisplayShift)
			byType[shift.ShiftType] = byAmbulance
		}
		byAmbulance[shift.AmbulanceType] = append(byAmbulance[shift.AmbulanceType], shift)
	}

	collator := collate.New(language.Hebrew)

	var groups []ShiftTypeGroup
	for _, shiftType := range schedule.ShiftTypeDisplayOrder {
		byAmbulance, ok := byType[shiftType]
		if !ok {
			continue
		}

		keys := make([]string, 0, len(byAmbulance))
		for key := range byAmbulance {
			keys = append(keys, string(key))
		}
		sort.Strings(keys)

		total := 0
		ambulanceGroups := make([]AmbulanceTypeGroup, 0, len(keys))
		for _, key := range keys {
			ambulanceType := schedule.AmbulanceType(key)
			bucket := append([]schedule.DisplayShift(nil), byAmbulance[ambulanceType]...)
			sort.SliceStable(bucket, func(i, j int) bool {
				return collator.CompareString(bucket[i].LaunchPoint.Name, bucket[j].LaunchPoint.Name) < 0
			})
			total += len(bucket)
			ambulanceGroups = append(ambulanceGroups, AmbulanceTypeGroup{
				Key:    ambulanceType,
				Label:  AmbulanceTypeLabel(ambulanceType),
				Count:  len(bucket),
				Shifts: bucket,
			})
		}

		groups = append(groups, ShiftTypeGroup{
			Type:           shiftType,
			Label:          ShiftTypeLabel(shiftType),
			Count:          total,
			AmbulanceTypes: ambulanceGroups,
		})
	}

	return groups
}
