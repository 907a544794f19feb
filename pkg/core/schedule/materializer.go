package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/nmoyal/shiftpoint/pkg/db"
)

// OverridePolicy controls whether a canceled concrete instance still
// suppresses the template-synthesized fallback for its launch point and day.
type OverridePolicy int

const (
	// CanceledSuppressesTemplate keeps the template fallback hidden when the
	// only concrete instance for the launch point and day is canceled.
	CanceledSuppressesTemplate OverridePolicy = iota

	// CanceledRestoresTemplate lets the template fallback reappear once every
	// concrete instance for the launch point and day is canceled.
	CanceledRestoresTemplate
)

// ParseOverridePolicy converts the config string form of the policy
func ParseOverridePolicy(s string) (OverridePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "suppress":
		return CanceledSuppressesTemplate, nil
	case "restore":
		return CanceledRestoresTemplate, nil
	}
	return 0, fmt.Errorf("unknown override policy %q", s)
}

var rruleWeekdays = []rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// Materialize produces the effective set of shifts for the inclusive date
// range [from, to]: every active concrete instance verbatim, plus a
// synthesized shift for each template occurrence whose launch point has no
// overriding instance that day. Canceled instances never appear in the
// output; whether they still count as an override is decided by policy.
// Output is sorted by date, then start time.
func Materialize(templates []db.PermanentShift, instances []db.Shift, from, to time.Time, policy OverridePolicy) ([]ScheduledShift, error) {
	start := midnightUTC(from)
	end := midnightUTC(to)
	if end.Before(start) {
		return nil, fmt.Errorf("materialize: range end %s before start %s", DateKey(to), DateKey(from))
	}

	inRange := func(key string) bool {
		return key >= DateKey(start) && key <= DateKey(end)
	}

	// Overridden launch points per day. Depending on policy a canceled
	// instance may or may not claim the launch point.
	overridden := make(map[string]map[string]bool)
	for _, inst := range instances {
		if inst.Status == db.ShiftStatusCanceled && policy == CanceledRestoresTemplate {
			continue
		}
		key := DateKey(inst.Date)
		if !inRange(key) {
			continue
		}
		if overridden[key] == nil {
			overridden[key] = make(map[string]bool)
		}
		overridden[key][inst.LaunchPointID] = true
	}

	var out []ScheduledShift
	for _, inst := range instances {
		if inst.Status == db.ShiftStatusCanceled {
			continue
		}
		if !inRange(DateKey(inst.Date)) {
			continue
		}
		out = append(out, fromInstance(inst))
	}

	for _, tmpl := range templates {
		if tmpl.WeekDay < 0 || tmpl.WeekDay > 6 {
			return nil, fmt.Errorf("materialize: template %s has week day %d out of range", tmpl.ID, tmpl.WeekDay)
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[tmpl.WeekDay]},
			Dtstart:   start,
			Until:     end,
		})
		if err != nil {
			return nil, fmt.Errorf("materialize: building recurrence for template %s: %w", tmpl.ID, err)
		}
		for _, day := range rule.All() {
			if overridden[DateKey(day)][tmpl.LaunchPointID] {
				continue
			}
			out = append(out, fromTemplate(tmpl, day))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := DateKey(out[i].Date), DateKey(out[j].Date)
		if di != dj {
			return di < dj
		}
		return clockKey(out[i].StartTime) < clockKey(out[j].StartTime)
	})

	return out, nil
}

// MaterializeDay is Materialize for a single calendar date
func MaterializeDay(templates []db.PermanentShift, instances []db.Shift, date time.Time, policy OverridePolicy) ([]ScheduledShift, error) {
	return Materialize(templates, instances, date, date, policy)
}

func fromInstance(inst db.Shift) ScheduledShift {
	return ScheduledShift{
		Origin:        Persisted{ShiftID: inst.ID},
		LaunchPointID: inst.LaunchPointID,
		AmbulanceType: NormalizeAmbulanceType(inst.AmbulanceType),
		AmbulanceID:   inst.AmbulanceID,
		DriverID:      inst.DriverID,
		Date:          inst.Date,
		StartTime:     inst.StartTime,
		EndTime:       inst.EndTime,
		ShiftType:     ShiftType(inst.ShiftType),
		AdultOnly:     inst.AdultOnly,
		NumberOfSlots: inst.NumberOfSlots,
	}
}

func fromTemplate(tmpl db.PermanentShift, day time.Time) ScheduledShift {
	return ScheduledShift{
		Origin:        Synthesized{TemplateID: tmpl.ID},
		LaunchPointID: tmpl.LaunchPointID,
		AmbulanceType: NormalizeAmbulanceType(tmpl.AmbulanceType),
		Date:          day,
		StartTime:     tmpl.StartTime,
		EndTime:       tmpl.EndTime,
		ShiftType:     ShiftType(tmpl.ShiftType),
		AdultOnly:     tmpl.AdultOnly,
		NumberOfSlots: tmpl.NumberOfSlots,
	}
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// clockKey left-pads a wall-clock H:MM string so that lexicographic
// comparison matches chronological order within a day.
func clockKey(clock string) string {
	if len(clock) == 4 {
		return "0" + clock
	}
	return clock
}
