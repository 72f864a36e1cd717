package domain

import "time"

// DayOfWeek keys the weekly schedule. Values follow the pt-BR day names the
// operators use.
type DayOfWeek string

const (
	Monday    DayOfWeek = "segunda"
	Tuesday   DayOfWeek = "terca"
	Wednesday DayOfWeek = "quarta"
	Thursday  DayOfWeek = "quinta"
	Friday    DayOfWeek = "sexta"
	Saturday  DayOfWeek = "sabado"
	Sunday    DayOfWeek = "domingo"
)

// WeekDays lists all days in week order.
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayKeys = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayOfWeekFor returns the schedule key for an ISO date, false when the
// date is malformed.
func DayOfWeekFor(date string) (DayOfWeek, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", false
	}
	return weekdayKeys[t.Weekday()], true
}

// WeeklySchedule maps each day of the week to the staff ids scheduled to
// work on it.
type WeeklySchedule map[DayOfWeek][]string

// EmptyWeeklySchedule returns a schedule with every day present and empty.
func EmptyWeeklySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(WeekDays))
	for _, d := range WeekDays {
		s[d] = []string{}
	}
	return s
}

// Normalized returns a copy of the schedule with all week days present, so
// partial persisted schedules load with a complete shape.
func (s WeeklySchedule) Normalized() WeeklySchedule {
	out := EmptyWeeklySchedule()
	for d, ids := range s {
		if len(ids) > 0 {
			out[d] = append([]string(nil), ids...)
		}
	}
	return out
}
