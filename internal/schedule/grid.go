package schedule

import "fmt"

// The weekly grid runs Monday through Saturday in 30-minute periods
// starting at 07:00. Every timeslot ID is day*PeriodsPerDay + period,
// so valid IDs live in [0, TotalSlots).
const (
	DaysPerWeek   = 6
	PeriodsPerDay = 30
	TotalSlots    = DaysPerWeek * PeriodsPerDay

	baseHour = 7
)

// DayNames maps a weekday index to its display name.
var DayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayOf returns the weekday index of a timeslot ID.
func DayOf(id int) int {
	return id / PeriodsPerDay
}

// PeriodOf returns the zero-based period within the day of a timeslot ID.
func PeriodOf(id int) int {
	return id % PeriodsPerDay
}

// PeriodStart returns the HHMM clock time at which a period begins.
func PeriodStart(period int) int {
	hour := baseHour + period/2
	minute := 30 * (period % 2)
	return hour*100 + minute
}

// PeriodLabel formats a period as its clock range, e.g. "0700-0730".
func PeriodLabel(period int) string {
	return fmt.Sprintf("%04d-%04d", PeriodStart(period), PeriodStart(period+1))
}
