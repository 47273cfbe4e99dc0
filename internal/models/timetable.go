package models

// DisplayPeriods is the number of timetable rows shown. The final
// 2130-2200 period of the grid has no following boundary to label and
// is dropped from display.
const DisplayPeriods = 29

// TimetableRow is one 30-minute band across the week.
type TimetableRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// Timetable is the rendered weekly grid: DisplayPeriods rows by six
// day columns, each cell blank or the label of the occupying pick.
type Timetable struct {
	Days []string       `json:"days"`
	Rows []TimetableRow `json:"rows"`
}
