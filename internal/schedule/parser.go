package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// weekdayCodes maps the published day abbreviations to weekday indices.
// WED and SAT appear in some department exports alongside W and S.
var weekdayCodes = map[string]int{
	"M":   0,
	"T":   1,
	"W":   2,
	"WED": 2,
	"TH":  3,
	"F":   4,
	"S":   5,
	"SAT": 5,
}

// dailyPattern substitutes the intersession "D" day token.
const dailyPattern = "M-T-W-TH-F"

// Meeting is a single weekly meeting: an ordered set of weekday indices
// plus a start and end clock time in HHMM form.
type Meeting struct {
	Days  []int
	Start int
	End   int
}

// canonicalDayCodes renders weekday indices back into notation.
var canonicalDayCodes = [DaysPerWeek]string{"M", "T", "W", "TH", "F", "S"}

// String renders the meeting in schedule notation.
func (m Meeting) String() string {
	codes := make([]string, len(m.Days))
	for i, d := range m.Days {
		codes[i] = canonicalDayCodes[d]
	}
	return fmt.Sprintf("%s %04d-%04d", strings.Join(codes, "-"), m.Start, m.End)
}

// Parsed is the outcome of parsing one raw schedule string. NoMeeting
// marks TBA and TUTORIAL sections that occupy no fixed slots.
type Parsed struct {
	NoMeeting bool
	Meetings  []Meeting
}

// MalformedError reports a raw schedule string the parser could not
// understand. Catalog construction treats these rows as no-meeting
// rather than failing the whole load.
type MalformedError struct {
	Raw    string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed schedule %q: %s", e.Raw, e.Reason)
}

func malformed(raw, format string, args ...interface{}) error {
	return &MalformedError{Raw: raw, Reason: fmt.Sprintf(format, args...)}
}

// Parse converts a raw schedule string into its meeting patterns. A ";"
// joins the two halves of a multi-meeting section; each half is parsed
// independently.
func Parse(raw string) (Parsed, error) {
	if strings.Contains(raw, "TUTORIAL") || strings.Contains(raw, "TBA") {
		return Parsed{NoMeeting: true}, nil
	}

	segments := strings.Split(raw, ";")
	meetings := make([]Meeting, 0, len(segments))
	for _, segment := range segments {
		m, err := parseMeeting(strings.TrimSpace(segment))
		if err != nil {
			return Parsed{}, err
		}
		meetings = append(meetings, m)
	}
	return Parsed{Meetings: meetings}, nil
}

func parseMeeting(raw string) (Meeting, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return Meeting{}, malformed(raw, "expected day and time fields")
	}

	dayField := fields[0]
	if dayField == "D" {
		dayField = dailyPattern
	}
	var days []int
	for _, code := range strings.Split(dayField, "-") {
		idx, ok := weekdayCodes[code]
		if !ok {
			return Meeting{}, malformed(raw, "unknown day code %q", code)
		}
		days = append(days, idx)
	}

	bounds := strings.SplitN(fields[1], "-", 2)
	if len(bounds) != 2 {
		return Meeting{}, malformed(raw, "time field %q is not a range", fields[1])
	}
	start, err := parseClock(bounds[0])
	if err != nil {
		return Meeting{}, malformed(raw, "bad start time: %v", err)
	}
	// The end token may carry a parenthetical annotation glued onto the
	// time, e.g. "0930(ENGLISH)". Only the first four characters count.
	endTok := bounds[1]
	if len(endTok) > 4 {
		endTok = endTok[:4]
	}
	end, err := parseClock(endTok)
	if err != nil {
		return Meeting{}, malformed(raw, "bad end time: %v", err)
	}

	return Meeting{Days: days, Start: start, End: end}, nil
}

func parseClock(tok string) (int, error) {
	if len(tok) != 4 {
		return 0, fmt.Errorf("%q is not a 4-digit time", tok)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", tok)
	}
	hour, minute := v/100, v%100
	if hour > 23 {
		return 0, fmt.Errorf("%q has no valid hour", tok)
	}
	if minute != 0 && minute != 30 {
		return 0, fmt.Errorf("%q is not on a half-hour boundary", tok)
	}
	return v, nil
}
