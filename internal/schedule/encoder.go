package schedule

// periodIndex converts an HHMM clock time to its zero-based period. An
// on-the-hour time starts the first half of that hour pair, a half-hour
// time the second. Changing this arithmetic shifts every encoded class
// by one slot, so it mirrors the published grid exactly.
func periodIndex(hhmm int) int {
	index := 2 * (hhmm/100 - baseHour)
	if hhmm%100 != 0 {
		index++
	}
	return index
}

// Slots encodes one meeting into the timeslot IDs it occupies: the
// cross product of its weekdays and the half-open period range
// [start, end).
func (m Meeting) Slots() (SlotSet, error) {
	start := periodIndex(m.Start)
	end := periodIndex(m.End)
	if end <= start {
		return nil, malformed(m.String(), "meeting ends on or before its start")
	}
	if start < 0 || end > PeriodsPerDay {
		return nil, malformed(m.String(), "meeting falls outside the 0700-2200 grid")
	}

	ids := make([]int, 0, len(m.Days)*(end-start))
	for _, day := range m.Days {
		for p := start; p < end; p++ {
			ids = append(ids, day*PeriodsPerDay+p)
		}
	}
	return NewSlotSet(ids...), nil
}

// Slots unions the encoded sets of every meeting in the parse result.
// No-meeting sections encode to the empty set.
func (p Parsed) Slots() (SlotSet, error) {
	if p.NoMeeting {
		return nil, nil
	}
	var out SlotSet
	for _, m := range p.Meetings {
		slots, err := m.Slots()
		if err != nil {
			return nil, err
		}
		out = out.Union(slots)
	}
	return out, nil
}

// Encode parses and encodes a raw schedule string in one step.
func Encode(raw string) (SlotSet, error) {
	parsed, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return parsed.Slots()
}
