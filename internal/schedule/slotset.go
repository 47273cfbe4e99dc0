package schedule

import "sort"

// SlotSet is a sorted, duplicate-free collection of timeslot IDs.
type SlotSet []int

// NewSlotSet builds a SlotSet from arbitrary IDs, collapsing duplicates.
func NewSlotSet(ids ...int) SlotSet {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make(SlotSet, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether the set holds the given timeslot ID.
func (s SlotSet) Contains(id int) bool {
	i := sort.SearchInts(s, id)
	return i < len(s) && s[i] == id
}

// Intersects reports whether the two sets share at least one timeslot.
func (s SlotSet) Intersects(other SlotSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			return true
		case s[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// Union merges two sets into a new one.
func (s SlotSet) Union(other SlotSet) SlotSet {
	if len(s) == 0 {
		return append(SlotSet(nil), other...)
	}
	if len(other) == 0 {
		return append(SlotSet(nil), s...)
	}
	out := make(SlotSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		default:
			out = append(out, other[j])
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return out
}

// Compatible reports whether a candidate set is free of conflicts with
// the occupied set. Sharing even a single period is a conflict.
func Compatible(occupied, candidate SlotSet) bool {
	return !occupied.Intersects(candidate)
}

// HasOverlap reports whether any two of the given sets intersect. It
// compares the size of the combined union against the sum of the
// individual sizes, so overlap is detected across any number of sets.
func HasOverlap(sets ...SlotSet) bool {
	total := 0
	var union SlotSet
	for _, s := range sets {
		total += len(s)
		union = union.Union(s)
	}
	return len(union) < total
}
