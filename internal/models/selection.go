package models

import "github.com/facile-ph/enlistment-api/internal/schedule"

// Pick is one row of a user's selection. Department alone means the
// user is browsing that department; department plus subject narrows to
// a subject; all three identify a concrete section.
type Pick struct {
	Department string `json:"department,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Section    string `json:"section,omitempty"`
}

// DepartmentActive reports browse mode: only the department is chosen.
func (p Pick) DepartmentActive() bool {
	return p.Department != "" && p.Subject == ""
}

// SubjectActive reports that a subject is chosen without a section.
func (p Pick) SubjectActive() bool {
	return p.Department != "" && p.Subject != "" && p.Section == ""
}

// Complete reports that the pick names a concrete section.
func (p Pick) Complete() bool {
	return p.Department != "" && p.Subject != "" && p.Section != ""
}

// Selection is the ordered list of a user's picks, slot 1..N.
type Selection struct {
	Picks []Pick `json:"picks"`
}

// ResolvedPick pairs a pick with the catalog section it names. Resolved
// is nil when the pick is incomplete or references a section absent
// from the current catalog.
type ResolvedPick struct {
	Pick     Pick     `json:"pick"`
	Resolved *Section `json:"section,omitempty"`
}

// Occupied unions the encoded schedules of all resolved picks.
func Occupied(picks []ResolvedPick) schedule.SlotSet {
	var out schedule.SlotSet
	for _, p := range picks {
		if p.Resolved != nil {
			out = out.Union(p.Resolved.Slots)
		}
	}
	return out
}
