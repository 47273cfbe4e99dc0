package models

import "github.com/facile-ph/enlistment-api/internal/schedule"

// Section is one offered class section as published by a department
// catalog. Identity within a department is (SubjectCode, SectionCode).
type Section struct {
	Department  string           `json:"department"`
	SubjectCode string           `json:"subject_code"`
	CourseTitle string           `json:"course_title"`
	SubjectName string           `json:"subject_name"`
	SectionCode string           `json:"section_code"`
	Units       string           `json:"units"`
	RawSchedule string           `json:"raw_schedule"`
	Room        string           `json:"room"`
	Instructor  string           `json:"instructor"`
	Language    string           `json:"language,omitempty"`
	Level       string           `json:"level,omitempty"`
	Slots       schedule.SlotSet `json:"slots"`
	Label       string           `json:"label"`
	Early       bool             `json:"early"`
	Late        bool             `json:"late"`
}

// DualListing reports whether the section meets in two alternative
// room/time combinations under a single catalog row.
func (s Section) DualListing() bool {
	for i := 0; i < len(s.Room); i++ {
		if s.Room[i] == ';' {
			return true
		}
	}
	return false
}

// SplitSection is one half of a dual listing. AlternativeIndex is fixed
// at construction: 0 carries the first ";"-delimited room/time pairing,
// 1 the second. The two halves are not interchangeable.
type SplitSection struct {
	Section
	AlternativeIndex int `json:"alternative_index"`
}

// Subject is a distinct course offered by a department.
type Subject struct {
	Department string `json:"department"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	Name       string `json:"name"`
}

// SectionStatus labels a catalog row during an open-alternatives scan.
type SectionStatus string

const (
	SectionOpen   SectionStatus = "Open"
	SectionClosed SectionStatus = "Closed"
)
