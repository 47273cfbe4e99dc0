package dto

import "github.com/facile-ph/enlistment-api/internal/models"

// SelectionBlob is the serialisable form of a selection, exchanged
// with clients and stored in sessions. The three arrays are
// slot-aligned with length NSubjs; null entries are unfilled choices.
type SelectionBlob struct {
	NSubjs int       `json:"nsubjs" validate:"required,min=1,max=10"`
	Depts  []*string `json:"depts" validate:"required"`
	Subjs  []*string `json:"subjs" validate:"required"`
	Sects  []*string `json:"sects" validate:"required"`
}

// Pick states reported back to the caller.
const (
	PickStateEmpty      = "empty"
	PickStateDepartment = "department"
	PickStateSubject    = "subject"
	PickStateResolved   = "resolved"
	PickStateUnresolved = "unresolved"
)

// ResolvedPickItem describes one selection slot after resolution
// against the catalog.
type ResolvedPickItem struct {
	Slot       int             `json:"slot"`
	Department string          `json:"department,omitempty"`
	Subject    string          `json:"subject,omitempty"`
	SectionRef string          `json:"section_ref,omitempty"`
	State      string          `json:"state"`
	Section    *models.Section `json:"section,omitempty"`
}

// ResolveSelectionResponse is the outcome of resolving a blob.
type ResolveSelectionResponse struct {
	Picks      []ResolvedPickItem `json:"picks"`
	Occupied   []int              `json:"occupied"`
	HasOverlap bool               `json:"has_overlap"`
	Blob       SelectionBlob      `json:"blob"`
}

// AlternativesRequest asks for open alternatives. Targets narrows the
// scan to specific active departments/subjects; when empty every
// department-active and subject-active pick is scanned.
type AlternativesRequest struct {
	SelectionBlob
	Targets []string `json:"targets,omitempty"`
}

// Target kinds for an alternatives scan.
const (
	TargetDepartment = "department"
	TargetSubject    = "subject"
)

// TargetAlternatives lists the open sections for one scan target.
type TargetAlternatives struct {
	Target   string           `json:"target"`
	Kind     string           `json:"kind"`
	Sections []models.Section `json:"sections"`
}
