package catalog

import (
	"github.com/facile-ph/enlistment-api/internal/models"
)

// Catalog is the read-only section catalog for one enlistment period.
// It is built once per load and never mutated afterwards, so it can be
// shared across concurrent sessions without locking.
type Catalog struct {
	sections    []models.Section
	splits      []models.SplitSection
	departments []string

	deptIndex    map[string][]int
	subjectIndex map[string][]models.Subject
}

func newCatalog() *Catalog {
	return &Catalog{
		deptIndex:    make(map[string][]int),
		subjectIndex: make(map[string][]models.Subject),
	}
}

func (c *Catalog) add(sec models.Section) {
	idx := len(c.sections)
	c.sections = append(c.sections, sec)

	if _, seen := c.deptIndex[sec.Department]; !seen {
		c.departments = append(c.departments, sec.Department)
	}
	c.deptIndex[sec.Department] = append(c.deptIndex[sec.Department], idx)

	subjects := c.subjectIndex[sec.Department]
	known := false
	for _, s := range subjects {
		if s.Name == sec.SubjectName {
			known = true
			break
		}
	}
	if !known {
		c.subjectIndex[sec.Department] = append(subjects, models.Subject{
			Department: sec.Department,
			Code:       sec.SubjectCode,
			Title:      sec.CourseTitle,
			Name:       sec.SubjectName,
		})
	}
}

// Size returns the number of catalog sections (dual rows count once).
func (c *Catalog) Size() int {
	return len(c.sections)
}

// Departments lists every department in first-appearance order,
// umbrella groupings included.
func (c *Catalog) Departments() []string {
	out := make([]string, len(c.departments))
	copy(out, c.departments)
	return out
}

// HasDepartment reports whether the department exists in the catalog.
func (c *Catalog) HasDepartment(dept string) bool {
	_, ok := c.deptIndex[dept]
	return ok
}

// Subjects lists the distinct subjects a department offers, in catalog
// order. The boolean is false for an unknown department.
func (c *Catalog) Subjects(dept string) ([]models.Subject, bool) {
	subjects, ok := c.subjectIndex[dept]
	if !ok {
		return nil, false
	}
	out := make([]models.Subject, len(subjects))
	copy(out, subjects)
	return out, true
}

// SectionsByDepartment returns every section a department offers, in
// catalog order.
func (c *Catalog) SectionsByDepartment(dept string) []models.Section {
	indices := c.deptIndex[dept]
	out := make([]models.Section, 0, len(indices))
	for _, i := range indices {
		out = append(out, c.sections[i])
	}
	return out
}

// Sections returns a subject's sections within a department, in
// catalog order. The subject is addressed by its display name
// ("CODE: Title").
func (c *Catalog) Sections(dept, subject string) []models.Section {
	var out []models.Section
	for _, i := range c.deptIndex[dept] {
		if c.sections[i].SubjectName == subject {
			out = append(out, c.sections[i])
		}
	}
	return out
}

// Resolve finds the unique section for a fully specified pick. The
// boolean is false when no catalog row matches.
func (c *Catalog) Resolve(dept, subject, section string) (*models.Section, bool) {
	for _, i := range c.deptIndex[dept] {
		s := c.sections[i]
		if s.SubjectName == subject && s.SectionCode == section {
			out := s
			return &out, true
		}
	}
	return nil, false
}

// Splits returns the SplitSection halves of a dual listing, ordered by
// alternative index. Empty for sections that are not dual listings.
func (c *Catalog) Splits(dept, subject, section string) []models.SplitSection {
	var out []models.SplitSection
	for _, sp := range c.splits {
		if sp.Department == dept && sp.SubjectName == subject && sp.SectionCode == section {
			out = append(out, sp)
		}
	}
	return out
}
