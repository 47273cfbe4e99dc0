package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/facile-ph/enlistment-api/internal/models"
	"github.com/facile-ph/enlistment-api/internal/schedule"
)

// Row is one raw record from a department catalog export.
type Row struct {
	Department  string
	SubjectCode string
	SectionCode string
	CourseTitle string
	Units       string
	Time        string
	Room        string
	Instructor  string
	Language    string
	Level       string
}

const (
	// Sections touching the first three periods of any day (before
	// 0830) get the early flag; the last nine (1730 onward) the late
	// flag. Display emphasis only, never conflict logic.
	earlyPeriodCount = 3
	latePeriodStart  = schedule.PeriodsPerDay - 9
)

// Build assembles the catalog from raw rows. Every row becomes one
// Section in input order; rows whose schedule string cannot be parsed
// are kept as no-meeting sections rather than rejected, so one bad row
// never sinks a catalog load. Dual room/time listings are additionally
// expanded into SplitSection pairs for the renderer.
func Build(rows []Row, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := newCatalog()
	for _, row := range rows {
		c.add(buildSection(row, logger))
	}

	for _, sec := range c.sections {
		if !sec.DualListing() {
			continue
		}
		for alt := 0; alt < 2; alt++ {
			split, err := splitSection(sec, alt)
			if err != nil {
				logger.Warn("skipping unsplittable dual listing",
					zap.String("subject", sec.SubjectCode),
					zap.String("section", sec.SectionCode),
					zap.Error(err))
				continue
			}
			c.splits = append(c.splits, split)
		}
	}

	return c
}

func buildSection(row Row, logger *zap.Logger) models.Section {
	slots, err := schedule.Encode(row.Time)
	if err != nil {
		logger.Warn("treating section as no-meeting",
			zap.String("subject", row.SubjectCode),
			zap.String("section", row.SectionCode),
			zap.String("time", row.Time),
			zap.Error(err))
		slots = nil
	}

	return models.Section{
		Department:  UmbrellaDepartment(row.SubjectCode, row.Department),
		SubjectCode: row.SubjectCode,
		CourseTitle: row.CourseTitle,
		SubjectName: subjectName(row.SubjectCode, row.CourseTitle),
		SectionCode: row.SectionCode,
		Units:       row.Units,
		RawSchedule: row.Time,
		Room:        row.Room,
		Instructor:  row.Instructor,
		Language:    row.Language,
		Level:       row.Level,
		Slots:       slots,
		Label:       sectionLabel(row.SubjectCode, row.SectionCode, row.Room),
		Early:       touchesBand(slots, 0, earlyPeriodCount),
		Late:        touchesBand(slots, latePeriodStart, schedule.PeriodsPerDay),
	}
}

// splitSection carves one half out of a dual listing. The two halves
// keep their construction-time alternative index; they are never
// re-derived from list position afterwards.
func splitSection(sec models.Section, alt int) (models.SplitSection, error) {
	rooms := strings.Split(sec.Room, ";")
	times := strings.Split(sec.RawSchedule, ";")
	if len(rooms) < 2 || len(times) < 2 {
		return models.SplitSection{}, fmt.Errorf("dual room listing %q has no matching schedule halves", sec.Room)
	}

	room := strings.TrimSpace(rooms[alt])
	rawTime := strings.TrimSpace(stripAnnotation(times[alt]))
	slots, err := schedule.Encode(rawTime)
	if err != nil {
		return models.SplitSection{}, err
	}

	half := sec
	half.Room = room
	half.RawSchedule = rawTime
	half.Slots = slots
	half.Label = sectionLabel(sec.SubjectCode, sec.SectionCode, room)
	half.Early = touchesBand(slots, 0, earlyPeriodCount)
	half.Late = touchesBand(slots, latePeriodStart, schedule.PeriodsPerDay)

	return models.SplitSection{Section: half, AlternativeIndex: alt}, nil
}

// stripAnnotation cuts a trailing parenthetical off a schedule half.
func stripAnnotation(raw string) string {
	if i := strings.IndexByte(raw, '('); i >= 0 {
		return raw[:i]
	}
	return raw
}

func subjectName(code, title string) string {
	return code + ": " + title
}

func sectionLabel(code, section, room string) string {
	return code + " " + section + " (" + room + ")"
}

func touchesBand(slots schedule.SlotSet, from, to int) bool {
	for _, id := range slots {
		if p := schedule.PeriodOf(id); p >= from && p < to {
			return true
		}
	}
	return false
}
