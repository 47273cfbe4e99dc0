package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/facile-ph/enlistment-api/internal/catalog"
)

// SectionRepository reads raw catalog rows from Postgres. It is the
// alternative catalog source to the registrar CSV exports; either way
// the rows feed the same catalog builder.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository creates a new section repository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

type sectionRecord struct {
	Department  string `db:"department"`
	SubjectCode string `db:"subject_code"`
	SectionCode string `db:"section_code"`
	CourseTitle string `db:"course_title"`
	Units       string `db:"units"`
	Time        string `db:"time"`
	Room        string `db:"room"`
	Instructor  string `db:"instructor"`
	Language    string `db:"language"`
	Level       string `db:"level"`
}

// ListAll returns every stored section row in catalog order. The id
// column preserves the registrar's row ordering, which the
// split-section parity rule depends on.
func (r *SectionRepository) ListAll(ctx context.Context) ([]catalog.Row, error) {
	const query = `SELECT department, subject_code, section_code, course_title, units, time, room, instructor, language, level FROM sections ORDER BY id`

	var records []sectionRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	rows := make([]catalog.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, catalog.Row{
			Department:  rec.Department,
			SubjectCode: rec.SubjectCode,
			SectionCode: rec.SectionCode,
			CourseTitle: rec.CourseTitle,
			Units:       rec.Units,
			Time:        rec.Time,
			Room:        rec.Room,
			Instructor:  rec.Instructor,
			Language:    rec.Language,
			Level:       rec.Level,
		})
	}
	return rows, nil
}

// CountByDepartment reports row counts per department, used by the
// readiness probe to sanity-check a loaded catalog against the store.
func (r *SectionRepository) CountByDepartment(ctx context.Context) (map[string]int, error) {
	const query = `SELECT department, COUNT(*) AS total FROM sections GROUP BY department`

	var records []struct {
		Department string `db:"department"`
		Total      int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("count sections: %w", err)
	}

	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Department] = rec.Total
	}
	return counts, nil
}
