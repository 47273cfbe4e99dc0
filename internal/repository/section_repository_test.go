package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSectionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSectionRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	rows := sqlmock.NewRows([]string{"department", "subject_code", "section_code", "course_title", "units", "time", "room", "instructor", "language", "level"}).
		AddRow("Mathematics", "MATH 21", "A", "Calculus I", "3", "M-TH 0800-0930", "SEC-A105", "CRUZ, J", "ENG", "U").
		AddRow("English", "ENGL 11", "Q", "Composition", "3", "TBA", "TBA", "TBA", "ENG", "U")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT department, subject_code, section_code, course_title, units, time, room, instructor, language, level FROM sections ORDER BY id")).
		WillReturnRows(rows)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "MATH 21", list[0].SubjectCode)
	assert.Equal(t, "M-TH 0800-0930", list[0].Time)
	assert.Equal(t, "English", list[1].Department)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryCountByDepartment(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT department, COUNT(*) AS total FROM sections GROUP BY department")).
		WillReturnRows(sqlmock.NewRows([]string{"department", "total"}).
			AddRow("Mathematics", 12).
			AddRow("English", 7))

	counts, err := repo.CountByDepartment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Mathematics": 12, "English": 7}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
