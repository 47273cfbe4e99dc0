package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// CSVLoader reads the departments index plus one schedule export per
// department, the format published by the registrar.
type CSVLoader struct {
	departmentsPath string
	schedulesDir    string
	logger          *zap.Logger
}

// NewCSVLoader constructs a loader rooted at the given files.
func NewCSVLoader(departmentsPath, schedulesDir string, logger *zap.Logger) *CSVLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVLoader{departmentsPath: departmentsPath, schedulesDir: schedulesDir, logger: logger}
}

// department pairs the index file's short name (also the schedule file
// stem) with the display name used everywhere else.
type department struct {
	ShortName string
	FullName  string
}

// Load returns every catalog row in departments-file order. A missing
// or unreadable schedule file fails the load; malformed cells inside a
// file are the builder's problem, not the loader's.
func (l *CSVLoader) Load() ([]Row, error) {
	departments, err := l.loadDepartments()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, dept := range departments {
		path := filepath.Join(l.schedulesDir, dept.ShortName+".csv")
		deptRows, err := l.loadSchedules(path, dept.FullName)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		rows = append(rows, deptRows...)
	}

	l.logger.Info("catalog rows loaded",
		zap.Int("departments", len(departments)),
		zap.Int("rows", len(rows)))
	return rows, nil
}

func (l *CSVLoader) loadDepartments() ([]department, error) {
	f, err := os.Open(l.departmentsPath)
	if err != nil {
		return nil, fmt.Errorf("open departments index: %w", err)
	}
	defer f.Close()

	records, header, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("read departments index: %w", err)
	}

	short, ok := header["short_name"]
	if !ok {
		return nil, fmt.Errorf("departments index missing short_name column")
	}
	full, ok := header["full_name"]
	if !ok {
		return nil, fmt.Errorf("departments index missing full_name column")
	}

	departments := make([]department, 0, len(records))
	for _, rec := range records {
		departments = append(departments, department{
			ShortName: strings.TrimSpace(rec[short]),
			FullName:  strings.TrimSpace(rec[full]),
		})
	}
	return departments, nil
}

func (l *CSVLoader) loadSchedules(path, deptName string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, header, err := readAll(f)
	if err != nil {
		return nil, err
	}

	field := func(rec []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Department:  deptName,
			SubjectCode: field(rec, "subject code"),
			SectionCode: field(rec, "section"),
			CourseTitle: field(rec, "course title"),
			Units:       field(rec, "units"),
			Time:        field(rec, "time"),
			Room:        field(rec, "room"),
			Instructor:  field(rec, "instructor"),
			Language:    field(rec, "language"),
			Level:       field(rec, "level"),
		})
	}
	return rows, nil
}

// readAll parses a CSV stream into records plus a lower-cased header
// index.
func readAll(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	header := make(map[string]int, len(head))
	for i, name := range head {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return records, header, nil
}
