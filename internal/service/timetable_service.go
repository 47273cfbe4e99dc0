package service

import (
	"go.uber.org/zap"

	"github.com/facile-ph/enlistment-api/internal/catalog"
	"github.com/facile-ph/enlistment-api/internal/dto"
	"github.com/facile-ph/enlistment-api/internal/models"
	"github.com/facile-ph/enlistment-api/internal/schedule"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
	"github.com/facile-ph/enlistment-api/pkg/export"
)

// Export formats accepted by the timetable exporter.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// TimetableService renders a resolved selection as a weekly grid and
// exports it.
type TimetableService struct {
	catalog    *catalog.Catalog
	selections *SelectionService
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

func NewTimetableService(cat *catalog.Catalog, selections *SelectionService, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		catalog:    cat,
		selections: selections,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// Render resolves a blob and paints the weekly grid. Every pick that
// names a section must resolve, and the resolved sections must be
// mutually conflict-free. Later picks overwrite earlier ones cell by
// cell, which cannot occur on a conflict-free selection and is the
// defined outcome otherwise.
func (s *TimetableService) Render(blob dto.SelectionBlob) (*models.Timetable, error) {
	resolved, err := s.selections.ResolveStrict(blob)
	if err != nil {
		return nil, err
	}

	sets := make([]schedule.SlotSet, 0, len(resolved))
	for _, rp := range resolved {
		if rp.Resolved != nil {
			sets = append(sets, rp.Resolved.Slots)
		}
	}
	if schedule.HasOverlap(sets...) {
		return nil, appErrors.ErrScheduleOverlap
	}

	cells := make(map[int]string)
	for _, rp := range resolved {
		if rp.Resolved == nil {
			continue
		}
		sec := rp.Resolved
		if sec.DualListing() {
			// Each half paints its own slots with its own room.
			for _, half := range s.catalog.Splits(sec.Department, sec.SubjectName, sec.SectionCode) {
				for _, slot := range half.Slots {
					cells[slot] = half.Label
				}
			}
			continue
		}
		for _, slot := range sec.Slots {
			cells[slot] = sec.Label
		}
	}

	grid := &models.Timetable{Days: schedule.DayNames[:]}
	for period := 0; period < models.DisplayPeriods; period++ {
		row := models.TimetableRow{
			Label: schedule.PeriodLabel(period),
			Cells: make([]string, schedule.DaysPerWeek),
		}
		for day := 0; day < schedule.DaysPerWeek; day++ {
			row.Cells[day] = cells[day*schedule.PeriodsPerDay+period]
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid, nil
}

// Export renders the timetable in the requested format. CSV and PDF
// share the same grid shape: a Time column followed by the six days.
func (s *TimetableService) Export(blob dto.SelectionBlob, format string) ([]byte, string, error) {
	grid, err := s.Render(blob)
	if err != nil {
		return nil, "", err
	}

	data := export.Dataset{Headers: append([]string{"Time"}, grid.Days...)}
	for _, row := range grid.Rows {
		record := map[string]string{"Time": row.Label}
		for i, day := range grid.Days {
			record[day] = row.Cells[i]
		}
		data.Rows = append(data.Rows, record)
	}

	switch format {
	case FormatCSV:
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv timetable")
		}
		return payload, "text/csv", nil
	case FormatPDF:
		payload, err := s.pdf.Render(data, "Weekly Timetable", true)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf timetable")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}
