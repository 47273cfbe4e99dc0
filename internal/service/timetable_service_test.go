package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facile-ph/enlistment-api/internal/models"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
)

func newTestTimetableService(t *testing.T) *TimetableService {
	t.Helper()
	cat := testCatalog(t)
	selections := NewSelectionService(cat, nil, NewMetricsService(), 0, nil)
	return NewTimetableService(cat, selections, nil)
}

func TestTimetableRender(t *testing.T) {
	svc := newTestTimetableService(t)

	grid, err := svc.Render(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
	))
	require.NoError(t, err)

	require.Len(t, grid.Rows, models.DisplayPeriods)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, grid.Days)
	assert.Equal(t, "0700-0730", grid.Rows[0].Label)
	assert.Equal(t, "2100-2130", grid.Rows[28].Label)

	// M-TH 0800-0930 paints periods 2..4 on Monday and Thursday.
	label := "MATH 21 A (SEC-A105)"
	for _, period := range []int{2, 3, 4} {
		assert.Equal(t, label, grid.Rows[period].Cells[0])
		assert.Equal(t, label, grid.Rows[period].Cells[3])
	}
	assert.Empty(t, grid.Rows[1].Cells[0])
	assert.Empty(t, grid.Rows[2].Cells[1])
}

func TestTimetableRenderDualListingPaintsEachHalf(t *testing.T) {
	svc := newTestTimetableService(t)

	grid, err := svc.Render(blobOf(
		[3]*string{strPtr("Chemistry"), strPtr("CHEM 31: Organic Chemistry"), strPtr("B")},
	))
	require.NoError(t, err)

	assert.Equal(t, "CHEM 31 B (CTC 102)", grid.Rows[2].Cells[0])
	assert.Equal(t, "CHEM 31 B (BEL 305)", grid.Rows[6].Cells[1])
}

func TestTimetableRenderRejectsOverlap(t *testing.T) {
	svc := newTestTimetableService(t)

	_, err := svc.Render(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
		[3]*string{strPtr("English"), strPtr("ENGL 11: Composition"), strPtr("Q")},
	))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrScheduleOverlap.Code, appErrors.FromError(err).Code)
}

func TestTimetableRenderRejectsUnresolvedPick(t *testing.T) {
	svc := newTestTimetableService(t)

	_, err := svc.Render(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("Z")},
	))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnresolvedPick.Code, appErrors.FromError(err).Code)
}

func TestTimetableExportCSV(t *testing.T) {
	svc := newTestTimetableService(t)

	payload, contentType, err := svc.Export(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
	), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, models.DisplayPeriods+1)
	assert.Equal(t, "Time,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[3], "MATH 21 A (SEC-A105)")
}

func TestTimetableExportPDF(t *testing.T) {
	svc := newTestTimetableService(t)

	payload, contentType, err := svc.Export(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
	), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestTimetableExportUnknownFormat(t *testing.T) {
	svc := newTestTimetableService(t)

	_, _, err := svc.Export(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
	), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
