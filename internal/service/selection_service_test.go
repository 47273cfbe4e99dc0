package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facile-ph/enlistment-api/internal/catalog"
	"github.com/facile-ph/enlistment-api/internal/dto"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.Build([]catalog.Row{
		{Department: "Mathematics", SubjectCode: "MATH 21", SectionCode: "A", CourseTitle: "Calculus I", Time: "M-TH 0800-0930", Room: "SEC-A105"},
		{Department: "Mathematics", SubjectCode: "MATH 21", SectionCode: "B", CourseTitle: "Calculus I", Time: "T-F 0800-0930", Room: "SEC-A106"},
		{Department: "English", SubjectCode: "ENGL 11", SectionCode: "Q", CourseTitle: "Composition", Time: "M-TH 0900-1030", Room: "BEL 104"},
		{Department: "English", SubjectCode: "ENGL 11", SectionCode: "R", CourseTitle: "Composition", Time: "T-F 1300-1430", Room: "BEL 105"},
		{Department: "Chemistry", SubjectCode: "CHEM 31", SectionCode: "B", CourseTitle: "Organic Chemistry", Time: "M 0800-0930;T 1000-1130", Room: "CTC 102;BEL 305"},
	}, nil)
}

func newTestSelectionService(t *testing.T) *SelectionService {
	t.Helper()
	return NewSelectionService(testCatalog(t), nil, NewMetricsService(), 0, nil)
}

func strPtr(s string) *string { return &s }

func blobOf(picks ...[3]*string) dto.SelectionBlob {
	blob := dto.SelectionBlob{NSubjs: len(picks)}
	for _, p := range picks {
		blob.Depts = append(blob.Depts, p[0])
		blob.Subjs = append(blob.Subjs, p[1])
		blob.Sects = append(blob.Sects, p[2])
	}
	return blob
}

func TestDecodeBlobRejectsLengthMismatch(t *testing.T) {
	svc := newTestSelectionService(t)

	blob := dto.SelectionBlob{
		NSubjs: 2,
		Depts:  []*string{strPtr("Mathematics")},
		Subjs:  []*string{nil},
		Sects:  []*string{nil},
	}
	_, err := svc.DecodeBlob(blob)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrImportFormat.Code, appErrors.FromError(err).Code)
}

func TestDecodeBlobRejectsTooManyPicks(t *testing.T) {
	svc := newTestSelectionService(t)

	blob := dto.SelectionBlob{NSubjs: 11}
	for i := 0; i < 11; i++ {
		blob.Depts = append(blob.Depts, nil)
		blob.Subjs = append(blob.Subjs, nil)
		blob.Sects = append(blob.Sects, nil)
	}
	_, err := svc.DecodeBlob(blob)
	assert.Error(t, err)
}

func TestResolveCompatibleSelection(t *testing.T) {
	svc := newTestSelectionService(t)

	resp, err := svc.Resolve(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
		[3]*string{strPtr("English"), strPtr("ENGL 11: Composition"), strPtr("R")},
	))
	require.NoError(t, err)

	require.Len(t, resp.Picks, 2)
	assert.Equal(t, dto.PickStateResolved, resp.Picks[0].State)
	assert.Equal(t, dto.PickStateResolved, resp.Picks[1].State)
	assert.False(t, resp.HasOverlap)
	// M-TH 0800-0930 plus T-F 1300-1430.
	assert.Equal(t, []int{2, 3, 4, 42, 43, 44, 92, 93, 94, 132, 133, 134}, resp.Occupied)
}

func TestResolveDetectsOverlap(t *testing.T) {
	svc := newTestSelectionService(t)

	// MATH 21 A (M-TH 0800-0930) collides with ENGL 11 Q (M-TH 0900-1030).
	resp, err := svc.Resolve(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
		[3]*string{strPtr("English"), strPtr("ENGL 11: Composition"), strPtr("Q")},
	))
	require.NoError(t, err)
	assert.True(t, resp.HasOverlap)
}

func TestResolveReportsPickStates(t *testing.T) {
	svc := newTestSelectionService(t)

	resp, err := svc.Resolve(blobOf(
		[3]*string{nil, nil, nil},
		[3]*string{strPtr("Mathematics"), nil, nil},
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), nil},
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("Z")},
	))
	require.NoError(t, err)

	assert.Equal(t, dto.PickStateEmpty, resp.Picks[0].State)
	assert.Equal(t, dto.PickStateDepartment, resp.Picks[1].State)
	assert.Equal(t, dto.PickStateSubject, resp.Picks[2].State)
	assert.Equal(t, dto.PickStateUnresolved, resp.Picks[3].State)
	assert.Nil(t, resp.Picks[3].Section)
}

func TestResolveStrictFailsOnUnresolvedPick(t *testing.T) {
	svc := newTestSelectionService(t)

	_, err := svc.ResolveStrict(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("Z")},
	))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnresolvedPick.Code, appErrors.FromError(err).Code)
}

func TestOpenAlternativesForSubjectTarget(t *testing.T) {
	svc := newTestSelectionService(t)

	// MATH 21 A occupies M-TH 0800-0930; only ENGL 11 R still fits.
	out, err := svc.OpenAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf(
			[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
			[3]*string{strPtr("English"), strPtr("ENGL 11: Composition"), nil},
		),
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, dto.TargetSubject, out[0].Kind)
	assert.Equal(t, "ENGL 11: Composition", out[0].Target)
	require.Len(t, out[0].Sections, 1)
	assert.Equal(t, "R", out[0].Sections[0].SectionCode)
}

func TestOpenAlternativesForDepartmentTarget(t *testing.T) {
	svc := newTestSelectionService(t)

	out, err := svc.OpenAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf(
			[3]*string{strPtr("Mathematics"), nil, nil},
		),
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, dto.TargetDepartment, out[0].Kind)
	assert.Equal(t, "Mathematics", out[0].Target)
	assert.Len(t, out[0].Sections, 2)
}

// A dual listing meets both of its halves, so blocking either half
// closes the whole section even though the other half stays clear.
func TestOpenAlternativesDualListingClosedByOneHalf(t *testing.T) {
	svc := newTestSelectionService(t)

	// MATH 21 A collides with the Monday half of CHEM 31 B.
	out, err := svc.OpenAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf(
			[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
			[3]*string{strPtr("Chemistry"), nil, nil},
		),
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Empty(t, out[0].Sections)

	// And the scan verdict must agree with the conflict detector: a
	// section the scan would offer can never resolve into an overlap.
	resp, err := svc.Resolve(blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
		[3]*string{strPtr("Chemistry"), strPtr("CHEM 31: Organic Chemistry"), strPtr("B")},
	))
	require.NoError(t, err)
	assert.True(t, resp.HasOverlap)
}

func TestOpenAlternativesDualListingOpenWhenBothHalvesClear(t *testing.T) {
	svc := newTestSelectionService(t)

	// MATH 21 B (T-F 0800-0930) misses both halves of CHEM 31 B
	// (M 0800-0930 and T 1000-1130).
	out, err := svc.OpenAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf(
			[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("B")},
			[3]*string{strPtr("Chemistry"), nil, nil},
		),
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	require.Len(t, out[0].Sections, 1)
	assert.Equal(t, "B", out[0].Sections[0].SectionCode)
	assert.Equal(t, "CTC 102;BEL 305", out[0].Sections[0].Room)
}

func TestOpenAlternativesExplicitUnknownTarget(t *testing.T) {
	svc := newTestSelectionService(t)

	_, err := svc.OpenAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf([3]*string{strPtr("Mathematics"), nil, nil}),
		Targets:       []string{"Basket Weaving"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportAlternativesCSV(t *testing.T) {
	svc := newTestSelectionService(t)

	payload, contentType, err := svc.ExportAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf(
			[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
			[3]*string{strPtr("English"), strPtr("ENGL 11: Composition"), nil},
		),
	}, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "ENGL 11,R,Composition")
	assert.NotContains(t, string(payload), ",Q,")
}

func TestExportAlternativesUnknownFormat(t *testing.T) {
	svc := newTestSelectionService(t)

	_, _, err := svc.ExportAlternatives(context.Background(), dto.AlternativesRequest{
		SelectionBlob: blobOf([3]*string{strPtr("Mathematics"), nil, nil}),
	}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEncodeBlobRoundTrip(t *testing.T) {
	svc := newTestSelectionService(t)

	blob := blobOf(
		[3]*string{strPtr("Mathematics"), strPtr("MATH 21: Calculus I"), strPtr("A")},
		[3]*string{strPtr("English"), nil, nil},
	)
	sel, err := svc.DecodeBlob(blob)
	require.NoError(t, err)

	back := svc.EncodeBlob(sel)
	assert.Equal(t, blob, back)
}
