package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/facile-ph/enlistment-api/internal/catalog"
	"github.com/facile-ph/enlistment-api/internal/dto"
	"github.com/facile-ph/enlistment-api/internal/models"
	"github.com/facile-ph/enlistment-api/internal/repository"
	"github.com/facile-ph/enlistment-api/internal/schedule"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
	"github.com/facile-ph/enlistment-api/pkg/export"
)

// SelectionService resolves selection blobs against the catalog,
// detects schedule conflicts and scans for open alternatives.
type SelectionService struct {
	catalog  *catalog.Catalog
	cache    *repository.CacheRepository
	metrics  *MetricsService
	validate *validator.Validate
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSelectionService constructs a selection service. cache may be nil
// when scan caching is disabled.
func NewSelectionService(cat *catalog.Catalog, cache *repository.CacheRepository, metrics *MetricsService, cacheTTL time.Duration, logger *zap.Logger) *SelectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SelectionService{
		catalog:  cat,
		cache:    cache,
		metrics:  metrics,
		validate: validator.New(),
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// DecodeBlob validates a selection blob and converts it to a
// Selection. Array lengths must equal NSubjs; null entries become
// empty picks.
func (s *SelectionService) DecodeBlob(blob dto.SelectionBlob) (models.Selection, error) {
	if err := s.validate.Struct(blob); err != nil {
		return models.Selection{}, appErrors.Clone(appErrors.ErrImportFormat, err.Error())
	}
	if len(blob.Depts) != blob.NSubjs || len(blob.Subjs) != blob.NSubjs || len(blob.Sects) != blob.NSubjs {
		return models.Selection{}, appErrors.Clone(appErrors.ErrImportFormat,
			fmt.Sprintf("arrays must have length %d", blob.NSubjs))
	}

	picks := make([]models.Pick, blob.NSubjs)
	for i := 0; i < blob.NSubjs; i++ {
		picks[i] = models.Pick{
			Department: deref(blob.Depts[i]),
			Subject:    deref(blob.Subjs[i]),
			Section:    deref(blob.Sects[i]),
		}
	}
	return models.Selection{Picks: picks}, nil
}

// EncodeBlob converts a selection back to its blob form.
func (s *SelectionService) EncodeBlob(sel models.Selection) dto.SelectionBlob {
	blob := dto.SelectionBlob{
		NSubjs: len(sel.Picks),
		Depts:  make([]*string, len(sel.Picks)),
		Subjs:  make([]*string, len(sel.Picks)),
		Sects:  make([]*string, len(sel.Picks)),
	}
	for i, p := range sel.Picks {
		blob.Depts[i] = ref(p.Department)
		blob.Subjs[i] = ref(p.Subject)
		blob.Sects[i] = ref(p.Section)
	}
	return blob
}

// Resolve decodes a blob, resolves each complete pick against the
// catalog and reports the occupied slots plus the overlap verdict.
// Picks that name a section absent from the catalog are reported as
// unresolved rather than failing the whole selection.
func (s *SelectionService) Resolve(blob dto.SelectionBlob) (*dto.ResolveSelectionResponse, error) {
	sel, err := s.DecodeBlob(blob)
	if err != nil {
		return nil, err
	}

	resolved := s.resolvePicks(sel)

	items := make([]dto.ResolvedPickItem, len(resolved))
	sets := make([]schedule.SlotSet, 0, len(resolved))
	for i, rp := range resolved {
		items[i] = dto.ResolvedPickItem{
			Slot:       i + 1,
			Department: rp.Pick.Department,
			Subject:    rp.Pick.Subject,
			SectionRef: rp.Pick.Section,
			State:      pickState(rp),
			Section:    rp.Resolved,
		}
		if rp.Resolved != nil {
			sets = append(sets, rp.Resolved.Slots)
		}
	}

	occupied := models.Occupied(resolved)
	return &dto.ResolveSelectionResponse{
		Picks:      items,
		Occupied:   occupied,
		HasOverlap: schedule.HasOverlap(sets...),
		Blob:       s.EncodeBlob(sel),
	}, nil
}

// ResolveStrict resolves a blob but fails on the first pick whose
// section is absent from the catalog. Used where a complete, valid
// selection is required, such as timetable rendering.
func (s *SelectionService) ResolveStrict(blob dto.SelectionBlob) ([]models.ResolvedPick, error) {
	sel, err := s.DecodeBlob(blob)
	if err != nil {
		return nil, err
	}
	resolved := s.resolvePicks(sel)
	for i, rp := range resolved {
		if rp.Pick.Complete() && rp.Resolved == nil {
			return nil, appErrors.Clone(appErrors.ErrUnresolvedPick,
				fmt.Sprintf("slot %d: section %q not in catalog", i+1, rp.Pick.Section))
		}
	}
	return resolved, nil
}

func (s *SelectionService) resolvePicks(sel models.Selection) []models.ResolvedPick {
	out := make([]models.ResolvedPick, len(sel.Picks))
	for i, p := range sel.Picks {
		out[i] = models.ResolvedPick{Pick: p}
		if !p.Complete() {
			continue
		}
		if sec, ok := s.catalog.Resolve(p.Department, p.Subject, p.Section); ok {
			out[i].Resolved = sec
		}
	}
	return out
}

// OpenAlternatives scans the catalog for sections that still fit the
// caller's occupied slots. Targets name departments or subjects from
// the selection; when absent every department-active and
// subject-active pick is scanned. A dual listing is open only when
// the occupied set clears both of its halves.
func (s *SelectionService) OpenAlternatives(ctx context.Context, req dto.AlternativesRequest) ([]dto.TargetAlternatives, error) {
	sel, err := s.DecodeBlob(req.SelectionBlob)
	if err != nil {
		return nil, err
	}
	resolved := s.resolvePicks(sel)
	occupied := models.Occupied(resolved)

	targets, err := s.scanTargets(sel, req.Targets)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TargetAlternatives, 0, len(targets))
	for _, t := range targets {
		key := scanCacheKey(occupied, t.kind, t.department, t.subject)

		var cached dto.TargetAlternatives
		if s.cache != nil {
			if err := s.cache.Get(ctx, key, &cached); err == nil {
				s.metrics.RecordCacheOperation(true)
				out = append(out, cached)
				continue
			}
			s.metrics.RecordCacheOperation(false)
		}

		alt := s.scanTarget(occupied, t)
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, alt, s.cacheTTL); err != nil {
				s.logger.Warn("scan cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		out = append(out, alt)
	}
	return out, nil
}

type scanTarget struct {
	kind       string
	department string
	subject    string
}

func (t scanTarget) name() string {
	if t.kind == dto.TargetSubject {
		return t.subject
	}
	return t.department
}

// scanTargets resolves the requested target names against the
// selection. An explicit target is a department if the catalog knows
// it as one, otherwise a subject whose parent department is found
// among the picks.
func (s *SelectionService) scanTargets(sel models.Selection, names []string) ([]scanTarget, error) {
	if len(names) == 0 {
		var out []scanTarget
		for _, p := range sel.Picks {
			switch {
			case p.DepartmentActive():
				out = append(out, scanTarget{kind: dto.TargetDepartment, department: p.Department})
			case p.SubjectActive():
				out = append(out, scanTarget{kind: dto.TargetSubject, department: p.Department, subject: p.Subject})
			}
		}
		return out, nil
	}

	out := make([]scanTarget, 0, len(names))
	for _, name := range names {
		if s.catalog.HasDepartment(name) {
			out = append(out, scanTarget{kind: dto.TargetDepartment, department: name})
			continue
		}
		dept := ""
		for _, p := range sel.Picks {
			if p.Subject == name {
				dept = p.Department
				break
			}
		}
		if dept == "" {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scan target not in selection or catalog: "+name)
		}
		out = append(out, scanTarget{kind: dto.TargetSubject, department: dept, subject: name})
	}
	return out, nil
}

func (s *SelectionService) scanTarget(occupied schedule.SlotSet, t scanTarget) dto.TargetAlternatives {
	start := time.Now()

	var scope []models.Section
	if t.kind == dto.TargetSubject {
		scope = s.catalog.Sections(t.department, t.subject)
	} else {
		scope = s.catalog.SectionsByDepartment(t.department)
	}

	// A dual listing's slot set is the union of both halves, so one
	// conflicting half closes the whole section. Halves exist for the
	// renderer only.
	open := make([]models.Section, 0, len(scope))
	for _, sec := range scope {
		if schedule.Compatible(occupied, sec.Slots) {
			open = append(open, sec)
		}
	}

	s.metrics.ObserveCatalogScan(len(scope), time.Since(start))
	return dto.TargetAlternatives{Target: t.name(), Kind: t.kind, Sections: open}
}

// ExportAlternatives runs an open-alternatives scan and renders the
// result as a CSV or PDF table, one row per open section.
func (s *SelectionService) ExportAlternatives(ctx context.Context, req dto.AlternativesRequest, format string) ([]byte, string, error) {
	scans, err := s.OpenAlternatives(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data := export.Dataset{Headers: []string{"Target", "Subject Code", "Section", "Course Title", "Units", "Time", "Room", "Instructor"}}
	for _, scan := range scans {
		for _, sec := range scan.Sections {
			data.Rows = append(data.Rows, map[string]string{
				"Target":       scan.Target,
				"Subject Code": sec.SubjectCode,
				"Section":      sec.SectionCode,
				"Course Title": sec.CourseTitle,
				"Units":        sec.Units,
				"Time":         sec.RawSchedule,
				"Room":         sec.Room,
				"Instructor":   sec.Instructor,
			})
		}
	}

	switch format {
	case FormatCSV:
		payload, err := export.NewCSVExporter().Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv alternatives")
		}
		return payload, "text/csv", nil
	case FormatPDF:
		payload, err := export.NewPDFExporter().Render(data, "Open Sections", true)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf alternatives")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

// scanCacheKey derives a cache key from the occupied slots and the
// scan target. Identical occupancy patterns share cached scans.
func scanCacheKey(occupied schedule.SlotSet, kind, dept, subject string) string {
	parts := make([]string, len(occupied))
	for i, slot := range occupied {
		parts[i] = fmt.Sprintf("%d", slot)
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, ",")))
	return fmt.Sprintf("scan:%s:%s:%s:%s", hex.EncodeToString(sum[:8]), kind, dept, subject)
}

func pickState(rp models.ResolvedPick) string {
	switch {
	case rp.Resolved != nil:
		return dto.PickStateResolved
	case rp.Pick.Complete():
		return dto.PickStateUnresolved
	case rp.Pick.SubjectActive():
		return dto.PickStateSubject
	case rp.Pick.DepartmentActive():
		return dto.PickStateDepartment
	default:
		return dto.PickStateEmpty
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	out := s
	return &out
}
