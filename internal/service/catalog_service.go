package service

import (
	"go.uber.org/zap"

	"github.com/facile-ph/enlistment-api/internal/catalog"
	"github.com/facile-ph/enlistment-api/internal/models"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
)

// CatalogService answers read-only queries against the loaded catalog.
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCatalogService(cat *catalog.Catalog, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: cat, logger: logger}
}

// ListDepartments returns every department short name in catalog order.
func (s *CatalogService) ListDepartments() []string {
	return s.catalog.Departments()
}

// ListSubjects returns the distinct subjects offered by a department.
func (s *CatalogService) ListSubjects(department string) ([]models.Subject, error) {
	subjects, ok := s.catalog.Subjects(department)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found: "+department)
	}
	return subjects, nil
}

// ListSections returns the sections of one subject within a department,
// paginated. Page numbers start at 1; a zero page size returns everything.
func (s *CatalogService) ListSections(department, subjectName string, page, pageSize int) ([]models.Section, *models.Pagination, error) {
	if !s.catalog.HasDepartment(department) {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "department not found: "+department)
	}
	sections := s.catalog.Sections(department, subjectName)
	if len(sections) == 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "no sections for subject: "+subjectName)
	}

	total := len(sections)
	if pageSize <= 0 {
		return sections, &models.Pagination{Page: 1, PageSize: total, TotalCount: total}, nil
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Section{}, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return sections[start:end], &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// ResolvePick resolves a fully specified pick to its catalog section.
func (s *CatalogService) ResolvePick(department, subjectName, sectionLabel string) (*models.Section, error) {
	sec, ok := s.catalog.Resolve(department, subjectName, sectionLabel)
	if !ok {
		s.logger.Debug("pick did not resolve",
			zap.String("department", department),
			zap.String("subject", subjectName),
			zap.String("section", sectionLabel))
		return nil, appErrors.Clone(appErrors.ErrUnresolvedPick, "section not in catalog: "+sectionLabel)
	}
	return sec, nil
}

// Building maps a room string to its building name. Unknown rooms map
// to themselves.
func (s *CatalogService) Building(room string) string {
	return catalog.Building(room)
}
