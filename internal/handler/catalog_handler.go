package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/facile-ph/enlistment-api/internal/service"
	"github.com/facile-ph/enlistment-api/pkg/response"
)

// CatalogHandler exposes catalog browse endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListDepartments godoc
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.ListDepartments(), nil)
}

// ListSubjects godoc
// @Summary List subjects of a department
// @Tags Catalog
// @Produce json
// @Param dept path string true "Department short name"
// @Success 200 {object} response.Envelope
// @Router /departments/{dept}/subjects [get]
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalog.ListSubjects(c.Param("dept"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil)
}

// ListSections godoc
// @Summary List sections of a subject
// @Tags Catalog
// @Produce json
// @Param dept path string true "Department short name"
// @Param subject path string true "Subject display name"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /departments/{dept}/subjects/{subject}/sections [get]
func (h *CatalogHandler) ListSections(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	sections, pagination, err := h.catalog.ListSections(c.Param("dept"), c.Param("subject"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, pagination)
}

// Building godoc
// @Summary Resolve a room string to its building
// @Tags Catalog
// @Produce json
// @Param room path string true "Room string"
// @Success 200 {object} response.Envelope
// @Router /buildings/{room} [get]
func (h *CatalogHandler) Building(c *gin.Context) {
	room := c.Param("room")
	response.JSON(c, http.StatusOK, gin.H{"room": room, "building": h.catalog.Building(room)}, nil)
}
