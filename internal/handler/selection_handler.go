package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facile-ph/enlistment-api/internal/dto"
	"github.com/facile-ph/enlistment-api/internal/service"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
	"github.com/facile-ph/enlistment-api/pkg/response"
)

// SelectionHandler exposes selection resolution and scanning endpoints.
type SelectionHandler struct {
	selections *service.SelectionService
}

// NewSelectionHandler constructs SelectionHandler.
func NewSelectionHandler(selections *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Resolve godoc
// @Summary Resolve a selection blob against the catalog
// @Tags Selections
// @Accept json
// @Produce json
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Success 200 {object} response.Envelope
// @Router /selections/resolve [post]
func (h *SelectionHandler) Resolve(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	result, err := h.selections.Resolve(blob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Alternatives godoc
// @Summary Scan for open alternatives that fit the current selection
// @Tags Selections
// @Accept json
// @Produce json
// @Param request body dto.AlternativesRequest true "Selection blob plus optional targets"
// @Success 200 {object} response.Envelope
// @Router /selections/alternatives [post]
func (h *SelectionHandler) Alternatives(c *gin.Context) {
	var req dto.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	result, err := h.selections.OpenAlternatives(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// ExportAlternatives godoc
// @Summary Export the scanned open-alternative lists as CSV or PDF
// @Tags Selections
// @Accept json
// @Produce octet-stream
// @Param request body dto.AlternativesRequest true "Selection blob plus optional targets"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} byte
// @Router /selections/alternatives/export [post]
func (h *SelectionHandler) ExportAlternatives(c *gin.Context) {
	var req dto.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	format := c.DefaultQuery("format", service.FormatCSV)
	payload, contentType, err := h.selections.ExportAlternatives(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="open-sections.%s"`, format))
	c.Data(http.StatusOK, contentType, payload)
}

// Export godoc
// @Summary Download a selection blob as a JSON attachment
// @Tags Selections
// @Accept json
// @Produce json
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Success 200 {object} dto.SelectionBlob
// @Router /selections/export [post]
func (h *SelectionHandler) Export(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	if _, err := h.selections.DecodeBlob(blob); err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="selection.json"`)
	c.JSON(http.StatusOK, blob)
}
