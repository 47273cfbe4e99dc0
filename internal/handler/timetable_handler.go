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

// TimetableHandler exposes timetable rendering and export endpoints.
type TimetableHandler struct {
	timetables *service.TimetableService
}

// NewTimetableHandler constructs TimetableHandler.
func NewTimetableHandler(timetables *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables}
}

// Render godoc
// @Summary Render a conflict-free selection as a weekly grid
// @Tags Timetable
// @Accept json
// @Produce json
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Success 200 {object} response.Envelope
// @Router /selections/timetable [post]
func (h *TimetableHandler) Render(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	grid, err := h.timetables.Render(blob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}

// Export godoc
// @Summary Export the rendered timetable as CSV or PDF
// @Tags Timetable
// @Accept json
// @Produce octet-stream
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} byte
// @Router /selections/timetable/export [post]
func (h *TimetableHandler) Export(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	format := c.DefaultQuery("format", service.FormatCSV)
	payload, contentType, err := h.timetables.Export(blob, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="timetable.%s"`, format))
	c.Data(http.StatusOK, contentType, payload)
}
