package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/facile-ph/enlistment-api/internal/dto"
	"github.com/facile-ph/enlistment-api/internal/service"
	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
	"github.com/facile-ph/enlistment-api/pkg/response"
)

// SessionHandler exposes saved-selection session endpoints.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Save godoc
// @Summary Save a selection blob under a new session ID
// @Tags Sessions
// @Accept json
// @Produce json
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Save(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	record, err := h.sessions.Save(c.Request.Context(), blob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Get godoc
// @Summary Restore a saved session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	record, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Update godoc
// @Summary Replace the blob of a saved session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param blob body dto.SelectionBlob true "Selection blob"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	var blob dto.SelectionBlob
	if err := c.ShouldBindJSON(&blob); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrImportFormat, err.Error()))
		return
	}

	record, err := h.sessions.Update(c.Request.Context(), c.Param("id"), blob)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Delete godoc
// @Summary Delete a saved session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
