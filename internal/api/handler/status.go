package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timmy/goodjob/internal/service"
)

// StatusHandler handles status catalog endpoints.
type StatusHandler struct {
	statusService *service.StatusService
}

// NewStatusHandler creates a new status catalog handler.
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

type statusCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// List handles GET /api/statuses.
func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.statusService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// Create handles POST /api/statuses.
func (h *StatusHandler) Create(c *gin.Context) {
	var req statusCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// Update handles PUT /api/statuses/:id.
func (h *StatusHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status id"})
		return
	}

	var req service.StatusUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := h.statusService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Delete handles DELETE /api/statuses/:id. Deleting a status still
// referenced by a job returns 409.
func (h *StatusHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status id"})
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseID parses a numeric path parameter.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
