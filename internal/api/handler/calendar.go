package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/goodjob/internal/service"
)

// CalendarHandler handles the merged calendar view endpoint.
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Events handles GET /api/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD.
// Both bounds are inclusive; omitted bounds default to a wide-open
// window.
func (h *CalendarHandler) Events(c *gin.Context) {
	view, err := h.calendarService.Events(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
