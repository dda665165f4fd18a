package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/goodjob/internal/service"
)

type todoCreateRequest struct {
	Content string `json:"content"`
}

// PrepTodoHandler handles per-job prep checklist endpoints, nested
// under /api/jobs/:id/todos.
type PrepTodoHandler struct {
	prepService *service.PrepTodoService
}

// NewPrepTodoHandler creates a new prep checklist handler.
func NewPrepTodoHandler(prepService *service.PrepTodoService) *PrepTodoHandler {
	return &PrepTodoHandler{prepService: prepService}
}

// List handles GET /api/jobs/:id/todos.
func (h *PrepTodoHandler) List(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	todos, err := h.prepService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Create handles POST /api/jobs/:id/todos.
func (h *PrepTodoHandler) Create(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	var req todoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo, err := h.prepService.Create(c.Request.Context(), jobID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /api/jobs/:id/todos/:todoId.
func (h *PrepTodoHandler) Update(c *gin.Context) {
	todoID, err := parseID(c.Param("todoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return
	}

	var req service.TodoUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo, err := h.prepService.Update(c.Request.Context(), todoID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/jobs/:id/todos/:todoId.
func (h *PrepTodoHandler) Delete(c *gin.Context) {
	todoID, err := parseID(c.Param("todoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return
	}

	if err := h.prepService.Delete(c.Request.Context(), todoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DashboardTodoHandler handles the free-standing dashboard todo list
// at /api/todos.
type DashboardTodoHandler struct {
	todoService *service.DashboardTodoService
}

// NewDashboardTodoHandler creates a new dashboard todo handler.
func NewDashboardTodoHandler(todoService *service.DashboardTodoService) *DashboardTodoHandler {
	return &DashboardTodoHandler{todoService: todoService}
}

// List handles GET /api/todos.
func (h *DashboardTodoHandler) List(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Create handles POST /api/todos.
func (h *DashboardTodoHandler) Create(c *gin.Context) {
	var req todoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /api/todos/:id.
func (h *DashboardTodoHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return
	}

	var req service.TodoUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/:id.
func (h *DashboardTodoHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
