package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_dashboard_server/internal/auth"
)

type CreateTaskRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// GET /api/tasks
func (h *APIHandler) ListTasks(c *gin.Context) {
	claims, _ := auth.CurrentClaims(c)
	tasks, err := h.store.ListTasks(c.Request.Context(), claims.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /api/tasks
func (h *APIHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	claims, _ := auth.CurrentClaims(c)
	task, err := h.store.CreateTask(c.Request.Context(), claims.Subject, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// PATCH /api/tasks/:id
func (h *APIHandler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	claims, _ := auth.CurrentClaims(c)
	task, err := h.store.SetTaskCompleted(c.Request.Context(), claims.Subject, c.Param("id"), *req.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /api/tasks/:id/toggle
func (h *APIHandler) ToggleTask(c *gin.Context) {
	claims, _ := auth.CurrentClaims(c)
	task, err := h.store.ToggleTask(c.Request.Context(), claims.Subject, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /api/tasks/:id
func (h *APIHandler) DeleteTask(c *gin.Context) {
	claims, _ := auth.CurrentClaims(c)
	if err := h.store.DeleteTask(c.Request.Context(), claims.Subject, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
