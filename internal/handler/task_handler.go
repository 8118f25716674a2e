package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gumutoni/tasktidy/internal/model"
	"github.com/gumutoni/tasktidy/internal/pkg/response"
	"github.com/gumutoni/tasktidy/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskCreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type taskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		response.Error(c, http.StatusBadRequest, "Title is required")
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), service.TaskCreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), model.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
